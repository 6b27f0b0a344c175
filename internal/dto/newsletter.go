package dto

// SubscribeRequest represents a newsletter signup form submission
// @Description Request body for subscribing to the newsletter
type SubscribeRequest struct {
	Email  string `json:"email" validate:"max=254"`
	Source string `json:"source" validate:"omitempty,slug"`
}

// ButtonFeedback is the temporary state of the submit button after a signup.
type ButtonFeedback struct {
	Label         string `json:"label"`
	RevertAfterMs int64  `json:"revert_after_ms"`
}

// SubscribeResponse is returned for a valid address, new or repeated.
type SubscribeResponse struct {
	Message           string         `json:"message"`
	AlreadySubscribed bool           `json:"already_subscribed"`
	ClearInput        bool           `json:"clear_input"`
	Button            ButtonFeedback `json:"button"`
}

// LegalDocumentSummary is one entry of the legal document listing.
type LegalDocumentSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

package dto

import "autoworld/internal/domain"

// OpenVideoRequest selects the video shown in the modal.
type OpenVideoRequest struct {
	VideoID int `json:"video_id" validate:"required,min=1"`
}

// SoundSummary is one entry of the sound panel.
type SoundSummary struct {
	Type     string                `json:"type"`
	Label    string                `json:"label"`
	Feedback domain.ButtonFeedback `json:"feedback"`
	WAVURL   string                `json:"wav_url"`
}

// SoundListResponse lists the available effects.
type SoundListResponse struct {
	Sounds []SoundSummary `json:"sounds"`
}

// CarDetailsResponse is the gallery detail popup.
type CarDetailsResponse struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Info  string `json:"info"`
}

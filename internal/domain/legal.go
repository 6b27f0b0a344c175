package domain

import "fmt"

// LegalSection is one headed block of a legal document.
type LegalSection struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs,omitempty"`
	Items      []string `json:"items,omitempty"`
}

// LegalDocument is a static policy page shown in the site modal.
type LegalDocument struct {
	Slug      string         `json:"slug"`
	Title     string         `json:"title"`
	DateLabel string         `json:"date_label"`
	Date      string         `json:"date"`
	Sections  []LegalSection `json:"sections"`
}

const legalDate = "August 11, 2025"

// DefaultLegalDocuments returns the privacy, terms and cookie policies.
func DefaultLegalDocuments() []LegalDocument {
	return []LegalDocument{
		{
			Slug: "privacy", Title: "Privacy Policy", DateLabel: "Effective Date", Date: legalDate,
			Sections: []LegalSection{
				{
					Heading:    "Information We Collect",
					Paragraphs: []string{"AutoWorld collects information to provide better automotive experiences:"},
					Items: []string{
						"Email addresses for newsletter subscriptions",
						"Usage data for improving our multimedia features",
						"Browser information for optimal performance",
					},
				},
				{
					Heading:    "How We Use Information",
					Paragraphs: []string{"We use your information to:"},
					Items: []string{
						"Send automotive news and updates",
						"Improve our interactive features",
						"Provide personalized car recommendations",
					},
				},
				{
					Heading:    "Contact Us",
					Paragraphs: []string{"For privacy concerns, contact us at privacy@autoworld.com"},
				},
			},
		},
		{
			Slug: "terms", Title: "Terms of Service", DateLabel: "Last Updated", Date: legalDate,
			Sections: []LegalSection{
				{
					Heading:    "Acceptance of Terms",
					Paragraphs: []string{"By using AutoWorld, you agree to these terms and conditions."},
				},
				{
					Heading:    "Use of Service",
					Paragraphs: []string{"AutoWorld is provided for educational and entertainment purposes:"},
					Items: []string{
						"Interactive automotive multimedia experience",
						"Educational content about vehicles",
						"Gaming and quiz features",
					},
				},
				{
					Heading: "Prohibited Uses",
					Items: []string{
						"Commercial use without permission",
						"Reverse engineering of features",
						"Harmful or malicious activities",
					},
				},
				{
					Heading:    "Contact",
					Paragraphs: []string{"Questions? Contact legal@autoworld.com"},
				},
			},
		},
		{
			Slug: "cookies", Title: "Cookie Policy", DateLabel: "Effective Date", Date: legalDate,
			Sections: []LegalSection{
				{
					Heading:    "What Are Cookies?",
					Paragraphs: []string{"Cookies are small text files stored on your device to enhance your AutoWorld experience."},
				},
				{
					Heading: "Types of Cookies We Use",
					Items: []string{
						"Essential: Required for basic functionality",
						"Performance: Help us improve our features",
						"Functional: Remember your preferences",
					},
				},
				{
					Heading:    "Managing Cookies",
					Paragraphs: []string{"You can control cookies through your browser settings. Note that disabling cookies may affect functionality."},
				},
				{
					Heading:    "Updates",
					Paragraphs: []string{"This policy may be updated periodically. Check back for changes."},
				},
			},
		},
	}
}

// FindLegalDocument looks a document up by slug.
func FindLegalDocument(docs []LegalDocument, slug string) (LegalDocument, error) {
	for _, d := range docs {
		if d.Slug == slug {
			return d, nil
		}
	}
	return LegalDocument{}, NewNotFoundError(fmt.Sprintf("legal document not found: %s", slug))
}

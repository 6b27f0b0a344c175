package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"driver@autoworld.com", true},
		{"a.b+c@sub.example.co", true},
		{"", false},
		{"driver", false},
		{"driver@autoworld", false},
		{"dri ver@autoworld.com", false},
		{"driver@@autoworld.com", false},
		{"@autoworld.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestNewSubscriber(t *testing.T) {
	s := NewSubscriber("01H", "  Driver@AutoWorld.com ", "footer")
	assert.Equal(t, "driver@autoworld.com", s.Email)
	assert.NoError(t, s.Validate())

	assert.Error(t, NewSubscriber("", "driver@autoworld.com", "").Validate())
	assert.Error(t, NewSubscriber("01H", "nope", "").Validate())

	assert.Contains(t, WelcomeMessage(s.Email), "Welcome to AutoWorld Newsletter, driver@autoworld.com!")
}

func TestFindLegalDocument(t *testing.T) {
	docs := DefaultLegalDocuments()
	for _, slug := range []string{"privacy", "terms", "cookies"} {
		doc, err := FindLegalDocument(docs, slug)
		assert.NoError(t, err)
		assert.Equal(t, "August 11, 2025", doc.Date)
		assert.NotEmpty(t, doc.Sections)
	}
	_, err := FindLegalDocument(docs, "refunds")
	assert.Error(t, err)
}

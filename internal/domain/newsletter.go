package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// emailPattern accepts anything shaped like local@domain.tld with no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	MsgEmailRequired = "Please enter your email address."
	MsgEmailInvalid  = "Please enter a valid email address."
)

// IsValidEmail reports whether email has the minimal local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeEmail trims and lower-cases an address for storage and duplicate checks.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        string
	Email     string
	Source    string
	CreatedAt time.Time
}

// NewSubscriber creates a new Subscriber instance
func NewSubscriber(id, email, source string) *Subscriber {
	return &Subscriber{
		ID:        id,
		Email:     NormalizeEmail(email),
		Source:    source,
		CreatedAt: time.Now(),
	}
}

// Validate validates the subscriber
func (s *Subscriber) Validate() error {
	if s.ID == "" {
		return NewInvalidInputError("subscriber id is required")
	}
	if !IsValidEmail(s.Email) {
		return NewInvalidInputError(MsgEmailInvalid)
	}
	return nil
}

// WelcomeMessage is shown after a successful signup.
func WelcomeMessage(email string) string {
	return fmt.Sprintf("🎉 Thank you for subscribing! Welcome to AutoWorld Newsletter, %s!", email)
}

package dto

import (
	"time"

	"autoworld/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// SessionResponse is returned when a page session is opened.
type SessionResponse struct {
	SessionID string             `json:"session_id"`
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
	Quiz      QuizStateResponse  `json:"quiz"`
	Builder   domain.BuilderView `json:"builder"`
}

// SessionClaims are the JWT claims of a page-session token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

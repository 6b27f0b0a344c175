package service

import (
	"errors"
	"fmt"
	"time"

	"autoworld/internal/dto"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypePage = "page"
	tokenIssuer   = "autoworld"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// TokenService issues and checks the tokens that identify a page session.
// Tokens carry no exp claim: a session lives as long as its cache entry, which
// every authenticated request slides forward. expiresAt is the idle deadline at issue time.
type TokenService interface {
	Issue(sessionID string) (token string, expiresAt time.Time, err error)
	Validate(tokenString string) (*dto.SessionClaims, error)
}

type tokenServiceImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates an HS256 token service.
func NewTokenService(secret string, ttl time.Duration) (TokenService, error) {
	if len(secret) < 32 {
		return nil, errors.New("session secret must be at least 32 bytes long")
	}
	return &tokenServiceImpl{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *tokenServiceImpl) Issue(sessionID string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := dto.SessionClaims{
		SessionID: sessionID,
		TokenType: tokenTypePage,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *tokenServiceImpl) Validate(tokenString string) (*dto.SessionClaims, error) {
	claims := &dto.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidSessionToken
	}
	if claims.TokenType != tokenTypePage || claims.SessionID == "" {
		return nil, fmt.Errorf("%w: not a page token", ErrInvalidSessionToken)
	}
	return claims, nil
}

package middleware

import (
	"context"
	"strings"

	"autoworld/internal/domain"
	"autoworld/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SessionIDKey        = "sessionID" // Key for storing the page session id in fiber.Ctx locals
)

// SessionAuthenticator resolves a page-session token to its session id.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// RequireSession rejects requests without a live page session and stores its id in the context.
func RequireSession(auth SessionAuthenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		sessionID, err := auth.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			logger.Get().Debug("Session authentication failed", zap.String("path", c.Path()), zap.Error(err))
			return err
		}

		c.Locals(SessionIDKey, sessionID)
		return c.Next()
	}
}

// SessionID returns the id stored by RequireSession.
func SessionID(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(SessionIDKey).(string)
	if !ok || id == "" {
		return "", domain.NewUnauthorizedError("Session not found in context")
	}
	return id, nil
}

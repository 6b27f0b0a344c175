package service

import (
	"context"
	"errors"
	"time"

	"autoworld/internal/cache"
	"autoworld/internal/domain"
	"autoworld/internal/dto"
	"autoworld/internal/logger"
	"autoworld/internal/util"

	"go.uber.org/zap"
)

// SessionService opens page sessions and resolves their tokens.
type SessionService interface {
	Create(ctx context.Context) (*dto.SessionResponse, error)
	// Authenticate returns the session id behind token and slides the session's TTL.
	Authenticate(ctx context.Context, token string) (string, error)
}

type sessionServiceImpl struct {
	tokens  TokenService
	quiz    QuizService
	builder BuilderService
	cache   domain.Cache
	ttl     time.Duration
}

func NewSessionService(tokens TokenService, quiz QuizService, builder BuilderService, c domain.Cache, ttl time.Duration) SessionService {
	return &sessionServiceImpl{tokens: tokens, quiz: quiz, builder: builder, cache: c, ttl: ttl}
}

func sessionMetaKey(sessionID string) string {
	return cache.GenerateCacheKey(cache.ServiceSession, cache.ObjectMeta, sessionID)
}

func (s *sessionServiceImpl) Create(ctx context.Context) (*dto.SessionResponse, error) {
	sessionID := util.NewULID()
	now := time.Now().UTC()

	if err := s.cache.Set(ctx, sessionMetaKey(sessionID), now.Format(time.RFC3339), s.ttl); err != nil {
		logger.Get().Error("Failed to register page session", zap.Error(err), zap.String("sessionID", sessionID))
		return nil, domain.NewInternalError("failed to create session", err)
	}

	quiz, err := s.quiz.Start(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	builder, err := s.builder.Start(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(sessionID)
	if err != nil {
		return nil, domain.NewInternalError("failed to issue session token", err)
	}

	logger.Get().Info("Page session created", zap.String("sessionID", sessionID))
	return &dto.SessionResponse{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
		Quiz:      *quiz,
		Builder:   *builder,
	}, nil
}

func (s *sessionServiceImpl) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		logger.Get().Debug("Rejected session token", zap.Error(err))
		return "", domain.NewUnauthorizedError("invalid or expired session token")
	}

	if err := s.cache.Expire(ctx, sessionMetaKey(claims.SessionID), s.ttl); err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return "", domain.NewSessionNotFoundError(claims.SessionID)
		}
		logger.Get().Error("Failed to refresh page session", zap.Error(err), zap.String("sessionID", claims.SessionID))
		return "", domain.NewInternalError("failed to refresh session", err)
	}

	// Feature state must not expire under a live session just because that feature was idle.
	for _, svc := range []string{cache.ServiceQuiz, cache.ServiceBuilder} {
		key := cache.GenerateCacheKey(svc, cache.ObjectState, claims.SessionID)
		if err := s.cache.Expire(ctx, key, s.ttl); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Failed to slide session state TTL", zap.Error(err), zap.String("key", key))
		}
	}
	return claims.SessionID, nil
}

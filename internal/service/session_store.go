package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"autoworld/internal/cache"
	"autoworld/internal/domain"
	"autoworld/internal/logger"

	"github.com/moby/locker"
	"go.uber.org/zap"
)

// sessionStore keeps one JSON document per page session in the cache under
// autoworld:<service>:state:<session id>, with a sliding TTL.
type sessionStore[T any] struct {
	cache   domain.Cache
	service string
	ttl     time.Duration
	locks   *locker.Locker
}

func newSessionStore[T any](c domain.Cache, service string, ttl time.Duration) *sessionStore[T] {
	return &sessionStore[T]{cache: c, service: service, ttl: ttl, locks: locker.New()}
}

func (s *sessionStore[T]) key(sessionID string) string {
	return cache.GenerateCacheKey(s.service, cache.ObjectState, sessionID)
}

// Load returns the stored state and slides its TTL.
func (s *sessionStore[T]) Load(ctx context.Context, sessionID string) (T, error) {
	var zero T
	key := s.key(sessionID)
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Session state cache miss", zap.String("key", key))
			return zero, domain.NewSessionNotFoundError(sessionID)
		}
		logger.Get().Error("Failed to get session state from cache", zap.Error(err), zap.String("key", key))
		return zero, domain.NewInternalError(fmt.Sprintf("failed to load session state for key %s", key), err)
	}

	var state T
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		logger.Get().Error("Failed to unmarshal session state", zap.Error(err), zap.String("key", key))
		return zero, domain.NewInternalError(fmt.Sprintf("failed to unmarshal session state for key %s", key), err)
	}

	if err := s.cache.Expire(ctx, key, s.ttl); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("Failed to slide session TTL", zap.Error(err), zap.String("key", key))
	}
	return state, nil
}

// Save overwrites the state and resets its TTL.
func (s *sessionStore[T]) Save(ctx context.Context, sessionID string, state T) error {
	key := s.key(sessionID)
	data, err := json.Marshal(state)
	if err != nil {
		return domain.NewInternalError("failed to marshal session state", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to save session state", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to save session state for key %s", key), err)
	}
	return nil
}

// Update runs a read-modify-write of one session's state while holding its lock.
// Nothing is written when fn returns an error.
func (s *sessionStore[T]) Update(ctx context.Context, sessionID string, fn func(T) (T, error)) (T, error) {
	s.locks.Lock(sessionID)
	defer func() {
		if err := s.locks.Unlock(sessionID); err != nil {
			logger.Get().Error("Failed to release session lock", zap.Error(err), zap.String("sessionID", sessionID))
		}
	}()

	current, err := s.Load(ctx, sessionID)
	if err != nil {
		var zero T
		return zero, err
	}
	next, err := fn(current)
	if err != nil {
		return current, err
	}
	if err := s.Save(ctx, sessionID, next); err != nil {
		return current, err
	}
	return next, nil
}

func (s *sessionStore[T]) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, s.key(sessionID))
}

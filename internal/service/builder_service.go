package service

import (
	"context"
	"time"

	"autoworld/internal/cache"
	"autoworld/internal/config"
	"autoworld/internal/domain"
	"autoworld/internal/dto"
	"autoworld/internal/logger"

	"go.uber.org/zap"
)

// Scheduler is the part of scheduler.Scheduler the services use.
type Scheduler interface {
	After(key string, delay time.Duration, fn func())
	Every(key string, interval time.Duration, fn func() bool)
	Cancel(key string)
	CancelPrefix(prefix string) int
}

// BuilderService runs the drag-and-drop car builder of one page session.
type BuilderService interface {
	Start(ctx context.Context, sessionID string) (*domain.BuilderView, error)
	Current(ctx context.Context, sessionID string) (*domain.BuilderView, error)
	Drop(ctx context.Context, sessionID, partID string, slot domain.PartCategory) (*dto.DropResponse, error)
	Reset(ctx context.Context, sessionID string) (*domain.BuilderView, error)
}

type builderServiceImpl struct {
	catalog   domain.PartCatalog
	store     *sessionStore[domain.BuildState]
	scheduler Scheduler
	cfg       config.BuilderConfig
}

// NewBuilderService creates a builder service; scheduled slot reverts and the
// completion notice run on sched.
func NewBuilderService(catalog domain.PartCatalog, c domain.Cache, ttl time.Duration, sched Scheduler, cfg config.BuilderConfig) (BuilderService, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &builderServiceImpl{
		catalog:   catalog,
		store:     newSessionStore[domain.BuildState](c, cache.ServiceBuilder, ttl),
		scheduler: sched,
		cfg:       cfg,
	}, nil
}

func builderTaskPrefix(sessionID string) string {
	return sessionID + ":builder:"
}

func (s *builderServiceImpl) render(state domain.BuildState) *domain.BuilderView {
	view := domain.RenderBuild(s.catalog, state)
	return &view
}

func (s *builderServiceImpl) Start(ctx context.Context, sessionID string) (*domain.BuilderView, error) {
	state := domain.NewBuildState()
	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return s.render(state), nil
}

func (s *builderServiceImpl) Current(ctx context.Context, sessionID string) (*domain.BuilderView, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.render(state), nil
}

func (s *builderServiceImpl) Drop(ctx context.Context, sessionID, partID string, slot domain.PartCategory) (*dto.DropResponse, error) {
	var outcome domain.DropOutcome
	state, err := s.store.Update(ctx, sessionID, func(state domain.BuildState) (domain.BuildState, error) {
		next, out, err := domain.Drop(s.catalog, state, partID, slot)
		if err != nil {
			return state, err
		}
		outcome = out
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	switch outcome.Result {
	case domain.DropMismatch:
		s.scheduleRevert(sessionID, slot)
	case domain.DropPlaced:
		if outcome.Completed {
			logger.Get().Info("Car build completed", zap.String("sessionID", sessionID))
			s.scheduleNotice(sessionID)
		}
	}

	return &dto.DropResponse{Outcome: outcome, Builder: *s.render(state)}, nil
}

func (s *builderServiceImpl) scheduleRevert(sessionID string, slot domain.PartCategory) {
	key := builderTaskPrefix(sessionID) + "revert:" + string(slot)
	s.scheduler.After(key, s.cfg.MismatchRevert, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := s.store.Update(ctx, sessionID, func(state domain.BuildState) (domain.BuildState, error) {
			return domain.ClearSlotError(state, slot), nil
		})
		if err != nil {
			logger.Get().Warn("Failed to revert slot error mark",
				zap.String("sessionID", sessionID),
				zap.String("slot", string(slot)),
				zap.Error(err))
		}
	})
}

func (s *builderServiceImpl) scheduleNotice(sessionID string) {
	key := builderTaskPrefix(sessionID) + "notice"
	stagger := s.cfg.PulseStagger.Milliseconds()
	s.scheduler.After(key, s.cfg.CompletionDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := s.store.Update(ctx, sessionID, func(state domain.BuildState) (domain.BuildState, error) {
			// A reset may have landed between scheduling and firing.
			if !state.CompletionNotified || !state.Complete(s.catalog) || state.Notice != nil {
				return state, nil
			}
			notice := domain.NewCompletionNotice(s.catalog, state, stagger)
			state.Notice = &notice
			return state, nil
		})
		if err != nil {
			logger.Get().Warn("Failed to attach completion notice", zap.String("sessionID", sessionID), zap.Error(err))
		}
	})
}

// Reset cancels the session's pending reverts and notice before clearing the build.
func (s *builderServiceImpl) Reset(ctx context.Context, sessionID string) (*domain.BuilderView, error) {
	if n := s.scheduler.CancelPrefix(builderTaskPrefix(sessionID)); n > 0 {
		logger.Get().Debug("Cancelled pending builder actions", zap.String("sessionID", sessionID), zap.Int("count", n))
	}
	state, err := s.store.Update(ctx, sessionID, func(domain.BuildState) (domain.BuildState, error) {
		return domain.ResetBuild(), nil
	})
	if err != nil {
		return nil, err
	}
	return s.render(state), nil
}

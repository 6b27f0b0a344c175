package service

import (
	"context"
	"time"

	"autoworld/internal/cache"
	"autoworld/internal/domain"
	"autoworld/internal/dto"
	"autoworld/internal/logger"

	"go.uber.org/zap"
)

// QuizService drives the multiple-choice quiz of one page session.
type QuizService interface {
	Start(ctx context.Context, sessionID string) (*dto.QuizStateResponse, error)
	Current(ctx context.Context, sessionID string) (*dto.QuizStateResponse, error)
	SelectAnswer(ctx context.Context, sessionID string, choice int) (*domain.SelectionOutcome, error)
	Advance(ctx context.Context, sessionID string) (*domain.AdvanceOutcome, error)
	Restart(ctx context.Context, sessionID string) (*dto.QuizStateResponse, error)
}

type quizServiceImpl struct {
	bank  domain.QuestionBank
	store *sessionStore[domain.QuizSession]
}

// NewQuizService creates a quiz service over a validated question bank.
func NewQuizService(bank domain.QuestionBank, c domain.Cache, ttl time.Duration) (QuizService, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	return &quizServiceImpl{
		bank:  bank,
		store: newSessionStore[domain.QuizSession](c, cache.ServiceQuiz, ttl),
	}, nil
}

func (s *quizServiceImpl) stateResponse(qs domain.QuizSession) *dto.QuizStateResponse {
	view := domain.DisplayCurrentQuestion(s.bank, qs)
	resp := &dto.QuizStateResponse{Phase: qs.Phase, Score: qs.Score, Question: &view}
	if qs.Phase == domain.PhaseFinished {
		sum := domain.FinalSummary(s.bank, qs)
		resp.Summary = &sum
	}
	return resp
}

// normalize restarts sessions stored against a different (shorter) question bank.
func (s *quizServiceImpl) normalize(sessionID string, qs domain.QuizSession) domain.QuizSession {
	if qs.Index < 0 || qs.Index >= len(s.bank) || qs.Selected >= domain.AnswerCount {
		logger.Get().Warn("Quiz session does not fit the question bank, restarting",
			zap.String("sessionID", sessionID),
			zap.Int("index", qs.Index),
			zap.Int("questions", len(s.bank)))
		return domain.Restart()
	}
	return qs
}

func (s *quizServiceImpl) Start(ctx context.Context, sessionID string) (*dto.QuizStateResponse, error) {
	qs := domain.NewQuizSession()
	if err := s.store.Save(ctx, sessionID, qs); err != nil {
		return nil, err
	}
	return s.stateResponse(qs), nil
}

func (s *quizServiceImpl) Current(ctx context.Context, sessionID string) (*dto.QuizStateResponse, error) {
	qs, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.stateResponse(s.normalize(sessionID, qs)), nil
}

func (s *quizServiceImpl) SelectAnswer(ctx context.Context, sessionID string, choice int) (*domain.SelectionOutcome, error) {
	var outcome domain.SelectionOutcome
	_, err := s.store.Update(ctx, sessionID, func(qs domain.QuizSession) (domain.QuizSession, error) {
		next, out, err := domain.SelectAnswer(s.bank, s.normalize(sessionID, qs), choice)
		if err != nil {
			return qs, err
		}
		outcome = out
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	if outcome.AlreadyAnswered {
		logger.Get().Debug("Duplicate answer ignored", zap.String("sessionID", sessionID), zap.Int("choice", choice))
	}
	return &outcome, nil
}

func (s *quizServiceImpl) Advance(ctx context.Context, sessionID string) (*domain.AdvanceOutcome, error) {
	var outcome domain.AdvanceOutcome
	_, err := s.store.Update(ctx, sessionID, func(qs domain.QuizSession) (domain.QuizSession, error) {
		next, out, err := domain.Advance(s.bank, s.normalize(sessionID, qs))
		if err != nil {
			return qs, err
		}
		outcome = out
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

func (s *quizServiceImpl) Restart(ctx context.Context, sessionID string) (*dto.QuizStateResponse, error) {
	qs, err := s.store.Update(ctx, sessionID, func(domain.QuizSession) (domain.QuizSession, error) {
		return domain.Restart(), nil
	})
	if err != nil {
		return nil, err
	}
	return s.stateResponse(qs), nil
}

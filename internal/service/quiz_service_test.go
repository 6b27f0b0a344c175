package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"autoworld/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuizService(t *testing.T, c domain.Cache) QuizService {
	t.Helper()
	svc, err := NewQuizService(domain.DefaultQuestionBank(), c, time.Hour)
	require.NoError(t, err)
	return svc
}

func TestNewQuizService_InvalidBank(t *testing.T) {
	_, err := NewQuizService(domain.QuestionBank{{Prompt: "q", Answers: []string{"a"}}}, newTestCache(), time.Hour)
	assert.Error(t, err)
}

func TestQuizService_FullRun(t *testing.T) {
	ctx := context.Background()
	svc := newTestQuizService(t, newTestCache())

	state, err := svc.Start(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAwaitingAnswer, state.Phase)
	assert.Equal(t, 1, state.Question.Number)
	assert.Nil(t, state.Summary)

	_, err = svc.Advance(ctx, "s1")
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeAnswerRequired, domainErr.Code)

	correct := []int{0, 2, 1, 1, 1}
	for i, choice := range correct {
		out, err := svc.SelectAnswer(ctx, "s1", choice)
		require.NoError(t, err)
		assert.True(t, out.Accepted)
		assert.True(t, out.Correct)

		dup, err := svc.SelectAnswer(ctx, "s1", (choice+1)%domain.AnswerCount)
		require.NoError(t, err)
		assert.True(t, dup.AlreadyAnswered)

		if i < len(correct)-1 {
			adv, err := svc.Advance(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, i+2, adv.View.Number)
		} else {
			require.NotNil(t, out.Summary)
			assert.Equal(t, domain.TierTop, out.Summary.Tier)
		}
	}

	state, err = svc.Current(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseFinished, state.Phase)
	assert.Equal(t, 5, state.Score)
	require.NotNil(t, state.Summary)
	assert.Equal(t, 100, state.Summary.Percentage)

	state, err = svc.Restart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, state.Score)
	assert.Equal(t, 1, state.Question.Number)
}

func TestQuizService_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc := newTestQuizService(t, newTestCache())
	_, err := svc.Start(ctx, "a")
	require.NoError(t, err)
	_, err = svc.Start(ctx, "b")
	require.NoError(t, err)

	_, err = svc.SelectAnswer(ctx, "a", 0)
	require.NoError(t, err)

	b, err := svc.Current(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 0, b.Score)
	assert.Equal(t, domain.PhaseAwaitingAnswer, b.Phase)
}

func TestQuizService_UnknownSession(t *testing.T) {
	svc := newTestQuizService(t, newTestCache())
	_, err := svc.SelectAnswer(context.Background(), "ghost", 0)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}

func TestQuizService_InvalidChoiceKeepsState(t *testing.T) {
	ctx := context.Background()
	svc := newTestQuizService(t, newTestCache())
	_, err := svc.Start(ctx, "s1")
	require.NoError(t, err)

	_, err = svc.SelectAnswer(ctx, "s1", 7)
	require.Error(t, err)

	state, err := svc.Current(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAwaitingAnswer, state.Phase)
}

func TestQuizService_ShrunkBankRestartsSession(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()
	full := newTestQuizService(t, c)
	_, err := full.Start(ctx, "s1")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = full.SelectAnswer(ctx, "s1", 0)
		require.NoError(t, err)
		_, err = full.Advance(ctx, "s1")
		require.NoError(t, err)
	}

	short, err := NewQuizService(domain.DefaultQuestionBank()[:2], c, time.Hour)
	require.NoError(t, err)
	state, err := short.Current(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, state.Question.Number)
	assert.Equal(t, 2, state.Question.Total)
}

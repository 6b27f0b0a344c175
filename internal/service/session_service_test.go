package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"autoworld/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T, c domain.Cache) (SessionService, TokenService) {
	t.Helper()
	tokens, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)
	quiz, err := NewQuizService(domain.DefaultQuestionBank(), c, time.Hour)
	require.NoError(t, err)
	builder, err := NewBuilderService(domain.DefaultPartCatalog(), c, time.Hour, newFakeScheduler(), testBuilderConfig)
	require.NoError(t, err)
	return NewSessionService(tokens, quiz, builder, c, time.Hour), tokens
}

func TestSessionService_CreateAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSessionService(t, newTestCache())

	resp, err := svc.Create(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.SessionID, 26)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	assert.Equal(t, domain.PhaseAwaitingAnswer, resp.Quiz.Phase)
	assert.Len(t, resp.Builder.Slots, 4)

	id, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.SessionID, id)
}

func TestSessionService_Authenticate_BadToken(t *testing.T) {
	svc, _ := newTestSessionService(t, newTestCache())

	_, err := svc.Authenticate(context.Background(), "not-a-token")
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeUnauthorized, domainErr.Code)
}

func TestSessionService_Authenticate_ExpiredSession(t *testing.T) {
	svc, tokens := newTestSessionService(t, newTestCache())

	// valid signature, but the session was never registered (or its state expired)
	token, _, err := tokens.Issue("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}

func TestSessionService_Create_CacheFailure(t *testing.T) {
	mockCache := new(MockCache)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, time.Hour).Return(errors.New("redis down")).Once()
	svc, _ := newTestSessionService(t, mockCache)

	_, err := svc.Create(context.Background())
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
	mockCache.AssertExpectations(t)
}

func TestSessionService_Authenticate_SlidesTTL(t *testing.T) {
	mockCache := new(MockCache)
	svc, tokens := newTestSessionService(t, mockCache)
	token, _, err := tokens.Issue("s1")
	require.NoError(t, err)

	mockCache.On("Expire", mock.Anything, "autoworld:session:meta:s1", time.Hour).Return(nil).Once()
	mockCache.On("Expire", mock.Anything, "autoworld:quiz:state:s1", time.Hour).Return(nil).Once()
	mockCache.On("Expire", mock.Anything, "autoworld:builder:state:s1", time.Hour).Return(domain.ErrCacheMiss).Once()
	id, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "s1", id)
	mockCache.AssertExpectations(t)
}

func TestSessionService_ActiveSessionOutlivesTTL(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()
	tokens, err := NewTokenService(testSecret, 300*time.Millisecond)
	require.NoError(t, err)
	quiz, err := NewQuizService(domain.DefaultQuestionBank(), c, 300*time.Millisecond)
	require.NoError(t, err)
	builder, err := NewBuilderService(domain.DefaultPartCatalog(), c, 300*time.Millisecond, newFakeScheduler(), testBuilderConfig)
	require.NoError(t, err)
	svc := NewSessionService(tokens, quiz, builder, c, 300*time.Millisecond)

	resp, err := svc.Create(ctx)
	require.NoError(t, err)

	// keep the session busy for several TTLs
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		id, err := svc.Authenticate(ctx, resp.Token)
		require.NoError(t, err, "active session rejected")
		assert.Equal(t, resp.SessionID, id)
		time.Sleep(100 * time.Millisecond)
	}
	_, err = quiz.Current(ctx, resp.SessionID)
	require.NoError(t, err, "quiz state should live as long as the session")
	_, err = builder.Current(ctx, resp.SessionID)
	require.NoError(t, err, "builder state should live as long as the session")

	// idle for longer than the TTL
	time.Sleep(600 * time.Millisecond)
	_, err = svc.Authenticate(ctx, resp.Token)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)
}

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"autoworld/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSampleRate = 8000

func TestSoundService_RenderWAV_CachesResult(t *testing.T) {
	ctx := context.Background()
	c := newTestCache()
	svc, err := NewSoundService(domain.DefaultSoundPresets(), c, testSampleRate, time.Hour)
	require.NoError(t, err)

	data, err := svc.RenderWAV(ctx, "horn")
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Len(t, data, 44+2*4000)

	raw, err := c.Get(ctx, "autoworld:sound:wav:horn:8000")
	require.NoError(t, err)
	cached, err := base64.StdEncoding.DecodeString(raw)
	require.NoError(t, err)
	assert.Equal(t, data, cached)

	again, err := svc.RenderWAV(ctx, "horn")
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestSoundService_RenderWAV_ServesFromCache(t *testing.T) {
	ctx := context.Background()
	mockCache := new(MockCache)
	payload := []byte("RIFF-cached")
	mockCache.On("Get", mock.Anything, "autoworld:sound:wav:engine:8000").
		Return(base64.StdEncoding.EncodeToString(payload), nil).Once()

	svc, err := NewSoundService(domain.DefaultSoundPresets(), mockCache, testSampleRate, time.Hour)
	require.NoError(t, err)

	data, err := svc.RenderWAV(ctx, "engine")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestSoundService_RenderWAV_CacheFailuresStillRender(t *testing.T) {
	ctx := context.Background()
	mockCache := new(MockCache)
	mockCache.On("Get", mock.Anything, mock.Anything).Return("", errors.New("redis down")).Once()
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, time.Hour).Return(errors.New("redis down")).Once()

	svc, err := NewSoundService(domain.DefaultSoundPresets(), mockCache, testSampleRate, time.Hour)
	require.NoError(t, err)

	data, err := svc.RenderWAV(ctx, "turbo")
	require.NoError(t, err)
	assert.Len(t, data, 44+2*8000)
	mockCache.AssertExpectations(t)
}

func TestSoundService_RenderWAV_Concurrent(t *testing.T) {
	svc, err := NewSoundService(domain.DefaultSoundPresets(), nil, testSampleRate, time.Hour)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, err := svc.RenderWAV(context.Background(), "brake")
			assert.NoError(t, err)
			results[i] = data
		}(i)
	}
	wg.Wait()
	for _, r := range results[1:] {
		assert.Equal(t, results[0], r)
	}
}

func TestSoundService_UnknownType(t *testing.T) {
	svc, err := NewSoundService(domain.DefaultSoundPresets(), nil, testSampleRate, time.Hour)
	require.NoError(t, err)

	_, err = svc.RenderWAV(context.Background(), "whoosh")
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)

	_, err = svc.Get("whoosh")
	assert.Error(t, err)

	p, err := svc.Get("rev")
	require.NoError(t, err)
	assert.Equal(t, int64(200), p.Feedback.RevertAfterMs)
	assert.Len(t, svc.List(), 7)
}

func TestNewSoundService_RejectsBadPreset(t *testing.T) {
	_, err := NewSoundService([]domain.SoundPreset{{Type: "silent"}}, nil, testSampleRate, time.Hour)
	assert.Error(t, err)
}

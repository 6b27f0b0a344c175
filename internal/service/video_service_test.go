package service

import (
	"errors"
	"testing"
	"time"

	"autoworld/internal/config"
	"autoworld/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVideoConfig = config.VideoConfig{TickInterval: 100 * time.Millisecond, Step: 1}

func newTestVideoService() (*videoServiceImpl, *fakeScheduler) {
	sched := newFakeScheduler()
	svc := NewVideoService(domain.DefaultVideos(), sched, testVideoConfig, time.Hour).(*videoServiceImpl)
	return svc, sched
}

func TestVideoService_PlayToEnd(t *testing.T) {
	svc, sched := newTestVideoService()

	state, err := svc.Open("s1", 2)
	require.NoError(t, err)
	assert.True(t, state.ModalOpen)
	assert.Equal(t, "Racing Championship - Best Moments", state.Title)

	state, err = svc.TogglePlay("s1")
	require.NoError(t, err)
	assert.True(t, state.Playing)

	key := "s1:video:tick"
	require.Equal(t, []string{key}, sched.pending())
	assert.Equal(t, 100*time.Millisecond, sched.delay(key))

	ticks := 0
	for len(sched.pending()) > 0 {
		require.True(t, sched.fire(key))
		ticks++
		if ticks == 50 {
			assert.Equal(t, 50, svc.State("s1").Progress)
		}
	}
	assert.Equal(t, 100, ticks)

	state = svc.State("s1")
	assert.False(t, state.Playing)
	assert.Equal(t, 0, state.Progress)
	assert.True(t, state.ModalOpen)
}

func TestVideoService_PauseKeepsProgress(t *testing.T) {
	svc, sched := newTestVideoService()
	_, err := svc.Open("s1", 1)
	require.NoError(t, err)
	_, err = svc.TogglePlay("s1")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		sched.fire("s1:video:tick")
	}

	state, err := svc.TogglePlay("s1")
	require.NoError(t, err)
	assert.False(t, state.Playing)
	assert.Equal(t, 10, state.Progress)
	assert.Empty(t, sched.pending())
}

func TestVideoService_CloseStopsTicking(t *testing.T) {
	svc, sched := newTestVideoService()
	_, err := svc.Open("s1", 3)
	require.NoError(t, err)
	_, err = svc.TogglePlay("s1")
	require.NoError(t, err)

	state := svc.Close("s1")
	assert.False(t, state.ModalOpen)
	assert.Empty(t, sched.pending())

	_, err = svc.TogglePlay("s1")
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeConflict, domainErr.Code)
}

func TestVideoService_OpenUnknownVideo(t *testing.T) {
	svc, _ := newTestVideoService()
	_, err := svc.Open("s1", 42)
	assert.Error(t, err)
}

func TestVideoService_SweepIdle(t *testing.T) {
	svc, sched := newTestVideoService()
	now := time.Date(2025, 8, 11, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.Open("old", 1)
	require.NoError(t, err)
	_, err = svc.TogglePlay("old")
	require.NoError(t, err)

	now = now.Add(50 * time.Minute)
	_, err = svc.Open("fresh", 1)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	assert.Equal(t, 1, svc.SweepIdle())
	assert.Empty(t, sched.pending())
	assert.False(t, svc.State("old").ModalOpen)
	assert.True(t, svc.State("fresh").ModalOpen)
}

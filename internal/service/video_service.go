package service

import (
	"sync"
	"time"

	"autoworld/internal/config"
	"autoworld/internal/domain"
	"autoworld/internal/logger"

	"go.uber.org/zap"
)

// VideoService runs the fake video player modal of each page session.
// Players live in process memory because their progress ticks run here.
type VideoService interface {
	Open(sessionID string, videoID int) (*domain.PlayerState, error)
	TogglePlay(sessionID string) (*domain.PlayerState, error)
	Close(sessionID string) *domain.PlayerState
	State(sessionID string) *domain.PlayerState
	SweepIdle() int
}

type player struct {
	state    domain.PlayerState
	lastSeen time.Time
}

type videoServiceImpl struct {
	mu        sync.Mutex
	videos    []domain.Video
	players   map[string]*player
	scheduler Scheduler
	cfg       config.VideoConfig
	idleAfter time.Duration
	now       func() time.Time
}

// NewVideoService creates the player service; players untouched for idleAfter are dropped by SweepIdle.
func NewVideoService(videos []domain.Video, sched Scheduler, cfg config.VideoConfig, idleAfter time.Duration) VideoService {
	return &videoServiceImpl{
		videos:    videos,
		players:   make(map[string]*player),
		scheduler: sched,
		cfg:       cfg,
		idleAfter: idleAfter,
		now:       time.Now,
	}
}

func tickKey(sessionID string) string {
	return sessionID + ":video:tick"
}

// touch returns the session's player, creating a closed one. Callers hold s.mu.
func (s *videoServiceImpl) touch(sessionID string) *player {
	p, ok := s.players[sessionID]
	if !ok {
		p = &player{}
		s.players[sessionID] = p
	}
	p.lastSeen = s.now()
	return p
}

func (s *videoServiceImpl) Open(sessionID string, videoID int) (*domain.PlayerState, error) {
	v, err := domain.FindVideo(s.videos, videoID)
	if err != nil {
		return nil, err
	}
	s.scheduler.Cancel(tickKey(sessionID))

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.touch(sessionID)
	p.state = domain.OpenVideo(v)
	out := p.state
	return &out, nil
}

func (s *videoServiceImpl) TogglePlay(sessionID string) (*domain.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.touch(sessionID)
	if !p.state.ModalOpen {
		return nil, domain.NewConflictError("no video is open")
	}

	if p.state.Playing {
		s.scheduler.Cancel(tickKey(sessionID))
		p.state.Playing = false
	} else {
		p.state.Playing = true
		s.scheduler.Every(tickKey(sessionID), s.cfg.TickInterval, func() bool {
			return s.tick(sessionID)
		})
	}
	out := p.state
	return &out, nil
}

func (s *videoServiceImpl) tick(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[sessionID]
	if !ok {
		return false
	}
	next, more := domain.TickPlayer(p.state, s.cfg.Step)
	p.state = next
	if !more && next.Progress == 0 && next.ModalOpen {
		logger.Get().Debug("Video playback finished", zap.String("sessionID", sessionID), zap.Int("videoID", next.VideoID))
	}
	return more
}

// Close stops the progress tick before hiding the modal.
func (s *videoServiceImpl) Close(sessionID string) *domain.PlayerState {
	s.scheduler.Cancel(tickKey(sessionID))

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.touch(sessionID)
	p.state = domain.CloseVideo()
	out := p.state
	return &out
}

func (s *videoServiceImpl) State(sessionID string) *domain.PlayerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.touch(sessionID).state
	return &out
}

// SweepIdle drops players of sessions not seen for idleAfter and stops their ticks.
func (s *videoServiceImpl) SweepIdle() int {
	s.mu.Lock()
	cutoff := s.now().Add(-s.idleAfter)
	var idle []string
	for id, p := range s.players {
		if p.lastSeen.Before(cutoff) {
			idle = append(idle, id)
			delete(s.players, id)
		}
	}
	s.mu.Unlock()

	for _, id := range idle {
		s.scheduler.Cancel(tickKey(id))
	}
	if len(idle) > 0 {
		logger.Get().Info("Swept idle video players", zap.Int("count", len(idle)))
	}
	return len(idle)
}

// Package scheduler runs delayed and repeating actions that can be cancelled by key.
package scheduler

import (
	"strings"
	"sync"
	"time"

	"autoworld/internal/logger"

	"go.uber.org/zap"
)

type task struct {
	timer     *time.Timer
	interval  time.Duration
	cancelled bool
}

// Scheduler owns a set of keyed timers. Keys are free-form; services use
// "<session id>:<action>" so that CancelPrefix can drop everything of one session.
type Scheduler struct {
	mu      sync.Mutex
	tasks   map[string]*task
	stopped bool
}

// New returns an empty scheduler.
func New() *Scheduler {
	return &Scheduler{tasks: make(map[string]*task)}
}

// After runs fn once after delay. An action already registered under key is cancelled first.
func (s *Scheduler) After(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.cancelLocked(key)

	t := &task{}
	t.timer = time.AfterFunc(delay, func() {
		if !s.claim(key, t, false) {
			return
		}
		s.run(key, func() bool { fn(); return false })
	})
	s.tasks[key] = t
}

// Every runs fn every interval until fn returns false or the key is cancelled.
func (s *Scheduler) Every(key string, interval time.Duration, fn func() bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.cancelLocked(key)

	t := &task{interval: interval}
	var tick func()
	tick = func() {
		if !s.claim(key, t, true) {
			return
		}
		if !s.run(key, fn) {
			s.mu.Lock()
			if s.tasks[key] == t {
				delete(s.tasks, key)
			}
			s.mu.Unlock()
			return
		}
		s.mu.Lock()
		if !t.cancelled && s.tasks[key] == t {
			t.timer = time.AfterFunc(t.interval, tick)
		}
		s.mu.Unlock()
	}
	t.timer = time.AfterFunc(interval, tick)
	s.tasks[key] = t
}

// claim reports whether t is still the live task for key. One-shot tasks are removed.
func (s *Scheduler) claim(key string, t *task, repeating bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.cancelled || s.tasks[key] != t {
		return false
	}
	if !repeating {
		delete(s.tasks, key)
	}
	return true
}

func (s *Scheduler) run(key string, fn func() bool) (again bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Error("Scheduled action panicked",
				zap.String("key", key),
				zap.Any("panic", r))
			again = false
		}
	}()
	return fn()
}

// Cancel stops the action registered under key. The action does not start after Cancel returns.
func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(key)
}

// CancelPrefix cancels every action whose key starts with prefix and returns how many were pending.
func (s *Scheduler) CancelPrefix(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for key := range s.tasks {
		if strings.HasPrefix(key, prefix) {
			s.cancelLocked(key)
			n++
		}
	}
	return n
}

func (s *Scheduler) cancelLocked(key string) {
	t, ok := s.tasks[key]
	if !ok {
		return
	}
	t.cancelled = true
	t.timer.Stop()
	delete(s.tasks, key)
}

// Pending reports whether an action is registered under key.
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[key]
	return ok
}

// Len returns the number of registered actions.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Stop cancels everything and rejects new actions.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.tasks {
		s.cancelLocked(key)
	}
	s.stopped = true
}

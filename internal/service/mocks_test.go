package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"autoworld/internal/adapter"
	"autoworld/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	args := m.Called(ctx, key, expiration)
	return args.Error(0)
}

// --- MockSubscriberRepository ---
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) Create(ctx context.Context, s *domain.Subscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// --- MockTransactionManager ---
// Runs fn directly so repository expectations see the caller's context.
type MockTransactionManager struct{}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- fakeScheduler ---
// Records actions so tests can fire them deterministically.
type fakeScheduler struct {
	mu        sync.Mutex
	once      map[string]func()
	repeating map[string]func() bool
	delays    map[string]time.Duration
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{
		once:      map[string]func(){},
		repeating: map[string]func() bool{},
		delays:    map[string]time.Duration{},
	}
}

func (f *fakeScheduler) After(key string, delay time.Duration, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.repeating, key)
	f.once[key] = fn
	f.delays[key] = delay
}

func (f *fakeScheduler) Every(key string, interval time.Duration, fn func() bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.once, key)
	f.repeating[key] = fn
	f.delays[key] = interval
}

func (f *fakeScheduler) Cancel(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.once, key)
	delete(f.repeating, key)
	delete(f.delays, key)
}

func (f *fakeScheduler) CancelPrefix(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for key := range f.delays {
		if strings.HasPrefix(key, prefix) {
			delete(f.once, key)
			delete(f.repeating, key)
			delete(f.delays, key)
			n++
		}
	}
	return n
}

func (f *fakeScheduler) pending() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.delays))
	for k := range f.delays {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f *fakeScheduler) delay(key string) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.delays[key]
}

// fire runs the action under key once and reports whether it existed.
func (f *fakeScheduler) fire(key string) bool {
	f.mu.Lock()
	once, isOnce := f.once[key]
	rep, isRep := f.repeating[key]
	if isOnce {
		delete(f.once, key)
		delete(f.delays, key)
	}
	f.mu.Unlock()

	switch {
	case isOnce:
		once()
		return true
	case isRep:
		if !rep() {
			f.Cancel(key)
		}
		return true
	}
	return false
}

func newTestCache() domain.Cache {
	return adapter.NewMemoryCacheAdapter()
}

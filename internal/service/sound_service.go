package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"autoworld/internal/adapter/audio"
	"autoworld/internal/cache"
	"autoworld/internal/domain"
	"autoworld/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SoundService exposes the synthesised sound effects.
type SoundService interface {
	List() []domain.SoundPreset
	Get(soundType string) (*domain.SoundPreset, error)
	RenderWAV(ctx context.Context, soundType string) ([]byte, error)
}

type soundServiceImpl struct {
	presets    []domain.SoundPreset
	cache      domain.Cache
	sampleRate int
	cacheTTL   time.Duration
	group      singleflight.Group
}

// NewSoundService validates every preset up front; cache may be nil to render on every request.
func NewSoundService(presets []domain.SoundPreset, c domain.Cache, sampleRate int, cacheTTL time.Duration) (SoundService, error) {
	for _, p := range presets {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	if c == nil {
		logger.Get().Warn("SoundService initialized with nil cache. WAV files will be rendered on every request.")
	}
	return &soundServiceImpl{presets: presets, cache: c, sampleRate: sampleRate, cacheTTL: cacheTTL}, nil
}

func (s *soundServiceImpl) List() []domain.SoundPreset {
	return s.presets
}

func (s *soundServiceImpl) Get(soundType string) (*domain.SoundPreset, error) {
	p, err := domain.FindSoundPreset(s.presets, soundType)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *soundServiceImpl) cacheKey(soundType string) string {
	return cache.GenerateCacheKey(cache.ServiceSound, cache.ObjectWAV, soundType, strconv.Itoa(s.sampleRate))
}

// RenderWAV returns the preset as a WAV file. Concurrent renders of one preset share a single synthesis.
func (s *soundServiceImpl) RenderWAV(ctx context.Context, soundType string) ([]byte, error) {
	preset, err := domain.FindSoundPreset(s.presets, soundType)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey(soundType)
	if data, ok := s.cached(ctx, key); ok {
		return data, nil
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		data, err := audio.EncodeWAV(domain.Synthesize(preset, s.sampleRate), s.sampleRate)
		if err != nil {
			return nil, domain.NewInternalError(fmt.Sprintf("failed to render sound %s", soundType), err)
		}
		s.store(ctx, key, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("Shared in-flight sound render", zap.String("soundType", soundType))
	}
	return v.([]byte), nil
}

func (s *soundServiceImpl) cached(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Error("Failed to get rendered sound from cache", zap.Error(err), zap.String("key", key))
		} else {
			logger.Get().Debug("Rendered sound cache miss", zap.String("key", key))
		}
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		logger.Get().Warn("Discarding corrupt rendered sound", zap.Error(err), zap.String("key", key))
		return nil, false
	}
	return data, true
}

// store is best effort; a cache failure only costs a re-render.
func (s *soundServiceImpl) store(ctx context.Context, key string, data []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, base64.StdEncoding.EncodeToString(data), s.cacheTTL); err != nil {
		logger.Get().Error("Failed to cache rendered sound", zap.Error(err), zap.String("key", key))
	}
}

package handler

import (
	"fmt"

	"autoworld/internal/dto"
	"autoworld/internal/logger"
	"autoworld/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SoundHandler struct {
	service service.SoundService
}

func NewSoundHandler(service service.SoundService) *SoundHandler {
	return &SoundHandler{service: service}
}

// ListSounds godoc
// @Summary List sound effects
// @Tags sounds
// @Produce json
// @Success 200 {object} dto.SoundListResponse
// @Router /sounds [get]
func (h *SoundHandler) ListSounds(c *fiber.Ctx) error {
	presets := h.service.List()
	resp := dto.SoundListResponse{Sounds: make([]dto.SoundSummary, 0, len(presets))}
	for _, p := range presets {
		resp.Sounds = append(resp.Sounds, dto.SoundSummary{
			Type:     p.Type,
			Label:    p.Label,
			Feedback: p.Feedback,
			WAVURL:   fmt.Sprintf("/api/sounds/%s/wav", p.Type),
		})
	}
	return c.JSON(resp)
}

// GetSound godoc
// @Summary Get a sound preset
// @Description Oscillator and automation parameters, for clients that synthesise locally
// @Tags sounds
// @Produce json
// @Param soundType path string true "Sound type"
// @Success 200 {object} domain.SoundPreset
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sounds/{soundType} [get]
func (h *SoundHandler) GetSound(c *fiber.Ctx) error {
	preset, err := h.service.Get(c.Params("soundType"))
	if err != nil {
		return err
	}
	return c.JSON(preset)
}

// GetSoundWAV godoc
// @Summary Get a rendered sound
// @Tags sounds
// @Produce audio/wav
// @Param soundType path string true "Sound type"
// @Success 200 {file} binary
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sounds/{soundType}/wav [get]
func (h *SoundHandler) GetSoundWAV(c *fiber.Ctx) error {
	soundType := c.Params("soundType")
	data, err := h.service.RenderWAV(c.UserContext(), soundType)
	if err != nil {
		return err
	}
	logger.Get().Debug("Serving sound", zap.String("soundType", soundType), zap.Int("bytes", len(data)))

	c.Set(fiber.HeaderContentType, "audio/wav")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(data)
}

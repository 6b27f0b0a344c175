package handler

import (
	"autoworld/internal/domain"
	"autoworld/internal/dto"
	"autoworld/internal/middleware"
	"autoworld/internal/service"
	"autoworld/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	service   service.VideoService
	validator *validation.Validator
}

func NewVideoHandler(service service.VideoService, v *validation.Validator) *VideoHandler {
	return &VideoHandler{service: service, validator: v}
}

// Open godoc
// @Summary Open the video modal
// @Tags video
// @Security SessionToken
// @Accept json
// @Produce json
// @Param request body dto.OpenVideoRequest true "Video"
// @Success 200 {object} domain.PlayerState
// @Failure 404 {object} middleware.ErrorResponse
// @Router /video/open [post]
func (h *VideoHandler) Open(c *fiber.Ctx) error {
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return err
	}
	var req dto.OpenVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return err
	}
	state, err := h.service.Open(sessionID, req.VideoID)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// Toggle godoc
// @Summary Play or pause the open video
// @Tags video
// @Security SessionToken
// @Produce json
// @Success 200 {object} domain.PlayerState
// @Failure 409 {object} middleware.ErrorResponse "No video is open"
// @Router /video/toggle [post]
func (h *VideoHandler) Toggle(c *fiber.Ctx) error {
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return err
	}
	state, err := h.service.TogglePlay(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// Close godoc
// @Summary Close the video modal
// @Tags video
// @Security SessionToken
// @Produce json
// @Success 200 {object} domain.PlayerState
// @Router /video/close [post]
func (h *VideoHandler) Close(c *fiber.Ctx) error {
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return err
	}
	return c.JSON(h.service.Close(sessionID))
}

// State godoc
// @Summary Get the player state
// @Tags video
// @Security SessionToken
// @Produce json
// @Success 200 {object} domain.PlayerState
// @Router /video [get]
func (h *VideoHandler) State(c *fiber.Ctx) error {
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return err
	}
	return c.JSON(h.service.State(sessionID))
}

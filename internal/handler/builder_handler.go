package handler

import (
	"autoworld/internal/domain"
	"autoworld/internal/dto"
	"autoworld/internal/middleware"
	"autoworld/internal/service"
	"autoworld/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type BuilderHandler struct {
	service   service.BuilderService
	validator *validation.Validator
}

func NewBuilderHandler(service service.BuilderService, v *validation.Validator) *BuilderHandler {
	return &BuilderHandler{service: service, validator: v}
}

// GetBuilder godoc
// @Summary Get the car builder
// @Tags builder
// @Security SessionToken
// @Produce json
// @Success 200 {object} domain.BuilderView
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /builder [get]
func (h *BuilderHandler) GetBuilder(c *fiber.Ctx) error {
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return err
	}
	view, err := h.service.Current(c.UserContext(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Drop godoc
// @Summary Drop a part on a slot
// @Description A matching part fills the slot; a mismatch marks the slot for a short time.
// @Tags builder
// @Security SessionToken
// @Accept json
// @Produce json
// @Param request body dto.DropRequest true "Part and slot"
// @Success 200 {object} dto.DropResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "Unknown part or slot"
// @Router /builder/drop [post]
func (h *BuilderHandler) Drop(c *fiber.Ctx) error {
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return err
	}

	var req dto.DropRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return err
	}

	resp, err := h.service.Drop(c.UserContext(), sessionID, req.PartID, domain.PartCategory(req.Slot))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Reset godoc
// @Summary Reset the car builder
// @Tags builder
// @Security SessionToken
// @Produce json
// @Success 200 {object} domain.BuilderView
// @Router /builder/reset [post]
func (h *BuilderHandler) Reset(c *fiber.Ctx) error {
	sessionID, err := middleware.SessionID(c)
	if err != nil {
		return err
	}
	view, err := h.service.Reset(c.UserContext(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

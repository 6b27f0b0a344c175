package handler

import (
	"autoworld/internal/domain"
	"autoworld/internal/dto"
	"autoworld/internal/service"
	"autoworld/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type NewsletterHandler struct {
	service   service.NewsletterService
	validator *validation.Validator
}

func NewNewsletterHandler(service service.NewsletterService, v *validation.Validator) *NewsletterHandler {
	return &NewsletterHandler{service: service, validator: v}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Repeating a signup succeeds and reports already_subscribed.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Signup form"
// @Success 200 {object} dto.SubscribeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /newsletter [post]
func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return err
	}
	// Empty and malformed addresses are rejected by the service with the form's messages.

	resp, err := h.service.Subscribe(c.UserContext(), req.Email, req.Source)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

package handler

import (
	"autoworld/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LegalHandler struct {
	service service.LegalService
}

func NewLegalHandler(service service.LegalService) *LegalHandler {
	return &LegalHandler{service: service}
}

// List godoc
// @Summary List legal documents
// @Tags legal
// @Produce json
// @Success 200 {array} dto.LegalDocumentSummary
// @Router /legal [get]
func (h *LegalHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

// Get godoc
// @Summary Get a legal document
// @Tags legal
// @Produce json
// @Param doc path string true "privacy, terms or cookies"
// @Success 200 {object} domain.LegalDocument
// @Failure 404 {object} middleware.ErrorResponse
// @Router /legal/{doc} [get]
func (h *LegalHandler) Get(c *fiber.Ctx) error {
	doc, err := h.service.Get(c.Params("doc"))
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

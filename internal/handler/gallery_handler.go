package handler

import (
	"autoworld/internal/dto"
	"autoworld/internal/service"

	"github.com/gofiber/fiber/v2"
)

type GalleryHandler struct {
	service service.GalleryService
}

func NewGalleryHandler(service service.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// GetCarDetails godoc
// @Summary Get car details
// @Tags gallery
// @Produce json
// @Param carType path string true "Car type"
// @Success 200 {object} dto.CarDetailsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /gallery/cars/{carType} [get]
func (h *GalleryHandler) GetCarDetails(c *fiber.Ctx) error {
	card, err := h.service.Details(c.Params("carType"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CarDetailsResponse{Type: card.Type, Title: card.Title, Info: card.Info})
}

// Filter godoc
// @Summary Filter the gallery
// @Tags gallery
// @Produce json
// @Param category query string false "Category, defaults to all"
// @Success 200 {object} domain.GalleryView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /gallery [get]
func (h *GalleryHandler) Filter(c *fiber.Ctx) error {
	return c.JSON(h.service.Filter(c.Query("category")))
}

package middleware

import (
	"autoworld/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: v}
}

// ValidateSlugParam rejects a path parameter that is not a lowercase identifier.
func (vm *ValidationMiddleware) ValidateSlugParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := vm.validator.ValidateSlug(param, c.Params(param)); err != nil {
			return err // This will be handled by ErrorHandler
		}
		return c.Next()
	}
}

// ValidateSlugQuery rejects a query parameter that is present but not a lowercase identifier.
func (vm *ValidationMiddleware) ValidateSlugQuery(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if value := c.Query(param); value != "" {
			if err := vm.validator.ValidateSlug(param, value); err != nil {
				return err
			}
		}
		return c.Next()
	}
}

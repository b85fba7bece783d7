package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/domain"
)

// ErrorHandler maps domain errors to HTTP status codes. Validation failures
// are 400, missing rows 404, uniqueness and referential conflicts 409.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := StatusFor(err)

		if code == fiber.StatusInternalServerError {
			log.Error("Internal Server Error", zap.Error(err), zap.String("path", c.Path()))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

// StatusFor resolves the HTTP status code an error maps to.
func StatusFor(err error) int {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.ConflictError
		fiberErr      *fiber.Error
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	case errors.As(err, &conflictErr):
		return fiber.StatusConflict
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

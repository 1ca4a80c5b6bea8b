package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/middleware"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/repository"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/storage"
)

// mapWriteError translates service-layer failures into API responses:
// missing rows → 404, constraint violations (bad relation ids) → 422,
// blob-store failures → 500 with a distinct code, anything else → 500.
func mapWriteError(c fiber.Ctx, err error, entity string) error {
	var constraintErr *repository.ConstraintError
	var blobErr *storage.BlobError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", entity+" not found")
	case errors.As(err, &constraintErr):
		return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_RELATION",
			"A referenced id does not exist")
	case errors.As(err, &blobErr):
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "STORAGE_ERROR",
			"File storage operation failed")
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to write "+entity)
	}
}

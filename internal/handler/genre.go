package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/middleware"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/service"
)

type GenreHandler struct {
	svc *service.GenreService
}

func NewGenreHandler(svc *service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

// List handles GET /api/genres
func (h *GenreHandler) List(c fiber.Ctx) error {
	genres, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list genres")
	}
	if genres == nil {
		genres = []model.Genre{}
	}
	return c.JSON(genres)
}

// Get handles GET /api/genres/:id
func (h *GenreHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	genre, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapWriteError(c, err, "Genre")
	}
	return c.JSON(genre)
}

// Create handles POST /api/genres
func (h *GenreHandler) Create(c fiber.Ctx) error {
	in, errResp := h.parseInput(c)
	if errResp != nil {
		return errResp
	}

	genre, err := h.svc.Create(c.Context(), in)
	if err != nil {
		return mapWriteError(c, err, "Genre")
	}
	return c.Status(fiber.StatusCreated).JSON(genre)
}

// Update handles PUT /api/genres/:id
func (h *GenreHandler) Update(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	in, errResp := h.parseInput(c)
	if errResp != nil {
		return errResp
	}

	genre, err := h.svc.Update(c.Context(), id, in)
	if err != nil {
		return mapWriteError(c, err, "Genre")
	}
	return c.JSON(genre)
}

// Delete handles DELETE /api/genres/:id
func (h *GenreHandler) Delete(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapWriteError(c, err, "Genre")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *GenreHandler) parseInput(c fiber.Ctx) (model.GenreInput, error) {
	var in model.GenreInput
	if err := c.Bind().JSON(&in); err != nil {
		return in, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateTitle(in.Name)
	if errMsg != "" {
		return in, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD", "name is required and must be at most 255 characters")
	}
	in.Name = name

	if in.CategoryIDs != nil {
		clean, errMsg := middleware.ValidateUUIDList("categories_id", in.CategoryIDs)
		if errMsg != "" {
			return in, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD", errMsg)
		}
		in.CategoryIDs = clean
	}
	return in, nil
}

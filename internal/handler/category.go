package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/middleware"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/service"
)

type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c fiber.Ctx) error {
	cats, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list categories")
	}
	if cats == nil {
		cats = []model.Category{}
	}
	return c.JSON(cats)
}

// Get handles GET /api/categories/:id
func (h *CategoryHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	cat, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapWriteError(c, err, "Category")
	}
	return c.JSON(cat)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(c fiber.Ctx) error {
	in, errResp := h.parseInput(c)
	if errResp != nil {
		return errResp
	}

	cat, err := h.svc.Create(c.Context(), in)
	if err != nil {
		return mapWriteError(c, err, "Category")
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// Update handles PUT /api/categories/:id
func (h *CategoryHandler) Update(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	in, errResp := h.parseInput(c)
	if errResp != nil {
		return errResp
	}

	cat, err := h.svc.Update(c.Context(), id, in)
	if err != nil {
		return mapWriteError(c, err, "Category")
	}
	return c.JSON(cat)
}

// Delete handles DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapWriteError(c, err, "Category")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CategoryHandler) parseInput(c fiber.Ctx) (model.CategoryInput, error) {
	var in model.CategoryInput
	if err := c.Bind().JSON(&in); err != nil {
		return in, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateTitle(in.Name)
	if errMsg != "" {
		return in, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD", "name is required and must be at most 255 characters")
	}
	in.Name = name
	return in, nil
}

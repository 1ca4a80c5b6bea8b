package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/middleware"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/service"
)

type CastMemberHandler struct {
	svc *service.CastMemberService
}

func NewCastMemberHandler(svc *service.CastMemberService) *CastMemberHandler {
	return &CastMemberHandler{svc: svc}
}

// List handles GET /api/cast-members
func (h *CastMemberHandler) List(c fiber.Ctx) error {
	members, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list cast members")
	}
	if members == nil {
		members = []model.CastMember{}
	}
	return c.JSON(members)
}

// Get handles GET /api/cast-members/:id
func (h *CastMemberHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	m, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapWriteError(c, err, "Cast member")
	}
	return c.JSON(m)
}

// Create handles POST /api/cast-members
func (h *CastMemberHandler) Create(c fiber.Ctx) error {
	in, errResp := h.parseInput(c)
	if errResp != nil {
		return errResp
	}

	m, err := h.svc.Create(c.Context(), in)
	if err != nil {
		return mapWriteError(c, err, "Cast member")
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// Update handles PUT /api/cast-members/:id
func (h *CastMemberHandler) Update(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	in, errResp := h.parseInput(c)
	if errResp != nil {
		return errResp
	}

	m, err := h.svc.Update(c.Context(), id, in)
	if err != nil {
		return mapWriteError(c, err, "Cast member")
	}
	return c.JSON(m)
}

// Delete handles DELETE /api/cast-members/:id
func (h *CastMemberHandler) Delete(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapWriteError(c, err, "Cast member")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CastMemberHandler) parseInput(c fiber.Ctx) (model.CastMemberInput, error) {
	var in model.CastMemberInput
	if err := c.Bind().JSON(&in); err != nil {
		return in, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateTitle(in.Name)
	if errMsg != "" {
		return in, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD", "name is required and must be at most 255 characters")
	}
	in.Name = name

	if !model.ValidCastMemberType(in.Type) {
		return in, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD",
			"type must be 1 (director) or 2 (actor)")
	}
	return in, nil
}

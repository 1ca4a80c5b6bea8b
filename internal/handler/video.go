package handler

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/middleware"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/service"
)

type VideoHandler struct {
	svc      *service.VideoService
	genreSvc *service.GenreService
}

func NewVideoHandler(svc *service.VideoService, genreSvc *service.GenreService) *VideoHandler {
	return &VideoHandler{svc: svc, genreSvc: genreSvc}
}

// List handles GET /api/videos
func (h *VideoHandler) List(c fiber.Ctx) error {
	videos, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list videos")
	}
	if videos == nil {
		videos = []model.Video{}
	}
	return c.JSON(videos)
}

// Get handles GET /api/videos/:id
func (h *VideoHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	video, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapWriteError(c, err, "Video")
	}
	return c.JSON(video)
}

// Create handles POST /api/videos (multipart/form-data)
func (h *VideoHandler) Create(c fiber.Ctx) error {
	in, closers, errResp := h.parseVideoForm(c)
	defer closeAll(closers)
	if errResp != nil {
		return errResp
	}

	video, err := h.svc.Create(c.Context(), in)
	if err != nil {
		return mapWriteError(c, err, "Video")
	}

	Metrics.CatalogWrites.WithLabelValues("video", "create").Inc()
	for _, f := range in.Files {
		Metrics.UploadBytes.Observe(float64(f.Size))
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

// Update handles PUT /api/videos/:id (multipart/form-data)
func (h *VideoHandler) Update(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	in, closers, errResp := h.parseVideoForm(c)
	defer closeAll(closers)
	if errResp != nil {
		return errResp
	}

	video, err := h.svc.Update(c.Context(), id, in)
	if err != nil {
		return mapWriteError(c, err, "Video")
	}

	Metrics.CatalogWrites.WithLabelValues("video", "update").Inc()
	for _, f := range in.Files {
		Metrics.UploadBytes.Observe(float64(f.Size))
	}
	return c.JSON(video)
}

// Delete handles DELETE /api/videos/:id
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapWriteError(c, err, "Video")
	}

	Metrics.CatalogWrites.WithLabelValues("video", "delete").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// parseVideoForm validates the multipart payload and builds the service
// input. Relation lists are only applied when their key is submitted: an
// absent key leaves the relation untouched, a single empty value clears it.
// The returned closers own the opened file handles.
func (h *VideoHandler) parseVideoForm(c fiber.Ctx) (model.VideoInput, []io.Closer, error) {
	var in model.VideoInput

	form, err := c.MultipartForm()
	if err != nil {
		return in, nil, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY",
			"Request body must be multipart/form-data")
	}

	title, errMsg := middleware.ValidateTitle(first(form.Value["title"]))
	if errMsg != "" {
		return in, nil, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD", errMsg)
	}
	in.Title = title

	in.Description = first(form.Value["description"])
	if in.Description == "" {
		return in, nil, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD",
			"description is required")
	}

	year, errMsg := middleware.ValidateYearLaunched(first(form.Value["year_launched"]))
	if errMsg != "" {
		return in, nil, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD", errMsg)
	}
	in.YearLaunched = year

	rating, errMsg := middleware.ValidateRating(first(form.Value["rating"]))
	if errMsg != "" {
		return in, nil, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD", errMsg)
	}
	in.Rating = rating

	duration, errMsg := middleware.ValidateDuration(first(form.Value["duration"]))
	if errMsg != "" {
		return in, nil, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD", errMsg)
	}
	in.Duration = duration

	if raw := first(form.Value["opened"]); raw != "" {
		opened, err := strconv.ParseBool(raw)
		if err != nil {
			return in, nil, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD",
				"opened must be a boolean")
		}
		in.Opened = opened
	}

	if ids, ok := relationList(form, "categories_id"); ok {
		clean, errMsg := middleware.ValidateUUIDList("categories_id", ids)
		if errMsg != "" {
			return in, nil, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD", errMsg)
		}
		in.CategoryIDs = clean
	}
	if ids, ok := relationList(form, "genres_id"); ok {
		clean, errMsg := middleware.ValidateUUIDList("genres_id", ids)
		if errMsg != "" {
			return in, nil, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD", errMsg)
		}
		in.GenreIDs = clean
	}

	// Every submitted genre must belong to at least one submitted category.
	// Validation-layer rule only; the aggregate itself does not enforce it.
	if in.CategoryIDs != nil && len(in.GenreIDs) > 0 {
		ok, err := h.genreSvc.LinkedToCategories(c.Context(), in.GenreIDs, in.CategoryIDs)
		if err != nil {
			return in, nil, middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to validate genre categories")
		}
		if !ok {
			return in, nil, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FIELD",
				"each genre must belong to one of the submitted categories")
		}
	}

	var closers []io.Closer
	for _, field := range model.FileFields {
		headers := form.File[field]
		if len(headers) == 0 {
			continue
		}
		fh := headers[0]

		if errMsg := middleware.ValidateUpload(field, fh.Filename, fh.Size); errMsg != "" {
			return in, closers, middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "INVALID_FILE", errMsg)
		}

		f, err := fh.Open()
		if err != nil {
			return in, closers, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FILE",
				"Failed to read uploaded file for "+field)
		}
		closers = append(closers, f)
		in.Files = append(in.Files, model.FileUpload{
			Field:    field,
			Filename: fh.Filename,
			Size:     fh.Size,
			Content:  f,
		})
	}

	return in, closers, nil
}

// relationList reports whether a relation key was submitted and returns its
// values. A single empty value means "clear the relation".
func relationList(form *multipart.Form, key string) ([]string, bool) {
	vals, ok := form.Value[key]
	if !ok {
		vals, ok = form.Value[key+"[]"]
	}
	if !ok {
		return nil, false
	}
	if len(vals) == 1 && vals[0] == "" {
		return []string{}, true
	}
	return vals, true
}

func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}

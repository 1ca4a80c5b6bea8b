package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/middleware"
)

type ExportHandler struct {
	pool *pgxpool.Pool
}

func NewExportHandler(pool *pgxpool.Pool) *ExportHandler {
	return &ExportHandler{pool: pool}
}

// ExportVideos handles GET /api/export/videos
// Streams the live video catalog as a CSV attachment.
func (h *ExportHandler) ExportVideos(c fiber.Ctx) error {
	rows, err := h.pool.Query(c.Context(), `
		SELECT id, title, year_launched, opened, rating, duration, created_at
		FROM videos
		WHERE deleted_at IS NULL
		ORDER BY created_at`)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read catalog")
	}
	defer rows.Close()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "title", "year_launched", "opened", "rating", "duration", "created_at"}); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
	}

	for rows.Next() {
		var (
			id, title, rating string
			year, duration    int
			opened            bool
			createdAt         time.Time
		)
		if err := rows.Scan(&id, &title, &year, &opened, &rating, &duration, &createdAt); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
		}
		record := []string{
			id,
			title,
			strconv.Itoa(year),
			strconv.FormatBool(opened),
			rating,
			strconv.Itoa(duration),
			createdAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
		}
	}
	if err := rows.Err(); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read catalog")
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
	}

	filename := "videos-" + time.Now().UTC().Format("20060102") + ".csv"
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(buf.Bytes())
}

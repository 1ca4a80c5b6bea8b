package middleware

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
)

// Field limits matching database schema constraints.
const (
	MaxTitleLen = 255
	MaxNameLen  = 255
	MinYear     = 1895 // first motion picture screening
	MaxYear     = 2100
)

// Per-field upload limits in bytes.
var uploadMaxBytes = map[string]int64{
	model.FieldVideoFile:   1 << 30,  // 1GB
	model.FieldTrailerFile: 256 << 20, // 256MB
	model.FieldThumbFile:   5 << 20,
	model.FieldBannerFile:  10 << 20,
}

// Per-field allowed extensions.
var uploadExtensions = map[string][]string{
	model.FieldVideoFile:   {".mp4"},
	model.FieldTrailerFile: {".mp4"},
	model.FieldThumbFile:   {".jpg", ".jpeg", ".png"},
	model.FieldBannerFile:  {".jpg", ".jpeg", ".png"},
}

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateTitle checks a required name/title field against length limits.
func ValidateTitle(title string) (string, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "title is required"
	}
	if len(title) > MaxTitleLen {
		return "", "title must be at most 255 characters"
	}
	return title, ""
}

// ValidateYearLaunched parses a 4-digit launch year.
func ValidateYearLaunched(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 4 {
		return 0, "year_launched must be a 4-digit year"
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < MinYear || year > MaxYear {
		return 0, "year_launched must be a valid year"
	}
	return year, ""
}

// ValidateRating checks membership in the fixed rating enum.
func ValidateRating(raw string) (model.Rating, string) {
	r := model.Rating(strings.TrimSpace(raw))
	if !r.Valid() {
		return "", "rating must be one of: L, 10, 12, 14, 16, 18"
	}
	return r, ""
}

// ValidateDuration parses a positive duration in minutes.
func ValidateDuration(raw string) (int, string) {
	d, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		return 0, "duration must be a positive integer"
	}
	return d, ""
}

// ValidateUUID checks that an id is a well-formed UUID.
func ValidateUUID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return "", "id must be a valid UUID"
	}
	return id, ""
}

// ValidateUUIDList validates every id in a relation id list.
func ValidateUUIDList(field string, ids []string) ([]string, string) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		clean, errMsg := ValidateUUID(id)
		if errMsg != "" {
			return nil, field + " contains an invalid id"
		}
		out = append(out, clean)
	}
	return out, ""
}

// ValidateUpload checks an inbound file's extension and size against the
// limits for its target field.
func ValidateUpload(field, filename string, size int64) string {
	exts, ok := uploadExtensions[field]
	if !ok {
		return field + " is not an uploadable field"
	}

	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range exts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return field + " must be one of: " + strings.Join(exts, ", ")
	}

	if size > uploadMaxBytes[field] {
		return field + " exceeds the maximum allowed size"
	}
	return ""
}

package middleware

import (
	"strings"
	"testing"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "The Matrix", "The Matrix", false},
		{"trims whitespace", "  Alien  ", "Alien", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"exactly 255", strings.Repeat("a", 255), strings.Repeat("a", 255), false},
		{"too long", strings.Repeat("a", 256), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateTitle(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateYearLaunched(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"valid", "1999", 1999, false},
		{"trims whitespace", " 2020 ", 2020, false},
		{"first film year", "1895", 1895, false},
		{"before cinema", "1894", 0, true},
		{"upper bound", "2100", 2100, false},
		{"beyond upper bound", "2101", 0, true},
		{"three digits", "999", 0, true},
		{"five digits", "19999", 0, true},
		{"not a number", "abcd", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateYearLaunched(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateRating(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.Rating
		wantErr bool
	}{
		{"free", "L", model.RatingFree, false},
		{"ten", "10", model.Rating10, false},
		{"eighteen", "18", model.Rating18, false},
		{"trims whitespace", " 12 ", model.Rating12, false},
		{"lowercase l", "l", "", true},
		{"unknown value", "PG-13", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateRating(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"valid", "136", 136, false},
		{"one minute", "1", 1, false},
		{"zero", "0", 0, true},
		{"negative", "-5", 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateDuration(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid v4", "9f8c8d22-5b67-4b1a-8f2e-3a1d2c4b5e6f", false},
		{"trims whitespace", " 9f8c8d22-5b67-4b1a-8f2e-3a1d2c4b5e6f ", false},
		{"empty", "", true},
		{"not a uuid", "not-a-uuid", true},
		{"sql injection", "'; DROP TABLE videos--", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errMsg := ValidateUUID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}

func TestValidateUUIDList(t *testing.T) {
	valid := "9f8c8d22-5b67-4b1a-8f2e-3a1d2c4b5e6f"

	got, errMsg := ValidateUUIDList("categories_id", []string{valid})
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if len(got) != 1 || got[0] != valid {
		t.Errorf("got %v, want [%s]", got, valid)
	}

	if _, errMsg := ValidateUUIDList("categories_id", []string{valid, "bad"}); errMsg == "" {
		t.Error("expected error for list with invalid id")
	}

	got, errMsg = ValidateUUIDList("categories_id", nil)
	if errMsg != "" || len(got) != 0 {
		t.Errorf("empty list: got %v, %q", got, errMsg)
	}
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		filename string
		size     int64
		wantErr  bool
	}{
		{"valid video", model.FieldVideoFile, "movie.mp4", 500 << 20, false},
		{"video wrong extension", model.FieldVideoFile, "movie.avi", 100, true},
		{"video too large", model.FieldVideoFile, "movie.mp4", (1 << 30) + 1, true},
		{"valid trailer", model.FieldTrailerFile, "trailer.mp4", 100 << 20, false},
		{"trailer too large", model.FieldTrailerFile, "trailer.mp4", 257 << 20, true},
		{"valid thumb jpg", model.FieldThumbFile, "thumb.jpg", 1 << 20, false},
		{"valid thumb png", model.FieldThumbFile, "thumb.png", 1 << 20, false},
		{"thumb uppercase extension", model.FieldThumbFile, "THUMB.JPG", 1 << 20, false},
		{"thumb as mp4", model.FieldThumbFile, "thumb.mp4", 100, true},
		{"thumb too large", model.FieldThumbFile, "thumb.jpg", 6 << 20, true},
		{"valid banner", model.FieldBannerFile, "banner.jpeg", 8 << 20, false},
		{"banner too large", model.FieldBannerFile, "banner.png", 11 << 20, true},
		{"unknown field", "subtitle_file", "subs.srt", 100, true},
		{"no extension", model.FieldVideoFile, "movie", 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := ValidateUpload(tt.field, tt.filename, tt.size)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}

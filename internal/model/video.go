package model

import (
	"io"
	"time"
)

// Rating is the age classification assigned to a video.
type Rating string

const (
	RatingFree Rating = "L"
	Rating10   Rating = "10"
	Rating12   Rating = "12"
	Rating14   Rating = "14"
	Rating16   Rating = "16"
	Rating18   Rating = "18"
)

// Ratings lists every valid rating value.
var Ratings = []Rating{RatingFree, Rating10, Rating12, Rating14, Rating16, Rating18}

// Valid reports whether r is one of the allowed rating values.
func (r Rating) Valid() bool {
	for _, v := range Ratings {
		if r == v {
			return true
		}
	}
	return false
}

// File field names for the four binary attachments a video can carry.
const (
	FieldVideoFile   = "video_file"
	FieldTrailerFile = "trailer_file"
	FieldThumbFile   = "thumb_file"
	FieldBannerFile  = "banner_file"
)

// FileFields lists every file field in a stable order.
var FileFields = []string{FieldVideoFile, FieldTrailerFile, FieldThumbFile, FieldBannerFile}

// Video is the aggregate root of the catalog: scalar attributes, two
// many-to-many relation sets and up to four stored file references. A file
// reference is non-nil only when the blob exists at {ID}/{name}.
type Video struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	YearLaunched int        `json:"yearLaunched"`
	Opened       bool       `json:"opened"`
	Rating       Rating     `json:"rating"`
	Duration     int        `json:"duration"`
	VideoFile    *string    `json:"videoFile,omitempty"`
	TrailerFile  *string    `json:"trailerFile,omitempty"`
	ThumbFile    *string    `json:"thumbFile,omitempty"`
	BannerFile   *string    `json:"bannerFile,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`

	Categories []Category `json:"categories,omitempty"`
	Genres     []Genre    `json:"genres,omitempty"`
}

// StoredFile returns the stored filename for the given file field, or nil.
func (v *Video) StoredFile(field string) *string {
	switch field {
	case FieldVideoFile:
		return v.VideoFile
	case FieldTrailerFile:
		return v.TrailerFile
	case FieldThumbFile:
		return v.ThumbFile
	case FieldBannerFile:
		return v.BannerFile
	}
	return nil
}

// SetStoredFile records the stored filename for the given file field.
// Unknown fields are ignored.
func (v *Video) SetStoredFile(field string, name *string) {
	switch field {
	case FieldVideoFile:
		v.VideoFile = name
	case FieldTrailerFile:
		v.TrailerFile = name
	case FieldThumbFile:
		v.ThumbFile = name
	case FieldBannerFile:
		v.BannerFile = name
	}
}

// FileUpload is an inbound file payload: the target field, the original
// filename (only its extension survives into the stored name) and the
// not-yet-persisted content.
type FileUpload struct {
	Field    string
	Filename string
	Size     int64
	Content  io.Reader
}

// VideoInput carries the already-validated attributes for a video create or
// update. A nil CategoryIDs/GenreIDs means the relation was not submitted and
// is left untouched; an empty non-nil slice clears the relation.
type VideoInput struct {
	Title        string
	Description  string
	YearLaunched int
	Opened       bool
	Rating       Rating
	Duration     int
	CategoryIDs  []string
	GenreIDs     []string
	Files        []FileUpload
}

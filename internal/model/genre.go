package model

import "time"

// Genre classifies videos and is itself linked to the categories it may
// appear under.
type Genre struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"`

	Categories []Category `json:"categories,omitempty"`
}

// GenreInput carries validated attributes for a genre write. CategoryIDs is
// the full replacement set for the genre's category relation.
type GenreInput struct {
	Name        string   `json:"name"`
	IsActive    *bool    `json:"isActive"`
	CategoryIDs []string `json:"categoriesId"`
}

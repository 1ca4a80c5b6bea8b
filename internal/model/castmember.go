package model

import "time"

// Cast member types.
const (
	CastMemberDirector = 1
	CastMemberActor    = 2
)

// ValidCastMemberType reports whether t is a known cast member type.
func ValidCastMemberType(t int) bool {
	return t == CastMemberDirector || t == CastMemberActor
}

// CastMember is a person credited on catalog titles.
type CastMember struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      int        `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"`
}

// CastMemberInput carries validated attributes for a cast member write.
type CastMemberInput struct {
	Name string `json:"name"`
	Type int    `json:"type"`
}

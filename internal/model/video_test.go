package model

import "testing"

func TestRating_Valid(t *testing.T) {
	tests := []struct {
		name   string
		rating Rating
		want   bool
	}{
		{"free", RatingFree, true},
		{"ten", Rating10, true},
		{"twelve", Rating12, true},
		{"fourteen", Rating14, true},
		{"sixteen", Rating16, true},
		{"eighteen", Rating18, true},
		{"empty", Rating(""), false},
		{"lowercase l", Rating("l"), false},
		{"mpaa style", Rating("PG-13"), false},
		{"numeric out of set", Rating("15"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rating.Valid(); got != tt.want {
				t.Errorf("Rating(%q).Valid() = %v, want %v", tt.rating, got, tt.want)
			}
		})
	}
}

func TestVideo_StoredFileRoundTrip(t *testing.T) {
	v := &Video{}

	for _, field := range FileFields {
		if got := v.StoredFile(field); got != nil {
			t.Errorf("StoredFile(%q) on empty video = %v, want nil", field, got)
		}
	}

	name := "abc123.mp4"
	v.SetStoredFile(FieldTrailerFile, &name)

	got := v.StoredFile(FieldTrailerFile)
	if got == nil || *got != name {
		t.Errorf("StoredFile(trailer) = %v, want %q", got, name)
	}
	// Other fields stay untouched
	if v.StoredFile(FieldVideoFile) != nil || v.StoredFile(FieldThumbFile) != nil || v.StoredFile(FieldBannerFile) != nil {
		t.Error("setting one file field touched another")
	}

	v.SetStoredFile(FieldTrailerFile, nil)
	if v.StoredFile(FieldTrailerFile) != nil {
		t.Error("clearing a file field did not stick")
	}
}

func TestVideo_StoredFileUnknownField(t *testing.T) {
	v := &Video{}
	if got := v.StoredFile("subtitle_file"); got != nil {
		t.Errorf("StoredFile(unknown) = %v, want nil", got)
	}
}

func TestValidCastMemberType(t *testing.T) {
	tests := []struct {
		name string
		typ  int
		want bool
	}{
		{"director", CastMemberDirector, true},
		{"actor", CastMemberActor, true},
		{"zero", 0, false},
		{"out of range", 3, false},
		{"negative", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCastMemberType(tt.typ); got != tt.want {
				t.Errorf("ValidCastMemberType(%d) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

package repository

import (
	"context"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
)

// VideoStore is the relational surface the video service depends on. The
// pgx-backed VideoRepo is the production implementation; tests drive the
// service with in-memory fakes.
type VideoStore interface {
	// Begin opens the transaction an aggregate write runs inside.
	Begin(ctx context.Context) (VideoTx, error)
	// GetByID loads a live video with its category and genre collections.
	GetByID(ctx context.Context, id string) (*model.Video, error)
	List(ctx context.Context) ([]model.Video, error)
	// SoftDelete marks a live video deleted. ErrNotFound when none matches.
	SoftDelete(ctx context.Context, id string) error
}

// VideoTx is a single transaction over the video aggregate. Junction rows are
// written only through SyncCategories/SyncGenres, inside the same transaction
// as the scalar row, so readers never observe a half-synced relation set.
type VideoTx interface {
	Insert(ctx context.Context, v *model.Video) error
	// GetForUpdate loads a live row with a row lock, serializing concurrent
	// updates to the same video. ErrNotFound when none matches.
	GetForUpdate(ctx context.Context, id string) (*model.Video, error)
	Update(ctx context.Context, v *model.Video) error
	// SyncCategories replaces the video's category set with exactly ids.
	// An id referencing no category row fails with ConstraintError.
	SyncCategories(ctx context.Context, videoID string, ids []string) error
	// SyncGenres replaces the video's genre set with exactly ids.
	SyncGenres(ctx context.Context, videoID string, ids []string) error
	Commit(ctx context.Context) error
	// Rollback aborts the transaction. Safe to call after a failed Commit.
	Rollback(ctx context.Context) error
}

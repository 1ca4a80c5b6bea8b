package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/repository"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/storage"
)

// VideoService orchestrates the video aggregate lifecycle: scalar row,
// category/genre junction sets and blob uploads, all-or-nothing. The
// relational transaction covers rows and junctions; blobs are reconciled
// around it with a fixed ordering — write-new before commit, delete-old
// after commit — so no failure loses a blob a committed row references.
type VideoService struct {
	store repository.VideoStore
	blobs storage.BlobStore
	cache *CacheService
}

func NewVideoService(store repository.VideoStore, blobs storage.BlobStore, cache *CacheService) *VideoService {
	return &VideoService{store: store, blobs: blobs, cache: cache}
}

// stagedUpload is one blob write planned for the current attempt.
type stagedUpload struct {
	field string
	name  string
	file  model.FileUpload
}

// Create persists a new video aggregate. The id is assigned up front because
// the upload destination is {id}/{name}. On any failure every blob written
// during the attempt is deleted, the transaction rolls back and the original
// error propagates unchanged; no row or blob survives.
func (s *VideoService) Create(ctx context.Context, in model.VideoInput) (*model.Video, error) {
	v := &model.Video{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		YearLaunched: in.YearLaunched,
		Opened:       in.Opened,
		Rating:       in.Rating,
		Duration:     in.Duration,
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	tracker := storage.NewTracker(s.blobs, v.ID)
	staged := stageUploads(v, tracker, in.Files)

	err = func() error {
		if err := tx.Insert(ctx, v); err != nil {
			return err
		}
		if err := syncRelations(ctx, tx, v.ID, in); err != nil {
			return err
		}
		return s.uploadAll(ctx, v.ID, tracker, staged)
	}()
	if err != nil {
		s.abort(ctx, tx, tracker)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.abort(ctx, tx, tracker)
		return nil, err
	}

	s.invalidate(ctx, v.ID)
	return s.store.GetByID(ctx, v.ID)
}

// Update rewrites an existing aggregate. New blobs are uploaded before the
// commit and tracked; the old blobs they replace are deleted only after the
// commit succeeds. A pre-commit failure deletes the new blobs and rolls back,
// leaving the prior row and its files untouched.
func (s *VideoService) Update(ctx context.Context, id string, in model.VideoInput) (*model.Video, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	tracker := storage.NewTracker(s.blobs, id)

	err = func() error {
		v, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		v.Title = in.Title
		v.Description = in.Description
		v.YearLaunched = in.YearLaunched
		v.Opened = in.Opened
		v.Rating = in.Rating
		v.Duration = in.Duration
		staged := stageUploads(v, tracker, in.Files)

		if err := tx.Update(ctx, v); err != nil {
			return err
		}
		if err := syncRelations(ctx, tx, id, in); err != nil {
			return err
		}
		return s.uploadAll(ctx, id, tracker, staged)
	}()
	if err != nil {
		s.abort(ctx, tx, tracker)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.abort(ctx, tx, tracker)
		return nil, err
	}

	// The new state is durable; superseded blobs can go. A failure here only
	// orphans old blobs — Delete is idempotent, so a sweep can retry.
	if err := tracker.Finalize(ctx); err != nil {
		log.Printf("video %s: old file cleanup failed: %v", id, err)
	}

	s.invalidate(ctx, id)
	return s.store.GetByID(ctx, id)
}

// Delete soft-deletes a video. Its blobs and junction rows are kept so the
// row stays restorable.
func (s *VideoService) Delete(ctx context.Context, id string) error {
	if err := s.store.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// Get returns the full aggregate, cache-aside.
func (s *VideoService) Get(ctx context.Context, id string) (*model.Video, error) {
	if s.cache != nil {
		cached, err := s.cache.GetVideo(ctx, id)
		if err != nil {
			log.Printf("cache: video get error: %v", err)
		} else if cached != nil {
			var v model.Video
			if err := json.Unmarshal(cached, &v); err == nil {
				return &v, nil
			}
		}
	}

	v, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetVideo(ctx, id, v); err != nil {
			log.Printf("cache: video set error: %v", err)
		}
	}
	return v, nil
}

// List returns all live videos.
func (s *VideoService) List(ctx context.Context) ([]model.Video, error) {
	return s.store.List(ctx)
}

// stageUploads assigns a generated stored name to each inbound file, records
// the name it replaces (if any) for post-commit deletion, and returns the
// blob writes to perform.
func stageUploads(v *model.Video, tracker *storage.Tracker, files []model.FileUpload) []stagedUpload {
	staged := make([]stagedUpload, 0, len(files))
	for _, f := range files {
		name := storage.StoredName(f.Filename)
		if old := v.StoredFile(f.Field); old != nil {
			tracker.Superseded(*old)
		}
		v.SetStoredFile(f.Field, &name)
		staged = append(staged, stagedUpload{field: f.Field, name: name, file: f})
	}
	return staged
}

// syncRelations applies each relation present in the input. Absent (nil)
// relations are left as they are.
func syncRelations(ctx context.Context, tx repository.VideoTx, videoID string, in model.VideoInput) error {
	if in.CategoryIDs != nil {
		if err := tx.SyncCategories(ctx, videoID, in.CategoryIDs); err != nil {
			return err
		}
	}
	if in.GenreIDs != nil {
		if err := tx.SyncGenres(ctx, videoID, in.GenreIDs); err != nil {
			return err
		}
	}
	return nil
}

func (s *VideoService) uploadAll(ctx context.Context, dir string, tracker *storage.Tracker, staged []stagedUpload) error {
	for _, u := range staged {
		if err := s.blobs.Put(ctx, dir, u.name, u.file.Content); err != nil {
			return &storage.BlobError{Op: "put", Path: dir + "/" + u.name, Err: err}
		}
		tracker.Uploaded(u.name)
	}
	return nil
}

// abort undoes a failed attempt: blobs written during it are deleted, then
// the transaction is rolled back. The caller re-raises the original error;
// cleanup failures are only logged.
func (s *VideoService) abort(ctx context.Context, tx repository.VideoTx, tracker *storage.Tracker) {
	if err := tracker.Abort(ctx); err != nil {
		log.Printf("rollback: uploaded file cleanup failed: %v", err)
	}
	if err := tx.Rollback(ctx); err != nil {
		log.Printf("rollback failed: %v", err)
	}
}

func (s *VideoService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateVideo(ctx, id); err != nil {
		log.Printf("cache: invalidate video error: %v", err)
	}
}

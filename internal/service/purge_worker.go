package service

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/storage"
)

// PurgeWorker is a periodic background job that permanently removes videos
// whose soft delete is older than the retention window: first their blobs,
// then their junction rows and scalar row. Blob deletes are idempotent, so a
// tick interrupted mid-purge is finished by a later one.
type PurgeWorker struct {
	pool      *pgxpool.Pool
	blobs     storage.BlobStore
	retention time.Duration
	interval  time.Duration
	stopCh    chan struct{}
}

// NewPurgeWorker creates a worker that ticks every interval and purges videos
// soft-deleted longer than retention ago.
func NewPurgeWorker(pool *pgxpool.Pool, blobs storage.BlobStore, retention, interval time.Duration) *PurgeWorker {
	return &PurgeWorker{
		pool:      pool,
		blobs:     blobs,
		retention: retention,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic purge loop. It runs one tick immediately, then
// every interval.
func (w *PurgeWorker) Start(ctx context.Context) {
	log.Printf("purge-worker: starting (retention=%s, interval=%s)", w.retention, w.interval)

	// Run once immediately on startup
	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("purge-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("purge-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *PurgeWorker) Stop() {
	close(w.stopCh)
}

// tick runs one cycle: purge every expired soft-deleted video.
func (w *PurgeWorker) tick(ctx context.Context) {
	start := time.Now()

	purged, err := w.purgeExpired(ctx)
	if err != nil {
		log.Printf("purge-worker: error: %v", err)
		return
	}

	if purged > 0 {
		elapsed := time.Since(start)
		log.Printf("purge-worker: tick complete — %d videos purged (%s)", purged, elapsed.Round(time.Millisecond))
	}
}

// expiredVideo is one row due for permanent removal.
type expiredVideo struct {
	id    string
	files []string
}

// purgeExpired removes every video soft-deleted before the retention cutoff.
func (w *PurgeWorker) purgeExpired(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-w.retention)

	rows, err := w.pool.Query(ctx, `
		SELECT id, video_file, trailer_file, thumb_file, banner_file
		FROM videos
		WHERE deleted_at IS NOT NULL AND deleted_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var expired []expiredVideo
	for rows.Next() {
		var v expiredVideo
		stored := make([]*string, len(model.FileFields))
		if err := rows.Scan(&v.id, &stored[0], &stored[1], &stored[2], &stored[3]); err != nil {
			return 0, err
		}
		for _, name := range stored {
			if name != nil {
				v.files = append(v.files, *name)
			}
		}
		expired = append(expired, v)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	purged := 0
	for _, v := range expired {
		if err := w.purgeVideo(ctx, v); err != nil {
			log.Printf("purge-worker: error purging %s: %v", v.id, err)
			continue
		}
		purged++
	}

	return purged, nil
}

// purgeVideo deletes a video's blobs, then its rows. Blobs go first: if a
// blob delete fails the row survives, and the next tick retries the whole
// video. The reverse order could leave blobs no row references.
func (w *PurgeWorker) purgeVideo(ctx context.Context, v expiredVideo) error {
	for _, name := range v.files {
		if err := w.blobs.Delete(ctx, v.id, name); err != nil {
			return &storage.BlobError{Op: "delete", Path: v.id + "/" + name, Err: err}
		}
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM category_video WHERE video_id = $1`, v.id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM genre_video WHERE video_id = $1`, v.id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM videos WHERE id = $1`, v.id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
)

const videoColumns = `id, title, description, year_launched, opened, rating, duration,
	       video_file, trailer_file, thumb_file, banner_file, created_at, updated_at`

type VideoRepo struct {
	pool *pgxpool.Pool
}

var _ VideoStore = (*VideoRepo)(nil)

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// Begin opens the transaction an aggregate write runs inside.
func (r *VideoRepo) Begin(ctx context.Context) (VideoTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &videoTx{tx: tx}, nil
}

// GetByID returns a live video with its category and genre collections.
// Relation children are loaded regardless of their own soft-delete state so
// historical associations stay visible.
func (r *VideoRepo) GetByID(ctx context.Context, id string) (*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1 AND deleted_at IS NULL`

	v, err := scanVideo(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if v.Categories, err = r.categoriesOf(ctx, id); err != nil {
		return nil, err
	}
	if v.Genres, err = r.genresOf(ctx, id); err != nil {
		return nil, err
	}
	return v, nil
}

// List returns all live videos, newest first, without relation collections.
func (r *VideoRepo) List(ctx context.Context) ([]model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE deleted_at IS NULL ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	return videos, rows.Err()
}

// SoftDelete marks a live video deleted. Junction rows and blobs are kept so
// the row stays restorable.
func (r *VideoRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE videos SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VideoRepo) categoriesOf(ctx context.Context, videoID string) ([]model.Category, error) {
	query := `
		SELECT c.id, c.name, c.description, c.is_active, c.created_at, c.updated_at, c.deleted_at
		FROM categories c
		JOIN category_video cv ON cv.category_id = c.id
		WHERE cv.video_id = $1
		ORDER BY c.name`

	rows, err := r.pool.Query(ctx, query, videoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *VideoRepo) genresOf(ctx context.Context, videoID string) ([]model.Genre, error) {
	query := `
		SELECT g.id, g.name, g.is_active, g.created_at, g.updated_at, g.deleted_at
		FROM genres g
		JOIN genre_video gv ON gv.genre_id = g.id
		WHERE gv.video_id = $1
		ORDER BY g.name`

	rows, err := r.pool.Query(ctx, query, videoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []model.Genre
	for rows.Next() {
		var g model.Genre
		err := rows.Scan(&g.ID, &g.Name, &g.IsActive, &g.CreatedAt, &g.UpdatedAt, &g.DeletedAt)
		if err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// videoTx implements VideoTx over a pgx transaction.
type videoTx struct {
	tx pgx.Tx
}

func (t *videoTx) Insert(ctx context.Context, v *model.Video) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO videos (id, title, description, year_launched, opened, rating, duration,
		                    video_file, trailer_file, thumb_file, banner_file)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		v.ID, v.Title, v.Description, v.YearLaunched, v.Opened, v.Rating, v.Duration,
		v.VideoFile, v.TrailerFile, v.ThumbFile, v.BannerFile)
	return wrapConstraint(err)
}

func (t *videoTx) GetForUpdate(ctx context.Context, id string) (*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`

	v, err := scanVideo(t.tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (t *videoTx) Update(ctx context.Context, v *model.Video) error {
	_, err := t.tx.Exec(ctx, `
		UPDATE videos
		SET title = $2, description = $3, year_launched = $4, opened = $5, rating = $6,
		    duration = $7, video_file = $8, trailer_file = $9, thumb_file = $10,
		    banner_file = $11, updated_at = NOW()
		WHERE id = $1`,
		v.ID, v.Title, v.Description, v.YearLaunched, v.Opened, v.Rating, v.Duration,
		v.VideoFile, v.TrailerFile, v.ThumbFile, v.BannerFile)
	return wrapConstraint(err)
}

func (t *videoTx) SyncCategories(ctx context.Context, videoID string, ids []string) error {
	return t.syncRelation(ctx, "category_video", "category_id", videoID, ids)
}

func (t *videoTx) SyncGenres(ctx context.Context, videoID string, ids []string) error {
	return t.syncRelation(ctx, "genre_video", "genre_id", videoID, ids)
}

// syncRelation replaces the junction rows for one relation with exactly ids:
// rows outside the new set are dropped, missing ones inserted. Equal sets
// produce no row churn, so the sync is idempotent. A foreign-key failure on
// insert surfaces as ConstraintError.
func (t *videoTx) syncRelation(ctx context.Context, table, childCol, videoID string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}

	_, err := t.tx.Exec(ctx, fmt.Sprintf(
		`DELETE FROM %s WHERE video_id = $1 AND %s != ALL($2::uuid[])`, table, childCol),
		videoID, ids)
	if err != nil {
		return wrapConstraint(err)
	}

	if len(ids) == 0 {
		return nil
	}

	_, err = t.tx.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (video_id, %s)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`, table, childCol),
		videoID, ids)
	return wrapConstraint(err)
}

func (t *videoTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback aborts the transaction. Rolling back an already-finished
// transaction is a no-op so the cleanup path can call it unconditionally.
func (t *videoTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (*model.Video, error) {
	var v model.Video
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.YearLaunched, &v.Opened, &v.Rating, &v.Duration,
		&v.VideoFile, &v.TrailerFile, &v.ThumbFile, &v.BannerFile, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

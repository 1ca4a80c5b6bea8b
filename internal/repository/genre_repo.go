package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
)

// GenreRepo persists genres and their category relation. Writes that touch
// the relation run inside a single transaction so a bad category id rolls
// back the whole genre write.
type GenreRepo struct {
	pool *pgxpool.Pool
}

func NewGenreRepo(pool *pgxpool.Pool) *GenreRepo {
	return &GenreRepo{pool: pool}
}

func (r *GenreRepo) GetByID(ctx context.Context, id string) (*model.Genre, error) {
	var g model.Genre
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, is_active, created_at, updated_at
		FROM genres
		WHERE id = $1 AND deleted_at IS NULL`, id).
		Scan(&g.ID, &g.Name, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if g.Categories, err = r.categoriesOf(ctx, id); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GenreRepo) List(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, is_active, created_at, updated_at
		FROM genres
		WHERE deleted_at IS NULL
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []model.Genre
	for rows.Next() {
		var g model.Genre
		err := rows.Scan(&g.ID, &g.Name, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// Insert creates the genre and its category set in one transaction.
func (r *GenreRepo) Insert(ctx context.Context, g *model.Genre, categoryIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO genres (id, name, is_active)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`,
		g.ID, g.Name, g.IsActive).
		Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return wrapConstraint(err)
	}

	if err := syncGenreCategories(ctx, tx, g.ID, categoryIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update rewrites the genre and, when categoryIDs is non-nil, replaces its
// category set, all in one transaction.
func (r *GenreRepo) Update(ctx context.Context, g *model.Genre, categoryIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE genres SET name = $2, is_active = $3, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		g.ID, g.Name, g.IsActive)
	if err != nil {
		return wrapConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if categoryIDs != nil {
		if err := syncGenreCategories(ctx, tx, g.ID, categoryIDs); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *GenreRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE genres SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AllLinkedToCategories reports whether every genre in genreIDs is linked to
// at least one of the given categories. Used by the request-validation layer;
// the video aggregate itself does not enforce this rule.
func (r *GenreRepo) AllLinkedToCategories(ctx context.Context, genreIDs, categoryIDs []string) (bool, error) {
	if len(genreIDs) == 0 {
		return true, nil
	}
	if len(categoryIDs) == 0 {
		return false, nil
	}

	var linked int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT genre_id)
		FROM category_genre
		WHERE genre_id = ANY($1::uuid[]) AND category_id = ANY($2::uuid[])`,
		genreIDs, categoryIDs).Scan(&linked)
	if err != nil {
		return false, err
	}
	return linked == len(uniqueIDs(genreIDs)), nil
}

func (r *GenreRepo) categoriesOf(ctx context.Context, genreID string) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name, c.description, c.is_active, c.created_at, c.updated_at, c.deleted_at
		FROM categories c
		JOIN category_genre cg ON cg.category_id = c.id
		WHERE cg.genre_id = $1
		ORDER BY c.name`, genreID)
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

// syncGenreCategories full-replaces the genre's category junction rows.
func syncGenreCategories(ctx context.Context, tx pgx.Tx, genreID string, categoryIDs []string) error {
	if categoryIDs == nil {
		categoryIDs = []string{}
	}

	_, err := tx.Exec(ctx,
		`DELETE FROM category_genre WHERE genre_id = $1 AND category_id != ALL($2::uuid[])`,
		genreID, categoryIDs)
	if err != nil {
		return wrapConstraint(err)
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO category_genre (genre_id, category_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING`,
		genreID, categoryIDs)
	return wrapConstraint(err)
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

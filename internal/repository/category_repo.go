package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
)

type CategoryRepo struct {
	pool *pgxpool.Pool
}

func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM categories
		WHERE id = $1 AND deleted_at IS NULL`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM categories
		WHERE deleted_at IS NULL
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *CategoryRepo) Insert(ctx context.Context, c *model.Category) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (id, name, description, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Description, c.IsActive).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	return wrapConstraint(err)
}

func (r *CategoryRepo) Update(ctx context.Context, c *model.Category) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories SET name = $2, description = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		c.ID, c.Name, c.Description, c.IsActive)
	if err != nil {
		return wrapConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

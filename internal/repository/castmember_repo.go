package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
)

type CastMemberRepo struct {
	pool *pgxpool.Pool
}

func NewCastMemberRepo(pool *pgxpool.Pool) *CastMemberRepo {
	return &CastMemberRepo{pool: pool}
}

func (r *CastMemberRepo) GetByID(ctx context.Context, id string) (*model.CastMember, error) {
	var m model.CastMember
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, type, created_at, updated_at
		FROM cast_members
		WHERE id = $1 AND deleted_at IS NULL`, id).
		Scan(&m.ID, &m.Name, &m.Type, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *CastMemberRepo) List(ctx context.Context) ([]model.CastMember, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, type, created_at, updated_at
		FROM cast_members
		WHERE deleted_at IS NULL
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.CastMember
	for rows.Next() {
		var m model.CastMember
		err := rows.Scan(&m.ID, &m.Name, &m.Type, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *CastMemberRepo) Insert(ctx context.Context, m *model.CastMember) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO cast_members (id, name, type)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`,
		m.ID, m.Name, m.Type).
		Scan(&m.CreatedAt, &m.UpdatedAt)
	return wrapConstraint(err)
}

func (r *CastMemberRepo) Update(ctx context.Context, m *model.CastMember) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cast_members SET name = $2, type = $3, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`,
		m.ID, m.Name, m.Type)
	if err != nil {
		return wrapConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CastMemberRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cast_members SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

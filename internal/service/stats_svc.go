package service

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogStats are the live row counts per entity.
type CatalogStats struct {
	Videos      int `json:"videos"`
	Categories  int `json:"categories"`
	Genres      int `json:"genres"`
	CastMembers int `json:"castMembers"`
}

// StatsService reports catalog-wide counts for the admin console dashboard.
type StatsService struct {
	pool *pgxpool.Pool
}

func NewStatsService(pool *pgxpool.Pool) *StatsService {
	return &StatsService{pool: pool}
}

func (s *StatsService) GetStats(ctx context.Context) (*CatalogStats, error) {
	var stats CatalogStats
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM videos WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM categories WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM genres WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM cast_members WHERE deleted_at IS NULL)`).
		Scan(&stats.Videos, &stats.Categories, &stats.Genres, &stats.CastMembers)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

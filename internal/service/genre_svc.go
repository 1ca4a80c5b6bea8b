package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/repository"
)

// GenreService manages genres. Writes that include a category set run inside
// the repo's transaction, so an invalid category id rolls back the whole
// genre write with a ConstraintError.
type GenreService struct {
	repo *repository.GenreRepo
}

func NewGenreService(repo *repository.GenreRepo) *GenreService {
	return &GenreService{repo: repo}
}

func (s *GenreService) Create(ctx context.Context, in model.GenreInput) (*model.Genre, error) {
	g := &model.Genre{
		ID:       uuid.NewString(),
		Name:     in.Name,
		IsActive: true,
	}
	if in.IsActive != nil {
		g.IsActive = *in.IsActive
	}
	if err := s.repo.Insert(ctx, g, in.CategoryIDs); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, g.ID)
}

func (s *GenreService) Update(ctx context.Context, id string, in model.GenreInput) (*model.Genre, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g.Name = in.Name
	if in.IsActive != nil {
		g.IsActive = *in.IsActive
	}
	if err := s.repo.Update(ctx, g, in.CategoryIDs); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *GenreService) Delete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *GenreService) Get(ctx context.Context, id string) (*model.Genre, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GenreService) List(ctx context.Context) ([]model.Genre, error) {
	return s.repo.List(ctx)
}

// LinkedToCategories reports whether every given genre is linked to at least
// one of the given categories.
func (s *GenreService) LinkedToCategories(ctx context.Context, genreIDs, categoryIDs []string) (bool, error) {
	return s.repo.AllLinkedToCategories(ctx, genreIDs, categoryIDs)
}

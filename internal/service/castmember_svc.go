package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/model"
	"github.com/odfurtado/fc-codeflix-code-micro-videos/internal/repository"
)

type CastMemberService struct {
	repo *repository.CastMemberRepo
}

func NewCastMemberService(repo *repository.CastMemberRepo) *CastMemberService {
	return &CastMemberService{repo: repo}
}

func (s *CastMemberService) Create(ctx context.Context, in model.CastMemberInput) (*model.CastMember, error) {
	m := &model.CastMember{
		ID:   uuid.NewString(),
		Name: in.Name,
		Type: in.Type,
	}
	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *CastMemberService) Update(ctx context.Context, id string, in model.CastMemberInput) (*model.CastMember, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Name = in.Name
	m.Type = in.Type
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *CastMemberService) Delete(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *CastMemberService) Get(ctx context.Context, id string) (*model.CastMember, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CastMemberService) List(ctx context.Context) ([]model.CastMember, error) {
	return s.repo.List(ctx)
}

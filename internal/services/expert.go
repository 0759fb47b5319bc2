package services

import (
	"context"

	"github.com/simhub/apiserver/types"
)

// ExpertRepository defines persistence operations for expert profiles.
type ExpertRepository interface {
	All() []types.Expert
	GetByID(id string) (types.Expert, error)
	Create(ctx context.Context, expert types.Expert) (types.Expert, error)
	Update(ctx context.Context, id string, patch types.ExpertPatch) (types.Expert, error)
	Filter(f types.ExpertFilter) []types.Expert
}

// ExpertService encapsulates expert-profile use-cases.
type ExpertService struct {
	repo ExpertRepository
}

func NewExpertService(repo ExpertRepository) *ExpertService {
	return &ExpertService{repo: repo}
}

func (s *ExpertService) List(f types.ExpertFilter) []types.Expert {
	return s.repo.Filter(f)
}

func (s *ExpertService) Get(id string) (types.Expert, error) {
	return s.repo.GetByID(id)
}

func (s *ExpertService) Create(ctx context.Context, expert types.Expert) (types.Expert, error) {
	return s.repo.Create(ctx, expert)
}

func (s *ExpertService) Update(ctx context.Context, id string, patch types.ExpertPatch) (types.Expert, error) {
	return s.repo.Update(ctx, id, patch)
}

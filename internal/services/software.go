package services

import (
	"context"

	"github.com/simhub/apiserver/types"
)

// SoftwareRepository defines persistence operations for software listings.
type SoftwareRepository interface {
	All() []types.Software
	GetByID(id string) (types.Software, error)
	Create(ctx context.Context, sw types.Software) (types.Software, error)
	Update(ctx context.Context, id string, patch types.SoftwarePatch) (types.Software, error)
	Filter(f types.SoftwareFilter) []types.Software
}

// SoftwareService encapsulates software-listing use-cases.
type SoftwareService struct {
	repo SoftwareRepository
}

func NewSoftwareService(repo SoftwareRepository) *SoftwareService {
	return &SoftwareService{repo: repo}
}

func (s *SoftwareService) List(f types.SoftwareFilter) []types.Software {
	return s.repo.Filter(f)
}

func (s *SoftwareService) Get(id string) (types.Software, error) {
	return s.repo.GetByID(id)
}

func (s *SoftwareService) Create(ctx context.Context, sw types.Software) (types.Software, error) {
	return s.repo.Create(ctx, sw)
}

func (s *SoftwareService) Update(ctx context.Context, id string, patch types.SoftwarePatch) (types.Software, error) {
	return s.repo.Update(ctx, id, patch)
}

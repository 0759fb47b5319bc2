package services

import (
	"context"

	"github.com/simhub/apiserver/types"
)

// HardwareRepository defines persistence operations for hardware listings.
type HardwareRepository interface {
	All() []types.Hardware
	GetByID(id string) (types.Hardware, error)
	Create(ctx context.Context, hw types.Hardware) (types.Hardware, error)
	Update(ctx context.Context, id string, patch types.HardwarePatch) (types.Hardware, error)
	Filter(f types.HardwareFilter) []types.Hardware
}

// HardwareService encapsulates hardware-listing use-cases.
type HardwareService struct {
	repo HardwareRepository
}

func NewHardwareService(repo HardwareRepository) *HardwareService {
	return &HardwareService{repo: repo}
}

func (s *HardwareService) List(f types.HardwareFilter) []types.Hardware {
	return s.repo.Filter(f)
}

func (s *HardwareService) Get(id string) (types.Hardware, error) {
	return s.repo.GetByID(id)
}

func (s *HardwareService) Create(ctx context.Context, hw types.Hardware) (types.Hardware, error) {
	return s.repo.Create(ctx, hw)
}

func (s *HardwareService) Update(ctx context.Context, id string, patch types.HardwarePatch) (types.Hardware, error) {
	return s.repo.Update(ctx, id, patch)
}

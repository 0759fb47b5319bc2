package store

import (
	"context"
	"time"

	"github.com/simhub/apiserver/internal/kvstore"
	"github.com/simhub/apiserver/internal/seed"
	"github.com/simhub/apiserver/types"
)

// HardwareStore handles persistence for hardware listings.
type HardwareStore struct {
	col *collection[types.Hardware]
}

func NewHardwareStore(kv *kvstore.KV) *HardwareStore {
	return &HardwareStore{
		col: newCollection(kv, KeyHardware, seed.Hardware, func(hw types.Hardware) string { return hw.ID }),
	}
}

func (s *HardwareStore) Initialize(ctx context.Context) error {
	return s.col.Initialize(ctx)
}

func (s *HardwareStore) All() []types.Hardware {
	return s.col.All()
}

func (s *HardwareStore) GetByID(id string) (types.Hardware, error) {
	return s.col.Get(id)
}

// Create assigns identity and listing defaults (zeroed rating and reviews,
// posting timestamp) before appending the listing.
func (s *HardwareStore) Create(ctx context.Context, hw types.Hardware) (types.Hardware, error) {
	now := time.Now().UTC()
	hw.ID = newID(now)
	hw.PostedDate = now
	hw.Rating = 0
	hw.Reviews = 0
	hw.UserReviews = []types.Review{}

	if err := s.col.Insert(ctx, hw); err != nil {
		return types.Hardware{}, err
	}
	return hw, nil
}

// Update shallow-merges the patch onto the matching listing.
func (s *HardwareStore) Update(ctx context.Context, id string, patch types.HardwarePatch) (types.Hardware, error) {
	var updated types.Hardware
	err := s.col.Mutate(ctx, id, func(hw *types.Hardware) {
		if patch.Name != nil {
			hw.Name = *patch.Name
		}
		if patch.Description != nil {
			hw.Description = *patch.Description
		}
		if patch.Category != nil {
			hw.Category = *patch.Category
		}
		if patch.Price != nil {
			hw.Price = *patch.Price
		}
		if patch.RentalTerms != nil {
			hw.RentalTerms = *patch.RentalTerms
		}
		if patch.Condition != nil {
			hw.Condition = *patch.Condition
		}
		if patch.Location != nil {
			hw.Location = *patch.Location
		}
		if patch.Features != nil {
			hw.Features = patch.Features
		}
		if patch.Specifications != nil {
			hw.Specifications = patch.Specifications
		}
		if patch.Availability != nil {
			hw.Availability = *patch.Availability
		}
		updated = *hw
	})
	if err != nil {
		return types.Hardware{}, err
	}
	return updated, nil
}

// Filter returns the listings matching every present criterion.
func (s *HardwareStore) Filter(f types.HardwareFilter) []types.Hardware {
	all := s.col.All()
	out := make([]types.Hardware, 0, len(all))
	for _, hw := range all {
		if !matchesSearch(f.Search, hw.Name, hw.Description) {
			continue
		}
		if !matchesCategory(hw.Category, f.Category) {
			continue
		}
		if !withinRange(hw.Price, f.MinPrice, f.MaxPrice) {
			continue
		}
		if !hasAllTags(hw.Features, f.Features) {
			continue
		}
		out = append(out, hw)
	}
	return out
}

package store

import (
	"context"
	"time"

	"github.com/simhub/apiserver/internal/kvstore"
	"github.com/simhub/apiserver/internal/seed"
	"github.com/simhub/apiserver/types"
)

// SoftwareStore handles persistence for software listings.
type SoftwareStore struct {
	col *collection[types.Software]
}

func NewSoftwareStore(kv *kvstore.KV) *SoftwareStore {
	return &SoftwareStore{
		col: newCollection(kv, KeySoftware, seed.Software, func(sw types.Software) string { return sw.ID }),
	}
}

func (s *SoftwareStore) Initialize(ctx context.Context) error {
	return s.col.Initialize(ctx)
}

func (s *SoftwareStore) All() []types.Software {
	return s.col.All()
}

func (s *SoftwareStore) GetByID(id string) (types.Software, error) {
	return s.col.Get(id)
}

// Create assigns identity and listing defaults (zeroed rating and reviews,
// posting timestamp) before appending the listing.
func (s *SoftwareStore) Create(ctx context.Context, sw types.Software) (types.Software, error) {
	now := time.Now().UTC()
	sw.ID = newID(now)
	sw.PostedDate = now
	sw.Rating = 0
	sw.Reviews = 0
	sw.UserReviews = []types.Review{}

	if err := s.col.Insert(ctx, sw); err != nil {
		return types.Software{}, err
	}
	return sw, nil
}

// Update shallow-merges the patch onto the matching listing.
func (s *SoftwareStore) Update(ctx context.Context, id string, patch types.SoftwarePatch) (types.Software, error) {
	var updated types.Software
	err := s.col.Mutate(ctx, id, func(sw *types.Software) {
		if patch.Name != nil {
			sw.Name = *patch.Name
		}
		if patch.Description != nil {
			sw.Description = *patch.Description
		}
		if patch.Category != nil {
			sw.Category = *patch.Category
		}
		if patch.Price != nil {
			sw.Price = *patch.Price
		}
		if patch.Licensing != nil {
			sw.Licensing = *patch.Licensing
		}
		if patch.Features != nil {
			sw.Features = patch.Features
		}
		if patch.Compatibility != nil {
			sw.Compatibility = patch.Compatibility
		}
		updated = *sw
	})
	if err != nil {
		return types.Software{}, err
	}
	return updated, nil
}

// Filter returns the listings matching every present criterion.
func (s *SoftwareStore) Filter(f types.SoftwareFilter) []types.Software {
	all := s.col.All()
	out := make([]types.Software, 0, len(all))
	for _, sw := range all {
		if !matchesSearch(f.Search, sw.Name, sw.Description) {
			continue
		}
		if !matchesCategory(sw.Category, f.Category) {
			continue
		}
		if !withinRange(sw.Price, f.MinPrice, f.MaxPrice) {
			continue
		}
		if !hasAllTags(sw.Features, f.Features) {
			continue
		}
		out = append(out, sw)
	}
	return out
}

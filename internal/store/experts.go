package store

import (
	"context"
	"time"

	"github.com/simhub/apiserver/internal/kvstore"
	"github.com/simhub/apiserver/internal/seed"
	"github.com/simhub/apiserver/types"
)

// ExpertStore handles persistence for expert profiles.
type ExpertStore struct {
	col *collection[types.Expert]
}

func NewExpertStore(kv *kvstore.KV) *ExpertStore {
	return &ExpertStore{
		col: newCollection(kv, KeyExperts, seed.Experts, func(e types.Expert) string { return e.ID }),
	}
}

func (s *ExpertStore) Initialize(ctx context.Context) error {
	return s.col.Initialize(ctx)
}

func (s *ExpertStore) All() []types.Expert {
	return s.col.All()
}

func (s *ExpertStore) GetByID(id string) (types.Expert, error) {
	return s.col.Get(id)
}

// Create assigns identity and zeroes the marketplace stats before
// appending the profile.
func (s *ExpertStore) Create(ctx context.Context, expert types.Expert) (types.Expert, error) {
	expert.ID = newID(time.Now().UTC())
	expert.Rating = 0
	expert.TotalEarnings = 0
	expert.JobsCompleted = 0
	expert.WorkHistory = []types.WorkItem{}

	if err := s.col.Insert(ctx, expert); err != nil {
		return types.Expert{}, err
	}
	return expert, nil
}

// Update shallow-merges the patch onto the matching profile.
func (s *ExpertStore) Update(ctx context.Context, id string, patch types.ExpertPatch) (types.Expert, error) {
	var updated types.Expert
	err := s.col.Mutate(ctx, id, func(e *types.Expert) {
		if patch.Name != nil {
			e.Name = *patch.Name
		}
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Avatar != nil {
			e.Avatar = *patch.Avatar
		}
		if patch.HourlyRate != nil {
			e.HourlyRate = *patch.HourlyRate
		}
		if patch.Skills != nil {
			e.Skills = patch.Skills
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.Location != nil {
			e.Location = *patch.Location
		}
		if patch.Languages != nil {
			e.Languages = patch.Languages
		}
		if patch.Education != nil {
			e.Education = patch.Education
		}
		if patch.WorkHistory != nil {
			e.WorkHistory = patch.WorkHistory
		}
		updated = *e
	})
	if err != nil {
		return types.Expert{}, err
	}
	return updated, nil
}

// Filter returns the experts matching every present criterion. Search
// covers name, title, and description.
func (s *ExpertStore) Filter(f types.ExpertFilter) []types.Expert {
	all := s.col.All()
	out := make([]types.Expert, 0, len(all))
	for _, expert := range all {
		if !matchesSearch(f.Search, expert.Name, expert.Title, expert.Description) {
			continue
		}
		if !withinRange(expert.HourlyRate, f.MinRate, f.MaxRate) {
			continue
		}
		if !atLeast(expert.Rating, f.MinRating) {
			continue
		}
		if !hasAllTags(expert.Skills, f.Skills) {
			continue
		}
		out = append(out, expert)
	}
	return out
}

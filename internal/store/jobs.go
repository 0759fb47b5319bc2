package store

import (
	"context"
	"time"

	"github.com/simhub/apiserver/internal/kvstore"
	"github.com/simhub/apiserver/internal/seed"
	"github.com/simhub/apiserver/types"
)

// JobStore handles persistence for job postings.
type JobStore struct {
	col *collection[types.Job]
}

func NewJobStore(kv *kvstore.KV) *JobStore {
	return &JobStore{
		col: newCollection(kv, KeyJobs, seed.Jobs, func(j types.Job) string { return j.ID }),
	}
}

// Initialize bootstraps the collection, seeding the sample dataset on first
// use.
func (s *JobStore) Initialize(ctx context.Context) error {
	return s.col.Initialize(ctx)
}

// All returns every job in posting order.
func (s *JobStore) All() []types.Job {
	return s.col.All()
}

// GetByID returns the job with the given id, or ErrNotFound.
func (s *JobStore) GetByID(id string) (types.Job, error) {
	return s.col.Get(id)
}

// Create assigns identity and posting defaults, appends the job, and
// persists the collection. The returned job is authoritative.
func (s *JobStore) Create(ctx context.Context, job types.Job) (types.Job, error) {
	now := time.Now().UTC()
	job.ID = newID(now)
	job.PostedDate = now
	job.Proposals = 0
	job.ProposalsData = []types.Proposal{}
	job.Status = types.JobStatusOpen

	if err := s.col.Insert(ctx, job); err != nil {
		return types.Job{}, err
	}
	return job, nil
}

// Update shallow-merges the patch onto the matching job. Returns
// ErrNotFound if no job matches.
func (s *JobStore) Update(ctx context.Context, id string, patch types.JobPatch) (types.Job, error) {
	var updated types.Job
	err := s.col.Mutate(ctx, id, func(j *types.Job) {
		if patch.Title != nil {
			j.Title = *patch.Title
		}
		if patch.Description != nil {
			j.Description = *patch.Description
		}
		if patch.Budget != nil {
			j.Budget = *patch.Budget
		}
		if patch.Duration != nil {
			j.Duration = *patch.Duration
		}
		if patch.Category != nil {
			j.Category = *patch.Category
		}
		if patch.Skills != nil {
			j.Skills = patch.Skills
		}
		if patch.Location != nil {
			j.Location = *patch.Location
		}
		if patch.Status != nil {
			j.Status = *patch.Status
		}
		updated = *j
	})
	if err != nil {
		return types.Job{}, err
	}
	return updated, nil
}

// Delete removes the matching job. Returns ErrNotFound if no job matches;
// the collection is left untouched in that case.
func (s *JobStore) Delete(ctx context.Context, id string) error {
	return s.col.Remove(ctx, id)
}

// SubmitProposal appends a proposal to the job's proposal list, injecting
// id, submission timestamp, and pending status, and recomputes the proposal
// count from the list length.
func (s *JobStore) SubmitProposal(ctx context.Context, jobID string, proposal types.Proposal) (types.Proposal, error) {
	now := time.Now().UTC()
	proposal.ID = newID(now)
	proposal.SubmittedAt = now
	proposal.Status = types.ProposalStatusPending

	err := s.col.Mutate(ctx, jobID, func(j *types.Job) {
		j.ProposalsData = append(append([]types.Proposal(nil), j.ProposalsData...), proposal)
		j.Proposals = len(j.ProposalsData)
	})
	if err != nil {
		return types.Proposal{}, err
	}
	return proposal, nil
}

// Filter returns the jobs matching every present criterion, in posting
// order. Pure: neither the mirror nor the persisted collection is touched.
func (s *JobStore) Filter(f types.JobFilter) []types.Job {
	all := s.col.All()
	out := make([]types.Job, 0, len(all))
	for _, job := range all {
		if !matchesSearch(f.Search, job.Title, job.Description) {
			continue
		}
		if !matchesCategory(job.Category, f.Category) {
			continue
		}
		if !withinRange(job.Budget, f.MinBudget, f.MaxBudget) {
			continue
		}
		if !hasAllTags(job.Skills, f.Skills) {
			continue
		}
		out = append(out, job)
	}
	return out
}

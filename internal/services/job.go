package services

import (
	"context"

	"github.com/simhub/apiserver/types"
)

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	All() []types.Job
	GetByID(id string) (types.Job, error)
	Create(ctx context.Context, job types.Job) (types.Job, error)
	Update(ctx context.Context, id string, patch types.JobPatch) (types.Job, error)
	Delete(ctx context.Context, id string) error
	SubmitProposal(ctx context.Context, jobID string, proposal types.Proposal) (types.Proposal, error)
	Filter(f types.JobFilter) []types.Job
}

// JobService encapsulates job use-cases.
type JobService struct {
	repo JobRepository
}

func NewJobService(repo JobRepository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) List(f types.JobFilter) []types.Job {
	return s.repo.Filter(f)
}

func (s *JobService) Get(id string) (types.Job, error) {
	return s.repo.GetByID(id)
}

func (s *JobService) Create(ctx context.Context, job types.Job) (types.Job, error) {
	return s.repo.Create(ctx, job)
}

func (s *JobService) Update(ctx context.Context, id string, patch types.JobPatch) (types.Job, error) {
	return s.repo.Update(ctx, id, patch)
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *JobService) SubmitProposal(ctx context.Context, jobID string, proposal types.Proposal) (types.Proposal, error) {
	return s.repo.SubmitProposal(ctx, jobID, proposal)
}

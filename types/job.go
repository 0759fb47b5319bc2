package types

import "time"

// Job statuses.
const (
	JobStatusOpen = "open"

	// ProposalStatusPending is the initial status of every submitted proposal.
	ProposalStatusPending = "pending"
)

// Job represents a simulation project posting.
type Job struct {
	// ID is the unique identifier of the job. Assigned at creation,
	// immutable afterwards.
	ID string `json:"id"`

	// Title is the human-readable name of the project.
	Title string `json:"title"`

	// Description contains the full project brief.
	Description string `json:"description"`

	// Budget is the client's budget for the project, in USD.
	Budget float64 `json:"budget"`

	// Duration is the expected project duration as free text
	// (e.g. "3-4 months").
	Duration string `json:"duration"`

	// Category is the job category, one of seed.JobCategories.
	Category string `json:"category"`

	// Skills are the tags requested for the project, used for
	// superset-matching in filters.
	Skills []string `json:"skills"`

	// Location is the work location, or "Remote".
	Location string `json:"location"`

	// PostedBy is a snapshot of the posting user taken at creation time.
	PostedBy UserSummary `json:"postedBy"`

	// PostedDate is the timestamp at which the job was posted.
	PostedDate time.Time `json:"postedDate"`

	// Proposals is the number of proposals received. It always equals
	// len(ProposalsData) and is recomputed on every append; it is never
	// settable independently.
	Proposals int `json:"proposals"`

	// ProposalsData holds the proposals submitted for this job. Proposals
	// are nested here and never stored independently.
	ProposalsData []Proposal `json:"proposalsData"`

	// Status is the job lifecycle state. New jobs start as "open".
	Status string `json:"status"`
}

// Proposal represents a freelancer's bid on a job.
type Proposal struct {
	// ID is the unique identifier of the proposal within its job.
	ID string `json:"id"`

	// FreelancerID references the submitting user.
	FreelancerID string `json:"freelancerId"`

	// FreelancerName is the submitting user's name at submission time.
	FreelancerName string `json:"freelancerName"`

	// Bid is the proposed price in USD.
	Bid float64 `json:"bid"`

	// CoverLetter is the freelancer's pitch.
	CoverLetter string `json:"coverLetter"`

	// DeliveryTime is the proposed delivery window as free text.
	DeliveryTime string `json:"deliveryTime"`

	// SubmittedAt is the timestamp of submission.
	SubmittedAt time.Time `json:"submittedAt"`

	// Status is the proposal state. New proposals start as "pending".
	Status string `json:"status"`
}

// JobPatch is a shallow-merge update for a job. Nil fields are left
// unchanged. Identity, posting metadata, and proposal state are not
// patchable.
type JobPatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

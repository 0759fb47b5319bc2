package types

// Expert represents a freelancer profile on the marketplace.
type Expert struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Avatar      string   `json:"avatar"`
	HourlyRate  float64  `json:"hourlyRate"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Languages   []string `json:"languages"`

	// Rating, TotalEarnings, and JobsCompleted are marketplace stats.
	// They start zeroed for new profiles.
	Rating        float64 `json:"rating"`
	TotalEarnings float64 `json:"totalEarnings"`
	JobsCompleted int     `json:"jobsCompleted"`

	Education   []Education `json:"education"`
	WorkHistory []WorkItem  `json:"workHistory"`
}

// Education is a single education record on an expert profile.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// WorkItem is a completed engagement on an expert profile.
type WorkItem struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	CompletedDate  string `json:"completedDate"`
	ClientFeedback string `json:"clientFeedback"`
}

// ExpertPatch is a shallow-merge update for an expert profile. Nil fields
// are left unchanged. Marketplace stats are not patchable.
type ExpertPatch struct {
	Name        *string     `json:"name,omitempty"`
	Title       *string     `json:"title,omitempty"`
	Avatar      *string     `json:"avatar,omitempty"`
	HourlyRate  *float64    `json:"hourlyRate,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	Description *string     `json:"description,omitempty"`
	Location    *string     `json:"location,omitempty"`
	Languages   []string    `json:"languages,omitempty"`
	Education   []Education `json:"education,omitempty"`
	WorkHistory []WorkItem  `json:"workHistory,omitempty"`
}

package types

import "time"

// Software represents a simulation software listing.
type Software struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Licensing   string   `json:"licensing"`
	Features    []string `json:"features"`

	// Compatibility lists supported systems and their requirements.
	Compatibility []Compatibility `json:"compatibility"`

	// Owner is a snapshot of the offering user taken at creation time.
	Owner UserSummary `json:"owner"`

	PostedDate time.Time `json:"postedDate"`

	// Rating and Reviews start zeroed for new listings.
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	UserReviews []Review `json:"userReviews"`
}

// Compatibility describes one supported system for a software listing.
type Compatibility struct {
	System  string `json:"system"`
	Details string `json:"details"`
}

// Review is a user review on a software or hardware listing.
type Review struct {
	UserName string    `json:"userName"`
	Rating   float64   `json:"rating"`
	Date     time.Time `json:"date"`
	Comment  string    `json:"comment"`
}

// SoftwarePatch is a shallow-merge update for a software listing.
type SoftwarePatch struct {
	Name          *string         `json:"name,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Category      *string         `json:"category,omitempty"`
	Price         *float64        `json:"price,omitempty"`
	Licensing     *string         `json:"licensing,omitempty"`
	Features      []string        `json:"features,omitempty"`
	Compatibility []Compatibility `json:"compatibility,omitempty"`
}

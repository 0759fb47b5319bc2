package types

import "time"

// Hardware represents a simulation hardware listing, offered for rental
// or purchase.
type Hardware struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	RentalTerms string   `json:"rentalTerms"`
	Condition   string   `json:"condition"`
	Location    string   `json:"location"`
	Features    []string `json:"features"`

	// Specifications are free-form name/value pairs describing the unit.
	Specifications []Specification `json:"specifications"`

	// Owner is a snapshot of the offering user taken at creation time.
	Owner UserSummary `json:"owner"`

	PostedDate time.Time `json:"postedDate"`

	// Rating and Reviews start zeroed for new listings.
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Availability string   `json:"availability"`
	UserReviews  []Review `json:"userReviews"`
}

// Specification is a single name/value spec on a hardware listing.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HardwarePatch is a shallow-merge update for a hardware listing.
type HardwarePatch struct {
	Name           *string         `json:"name,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Category       *string         `json:"category,omitempty"`
	Price          *float64        `json:"price,omitempty"`
	RentalTerms    *string         `json:"rentalTerms,omitempty"`
	Condition      *string         `json:"condition,omitempty"`
	Location       *string         `json:"location,omitempty"`
	Features       []string        `json:"features,omitempty"`
	Specifications []Specification `json:"specifications,omitempty"`
	Availability   *string         `json:"availability,omitempty"`
}

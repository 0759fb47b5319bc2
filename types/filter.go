package types

// Filter criteria are conjunctive: every present criterion must match, and
// omitted criteria impose no constraint. Numeric bounds are strings parsed
// as floating point; unparsable or empty bounds leave that side unbounded.
// The category value "All" disables category filtering.

// JobFilter selects jobs.
type JobFilter struct {
	Search    string
	Category  string
	MinBudget string
	MaxBudget string
	Skills    []string
}

// ExpertFilter selects expert profiles.
type ExpertFilter struct {
	Search    string
	MinRate   string
	MaxRate   string
	MinRating string
	Skills    []string
}

// SoftwareFilter selects software listings.
type SoftwareFilter struct {
	Search   string
	Category string
	MinPrice string
	MaxPrice string
	Features []string
}

// HardwareFilter selects hardware listings.
type HardwareFilter struct {
	Search   string
	Category string
	MinPrice string
	MaxPrice string
	Features []string
}

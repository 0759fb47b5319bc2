package store

import (
	"strconv"
	"strings"
)

// Filter predicates. All filters are conjunctions of these; an empty or
// unparsable criterion never constrains the result.

const categoryAll = "All"

// matchesSearch reports whether term appears, case-insensitively, in any of
// the given fields. An empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// matchesCategory reports whether got satisfies the requested category.
// Empty and the "All" sentinel disable the filter.
func matchesCategory(got, want string) bool {
	if want == "" || want == categoryAll {
		return true
	}
	return got == want
}

// parseBound parses a numeric bound. Empty or unparsable input is treated
// as an absent bound.
func parseBound(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// withinRange reports whether v lies in [min, max], with either bound
// optionally absent.
func withinRange(v float64, minRaw, maxRaw string) bool {
	if min, ok := parseBound(minRaw); ok && v < min {
		return false
	}
	if max, ok := parseBound(maxRaw); ok && v > max {
		return false
	}
	return true
}

// atLeast reports whether v >= the parsed bound, or true when the bound is
// absent.
func atLeast(v float64, minRaw string) bool {
	min, ok := parseBound(minRaw)
	return !ok || v >= min
}

// hasAllTags reports whether have is a superset of want. Every requested
// tag must be present ("every", not "any"); an empty want matches.
func hasAllTags(have, want []string) bool {
	for _, tag := range want {
		found := false
		for _, h := range have {
			if h == tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

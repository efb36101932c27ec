package utils

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/docspot/docspot-api/models"
)

// SearchThreshold is the maximum edit distance a field may be from the
// query and still count as a match.
const SearchThreshold = 3

// MatchesQuery reports whether target is an approximate match for query:
// either the query appears as an in-order subsequence (covers prefixes and
// partial words) or the whole strings are within SearchThreshold edits.
func MatchesQuery(query, target string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	target = strings.ToLower(target)
	if query == "" {
		return true
	}
	if fuzzy.Match(query, target) {
		return true
	}
	return fuzzy.LevenshteinDistance(query, target) <= SearchThreshold
}

// FilterDoctors applies the fuzzy query over name and specialty, then
// restricts the result to the active specialty. The specialty filter always
// narrows the search result, never the other way around.
func FilterDoctors(doctors []models.Doctor, query, specialty string) []models.Doctor {
	matched := make([]models.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if MatchesQuery(query, d.Name) || MatchesQuery(query, d.Specialty) {
			matched = append(matched, d)
		}
	}
	if specialty == "" {
		return matched
	}

	filtered := make([]models.Doctor, 0, len(matched))
	for _, d := range matched {
		if strings.EqualFold(d.Specialty, specialty) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// FilterLabTests applies the fuzzy query over test name and category.
func FilterLabTests(tests []models.LabTest, query string) []models.LabTest {
	matched := make([]models.LabTest, 0, len(tests))
	for _, t := range tests {
		if MatchesQuery(query, t.Name) || MatchesQuery(query, t.Category) {
			matched = append(matched, t)
		}
	}
	return matched
}

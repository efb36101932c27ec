package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docspot/docspot-api/models"
)

func TestMatchesQueryApproximate(t *testing.T) {
	// Close misspellings match within the edit-distance threshold.
	assert.True(t, MatchesQuery("John Smyth", "Jon Smith"))
	// Unrelated names do not.
	assert.False(t, MatchesQuery("John Smyth", "Priya Patel"))
	// Partial words match as subsequences.
	assert.True(t, MatchesQuery("card", "Cardiology"))
	assert.True(t, MatchesQuery("jon", "Jon Smith"))
	// Empty query matches everything.
	assert.True(t, MatchesQuery("", "anything"))
}

func TestFilterDoctorsSearchThenSpecialty(t *testing.T) {
	doctors := []models.Doctor{
		{Name: "Jon Smith", Specialty: "Cardiology"},
		{Name: "Priya Patel", Specialty: "Dermatology"},
		{Name: "Aarav Sharma", Specialty: "Dermatology"},
	}

	// Approximate name search.
	got := FilterDoctors(doctors, "John Smyth", "")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Jon Smith", got[0].Name)
	}

	// The specialty filter narrows the search result, never widens it:
	// Jon Smith matches the query but is not a dermatologist.
	got = FilterDoctors(doctors, "John Smyth", "Dermatology")
	assert.Empty(t, got)

	// Specialty filtering without a search query returns the whole
	// specialty.
	got = FilterDoctors(doctors, "", "Dermatology")
	assert.Len(t, got, 2)

	// Specialty text also participates in the fuzzy query.
	got = FilterDoctors(doctors, "derma", "")
	assert.Len(t, got, 2)
}

func TestFilterLabTests(t *testing.T) {
	tests := []models.LabTest{
		{Name: "Complete Blood Count", Category: "Hematology"},
		{Name: "Lipid Profile", Category: "Biochemistry"},
	}

	got := FilterLabTests(tests, "blood")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Complete Blood Count", got[0].Name)
	}

	assert.Empty(t, FilterLabTests(tests, "radiograph"))
}

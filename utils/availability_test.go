package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDoctorAvailability(t *testing.T) {
	days := "mon,tue,wed,thu,fri"
	timings := "10:00-18:00"

	// 2026-09-10 is a Thursday.
	ok, err := CheckDoctorAvailability(days, timings, "2026-09-10", "11:30")
	require.NoError(t, err)
	assert.True(t, ok)

	// 2026-09-13 is a Sunday.
	ok, err = CheckDoctorAvailability(days, timings, "2026-09-13", "11:30")
	require.NoError(t, err)
	assert.False(t, ok)

	// Before opening and at closing time.
	ok, err = CheckDoctorAvailability(days, timings, "2026-09-10", "09:00")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = CheckDoctorAvailability(days, timings, "2026-09-10", "18:00")
	require.NoError(t, err)
	assert.False(t, ok)

	// Malformed input.
	_, err = CheckDoctorAvailability(days, timings, "10-09-2026", "11:30")
	require.Error(t, err)
	_, err = CheckDoctorAvailability(days, "whenever", "2026-09-10", "11:30")
	require.Error(t, err)
	_, err = CheckDoctorAvailability(days, timings, "2026-09-10", "noonish")
	require.Error(t, err)
}

func TestParseDateSlot(t *testing.T) {
	at, err := ParseDateSlot("2026-09-10", "11:30")
	require.NoError(t, err)
	assert.Equal(t, 2026, at.Year())
	assert.Equal(t, 11, at.Hour())
	assert.Equal(t, 30, at.Minute())

	_, err = ParseDateSlot("2026-09-10", "late")
	require.Error(t, err)
}

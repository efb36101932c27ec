package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	slotLayout = "15:04"
)

// ParseDateSlot combines an appointment's date and slot strings into a
// single local timestamp.
func ParseDateSlot(date, slot string) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+slotLayout, date+" "+slot, time.Local)
}

// CheckDoctorAvailability reports whether the requested date falls on one of
// the doctor's available days and the slot lies within their consulting
// hours. availableDays is comma separated three-letter day names
// ("mon,tue,thu"); timings is "HH:MM-HH:MM".
func CheckDoctorAvailability(availableDays, timings, date, slot string) (bool, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return false, fmt.Errorf("invalid date format")
	}

	weekday := strings.ToLower(day.Weekday().String()[:3])
	onDuty := false
	for _, d := range strings.Split(availableDays, ",") {
		if strings.ToLower(strings.TrimSpace(d)) == weekday {
			onDuty = true
			break
		}
	}
	if !onDuty {
		return false, nil
	}

	parts := strings.SplitN(timings, "-", 2)
	if len(parts) != 2 {
		return false, fmt.Errorf("invalid timings format")
	}
	opens, err := time.Parse(slotLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return false, fmt.Errorf("invalid timings format")
	}
	closes, err := time.Parse(slotLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return false, fmt.Errorf("invalid timings format")
	}
	at, err := time.Parse(slotLayout, slot)
	if err != nil {
		return false, fmt.Errorf("invalid slot format")
	}

	if at.Before(opens) || !at.Before(closes) {
		return false, nil
	}
	return true, nil
}

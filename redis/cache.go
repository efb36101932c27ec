package redis

import (
	"encoding/json"
	"log"
	"time"

	"github.com/docspot/docspot-api/models"
)

const (
	doctorsCacheKey = "doctors:approved"
	doctorsCacheTTL = 5 * time.Minute
)

// GetCachedDoctors returns the cached approved-doctor list, or false on a
// miss. Cache errors are treated as misses.
func GetCachedDoctors() ([]models.Doctor, bool) {
	payload, err := Client.Get(Ctx, doctorsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var doctors []models.Doctor
	if err := json.Unmarshal(payload, &doctors); err != nil {
		return nil, false
	}
	return doctors, true
}

// CacheDoctors stores the approved-doctor list for a short TTL.
func CacheDoctors(doctors []models.Doctor) {
	payload, err := json.Marshal(doctors)
	if err != nil {
		return
	}
	if err := Client.Set(Ctx, doctorsCacheKey, payload, doctorsCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache doctors: %v", err)
	}
}

// InvalidateDoctorsCache drops the cached list. Called whenever a doctor's
// status changes.
func InvalidateDoctorsCache() {
	if err := Client.Del(Ctx, doctorsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate doctors cache: %v", err)
	}
}

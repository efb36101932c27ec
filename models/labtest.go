package models

import (
	"time"

	"gorm.io/gorm"
)

// LabTest is a bookable entry in the admin-managed test catalog.
type LabTest struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

// TestBooking follows the same pending/approved flow as appointments but
// has no reschedule overlay.
type TestBooking struct {
	gorm.Model
	PatientID uint              `json:"patient_id"`
	Patient   User              `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	LabTestID uint              `json:"lab_test_id"`
	LabTest   LabTest           `json:"lab_test,omitempty" gorm:"foreignKey:LabTestID"`
	Date      string            `json:"date"`
	Slot      string            `json:"slot"`
	Status    AppointmentStatus `json:"status"`
	BookedAt  time.Time         `json:"booked_at"`
}

func (b *TestBooking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.BookedAt.IsZero() {
		b.BookedAt = time.Now()
	}
	return nil
}

package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusRejected  AppointmentStatus = "rejected"
	StatusSeen      AppointmentStatus = "seen"
	StatusUnseen    AppointmentStatus = "unseen"
	StatusCancelled AppointmentStatus = "cancelled"
)

type RescheduleStatus string

const (
	RescheduleNone     RescheduleStatus = ""
	ReschedulePending  RescheduleStatus = "pending"
	RescheduleApproved RescheduleStatus = "approved"
	RescheduleRejected RescheduleStatus = "rejected"
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusSeen, StatusUnseen, StatusCancelled},
	StatusUnseen:   {StatusSeen, StatusCancelled},
}

type Appointment struct {
	gorm.Model
	PatientID uint   `json:"patient_id"`
	Patient   User   `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	DoctorID  uint   `json:"doctor_id"`
	Doctor    Doctor `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Date      string `json:"date"` // "2006-01-02"
	Slot      string `json:"slot"` // "15:04"
	Problem   string `json:"problem"`

	Status AppointmentStatus `json:"status"`

	// Reschedule overlay. Tracks renegotiation of date/slot without ever
	// touching the base status.
	RescheduleStatus RescheduleStatus `json:"reschedule_status"`
	RescheduleDate   string           `json:"reschedule_date"`
	RescheduleSlot   string           `json:"reschedule_slot"`

	BookedAt time.Time  `json:"booked_at"`
	SeenAt   *time.Time `json:"seen_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.BookedAt.IsZero() {
		a.BookedAt = time.Now()
	}
	return nil
}

// CanTransition reports whether newStatus is reachable from the current
// base status.
func (a *Appointment) CanTransition(newStatus AppointmentStatus) bool {
	for _, s := range appointmentTransitions[a.Status] {
		if s == newStatus {
			return true
		}
	}
	return false
}

// UpdateStatus applies a guarded base-status transition and persists it.
// The reschedule overlay is left untouched.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	if !a.CanTransition(newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
	}
	a.Status = newStatus
	return tx.Model(a).Update("status", newStatus).Error
}

// MarkSeen stamps the visit time and flips the base status to seen.
func (a *Appointment) MarkSeen(tx *gorm.DB) error {
	if !a.CanTransition(StatusSeen) {
		return fmt.Errorf("invalid transition from %s to %s", a.Status, StatusSeen)
	}
	now := time.Now()
	a.Status = StatusSeen
	a.SeenAt = &now
	return tx.Model(a).Updates(map[string]interface{}{
		"status":  StatusSeen,
		"seen_at": now,
	}).Error
}

// RequestReschedule records a proposed new date/slot and sets the overlay
// to pending. The base status is not consulted or modified.
func (a *Appointment) RequestReschedule(tx *gorm.DB, date, slot string) error {
	a.RescheduleStatus = ReschedulePending
	a.RescheduleDate = date
	a.RescheduleSlot = slot
	return tx.Model(a).Updates(map[string]interface{}{
		"reschedule_status": ReschedulePending,
		"reschedule_date":   date,
		"reschedule_slot":   slot,
	}).Error
}

// RespondToReschedule resolves a pending reschedule request. Approval moves
// the appointment to the proposed date/slot; either way only the overlay's
// status changes, never the base status.
func (a *Appointment) RespondToReschedule(tx *gorm.DB, response RescheduleStatus) error {
	if response != RescheduleApproved && response != RescheduleRejected {
		return fmt.Errorf("invalid reschedule response %q", response)
	}
	if a.RescheduleStatus != ReschedulePending {
		return fmt.Errorf("no pending reschedule request")
	}

	updates := map[string]interface{}{"reschedule_status": response}
	if response == RescheduleApproved {
		updates["date"] = a.RescheduleDate
		updates["slot"] = a.RescheduleSlot
		a.Date = a.RescheduleDate
		a.Slot = a.RescheduleSlot
	}
	a.RescheduleStatus = response
	return tx.Model(a).Updates(updates).Error
}

// SlotTaken reports whether the doctor already has a live appointment for
// the given date and slot.
func SlotTaken(tx *gorm.DB, doctorID uint, date, slot string) (bool, error) {
	var count int64
	err := tx.Model(&Appointment{}).
		Where("doctor_id = ? AND date = ? AND slot = ? AND status IN ?",
			doctorID, date, slot, []AppointmentStatus{StatusPending, StatusApproved}).
		Count(&count).Error
	return count > 0, err
}

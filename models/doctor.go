package models

import (
	"fmt"

	"gorm.io/gorm"
)

type DoctorStatus string

const (
	DoctorPending  DoctorStatus = "pending"
	DoctorApproved DoctorStatus = "approved"
	DoctorRejected DoctorStatus = "rejected"
	DoctorBlocked  DoctorStatus = "blocked"
)

// Legal transitions for a doctor application. Pending is the only initial
// state; every other state can be reached again except pending.
var doctorTransitions = map[DoctorStatus][]DoctorStatus{
	DoctorPending:  {DoctorApproved, DoctorRejected},
	DoctorApproved: {DoctorBlocked},
	DoctorRejected: {DoctorApproved},
	DoctorBlocked:  {DoctorApproved},
}

type Doctor struct {
	gorm.Model
	UserID          uint         `json:"user_id" gorm:"uniqueIndex"`
	User            User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Specialty       string       `json:"specialty"`
	Qualification   string       `json:"qualification"`
	Experience      int          `json:"experience"`
	Fee             float64      `json:"fee"`
	Timings         string       `json:"timings"`        // "10:00-18:00"
	AvailableDays   string       `json:"available_days"` // comma separated, e.g. "mon,tue,thu"
	About           string       `json:"about"`
	PictureURL      string       `json:"picture_url"`
	PicturePublicID string       `json:"picture_public_id"`
	Status          DoctorStatus `json:"status"`
}

func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.Status == "" {
		d.Status = DoctorPending
	}
	return nil
}

// RoleForStatus maps a doctor status onto the role the linked user must
// hold: approved means a full doctor, anything else keeps the account
// provisional.
func RoleForStatus(status DoctorStatus) string {
	if status == DoctorApproved {
		return RoleDoctor
	}
	return RoleDoctorProvisional
}

// CanTransition reports whether newStatus is reachable from the doctor's
// current status.
func (d *Doctor) CanTransition(newStatus DoctorStatus) bool {
	for _, s := range doctorTransitions[d.Status] {
		if s == newStatus {
			return true
		}
	}
	return false
}

// ChangeStatus moves the application to newStatus and cascades the role
// change into the linked user. Both writes ride the caller's transaction so
// the doctor row and the user row never disagree.
func (d *Doctor) ChangeStatus(tx *gorm.DB, newStatus DoctorStatus) error {
	if !d.CanTransition(newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", d.Status, newStatus)
	}

	d.Status = newStatus
	if err := tx.Save(d).Error; err != nil {
		return err
	}

	return tx.Model(&User{}).Where("id = ?", d.UserID).
		Update("role", RoleForStatus(newStatus)).Error
}

// ApplyForDoctor submits (or re-submits) a doctor application for userID.
// A re-submission while approved is a profile edit: the record is updated in
// place and keeps its approved status. Any other re-submission overwrites
// the previous application and goes back to pending review. New and pending
// applications mark the user's account provisional.
func ApplyForDoctor(tx *gorm.DB, userID uint, payload *Doctor) (*Doctor, error) {
	fields := map[string]interface{}{
		"name":           payload.Name,
		"email":          payload.Email,
		"phone":          payload.Phone,
		"specialty":      payload.Specialty,
		"qualification":  payload.Qualification,
		"experience":     payload.Experience,
		"fee":            payload.Fee,
		"timings":        payload.Timings,
		"available_days": payload.AvailableDays,
		"about":          payload.About,
	}

	var existing Doctor
	err := tx.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		if existing.Status != DoctorApproved {
			fields["status"] = DoctorPending
		}
		if err := tx.Model(&existing).Updates(fields).Error; err != nil {
			return nil, err
		}
		if existing.Status != DoctorApproved {
			if err := tx.Model(&User{}).Where("id = ?", userID).
				Update("role", RoleDoctorProvisional).Error; err != nil {
				return nil, err
			}
		}
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	doctor := *payload
	doctor.ID = 0
	doctor.UserID = userID
	doctor.Status = DoctorPending
	if err := tx.Create(&doctor).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&User{}).Where("id = ?", userID).
		Update("role", RoleDoctorProvisional).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

package models

import (
	"time"
)

// Roles a user can hold. Doctor roles are never self-assigned: they are
// flipped by the doctor application lifecycle (see doctor.go).
const (
	RoleUser              = "user"
	RoleDoctor            = "doctor"
	RoleDoctorProvisional = "doctor(provisional)"
	RoleAdmin             = "admin"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique"`
	Phone     string    `json:"phone"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role" gorm:"default:user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

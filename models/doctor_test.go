package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestDoctor(t *testing.T, db *gorm.DB, user *User, status DoctorStatus) *Doctor {
	t.Helper()
	doctor := Doctor{
		UserID:        user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Specialty:     "Cardiology",
		Qualification: "MBBS",
		Fee:           500,
		Timings:       "10:00-18:00",
		AvailableDays: "mon,tue,wed,thu,fri",
		Status:        status,
	}
	require.NoError(t, db.Create(&doctor).Error)
	return &doctor
}

func TestDoctorStatusTransitionMatrix(t *testing.T) {
	statuses := []DoctorStatus{DoctorPending, DoctorApproved, DoctorRejected, DoctorBlocked}
	legal := map[[2]DoctorStatus]bool{
		{DoctorPending, DoctorApproved}:  true,
		{DoctorPending, DoctorRejected}:  true,
		{DoctorApproved, DoctorBlocked}:  true,
		{DoctorRejected, DoctorApproved}: true,
		{DoctorBlocked, DoctorApproved}:  true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			from, to := from, to
			t.Run(fmt.Sprintf("%s_to_%s", from, to), func(t *testing.T) {
				db := openTestDB(t)
				user := createTestUser(t, db, "doc@example.com", RoleForStatus(from))
				doctor := createTestDoctor(t, db, user, from)

				err := db.Transaction(func(tx *gorm.DB) error {
					return doctor.ChangeStatus(tx, to)
				})

				var gotDoctor Doctor
				require.NoError(t, db.First(&gotDoctor, doctor.ID).Error)
				var gotUser User
				require.NoError(t, db.First(&gotUser, user.ID).Error)

				if legal[[2]DoctorStatus{from, to}] {
					require.NoError(t, err)
					assert.Equal(t, to, gotDoctor.Status)
					// Role and status must never disagree.
					assert.Equal(t, RoleForStatus(to), gotUser.Role)
				} else {
					require.Error(t, err)
					// Neither record moves on a rejected transition.
					assert.Equal(t, from, gotDoctor.Status)
					assert.Equal(t, RoleForStatus(from), gotUser.Role)
				}
			})
		}
	}
}

func TestRoleForStatus(t *testing.T) {
	assert.Equal(t, RoleDoctor, RoleForStatus(DoctorApproved))
	assert.Equal(t, RoleDoctorProvisional, RoleForStatus(DoctorPending))
	assert.Equal(t, RoleDoctorProvisional, RoleForStatus(DoctorRejected))
	assert.Equal(t, RoleDoctorProvisional, RoleForStatus(DoctorBlocked))
}

func TestApplyForDoctorCreatesPendingApplication(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "applicant@example.com", RoleUser)

	doctor, err := ApplyForDoctor(db, user.ID, &Doctor{
		Name:      "Dr. Applicant",
		Specialty: "Dermatology",
	})
	require.NoError(t, err)
	assert.Equal(t, DoctorPending, doctor.Status)

	var gotUser User
	require.NoError(t, db.First(&gotUser, user.ID).Error)
	assert.Equal(t, RoleDoctorProvisional, gotUser.Role)
}

func TestApplyForDoctorWhileApprovedUpdatesInPlace(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "approved@example.com", RoleDoctor)
	doctor := createTestDoctor(t, db, user, DoctorApproved)

	updated, err := ApplyForDoctor(db, user.ID, &Doctor{
		Name:      "Dr. Renamed",
		Specialty: "Neurology",
		Fee:       900,
	})
	require.NoError(t, err)

	// Same record, no duplicate, approval preserved.
	assert.Equal(t, doctor.ID, updated.ID)
	var count int64
	require.NoError(t, db.Model(&Doctor{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var got Doctor
	require.NoError(t, db.First(&got, doctor.ID).Error)
	assert.Equal(t, DoctorApproved, got.Status)
	assert.Equal(t, "Dr. Renamed", got.Name)
	assert.Equal(t, "Neurology", got.Specialty)

	var gotUser User
	require.NoError(t, db.First(&gotUser, user.ID).Error)
	assert.Equal(t, RoleDoctor, gotUser.Role)
}

func TestApplyForDoctorAfterRejectionGoesBackToPending(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "rejected@example.com", RoleDoctorProvisional)
	doctor := createTestDoctor(t, db, user, DoctorRejected)

	updated, err := ApplyForDoctor(db, user.ID, &Doctor{
		Name:      "Dr. Retry",
		Specialty: "Cardiology",
	})
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, updated.ID)

	var got Doctor
	require.NoError(t, db.First(&got, doctor.ID).Error)
	assert.Equal(t, DoctorPending, got.Status)
}

func TestDoctorDefaultsToPendingOnCreate(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "fresh@example.com", RoleUser)

	doctor := Doctor{UserID: user.ID, Name: "Dr. Fresh", Specialty: "ENT"}
	require.NoError(t, db.Create(&doctor).Error)
	assert.Equal(t, DoctorPending, doctor.Status)
}

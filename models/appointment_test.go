package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestAppointment(t *testing.T, db *gorm.DB, status AppointmentStatus) *Appointment {
	t.Helper()
	patient := createTestUser(t, db, "patient-"+string(status)+"@example.com", RoleUser)
	docUser := createTestUser(t, db, "doctor-"+string(status)+"@example.com", RoleDoctor)
	doctor := createTestDoctor(t, db, docUser, DoctorApproved)

	appointment := Appointment{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      "2026-09-10",
		Slot:      "11:00",
		Problem:   "checkup",
		Status:    status,
	}
	require.NoError(t, db.Create(&appointment).Error)
	return &appointment
}

func TestAppointmentDefaultsOnCreate(t *testing.T) {
	db := openTestDB(t)
	appointment := createTestAppointment(t, db, "")

	assert.Equal(t, StatusPending, appointment.Status)
	assert.False(t, appointment.BookedAt.IsZero())
	assert.Nil(t, appointment.SeenAt)
}

func TestAppointmentStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		ok       bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, false},
		{StatusPending, StatusSeen, false},
		{StatusApproved, StatusSeen, true},
		{StatusApproved, StatusUnseen, true},
		{StatusApproved, StatusCancelled, true},
		{StatusApproved, StatusPending, false},
		{StatusUnseen, StatusSeen, true},
		{StatusRejected, StatusApproved, false},
		{StatusCancelled, StatusApproved, false},
		{StatusSeen, StatusCancelled, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			db := openTestDB(t)
			appointment := createTestAppointment(t, db, tc.from)

			err := appointment.UpdateStatus(db, tc.to)
			var got Appointment
			require.NoError(t, db.First(&got, appointment.ID).Error)

			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, got.Status)
			} else {
				require.Error(t, err)
				assert.Equal(t, tc.from, got.Status)
			}
		})
	}
}

func TestMarkSeenStampsTimestamp(t *testing.T) {
	db := openTestDB(t)
	appointment := createTestAppointment(t, db, StatusApproved)

	require.NoError(t, appointment.MarkSeen(db))

	var got Appointment
	require.NoError(t, db.First(&got, appointment.ID).Error)
	assert.Equal(t, StatusSeen, got.Status)
	require.NotNil(t, got.SeenAt)
}

func TestMarkSeenRejectedForPending(t *testing.T) {
	db := openTestDB(t)
	appointment := createTestAppointment(t, db, StatusPending)

	require.Error(t, appointment.MarkSeen(db))

	var got Appointment
	require.NoError(t, db.First(&got, appointment.ID).Error)
	assert.Equal(t, StatusPending, got.Status)
	assert.Nil(t, got.SeenAt)
}

func TestRescheduleOverlayNeverTouchesBaseStatus(t *testing.T) {
	db := openTestDB(t)
	appointment := createTestAppointment(t, db, StatusApproved)

	require.NoError(t, appointment.RequestReschedule(db, "2026-09-15", "14:00"))

	var got Appointment
	require.NoError(t, db.First(&got, appointment.ID).Error)
	assert.Equal(t, StatusApproved, got.Status)
	assert.Equal(t, ReschedulePending, got.RescheduleStatus)

	// Approving the reschedule moves the date but not the base status.
	require.NoError(t, got.RespondToReschedule(db, RescheduleApproved))
	require.NoError(t, db.First(&got, appointment.ID).Error)
	assert.Equal(t, StatusApproved, got.Status)
	assert.Equal(t, RescheduleApproved, got.RescheduleStatus)
	assert.Equal(t, "2026-09-15", got.Date)
	assert.Equal(t, "14:00", got.Slot)
}

func TestRescheduleRejectionKeepsOriginalSlot(t *testing.T) {
	db := openTestDB(t)
	appointment := createTestAppointment(t, db, StatusApproved)

	require.NoError(t, appointment.RequestReschedule(db, "2026-09-15", "14:00"))
	require.NoError(t, appointment.RespondToReschedule(db, RescheduleRejected))

	var got Appointment
	require.NoError(t, db.First(&got, appointment.ID).Error)
	assert.Equal(t, StatusApproved, got.Status)
	assert.Equal(t, RescheduleRejected, got.RescheduleStatus)
	assert.Equal(t, "2026-09-10", got.Date)
	assert.Equal(t, "11:00", got.Slot)
}

func TestRespondToRescheduleRequiresPendingRequest(t *testing.T) {
	db := openTestDB(t)
	appointment := createTestAppointment(t, db, StatusApproved)

	require.Error(t, appointment.RespondToReschedule(db, RescheduleApproved))
	require.Error(t, appointment.RespondToReschedule(db, RescheduleStatus("maybe")))
}

func TestSlotTaken(t *testing.T) {
	db := openTestDB(t)
	appointment := createTestAppointment(t, db, StatusPending)

	taken, err := SlotTaken(db, appointment.DoctorID, appointment.Date, appointment.Slot)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = SlotTaken(db, appointment.DoctorID, appointment.Date, "16:00")
	require.NoError(t, err)
	assert.False(t, taken)

	// A rejected appointment frees the slot.
	require.NoError(t, appointment.UpdateStatus(db, StatusRejected))
	taken, err = SlotTaken(db, appointment.DoctorID, appointment.Date, appointment.Slot)
	require.NoError(t, err)
	assert.False(t, taken)
}

package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/utils"
)

// StartCronJobs initializes and starts the scheduler for appointment
// reminders and reset-token cleanup.
func StartCronJobs() {
	c := cron.New()

	// Run every minute to check for appointments in the next hour
	if _, err := c.AddFunc("* * * * *", sendAppointmentReminders); err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	// Drop expired password-reset tokens hourly
	if _, err := c.AddFunc("0 * * * *", purgeExpiredResets); err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}

// sendAppointmentReminders checks for appointments and sends reminders
func sendAppointmentReminders() {
	var appointments []models.Appointment
	err := db.DB.Preload("Patient").Preload("Doctor").
		Where("status = ? AND date = ?", models.StatusApproved, time.Now().Format("2006-01-02")).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	now := time.Now()
	for _, appointment := range appointments {
		start, err := utils.ParseDateSlot(appointment.Date, appointment.Slot)
		if err != nil {
			continue
		}
		// Only remind inside the 55-65 minute window before the slot
		lead := start.Sub(now)
		if lead < 55*time.Minute || lead > 65*time.Minute {
			continue
		}

		if err := sendReminderEmail(&appointment, start); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Patient.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment, start time.Time) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment with Dr. %s", appointment.Doctor.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> %s (%s)</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, do so from your account as soon as possible.</p>
		<p>Best regards,</p>
		<p>The DocSpot Team</p>
	`, appointment.Patient.Name, appointment.Doctor.Name, appointment.Doctor.Specialty,
		start.Format("2006-01-02"), start.Format("15:04"))

	return utils.SendEmail(appointment.Patient.Email, subject, body)
}

// purgeExpiredResets drops password-reset tokens past their expiry.
func purgeExpiredResets() {
	dropped, err := models.PurgeExpiredResets(db.DB, time.Now())
	if err != nil {
		log.Printf("Failed to purge expired reset tokens: %v", err)
		return
	}
	if dropped > 0 {
		log.Printf("Purged %d expired reset tokens", dropped)
	}
}

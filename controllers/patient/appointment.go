package patient

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/utils"
)

// BookAppointment creates a pending appointment with an approved doctor
// after checking the doctor's availability and the slot.
func BookAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	appointment := new(models.Appointment)
	if err := c.BodyParser(appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if appointment.DoctorID == 0 || appointment.Date == "" || appointment.Slot == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Doctor, date and slot are required",
		})
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, appointment.DoctorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
			Error:   err.Error(),
		})
	}
	if doctor.Status != models.DoctorApproved {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Doctor is not accepting appointments",
		})
	}

	available, err := utils.CheckDoctorAvailability(doctor.AvailableDays, doctor.Timings,
		appointment.Date, appointment.Slot)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date or slot",
			Error:   err.Error(),
		})
	}
	if !available {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Doctor is not available at that time",
		})
	}

	taken, err := models.SlotTaken(db.DB, doctor.ID, appointment.Date, appointment.Slot)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error checking availability",
			Error:   err.Error(),
		})
	}
	if taken {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Time slot not available",
		})
	}

	appointment.PatientID = userID
	appointment.Status = models.StatusPending
	appointment.RescheduleStatus = models.RescheduleNone

	if err := db.DB.Create(appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	var patient models.User
	if err := db.DB.First(&patient, userID).Error; err == nil {
		if err := utils.SendStatusEmail(patient.Email, patient.Name,
			"appointment", string(appointment.Status)); err != nil {
			log.Printf("Failed to send booking email for appointment %d: %v", appointment.ID, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// GetMyAppointments lists the logged-in patient's appointments.
func GetMyAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var appointments []models.Appointment
	if err := db.DB.Preload("Doctor").Where("patient_id = ?", userID).
		Order("date desc, slot desc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(appointments)
}

// RequestReschedule proposes a new date/slot for an appointment. The base
// status is untouched; only the overlay goes to pending.
func RequestReschedule(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type RescheduleInput struct {
		Date string `json:"date"`
		Slot string `json:"slot"`
	}
	input := new(RescheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Date == "" || input.Slot == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Date and slot are required",
		})
	}

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND patient_id = ?", c.Params("id"), userID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.RequestReschedule(db.DB, input.Date, input.Slot); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to request reschedule",
			Error:   err.Error(),
		})
	}

	return c.JSON(appointment)
}

// CancelAppointment cancels an approved appointment. A still-pending
// booking is simply withdrawn (deleted) instead, since it was never
// accepted.
func CancelAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND patient_id = ?", c.Params("id"), userID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if appointment.Status == models.StatusPending {
		if err := db.DB.Delete(&appointment).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to withdraw appointment",
				Error:   err.Error(),
			})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}

	if err := appointment.UpdateStatus(db.DB, models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status change",
			Error:   err.Error(),
		})
	}

	return c.JSON(appointment)
}

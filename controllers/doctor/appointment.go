package doctor

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/utils"
)

// currentDoctor resolves the logged-in user to their doctor profile.
func currentDoctor(c *fiber.Ctx) (*models.Doctor, error) {
	userID := c.Locals("userID").(uint)
	var doctor models.Doctor
	if err := db.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// GetAppointments lists the doctor's appointment queue, optionally filtered
// by status.
func GetAppointments(c *fiber.Ctx) error {
	doctor, err := currentDoctor(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor profile not found",
			Error:   err.Error(),
		})
	}

	query := db.DB.Preload("Patient").Where("doctor_id = ?", doctor.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("date, slot").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	for i := range appointments {
		appointments[i].Patient.Password = ""
	}
	return c.JSON(appointments)
}

// UpdateAppointmentStatus applies a base-status transition (approve,
// reject, cancel, unseen) requested by the doctor and notifies the patient.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	doctor, err := currentDoctor(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor profile not found",
			Error:   err.Error(),
		})
	}

	type StatusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Patient").
		Where("id = ? AND doctor_id = ?", c.Params("id"), doctor.ID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status change",
			Error:   err.Error(),
		})
	}

	if err := utils.SendStatusEmail(appointment.Patient.Email, appointment.Patient.Name,
		"appointment", string(appointment.Status)); err != nil {
		log.Printf("Failed to send status email for appointment %d: %v", appointment.ID, err)
	}

	return c.JSON(appointment)
}

// MarkSeen stamps the visit and flips the appointment to seen.
func MarkSeen(c *fiber.Ctx) error {
	doctor, err := currentDoctor(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor profile not found",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND doctor_id = ?", c.Params("id"), doctor.ID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.MarkSeen(db.DB); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status change",
			Error:   err.Error(),
		})
	}

	return c.JSON(appointment)
}

// RespondToReschedule approves or rejects a patient's reschedule request.
// Only the overlay changes; the base status survives either answer.
func RespondToReschedule(c *fiber.Ctx) error {
	doctor, err := currentDoctor(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor profile not found",
			Error:   err.Error(),
		})
	}

	type RespondInput struct {
		Response models.RescheduleStatus `json:"response"`
	}
	input := new(RespondInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Patient").
		Where("id = ? AND doctor_id = ?", c.Params("id"), doctor.ID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if err := appointment.RespondToReschedule(db.DB, input.Response); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to respond to reschedule",
			Error:   err.Error(),
		})
	}

	if err := utils.SendStatusEmail(appointment.Patient.Email, appointment.Patient.Name,
		"reschedule request", string(appointment.RescheduleStatus)); err != nil {
		log.Printf("Failed to send reschedule email for appointment %d: %v", appointment.ID, err)
	}

	return c.JSON(appointment)
}

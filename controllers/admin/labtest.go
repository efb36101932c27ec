package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/utils"
)

// CreateLabTest adds an entry to the test catalog.
func CreateLabTest(c *fiber.Ctx) error {
	test := new(models.LabTest)
	if err := c.BodyParser(test); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if test.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	if err := db.DB.Create(test).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create lab test",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(test)
}

// UpdateLabTest edits a catalog entry.
func UpdateLabTest(c *fiber.Ctx) error {
	var test models.LabTest
	if err := db.DB.First(&test, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Lab test not found",
			Error:   err.Error(),
		})
	}

	payload := new(models.LabTest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&test).Updates(map[string]interface{}{
		"name":        payload.Name,
		"description": payload.Description,
		"category":    payload.Category,
		"price":       payload.Price,
	}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update lab test",
			Error:   err.Error(),
		})
	}
	return c.JSON(test)
}

// DeleteLabTest removes a catalog entry.
func DeleteLabTest(c *fiber.Ctx) error {
	if err := db.DB.Where("id = ?", c.Params("id")).Delete(&models.LabTest{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete lab test",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateTestBookingStatus applies a status transition to a test booking.
func UpdateTestBookingStatus(c *fiber.Ctx) error {
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

	var booking models.TestBooking
	if err := db.DB.First(&booking, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Test booking not found",
			Error:   err.Error(),
		})
	}

	probe := models.Appointment{Status: booking.Status}
	if !probe.CanTransition(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status change",
			Error:   "invalid transition from " + string(booking.Status) + " to " + string(input.Status),
		})
	}

	if err := db.DB.Model(&booking).Update("status", input.Status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update test booking",
			Error:   err.Error(),
		})
	}
	booking.Status = input.Status
	return c.JSON(booking)
}

// GetTestBookings lists all test bookings for the admin dashboard.
func GetTestBookings(c *fiber.Ctx) error {
	var bookings []models.TestBooking
	if err := db.DB.Preload("Patient").Preload("LabTest").
		Order("created_at desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch test bookings",
			Error:   err.Error(),
		})
	}
	for i := range bookings {
		bookings[i].Patient.Password = ""
	}
	return c.JSON(bookings)
}

package patient

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/utils"
)

// GetLabTests lists the test catalog.
func GetLabTests(c *fiber.Ctx) error {
	var tests []models.LabTest
	if err := db.DB.Order("name").Find(&tests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch lab tests",
			Error:   err.Error(),
		})
	}
	return c.JSON(tests)
}

// SearchLabTests fuzzy-matches the catalog on name and category.
func SearchLabTests(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query is required",
		})
	}

	var tests []models.LabTest
	if err := db.DB.Find(&tests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch lab tests",
			Error:   err.Error(),
		})
	}

	return c.JSON(utils.FilterLabTests(tests, query))
}

// BookLabTest creates a pending test booking for the logged-in patient.
func BookLabTest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	booking := new(models.TestBooking)
	if err := c.BodyParser(booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if booking.LabTestID == 0 || booking.Date == "" || booking.Slot == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Test, date and slot are required",
		})
	}

	var test models.LabTest
	if err := db.DB.First(&test, booking.LabTestID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Lab test not found",
			Error:   err.Error(),
		})
	}

	booking.PatientID = userID
	booking.Status = models.StatusPending

	if err := db.DB.Create(booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to book lab test",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetMyLabBookings lists the patient's test bookings.
func GetMyLabBookings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var bookings []models.TestBooking
	if err := db.DB.Preload("LabTest").Where("patient_id = ?", userID).
		Order("date desc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch test bookings",
			Error:   err.Error(),
		})
	}

	return c.JSON(bookings)
}

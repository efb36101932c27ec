package admin

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/redis"
	"github.com/docspot/docspot-api/utils"
)

// GetDoctors lists doctor applications, optionally filtered by status.
func GetDoctors(c *fiber.Ctx) error {
	query := db.DB.Preload("User")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var doctors []models.Doctor
	if err := query.Order("created_at desc").Find(&doctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}

	for i := range doctors {
		doctors[i].User.Password = ""
	}
	return c.JSON(doctors)
}

// ChangeDoctorStatus moves an application through its lifecycle. The status
// write and the role cascade share one transaction, so the doctor row and
// the user row always agree. Illegal transitions are rejected with the
// offending pair named.
func ChangeDoctorStatus(c *fiber.Ctx) error {
	type StatusInput struct {
		Status models.DoctorStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var doctor models.Doctor
	if err := db.DB.Preload("User").First(&doctor, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
			Error:   err.Error(),
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return doctor.ChangeStatus(tx, input.Status)
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status change",
			Error:   err.Error(),
		})
	}

	redis.InvalidateDoctorsCache()

	if err := utils.SendStatusEmail(doctor.User.Email, doctor.User.Name,
		"doctor application", string(doctor.Status)); err != nil {
		log.Printf("Failed to send status email for doctor %d: %v", doctor.ID, err)
	}

	doctor.User.Password = ""
	return c.JSON(doctor)
}

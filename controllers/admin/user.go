package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/utils"
)

// GetUsers lists registered users, paginated, optionally filtered by role.
func GetUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := db.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var count int64
	query.Count(&count)

	var users []models.User
	if err := query.Limit(limit).Offset((page - 1) * limit).
		Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}

	for i := range users {
		users[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"users": users,
		"total": count,
		"page":  page,
		"limit": limit,
		"pages": (int(count) + limit - 1) / limit,
	})
}

// GetAppointments lists every appointment for the admin dashboard.
func GetAppointments(c *fiber.Ctx) error {
	query := db.DB.Preload("Doctor").Preload("Patient")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("created_at desc").Find(&appointments).Error; err != nil {
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

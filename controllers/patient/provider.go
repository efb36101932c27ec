package patient

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/redis"
	"github.com/docspot/docspot-api/utils"
)

// GetDoctors returns the approved doctors, paginated. The full approved
// list is served from a short-lived redis cache.
func GetDoctors(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	doctors, ok := redis.GetCachedDoctors()
	if !ok {
		if err := db.DB.Where("status = ?", models.DoctorApproved).
			Order("name").Find(&doctors).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch doctors",
				Error:   err.Error(),
			})
		}
		redis.CacheDoctors(doctors)
	}

	total := len(doctors)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return c.JSON(fiber.Map{
		"doctors": doctors[start:end],
		"total":   total,
		"page":    page,
		"limit":   limit,
		"pages":   (total + limit - 1) / limit,
	})
}

// SearchDoctors fuzzy-matches approved doctors on name and specialty, then
// narrows by the exact specialty filter if one is active.
func SearchDoctors(c *fiber.Ctx) error {
	query := c.Query("q")
	specialty := c.Query("specialty")
	if query == "" && specialty == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query or specialty is required",
		})
	}

	var doctors []models.Doctor
	if err := db.DB.Where("status = ?", models.DoctorApproved).Find(&doctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}

	return c.JSON(utils.FilterDoctors(doctors, query, specialty))
}

// GetDoctorDetails returns one approved doctor.
func GetDoctorDetails(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.Where("id = ? AND status = ?", c.Params("id"), models.DoctorApproved).
		First(&doctor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
			Error:   err.Error(),
		})
	}

	return c.JSON(doctor)
}

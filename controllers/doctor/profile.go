package doctor

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/utils"
)

// SubmitApplication creates or re-submits a doctor application for the
// logged-in user. Re-submitting while approved edits the profile in place
// and keeps the approved status.
func SubmitApplication(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	payload := new(models.Doctor)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if payload.Name == "" || payload.Specialty == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and specialty are required",
		})
	}

	var doctor *models.Doctor
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		doctor, err = models.ApplyForDoctor(tx, userID, payload)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to submit application",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(doctor)
}

// GetProfile returns the logged-in doctor's profile.
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var doctor models.Doctor
	if err := db.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor profile not found",
			Error:   err.Error(),
		})
	}

	return c.JSON(doctor)
}

// UpdateProfilePicture uploads a new profile picture to the asset host and
// removes the previous one.
func UpdateProfilePicture(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var doctor models.Doctor
	if err := db.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor profile not found",
			Error:   err.Error(),
		})
	}

	file, err := c.FormFile("picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Picture file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to read uploaded file",
			Error:   err.Error(),
		})
	}
	defer src.Close()

	publicID := fmt.Sprintf("doctor-%d", doctor.ID)
	url, storedID, err := utils.UploadToCloudinary(src, publicID, "doctor-profiles")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload picture",
			Error:   err.Error(),
		})
	}

	oldID := doctor.PicturePublicID
	if err := db.DB.Model(&doctor).Updates(map[string]interface{}{
		"picture_url":       url,
		"picture_public_id": storedID,
	}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save picture",
			Error:   err.Error(),
		})
	}

	if oldID != "" && oldID != storedID {
		if _, err := (utils.CloudinaryDeleter{}).Delete(c.Context(), oldID); err != nil {
			log.Printf("Failed to delete old picture %s: %v", oldID, err)
		}
	}

	doctor.PictureURL = url
	doctor.PicturePublicID = storedID
	return c.JSON(doctor)
}

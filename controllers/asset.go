package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/utils"
)

// Deleter is the asset-host adapter the handler talks to. Swapped for a
// fake in tests.
var Deleter utils.AssetDeleter = utils.CloudinaryDeleter{}

// DeleteAsset proxies a delete-by-id call to the asset host. Missing input
// is a 400, an upstream "not ok" result is a 400 with details, and a
// transport failure is a 500.
func DeleteAsset(c *fiber.Ctx) error {
	type DeleteRequest struct {
		PublicID string `json:"publicId"`
	}

	req := new(DeleteRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Cannot parse JSON",
		})
	}
	if req.PublicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "publicId is required",
		})
	}

	ok, err := Deleter.Delete(c.Context(), req.PublicID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Asset deletion was not successful",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Asset deleted",
	})
}

// AssetPreflight answers CORS preflight for the delete endpoint with an
// empty 200.
func AssetPreflight(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("")
}

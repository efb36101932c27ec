package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/redis"
	"github.com/docspot/docspot-api/utils"
)

// GetTickets lists support tickets, optionally filtered by status.
func GetTickets(c *fiber.Ctx) error {
	query := db.DB.Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tickets []models.Ticket
	if err := query.Find(&tickets).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch tickets",
			Error:   err.Error(),
		})
	}

	return c.JSON(tickets)
}

// RespondToTicket stores the admin's response, resolves the ticket and
// publishes the update so the owner gets notified.
func RespondToTicket(c *fiber.Ctx) error {
	type RespondInput struct {
		Response string `json:"response"`
	}
	input := new(RespondInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Response == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Response is required",
		})
	}

	var ticket models.Ticket
	if err := db.DB.First(&ticket, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Ticket not found",
			Error:   err.Error(),
		})
	}

	if err := ticket.UpdateStatus(db.DB, models.TicketResolved, input.Response); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status change",
			Error:   err.Error(),
		})
	}

	redis.PublishTicketEvent(&ticket)

	return c.JSON(ticket)
}

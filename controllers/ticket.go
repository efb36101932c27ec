package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/models"
	"github.com/docspot/docspot-api/redis"
	"github.com/docspot/docspot-api/utils"
)

// CreateTicket opens a support ticket for the logged-in user.
func CreateTicket(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	ticket := new(models.Ticket)
	if err := c.BodyParser(ticket); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if ticket.Subject == "" || ticket.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Subject and description are required",
		})
	}

	ticket.Email = user.Email
	ticket.Status = models.TicketOpen
	ticket.Response = ""

	if err := db.DB.Create(ticket).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create ticket",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// GetMyTickets lists the tickets owned by the logged-in user's email.
func GetMyTickets(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var tickets []models.Ticket
	if err := db.DB.Where("email = ?", user.Email).
		Order("created_at desc").Find(&tickets).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch tickets",
			Error:   err.Error(),
		})
	}

	return c.JSON(tickets)
}

// ReopenTicket moves a resolved ticket back to reopened.
func ReopenTicket(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id := c.Params("id")

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var ticket models.Ticket
	if err := db.DB.Where("id = ? AND email = ?", id, user.Email).First(&ticket).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Ticket not found",
			Error:   err.Error(),
		})
	}

	if err := ticket.UpdateStatus(db.DB, models.TicketReopened, ""); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to reopen ticket",
			Error:   err.Error(),
		})
	}

	redis.PublishTicketEvent(&ticket)

	return c.JSON(ticket)
}

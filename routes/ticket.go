package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/controllers"
	"github.com/docspot/docspot-api/middleware"
)

// SetupTicketRoutes configures the user-facing support ticket routes.
func SetupTicketRoutes(app *fiber.App) {
	tickets := app.Group("/tickets", middleware.Protected())
	tickets.Post("/", controllers.CreateTicket)
	tickets.Get("/", controllers.GetMyTickets)
	tickets.Patch("/:id/reopen", controllers.ReopenTicket)
}

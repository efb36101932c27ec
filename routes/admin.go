package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/controllers/admin"
	"github.com/docspot/docspot-api/middleware"
	"github.com/docspot/docspot-api/models"
)

// SetupAdminRoutes configures the admin approval workflow and dashboards.
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	group.Get("/doctors", admin.GetDoctors)
	group.Patch("/doctors/:id/status", admin.ChangeDoctorStatus)

	group.Get("/users", admin.GetUsers)
	group.Get("/appointments", admin.GetAppointments)

	group.Get("/tickets", admin.GetTickets)
	group.Patch("/tickets/:id/respond", admin.RespondToTicket)

	group.Post("/lab-tests", admin.CreateLabTest)
	group.Patch("/lab-tests/:id", admin.UpdateLabTest)
	group.Delete("/lab-tests/:id", admin.DeleteLabTest)
	group.Get("/test-bookings", admin.GetTestBookings)
	group.Patch("/test-bookings/:id/status", admin.UpdateTestBookingStatus)
}

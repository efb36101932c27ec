package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/controllers/patient"
	"github.com/docspot/docspot-api/middleware"
)

// SetupPatientRoutes configures discovery and booking routes. Browsing and
// search are public; booking requires a logged-in user.
func SetupPatientRoutes(app *fiber.App) {
	doctors := app.Group("/doctors")
	doctors.Get("/", patient.GetDoctors)
	doctors.Get("/search", patient.SearchDoctors)
	doctors.Get("/:id", patient.GetDoctorDetails)

	tests := app.Group("/lab-tests")
	tests.Get("/", patient.GetLabTests)
	tests.Get("/search", patient.SearchLabTests)

	appointments := app.Group("/appointments", middleware.Protected())
	appointments.Post("/", patient.BookAppointment)
	appointments.Get("/", patient.GetMyAppointments)
	appointments.Patch("/:id/reschedule", patient.RequestReschedule)
	appointments.Delete("/:id", patient.CancelAppointment)

	bookings := app.Group("/test-bookings", middleware.Protected())
	bookings.Post("/", patient.BookLabTest)
	bookings.Get("/", patient.GetMyLabBookings)
}

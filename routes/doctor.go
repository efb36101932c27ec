package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/controllers/doctor"
	"github.com/docspot/docspot-api/middleware"
	"github.com/docspot/docspot-api/models"
)

// SetupDoctorRoutes configures the doctor-side routes. Applying is open to
// any logged-in user; everything else needs an approved (or at least
// provisional, for the profile) doctor account.
func SetupDoctorRoutes(app *fiber.App) {
	group := app.Group("/doctor", middleware.Protected())

	group.Post("/apply", doctor.SubmitApplication)
	group.Get("/profile", middleware.RequireRole(models.RoleDoctor, models.RoleDoctorProvisional), doctor.GetProfile)
	group.Post("/profile/picture", middleware.RequireRole(models.RoleDoctor, models.RoleDoctorProvisional), doctor.UpdateProfilePicture)

	appointments := group.Group("/appointments", middleware.RequireRole(models.RoleDoctor))
	appointments.Get("/", doctor.GetAppointments)
	appointments.Patch("/:id/status", doctor.UpdateAppointmentStatus)
	appointments.Patch("/:id/seen", doctor.MarkSeen)
	appointments.Patch("/:id/reschedule", doctor.RespondToReschedule)
}

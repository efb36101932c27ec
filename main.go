package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/docspot/docspot-api/cron"
	"github.com/docspot/docspot-api/db"
	"github.com/docspot/docspot-api/redis"
	"github.com/docspot/docspot-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()
	redis.StartTicketSubscriber()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("DocSpot API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupTicketRoutes(app)
	routes.SetupAssetRoutes(app)

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}

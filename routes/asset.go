package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/docspot/docspot-api/controllers"
)

// SetupAssetRoutes configures the asset-deletion proxy. Only POST and
// OPTIONS are registered; fiber answers 405 for anything else on the path.
func SetupAssetRoutes(app *fiber.App) {
	app.Post("/assets/delete", controllers.DeleteAsset)
	app.Options("/assets/delete", controllers.AssetPreflight)
}

// file: internals/features/buildings/route/building_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	buildingController "visitordesk_backend/internals/features/buildings/controller"
	"visitordesk_backend/internals/middlewares"
)

// Route publik: daftar gedung + gerbang kode (rate limit lebih ketat)
func BuildingPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := buildingController.NewBuildingController(db)

	b := api.Group("/buildings")
	b.Get("/", ctrl.List)
	b.Post("/verify-code", middlewares.VerifyCodeRateLimiter(), ctrl.VerifyCode)
}

// Route admin (di belakang X-Admin-Key)
func BuildingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := buildingController.NewBuildingAdminController(db)

	b := admin.Group("/buildings")
	b.Get("/", ctrl.List)
	b.Post("/", ctrl.Create)
	b.Patch("/:id", ctrl.Update)
}

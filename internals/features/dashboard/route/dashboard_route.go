// file: internals/features/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "visitordesk_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(scoped fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	d := scoped.Group("/dashboard")
	d.Get("/stats", ctrl.Stats)
	d.Get("/categories", ctrl.Categories)
	d.Get("/weekly", ctrl.Weekly)
	d.Get("/recent", ctrl.Recent)
}

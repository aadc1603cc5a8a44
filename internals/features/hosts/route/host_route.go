// file: internals/features/hosts/route/host_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hostController "visitordesk_backend/internals/features/hosts/controller"
)

// Semua ber-scope gedung (building token sudah diverifikasi di group atasnya)
func HostRoutes(scoped fiber.Router, db *gorm.DB) {
	ctrl := hostController.NewHostController(db)

	h := scoped.Group("/hosts")
	h.Get("/", ctrl.List)
	h.Post("/", ctrl.Create)
	h.Patch("/:id", ctrl.Update)
	h.Delete("/:id", ctrl.Delete)
}

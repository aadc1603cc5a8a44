// file: internals/features/visitors/route/visitor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	visitorController "visitordesk_backend/internals/features/visitors/controller"
	osshelper "visitordesk_backend/internals/helpers/oss"
)

func VisitorRoutes(scoped fiber.Router, db *gorm.DB, photos osshelper.PhotoUploader) {
	ctrl := visitorController.NewVisitorController(db, photos)

	v := scoped.Group("/visitors")
	v.Post("/", ctrl.CheckIn)
	v.Get("/", ctrl.List)
	v.Get("/search", ctrl.Search)
	v.Get("/current", ctrl.Current)
	v.Get("/export", ctrl.Export)
	v.Get("/:id", ctrl.GetByID)
	v.Patch("/:id", ctrl.Update)
	v.Post("/:id/checkout", ctrl.CheckOut)
	v.Post("/:id/verify-signature", ctrl.VerifySignature)
}

// file: internals/features/sessions/route/attendance_session_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "visitordesk_backend/internals/features/sessions/controller"
)

func AttendanceSessionRoutes(scoped fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewAttendanceSessionController(db)

	s := scoped.Group("/sessions")
	s.Post("/", ctrl.StartSession)
	s.Get("/", ctrl.List)
	s.Get("/active", ctrl.Active)
	s.Get("/today", ctrl.Today)
	s.Get("/:id", ctrl.GetByID)
	s.Post("/:id/end", ctrl.EndSession)
	s.Post("/:id/reopen", ctrl.ReopenSession)
}

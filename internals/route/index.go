// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	buildingRoute "visitordesk_backend/internals/features/buildings/route"
	dashboardRoute "visitordesk_backend/internals/features/dashboard/route"
	hostRoute "visitordesk_backend/internals/features/hosts/route"
	sessionRoute "visitordesk_backend/internals/features/sessions/route"
	visitorRoute "visitordesk_backend/internals/features/visitors/route"
	osshelper "visitordesk_backend/internals/helpers/oss"
	"visitordesk_backend/internals/middlewares"
	buildingMw "visitordesk_backend/internals/middlewares/building"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🌐 Publik: daftar gedung + verifikasi kode (pintu masuk satu-satunya)
	buildingRoute.BuildingPublicRoutes(api, db)

	// 🛠️ Admin gedung (X-Admin-Key)
	admin := app.Group("/api/a", middlewares.AdminKeyMiddleware())
	buildingRoute.BuildingAdminRoutes(admin, db)

	// 🏢 Scope gedung: wajib building token.
	// Dipasang per prefix supaya route publik /api/buildings tidak ikut kena.
	requireBuilding := buildingMw.BuildingContext(buildingMw.BuildingContextOpts{DB: db})
	api.Use("/sessions", requireBuilding)
	api.Use("/visitors", requireBuilding)
	api.Use("/hosts", requireBuilding)
	api.Use("/dashboard", requireBuilding)

	// Upload foto opsional — kalau OSS tidak dikonfigurasi, fitur lain tetap jalan
	var photos osshelper.PhotoUploader
	if svc, err := osshelper.NewPhotoServiceFromEnv(); err != nil {
		log.Printf("⚠️ OSS tidak aktif, upload foto dimatikan: %v", err)
	} else {
		photos = svc
	}

	sessionRoute.AttendanceSessionRoutes(api, db)
	visitorRoute.VisitorRoutes(api, db, photos)
	hostRoute.HostRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
}

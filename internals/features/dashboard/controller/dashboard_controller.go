// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"visitordesk_backend/internals/constants"
	"visitordesk_backend/internals/features/dashboard/dto"
	hostModel "visitordesk_backend/internals/features/hosts/model"
	visitorDto "visitordesk_backend/internals/features/visitors/dto"
	visitorModel "visitordesk_backend/internals/features/visitors/model"
	helper "visitordesk_backend/internals/helpers"
	"visitordesk_backend/internals/helpers/dbtime"
)

// Semua angka dihitung per request, langsung dari DB — tanpa cache.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

/* ===================== STATS ===================== */
// GET /api/dashboard/stats
func (ctrl *DashboardController) Stats(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	now := time.Now()
	dayStart := dbtime.StartOfDay(now)
	dayEnd := dbtime.EndOfDay(now)
	weekStart := dbtime.StartOfDay(now.AddDate(0, 0, -7))

	var resp dto.DashboardStatsResponse

	if err := ctrl.DB.Model(&visitorModel.VisitorModel{}).
		Where("visitor_building_id = ? AND visitor_time_in BETWEEN ? AND ?", buildingID, dayStart, dayEnd).
		Count(&resp.TodayVisitors).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pengunjung hari ini")
	}

	if err := ctrl.DB.Model(&visitorModel.VisitorModel{}).
		Where("visitor_building_id = ? AND visitor_time_out IS NULL", buildingID).
		Count(&resp.CurrentlyIn).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pengunjung di dalam")
	}

	// Window mingguan: time_in >= awal hari (now - 7 hari)
	if err := ctrl.DB.Model(&visitorModel.VisitorModel{}).
		Where("visitor_building_id = ? AND visitor_time_in >= ?", buildingID, weekStart).
		Count(&resp.WeekVisitors).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pengunjung minggu ini")
	}

	if err := ctrl.DB.Model(&hostModel.HostModel{}).
		Where("host_building_id = ? AND host_is_active = ?", buildingID, true).
		Count(&resp.ActiveHosts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung host aktif")
	}

	return helper.Success(c, "Statistik dashboard", resp)
}

/* ===================== CATEGORIES ===================== */
// GET /api/dashboard/categories — breakdown kategori, label dikapitalisasi,
// urutan mengikuti daftar kategori; kategori kosong tidak ikut
func (ctrl *DashboardController) Categories(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	type catRow struct {
		Category string
		Total    int64
	}
	var raw []catRow
	if err := ctrl.DB.Model(&visitorModel.VisitorModel{}).
		Select("visitor_category AS category, COUNT(*) AS total").
		Where("visitor_building_id = ?", buildingID).
		Group("visitor_category").
		Scan(&raw).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung kategori")
	}

	counts := make(map[string]int64, len(raw))
	for _, r := range raw {
		counts[r.Category] = r.Total
	}

	stats := make([]dto.CategoryStat, 0, len(raw))
	for _, cat := range constants.VisitorCategories {
		if n, ok := counts[cat]; ok {
			stats = append(stats, dto.CategoryStat{
				Name:  dto.CapitalizeCategory(cat),
				Value: n,
			})
		}
	}

	return helper.Success(c, "Breakdown kategori pengunjung", stats)
}

/* ===================== WEEKLY TREND ===================== */
// GET /api/dashboard/weekly — 7 hari terakhir termasuk hari ini,
// label nama hari, hari tanpa pengunjung tetap muncul dengan 0
func (ctrl *DashboardController) Weekly(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	now := time.Now()
	points := make([]dto.TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := dbtime.StartOfDay(day)
		end := dbtime.EndOfDay(day)

		var n int64
		if err := ctrl.DB.Model(&visitorModel.VisitorModel{}).
			Where("visitor_building_id = ? AND visitor_time_in BETWEEN ? AND ?", buildingID, start, end).
			Count(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung tren mingguan")
		}

		points = append(points, dto.TrendPoint{
			Name:     day.Format("Mon"),
			Visitors: n,
		})
	}

	return helper.Success(c, "Tren pengunjung 7 hari", points)
}

/* ===================== RECENT ===================== */
// GET /api/dashboard/recent — 5 check-in terbaru + host
func (ctrl *DashboardController) Recent(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	var rows []visitorModel.VisitorModel
	if err := ctrl.DB.
		Preload("VisitorHost").
		Where("visitor_building_id = ?", buildingID).
		Order("visitor_time_in DESC").
		Limit(5).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengunjung terbaru")
	}

	return helper.Success(c, "Pengunjung terbaru", visitorDto.NewVisitorResponses(rows))
}

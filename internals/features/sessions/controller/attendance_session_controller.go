// file: internals/features/sessions/controller/attendance_session_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"visitordesk_backend/internals/features/sessions/dto"
	"visitordesk_backend/internals/features/sessions/model"
	helper "visitordesk_backend/internals/helpers"
	"visitordesk_backend/internals/helpers/dbtime"
)

// Lifecycle sesi absensi per gedung:
//   NoSessionToday → Active → Ended, plus Reopen (Ended → Active).
// Invariant "maksimal satu sesi aktif per gedung" dijaga dua lapis:
// pre-check di sini + partial unique index di DB (backstop saat balapan).

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

type AttendanceSessionController struct {
	DB *gorm.DB
}

func NewAttendanceSessionController(db *gorm.DB) *AttendanceSessionController {
	return &AttendanceSessionController{DB: db}
}

/* ===================== START ===================== */
// POST /api/sessions
func (ctrl *AttendanceSessionController) StartSession(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.StartSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	date, err := req.ResolveDate(now)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal sesi tidak valid (YYYY-MM-DD)")
	}

	// Precondition: belum ada sesi aktif untuk gedung ini
	var active int64
	if err := ctrl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_building_id = ? AND attendance_session_is_active = ?", buildingID, true).
		Count(&active).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if active > 0 {
		return fiber.NewError(fiber.StatusConflict, "Masih ada sesi aktif. Akhiri dulu sebelum mulai sesi baru.")
	}

	m := req.ToModel(buildingID, date, now)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			// dua start balapan — index yang menang menentukan
			return fiber.NewError(fiber.StatusConflict, "Sesi aktif sudah dibuat oleh klien lain")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memulai sesi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi absensi dimulai", dto.NewAttendanceSessionResponse(m))
}

/* ===================== END ===================== */
// POST /api/sessions/:id/end — idempoten: sesi yang sudah berakhir dibiarkan
func (ctrl *AttendanceSessionController) EndSession(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var m model.AttendanceSessionModel
	if err := ctrl.DB.
		Where("attendance_session_id = ? AND attendance_session_building_id = ?", id, buildingID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if m.AttendanceSessionIsActive {
		now := time.Now()
		if err := ctrl.DB.Model(&m).Updates(map[string]interface{}{
			"attendance_session_is_active": false,
			"attendance_session_ended_at":  now,
		}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengakhiri sesi")
		}
	}

	return helper.Success(c, "Sesi absensi diakhiri", dto.NewAttendanceSessionResponse(m))
}

/* ===================== REOPEN ===================== */
// POST /api/sessions/:id/reopen — hanya saat tidak ada sesi lain yang aktif
func (ctrl *AttendanceSessionController) ReopenSession(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var m model.AttendanceSessionModel
	if err := ctrl.DB.
		Where("attendance_session_id = ? AND attendance_session_building_id = ?", id, buildingID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if m.AttendanceSessionIsActive {
		// sudah aktif — tidak ada yang perlu diubah
		return helper.Success(c, "Sesi sudah aktif", dto.NewAttendanceSessionResponse(m))
	}

	var otherActive int64
	if err := ctrl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_building_id = ? AND attendance_session_is_active = ? AND attendance_session_id <> ?",
			buildingID, true, id).
		Count(&otherActive).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if otherActive > 0 {
		return fiber.NewError(fiber.StatusConflict, "Ada sesi lain yang masih aktif")
	}

	if err := ctrl.DB.Model(&m).Updates(map[string]interface{}{
		"attendance_session_is_active": true,
		"attendance_session_ended_at":  nil,
	}).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Ada sesi lain yang masih aktif")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuka kembali sesi")
	}

	return helper.Success(c, "Sesi dibuka kembali", dto.NewAttendanceSessionResponse(m))
}

/* ===================== QUERIES ===================== */

// GET /api/sessions — urut tanggal terbaru dulu
func (ctrl *AttendanceSessionController) List(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	var rows []model.AttendanceSessionModel
	if err := ctrl.DB.
		Where("attendance_session_building_id = ?", buildingID).
		Order("attendance_session_date DESC, attendance_session_started_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar sesi")
	}

	return helper.Success(c, "Daftar sesi", dto.NewAttendanceSessionResponses(rows))
}

// GET /api/sessions/active — maksimal satu; data=null kalau tidak ada
func (ctrl *AttendanceSessionController) Active(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	var m model.AttendanceSessionModel
	err = ctrl.DB.
		Where("attendance_session_building_id = ? AND attendance_session_is_active = ?", buildingID, true).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Tidak ada sesi aktif", nil)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Sesi aktif", dto.NewAttendanceSessionResponse(m))
}

// GET /api/sessions/today — match tanggal, aktif maupun tidak
func (ctrl *AttendanceSessionController) Today(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	var m model.AttendanceSessionModel
	err = ctrl.DB.
		Where("attendance_session_building_id = ? AND attendance_session_date = ?",
			buildingID, dbtime.DateKey(time.Now())).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Success(c, "Belum ada sesi hari ini", nil)
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Sesi hari ini", dto.NewAttendanceSessionResponse(m))
}

// GET /api/sessions/:id
func (ctrl *AttendanceSessionController) GetByID(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var m model.AttendanceSessionModel
	if err := ctrl.DB.
		Where("attendance_session_id = ? AND attendance_session_building_id = ?", id, buildingID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Detail sesi", dto.NewAttendanceSessionResponse(m))
}

// file: internals/features/visitors/controller/visitor_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	hostModel "visitordesk_backend/internals/features/hosts/model"
	sessionModel "visitordesk_backend/internals/features/sessions/model"
	"visitordesk_backend/internals/features/visitors/dto"
	"visitordesk_backend/internals/features/visitors/model"
	helper "visitordesk_backend/internals/helpers"
	osshelper "visitordesk_backend/internals/helpers/oss"
)

const searchResultCap = 10 // hasil pencarian returning-visitor

type VisitorController struct {
	DB     *gorm.DB
	Photos osshelper.PhotoUploader // nil = upload foto nonaktif
}

func NewVisitorController(db *gorm.DB, photos osshelper.PhotoUploader) *VisitorController {
	return &VisitorController{DB: db, Photos: photos}
}

/* ===================== CHECK-IN ===================== */
// POST /api/visitors (JSON atau multipart + field "photo")
func (ctrl *VisitorController) CheckIn(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ref, err := req.HostRef()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Host terdaftar harus milik gedung yang sama
	if ref.Known != nil {
		var h hostModel.HostModel
		if err := ctrl.DB.
			Where("host_id = ? AND host_building_id = ?", *ref.Known, buildingID).
			Take(&h).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Host tidak ditemukan di gedung ini")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	// Precondition: check-in butuh sesi aktif gedung ini
	var sess sessionModel.AttendanceSessionModel
	if err := ctrl.DB.
		Where("attendance_session_building_id = ? AND attendance_session_is_active = ?", buildingID, true).
		Take(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusConflict, "Belum ada sesi aktif. Mulai sesi dulu sebelum check-in.")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if req.VisitorSessionID != nil && *req.VisitorSessionID != sess.AttendanceSessionID {
		return fiber.NewError(fiber.StatusBadRequest, "Sesi sudah berganti. Muat ulang halaman sign-in.")
	}

	m := req.ToModel(buildingID, sess.AttendanceSessionID, ref, time.Now())

	// Foto opsional (kamera kiosk) → OSS → public URL
	if fh, _ := osshelper.TryGetImageFile(c); fh != nil {
		if ctrl.Photos == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Upload foto belum dikonfigurasi")
		}
		url, err := ctrl.Photos.UploadVisitorPhoto(c.UserContext(), buildingID, fh)
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return fe
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Upload foto gagal: "+err.Error())
		}
		m.VisitorPhotoURL = &url
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan check-in")
	}

	if m.VisitorHostID != nil {
		_ = ctrl.DB.Preload("VisitorHost").
			Where("visitor_id = ?", m.VisitorID).
			Take(&m).Error
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengunjung berhasil sign in", dto.NewVisitorResponse(m))
}

/* ===================== CHECK-OUT ===================== */
// POST /api/visitors/:id/checkout — time_out diisi sekali, tidak bisa dibatalkan
func (ctrl *VisitorController) CheckOut(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID pengunjung tidak valid")
	}

	var m model.VisitorModel
	if err := ctrl.DB.
		Where("visitor_id = ? AND visitor_building_id = ?", id, buildingID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pengunjung tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if m.VisitorTimeOut != nil {
		return fiber.NewError(fiber.StatusConflict, "Pengunjung sudah sign out")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&m).
		Update("visitor_time_out", now).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal sign out")
	}

	return helper.Success(c, "Pengunjung berhasil sign out", dto.NewVisitorResponse(m))
}

/* ===================== VERIFY SIGNATURE ===================== */
// POST /api/visitors/:id/verify-signature — satu arah, idempoten
func (ctrl *VisitorController) VerifySignature(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID pengunjung tidak valid")
	}

	var m model.VisitorModel
	if err := ctrl.DB.
		Where("visitor_id = ? AND visitor_building_id = ?", id, buildingID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pengunjung tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !m.VisitorSignatureVerified {
		if err := ctrl.DB.Model(&m).
			Update("visitor_signature_verified", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal verifikasi tanda tangan")
		}
	}

	return helper.Success(c, "Tanda tangan terverifikasi", dto.NewVisitorResponse(m))
}

/* ===================== UPDATE (PARTIAL) ===================== */
// PATCH /api/visitors/:id
func (ctrl *VisitorController) Update(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID pengunjung tidak valid")
	}

	var req dto.UpdateVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.VisitorModel
	if err := ctrl.DB.
		Where("visitor_id = ? AND visitor_building_id = ?", id, buildingID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pengunjung tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	ch, err := req.Changes()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if len(ch) > 0 {
		if err := ctrl.DB.Model(&m).Updates(ch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update pengunjung")
		}
	}

	return helper.Success(c, "Pengunjung diperbarui", dto.NewVisitorResponse(m))
}

/* ===================== SEARCH (RETURNING VISITOR) ===================== */
// GET /api/visitors/search?name= — ILIKE substring, terbaru dulu, cap 10,
// lalu dedup per nama lowercase (kemunculan pertama = kunjungan terakhir)
func (ctrl *VisitorController) Search(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	term := strings.TrimSpace(c.Query("name"))
	if term == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter name wajib diisi")
	}

	var rows []model.VisitorModel
	if err := ctrl.DB.
		Preload("VisitorHost").
		Where("visitor_building_id = ? AND visitor_name ILIKE ?", buildingID, "%"+term+"%").
		Order("visitor_time_in DESC").
		Limit(searchResultCap).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Pencarian gagal")
	}

	rows = dto.DedupByLowerName(rows)
	return helper.Success(c, "Hasil pencarian", dto.NewVisitorResponses(rows))
}

/* ===================== LISTS ===================== */

// GET /api/visitors?session_id= — join host, time_in DESC, paginated
func (ctrl *VisitorController) List(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	var filter dto.ListVisitorsRequest
	if err := c.QueryParser(&filter); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}

	page := helper.ParsePage(c, 25, 200)

	q := ctrl.DB.Model(&model.VisitorModel{}).
		Where("visitor_building_id = ?", buildingID)
	if filter.SessionID != nil {
		q = q.Where("visitor_session_id = ?", *filter.SessionID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pengunjung")
	}

	var rows []model.VisitorModel
	if err := q.
		Preload("VisitorHost").
		Order("visitor_time_in DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar pengunjung")
	}

	return helper.Success(c, "Daftar pengunjung", fiber.Map{
		"visitors":   dto.NewVisitorResponses(rows),
		"pagination": helper.BuildPageMeta(total, page),
	})
}

// GET /api/visitors/current — time_out IS NULL = masih di dalam gedung
func (ctrl *VisitorController) Current(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	var rows []model.VisitorModel
	if err := ctrl.DB.
		Preload("VisitorHost").
		Where("visitor_building_id = ? AND visitor_time_out IS NULL", buildingID).
		Order("visitor_time_in DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar pengunjung")
	}

	return helper.Success(c, "Pengunjung di dalam gedung", dto.NewVisitorResponses(rows))
}

// GET /api/visitors/:id
func (ctrl *VisitorController) GetByID(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID pengunjung tidak valid")
	}

	var m model.VisitorModel
	if err := ctrl.DB.
		Preload("VisitorHost").
		Where("visitor_id = ? AND visitor_building_id = ?", id, buildingID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pengunjung tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Detail pengunjung", dto.NewVisitorResponse(m))
}

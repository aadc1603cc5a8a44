// file: internals/features/buildings/controller/building_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"visitordesk_backend/internals/features/buildings/dto"
	"visitordesk_backend/internals/features/buildings/model"
	helper "visitordesk_backend/internals/helpers"
)

// Gedung dibuat administratif; tidak pernah dihapus — deaktivasi saja.

type BuildingAdminController struct {
	DB *gorm.DB
}

func NewBuildingAdminController(db *gorm.DB) *BuildingAdminController {
	return &BuildingAdminController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/a/buildings — termasuk nonaktif, kode ikut
func (ctrl *BuildingAdminController) List(c *fiber.Ctx) error {
	var rows []model.BuildingModel
	if err := ctrl.DB.Order("building_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar gedung")
	}

	resp := make([]dto.BuildingAdminResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewBuildingAdminResponse(r))
	}
	return helper.Success(c, "Daftar gedung (admin)", resp)
}

/* ===================== CREATE ===================== */
// POST /api/a/buildings
func (ctrl *BuildingAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateBuildingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// kode unik (case-insensitive) dijaga index di DB
			return fiber.NewError(fiber.StatusConflict, "Kode gedung sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat gedung")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gedung dibuat", dto.NewBuildingAdminResponse(m))
}

/* ===================== UPDATE (PARTIAL) ===================== */
// PATCH /api/a/buildings/:id — termasuk deaktivasi (building_is_active=false)
func (ctrl *BuildingAdminController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID gedung tidak valid")
	}

	var req dto.UpdateBuildingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.BuildingModel
	if err := ctrl.DB.Where("building_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gedung tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	ch := req.Changes()
	if len(ch) > 0 {
		if err := ctrl.DB.Model(&m).Updates(ch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update gedung")
		}
	}

	return helper.Success(c, "Gedung diperbarui", dto.NewBuildingAdminResponse(m))
}

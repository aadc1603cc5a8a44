// file: internals/features/hosts/controller/host_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"visitordesk_backend/internals/features/hosts/dto"
	"visitordesk_backend/internals/features/hosts/model"
	helper "visitordesk_backend/internals/helpers"
)

type HostController struct {
	DB *gorm.DB
}

func NewHostController(db *gorm.DB) *HostController {
	return &HostController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/hosts?only_active=true — urut nama
func (ctrl *HostController) List(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("host_building_id = ?", buildingID)
	if c.Query("only_active") == "true" {
		q = q.Where("host_is_active = ?", true)
	}

	var rows []model.HostModel
	if err := q.Order("host_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar host")
	}

	resp := make([]dto.HostResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewHostResponse(r))
	}
	return helper.Success(c, "Daftar host", resp)
}

/* ===================== CREATE ===================== */
// POST /api/hosts
func (ctrl *HostController) Create(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateHostRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(buildingID)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambah host")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Host ditambahkan", dto.NewHostResponse(m))
}

/* ===================== UPDATE (PARTIAL) ===================== */
// PATCH /api/hosts/:id — soft-deactivate lewat host_is_active=false
func (ctrl *HostController) Update(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID host tidak valid")
	}

	var req dto.UpdateHostRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.HostModel
	if err := ctrl.DB.
		Where("host_id = ? AND host_building_id = ?", id, buildingID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Host tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	ch := req.Changes()
	if len(ch) > 0 {
		if err := ctrl.DB.Model(&m).Updates(ch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update host")
		}
	}

	return helper.Success(c, "Host diperbarui", dto.NewHostResponse(m))
}

/* ===================== DELETE (HARD) ===================== */
// DELETE /api/hosts/:id
func (ctrl *HostController) Delete(c *fiber.Ctx) error {
	buildingID, err := helper.GetBuildingIDFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID host tidak valid")
	}

	res := ctrl.DB.
		Where("host_id = ? AND host_building_id = ?", id, buildingID).
		Delete(&model.HostModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus host")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Host tidak ditemukan")
	}

	return helper.Success(c, "Host dihapus", nil)
}

// file: internals/features/buildings/controller/building_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"visitordesk_backend/internals/configs"
	"visitordesk_backend/internals/features/buildings/dto"
	"visitordesk_backend/internals/features/buildings/model"
	helper "visitordesk_backend/internals/helpers"
)

type BuildingController struct {
	DB *gorm.DB
}

func NewBuildingController(db *gorm.DB) *BuildingController {
	return &BuildingController{DB: db}
}

/* ===================== LIST (PUBLIC) ===================== */
// GET /api/buildings — gedung aktif, tanpa kode
func (ctrl *BuildingController) List(c *fiber.Ctx) error {
	var rows []model.BuildingModel
	if err := ctrl.DB.
		Where("building_is_active = ?", true).
		Order("building_name ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar gedung")
	}

	resp := make([]dto.BuildingResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewBuildingResponse(r))
	}
	return helper.Success(c, "Daftar gedung", resp)
}

/* ===================== VERIFY CODE ===================== */
// POST /api/buildings/verify-code
// Kode dicocokkan case-insensitive ke semua gedung aktif; cocok → terbit
// building token (pengganti sessionStorage di SPA lama)
func (ctrl *BuildingController) VerifyCode(c *fiber.Ctx) error {
	var req dto.VerifyBuildingCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var b model.BuildingModel
	err := ctrl.DB.
		Where("building_is_active = ? AND LOWER(building_code) = LOWER(?)", true, req.BuildingCode).
		Take(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Kode gedung salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	token, err := helper.IssueBuildingToken(
		b.BuildingID, b.BuildingName,
		configs.BuildingTokenSecret, configs.BuildingTokenTTL,
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menerbitkan building token")
	}

	return helper.Success(c, "Gedung terpilih", dto.VerifyBuildingCodeResponse{
		Building:      dto.NewBuildingResponse(b),
		BuildingToken: token,
	})
}

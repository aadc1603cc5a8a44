// file: internals/middlewares/building/building_context.go
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"visitordesk_backend/internals/configs"
	helper "visitordesk_backend/internals/helpers"
)

//? Mengambil building_id dari building token lalu memastikan gedungnya masih aktif.
//? Semua route ber-scope gedung wajib lewat sini — tidak ada state global gedung.

type buildingRow struct {
	ID       uuid.UUID `gorm:"column:building_id"`
	Name     string    `gorm:"column:building_name"`
	IsActive bool      `gorm:"column:building_is_active"`
}

type BuildingContextOpts struct {
	DB     *gorm.DB
	Secret string
}

func BuildingContext(o BuildingContextOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		secret = strings.TrimSpace(configs.BuildingTokenSecret)
	}
	if secret == "" {
		panic("BuildingContext: secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx atau header X-Building-Token
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			raw = strings.TrimSpace(c.Get(helper.HeaderBuildingToken))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Pilih gedung terlebih dahulu")
		}

		// 2) Parse + verifikasi algoritma
		buildingID, err := helper.ParseBuildingToken(raw, secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return fiber.NewError(fiber.StatusUnauthorized, "Sesi gedung kedaluwarsa, pilih gedung lagi")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "Building token tidak valid")
		}

		// 3) Pastikan gedung masih ada & aktif
		var row buildingRow
		if err := o.DB.Table("buildings").
			Select("building_id, building_name, building_is_active").
			Where("building_id = ?", buildingID).
			Take(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Gedung tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !row.IsActive {
			return fiber.NewError(fiber.StatusUnauthorized, "Gedung sudah dinonaktifkan")
		}

		c.Locals(helper.LocBuildingID, row.ID)
		c.Locals(helper.LocBuildingName, row.Name)
		return c.Next()
	}
}

// file: internals/helpers/building_token.go
package helper

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"visitordesk_backend/internals/configs"
)

// Building token = pengganti sessionStorage SPA lama: siapa pun yang tahu kode
// gedung memegang token ber-claim building_id selama sesi browser berjalan.
// Bukan identitas user — cuma scoping gedung.

const (
	HeaderBuildingToken = "X-Building-Token"

	LocBuildingID   = "building_id"
	LocBuildingName = "building_name"
)

var ErrNoBuildingContext = errors.New("building context belum terpasang")

func IssueBuildingToken(buildingID uuid.UUID, buildingName, secret string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = configs.BuildingTokenTTL
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"building_id":   buildingID.String(),
		"building_name": buildingName,
		"iat":           now.Unix(),
		"exp":           now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseBuildingToken(raw, secret string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !tok.Valid {
		return uuid.Nil, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid token claims")
	}
	rawID, _ := claims["building_id"].(string)
	id, err := uuid.Parse(rawID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("building_id claim tidak valid")
	}
	return id, nil
}

// GetBuildingIDFromLocals dipakai controller setelah middleware BuildingContext jalan
func GetBuildingIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := c.Locals(LocBuildingID).(uuid.UUID); ok && id != uuid.Nil {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Pilih gedung terlebih dahulu")
}

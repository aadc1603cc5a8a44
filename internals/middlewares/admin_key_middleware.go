package middlewares

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"visitordesk_backend/internals/configs"
)

// AdminKeyMiddleware menjaga endpoint administratif gedung.
// Sama seperti kode gedung: shared secret sederhana, bukan protokol auth.
func AdminKeyMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := configs.AdminAPIKey
		if key == "" {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Endpoint admin belum dikonfigurasi")
		}
		got := strings.TrimSpace(c.Get("X-Admin-Key"))
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "Admin key salah")
		}
		return c.Next()
	}
}

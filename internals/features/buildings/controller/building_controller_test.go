package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"visitordesk_backend/internals/configs"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gdb, mock
}

func newBuildingApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	gdb, mock := newMockDB(t)
	ctrl := NewBuildingController(gdb)

	app := fiber.New()
	app.Get("/buildings", ctrl.List)
	app.Post("/buildings/verify-code", ctrl.VerifyCode)
	return app, mock
}

func TestVerifyCodeWrongCode(t *testing.T) {
	app, mock := newBuildingApp(t)

	mock.ExpectQuery(`SELECT .* FROM "buildings"`).
		WillReturnRows(sqlmock.NewRows([]string{"building_id"}))

	body := strings.NewReader(`{"building_code":"salah"}`)
	req := httptest.NewRequest("POST", "/buildings/verify-code", body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyCodeIssuesToken(t *testing.T) {
	prevSecret := configs.BuildingTokenSecret
	configs.BuildingTokenSecret = "unit-test-secret"
	t.Cleanup(func() { configs.BuildingTokenSecret = prevSecret })

	app, mock := newBuildingApp(t)
	buildingID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "buildings"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"building_id", "building_name", "building_code", "building_is_active",
		}).AddRow(buildingID.String(), "Kantor Pusat", "1234", true))

	body := strings.NewReader(`{"building_code":"1234"}`)
	req := httptest.NewRequest("POST", "/buildings/verify-code", body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	payload := string(raw)
	assert.Contains(t, payload, `"building_token"`)
	assert.Contains(t, payload, buildingID.String())
	// kode tidak pernah ikut keluar di response publik
	assert.NotContains(t, payload, `"building_code"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBuildingsEmpty(t *testing.T) {
	app, mock := newBuildingApp(t)

	mock.ExpectQuery(`SELECT .* FROM "buildings"`).
		WillReturnRows(sqlmock.NewRows([]string{"building_id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/buildings", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

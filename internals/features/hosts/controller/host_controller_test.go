package controller

import (
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

	helper "visitordesk_backend/internals/helpers"
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

func newHostApp(t *testing.T, buildingID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	gdb, mock := newMockDB(t)
	ctrl := NewHostController(gdb)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocBuildingID, buildingID)
		return c.Next()
	})
	app.Get("/hosts", ctrl.List)
	app.Post("/hosts", ctrl.Create)
	app.Delete("/hosts/:id", ctrl.Delete)
	return app, mock
}

func TestCreateHost(t *testing.T) {
	buildingID := uuid.New()
	app, mock := newHostApp(t, buildingID)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "hosts"`).
		WillReturnRows(sqlmock.NewRows([]string{"host_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	body := strings.NewReader(`{"host_name":"Rina Kartika","host_department":"HR"}`)
	req := httptest.NewRequest("POST", "/hosts", body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHostRequiresName(t *testing.T) {
	buildingID := uuid.New()
	app, _ := newHostApp(t, buildingID)

	body := strings.NewReader(`{"host_department":"HR"}`)
	req := httptest.NewRequest("POST", "/hosts", body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteHostNotFound(t *testing.T) {
	buildingID := uuid.New()
	app, mock := newHostApp(t, buildingID)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "hosts"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/hosts/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

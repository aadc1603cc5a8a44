package controller

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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

func withBuilding(buildingID uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(helper.LocBuildingID, buildingID)
		return c.Next()
	}
}

func newSessionApp(t *testing.T, buildingID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	gdb, mock := newMockDB(t)
	ctrl := NewAttendanceSessionController(gdb)

	app := fiber.New()
	app.Use(withBuilding(buildingID))
	app.Post("/sessions", ctrl.StartSession)
	app.Post("/sessions/:id/end", ctrl.EndSession)
	app.Post("/sessions/:id/reopen", ctrl.ReopenSession)
	app.Get("/sessions/active", ctrl.Active)
	return app, mock
}

func TestStartSessionConflictsWhileActive(t *testing.T) {
	buildingID := uuid.New()
	app, mock := newSessionApp(t, buildingID)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "attendance_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	resp, err := app.Test(httptest.NewRequest("POST", "/sessions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartSessionCreatesWhenNoneActive(t *testing.T) {
	buildingID := uuid.New()
	app, mock := newSessionApp(t, buildingID)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "attendance_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "attendance_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"attendance_session_id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("POST", "/sessions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartSessionRejectsBadDate(t *testing.T) {
	buildingID := uuid.New()
	app, _ := newSessionApp(t, buildingID)

	body := strings.NewReader(`{"attendance_session_date":"14-03-2026"}`)
	req := httptest.NewRequest("POST", "/sessions", body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEndSessionNotFound(t *testing.T) {
	buildingID := uuid.New()
	app, mock := newSessionApp(t, buildingID)

	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"attendance_session_id"}))

	resp, err := app.Test(httptest.NewRequest("POST", "/sessions/"+uuid.NewString()+"/end", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndSessionIdempotentWhenAlreadyEnded(t *testing.T) {
	buildingID := uuid.New()
	sessionID := uuid.New()
	app, mock := newSessionApp(t, buildingID)

	ended := time.Now().Add(-time.Hour)
	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"attendance_session_id",
			"attendance_session_building_id",
			"attendance_session_is_active",
			"attendance_session_ended_at",
		}).AddRow(sessionID.String(), buildingID.String(), false, ended))

	// tidak ada UPDATE yang diharapkan — sudah berakhir
	resp, err := app.Test(httptest.NewRequest("POST", "/sessions/"+sessionID.String()+"/end", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndSessionDeactivatesActiveSession(t *testing.T) {
	buildingID := uuid.New()
	sessionID := uuid.New()
	app, mock := newSessionApp(t, buildingID)

	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"attendance_session_id",
			"attendance_session_building_id",
			"attendance_session_is_active",
		}).AddRow(sessionID.String(), buildingID.String(), true))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "attendance_sessions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("POST", "/sessions/"+sessionID.String()+"/end", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReopenSessionConflictsWithOtherActive(t *testing.T) {
	buildingID := uuid.New()
	sessionID := uuid.New()
	app, mock := newSessionApp(t, buildingID)

	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"attendance_session_id",
			"attendance_session_building_id",
			"attendance_session_is_active",
		}).AddRow(sessionID.String(), buildingID.String(), false))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "attendance_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	resp, err := app.Test(httptest.NewRequest("POST", "/sessions/"+sessionID.String()+"/reopen", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveReturnsNullWhenNoSession(t *testing.T) {
	buildingID := uuid.New()
	app, mock := newSessionApp(t, buildingID)

	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"attendance_session_id"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/active", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

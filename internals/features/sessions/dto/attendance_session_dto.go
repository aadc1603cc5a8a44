// file: internals/features/sessions/dto/attendance_session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "visitordesk_backend/internals/features/sessions/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Start: tanggal opsional (default hari ini)
type StartSessionRequest struct {
	AttendanceSessionDate  *string `json:"attendance_session_date" validate:"omitempty,datetime=2006-01-02"`
	AttendanceSessionNotes *string `json:"attendance_session_notes" validate:"omitempty,max=500"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type AttendanceSessionResponse struct {
	AttendanceSessionID         uuid.UUID  `json:"attendance_session_id"`
	AttendanceSessionBuildingID uuid.UUID  `json:"attendance_session_building_id"`
	AttendanceSessionDate       string     `json:"attendance_session_date"` // YYYY-MM-DD
	AttendanceSessionStartedAt  time.Time  `json:"attendance_session_started_at"`
	AttendanceSessionEndedAt    *time.Time `json:"attendance_session_ended_at,omitempty"`
	AttendanceSessionIsActive   bool       `json:"attendance_session_is_active"`
	AttendanceSessionNotes      *string    `json:"attendance_session_notes,omitempty"`
	AttendanceSessionCreatedAt  time.Time  `json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt  *time.Time `json:"attendance_session_updated_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

// ResolveDate: parse tanggal request atau fallback hari ini (zona server)
func (r StartSessionRequest) ResolveDate(now time.Time) (datatypes.Date, error) {
	if r.AttendanceSessionDate == nil || *r.AttendanceSessionDate == "" {
		y, mo, d := now.Date()
		return datatypes.Date(time.Date(y, mo, d, 0, 0, 0, 0, now.Location())), nil
	}
	t, err := time.ParseInLocation("2006-01-02", *r.AttendanceSessionDate, now.Location())
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func (r StartSessionRequest) ToModel(buildingID uuid.UUID, date datatypes.Date, now time.Time) m.AttendanceSessionModel {
	return m.AttendanceSessionModel{
		AttendanceSessionBuildingID: buildingID,
		AttendanceSessionDate:       date,
		AttendanceSessionStartedAt:  now,
		AttendanceSessionIsActive:   true,
		AttendanceSessionNotes:      r.AttendanceSessionNotes,
	}
}

func NewAttendanceSessionResponse(mdl m.AttendanceSessionModel) AttendanceSessionResponse {
	return AttendanceSessionResponse{
		AttendanceSessionID:         mdl.AttendanceSessionID,
		AttendanceSessionBuildingID: mdl.AttendanceSessionBuildingID,
		AttendanceSessionDate:       time.Time(mdl.AttendanceSessionDate).Format("2006-01-02"),
		AttendanceSessionStartedAt:  mdl.AttendanceSessionStartedAt,
		AttendanceSessionEndedAt:    mdl.AttendanceSessionEndedAt,
		AttendanceSessionIsActive:   mdl.AttendanceSessionIsActive,
		AttendanceSessionNotes:      mdl.AttendanceSessionNotes,
		AttendanceSessionCreatedAt:  mdl.AttendanceSessionCreatedAt,
		AttendanceSessionUpdatedAt:  mdl.AttendanceSessionUpdatedAt,
	}
}

func NewAttendanceSessionResponses(mdls []m.AttendanceSessionModel) []AttendanceSessionResponse {
	out := make([]AttendanceSessionResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, NewAttendanceSessionResponse(mdl))
	}
	return out
}

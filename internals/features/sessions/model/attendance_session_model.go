package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AttendanceSessionModel struct {
	AttendanceSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_session_id" json:"attendance_session_id"`

	AttendanceSessionBuildingID uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_building_id" json:"attendance_session_building_id"`

	// Satu baris per tanggal kalender per gedung (intended invariant)
	AttendanceSessionDate datatypes.Date `gorm:"type:date;not null;column:attendance_session_date" json:"attendance_session_date"`

	AttendanceSessionStartedAt time.Time  `gorm:"not null;column:attendance_session_started_at" json:"attendance_session_started_at"`
	AttendanceSessionEndedAt   *time.Time `gorm:"column:attendance_session_ended_at" json:"attendance_session_ended_at,omitempty"`

	// is_active=true → form sign-in menerima pengunjung baru.
	// Partial unique index (building_id WHERE is_active) menjaga maksimal satu
	// sesi aktif per gedung di sisi DB.
	AttendanceSessionIsActive bool `gorm:"not null;default:true;column:attendance_session_is_active" json:"attendance_session_is_active"`

	AttendanceSessionNotes *string `gorm:"column:attendance_session_notes" json:"attendance_session_notes,omitempty"`

	AttendanceSessionCreatedAt time.Time  `gorm:"column:attendance_session_created_at;autoCreateTime" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt *time.Time `gorm:"column:attendance_session_updated_at;autoUpdateTime" json:"attendance_session_updated_at,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

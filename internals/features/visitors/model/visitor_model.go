package model

import (
	"time"

	"github.com/google/uuid"

	hostModel "visitordesk_backend/internals/features/hosts/model"
)

// VisitorModel = satu kejadian check-in, bukan identitas orang yang persisten.
// "Returning visitor" dicari heuristik lewat nama (case-insensitive).
type VisitorModel struct {
	VisitorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:visitor_id" json:"visitor_id"`

	VisitorBuildingID uuid.UUID `gorm:"type:uuid;not null;column:visitor_building_id" json:"visitor_building_id"`
	VisitorSessionID  uuid.UUID `gorm:"type:uuid;not null;column:visitor_session_id" json:"visitor_session_id"`

	// Referensi host: tepat satu dari pasangan ini yang terisi
	// (host terdaftar vs free-text). Normalisasi di DTO (HostRef).
	VisitorHostID   *uuid.UUID `gorm:"type:uuid;column:visitor_host_id" json:"visitor_host_id,omitempty"`
	VisitorHostName *string    `gorm:"column:visitor_host_name" json:"visitor_host_name,omitempty"`

	VisitorName    string  `gorm:"not null;column:visitor_name" json:"visitor_name"`
	VisitorCompany *string `gorm:"column:visitor_company" json:"visitor_company,omitempty"`
	VisitorPhone   *string `gorm:"column:visitor_phone" json:"visitor_phone,omitempty"`
	VisitorEmail   *string `gorm:"column:visitor_email" json:"visitor_email,omitempty"`

	VisitorCategory string `gorm:"not null;column:visitor_category" json:"visitor_category"`

	VisitorPurpose     *string `gorm:"column:visitor_purpose" json:"visitor_purpose,omitempty"`
	VisitorBadgeNumber *string `gorm:"column:visitor_badge_number" json:"visitor_badge_number,omitempty"`
	VisitorRemarks     *string `gorm:"column:visitor_remarks" json:"visitor_remarks,omitempty"`
	VisitorPhotoURL    *string `gorm:"column:visitor_photo_url" json:"visitor_photo_url,omitempty"`

	VisitorTimeIn time.Time `gorm:"not null;column:visitor_time_in" json:"visitor_time_in"`

	// time_out NULL = masih di dalam gedung; sign-out sekali jalan
	VisitorTimeOut *time.Time `gorm:"column:visitor_time_out" json:"visitor_time_out,omitempty"`

	VisitorSignatureVerified bool `gorm:"not null;default:false;column:visitor_signature_verified" json:"visitor_signature_verified"`

	VisitorCreatedAt time.Time  `gorm:"column:visitor_created_at;autoCreateTime" json:"visitor_created_at"`
	VisitorUpdatedAt *time.Time `gorm:"column:visitor_updated_at;autoUpdateTime" json:"visitor_updated_at,omitempty"`

	VisitorHost *hostModel.HostModel `gorm:"foreignKey:VisitorHostID;references:HostID" json:"visitor_host,omitempty"`
}

func (VisitorModel) TableName() string { return "visitors" }

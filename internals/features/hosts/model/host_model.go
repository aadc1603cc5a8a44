package model

import (
	"time"

	"github.com/google/uuid"
)

type HostModel struct {
	HostID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:host_id" json:"host_id"`

	HostBuildingID uuid.UUID `gorm:"type:uuid;not null;column:host_building_id" json:"host_building_id"`

	HostName       string  `gorm:"not null;column:host_name" json:"host_name"`
	HostDepartment *string `gorm:"column:host_department" json:"host_department,omitempty"`
	HostPosition   *string `gorm:"column:host_position" json:"host_position,omitempty"`
	HostEmail      *string `gorm:"column:host_email" json:"host_email,omitempty"`
	HostPhone      *string `gorm:"column:host_phone" json:"host_phone,omitempty"`

	// Soft-deactivation; hard delete tetap didukung lewat endpoint delete
	HostIsActive bool `gorm:"not null;default:true;column:host_is_active" json:"host_is_active"`

	HostCreatedAt time.Time  `gorm:"column:host_created_at;autoCreateTime" json:"host_created_at"`
	HostUpdatedAt *time.Time `gorm:"column:host_updated_at;autoUpdateTime" json:"host_updated_at,omitempty"`
}

func (HostModel) TableName() string { return "hosts" }

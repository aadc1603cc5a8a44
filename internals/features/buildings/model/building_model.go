package model

import (
	"time"

	"github.com/google/uuid"
)

type BuildingModel struct {
	BuildingID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:building_id" json:"building_id"`

	BuildingName string `gorm:"not null;column:building_name" json:"building_name"`

	// Kode akses bersama (dibandingkan case-insensitive) — gerbang kenyamanan,
	// bukan protokol autentikasi
	BuildingCode string `gorm:"not null;column:building_code" json:"building_code"`

	BuildingDescription *string `gorm:"column:building_description" json:"building_description,omitempty"`

	BuildingIsActive bool `gorm:"not null;default:true;column:building_is_active" json:"building_is_active"`

	BuildingCreatedAt time.Time  `gorm:"column:building_created_at;autoCreateTime" json:"building_created_at"`
	BuildingUpdatedAt *time.Time `gorm:"column:building_updated_at;autoUpdateTime" json:"building_updated_at,omitempty"`
}

func (BuildingModel) TableName() string { return "buildings" }

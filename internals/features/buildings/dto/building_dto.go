// file: internals/features/buildings/dto/building_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "visitordesk_backend/internals/features/buildings/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type VerifyBuildingCodeRequest struct {
	BuildingCode string `json:"building_code" validate:"required,min=3,max=32"`
}

// Create (admin)
type CreateBuildingRequest struct {
	BuildingName        string  `json:"building_name" validate:"required,min=2,max=120"`
	BuildingCode        string  `json:"building_code" validate:"required,min=3,max=32"`
	BuildingDescription *string `json:"building_description" validate:"omitempty,max=500"`
}

// Update (partial, admin) — deaktivasi lewat building_is_active=false;
// tidak ada delete (gedung tidak pernah dihapus)
type UpdateBuildingRequest struct {
	BuildingName        *string `json:"building_name" validate:"omitempty,min=2,max=120"`
	BuildingCode        *string `json:"building_code" validate:"omitempty,min=3,max=32"`
	BuildingDescription *string `json:"building_description" validate:"omitempty,max=500"`
	BuildingIsActive    *bool   `json:"building_is_active" validate:"omitempty"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

// Response publik — kode akses tidak pernah ikut keluar
type BuildingResponse struct {
	BuildingID          uuid.UUID  `json:"building_id"`
	BuildingName        string     `json:"building_name"`
	BuildingDescription *string    `json:"building_description,omitempty"`
	BuildingIsActive    bool       `json:"building_is_active"`
	BuildingCreatedAt   time.Time  `json:"building_created_at"`
	BuildingUpdatedAt   *time.Time `json:"building_updated_at,omitempty"`
}

// Response admin — kode ikut (admin yang membagikan kode ke front desk)
type BuildingAdminResponse struct {
	BuildingResponse
	BuildingCode string `json:"building_code"`
}

type VerifyBuildingCodeResponse struct {
	Building      BuildingResponse `json:"building"`
	BuildingToken string           `json:"building_token"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateBuildingRequest) ToModel() m.BuildingModel {
	return m.BuildingModel{
		BuildingName:        r.BuildingName,
		BuildingCode:        r.BuildingCode,
		BuildingDescription: r.BuildingDescription,
		BuildingIsActive:    true,
	}
}

// Changes: kolom yang di-update saja (PATCH semantics)
func (r UpdateBuildingRequest) Changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if r.BuildingName != nil {
		ch["building_name"] = *r.BuildingName
	}
	if r.BuildingCode != nil {
		ch["building_code"] = *r.BuildingCode
	}
	if r.BuildingDescription != nil {
		ch["building_description"] = *r.BuildingDescription
	}
	if r.BuildingIsActive != nil {
		ch["building_is_active"] = *r.BuildingIsActive
	}
	return ch
}

func NewBuildingResponse(mdl m.BuildingModel) BuildingResponse {
	return BuildingResponse{
		BuildingID:          mdl.BuildingID,
		BuildingName:        mdl.BuildingName,
		BuildingDescription: mdl.BuildingDescription,
		BuildingIsActive:    mdl.BuildingIsActive,
		BuildingCreatedAt:   mdl.BuildingCreatedAt,
		BuildingUpdatedAt:   mdl.BuildingUpdatedAt,
	}
}

func NewBuildingAdminResponse(mdl m.BuildingModel) BuildingAdminResponse {
	return BuildingAdminResponse{
		BuildingResponse: NewBuildingResponse(mdl),
		BuildingCode:     mdl.BuildingCode,
	}
}

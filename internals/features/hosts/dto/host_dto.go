// file: internals/features/hosts/dto/host_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "visitordesk_backend/internals/features/hosts/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateHostRequest struct {
	HostName       string  `json:"host_name" validate:"required,min=2,max=120"`
	HostDepartment *string `json:"host_department" validate:"omitempty,max=120"`
	HostPosition   *string `json:"host_position" validate:"omitempty,max=120"`
	HostEmail      *string `json:"host_email" validate:"omitempty,email"`
	HostPhone      *string `json:"host_phone" validate:"omitempty,max=30"`
}

// Update (partial) — nonaktifkan host lewat host_is_active=false
type UpdateHostRequest struct {
	HostName       *string `json:"host_name" validate:"omitempty,min=2,max=120"`
	HostDepartment *string `json:"host_department" validate:"omitempty,max=120"`
	HostPosition   *string `json:"host_position" validate:"omitempty,max=120"`
	HostEmail      *string `json:"host_email" validate:"omitempty,email"`
	HostPhone      *string `json:"host_phone" validate:"omitempty,max=30"`
	HostIsActive   *bool   `json:"host_is_active" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type HostResponse struct {
	HostID         uuid.UUID  `json:"host_id"`
	HostBuildingID uuid.UUID  `json:"host_building_id"`
	HostName       string     `json:"host_name"`
	HostDepartment *string    `json:"host_department,omitempty"`
	HostPosition   *string    `json:"host_position,omitempty"`
	HostEmail      *string    `json:"host_email,omitempty"`
	HostPhone      *string    `json:"host_phone,omitempty"`
	HostIsActive   bool       `json:"host_is_active"`
	HostCreatedAt  time.Time  `json:"host_created_at"`
	HostUpdatedAt  *time.Time `json:"host_updated_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateHostRequest) ToModel(buildingID uuid.UUID) m.HostModel {
	return m.HostModel{
		HostBuildingID: buildingID,
		HostName:       r.HostName,
		HostDepartment: r.HostDepartment,
		HostPosition:   r.HostPosition,
		HostEmail:      r.HostEmail,
		HostPhone:      r.HostPhone,
		HostIsActive:   true,
	}
}

func (r UpdateHostRequest) Changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if r.HostName != nil {
		ch["host_name"] = *r.HostName
	}
	if r.HostDepartment != nil {
		ch["host_department"] = *r.HostDepartment
	}
	if r.HostPosition != nil {
		ch["host_position"] = *r.HostPosition
	}
	if r.HostEmail != nil {
		ch["host_email"] = *r.HostEmail
	}
	if r.HostPhone != nil {
		ch["host_phone"] = *r.HostPhone
	}
	if r.HostIsActive != nil {
		ch["host_is_active"] = *r.HostIsActive
	}
	return ch
}

func NewHostResponse(mdl m.HostModel) HostResponse {
	return HostResponse{
		HostID:         mdl.HostID,
		HostBuildingID: mdl.HostBuildingID,
		HostName:       mdl.HostName,
		HostDepartment: mdl.HostDepartment,
		HostPosition:   mdl.HostPosition,
		HostEmail:      mdl.HostEmail,
		HostPhone:      mdl.HostPhone,
		HostIsActive:   mdl.HostIsActive,
		HostCreatedAt:  mdl.HostCreatedAt,
		HostUpdatedAt:  mdl.HostUpdatedAt,
	}
}

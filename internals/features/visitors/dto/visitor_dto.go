// file: internals/features/visitors/dto/visitor_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	hostDto "visitordesk_backend/internals/features/hosts/dto"
	m "visitordesk_backend/internals/features/visitors/model"
)

/* =========================================================
 * HOST REF (tagged variant)
 * host terdaftar (Known) XOR free-text (FreeText) — dua kolom nullable
 * di DB dilipat jadi satu sum type di sini
 * ========================================================= */

type HostRef struct {
	Known    *uuid.UUID
	FreeText *string
}

var (
	ErrHostRefBoth    = errors.New("isi salah satu: visitor_host_id atau visitor_host_name, bukan keduanya")
	ErrHostRefMissing = errors.New("referensi host wajib diisi (visitor_host_id atau visitor_host_name)")
)

func NewHostRef(hostID *uuid.UUID, hostName *string) (HostRef, error) {
	hasID := hostID != nil && *hostID != uuid.Nil
	name := ""
	if hostName != nil {
		name = strings.TrimSpace(*hostName)
	}
	hasName := name != ""

	switch {
	case hasID && hasName:
		return HostRef{}, ErrHostRefBoth
	case hasID:
		return HostRef{Known: hostID}, nil
	case hasName:
		return HostRef{FreeText: &name}, nil
	default:
		return HostRef{}, ErrHostRefMissing
	}
}

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON atau multipart + field "photo")
type CreateVisitorRequest struct {
	// Opsional: kalau dikirim harus sama dengan sesi aktif gedung
	VisitorSessionID *uuid.UUID `json:"visitor_session_id" form:"visitor_session_id" validate:"omitempty"`

	VisitorHostID   *uuid.UUID `json:"visitor_host_id" form:"visitor_host_id" validate:"omitempty"`
	VisitorHostName *string    `json:"visitor_host_name" form:"visitor_host_name" validate:"omitempty,max=120"`

	VisitorName     string  `json:"visitor_name" form:"visitor_name" validate:"required,min=2,max=120"`
	VisitorCompany  *string `json:"visitor_company" form:"visitor_company" validate:"omitempty,max=120"`
	VisitorPhone    *string `json:"visitor_phone" form:"visitor_phone" validate:"omitempty,max=30"`
	VisitorEmail    *string `json:"visitor_email" form:"visitor_email" validate:"omitempty,email"`
	VisitorCategory string  `json:"visitor_category" form:"visitor_category" validate:"required,oneof=guest contractor delivery interview vendor other"`

	VisitorPurpose     *string `json:"visitor_purpose" form:"visitor_purpose" validate:"omitempty,max=300"`
	VisitorBadgeNumber *string `json:"visitor_badge_number" form:"visitor_badge_number" validate:"omitempty,max=40"`
	VisitorRemarks     *string `json:"visitor_remarks" form:"visitor_remarks" validate:"omitempty,max=500"`
}

func (r CreateVisitorRequest) HostRef() (HostRef, error) {
	return NewHostRef(r.VisitorHostID, r.VisitorHostName)
}

// Update (partial) — time_in/time_out/signature tidak bisa lewat sini
type UpdateVisitorRequest struct {
	VisitorHostID   *uuid.UUID `json:"visitor_host_id" validate:"omitempty"`
	VisitorHostName *string    `json:"visitor_host_name" validate:"omitempty,max=120"`

	VisitorName        *string `json:"visitor_name" validate:"omitempty,min=2,max=120"`
	VisitorCompany     *string `json:"visitor_company" validate:"omitempty,max=120"`
	VisitorPhone       *string `json:"visitor_phone" validate:"omitempty,max=30"`
	VisitorEmail       *string `json:"visitor_email" validate:"omitempty,email"`
	VisitorCategory    *string `json:"visitor_category" validate:"omitempty,oneof=guest contractor delivery interview vendor other"`
	VisitorPurpose     *string `json:"visitor_purpose" validate:"omitempty,max=300"`
	VisitorBadgeNumber *string `json:"visitor_badge_number" validate:"omitempty,max=40"`
	VisitorRemarks     *string `json:"visitor_remarks" validate:"omitempty,max=500"`
}

func (r UpdateVisitorRequest) Changes() (map[string]interface{}, error) {
	ch := map[string]interface{}{}

	// Host ref boleh diganti, tapi tetap XOR
	if r.VisitorHostID != nil || r.VisitorHostName != nil {
		ref, err := NewHostRef(r.VisitorHostID, r.VisitorHostName)
		if err != nil {
			return nil, err
		}
		if ref.Known != nil {
			ch["visitor_host_id"] = *ref.Known
			ch["visitor_host_name"] = nil
		} else {
			ch["visitor_host_id"] = nil
			ch["visitor_host_name"] = *ref.FreeText
		}
	}

	if r.VisitorName != nil {
		ch["visitor_name"] = *r.VisitorName
	}
	if r.VisitorCompany != nil {
		ch["visitor_company"] = *r.VisitorCompany
	}
	if r.VisitorPhone != nil {
		ch["visitor_phone"] = *r.VisitorPhone
	}
	if r.VisitorEmail != nil {
		ch["visitor_email"] = *r.VisitorEmail
	}
	if r.VisitorCategory != nil {
		ch["visitor_category"] = *r.VisitorCategory
	}
	if r.VisitorPurpose != nil {
		ch["visitor_purpose"] = *r.VisitorPurpose
	}
	if r.VisitorBadgeNumber != nil {
		ch["visitor_badge_number"] = *r.VisitorBadgeNumber
	}
	if r.VisitorRemarks != nil {
		ch["visitor_remarks"] = *r.VisitorRemarks
	}
	return ch, nil
}

// Filter list (query)
type ListVisitorsRequest struct {
	SessionID *uuid.UUID `query:"session_id" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type VisitorResponse struct {
	VisitorID         uuid.UUID `json:"visitor_id"`
	VisitorBuildingID uuid.UUID `json:"visitor_building_id"`
	VisitorSessionID  uuid.UUID `json:"visitor_session_id"`

	VisitorHostID   *uuid.UUID `json:"visitor_host_id,omitempty"`
	VisitorHostName *string    `json:"visitor_host_name,omitempty"`

	VisitorName     string  `json:"visitor_name"`
	VisitorCompany  *string `json:"visitor_company,omitempty"`
	VisitorPhone    *string `json:"visitor_phone,omitempty"`
	VisitorEmail    *string `json:"visitor_email,omitempty"`
	VisitorCategory string  `json:"visitor_category"`

	VisitorPurpose     *string `json:"visitor_purpose,omitempty"`
	VisitorBadgeNumber *string `json:"visitor_badge_number,omitempty"`
	VisitorRemarks     *string `json:"visitor_remarks,omitempty"`
	VisitorPhotoURL    *string `json:"visitor_photo_url,omitempty"`

	VisitorTimeIn            time.Time  `json:"visitor_time_in"`
	VisitorTimeOut           *time.Time `json:"visitor_time_out,omitempty"`
	VisitorSignatureVerified bool       `json:"visitor_signature_verified"`

	VisitorCreatedAt time.Time  `json:"visitor_created_at"`
	VisitorUpdatedAt *time.Time `json:"visitor_updated_at,omitempty"`

	VisitorHost *hostDto.HostResponse `json:"visitor_host,omitempty"`
}

func (r CreateVisitorRequest) ToModel(buildingID, sessionID uuid.UUID, ref HostRef, now time.Time) m.VisitorModel {
	return m.VisitorModel{
		VisitorBuildingID: buildingID,
		VisitorSessionID:  sessionID,
		VisitorHostID:     ref.Known,
		VisitorHostName:   ref.FreeText,
		VisitorName:       strings.TrimSpace(r.VisitorName),
		VisitorCompany:    r.VisitorCompany,
		VisitorPhone:      r.VisitorPhone,
		VisitorEmail:      r.VisitorEmail,
		VisitorCategory:   r.VisitorCategory,
		VisitorPurpose:    r.VisitorPurpose,
		VisitorBadgeNumber: r.VisitorBadgeNumber,
		VisitorRemarks:    r.VisitorRemarks,
		VisitorTimeIn:     now,
	}
}

func NewVisitorResponse(mdl m.VisitorModel) VisitorResponse {
	resp := VisitorResponse{
		VisitorID:                mdl.VisitorID,
		VisitorBuildingID:        mdl.VisitorBuildingID,
		VisitorSessionID:         mdl.VisitorSessionID,
		VisitorHostID:            mdl.VisitorHostID,
		VisitorHostName:          mdl.VisitorHostName,
		VisitorName:              mdl.VisitorName,
		VisitorCompany:           mdl.VisitorCompany,
		VisitorPhone:             mdl.VisitorPhone,
		VisitorEmail:             mdl.VisitorEmail,
		VisitorCategory:          mdl.VisitorCategory,
		VisitorPurpose:           mdl.VisitorPurpose,
		VisitorBadgeNumber:       mdl.VisitorBadgeNumber,
		VisitorRemarks:           mdl.VisitorRemarks,
		VisitorPhotoURL:          mdl.VisitorPhotoURL,
		VisitorTimeIn:            mdl.VisitorTimeIn,
		VisitorTimeOut:           mdl.VisitorTimeOut,
		VisitorSignatureVerified: mdl.VisitorSignatureVerified,
		VisitorCreatedAt:         mdl.VisitorCreatedAt,
		VisitorUpdatedAt:         mdl.VisitorUpdatedAt,
	}
	if mdl.VisitorHost != nil {
		h := hostDto.NewHostResponse(*mdl.VisitorHost)
		resp.VisitorHost = &h
	}
	return resp
}

func NewVisitorResponses(mdls []m.VisitorModel) []VisitorResponse {
	out := make([]VisitorResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, NewVisitorResponse(mdl))
	}
	return out
}

/* =========================================================
 * SEARCH DEDUP
 * "Returning visitor" = baris terbaru per nama (lowercase) —
 * input sudah terurut time_in DESC, ambil kemunculan pertama
 * ========================================================= */

func DedupByLowerName(mdls []m.VisitorModel) []m.VisitorModel {
	seen := make(map[string]struct{}, len(mdls))
	out := make([]m.VisitorModel, 0, len(mdls))
	for _, v := range mdls {
		key := strings.ToLower(strings.TrimSpace(v.VisitorName))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

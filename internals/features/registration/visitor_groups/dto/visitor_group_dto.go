// file: internals/features/registration/visitor_groups/dto/visitor_group_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "wisataku_backend/internals/features/registration/visitor_groups/model"
)

/* ===================== REQUESTS ===================== */

type VisitorInput struct {
	VisitorName        string `json:"visitor_name" validate:"required,min=2,max=120"`
	VisitorNationality string `json:"visitor_nationality" validate:"required,min=2,max=80"`
	VisitorGender      string `json:"visitor_gender" validate:"required,oneof=male female"`
	VisitorAgeRange    string `json:"visitor_age_range" validate:"required,oneof=child teen adult senior"`
}

// Create: user_id diambil dari token oleh controller (BUKAN dari body).
// Jumlah anggota final sejak submit — tidak ada tambah/hapus belakangan.
type CreateRegistrationRequest struct {
	Visitors []VisitorInput `json:"visitors" validate:"required,min=1,max=30,dive"`
}

// ToModels: anggota pertama dianggap pendaftar utama.
func (r CreateRegistrationRequest) ToModels() []model.VisitorModel {
	out := make([]model.VisitorModel, 0, len(r.Visitors))
	for i, v := range r.Visitors {
		out = append(out, model.VisitorModel{
			VisitorName:        strings.TrimSpace(v.VisitorName),
			VisitorNationality: strings.TrimSpace(v.VisitorNationality),
			VisitorGender:      v.VisitorGender,
			VisitorAgeRange:    v.VisitorAgeRange,
			VisitorIsPrimary:   i == 0,
		})
	}
	return out
}

/* ===================== RESPONSES ===================== */

type VisitorLite struct {
	VisitorID        uuid.UUID `json:"visitor_id"`
	VisitorName      string    `json:"visitor_name"`
	VisitorIsPrimary bool      `json:"visitor_is_primary"`
}

type RegistrationResponse struct {
	VisitorGroupID        uuid.UUID     `json:"visitor_group_id"`
	UniqueCode            string        `json:"unique_code"`
	QRCodeURL             string        `json:"qr_code_url"`
	VisitorCount          int           `json:"visitor_count"`
	Visitors              []VisitorLite `json:"visitors,omitempty"`
	VisitorGroupCreatedAt time.Time     `json:"visitor_group_created_at"`
}

// ResultResponse: bentuk ringkas untuk retrieval (by code / latest by user).
type ResultResponse struct {
	UniqueCode string `json:"unique_code"`
	QRCodeURL  string `json:"qr_code_url"`
}

func NewRegistrationResponse(m *model.VisitorGroupModel) *RegistrationResponse {
	if m == nil {
		return nil
	}
	resp := &RegistrationResponse{
		VisitorGroupID:        m.VisitorGroupID,
		UniqueCode:            m.VisitorGroupUniqueCode,
		VisitorCount:          len(m.Visitors),
		VisitorGroupCreatedAt: m.VisitorGroupCreatedAt,
	}
	if m.VisitorGroupQRCodeURL != nil {
		resp.QRCodeURL = *m.VisitorGroupQRCodeURL
	}
	for _, v := range m.Visitors {
		resp.Visitors = append(resp.Visitors, VisitorLite{
			VisitorID:        v.VisitorID,
			VisitorName:      v.VisitorName,
			VisitorIsPrimary: v.VisitorIsPrimary,
		})
	}
	return resp
}

func NewResultResponse(m *model.VisitorGroupModel) *ResultResponse {
	if m == nil {
		return nil
	}
	resp := &ResultResponse{UniqueCode: m.VisitorGroupUniqueCode}
	if m.VisitorGroupQRCodeURL != nil {
		resp.QRCodeURL = *m.VisitorGroupQRCodeURL
	}
	return resp
}

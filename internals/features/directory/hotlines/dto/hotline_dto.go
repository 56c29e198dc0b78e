// file: internals/features/directory/hotlines/dto/hotline_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "wisataku_backend/internals/features/directory/hotlines/model"
)

/* ===================== REQUESTS ===================== */

type CreateHotlineRequest struct {
	HotlineAgencyName string `json:"hotline_agency_name" validate:"required,min=2,max=160"`
	HotlinePhone      string `json:"hotline_phone" validate:"required,min=3,max=32"`
	HotlineCategory   string `json:"hotline_category" validate:"required,oneof=medical police rescue tourism other"`
}

func (r CreateHotlineRequest) ToModel() *model.HotlineModel {
	return &model.HotlineModel{
		HotlineAgencyName: strings.TrimSpace(r.HotlineAgencyName),
		HotlinePhone:      strings.TrimSpace(r.HotlinePhone),
		HotlineCategory:   strings.ToLower(strings.TrimSpace(r.HotlineCategory)),
	}
}

type UpdateHotlineRequest struct {
	HotlineAgencyName *string `json:"hotline_agency_name" validate:"omitempty,min=2,max=160"`
	HotlinePhone      *string `json:"hotline_phone" validate:"omitempty,min=3,max=32"`
	HotlineCategory   *string `json:"hotline_category" validate:"omitempty,oneof=medical police rescue tourism other"`
}

/* ===================== RESPONSES ===================== */

type HotlineResponse struct {
	HotlineID         uuid.UUID `json:"hotline_id"`
	HotlineAgencyName string    `json:"hotline_agency_name"`
	HotlinePhone      string    `json:"hotline_phone"`
	HotlineCategory   string    `json:"hotline_category"`
	HotlineCreatedAt  time.Time `json:"hotline_created_at"`
	HotlineUpdatedAt  time.Time `json:"hotline_updated_at"`
}

func NewHotlineResponse(m *model.HotlineModel) *HotlineResponse {
	if m == nil {
		return nil
	}
	return &HotlineResponse{
		HotlineID:         m.HotlineID,
		HotlineAgencyName: m.HotlineAgencyName,
		HotlinePhone:      m.HotlinePhone,
		HotlineCategory:   m.HotlineCategory,
		HotlineCreatedAt:  m.HotlineCreatedAt,
		HotlineUpdatedAt:  m.HotlineUpdatedAt,
	}
}

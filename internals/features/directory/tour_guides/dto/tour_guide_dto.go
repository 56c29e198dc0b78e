// file: internals/features/directory/tour_guides/dto/tour_guide_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "wisataku_backend/internals/features/directory/tour_guides/model"
)

/* ===================== REQUESTS ===================== */

type CreateTourGuideRequest struct {
	TourGuideName       string `json:"tour_guide_name" validate:"required,min=2,max=120"`
	TourGuideContact    string `json:"tour_guide_contact" validate:"required,min=3,max=64"`
	TourGuideIsOperator *bool  `json:"tour_guide_is_operator" validate:"omitempty"`
	TourGuideStatus     string `json:"tour_guide_status" validate:"omitempty,oneof=pending approved rejected"`
}

func (r CreateTourGuideRequest) ToModel() *model.TourGuideModel {
	m := &model.TourGuideModel{
		TourGuideName:    strings.TrimSpace(r.TourGuideName),
		TourGuideContact: strings.TrimSpace(r.TourGuideContact),
		TourGuideStatus:  model.TourGuideStatusPending,
	}
	if r.TourGuideIsOperator != nil {
		m.TourGuideIsOperator = *r.TourGuideIsOperator
	}
	if s := strings.ToLower(strings.TrimSpace(r.TourGuideStatus)); s != "" {
		m.TourGuideStatus = s
	}
	return m
}

type UpdateTourGuideRequest struct {
	TourGuideName       *string `json:"tour_guide_name" validate:"omitempty,min=2,max=120"`
	TourGuideContact    *string `json:"tour_guide_contact" validate:"omitempty,min=3,max=64"`
	TourGuideIsOperator *bool   `json:"tour_guide_is_operator" validate:"omitempty"`
	TourGuideStatus     *string `json:"tour_guide_status" validate:"omitempty,oneof=pending approved rejected"`
}

/* ===================== RESPONSES ===================== */

type TourGuideResponse struct {
	TourGuideID         uuid.UUID `json:"tour_guide_id"`
	TourGuideName       string    `json:"tour_guide_name"`
	TourGuideContact    string    `json:"tour_guide_contact"`
	TourGuideIsOperator bool      `json:"tour_guide_is_operator"`
	TourGuideStatus     string    `json:"tour_guide_status"`
	TourGuideCreatedAt  time.Time `json:"tour_guide_created_at"`
	TourGuideUpdatedAt  time.Time `json:"tour_guide_updated_at"`
}

func NewTourGuideResponse(m *model.TourGuideModel) *TourGuideResponse {
	if m == nil {
		return nil
	}
	return &TourGuideResponse{
		TourGuideID:         m.TourGuideID,
		TourGuideName:       m.TourGuideName,
		TourGuideContact:    m.TourGuideContact,
		TourGuideIsOperator: m.TourGuideIsOperator,
		TourGuideStatus:     m.TourGuideStatus,
		TourGuideCreatedAt:  m.TourGuideCreatedAt,
		TourGuideUpdatedAt:  m.TourGuideUpdatedAt,
	}
}

// file: internals/features/content/announcements/dto/announcement_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "wisataku_backend/internals/features/content/announcements/model"
)

/* ===================== REQUESTS ===================== */

type CreateAnnouncementRequest struct {
	AnnouncementTitle    string `json:"announcement_title" validate:"required,min=3,max=200"`
	AnnouncementDate     string `json:"announcement_date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	AnnouncementContent  string `json:"announcement_content" validate:"required,min=3"`
	AnnouncementIsActive *bool  `json:"announcement_is_active" validate:"omitempty"`
}

func (r CreateAnnouncementRequest) ToModel() *model.AnnouncementModel {
	var d time.Time
	if ds := strings.TrimSpace(r.AnnouncementDate); ds != "" {
		d, _ = time.Parse("2006-01-02", ds)
	}
	m := &model.AnnouncementModel{
		AnnouncementTitle:    strings.TrimSpace(r.AnnouncementTitle),
		AnnouncementDate:     d,
		AnnouncementContent:  strings.TrimSpace(r.AnnouncementContent),
		AnnouncementIsActive: true, // default aktif
	}
	if r.AnnouncementIsActive != nil {
		m.AnnouncementIsActive = *r.AnnouncementIsActive
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateAnnouncementRequest struct {
	AnnouncementTitle    *string `json:"announcement_title" validate:"omitempty,min=3,max=200"`
	AnnouncementDate     *string `json:"announcement_date" validate:"omitempty,datetime=2006-01-02"`
	AnnouncementContent  *string `json:"announcement_content" validate:"omitempty,min=3"`
	AnnouncementIsActive *bool   `json:"announcement_is_active" validate:"omitempty"`
}

/* ===================== RESPONSES ===================== */

type AnnouncementResponse struct {
	AnnouncementID        uuid.UUID `json:"announcement_id"`
	AnnouncementTitle     string    `json:"announcement_title"`
	AnnouncementDate      time.Time `json:"announcement_date"`
	AnnouncementContent   string    `json:"announcement_content"`
	AnnouncementIsActive  bool      `json:"announcement_is_active"`
	AnnouncementCreatedAt time.Time `json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time `json:"announcement_updated_at"`
}

func NewAnnouncementResponse(m *model.AnnouncementModel) *AnnouncementResponse {
	if m == nil {
		return nil
	}
	return &AnnouncementResponse{
		AnnouncementID:        m.AnnouncementID,
		AnnouncementTitle:     m.AnnouncementTitle,
		AnnouncementDate:      m.AnnouncementDate,
		AnnouncementContent:   m.AnnouncementContent,
		AnnouncementIsActive:  m.AnnouncementIsActive,
		AnnouncementCreatedAt: m.AnnouncementCreatedAt,
		AnnouncementUpdatedAt: m.AnnouncementUpdatedAt,
	}
}

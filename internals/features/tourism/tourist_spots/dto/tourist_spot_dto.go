// file: internals/features/tourism/tourist_spots/dto/tourist_spot_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "wisataku_backend/internals/features/tourism/tourist_spots/model"
)

/* ===================== REQUESTS ===================== */

type CreateTouristSpotRequest struct {
	TouristSpotName        string   `json:"tourist_spot_name" validate:"required,min=3,max=160"`
	TouristSpotDescription string   `json:"tourist_spot_description" validate:"required,min=3"`
	TouristSpotLocation    string   `json:"tourist_spot_location" validate:"required,min=3,max=200"`
	TouristSpotLatitude    *float64 `json:"tourist_spot_latitude" validate:"omitempty,gte=-90,lte=90"`
	TouristSpotLongitude   *float64 `json:"tourist_spot_longitude" validate:"omitempty,gte=-180,lte=180"`
	TouristSpotIsActive    *bool    `json:"tourist_spot_is_active" validate:"omitempty"`
}

func (r CreateTouristSpotRequest) ToModel() *model.TouristSpotModel {
	m := &model.TouristSpotModel{
		TouristSpotName:        strings.TrimSpace(r.TouristSpotName),
		TouristSpotDescription: strings.TrimSpace(r.TouristSpotDescription),
		TouristSpotLocation:    strings.TrimSpace(r.TouristSpotLocation),
		TouristSpotLatitude:    r.TouristSpotLatitude,
		TouristSpotLongitude:   r.TouristSpotLongitude,
		TouristSpotIsActive:    true, // default aktif
	}
	if r.TouristSpotIsActive != nil {
		m.TouristSpotIsActive = *r.TouristSpotIsActive
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateTouristSpotRequest struct {
	TouristSpotName        *string  `json:"tourist_spot_name" validate:"omitempty,min=3,max=160"`
	TouristSpotDescription *string  `json:"tourist_spot_description" validate:"omitempty,min=3"`
	TouristSpotLocation    *string  `json:"tourist_spot_location" validate:"omitempty,min=3,max=200"`
	TouristSpotLatitude    *float64 `json:"tourist_spot_latitude" validate:"omitempty,gte=-90,lte=90"`
	TouristSpotLongitude   *float64 `json:"tourist_spot_longitude" validate:"omitempty,gte=-180,lte=180"`
	TouristSpotIsActive    *bool    `json:"tourist_spot_is_active" validate:"omitempty"`
}

/* ===================== RESPONSES ===================== */

type TouristSpotResponse struct {
	TouristSpotID          uuid.UUID `json:"tourist_spot_id"`
	TouristSpotName        string    `json:"tourist_spot_name"`
	TouristSpotDescription string    `json:"tourist_spot_description"`
	TouristSpotLocation    string    `json:"tourist_spot_location"`
	TouristSpotLatitude    *float64  `json:"tourist_spot_latitude,omitempty"`
	TouristSpotLongitude   *float64  `json:"tourist_spot_longitude,omitempty"`
	TouristSpotImageURL    *string   `json:"tourist_spot_image_url,omitempty"`
	TouristSpotIsActive    bool      `json:"tourist_spot_is_active"`
	TouristSpotCreatedAt   time.Time `json:"tourist_spot_created_at"`
	TouristSpotUpdatedAt   time.Time `json:"tourist_spot_updated_at"`
}

func NewTouristSpotResponse(m *model.TouristSpotModel) *TouristSpotResponse {
	if m == nil {
		return nil
	}
	return &TouristSpotResponse{
		TouristSpotID:          m.TouristSpotID,
		TouristSpotName:        m.TouristSpotName,
		TouristSpotDescription: m.TouristSpotDescription,
		TouristSpotLocation:    m.TouristSpotLocation,
		TouristSpotLatitude:    m.TouristSpotLatitude,
		TouristSpotLongitude:   m.TouristSpotLongitude,
		TouristSpotImageURL:    m.TouristSpotImageURL,
		TouristSpotIsActive:    m.TouristSpotIsActive,
		TouristSpotCreatedAt:   m.TouristSpotCreatedAt,
		TouristSpotUpdatedAt:   m.TouristSpotUpdatedAt,
	}
}

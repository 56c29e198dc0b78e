// file: internals/features/directory/accommodations/dto/accommodation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "wisataku_backend/internals/features/directory/accommodations/model"
)

/* ===================== REQUESTS ===================== */

type CreateAccommodationRequest struct {
	AccommodationName    string  `json:"accommodation_name" validate:"required,min=2,max=160"`
	AccommodationAddress string  `json:"accommodation_address" validate:"required,min=3,max=240"`
	AccommodationContact string  `json:"accommodation_contact" validate:"required,min=3,max=64"`
	AccommodationRooms   *int    `json:"accommodation_rooms" validate:"omitempty,gte=0"`
	AccommodationPrice   *string `json:"accommodation_price" validate:"omitempty,max=80"`
}

func (r CreateAccommodationRequest) ToModel() *model.AccommodationModel {
	m := &model.AccommodationModel{
		AccommodationName:    strings.TrimSpace(r.AccommodationName),
		AccommodationAddress: strings.TrimSpace(r.AccommodationAddress),
		AccommodationContact: strings.TrimSpace(r.AccommodationContact),
		AccommodationRooms:   r.AccommodationRooms,
	}
	if r.AccommodationPrice != nil {
		p := strings.TrimSpace(*r.AccommodationPrice)
		m.AccommodationPrice = &p
	}
	return m
}

type UpdateAccommodationRequest struct {
	AccommodationName    *string `json:"accommodation_name" validate:"omitempty,min=2,max=160"`
	AccommodationAddress *string `json:"accommodation_address" validate:"omitempty,min=3,max=240"`
	AccommodationContact *string `json:"accommodation_contact" validate:"omitempty,min=3,max=64"`
	AccommodationRooms   *int    `json:"accommodation_rooms" validate:"omitempty,gte=0"`
	AccommodationPrice   *string `json:"accommodation_price" validate:"omitempty,max=80"`
}

/* ===================== RESPONSES ===================== */

type AccommodationResponse struct {
	AccommodationID        uuid.UUID `json:"accommodation_id"`
	AccommodationName      string    `json:"accommodation_name"`
	AccommodationAddress   string    `json:"accommodation_address"`
	AccommodationContact   string    `json:"accommodation_contact"`
	AccommodationRooms     *int      `json:"accommodation_rooms,omitempty"`
	AccommodationPrice     *string   `json:"accommodation_price,omitempty"`
	AccommodationImageURL  *string   `json:"accommodation_image_url,omitempty"`
	AccommodationCreatedAt time.Time `json:"accommodation_created_at"`
	AccommodationUpdatedAt time.Time `json:"accommodation_updated_at"`
}

func NewAccommodationResponse(m *model.AccommodationModel) *AccommodationResponse {
	if m == nil {
		return nil
	}
	return &AccommodationResponse{
		AccommodationID:        m.AccommodationID,
		AccommodationName:      m.AccommodationName,
		AccommodationAddress:   m.AccommodationAddress,
		AccommodationContact:   m.AccommodationContact,
		AccommodationRooms:     m.AccommodationRooms,
		AccommodationPrice:     m.AccommodationPrice,
		AccommodationImageURL:  m.AccommodationImageURL,
		AccommodationCreatedAt: m.AccommodationCreatedAt,
		AccommodationUpdatedAt: m.AccommodationUpdatedAt,
	}
}

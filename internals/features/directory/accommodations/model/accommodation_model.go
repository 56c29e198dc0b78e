// file: internals/features/directory/accommodations/model/accommodation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccommodationModel struct {
	AccommodationID uuid.UUID `gorm:"column:accommodation_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AccommodationName    string  `gorm:"column:accommodation_name;type:varchar(160);not null"`
	AccommodationAddress string  `gorm:"column:accommodation_address;type:varchar(240);not null"`
	AccommodationContact string  `gorm:"column:accommodation_contact;type:varchar(64);not null"`
	AccommodationRooms   *int    `gorm:"column:accommodation_rooms;type:int"`
	AccommodationPrice   *string `gorm:"column:accommodation_price;type:varchar(80)"` // rentang harga, teks bebas

	AccommodationImageURL       *string `gorm:"column:accommodation_image_url;type:text"`
	AccommodationImageObjectKey *string `gorm:"column:accommodation_image_object_key;type:text"`

	AccommodationCreatedAt time.Time      `gorm:"column:accommodation_created_at;type:timestamptz;not null;default:now()"`
	AccommodationUpdatedAt time.Time      `gorm:"column:accommodation_updated_at;type:timestamptz;not null;default:now()"`
	AccommodationDeletedAt gorm.DeletedAt `gorm:"column:accommodation_deleted_at;index"`
}

func (AccommodationModel) TableName() string {
	return "accommodations"
}

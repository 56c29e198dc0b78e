// file: internals/features/tourism/tourist_spots/model/tourist_spot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TouristSpotModel struct {
	TouristSpotID uuid.UUID `gorm:"column:tourist_spot_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TouristSpotName        string   `gorm:"column:tourist_spot_name;type:varchar(160);not null"`
	TouristSpotDescription string   `gorm:"column:tourist_spot_description;type:text;not null"`
	TouristSpotLocation    string   `gorm:"column:tourist_spot_location;type:varchar(200);not null"`
	TouristSpotLatitude    *float64 `gorm:"column:tourist_spot_latitude;type:double precision"`
	TouristSpotLongitude   *float64 `gorm:"column:tourist_spot_longitude;type:double precision"`

	TouristSpotImageURL       *string `gorm:"column:tourist_spot_image_url;type:text"`
	TouristSpotImageObjectKey *string `gorm:"column:tourist_spot_image_object_key;type:text"`

	TouristSpotIsActive bool `gorm:"column:tourist_spot_is_active;type:boolean;not null;default:true"`

	TouristSpotCreatedAt time.Time      `gorm:"column:tourist_spot_created_at;type:timestamptz;not null;default:now()"`
	TouristSpotUpdatedAt time.Time      `gorm:"column:tourist_spot_updated_at;type:timestamptz;not null;default:now()"`
	TouristSpotDeletedAt gorm.DeletedAt `gorm:"column:tourist_spot_deleted_at;index"`
}

func (TouristSpotModel) TableName() string {
	return "tourist_spots"
}

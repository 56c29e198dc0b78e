// file: internals/features/directory/hotlines/model/hotline_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HotlineModel struct {
	HotlineID uuid.UUID `gorm:"column:hotline_id;type:uuid;default:gen_random_uuid();primaryKey"`

	HotlineAgencyName string `gorm:"column:hotline_agency_name;type:varchar(160);not null"`
	HotlinePhone      string `gorm:"column:hotline_phone;type:varchar(32);not null"`
	HotlineCategory   string `gorm:"column:hotline_category;type:varchar(40);not null"` // medical|police|rescue|tourism|other

	HotlineCreatedAt time.Time      `gorm:"column:hotline_created_at;type:timestamptz;not null;default:now()"`
	HotlineUpdatedAt time.Time      `gorm:"column:hotline_updated_at;type:timestamptz;not null;default:now()"`
	HotlineDeletedAt gorm.DeletedAt `gorm:"column:hotline_deleted_at;index"`
}

func (HotlineModel) TableName() string {
	return "hotlines"
}

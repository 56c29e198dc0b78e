// file: internals/features/directory/tour_guides/model/tour_guide_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TourGuideStatusPending  = "pending"
	TourGuideStatusApproved = "approved"
	TourGuideStatusRejected = "rejected"
)

type TourGuideModel struct {
	TourGuideID uuid.UUID `gorm:"column:tour_guide_id;type:uuid;default:gen_random_uuid();primaryKey"`

	TourGuideName       string `gorm:"column:tour_guide_name;type:varchar(120);not null"`
	TourGuideContact    string `gorm:"column:tour_guide_contact;type:varchar(64);not null"`
	TourGuideIsOperator bool   `gorm:"column:tour_guide_is_operator;type:boolean;not null;default:false"`
	TourGuideStatus     string `gorm:"column:tour_guide_status;type:varchar(20);not null;default:'pending'"` // pending|approved|rejected

	TourGuideCreatedAt time.Time      `gorm:"column:tour_guide_created_at;type:timestamptz;not null;default:now()"`
	TourGuideUpdatedAt time.Time      `gorm:"column:tour_guide_updated_at;type:timestamptz;not null;default:now()"`
	TourGuideDeletedAt gorm.DeletedAt `gorm:"column:tour_guide_deleted_at;index"`
}

func (TourGuideModel) TableName() string {
	return "tour_guides"
}

// file: internals/features/content/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementID uuid.UUID `gorm:"column:announcement_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AnnouncementTitle    string    `gorm:"column:announcement_title;type:varchar(200);not null"`
	AnnouncementDate     time.Time `gorm:"column:announcement_date;type:date;not null"`
	AnnouncementContent  string    `gorm:"column:announcement_content;type:text;not null"`
	AnnouncementIsActive bool      `gorm:"column:announcement_is_active;type:boolean;not null;default:true"`

	AnnouncementCreatedAt time.Time      `gorm:"column:announcement_created_at;type:timestamptz;not null;default:now()"`
	AnnouncementUpdatedAt time.Time      `gorm:"column:announcement_updated_at;type:timestamptz;not null;default:now()"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}

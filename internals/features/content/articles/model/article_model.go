// file: internals/features/content/articles/model/article_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleModel struct {
	ArticleID uuid.UUID `gorm:"column:article_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ArticleTitle   string `gorm:"column:article_title;type:varchar(200);not null"`
	ArticleContent string `gorm:"column:article_content;type:text;not null"`
	ArticleAuthor  string `gorm:"column:article_author;type:varchar(120);not null"`

	ArticleImageURL       *string `gorm:"column:article_image_url;type:text"`
	ArticleImageObjectKey *string `gorm:"column:article_image_object_key;type:text"`

	ArticleIsPublished bool `gorm:"column:article_is_published;type:boolean;not null;default:true"`

	ArticleCreatedAt time.Time      `gorm:"column:article_created_at;type:timestamptz;not null;default:now()"`
	ArticleUpdatedAt time.Time      `gorm:"column:article_updated_at;type:timestamptz;not null;default:now()"`
	ArticleDeletedAt gorm.DeletedAt `gorm:"column:article_deleted_at;index"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

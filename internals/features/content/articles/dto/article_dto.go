// file: internals/features/content/articles/dto/article_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "wisataku_backend/internals/features/content/articles/model"
)

/* ===================== REQUESTS ===================== */

type CreateArticleRequest struct {
	ArticleTitle       string `json:"article_title" validate:"required,min=3,max=200"`
	ArticleContent     string `json:"article_content" validate:"required,min=3"`
	ArticleAuthor      string `json:"article_author" validate:"required,min=2,max=120"`
	ArticleIsPublished *bool  `json:"article_is_published" validate:"omitempty"`
}

func (r CreateArticleRequest) ToModel() *model.ArticleModel {
	m := &model.ArticleModel{
		ArticleTitle:       strings.TrimSpace(r.ArticleTitle),
		ArticleContent:     strings.TrimSpace(r.ArticleContent),
		ArticleAuthor:      strings.TrimSpace(r.ArticleAuthor),
		ArticleIsPublished: true, // default tayang
	}
	if r.ArticleIsPublished != nil {
		m.ArticleIsPublished = *r.ArticleIsPublished
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateArticleRequest struct {
	ArticleTitle       *string `json:"article_title" validate:"omitempty,min=3,max=200"`
	ArticleContent     *string `json:"article_content" validate:"omitempty,min=3"`
	ArticleAuthor      *string `json:"article_author" validate:"omitempty,min=2,max=120"`
	ArticleIsPublished *bool   `json:"article_is_published" validate:"omitempty"`
}

/* ===================== RESPONSES ===================== */

type ArticleResponse struct {
	ArticleID          uuid.UUID `json:"article_id"`
	ArticleTitle       string    `json:"article_title"`
	ArticleContent     string    `json:"article_content"`
	ArticleAuthor      string    `json:"article_author"`
	ArticleImageURL    *string   `json:"article_image_url,omitempty"`
	ArticleIsPublished bool      `json:"article_is_published"`
	ArticleCreatedAt   time.Time `json:"article_created_at"`
	ArticleUpdatedAt   time.Time `json:"article_updated_at"`
}

func NewArticleResponse(m *model.ArticleModel) *ArticleResponse {
	if m == nil {
		return nil
	}
	return &ArticleResponse{
		ArticleID:          m.ArticleID,
		ArticleTitle:       m.ArticleTitle,
		ArticleContent:     m.ArticleContent,
		ArticleAuthor:      m.ArticleAuthor,
		ArticleImageURL:    m.ArticleImageURL,
		ArticleIsPublished: m.ArticleIsPublished,
		ArticleCreatedAt:   m.ArticleCreatedAt,
		ArticleUpdatedAt:   m.ArticleUpdatedAt,
	}
}

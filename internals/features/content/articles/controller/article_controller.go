// file: internals/features/content/articles/controller/article_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	articleDTO "wisataku_backend/internals/features/content/articles/dto"
	articleModel "wisataku_backend/internals/features/content/articles/model"
	helper "wisataku_backend/internals/helpers"
	helperOSS "wisataku_backend/internals/helpers/oss"
)

type ArticleController struct{ DB *gorm.DB }

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{DB: db}
}

var validateArticle = validator.New()

// ===================== CREATE =====================
// POST /api/a/articles (JSON atau multipart dengan file "image")
func (h *ArticleController) Create(c *fiber.Ctx) error {
	var req articleDTO.CreateArticleRequest
	ct := strings.ToLower(strings.TrimSpace(c.Get("Content-Type")))

	if strings.HasPrefix(ct, "multipart/form-data") {
		req.ArticleTitle = strings.TrimSpace(c.FormValue("article_title"))
		req.ArticleContent = strings.TrimSpace(c.FormValue("article_content"))
		req.ArticleAuthor = strings.TrimSpace(c.FormValue("article_author"))
		if v := strings.TrimSpace(c.FormValue("article_is_published")); v != "" {
			b := strings.EqualFold(v, "true") || v == "1"
			req.ArticleIsPublished = &b
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	if err := validateArticle.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		oss, err := helperOSS.NewOSSServiceFromEnv("")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "OSS tidak siap")
		}
		publicURL, err := oss.UploadImageWebP(c.Context(), "articles", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		m.ArticleImageURL = &publicURL
		if key, err := helperOSS.ExtractKeyFromPublicURL(publicURL); err == nil {
			m.ArticleImageObjectKey = &key
		}
	}

	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat artikel")
	}

	return helper.JsonCreated(c, "Artikel berhasil dibuat", articleDTO.NewArticleResponse(m))
}

// ===================== LIST (public) =====================
// GET /api/public/articles?q=&page=&per_page=
func (h *ArticleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).
		Model(&articleModel.ArticleModel{}).
		Where("article_is_published = TRUE")

	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("article_title ILIKE ? OR article_author ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung artikel")
	}

	var rows []articleModel.ArticleModel
	if err := q.
		Order("article_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	out := make([]*articleDTO.ArticleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, articleDTO.NewArticleResponse(&rows[i]))
	}

	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== DETAIL =====================
// GET /api/public/articles/:id
func (h *ArticleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m articleModel.ArticleModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("article_id = ?", id).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	return helper.JsonOK(c, "OK", articleDTO.NewArticleResponse(&m))
}

// ===================== UPDATE =====================
// PUT /api/a/articles/:id
func (h *ArticleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing articleModel.ArticleModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("article_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	var req articleDTO.UpdateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateArticle.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	updates := map[string]interface{}{}
	if req.ArticleTitle != nil {
		updates["article_title"] = strings.TrimSpace(*req.ArticleTitle)
	}
	if req.ArticleContent != nil {
		updates["article_content"] = strings.TrimSpace(*req.ArticleContent)
	}
	if req.ArticleAuthor != nil {
		updates["article_author"] = strings.TrimSpace(*req.ArticleAuthor)
	}
	if req.ArticleIsPublished != nil {
		updates["article_is_published"] = *req.ArticleIsPublished
	}

	// Ganti gambar bila ada file baru
	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		oss, oerr := helperOSS.NewOSSServiceFromEnv("")
		if oerr != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "OSS tidak siap")
		}
		publicURL, uerr := oss.UploadImageWebP(c.Context(), "articles", fh)
		if uerr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, uerr.Error())
		}
		updates["article_image_url"] = publicURL
		if key, kerr := helperOSS.ExtractKeyFromPublicURL(publicURL); kerr == nil {
			updates["article_image_object_key"] = key
		}
	}

	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", articleDTO.NewArticleResponse(&existing))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&articleModel.ArticleModel{}).
		Where("article_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui artikel")
	}

	var after articleModel.ArticleModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("article_id = ?", id).
		First(&after).Error; err == nil {
		return helper.JsonUpdated(c, "Artikel diperbarui", articleDTO.NewArticleResponse(&after))
	}
	return helper.JsonUpdated(c, "Artikel diperbarui", articleDTO.NewArticleResponse(&existing))
}

// ===================== DELETE =====================
// DELETE /api/a/articles/:id (soft/hard via ?force=true)
func (h *ArticleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	force := strings.EqualFold(c.Query("force"), "true")
	db := h.DB.WithContext(c.UserContext())
	if force {
		db = db.Unscoped()
	}

	if err := db.
		Where("article_id = ?", id).
		Delete(&articleModel.ArticleModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus artikel")
	}

	msg := "Artikel dihapus"
	if force {
		msg = "Artikel dihapus permanen"
	}
	return helper.JsonDeleted(c, msg, fiber.Map{"article_id": id})
}

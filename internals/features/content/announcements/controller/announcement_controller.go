// file: internals/features/content/announcements/controller/announcement_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	annDTO "wisataku_backend/internals/features/content/announcements/dto"
	annModel "wisataku_backend/internals/features/content/announcements/model"
	helper "wisataku_backend/internals/helpers"
)

type AnnouncementController struct{ DB *gorm.DB }

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

var validateAnnouncement = validator.New()

// ===================== CREATE =====================
// POST /api/a/announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	var req annDTO.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengumuman")
	}

	return helper.JsonCreated(c, "Pengumuman berhasil dibuat", annDTO.NewAnnouncementResponse(m))
}

// ===================== LIST (public) =====================
// GET /api/public/announcements?page=&per_page=
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).
		Model(&annModel.AnnouncementModel{}).
		Where("announcement_is_active = TRUE")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengumuman")
	}

	var rows []annModel.AnnouncementModel
	if err := q.
		Order("announcement_date DESC, announcement_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	out := make([]*annDTO.AnnouncementResponse, 0, len(rows))
	for i := range rows {
		out = append(out, annDTO.NewAnnouncementResponse(&rows[i]))
	}

	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== DETAIL =====================
// GET /api/public/announcements/:id
func (h *AnnouncementController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m annModel.AnnouncementModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("announcement_id = ?", id).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.JsonOK(c, "OK", annDTO.NewAnnouncementResponse(&m))
}

// ===================== UPDATE =====================
// PUT /api/a/announcements/:id
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing annModel.AnnouncementModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("announcement_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	var req annDTO.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	updates := map[string]interface{}{}
	if req.AnnouncementTitle != nil {
		updates["announcement_title"] = strings.TrimSpace(*req.AnnouncementTitle)
	}
	if req.AnnouncementDate != nil {
		if d, perr := time.Parse("2006-01-02", strings.TrimSpace(*req.AnnouncementDate)); perr == nil {
			updates["announcement_date"] = d
		}
	}
	if req.AnnouncementContent != nil {
		updates["announcement_content"] = strings.TrimSpace(*req.AnnouncementContent)
	}
	if req.AnnouncementIsActive != nil {
		updates["announcement_is_active"] = *req.AnnouncementIsActive
	}

	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", annDTO.NewAnnouncementResponse(&existing))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&annModel.AnnouncementModel{}).
		Where("announcement_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}

	var after annModel.AnnouncementModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("announcement_id = ?", id).
		First(&after).Error; err == nil {
		return helper.JsonUpdated(c, "Pengumuman diperbarui", annDTO.NewAnnouncementResponse(&after))
	}
	return helper.JsonUpdated(c, "Pengumuman diperbarui", annDTO.NewAnnouncementResponse(&existing))
}

// ===================== DELETE =====================
// DELETE /api/a/announcements/:id (soft/hard via ?force=true)
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
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
		Where("announcement_id = ?", id).
		Delete(&annModel.AnnouncementModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}

	msg := "Pengumuman dihapus"
	if force {
		msg = "Pengumuman dihapus permanen"
	}
	return helper.JsonDeleted(c, msg, fiber.Map{"announcement_id": id})
}

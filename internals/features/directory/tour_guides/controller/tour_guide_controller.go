// file: internals/features/directory/tour_guides/controller/tour_guide_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	guideDTO "wisataku_backend/internals/features/directory/tour_guides/dto"
	guideModel "wisataku_backend/internals/features/directory/tour_guides/model"
	helper "wisataku_backend/internals/helpers"
)

type TourGuideController struct{ DB *gorm.DB }

func NewTourGuideController(db *gorm.DB) *TourGuideController {
	return &TourGuideController{DB: db}
}

var validateTourGuide = validator.New()

// ===================== CREATE =====================
// POST /api/a/tour-guides
func (h *TourGuideController) Create(c *fiber.Ctx) error {
	var req guideDTO.CreateTourGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateTourGuide.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pemandu wisata")
	}

	return helper.JsonCreated(c, "Pemandu wisata berhasil dibuat", guideDTO.NewTourGuideResponse(m))
}

// ===================== LIST (public) =====================
// GET /api/public/tour-guides?page=&per_page=
// Publik hanya melihat yang sudah approved.
func (h *TourGuideController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).
		Model(&guideModel.TourGuideModel{}).
		Where("tour_guide_status = ?", guideModel.TourGuideStatusApproved)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pemandu wisata")
	}

	var rows []guideModel.TourGuideModel
	if err := q.
		Order("tour_guide_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pemandu wisata")
	}

	out := make([]*guideDTO.TourGuideResponse, 0, len(rows))
	for i := range rows {
		out = append(out, guideDTO.NewTourGuideResponse(&rows[i]))
	}

	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== LIST (staff) =====================
// GET /api/a/tour-guides?status=&page=&per_page=
func (h *TourGuideController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&guideModel.TourGuideModel{})

	if s := strings.ToLower(strings.TrimSpace(c.Query("status"))); s != "" {
		q = q.Where("tour_guide_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pemandu wisata")
	}

	var rows []guideModel.TourGuideModel
	if err := q.
		Order("tour_guide_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pemandu wisata")
	}

	out := make([]*guideDTO.TourGuideResponse, 0, len(rows))
	for i := range rows {
		out = append(out, guideDTO.NewTourGuideResponse(&rows[i]))
	}

	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== UPDATE =====================
// PUT /api/a/tour-guides/:id
func (h *TourGuideController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing guideModel.TourGuideModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("tour_guide_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Pemandu wisata tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pemandu wisata")
	}

	var req guideDTO.UpdateTourGuideRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateTourGuide.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	updates := map[string]interface{}{}
	if req.TourGuideName != nil {
		updates["tour_guide_name"] = strings.TrimSpace(*req.TourGuideName)
	}
	if req.TourGuideContact != nil {
		updates["tour_guide_contact"] = strings.TrimSpace(*req.TourGuideContact)
	}
	if req.TourGuideIsOperator != nil {
		updates["tour_guide_is_operator"] = *req.TourGuideIsOperator
	}
	if req.TourGuideStatus != nil {
		updates["tour_guide_status"] = strings.ToLower(strings.TrimSpace(*req.TourGuideStatus))
	}

	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", guideDTO.NewTourGuideResponse(&existing))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&guideModel.TourGuideModel{}).
		Where("tour_guide_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pemandu wisata")
	}

	var after guideModel.TourGuideModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("tour_guide_id = ?", id).
		First(&after).Error; err == nil {
		return helper.JsonUpdated(c, "Pemandu wisata diperbarui", guideDTO.NewTourGuideResponse(&after))
	}
	return helper.JsonUpdated(c, "Pemandu wisata diperbarui", guideDTO.NewTourGuideResponse(&existing))
}

// ===================== DELETE =====================
// DELETE /api/a/tour-guides/:id
func (h *TourGuideController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.WithContext(c.UserContext()).
		Where("tour_guide_id = ?", id).
		Delete(&guideModel.TourGuideModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pemandu wisata")
	}

	return helper.JsonDeleted(c, "Pemandu wisata dihapus", fiber.Map{"tour_guide_id": id})
}

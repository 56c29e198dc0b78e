// file: internals/features/directory/hotlines/controller/hotline_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	hotlineDTO "wisataku_backend/internals/features/directory/hotlines/dto"
	hotlineModel "wisataku_backend/internals/features/directory/hotlines/model"
	helper "wisataku_backend/internals/helpers"
)

type HotlineController struct{ DB *gorm.DB }

func NewHotlineController(db *gorm.DB) *HotlineController {
	return &HotlineController{DB: db}
}

var validateHotline = validator.New()

// ===================== CREATE =====================
// POST /api/a/hotlines
func (h *HotlineController) Create(c *fiber.Ctx) error {
	var req hotlineDTO.CreateHotlineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateHotline.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat hotline")
	}

	return helper.JsonCreated(c, "Hotline berhasil dibuat", hotlineDTO.NewHotlineResponse(m))
}

// ===================== LIST (public) =====================
// GET /api/public/hotlines?category=
func (h *HotlineController) List(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&hotlineModel.HotlineModel{})

	if cat := strings.ToLower(strings.TrimSpace(c.Query("category"))); cat != "" {
		q = q.Where("hotline_category = ?", cat)
	}

	var rows []hotlineModel.HotlineModel
	if err := q.Order("hotline_agency_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hotline")
	}

	out := make([]*hotlineDTO.HotlineResponse, 0, len(rows))
	for i := range rows {
		out = append(out, hotlineDTO.NewHotlineResponse(&rows[i]))
	}

	return helper.JsonOK(c, "OK", out)
}

// ===================== UPDATE =====================
// PUT /api/a/hotlines/:id
func (h *HotlineController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing hotlineModel.HotlineModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("hotline_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Hotline tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hotline")
	}

	var req hotlineDTO.UpdateHotlineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateHotline.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	updates := map[string]interface{}{}
	if req.HotlineAgencyName != nil {
		updates["hotline_agency_name"] = strings.TrimSpace(*req.HotlineAgencyName)
	}
	if req.HotlinePhone != nil {
		updates["hotline_phone"] = strings.TrimSpace(*req.HotlinePhone)
	}
	if req.HotlineCategory != nil {
		updates["hotline_category"] = strings.ToLower(strings.TrimSpace(*req.HotlineCategory))
	}

	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", hotlineDTO.NewHotlineResponse(&existing))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&hotlineModel.HotlineModel{}).
		Where("hotline_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui hotline")
	}

	var after hotlineModel.HotlineModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("hotline_id = ?", id).
		First(&after).Error; err == nil {
		return helper.JsonUpdated(c, "Hotline diperbarui", hotlineDTO.NewHotlineResponse(&after))
	}
	return helper.JsonUpdated(c, "Hotline diperbarui", hotlineDTO.NewHotlineResponse(&existing))
}

// ===================== DELETE =====================
// DELETE /api/a/hotlines/:id
func (h *HotlineController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.DB.WithContext(c.UserContext()).
		Where("hotline_id = ?", id).
		Delete(&hotlineModel.HotlineModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus hotline")
	}

	return helper.JsonDeleted(c, "Hotline dihapus", fiber.Map{"hotline_id": id})
}

// file: internals/features/tourism/tourist_spots/controller/tourist_spot_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	spotDTO "wisataku_backend/internals/features/tourism/tourist_spots/dto"
	spotModel "wisataku_backend/internals/features/tourism/tourist_spots/model"
	helper "wisataku_backend/internals/helpers"
	helperOSS "wisataku_backend/internals/helpers/oss"
)

type TouristSpotController struct{ DB *gorm.DB }

func NewTouristSpotController(db *gorm.DB) *TouristSpotController {
	return &TouristSpotController{DB: db}
}

var validateTouristSpot = validator.New()

// ===================== CREATE =====================
// POST /api/a/tourist-spots  (JSON atau multipart dengan file "image")
func (h *TouristSpotController) Create(c *fiber.Ctx) error {
	var req spotDTO.CreateTouristSpotRequest
	ct := strings.ToLower(strings.TrimSpace(c.Get("Content-Type")))

	if strings.HasPrefix(ct, "multipart/form-data") {
		req.TouristSpotName = strings.TrimSpace(c.FormValue("tourist_spot_name"))
		req.TouristSpotDescription = strings.TrimSpace(c.FormValue("tourist_spot_description"))
		req.TouristSpotLocation = strings.TrimSpace(c.FormValue("tourist_spot_location"))
		if v := strings.TrimSpace(c.FormValue("tourist_spot_latitude")); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				req.TouristSpotLatitude = &f
			}
		}
		if v := strings.TrimSpace(c.FormValue("tourist_spot_longitude")); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				req.TouristSpotLongitude = &f
			}
		}
		if v := strings.TrimSpace(c.FormValue("tourist_spot_is_active")); v != "" {
			b := strings.EqualFold(v, "true") || v == "1"
			req.TouristSpotIsActive = &b
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	if err := validateTouristSpot.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()

	// Upload foto (opsional) sebelum insert
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		oss, err := helperOSS.NewOSSServiceFromEnv("")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "OSS tidak siap")
		}
		publicURL, err := oss.UploadImageWebP(c.Context(), "tourist-spots", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		m.TouristSpotImageURL = &publicURL
		if key, err := helperOSS.ExtractKeyFromPublicURL(publicURL); err == nil {
			m.TouristSpotImageObjectKey = &key
		}
	}

	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat tourist spot")
	}

	return helper.JsonCreated(c, "Tourist spot berhasil dibuat", spotDTO.NewTouristSpotResponse(m))
}

// ===================== LIST (public) =====================
// GET /api/public/tourist-spots?q=&page=&per_page=
func (h *TouristSpotController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).
		Model(&spotModel.TouristSpotModel{}).
		Where("tourist_spot_is_active = TRUE")

	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("tourist_spot_name ILIKE ? OR tourist_spot_location ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung tourist spot")
	}

	var rows []spotModel.TouristSpotModel
	if err := q.
		Order("tourist_spot_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tourist spot")
	}

	out := make([]*spotDTO.TouristSpotResponse, 0, len(rows))
	for i := range rows {
		out = append(out, spotDTO.NewTouristSpotResponse(&rows[i]))
	}

	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== DETAIL =====================
// GET /api/public/tourist-spots/:id
func (h *TouristSpotController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m spotModel.TouristSpotModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("tourist_spot_id = ?", id).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Tourist spot tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tourist spot")
	}

	return helper.JsonOK(c, "OK", spotDTO.NewTouristSpotResponse(&m))
}

// ===================== UPDATE =====================
// PUT /api/a/tourist-spots/:id
func (h *TouristSpotController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing spotModel.TouristSpotModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("tourist_spot_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Tourist spot tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tourist spot")
	}

	var req spotDTO.UpdateTouristSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateTouristSpot.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// updates map agar nilai falsy (false) juga ter-update
	updates := map[string]interface{}{}
	if req.TouristSpotName != nil {
		updates["tourist_spot_name"] = strings.TrimSpace(*req.TouristSpotName)
	}
	if req.TouristSpotDescription != nil {
		updates["tourist_spot_description"] = strings.TrimSpace(*req.TouristSpotDescription)
	}
	if req.TouristSpotLocation != nil {
		updates["tourist_spot_location"] = strings.TrimSpace(*req.TouristSpotLocation)
	}
	if req.TouristSpotLatitude != nil {
		updates["tourist_spot_latitude"] = req.TouristSpotLatitude
	}
	if req.TouristSpotLongitude != nil {
		updates["tourist_spot_longitude"] = req.TouristSpotLongitude
	}
	if req.TouristSpotIsActive != nil {
		updates["tourist_spot_is_active"] = *req.TouristSpotIsActive
	}

	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", spotDTO.NewTouristSpotResponse(&existing))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&spotModel.TouristSpotModel{}).
		Where("tourist_spot_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tourist spot")
	}

	var after spotModel.TouristSpotModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("tourist_spot_id = ?", id).
		First(&after).Error; err == nil {
		return helper.JsonUpdated(c, "Tourist spot diperbarui", spotDTO.NewTouristSpotResponse(&after))
	}
	return helper.JsonUpdated(c, "Tourist spot diperbarui", spotDTO.NewTouristSpotResponse(&existing))
}

// ===================== DELETE =====================
// DELETE /api/a/tourist-spots/:id (soft/hard via ?force=true)
func (h *TouristSpotController) Delete(c *fiber.Ctx) error {
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
		Where("tourist_spot_id = ?", id).
		Delete(&spotModel.TouristSpotModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tourist spot")
	}

	msg := "Tourist spot dihapus"
	if force {
		msg = "Tourist spot dihapus permanen"
	}
	return helper.JsonDeleted(c, msg, fiber.Map{"tourist_spot_id": id})
}

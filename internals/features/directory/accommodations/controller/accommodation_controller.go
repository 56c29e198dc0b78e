// file: internals/features/directory/accommodations/controller/accommodation_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	accDTO "wisataku_backend/internals/features/directory/accommodations/dto"
	accModel "wisataku_backend/internals/features/directory/accommodations/model"
	helper "wisataku_backend/internals/helpers"
	helperOSS "wisataku_backend/internals/helpers/oss"
)

type AccommodationController struct{ DB *gorm.DB }

func NewAccommodationController(db *gorm.DB) *AccommodationController {
	return &AccommodationController{DB: db}
}

var validateAccommodation = validator.New()

// ===================== CREATE =====================
// POST /api/a/accommodations (JSON atau multipart dengan file "image")
func (h *AccommodationController) Create(c *fiber.Ctx) error {
	var req accDTO.CreateAccommodationRequest
	ct := strings.ToLower(strings.TrimSpace(c.Get("Content-Type")))

	if strings.HasPrefix(ct, "multipart/form-data") {
		req.AccommodationName = strings.TrimSpace(c.FormValue("accommodation_name"))
		req.AccommodationAddress = strings.TrimSpace(c.FormValue("accommodation_address"))
		req.AccommodationContact = strings.TrimSpace(c.FormValue("accommodation_contact"))
		if v := strings.TrimSpace(c.FormValue("accommodation_rooms")); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				req.AccommodationRooms = &n
			}
		}
		if v := strings.TrimSpace(c.FormValue("accommodation_price")); v != "" {
			req.AccommodationPrice = &v
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	if err := validateAccommodation.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m := req.ToModel()

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		oss, err := helperOSS.NewOSSServiceFromEnv("")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "OSS tidak siap")
		}
		publicURL, err := oss.UploadImageWebP(c.Context(), "accommodations", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		m.AccommodationImageURL = &publicURL
		if key, err := helperOSS.ExtractKeyFromPublicURL(publicURL); err == nil {
			m.AccommodationImageObjectKey = &key
		}
	}

	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat penginapan")
	}

	return helper.JsonCreated(c, "Penginapan berhasil dibuat", accDTO.NewAccommodationResponse(m))
}

// ===================== LIST (public) =====================
// GET /api/public/accommodations?q=&page=&per_page=
func (h *AccommodationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&accModel.AccommodationModel{})

	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("accommodation_name ILIKE ? OR accommodation_address ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung penginapan")
	}

	var rows []accModel.AccommodationModel
	if err := q.
		Order("accommodation_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penginapan")
	}

	out := make([]*accDTO.AccommodationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, accDTO.NewAccommodationResponse(&rows[i]))
	}

	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== UPDATE =====================
// PUT /api/a/accommodations/:id
func (h *AccommodationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var existing accModel.AccommodationModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("accommodation_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Penginapan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penginapan")
	}

	var req accDTO.UpdateAccommodationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateAccommodation.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	updates := map[string]interface{}{}
	if req.AccommodationName != nil {
		updates["accommodation_name"] = strings.TrimSpace(*req.AccommodationName)
	}
	if req.AccommodationAddress != nil {
		updates["accommodation_address"] = strings.TrimSpace(*req.AccommodationAddress)
	}
	if req.AccommodationContact != nil {
		updates["accommodation_contact"] = strings.TrimSpace(*req.AccommodationContact)
	}
	if req.AccommodationRooms != nil {
		updates["accommodation_rooms"] = *req.AccommodationRooms
	}
	if req.AccommodationPrice != nil {
		updates["accommodation_price"] = strings.TrimSpace(*req.AccommodationPrice)
	}

	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		oss, oerr := helperOSS.NewOSSServiceFromEnv("")
		if oerr != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "OSS tidak siap")
		}
		publicURL, uerr := oss.UploadImageWebP(c.Context(), "accommodations", fh)
		if uerr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, uerr.Error())
		}
		updates["accommodation_image_url"] = publicURL
		if key, kerr := helperOSS.ExtractKeyFromPublicURL(publicURL); kerr == nil {
			updates["accommodation_image_object_key"] = key
		}
	}

	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", accDTO.NewAccommodationResponse(&existing))
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&accModel.AccommodationModel{}).
		Where("accommodation_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui penginapan")
	}

	var after accModel.AccommodationModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("accommodation_id = ?", id).
		First(&after).Error; err == nil {
		return helper.JsonUpdated(c, "Penginapan diperbarui", accDTO.NewAccommodationResponse(&after))
	}
	return helper.JsonUpdated(c, "Penginapan diperbarui", accDTO.NewAccommodationResponse(&existing))
}

// ===================== DELETE =====================
// DELETE /api/a/accommodations/:id (soft/hard via ?force=true)
func (h *AccommodationController) Delete(c *fiber.Ctx) error {
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
		Where("accommodation_id = ?", id).
		Delete(&accModel.AccommodationModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus penginapan")
	}

	msg := "Penginapan dihapus"
	if force {
		msg = "Penginapan dihapus permanen"
	}
	return helper.JsonDeleted(c, msg, fiber.Map{"accommodation_id": id})
}

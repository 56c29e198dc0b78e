// file: internals/features/registration/checkin/controller/visit_log_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	checkinDTO "wisataku_backend/internals/features/registration/checkin/dto"
	checkinModel "wisataku_backend/internals/features/registration/checkin/model"
	helper "wisataku_backend/internals/helpers"
)

type VisitLogController struct{ DB *gorm.DB }

func NewVisitLogController(db *gorm.DB) *VisitLogController {
	return &VisitLogController{DB: db}
}

// ===================== LIST =====================
// GET /api/a/visit-logs?status=&spot_id=&entry_point=&date_from=&date_to=
// Log kunjungan bersifat append-only; endpoint ini read-only untuk laporan.
func (h *VisitLogController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&checkinModel.VisitLogModel{})

	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("visit_log_status = ?", strings.ToLower(v))
	}
	if v := strings.TrimSpace(c.Query("entry_point")); v != "" {
		q = q.Where("visit_log_entry_point = ?", v)
	}
	if v := strings.TrimSpace(c.Query("spot_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "spot_id tidak valid")
		}
		q = q.Where("visit_log_spot_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("visit_log_created_at >= ?", t)
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("visit_log_created_at < ?", t.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung log kunjungan")
	}

	var rows []checkinModel.VisitLogModel
	if err := q.
		Order("visit_log_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log kunjungan")
	}

	out := make([]*checkinDTO.VisitLogResponse, 0, len(rows))
	for i := range rows {
		out = append(out, checkinDTO.NewVisitLogResponse(&rows[i]))
	}

	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

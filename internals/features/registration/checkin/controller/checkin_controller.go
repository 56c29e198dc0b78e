// file: internals/features/registration/checkin/controller/checkin_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	checkinDTO "wisataku_backend/internals/features/registration/checkin/dto"
	checkinService "wisataku_backend/internals/features/registration/checkin/service"
	regService "wisataku_backend/internals/features/registration/visitor_groups/service"
	spotModel "wisataku_backend/internals/features/tourism/tourist_spots/model"
	helper "wisataku_backend/internals/helpers"
	helperAuth "wisataku_backend/internals/helpers/auth"
)

type CheckInController struct {
	DB       *gorm.DB
	Verifier *checkinService.Verifier
}

func NewCheckInController(db *gorm.DB) *CheckInController {
	return &CheckInController{
		DB:       db,
		Verifier: checkinService.NewVerifier(regService.NewRegistrationStore(db)),
	}
}

var validateCheckIn = validator.New()

// ===================== ISLAND ENTRY =====================
// POST /api/a/register/manual-check-in
// Scan kamera dan input manual sama-sama lewat sini.
func (h *CheckInController) ManualCheckIn(c *fiber.Ctx) error {
	return h.handleCheckIn(c, checkinService.IslandEntry())
}

// ===================== SPOT ENTRY =====================
// POST /api/a/tourist-spots/:id/check-in
// Check-in pada spot berbeda adalah kunjungan independen yang sah.
func (h *CheckInController) SpotCheckIn(c *fiber.Ctx) error {
	spotID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID spot tidak valid")
	}

	// pastikan spot terdaftar & aktif
	var cnt int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&spotModel.TouristSpotModel{}).
		Where("tourist_spot_id = ? AND tourist_spot_is_active = TRUE", spotID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Gangguan sementara, silakan coba lagi")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tourist spot tidak ditemukan")
	}

	return h.handleCheckIn(c, checkinService.SpotEntry(spotID))
}

func (h *CheckInController) handleCheckIn(c *fiber.Ctx, entry checkinService.EntryPoint) error {
	staffID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req checkinDTO.ManualCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateCheckIn.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.Verifier.Redeem(c.UserContext(), req.UniqueCode, entry, staffID, deviceMeta(c))
	if err != nil {
		// gangguan store/timeout: klien boleh scan ulang kode yang sama
		if errors.Is(err, checkinService.ErrTransient) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Gangguan sementara, silakan scan ulang")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses check-in")
	}

	resp := checkinDTO.NewCheckInResponse(res, entry)
	switch res.Outcome {
	case checkinService.OutcomeAccepted:
		return helper.JsonCreated(c, "Check-in berhasil dicatat", resp)
	case checkinService.OutcomeDuplicate:
		// dibedakan dari Invalid supaya UI menampilkan "sudah check-in",
		// bukan "kode salah"
		return helper.JsonError(c, fiber.StatusConflict, "Rombongan sudah check-in di titik ini")
	default:
		if res.Reason == checkinService.ReasonMalformed {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode tidak valid")
		}
		return helper.JsonError(c, fiber.StatusNotFound, "Kode tidak dikenal")
	}
}

func deviceMeta(c *fiber.Ctx) datatypes.JSON {
	meta := map[string]string{
		"ip":         c.IP(),
		"user_agent": string(c.Request().Header.UserAgent()),
	}
	if id := strings.TrimSpace(c.Get("X-Device-ID")); id != "" {
		meta["device_id"] = id
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

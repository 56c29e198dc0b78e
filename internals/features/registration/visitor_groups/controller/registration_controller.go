// file: internals/features/registration/visitor_groups/controller/registration_controller.go
package controller

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinService "wisataku_backend/internals/features/registration/checkin/service"
	regDTO "wisataku_backend/internals/features/registration/visitor_groups/dto"
	regModel "wisataku_backend/internals/features/registration/visitor_groups/model"
	regService "wisataku_backend/internals/features/registration/visitor_groups/service"
	helper "wisataku_backend/internals/helpers"
	helperAuth "wisataku_backend/internals/helpers/auth"
	helperOSS "wisataku_backend/internals/helpers/oss"
)

type RegistrationController struct {
	DB    *gorm.DB
	Store *regService.RegistrationStore
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{
		DB:    db,
		Store: regService.NewRegistrationStore(db),
	}
}

var validateRegistration = validator.New()

// ===================== CREATE =====================
// POST /api/u/register
// Satu submit = satu rombongan = satu kode unik + satu QR.
func (h *RegistrationController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req regDTO.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateRegistration.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	group, err := h.Store.CreateGroup(c.UserContext(), &userID, req.ToModels())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan registrasi")
	}

	// QR issuance setelah commit; kegagalan upload tidak membatalkan
	// registrasi — retrieval akan menerbitkan ulang (idempoten).
	h.ensureQR(c.UserContext(), group)

	return helper.JsonCreated(c, "Registrasi berhasil dibuat", regDTO.NewRegistrationResponse(group))
}

// ===================== RETRIEVAL =====================

// GET /api/public/register/result?code=XXXX
// Pengunjung mengambil ulang kode/QR miliknya setelah submit.
func (h *RegistrationController) GetResultByCode(c *fiber.Ctx) error {
	code := checkinService.NormalizeCode(c.Query("code"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter code wajib diisi")
	}

	group, err := h.Store.FindByCode(c.UserContext(), code)
	if err != nil {
		return h.respondLookupError(c, err)
	}

	h.ensureQR(c.UserContext(), group)

	return helper.JsonOK(c, "OK", regDTO.NewResultResponse(group))
}

// GET /api/u/register/me/latest
// "Terbaru" = VisitorGroup paling baru milik user ini (layar profil;
// fallback cache offline di mobile).
func (h *RegistrationController) GetLatestMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	group, err := h.Store.FindLatestByUserID(c.UserContext(), userID)
	if err != nil {
		return h.respondLookupError(c, err)
	}

	h.ensureQR(c.UserContext(), group)

	return helper.JsonOK(c, "OK", regDTO.NewResultResponse(group))
}

// ===================== internals =====================

// respondLookupError: NOT_FOUND harus dibedakan dari gangguan transient
// supaya klien menampilkan "belum ada registrasi", bukan prompt retry.
func (h *RegistrationController) respondLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, regService.ErrGroupNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Registrasi tidak ditemukan")
	}
	return helper.JsonError(c, fiber.StatusServiceUnavailable, "Gangguan sementara, silakan coba lagi")
}

// ensureQR: best-effort. OSS yang belum siap hanya menunda QR, tidak
// menggagalkan flow.
func (h *RegistrationController) ensureQR(ctx context.Context, group *regModel.VisitorGroupModel) {
	if group.VisitorGroupQRCodeURL != nil && *group.VisitorGroupQRCodeURL != "" {
		return
	}
	oss, err := helperOSS.NewOSSServiceFromEnv("")
	if err != nil {
		log.Printf("[WARN] OSS tidak siap, QR ditunda: %v", err)
		return
	}
	issuer := regService.NewQRIssuer(h.Store, oss)
	if _, err := issuer.Ensure(ctx, group); err != nil {
		log.Printf("[WARN] gagal menerbitkan QR grup %s: %v", group.VisitorGroupID, err)
	}
}

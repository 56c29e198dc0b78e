// file: internals/route/details/registration_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	regController "wisataku_backend/internals/features/registration/visitor_groups/controller"
	"wisataku_backend/internals/middlewares"
)

// RegistrationRoutes memasang endpoint pendaftaran rombongan wisatawan.
//
//	POST /api/u/register                  → submit pendaftaran (rate limited)
//	GET  /api/u/register/me/latest        → pendaftaran terakhir milik user
//	GET  /api/public/register/result?code= → ambil hasil (kode + QR) by unique code
func RegistrationRoutes(public fiber.Router, private fiber.Router, db *gorm.DB) {
	ctrl := regController.NewRegistrationController(db)

	private.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Create)
	private.Get("/register/me/latest", ctrl.GetLatestMine)

	public.Get("/register/result", ctrl.GetResultByCode)
}

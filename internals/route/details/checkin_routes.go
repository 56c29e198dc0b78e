// file: internals/route/details/checkin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkinController "wisataku_backend/internals/features/registration/checkin/controller"
	"wisataku_backend/internals/middlewares"
)

// CheckInRoutes memasang endpoint verifikasi kedatangan (staff only).
//
//	POST /api/a/register/manual-check-in     → gerbang pulau
//	POST /api/a/tourist-spots/:id/check-in   → gerbang per tourist spot
//	GET  /api/a/visit-logs                   → daftar log kunjungan (filter + paging)
func CheckInRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := checkinController.NewCheckInController(db)
	logCtrl := checkinController.NewVisitLogController(db)

	admin.Post("/register/manual-check-in", middlewares.CheckInRateLimiter(), ctrl.ManualCheckIn)
	admin.Post("/tourist-spots/:id/check-in", middlewares.CheckInRateLimiter(), ctrl.SpotCheckIn)

	admin.Get("/visit-logs", logCtrl.List)
}

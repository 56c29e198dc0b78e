// file: internals/route/details/directory_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accController "wisataku_backend/internals/features/directory/accommodations/controller"
	hotlineController "wisataku_backend/internals/features/directory/hotlines/controller"
	guideController "wisataku_backend/internals/features/directory/tour_guides/controller"
)

// DirectoryRoutes memasang endpoint direktori layanan (hotline, penginapan, pemandu).
func DirectoryRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB) {
	hot := hotlineController.NewHotlineController(db)
	acc := accController.NewAccommodationController(db)
	gd := guideController.NewTourGuideController(db)

	// ===================== HOTLINES =====================
	public.Get("/hotlines", hot.List)

	admin.Post("/hotlines", hot.Create)
	admin.Put("/hotlines/:id", hot.Update)
	admin.Delete("/hotlines/:id", hot.Delete)

	// ===================== ACCOMMODATIONS =====================
	public.Get("/accommodations", acc.List)

	admin.Post("/accommodations", acc.Create)
	admin.Put("/accommodations/:id", acc.Update)
	admin.Delete("/accommodations/:id", acc.Delete)

	// ===================== TOUR GUIDES =====================
	public.Get("/tour-guides", gd.List)

	admin.Get("/tour-guides", gd.ListAll)
	admin.Post("/tour-guides", gd.Create)
	admin.Put("/tour-guides/:id", gd.Update)
	admin.Delete("/tour-guides/:id", gd.Delete)
}

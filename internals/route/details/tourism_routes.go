// file: internals/route/details/tourism_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	spotController "wisataku_backend/internals/features/tourism/tourist_spots/controller"
)

// TourismRoutes memasang endpoint tourist spot (publik baca, staff kelola).
func TourismRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := spotController.NewTouristSpotController(db)

	public.Get("/tourist-spots", ctrl.List)
	public.Get("/tourist-spots/:id", ctrl.GetByID)

	admin.Post("/tourist-spots", ctrl.Create)
	admin.Put("/tourist-spots/:id", ctrl.Update)
	admin.Delete("/tourist-spots/:id", ctrl.Delete)
}

// file: internals/route/details/content_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annController "wisataku_backend/internals/features/content/announcements/controller"
	articleController "wisataku_backend/internals/features/content/articles/controller"
)

// ContentRoutes memasang endpoint pengumuman dan artikel.
func ContentRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB) {
	ann := annController.NewAnnouncementController(db)
	art := articleController.NewArticleController(db)

	// ===================== ANNOUNCEMENTS =====================
	public.Get("/announcements", ann.List)
	public.Get("/announcements/:id", ann.GetByID)

	admin.Post("/announcements", ann.Create)
	admin.Put("/announcements/:id", ann.Update)
	admin.Delete("/announcements/:id", ann.Delete)

	// ===================== ARTICLES =====================
	public.Get("/articles", art.List)
	public.Get("/articles/:id", art.GetByID)

	admin.Post("/articles", art.Create)
	admin.Put("/articles/:id", art.Update)
	admin.Delete("/articles/:id", art.Delete)
}

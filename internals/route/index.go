// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "wisataku_backend/internals/middlewares/auth"
	routeDetails "wisataku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wisatawan login
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ADMIN / STAFF → JWT + role check
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireStaff(),
	)

	// ===================== MOUNT PER FITUR =====================
	log.Println("[INFO] Setting up RegistrationRoutes...")
	routeDetails.RegistrationRoutes(public, private, db)

	log.Println("[INFO] Setting up CheckInRoutes...")
	routeDetails.CheckInRoutes(admin, db)

	log.Println("[INFO] Setting up TourismRoutes...")
	routeDetails.TourismRoutes(public, admin, db)

	log.Println("[INFO] Setting up ContentRoutes...")
	routeDetails.ContentRoutes(public, admin, db)

	log.Println("[INFO] Setting up DirectoryRoutes...")
	routeDetails.DirectoryRoutes(public, admin, db)

	// Fallback 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Route tidak ditemukan",
		})
	})
}

package users

import (
	"classhub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App) {
	api := app.Group("/api/users")

	api.Post("/register", RegisterAPI)
	api.Post("/login", LoginAPI)

	api.Get("/", auth.AuthMiddleware, GetUsersAPI)
}

package posts

import (
	"classhub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPostsRoutes(app *fiber.App) {
	api := app.Group("/api/posts")
	api.Use(auth.AuthMiddleware)

	api.Post("/", CreatePostAPI)
	api.Get("/:classRoomId/posts", GetPostsAPI)
}

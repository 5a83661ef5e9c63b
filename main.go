package main

import (
	"strings"

	"classhub/app/config"
	"classhub/app/database"
	applog "classhub/app/logger"
	"classhub/app/routes/classrooms"
	"classhub/app/routes/docs"
	"classhub/app/routes/posts"
	"classhub/app/routes/users"
	"classhub/app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"
)

// errorHandler shapes every unhandled error into the API's JSON envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code >= 500 {
		log.Error().Err(err).Str("path", c.Path()).Msg("Request failed")
		return c.Status(code).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	defer cfg.Close()

	log.Logger = applog.New(cfg.Logging.Level, cfg.Logging.Pretty)

	if err := database.RunMigrations(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	uploads, err := storage.NewDiskStorage(cfg.Storage.PublicDir, cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize upload storage")
	}

	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		BodyLimit:    int(cfg.Server.MaxUploadSize),
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	// Uploaded files are served statically
	app.Static("/public", cfg.Storage.PublicDir)

	users.SetupUsersRoutes(app)
	classrooms.SetupClassroomsRoutes(app, uploads)
	posts.SetupPostsRoutes(app)
	docs.SetupDocsRoutes(app)

	// Catch-all 404 (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return fiber.NewError(fiber.StatusNotFound, "Route not found")
		}
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Info().Str("address", cfg.Server.Address).Msg("Server starting")
	if err := app.Listen(cfg.Server.Address); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

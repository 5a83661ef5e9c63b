package docs

import "github.com/gofiber/fiber/v2"

func SetupDocsRoutes(app *fiber.App) {
	app.Get("/api-docs", DocsPage)
	app.Get("/api-docs.json", DocsJSON)
}

// DocsPage renders the endpoint table as HTML.
func DocsPage(c *fiber.Ctx) error {
	return c.Render("api-docs", fiber.Map{
		"Title":  "ClassHub API",
		"Routes": Routes,
	})
}

// DocsJSON serves the same table for programmatic discovery.
func DocsJSON(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"routes": Routes,
		"count":  len(Routes),
	})
}

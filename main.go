package main

import (
	"log"
	"time"

	"github.com/YazevStas/db-project/app/config"
	"github.com/YazevStas/db-project/app/database"
	"github.com/YazevStas/db-project/app/routes/admin"
	"github.com/YazevStas/db-project/app/routes/auth"
	"github.com/YazevStas/db-project/app/routes/cashier"
	"github.com/YazevStas/db-project/app/routes/client"
	"github.com/YazevStas/db-project/app/routes/manager"
	"github.com/YazevStas/db-project/app/routes/techadmin"
	"github.com/YazevStas/db-project/app/routes/trainer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders error pages for web requests and JSON for
// /api paths.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Page not found - Sport Club",
			"ErrorCode":    "404",
			"ErrorTitle":   "Page Not Found",
			"ErrorMessage": "The page you are looking for does not exist.",
		})
	case fiber.StatusForbidden:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Access forbidden - Sport Club",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Sport Club",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Database: connect, ensure schema, install the optional SQL objects,
	// seed once on an empty database.
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.EnsureSchema(config.GetDB()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	database.EnsureSQLObjects(config.GetDB())
	if err := database.SeedInitialData(config.GetDB()); err != nil {
		log.Fatal("Failed to seed initial data:", err)
	}

	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		AppName:      "SportClub",
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(compress.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))
	app.Use(etag.New())

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login")
	})

	auth.SetupAuthRoutes(app)
	admin.SetupAdminRoutes(app)
	manager.SetupManagerRoutes(app)
	cashier.SetupCashierRoutes(app)
	trainer.SetupTrainerRoutes(app)
	techadmin.SetupTechAdminRoutes(app)
	client.SetupClientRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Println("Server starting on", config.AppConfig.ServerPort)
	log.Fatal(app.Listen(config.AppConfig.ServerPort))
}

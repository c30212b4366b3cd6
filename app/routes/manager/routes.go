package manager

import (
	"github.com/YazevStas/db-project/app/config"
	"github.com/YazevStas/db-project/app/database"
	"github.com/YazevStas/db-project/app/models"
	"github.com/YazevStas/db-project/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupManagerRoutes(app *fiber.App) {
	manager := app.Group("/manager", auth.RequireRole(models.RoleManager))

	manager.Get("/dashboard", Dashboard)

	manager.Get("/client/:id/edit", EditClientForm)
	manager.Post("/client/:id/edit", UpdateClient)

	manager.Get("/staff/:id/edit", EditStaffForm)
	manager.Post("/staff/:id/edit", UpdateStaff)

	manager.Post("/add_training", AddTraining)
}

func Dashboard(c *fiber.Ctx) error {
	db := config.GetDB()

	clients, err := database.GetClients(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load clients")
	}
	staff, err := database.GetAllStaff(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load staff")
	}
	trainings, err := database.GetTrainingsDetailed(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load trainings")
	}
	sections, err := database.GetSections(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load sections")
	}
	trainers, err := database.GetTrainers(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load trainers")
	}
	subscriptionTypes, err := database.GetSubscriptionTypes(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subscription types")
	}

	return c.Render("manager", fiber.Map{
		"Title":             "Manager - Sport Club",
		"CurrentUser":       auth.CurrentUser(c),
		"Clients":           clients,
		"Staff":             staff,
		"Trainings":         trainings,
		"Sections":          sections,
		"Trainers":          trainers,
		"SubscriptionTypes": subscriptionTypes,
		"Message":           c.Query("message"),
		"Error":             c.Query("error"),
	})
}

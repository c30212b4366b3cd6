package admin

import (
	"github.com/YazevStas/db-project/app/config"
	"github.com/YazevStas/db-project/app/database"
	"github.com/YazevStas/db-project/app/models"
	"github.com/YazevStas/db-project/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", auth.RequireRole(models.RoleAdmin))

	admin.Get("/dashboard", Dashboard)

	admin.Post("/add_client", AddClient)
	admin.Post("/add_staff", AddStaff)
	admin.Post("/add_subscription_type", AddSubscriptionType)
	admin.Post("/sell_subscription", SellSubscription)
	admin.Post("/subscription/:id/status", UpdateSubscriptionStatus)
	admin.Post("/training/:id/access", GrantTrainingAccess)
	admin.Post("/add_section", AddSection)
	admin.Post("/add_training", AddTraining)

	admin.Get("/client/:id/edit", EditClientForm)
	admin.Post("/client/:id/edit", UpdateClient)
	admin.Post("/client/:id/delete", DeleteClient)

	admin.Get("/staff/:id/edit", EditStaffForm)
	admin.Post("/staff/:id/edit", UpdateStaff)
	admin.Post("/staff/:id/delete", DeleteStaff)
}

// Dashboard renders the admin page with every table and the reference data
// the modal forms need.
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
	subscriptions, err := database.GetAllClientSubscriptions(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subscriptions")
	}
	sections, err := database.GetSections(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load sections")
	}
	trainings, err := database.GetTrainingsDetailed(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load trainings")
	}
	subscriptionTypes, err := database.GetSubscriptionTypes(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subscription types")
	}
	trainers, err := database.GetTrainers(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load trainers")
	}
	positions, err := database.GetPositions(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load positions")
	}
	statuses, err := database.GetStatuses(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load statuses")
	}
	load, err := database.GetTrainingLoad(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load training occupancy")
	}

	return c.Render("admin", fiber.Map{
		"Title":             "Administrator - Sport Club",
		"CurrentUser":       auth.CurrentUser(c),
		"Clients":           clients,
		"Staff":             staff,
		"Subscriptions":     subscriptions,
		"Sections":          sections,
		"Trainings":         trainings,
		"SubscriptionTypes": subscriptionTypes,
		"Trainers":          trainers,
		"Positions":         positions,
		"Statuses":          statuses,
		"TrainingLoad":      load,
		"Message":           c.Query("message"),
		"Error":             c.Query("error"),
	})
}

package trainer

import (
	"net/url"
	"time"

	"github.com/YazevStas/db-project/app/config"
	"github.com/YazevStas/db-project/app/database"
	"github.com/YazevStas/db-project/app/models"
	"github.com/YazevStas/db-project/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupTrainerRoutes(app *fiber.App) {
	trainer := app.Group("/trainer", auth.RequireRole(models.RoleTrainer))

	trainer.Get("/dashboard", Dashboard)
	trainer.Post("/add_warning", AddWarning)
}

func redirectOK(c *fiber.Ctx, msg string) error {
	return c.Redirect("/trainer/dashboard?message="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func redirectErr(c *fiber.Ctx, msg string) error {
	return c.Redirect("/trainer/dashboard?error="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

// Dashboard shows the trainer's own upcoming sessions with the participant
// lists loaded.
func Dashboard(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if user.StaffID == nil {
		return redirectErr(c, "No staff record is linked to this login")
	}

	db := config.GetDB()
	trainings, err := database.GetUpcomingTrainingsForTrainer(db, *user.StaffID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load trainings")
	}
	clients, err := database.GetClients(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load clients")
	}

	return c.Render("trainer", fiber.Map{
		"Title":       "Trainer - Sport Club",
		"CurrentUser": user,
		"Trainings":   trainings,
		"Clients":     clients,
		"Message":     c.Query("message"),
		"Error":       c.Query("error"),
	})
}

// AddWarning lets a trainer issue a disciplinary warning against a client.
func AddWarning(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if user.StaffID == nil {
		return redirectErr(c, "No staff record is linked to this login")
	}

	clientID := c.FormValue("client_id")
	reason := c.FormValue("reason")
	if clientID == "" || reason == "" {
		return redirectErr(c, "Client and reason are required")
	}

	warning := &models.Warning{
		ClientID: clientID,
		StaffID:  *user.StaffID,
		Date:     time.Now(),
		Reason:   reason,
	}
	if err := database.CreateWarning(config.GetDB(), warning); err != nil {
		return redirectErr(c, "Database error while saving the warning")
	}
	return redirectOK(c, "Warning issued")
}

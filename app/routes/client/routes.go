package client

import (
	"database/sql"
	"errors"
	"net/url"
	"time"

	"github.com/YazevStas/db-project/app/config"
	"github.com/YazevStas/db-project/app/database"
	"github.com/YazevStas/db-project/app/models"
	"github.com/YazevStas/db-project/app/routes/auth"
	"github.com/YazevStas/db-project/app/services"
	"github.com/gofiber/fiber/v2"
)

func SetupClientRoutes(app *fiber.App) {
	client := app.Group("/client", auth.RequireRole(models.RoleClient))

	client.Get("/dashboard", Dashboard)
	client.Post("/book_training", BookTraining)
	client.Post("/update_profile", UpdateProfile)
}

func redirectOK(c *fiber.Ctx, msg string) error {
	return c.Redirect("/client/dashboard?message="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func redirectErr(c *fiber.Ctx, msg string) error {
	return c.Redirect("/client/dashboard?error="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

// Dashboard shows the client's profile, subscriptions, bookings and the
// eligibility feed: future group trainings whose allowed subscription
// types intersect the client's active entitlement set.
func Dashboard(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if user.ClientID == nil {
		return c.Redirect("/login?error="+url.QueryEscape("No client record is linked to this login"),
			fiber.StatusSeeOther)
	}
	db := config.GetDB()

	clientRec, err := database.GetClientWithContacts(db, *user.ClientID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load client data")
	}
	subscriptions, err := database.GetClientSubscriptions(db, *user.ClientID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subscriptions")
	}
	myTrainings, err := database.GetClientTrainings(db, *user.ClientID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load bookings")
	}
	warnings, err := database.GetWarningsForClient(db, *user.ClientID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load warnings")
	}

	now := time.Now()
	var available []*models.Training
	if entitlements := services.ActiveEntitlementSet(subscriptions, now); len(entitlements) > 0 {
		available, err = database.GetEligibleTrainings(db, *user.ClientID, now)
		if err != nil {
			// The single-query path needs the full schema; filter in
			// process when it is unavailable.
			available, err = eligibleTrainingsFallback(db, entitlements, myTrainings, now)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to load available trainings")
			}
		}
	}

	return c.Render("client", fiber.Map{
		"Title":              "My club - Sport Club",
		"CurrentUser":        user,
		"Client":             clientRec,
		"Subscriptions":      subscriptions,
		"MyTrainings":        myTrainings,
		"Warnings":           warnings,
		"AvailableTrainings": available,
		"Message":            c.Query("message"),
		"Error":              c.Query("error"),
	})
}

// eligibleTrainingsFallback rebuilds the eligibility feed from the plain
// tables: every training with its allowed types loaded, filtered by the
// booking rule.
func eligibleTrainingsFallback(db *sql.DB, entitlements map[string]bool, myTrainings []*models.Training, now time.Time) ([]*models.Training, error) {
	trainings, err := database.GetTrainingsDetailed(db)
	if err != nil {
		return nil, err
	}
	for _, t := range trainings {
		allowedIDs, err := database.GetAllowedTypeIDs(db, t.ID)
		if err != nil {
			return nil, err
		}
		for _, id := range allowedIDs {
			t.AllowedSubscriptions = append(t.AllowedSubscriptions,
				&models.SubscriptionType{ID: id})
		}
	}
	bookedIDs := make(map[string]bool, len(myTrainings))
	for _, t := range myTrainings {
		bookedIDs[t.ID] = true
	}
	return services.EligibleTrainings(trainings, entitlements, bookedIDs, now), nil
}

// BookTraining validates one booking attempt and inserts the participant
// row. The eligibility rule is checked here; the duplicate-booking and
// capacity invariants are also enforced by the storage layer, whose errors
// come back translated to specific messages.
func BookTraining(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if user.ClientID == nil {
		return redirectErr(c, "No client record is linked to this login")
	}
	trainingID := c.FormValue("training_id")
	if trainingID == "" {
		return redirectErr(c, "No training selected")
	}
	db := config.GetDB()
	now := time.Now()

	training, err := database.GetTrainingByID(db, trainingID)
	if err != nil {
		return redirectErr(c, "Training not found")
	}
	allowedIDs, err := database.GetAllowedTypeIDs(db, trainingID)
	if err != nil {
		return redirectErr(c, "Database error while checking access")
	}
	for _, id := range allowedIDs {
		training.AllowedSubscriptions = append(training.AllowedSubscriptions,
			&models.SubscriptionType{ID: id})
	}
	subscriptions, err := database.GetClientSubscriptions(db, *user.ClientID)
	if err != nil {
		return redirectErr(c, "Database error while checking subscriptions")
	}

	entitlements := services.ActiveEntitlementSet(subscriptions, now)
	if err := services.CheckBookable(training, entitlements, false, now); err != nil {
		return redirectErr(c, err.Error())
	}

	confirmed, err := database.CountConfirmedParticipants(db, trainingID)
	if err != nil {
		return redirectErr(c, "Database error while checking capacity")
	}
	if services.CapacityReached(training.MaxParticipants, confirmed) {
		return redirectErr(c, database.ErrTrainingFull.Error())
	}

	err = database.AddParticipant(db, trainingID, *user.ClientID, models.ParticipantConfirmed)
	switch {
	case err == nil:
		return redirectOK(c, "You are booked for the training")
	case errors.Is(err, database.ErrAlreadyBooked):
		return redirectErr(c, "You are already booked for this training")
	case errors.Is(err, database.ErrTrainingFull):
		return redirectErr(c, "The training is already full")
	default:
		return redirectErr(c, "Database error while booking the training")
	}
}

// UpdateProfile edits the client's own name and contact records.
func UpdateProfile(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if user.ClientID == nil {
		return redirectErr(c, "No client record is linked to this login")
	}
	db := config.GetDB()

	phone, err := services.NormalizePhone(c.FormValue("phone"))
	if err != nil {
		return redirectErr(c, err.Error())
	}

	clientRec, err := database.GetClientByID(db, *user.ClientID)
	if err != nil {
		return redirectErr(c, "Client not found")
	}
	clientRec.LastName = c.FormValue("last_name")
	clientRec.FirstName = c.FormValue("first_name")
	if v := c.FormValue("middle_name"); v != "" {
		clientRec.MiddleName = &v
	} else {
		clientRec.MiddleName = nil
	}
	if err := services.ValidateClientName(clientRec.LastName, clientRec.FirstName); err != nil {
		return redirectErr(c, err.Error())
	}

	if err := database.UpdateClient(db, clientRec); err != nil {
		return redirectErr(c, "Database error while updating the profile")
	}
	if err := database.UpsertClientContact(db, clientRec.ID, models.ContactPhone, phone); err != nil {
		return redirectErr(c, "Database error while saving the phone contact")
	}
	if err := database.UpsertClientContact(db, clientRec.ID, models.ContactEmail, c.FormValue("email")); err != nil {
		return redirectErr(c, "Database error while saving the email contact")
	}
	return redirectOK(c, "Profile updated")
}

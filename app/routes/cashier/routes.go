package cashier

import (
	"net/url"
	"strconv"

	"github.com/YazevStas/db-project/app/config"
	"github.com/YazevStas/db-project/app/database"
	"github.com/YazevStas/db-project/app/models"
	"github.com/YazevStas/db-project/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

const recentPaymentsLimit = 50

func SetupCashierRoutes(app *fiber.App) {
	cashier := app.Group("/cashier", auth.RequireRole(models.RoleCashier))

	cashier.Get("/dashboard", Dashboard)
	cashier.Post("/add_payment", AddPayment)
	cashier.Post("/register_client", RegisterClient)
}

func redirectOK(c *fiber.Ctx, msg string) error {
	return c.Redirect("/cashier/dashboard?message="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func redirectErr(c *fiber.Ctx, msg string) error {
	return c.Redirect("/cashier/dashboard?error="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

func Dashboard(c *fiber.Ctx) error {
	db := config.GetDB()

	payments, err := database.GetRecentPayments(db, recentPaymentsLimit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load payments")
	}
	subscriptions, err := database.GetActiveSubscriptions(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subscriptions")
	}
	methods, err := database.GetPaymentMethods(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load payment methods")
	}

	return c.Render("cashier", fiber.Map{
		"Title":         "Cashier - Sport Club",
		"CurrentUser":   auth.CurrentUser(c),
		"Payments":      payments,
		"Subscriptions": subscriptions,
		"Methods":       methods,
		"Message":       c.Query("message"),
		"Error":         c.Query("error"),
	})
}

// AddPayment records a payment for a subscription. Payments are immutable
// and unique per subscription; a second attempt is reported as such.
func AddPayment(c *fiber.Ctx) error {
	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil || amount <= 0 {
		return redirectErr(c, "Invalid amount")
	}

	payment := &models.Payment{
		ClientSubscriptionID: c.FormValue("subscription_id"),
		Amount:               amount,
		MethodID:             c.FormValue("method_id"),
	}
	if payment.ClientSubscriptionID == "" || payment.MethodID == "" {
		return redirectErr(c, "Subscription and payment method are required")
	}
	if err := database.CreatePayment(config.GetDB(), payment); err != nil {
		if database.IsBusinessError(err) {
			return redirectErr(c, err.Error())
		}
		return redirectErr(c, "Database error while recording the payment")
	}
	return redirectOK(c, "Payment recorded")
}

// RegisterClient creates a client together with its login user in one
// transaction, so a failed login insert leaves no orphan client behind.
func RegisterClient(c *fiber.Ctx) error {
	lastName := c.FormValue("last_name")
	firstName := c.FormValue("first_name")
	username := c.FormValue("username")
	password := c.FormValue("password")
	if lastName == "" || firstName == "" || username == "" || password == "" {
		return redirectErr(c, "All fields are required")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return redirectErr(c, "Failed to process the password")
	}

	db := config.GetDB()
	tx, err := db.Begin()
	if err != nil {
		return redirectErr(c, "Database error while registering the client")
	}
	defer tx.Rollback()

	client := &models.Client{LastName: lastName, FirstName: firstName}
	if err := database.CreateClientTx(tx, client); err != nil {
		return redirectErr(c, "Database error while registering the client")
	}
	user := &models.User{
		Username: username,
		Password: hashed,
		Role:     models.RoleClient,
		ClientID: &client.ID,
	}
	if err := database.CreateUserTx(tx, user); err != nil {
		if database.IsBusinessError(err) {
			return redirectErr(c, err.Error())
		}
		return redirectErr(c, "Database error while creating the login")
	}
	if err := tx.Commit(); err != nil {
		return redirectErr(c, "Database error while registering the client")
	}
	return redirectOK(c, "New client registered")
}

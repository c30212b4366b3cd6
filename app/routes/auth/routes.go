package auth

import (
	"database/sql"
	"strings"

	"github.com/YazevStas/db-project/app/config"
	"github.com/YazevStas/db-project/app/database"
	"github.com/YazevStas/db-project/app/models"
	"github.com/gofiber/fiber/v2"
)

const SessionCookie = "session_token"

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/login", ShowLoginPage)
	app.Post("/login", LoginAPI)
	app.Post("/logout", LogoutAPI)
	app.Get("/logout", LogoutAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Already logged in: straight to the role dashboard
	if user := resolveUserFromCookie(c); user != nil {
		return c.Redirect(user.Role.DashboardPath(), fiber.StatusSeeOther)
	}
	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Sport Club",
		"Error": c.Query("error"),
	}, "")
}

// lookupUser re-reads the user row behind a token so revoked logins stop
// working at once. Variable so tests can run without a database.
var lookupUser = func(username string) (*models.User, error) {
	return database.GetUserByUsername(config.GetDB(), username)
}

// resolveUserFromCookie turns the session cookie into a user, or nil.
// Malformed, tampered and expired tokens are all just "anonymous".
func resolveUserFromCookie(c *fiber.Ctx) *models.User {
	tokenString := c.Cookies(SessionCookie)
	if tokenString == "" {
		return nil
	}
	claims, err := ParseToken(tokenString)
	if err != nil {
		return nil
	}
	user, err := lookupUser(claims.Username)
	if err != nil {
		return nil
	}
	return user
}

// CurrentUser returns the user set by RequireRole for the request.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}

// RequireRole gates a route group on a role. Anonymous callers are sent to
// the login page; a logged-in user with the wrong role gets 403. Admin
// passes every gate.
func RequireRole(required models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := resolveUserFromCookie(c)

		isAPIRequest := strings.HasPrefix(c.Path(), "/api/")
		if user == nil {
			if isAPIRequest {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
			}
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		if !user.Role.Allows(required) {
			if isAPIRequest {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
			}
			return fiber.NewError(fiber.StatusForbidden,
				"role '"+user.Role.String()+"' cannot access resources for '"+required.String()+"'")
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// Authenticate checks the credentials and returns the user, or nil.
// An unknown username and a wrong password are indistinguishable to the
// caller.
func Authenticate(db *sql.DB, username, password string) *models.User {
	user, err := database.GetUserByUsername(db, username)
	if err != nil {
		return nil
	}
	if !CheckPasswordHash(password, user.Password) {
		return nil
	}
	return user
}

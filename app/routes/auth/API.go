package auth

import (
	"net/url"
	"time"

	"github.com/YazevStas/db-project/app/config"
	"github.com/gofiber/fiber/v2"
)

// LoginAPI handles the login form: verify credentials, set the session
// cookie, land on the role dashboard.
func LoginAPI(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	user := Authenticate(config.GetDB(), username, password)
	if user == nil {
		return c.Redirect("/login?error="+url.QueryEscape("Invalid username or password"),
			fiber.StatusSeeOther)
	}

	token, err := GenerateToken(user)
	if err != nil {
		return c.Redirect("/login?error="+url.QueryEscape("Failed to start session"),
			fiber.StatusSeeOther)
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(config.SessionTTL()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect(user.Role.DashboardPath(), fiber.StatusSeeOther)
}

// LogoutAPI clears the session cookie.
func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

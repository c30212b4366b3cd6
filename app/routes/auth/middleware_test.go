package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/YazevStas/db-project/app/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a role-gated route backed by an in-memory user table.
func testApp(t *testing.T, required models.Role, users map[string]*models.User) *fiber.App {
	t.Helper()

	orig := lookupUser
	lookupUser = func(username string) (*models.User, error) {
		if user, ok := users[username]; ok {
			return user, nil
		}
		return nil, fiber.ErrNotFound
	}
	t.Cleanup(func() { lookupUser = orig })

	app := fiber.New()
	app.Get("/guarded", RequireRole(required), func(c *fiber.Ctx) error {
		return c.SendString(CurrentUser(c).Username)
	})
	app.Get("/api/guarded", RequireRole(required), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user": CurrentUser(c).Username})
	})
	return app
}

func requestWithToken(t *testing.T, target string, user *models.User) *http.Request {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	if user != nil {
		token, err := GenerateToken(user)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	return req
}

func TestRequireRole(t *testing.T) {
	manager := &models.User{Username: "manager", Role: models.RoleManager}
	admin := &models.User{Username: "admin", Role: models.RoleAdmin}
	trainer := &models.User{Username: "trainer", Role: models.RoleTrainer}
	users := map[string]*models.User{
		"manager": manager,
		"admin":   admin,
		"trainer": trainer,
	}

	tests := []struct {
		name       string
		user       *models.User
		wantStatus int
	}{
		{"matching role passes", manager, fiber.StatusOK},
		{"admin passes every gate", admin, fiber.StatusOK},
		{"wrong role is forbidden", trainer, fiber.StatusForbidden},
		{"anonymous is redirected to login", nil, fiber.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testApp(t, models.RoleManager, users)

			resp, err := app.Test(requestWithToken(t, "/guarded", tt.user))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == fiber.StatusSeeOther {
				assert.Equal(t, "/login", resp.Header.Get("Location"))
			}
		})
	}
}

func TestRequireRoleAPIResponses(t *testing.T) {
	trainer := &models.User{Username: "trainer", Role: models.RoleTrainer}
	users := map[string]*models.User{"trainer": trainer}
	app := testApp(t, models.RoleManager, users)

	// Anonymous API calls get 401 instead of a redirect.
	resp, err := app.Test(requestWithToken(t, "/api/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Wrong role gets 403 JSON.
	resp, err = app.Test(requestWithToken(t, "/api/guarded", trainer))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleRejectsTamperedCookie(t *testing.T) {
	manager := &models.User{Username: "manager", Role: models.RoleManager}
	app := testApp(t, models.RoleManager, map[string]*models.User{"manager": manager})

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-token"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

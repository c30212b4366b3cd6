package models

import "fmt"

// Role is the closed set of login roles. Role gating everywhere goes
// through Allows so the admin override lives in exactly one place.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleCashier   Role = "cashier"
	RoleTrainer   Role = "trainer"
	RoleTechAdmin Role = "tech_admin"
	RoleClient    Role = "client"
)

var allRoles = []Role{RoleAdmin, RoleManager, RoleCashier, RoleTrainer, RoleTechAdmin, RoleClient}

// ParseRole maps a stored role string onto the enumeration.
func ParseRole(s string) (Role, error) {
	for _, r := range allRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Allows reports whether a user holding r may access a resource gated on
// required. Admin has blanket access to every gated resource.
func (r Role) Allows(required Role) bool {
	return r == required || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// DashboardPath returns the landing page for the role after login.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleManager:
		return "/manager/dashboard"
	case RoleCashier:
		return "/cashier/dashboard"
	case RoleTrainer:
		return "/trainer/dashboard"
	case RoleTechAdmin:
		return "/tech_admin/dashboard"
	case RoleClient:
		return "/client/dashboard"
	}
	return "/login"
}

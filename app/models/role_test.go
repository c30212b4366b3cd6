package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, name := range []string{"admin", "manager", "cashier", "trainer", "tech_admin", "client"} {
		role, err := ParseRole(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, role.String())
	}

	_, err := ParseRole("superuser")
	assert.Error(t, err)
	_, err = ParseRole("")
	assert.Error(t, err)
	_, err = ParseRole("Admin")
	assert.Error(t, err)
}

func TestRoleAllows(t *testing.T) {
	// Every role passes its own gate.
	for _, role := range []Role{RoleAdmin, RoleManager, RoleCashier, RoleTrainer, RoleTechAdmin, RoleClient} {
		assert.True(t, role.Allows(role), role)
	}

	// Admin passes every gate.
	for _, required := range []Role{RoleManager, RoleCashier, RoleTrainer, RoleTechAdmin, RoleClient} {
		assert.True(t, RoleAdmin.Allows(required), required)
	}

	// Nobody else crosses role boundaries.
	assert.False(t, RoleManager.Allows(RoleAdmin))
	assert.False(t, RoleTrainer.Allows(RoleManager))
	assert.False(t, RoleClient.Allows(RoleCashier))
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", RoleAdmin.DashboardPath())
	assert.Equal(t, "/tech_admin/dashboard", RoleTechAdmin.DashboardPath())
	assert.Equal(t, "/client/dashboard", RoleClient.DashboardPath())
}

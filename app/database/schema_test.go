package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaStatementFor(t *testing.T, table string) string {
	t.Helper()
	for _, stmt := range schemaStatements {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS "+table+" (") {
			return stmt
		}
	}
	require.Failf(t, "missing table", "no CREATE TABLE statement for %s", table)
	return ""
}

// columnDefinition returns everything from the column name up to the comma
// that ends its definition, so constraints wrapped onto continuation lines
// stay included.
func columnDefinition(t *testing.T, stmt, column string) string {
	t.Helper()
	idx := strings.Index(stmt, column)
	require.GreaterOrEqual(t, idx, 0, "column %s not found", column)
	def := stmt[idx:]
	if cut := strings.Index(def, ","); cut >= 0 {
		def = def[:cut]
	}
	return def
}

// Deleting a client or a staff member must take every dependent row with
// it, so each dependent foreign key has to declare ON DELETE CASCADE.
func TestSchemaDeleteCascades(t *testing.T) {
	tests := []struct {
		table  string
		fk     string
		parent string
	}{
		{"users", "client_id", "clients"},
		{"users", "staff_id", "staff"},
		{"client_subscriptions", "client_id", "clients"},
		{"training_participants", "client_id", "clients"},
		{"client_contacts", "client_id", "clients"},
		{"warnings", "client_id", "clients"},
		{"warnings", "staff_id", "staff"},
		{"payments", "client_subscription_id", "client_subscriptions"},
	}
	for _, tt := range tests {
		t.Run(tt.table+"."+tt.fk, func(t *testing.T) {
			stmt := schemaStatementFor(t, tt.table)
			def := columnDefinition(t, stmt, tt.fk)
			assert.Contains(t, def, "REFERENCES "+tt.parent+"(")
			assert.Contains(t, def, "ON DELETE CASCADE")
		})
	}
}

// A trainer's departure must not take their scheduled trainings along,
// DeleteStaff reassigns them to a NULL trainer instead.
func TestSchemaTrainerNotCascaded(t *testing.T) {
	stmt := schemaStatementFor(t, "trainings")
	def := columnDefinition(t, stmt, "trainer_id")
	assert.Contains(t, def, "REFERENCES staff(id)")
	assert.NotContains(t, def, "ON DELETE CASCADE")
}

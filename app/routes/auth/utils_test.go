package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/YazevStas/db-project/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	user := &models.User{Username: "manager", Role: models.RoleManager}

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "manager", claims.Username)
	assert.Equal(t, string(models.RoleManager), claims.Role)
	assert.Equal(t, "sport-club", claims.Issuer)
}

func TestParseTokenExpired(t *testing.T) {
	user := &models.User{Username: "admin", Role: models.RoleAdmin}

	token, err := generateTokenWithTTL(user, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenTampered(t *testing.T) {
	user := &models.User{Username: "cashier", Role: models.RoleCashier}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	// Flip the last character of the signature.
	tampered := token[:len(token)-1]
	if strings.HasSuffix(token, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = ParseToken(tampered)
	assert.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := ParseToken(tokenString)
		assert.Error(t, err, "token %q", tokenString)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("admin124", hash))
	assert.False(t, CheckPasswordHash("admin123", "not-a-hash"))
}

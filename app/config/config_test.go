package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionSettingsFromAppConfig(t *testing.T) {
	saved := AppConfig
	t.Cleanup(func() { AppConfig = saved })

	AppConfig = &Config{
		JWTSecret:  []byte("configured-secret"),
		SessionTTL: 15 * time.Minute,
	}
	assert.Equal(t, []byte("configured-secret"), JWTSecret())
	assert.Equal(t, 15*time.Minute, SessionTTL())
}

func TestSessionSettingsDefaults(t *testing.T) {
	saved := AppConfig
	t.Cleanup(func() { AppConfig = saved })

	AppConfig = nil
	assert.Equal(t, []byte(devJWTSecret), JWTSecret())
	assert.Equal(t, defaultSessionTTL, SessionTTL())

	AppConfig = &Config{}
	assert.Equal(t, []byte(devJWTSecret), JWTSecret())
	assert.Equal(t, defaultSessionTTL, SessionTTL())
}

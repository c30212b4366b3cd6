package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB         *sql.DB
	ServerPort string
	JWTSecret  []byte
	SessionTTL time.Duration
}

var AppConfig *Config

const (
	devJWTSecret      = "sport-club-dev-secret"
	defaultSessionTTL = 60 * time.Minute
)

// InitDB loads .env (if present), opens the PostgreSQL connection and
// keeps the connection plus the session settings as a process-wide
// singleton. Called once from main.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "sportclub"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}

	AppConfig = &Config{
		DB:         db,
		ServerPort: getEnv("SERVER_PORT", ":8080"),
		JWTSecret:  []byte(getEnv("JWT_SECRET", devJWTSecret)),
		SessionTTL: sessionTTLFromEnv(),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// JWTSecret returns the configured signing key, or the development
// default when InitDB has not run.
func JWTSecret() []byte {
	if AppConfig != nil && len(AppConfig.JWTSecret) > 0 {
		return AppConfig.JWTSecret
	}
	return []byte(devJWTSecret)
}

// SessionTTL returns the configured session lifetime, one hour unless
// SESSION_TTL_MINUTES overrides it.
func SessionTTL() time.Duration {
	if AppConfig != nil && AppConfig.SessionTTL > 0 {
		return AppConfig.SessionTTL
	}
	return defaultSessionTTL
}

func sessionTTLFromEnv() time.Duration {
	if raw := getEnv("SESSION_TTL_MINUTES", ""); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultSessionTTL
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

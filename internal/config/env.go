package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr      string
	GinMode      string
	DBUser       string
	DBPass       string
	DBHost       string
	DBName       string
	JWTSecret    string
	EventTag     string
	CORSOrigins  []string
	AuthDisabled bool
}

func LoadEnv() Env {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	env := Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:    getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:    getenv("DB_NAME", "passgate"),
		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),
		EventTag:  getenv("EVENT_TAG", "RPX"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}
	if len(env.CORSOrigins) == 0 {
		env.CORSOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	switch strings.ToLower(strings.TrimSpace(os.Getenv("AUTH_DISABLED"))) {
	case "1", "true", "yes":
		env.AuthDisabled = true
	}

	return env
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

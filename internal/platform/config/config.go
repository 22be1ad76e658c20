package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config agrupa toda la configuración del servicio.
// Todo viene de variables de entorno; nunca de constantes en el código.
type Config struct {
	Port string

	// DSN de Postgres. Vacío => storage in-memory (solo dev).
	DBDSN string

	JWTSecret     string
	AdminPassword string
	SessionTTL    time.Duration

	LogLevel  string
	LogFormat string
	AppName   string
}

func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DBDSN:         os.Getenv("DB_DSN"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		AppName:       getEnv("APP_NAME", "straysense"),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return Config{}, errors.New("SESSION_TTL must be a valid duration")
	}
	cfg.SessionTTL = ttl

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []string
	if len(c.JWTSecret) < 32 {
		errs = append(errs, "JWT_SECRET must be at least 32 chars")
	}
	if strings.TrimSpace(c.AdminPassword) == "" {
		errs = append(errs, "ADMIN_PASSWORD is required")
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, "SESSION_TTL must be > 0")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

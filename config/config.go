package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SMTP carries the outbound mail settings. All fields optional: when Host or
// Username is empty, notifications are disabled and requests still succeed.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	To       string
}

// Enabled reports whether enough settings are present to attempt a send.
func (s SMTP) Enabled() bool {
	return s.Host != "" && s.Username != "" && s.To != ""
}

// Config is built once in main and passed into every component constructor.
type Config struct {
	Port          string
	MongoURL      string
	DBName        string
	JWTSecret     []byte
	CORSOrigins   []string
	PublicBaseURL string
	SMTP          SMTP

	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminName     string
}

// Load reads configuration from the environment. MONGO_URL, DB_NAME and
// JWT_SECRET are mandatory; there is deliberately no fallback signing secret.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		MongoURL:      os.Getenv("MONGO_URL"),
		DBName:        os.Getenv("DB_NAME"),
		JWTSecret:     []byte(os.Getenv("JWT_SECRET")),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),

		SeedAdminEmail:    os.Getenv("SEED_ADMIN_EMAIL"),
		SeedAdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
		SeedAdminName:     os.Getenv("SEED_ADMIN_NAME"),
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL must be set")
	}
	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME must be set")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	if cfg.Port == "" {
		cfg.Port = ":8080"
	} else if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:3000"
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	cfg.SMTP = SMTP{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     587,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: os.Getenv("SMTP_FROM_NAME"),
		To:       os.Getenv("NOTIFY_TO"),
	}
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		cfg.SMTP.Port = p
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}

	if cfg.SeedAdminEmail == "" {
		cfg.SeedAdminEmail = "admin@example.com"
	}
	if cfg.SeedAdminPassword == "" {
		cfg.SeedAdminPassword = "admin123"
	}
	if cfg.SeedAdminName == "" {
		cfg.SeedAdminName = "Admin"
	}

	return cfg, nil
}

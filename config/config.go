package config

import (
	"fmt"
	"os"
)

// Config collects everything the composition root needs. Business logic never
// reads the environment; it gets values injected from here.
type Config struct {
	AppName  string
	HTTPHost string
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	SeedAdmin     bool
	AdminEmail    string
	AdminName     string
	AdminPassword string

	MidtransServerKey  string
	MidtransProduction bool

	OpenAIKey   string
	OpenAIModel string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	EmailSender  string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppName:  envOr("APP_NAME", "SCHOLARIS"),
		HTTPHost: envOr("HTTP_HOST", "0.0.0.0"),
		HTTPPort: envOr("HTTP_PORT", "8000"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_DATABASE"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		SeedAdmin:     os.Getenv("SEED_ADMIN") == "true",
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminName:     os.Getenv("ADMIN_NAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		MidtransServerKey:  os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransProduction: os.Getenv("MIDTRANS_PRODUCTION") == "true",

		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: envOr("OPENAI_MODEL", "gpt-4"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		EmailSender:  os.Getenv("EMAIL_SENDER"),
	}

	if port := os.Getenv("SMTP_PORT"); port != "" {
		if _, err := fmt.Sscanf(port, "%d", &cfg.SMTPPort); err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", port, err)
		}
	}

	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("database configuration incomplete (DB_HOST, DB_USER, DB_DATABASE are required)")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%s", c.HTTPHost, c.HTTPPort)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

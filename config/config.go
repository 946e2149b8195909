package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nithin-912/PayBridge/utils"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port string
	Env  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Shared secret for webhook signature verification. Mandatory:
	// without it every inbound notification is unverifiable.
	WebhookSecret string

	// Secret for admin bearer tokens
	JWTSecret string

	// Razorpay API credentials for the admin gateway lookup
	RazorpayKey    string
	RazorpaySecret string

	// Optional CRM forwarding target
	CRMAPIURL string
	CRMAPIKey string

	// Optional SMTP alerting for persistence failures
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	AlertFrom string
	AlertTo   string

	// Amount slab thresholds in paise
	SlabMicroMax    int64
	SlabStandardMax int64

	// Timeout for background storage and CRM calls
	PersistTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// A missing .env file is fine in production; real env vars win.
	_ = godotenv.Load()

	config := &Config{
		Port:           getEnv("PORT", utils.DefaultPort),
		Env:            os.Getenv("ENV"),
		DBHost:         getEnv("DB_HOST", utils.DefaultDBHost),
		DBPort:         getEnv("DB_PORT", utils.DefaultDBPort),
		DBUser:         getEnv("DB_USER", utils.DefaultDBUser),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", utils.DefaultDBName),
		WebhookSecret:  os.Getenv("WEBHOOK_SECRET"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RazorpayKey:    os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret: os.Getenv("RAZORPAY_SECRET"),
		CRMAPIURL:      os.Getenv("CRM_API_URL"),
		CRMAPIKey:      os.Getenv("CRM_API_KEY"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPUser:       os.Getenv("SMTP_USERNAME"),
		SMTPPass:       os.Getenv("SMTP_PASSWORD"),
		AlertFrom:      os.Getenv("SMTP_FROM"),
		AlertTo:        os.Getenv("ALERT_TO"),
		PersistTimeout: 5 * time.Second,
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}
	config.SMTPPort = smtpPort

	config.SlabMicroMax, err = getEnvInt64("SLAB_MICRO_MAX", utils.DefaultSlabMicroMax)
	if err != nil {
		return nil, err
	}
	config.SlabStandardMax, err = getEnvInt64("SLAB_STANDARD_MAX", utils.DefaultSlabStandardMax)
	if err != nil {
		return nil, err
	}
	if config.SlabMicroMax >= config.SlabStandardMax {
		return nil, fmt.Errorf("SLAB_MICRO_MAX (%d) must be below SLAB_STANDARD_MAX (%d)",
			config.SlabMicroMax, config.SlabStandardMax)
	}

	// Refuse to run with unverifiable signatures.
	if config.WebhookSecret == "" {
		return nil, fmt.Errorf("WEBHOOK_SECRET is not set")
	}

	return config, nil
}

// SlabRule returns the configured amount slab thresholds.
func (c *Config) SlabRule() utils.SlabRule {
	return utils.SlabRule{
		MicroMax:    c.SlabMicroMax,
		StandardMax: c.SlabStandardMax,
	}
}

// AlertMailer returns the configured mailer, or nil when SMTP alerting
// is not set up.
func (c *Config) AlertMailer() *utils.AlertMailer {
	if c.SMTPHost == "" || c.AlertTo == "" {
		return nil
	}
	return &utils.AlertMailer{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		Username: c.SMTPUser,
		Password: c.SMTPPass,
		From:     c.AlertFrom,
		To:       c.AlertTo,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return parsed, nil
}

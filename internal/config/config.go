package config

import (
	"fmt"
	"os"
)

const (
	defaultDatabasePath = "data/nutriplan.db"
	defaultUserID       = "local"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string
	UserID       string

	// Telegram Config
	TelegramBotToken    string
	TelegramWebhookURL  string
	TelegramAllowUserID int64
	TelegramAdminID     int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	databasePath := os.Getenv("NUTRIPLAN_DB_PATH")
	if databasePath == "" {
		databasePath = defaultDatabasePath
	}

	userID := os.Getenv("NUTRIPLAN_USER_ID")
	if userID == "" {
		userID = defaultUserID
	}

	// Telegram Config (Optional for CLI, required for Bot)
	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramWebhookURL := os.Getenv("TELEGRAM_WEBHOOK_URL")

	var telegramAllowUserID int64
	if s := os.Getenv("TELEGRAM_ALLOW_USER_ID"); s != "" {
		fmt.Sscanf(s, "%d", &telegramAllowUserID)
	}
	var telegramAdminID int64
	if s := os.Getenv("TELEGRAM_ADMIN_ID"); s != "" {
		fmt.Sscanf(s, "%d", &telegramAdminID)
	}

	return &Config{
		DatabasePath:        databasePath,
		UserID:              userID,
		TelegramBotToken:    telegramBotToken,
		TelegramWebhookURL:  telegramWebhookURL,
		TelegramAllowUserID: telegramAllowUserID,
		TelegramAdminID:     telegramAdminID,
	}, nil
}

// RequireTelegram validates the fields the bot binary cannot run without.
func (c *Config) RequireTelegram() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}
	if c.TelegramWebhookURL == "" {
		return fmt.Errorf("TELEGRAM_WEBHOOK_URL environment variable not set")
	}
	return nil
}

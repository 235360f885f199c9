package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingDatabase = errors.New("database environment variables not loaded")

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string
	CORSOrigin string

	// Notification relay (client side)
	RelayURL     string
	RelayAnonKey string
	RelayTimeout time.Duration

	// Notification relay (server side)
	RelayPort        string
	TelegramBotToken string
	TelegramChatID   string

	AdminPassphraseHash string
	RedisURL            string

	FeedMode         string
	FeedPollInterval time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:              os.Getenv("DB_HOST"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBPort:              getEnvOrDefault("DB_PORT", "5432"),
		AppPort:             getEnvOrDefault("APP_PORT", "8080"),
		AppEnv:              getEnvOrDefault("APP_ENV", "development"),
		CORSOrigin:          getEnvOrDefault("CORS_ORIGIN", "http://localhost:3000"),
		RelayURL:            strings.TrimRight(os.Getenv("RELAY_URL"), "/"),
		RelayAnonKey:        os.Getenv("RELAY_ANON_KEY"),
		RelayTimeout:        getDurationEnv("RELAY_TIMEOUT", 10*time.Second),
		RelayPort:           getEnvOrDefault("RELAY_PORT", "8081"),
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:      os.Getenv("TELEGRAM_CHAT_ID"),
		AdminPassphraseHash: os.Getenv("ADMIN_PASSPHRASE_HASH"),
		RedisURL:            os.Getenv("REDIS_URL"),
		FeedMode:            getEnvOrDefault("FEED_MODE", "listen"),
		FeedPollInterval:    getDurationEnv("FEED_POLL_INTERVAL", 15*time.Second),
	}

	if cfg.DBHost == "" || cfg.DBName == "" {
		return cfg, ErrMissingDatabase
	}

	return cfg, nil
}

// LoadConfig is Load for process start-up: a missing database configuration is fatal.
func LoadConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal("Environment variables not loaded properly: ", err)
	}
	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	SQLitePath        string
	RedisURL          string
	JWTSecret         string
	SessionTTL        time.Duration
	AnalyticsCacheTTL time.Duration
	ChatHistoryTTL    time.Duration
	AITimeout         time.Duration
	AIModel           string
	OpenAIAPIKey      string
	CloudinaryCloud   string
	CloudinaryKey     string
	CloudinarySecret  string
	CloudinaryFolder  string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an optional
// .env file. Only the JWT secret is mandatory; the database falls back to a
// local SQLite file so the demo runs without infrastructure.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("EDUVERSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "EduVerse API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("sqlite.path", "eduverse.db")
	v.SetDefault("session.ttl", "720h")
	v.SetDefault("analytics.cache_ttl", "30s")
	v.SetDefault("chat.history_ttl", "30m")
	v.SetDefault("ai.timeout", "15s")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("cloudinary.folder", "eduverse/lessons")

	cfg := Config{
		AppName:          v.GetString("app.name"),
		AppEnv:           v.GetString("app.env"),
		AppPort:          v.GetString("app.port"),
		DatabaseURL:      v.GetString("database.url"),
		SQLitePath:       v.GetString("sqlite.path"),
		RedisURL:         v.GetString("redis.url"),
		JWTSecret:        v.GetString("jwt.secret"),
		AIModel:          v.GetString("ai.model"),
		OpenAIAPIKey:     v.GetString("openai_api_key"),
		CloudinaryCloud:  v.GetString("cloudinary.cloud_name"),
		CloudinaryKey:    v.GetString("cloudinary.api_key"),
		CloudinarySecret: v.GetString("cloudinary.api_secret"),
		CloudinaryFolder: v.GetString("cloudinary.folder"),
	}

	var err error
	if cfg.SessionTTL, err = parseTTL(v, "session.ttl", 720*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.AnalyticsCacheTTL, err = parseTTL(v, "analytics.cache_ttl", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ChatHistoryTTL, err = parseTTL(v, "chat.history_ttl", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.AITimeout, err = parseTTL(v, "ai.timeout", 15*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	return cfg, nil
}

func parseTTL(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return ttl, nil
}

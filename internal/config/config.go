package config

import (
	"os"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Share store (Redis). Both must be set for the clipboard feature;
	// when either is missing, share endpoints report a configuration
	// error instead of touching the store.
	RedisURL   string
	RedisToken string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Content
	ContentDir string // Directory with dashboard.yaml and docs/*.md

	// Site branding
	SiteTitle   string // env: SITE_TITLE, default: "Dashboard STI2D"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		RedisURL:    getEnv("REDIS_URL", ""),
		RedisToken:  getEnv("REDIS_TOKEN", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),
		ContentDir:  getEnv("CONTENT_DIR", "./content"),

		SiteTitle:   getEnv("SITE_TITLE", "Dashboard STI2D"),
		SiteTagline: getEnv("SITE_TAGLINE", "Ressources, projets et séquences"),
		SiteFooter:  getEnv("SITE_FOOTER", "Dashboard STI2D"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// StoreConfigured reports whether both Redis connection parameters are set.
func (c *Config) StoreConfigured() bool {
	return c.RedisURL != "" && c.RedisToken != ""
}

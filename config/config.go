package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/oksasatya/go-onboarding-wizard/internal/domain/entity"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Onboarding defaults
	DefaultLanguage string
	DefaultTheme    string // light, dark, auto

	// System colour scheme: light, dark, or empty to ask the terminal
	SystemTheme string

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "onboarding-wizard"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		DefaultLanguage: getenv("ONBOARDING_DEFAULT_LANGUAGE", "en"),
		DefaultTheme:    getenv("ONBOARDING_DEFAULT_THEME", string(entity.ThemeAuto)),
		SystemTheme:     getenv("ONBOARDING_SYSTEM_THEME", ""),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),
	}
}

// InitialPreferences returns the preferences a new wizard session starts with.
// An unrecognised default theme falls back to auto.
func (c *Config) InitialPreferences() entity.Preferences {
	p := entity.DefaultPreferences()
	if c.DefaultLanguage != "" {
		p.Language = c.DefaultLanguage
	}
	switch t := entity.Theme(strings.ToLower(c.DefaultTheme)); t {
	case entity.ThemeLight, entity.ThemeDark, entity.ThemeAuto:
		p.Theme = t
	default:
		log.Printf("invalid ONBOARDING_DEFAULT_THEME %q, using %s", c.DefaultTheme, entity.ThemeAuto)
	}
	return p
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-onboarding-wizard/internal/domain/entity"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "APP_ENV", "PORT", "ONBOARDING_DEFAULT_LANGUAGE", "ONBOARDING_DEFAULT_THEME", "ONBOARDING_SYSTEM_THEME", "DEBUG_METRICS_ENABLED"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "onboarding-wizard", cfg.AppName)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.SystemTheme)
	assert.True(t, cfg.DebugMetricsEnabled)
	assert.Equal(t, entity.DefaultPreferences(), cfg.InitialPreferences())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ONBOARDING_DEFAULT_LANGUAGE", "pl")
	t.Setenv("ONBOARDING_DEFAULT_THEME", "Dark")
	t.Setenv("ONBOARDING_SYSTEM_THEME", "light")
	t.Setenv("DEBUG_METRICS_ENABLED", "not-a-bool")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()
	p := cfg.InitialPreferences()
	assert.Equal(t, "pl", p.Language)
	assert.Equal(t, entity.ThemeDark, p.Theme)
	assert.Equal(t, "light", cfg.SystemTheme)
	assert.True(t, cfg.DebugMetricsEnabled, "invalid booleans fall back to the default")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}

func TestInitialPreferencesRejectsUnknownTheme(t *testing.T) {
	cfg := &Config{DefaultLanguage: "de", DefaultTheme: "sepia"}
	p := cfg.InitialPreferences()
	assert.Equal(t, entity.ThemeAuto, p.Theme)
	assert.Equal(t, "de", p.Language)
}

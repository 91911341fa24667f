package router

import (
	"github.com/oksasatya/go-onboarding-wizard/internal/application"
	"github.com/oksasatya/go-onboarding-wizard/internal/container"
	handlers "github.com/oksasatya/go-onboarding-wizard/internal/interface/http"
	"github.com/oksasatya/go-onboarding-wizard/internal/router/modules"
)

// newSessionFactory builds wizard sessions from the container singletons.
func newSessionFactory() func() *application.Session {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	theme := container.GetThemeDetector()
	sink := container.GetSink()
	prefs := cfg.InitialPreferences()

	return func() *application.Session {
		return application.NewSession(logger, theme, sink, prefs)
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	handler := handlers.NewOnboardingHandler(newSessionFactory(), container.GetLogger())
	r.Add(modules.NewOnboardingModule(handler))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-onboarding-wizard/config"
	repo "github.com/oksasatya/go-onboarding-wizard/internal/domain/repository"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg    *config.Config
	logger *logrus.Logger

	themeDetector  repo.ThemeDetector
	submissionSink repo.SubmissionSink
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.Load()
	}
	return cfg
}
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger {
	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger
}

func SetThemeDetector(d repo.ThemeDetector) { themeDetector = d }
func GetThemeDetector() repo.ThemeDetector  { return themeDetector }
func SetSink(s repo.SubmissionSink)         { submissionSink = s }
func GetSink() repo.SubmissionSink          { return submissionSink }

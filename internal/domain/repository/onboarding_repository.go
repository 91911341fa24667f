package repository

import (
	"context"

	"github.com/oksasatya/go-onboarding-wizard/internal/domain/entity"
)

// SubmissionSink receives the aggregated record when a wizard is submitted.
type SubmissionSink interface {
	Publish(ctx context.Context, rec entity.OnboardingRecord) error
}

// ThemeDetector reads the platform's light/dark preference.
// Implementations return ThemeLight or ThemeDark, never ThemeAuto.
type ThemeDetector interface {
	SystemTheme() entity.Theme
}

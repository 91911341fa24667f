package sink

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-onboarding-wizard/internal/domain/entity"
	"github.com/oksasatya/go-onboarding-wizard/pkg/helpers"
)

// LogSink writes submitted records to the application log and keeps nothing.
type LogSink struct {
	Logger logrus.FieldLogger
}

func NewLogSink(logger logrus.FieldLogger) *LogSink {
	return &LogSink{Logger: logger}
}

func (s *LogSink) Publish(ctx context.Context, rec entity.OnboardingRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	helpers.LogInfo(s.Logger, "onboarding complete", logrus.Fields{
		"user_info":    rec.UserInfo,
		"contact_info": rec.ContactInfo,
		"preferences":  rec.Preferences,
	})
	return nil
}

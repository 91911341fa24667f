package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-onboarding-wizard/internal/domain/entity"
	repo "github.com/oksasatya/go-onboarding-wizard/internal/domain/repository"
	"github.com/oksasatya/go-onboarding-wizard/pkg/helpers"
	"github.com/oksasatya/go-onboarding-wizard/pkg/validation"
)

var (
	ErrUnknownField         = errors.New("unknown field")
	ErrInvalidValue         = errors.New("invalid value")
	ErrPhoneIndexOutOfRange = errors.New("phone number index out of range")
)

// Session is one run of the onboarding wizard. It is not safe for concurrent
// use; callers that share a session must serialize access.
type Session struct {
	ID    string
	Theme repo.ThemeDetector
	Sink  repo.SubmissionSink

	log         *logrus.Entry
	steps       *StepController
	userInfo    *Form[entity.UserInfo]
	contactInfo *Form[entity.ContactInfo]
	preferences *Form[entity.Preferences]
}

// StepValidation groups the verdicts of the three forms.
type StepValidation struct {
	UserInfo    validation.Result `json:"userInfo"`
	ContactInfo validation.Result `json:"contactInfo"`
	Preferences validation.Result `json:"preferences"`
}

// View is everything a rendering layer needs to draw the wizard.
type View struct {
	SessionID   string             `json:"sessionId"`
	Step        StepState          `json:"step"`
	UserInfo    entity.UserInfo    `json:"userInfo"`
	ContactInfo entity.ContactInfo `json:"contactInfo"`
	Preferences entity.Preferences `json:"preferences"`
	Validation  StepValidation     `json:"validation"`
	IsDarkTheme bool               `json:"isDarkTheme"`
}

// NewSession starts a wizard on the first step. prefs seeds the preferences
// form; theme and sink may be nil.
func NewSession(logger logrus.FieldLogger, theme repo.ThemeDetector, sink repo.SubmissionSink, prefs entity.Preferences) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Session{
		ID:          uuid.NewString(),
		Theme:       theme,
		Sink:        sink,
		userInfo:    NewForm(entity.UserInfo{}, UserInfoRules(), nil),
		contactInfo: NewForm(entity.NewContactInfo(), ContactInfoRules(), entity.ContactInfo.Clone),
		preferences: NewForm(prefs, PreferencesRules(), nil),
	}
	s.log = logger.WithField("session_id", s.ID)
	s.steps = NewStepController(TotalSteps, s.canProceed)

	metricSessions.Add(1)
	s.log.Debug("onboarding session created")
	return s
}

func (s *Session) canProceed(step int) bool {
	switch step {
	case StepUserInfo:
		return s.userInfo.Valid()
	case StepContactInfo:
		return s.contactInfo.Valid()
	default:
		return true
	}
}

// ---- navigation ----

func (s *Session) CurrentStep() int { return s.steps.Current() }

func (s *Session) Steps() StepState { return s.steps.State() }

func (s *Session) CanProceed(step int) bool { return s.steps.CanProceed(step) }

// Advance moves to the next step if the current one is valid.
func (s *Session) Advance() bool {
	from := s.steps.Current()
	if s.steps.Advance() {
		return true
	}
	if !s.steps.IsLastStep() {
		metricAdvanceBlocked.Add(1)
		s.log.WithField("step", StepName(from)).Debug("advance blocked by invalid step")
	}
	return false
}

func (s *Session) Retreat() bool { return s.steps.Retreat() }

// JumpTo goes straight to step without validating the steps in between.
func (s *Session) JumpTo(step int) bool {
	if !s.steps.JumpTo(step) {
		s.log.WithField("step", step).Debug("jump target out of range")
		return false
	}
	return true
}

// ---- records ----

func (s *Session) UserInfo() entity.UserInfo       { return s.userInfo.Value() }
func (s *Session) ContactInfo() entity.ContactInfo { return s.contactInfo.Value() }
func (s *Session) Preferences() entity.Preferences { return s.preferences.Value() }

func (s *Session) UserInfoResult() validation.Result    { return s.userInfo.Result() }
func (s *Session) ContactInfoResult() validation.Result { return s.contactInfo.Result() }
func (s *Session) PreferencesResult() validation.Result { return s.preferences.Result() }

func (s *Session) SetUserInfo(u entity.UserInfo) { s.userInfo.Set(u) }

func (s *Session) SetContactInfo(c entity.ContactInfo) { s.contactInfo.Set(c) }

func (s *Session) SetPreferences(p entity.Preferences) {
	s.preferences.Set(p)
	s.logPreferences()
}

// SetUserInfoField sets one user info field by its JSON name.
func (s *Session) SetUserInfoField(field, value string) error {
	var apply func(u *entity.UserInfo)
	switch field {
	case "firstName":
		apply = func(u *entity.UserInfo) { u.FirstName = value }
	case "lastName":
		apply = func(u *entity.UserInfo) { u.LastName = value }
	case "company":
		apply = func(u *entity.UserInfo) { u.Company = value }
	case "role":
		apply = func(u *entity.UserInfo) { u.Role = value }
	default:
		return s.unknownField("userInfo", field)
	}
	s.userInfo.Update(apply)
	return nil
}

// SetContactInfoField sets one contact info field by its JSON name. Phone
// numbers are edited through the phone number operations.
func (s *Session) SetContactInfoField(field, value string) error {
	var apply func(c *entity.ContactInfo)
	switch field {
	case "email":
		apply = func(c *entity.ContactInfo) { c.Email = value }
	case "secondaryEmail":
		apply = func(c *entity.ContactInfo) { c.SecondaryEmail = value }
	case "preferredContactMethod":
		if err := s.checkEnum("contactInfo", field, value, "contact_method"); err != nil {
			return err
		}
		apply = func(c *entity.ContactInfo) { c.PreferredContactMethod = entity.ContactMethod(value) }
	default:
		return s.unknownField("contactInfo", field)
	}
	s.contactInfo.Update(apply)
	return nil
}

// SetPreferencesField sets one preference by its JSON name. Booleans accept
// anything strconv.ParseBool does.
func (s *Session) SetPreferencesField(field, value string) error {
	var apply func(p *entity.Preferences)
	switch field {
	case "newsletter", "notifications":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return s.rejected(fmt.Errorf("%w: preferences.%s must be a boolean", ErrInvalidValue, field), logrus.Fields{"field": field, "value": value})
		}
		if field == "newsletter" {
			apply = func(p *entity.Preferences) { p.Newsletter = b }
		} else {
			apply = func(p *entity.Preferences) { p.Notifications = b }
		}
	case "theme":
		if err := s.checkEnum("preferences", field, value, "theme"); err != nil {
			return err
		}
		apply = func(p *entity.Preferences) { p.Theme = entity.Theme(value) }
	case "language":
		apply = func(p *entity.Preferences) { p.Language = value }
	default:
		return s.unknownField("preferences", field)
	}
	s.preferences.Update(apply)
	s.logPreferences()
	return nil
}

// ---- phone numbers ----

// AddPhoneNumber appends a blank mobile entry and returns its index.
func (s *Session) AddPhoneNumber() int {
	var idx int
	s.contactInfo.Update(func(c *entity.ContactInfo) {
		c.PhoneNumbers = append(c.PhoneNumbers, entity.NewPhoneEntry())
		idx = len(c.PhoneNumbers) - 1
	})
	return idx
}

func (s *Session) RemovePhoneNumber(index int) error {
	if err := s.checkPhoneIndex(index); err != nil {
		return err
	}
	s.contactInfo.Update(func(c *entity.ContactInfo) {
		c.PhoneNumbers = append(c.PhoneNumbers[:index], c.PhoneNumbers[index+1:]...)
	})
	return nil
}

// UpdatePhoneNumber sets "type" or "number" of the entry at index. Bad input
// leaves the list untouched.
func (s *Session) UpdatePhoneNumber(index int, field, value string) error {
	if err := s.checkPhoneIndex(index); err != nil {
		return err
	}
	var apply func(p *entity.PhoneEntry)
	switch field {
	case "type":
		if err := s.checkEnum("phoneNumbers", field, value, "phone_type"); err != nil {
			return err
		}
		apply = func(p *entity.PhoneEntry) { p.Type = entity.PhoneType(value) }
	case "number":
		apply = func(p *entity.PhoneEntry) { p.Number = value }
	default:
		return s.unknownField("phoneNumbers", field)
	}
	s.contactInfo.Update(func(c *entity.ContactInfo) { apply(&c.PhoneNumbers[index]) })
	return nil
}

func (s *Session) checkPhoneIndex(index int) error {
	n := len(s.contactInfo.value.PhoneNumbers)
	if index < 0 || index >= n {
		return s.rejected(
			fmt.Errorf("%w: phone number at index %d does not exist", ErrPhoneIndexOutOfRange, index),
			logrus.Fields{"index": index, "count": n},
		)
	}
	return nil
}

// ---- derived ----

// IsDarkTheme resolves the theme preference, asking the detector for "auto".
func (s *Session) IsDarkTheme() bool {
	switch s.preferences.value.Theme {
	case entity.ThemeDark:
		return true
	case entity.ThemeAuto:
		return s.Theme != nil && s.Theme.SystemTheme() == entity.ThemeDark
	default:
		return false
	}
}

func (s *Session) View() View {
	return View{
		SessionID:   s.ID,
		Step:        s.steps.State(),
		UserInfo:    s.UserInfo(),
		ContactInfo: s.ContactInfo(),
		Preferences: s.Preferences(),
		Validation: StepValidation{
			UserInfo:    s.userInfo.Result(),
			ContactInfo: s.contactInfo.Result(),
			Preferences: s.preferences.Result(),
		},
		IsDarkTheme: s.IsDarkTheme(),
	}
}

// ---- submission ----

// Submit snapshots all three records and hands the result to the sink. It
// does not validate: callers decide whether submitting is allowed.
func (s *Session) Submit(ctx context.Context) (entity.OnboardingRecord, error) {
	rec := entity.NewOnboardingRecord(s.userInfo.Value(), s.contactInfo.Value(), s.preferences.Value())
	if s.Sink != nil {
		if err := s.Sink.Publish(ctx, rec); err != nil {
			helpers.LogError(s.log, "publish onboarding record failed", err, nil)
			return entity.OnboardingRecord{}, fmt.Errorf("submit onboarding: %w", err)
		}
	}
	metricSubmissions.Add(1)
	s.log.WithField("step", StepName(s.steps.Current())).Info("onboarding submitted")
	return rec, nil
}

// ---- diagnostics ----

func (s *Session) logPreferences() {
	p := s.preferences.value
	s.log.WithFields(logrus.Fields{
		"newsletter":    p.Newsletter,
		"notifications": p.Notifications,
		"theme":         p.Theme,
		"language":      p.Language,
	}).Debug("preferences updated")
}

func (s *Session) checkEnum(record, field, value, tag string) error {
	if err := validation.Var(value, tag); err != nil {
		return s.rejected(
			fmt.Errorf("%w: %s.%s %s", ErrInvalidValue, record, field, validation.Message(err)),
			logrus.Fields{"field": field, "value": value},
		)
	}
	return nil
}

func (s *Session) unknownField(record, field string) error {
	return s.rejected(fmt.Errorf("%w: %s.%s", ErrUnknownField, record, field), logrus.Fields{"field": field})
}

// rejected reports a caller mistake. The session is left unchanged.
func (s *Session) rejected(err error, fields logrus.Fields) error {
	metricCallerErrors.Add(1)
	helpers.LogWarn(s.log, "onboarding update rejected", err, fields)
	return err
}

package application

import (
	"regexp"

	"github.com/oksasatya/go-onboarding-wizard/internal/domain/entity"
	"github.com/oksasatya/go-onboarding-wizard/pkg/validation"
)

// Error kinds specific to the onboarding records.
const (
	KindSecondaryEmailMatch = "secondaryEmailMatch"
	KindNoPhoneNumbers      = "noPhoneNumbers"
	KindOnlyDigits          = "onlyDigits"
)

const msgInvalidEmail = "Please enter a valid email address"

// phoneNumberPattern allows an optional leading + followed by digits only.
var phoneNumberPattern = regexp.MustCompile(`^\+?\d+$`)

func UserInfoRules() *validation.RuleSet[entity.UserInfo] {
	return validation.NewRuleSet[entity.UserInfo]().
		Field("firstName", validation.Required(func(u entity.UserInfo) string { return u.FirstName }, "First name is required")).
		Field("lastName", validation.Required(func(u entity.UserInfo) string { return u.LastName }, "Last name is required"))
}

func ContactInfoRules() *validation.RuleSet[entity.ContactInfo] {
	email := func(c entity.ContactInfo) string { return c.Email }
	secondary := func(c entity.ContactInfo) string { return c.SecondaryEmail }

	rs := validation.NewRuleSet[entity.ContactInfo]().
		Field("email",
			validation.Required(email, "Email is required"),
			validation.EmailFormat(email, msgInvalidEmail)).
		Field("secondaryEmail",
			validation.Required(secondary, "Secondary email is required"),
			validation.EmailFormat(secondary, msgInvalidEmail),
			validation.Cross(func(c entity.ContactInfo) *validation.FieldError {
				if c.SecondaryEmail != "" && c.SecondaryEmail == c.Email {
					return &validation.FieldError{
						Kind:    KindSecondaryEmailMatch,
						Message: "Secondary email must be different from primary email",
					}
				}
				return nil
			})).
		Field("preferredContactMethod", validation.Cross(func(c entity.ContactInfo) *validation.FieldError {
			if c.PreferredContactMethod == entity.ContactMethodPhone && len(c.PhoneNumbers) == 0 {
				return &validation.FieldError{
					Kind:    KindNoPhoneNumbers,
					Message: "Please add at least one phone number to be contacted via Phone",
				}
			}
			return nil
		}))

	return validation.ForEach(rs, "phoneNumbers",
		func(c entity.ContactInfo) []entity.PhoneEntry { return c.PhoneNumbers },
		phoneEntryRules())
}

func phoneEntryRules() *validation.RuleSet[entity.PhoneEntry] {
	number := func(p entity.PhoneEntry) string { return p.Number }
	return validation.NewRuleSet[entity.PhoneEntry]().
		Field("type", validation.Required(func(p entity.PhoneEntry) entity.PhoneType { return p.Type }, "Phone type is required")).
		Field("number",
			validation.Required(number, "Phone number is required"),
			validation.Pattern(number, phoneNumberPattern, KindOnlyDigits, "Only digits allowed"))
}

func PreferencesRules() *validation.RuleSet[entity.Preferences] {
	return validation.NewRuleSet[entity.Preferences]().
		Field("theme", validation.Required(func(p entity.Preferences) entity.Theme { return p.Theme }, "Theme is required")).
		Field("language", validation.Required(func(p entity.Preferences) string { return p.Language }, "Language is required"))
}

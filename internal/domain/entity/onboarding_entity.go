package entity

// ContactMethod is the channel a user prefers to be reached on.
type ContactMethod string

const (
	ContactMethodEmail ContactMethod = "Email"
	ContactMethodPhone ContactMethod = "Phone"
	ContactMethodSMS   ContactMethod = "SMS"
)

// PhoneType labels a phone entry.
type PhoneType string

const (
	PhoneTypeMobile PhoneType = "Mobile"
	PhoneTypeHome   PhoneType = "Home"
	PhoneTypeWork   PhoneType = "Work"
)

// Theme is the UI colour scheme preference. ThemeAuto defers to the system.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// UserInfo is edited on the user info step.
type UserInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Role      string `json:"role"`
}

// PhoneEntry is one element of ContactInfo.PhoneNumbers.
type PhoneEntry struct {
	Type   PhoneType `json:"type"`
	Number string    `json:"number"`
}

// ContactInfo is edited on the contact info step.
type ContactInfo struct {
	Email                  string        `json:"email"`
	SecondaryEmail         string        `json:"secondaryEmail"`
	PreferredContactMethod ContactMethod `json:"preferredContactMethod"`
	PhoneNumbers           []PhoneEntry  `json:"phoneNumbers"`
}

// Clone returns a copy that shares no memory with c.
func (c ContactInfo) Clone() ContactInfo {
	out := c
	out.PhoneNumbers = make([]PhoneEntry, len(c.PhoneNumbers))
	copy(out.PhoneNumbers, c.PhoneNumbers)
	return out
}

// Preferences is edited on the preferences step.
type Preferences struct {
	Newsletter    bool   `json:"newsletter"`
	Notifications bool   `json:"notifications"`
	Theme         Theme  `json:"theme"`
	Language      string `json:"language"`
}

// OnboardingRecord is the snapshot handed to the submission sink.
// It is built once by NewOnboardingRecord and never modified afterwards.
type OnboardingRecord struct {
	UserInfo    UserInfo    `json:"userInfo"`
	ContactInfo ContactInfo `json:"contactInfo"`
	Preferences Preferences `json:"preferences"`
}

func NewOnboardingRecord(u UserInfo, c ContactInfo, p Preferences) OnboardingRecord {
	return OnboardingRecord{UserInfo: u, ContactInfo: c.Clone(), Preferences: p}
}

func NewContactInfo() ContactInfo {
	return ContactInfo{PreferredContactMethod: ContactMethodEmail, PhoneNumbers: []PhoneEntry{}}
}

// DefaultPreferences opts the user into everything and follows the system theme.
func DefaultPreferences() Preferences {
	return Preferences{Newsletter: true, Notifications: true, Theme: ThemeAuto, Language: "en"}
}

// NewPhoneEntry is the blank entry appended by "add phone number".
func NewPhoneEntry() PhoneEntry {
	return PhoneEntry{Type: PhoneTypeMobile}
}

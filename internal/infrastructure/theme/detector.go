// Package theme provides the system colour scheme signal consulted when the
// user's theme preference is "auto".
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oksasatya/go-onboarding-wizard/internal/domain/entity"
	repo "github.com/oksasatya/go-onboarding-wizard/internal/domain/repository"
)

// Fixed always reports the same theme.
type Fixed entity.Theme

func (f Fixed) SystemTheme() entity.Theme { return entity.Theme(f) }

// Terminal asks the controlling terminal for its background colour on every call.
type Terminal struct {
	hasDarkBackground func() bool
}

func NewTerminal() *Terminal {
	return &Terminal{hasDarkBackground: lipgloss.HasDarkBackground}
}

func (t *Terminal) SystemTheme() entity.Theme {
	if t.hasDarkBackground() {
		return entity.ThemeDark
	}
	return entity.ThemeLight
}

// FromConfig returns a Fixed detector for "light" or "dark" and falls back to
// the terminal for anything else, including "".
func FromConfig(value string) repo.ThemeDetector {
	switch entity.Theme(strings.ToLower(strings.TrimSpace(value))) {
	case entity.ThemeDark:
		return Fixed(entity.ThemeDark)
	case entity.ThemeLight:
		return Fixed(entity.ThemeLight)
	default:
		return NewTerminal()
	}
}

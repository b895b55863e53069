// Package session holds the per-visitor UI context: theme, locale, sign-in
// state and the page being viewed. Sessions live in memory only.
package session

import (
	"errors"
	"time"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/navigation"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidTheme    = errors.New("theme must be light or dark")
	ErrInvalidLocale   = errors.New("locale must be en, fr or ar")
	ErrInvalidRole     = errors.New("role must be founder or client")
)

// Theme of the UI
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name
func ParseTheme(raw string) (Theme, error) {
	switch t := Theme(raw); t {
	case ThemeLight, ThemeDark:
		return t, nil
	}
	return "", ErrInvalidTheme
}

// Locale of the UI
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFR Locale = "fr"
	LocaleAR Locale = "ar"
)

// ParseLocale validates a locale code
func ParseLocale(raw string) (Locale, error) {
	switch l := Locale(raw); l {
	case LocaleEN, LocaleFR, LocaleAR:
		return l, nil
	}
	return "", ErrInvalidLocale
}

// Direction is the text direction, derived from the locale
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Direction is rtl for Arabic and ltr otherwise
func (l Locale) Direction() Direction {
	if l == LocaleAR {
		return RTL
	}
	return LTR
}

// Session is the UI context of one visitor
type Session struct {
	ID                string          `json:"id"`
	Theme             Theme           `json:"theme"`
	Locale            Locale          `json:"locale"`
	Direction         Direction       `json:"direction"`
	IsAuthenticated   bool            `json:"is_authenticated"`
	Role              navigation.Role `json:"role"`
	CurrentPage       navigation.Page `json:"current_page"`
	SelectedProductID string          `json:"selected_product_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	LastSeenAt        time.Time       `json:"last_seen_at"`
}

// NavigationState returns the fields page resolution depends on
func (s Session) NavigationState() navigation.State {
	return navigation.State{IsAuthenticated: s.IsAuthenticated, Role: s.Role}
}

// View resolves the current page for this session
func (s Session) View() navigation.View {
	return navigation.Resolve(s.NavigationState(), s.CurrentPage)
}

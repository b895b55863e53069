package session

import (
	"sync"
	"time"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/navigation"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ExpireFunc is called with the id of every swept session
type ExpireFunc func(id string)

// Store is an in-memory, concurrency-safe session map
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	onExpire []ExpireFunc
	now      func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// OnExpire registers cleanup for per-session state kept elsewhere
func (s *Store) OnExpire(fn ExpireFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpire = append(s.onExpire, fn)
}

// Create starts a session with the default context: light theme, English,
// signed out, on the landing page.
func (s *Store) Create(selectedProductID string) Session {
	now := s.now()
	sess := &Session{
		ID:                uuid.NewString(),
		Theme:             ThemeLight,
		Locale:            LocaleEN,
		Direction:         LTR,
		CurrentPage:       navigation.PageLanding,
		SelectedProductID: selectedProductID,
		CreatedAt:         now,
		LastSeenAt:        now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return *sess
}

// Get returns a snapshot of the session and marks it as seen
func (s *Store) Get(id string) (Session, error) {
	return s.update(id, func(*Session) {})
}

// Count returns the number of live sessions
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ToggleTheme flips between light and dark
func (s *Store) ToggleTheme(id string) (Session, error) {
	return s.update(id, func(sess *Session) {
		if sess.Theme == ThemeDark {
			sess.Theme = ThemeLight
		} else {
			sess.Theme = ThemeDark
		}
	})
}

// SetTheme sets an explicit theme
func (s *Store) SetTheme(id string, theme Theme) (Session, error) {
	if _, err := ParseTheme(string(theme)); err != nil {
		return Session{}, err
	}
	return s.update(id, func(sess *Session) { sess.Theme = theme })
}

// SetLocale changes the locale; direction follows it
func (s *Store) SetLocale(id string, locale Locale) (Session, error) {
	if _, err := ParseLocale(string(locale)); err != nil {
		return Session{}, err
	}
	return s.update(id, func(sess *Session) {
		sess.Locale = locale
		sess.Direction = locale.Direction()
	})
}

// SetRole changes the role without touching the sign-in flag
func (s *Store) SetRole(id string, role navigation.Role) (Session, error) {
	if _, ok := navigation.ParseRole(string(role)); !ok {
		return Session{}, ErrInvalidRole
	}
	return s.update(id, func(sess *Session) { sess.Role = role })
}

// SetAuthenticated changes the sign-in flag
func (s *Store) SetAuthenticated(id string, authenticated bool) (Session, error) {
	return s.update(id, func(sess *Session) { sess.IsAuthenticated = authenticated })
}

// SignIn marks the session authenticated with a role and moves it to the
// role's home page.
func (s *Store) SignIn(id string, role navigation.Role) (Session, error) {
	if role != navigation.RoleFounder && role != navigation.RoleClient {
		return Session{}, ErrInvalidRole
	}
	return s.update(id, func(sess *Session) {
		sess.IsAuthenticated = true
		sess.Role = role
		sess.CurrentPage = role.Home()
	})
}

// SignOut clears the sign-in flag and role and returns to the landing page
func (s *Store) SignOut(id string) (Session, error) {
	return s.update(id, func(sess *Session) {
		sess.IsAuthenticated = false
		sess.Role = navigation.RoleNone
		sess.CurrentPage = navigation.PageLanding
	})
}

// Navigate moves to a page. Unknown pages become the landing page. A
// non-empty productID replaces the selection.
func (s *Store) Navigate(id string, page navigation.Page, productID string) (Session, error) {
	page = navigation.ParsePage(string(page))
	return s.update(id, func(sess *Session) {
		if productID != "" {
			sess.SelectedProductID = productID
		}
		sess.CurrentPage = page
	})
}

// Delete removes a session. Deleting an unknown id is not an error.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	hooks := s.onExpire
	s.mu.Unlock()

	if ok {
		for _, fn := range hooks {
			fn(id)
		}
	}
}

// Sweep removes sessions idle for longer than ttl and returns how many went
func (s *Store) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	var expired []string
	for id, sess := range s.sessions {
		if sess.LastSeenAt.Before(cutoff) {
			expired = append(expired, id)
			delete(s.sessions, id)
		}
	}
	hooks := s.onExpire
	s.mu.Unlock()

	for _, id := range expired {
		for _, fn := range hooks {
			fn(id)
		}
	}

	if len(expired) > 0 {
		log.Info().Int("expired", len(expired)).Msg("idle sessions swept")
	}
	return len(expired)
}

func (s *Store) update(id string, mutate func(*Session)) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	mutate(sess)
	sess.LastSeenAt = s.now()
	return *sess, nil
}

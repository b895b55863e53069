package wizard

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// CompleteFunc turns a finished form into a product
type CompleteFunc func(form Form) error

// Store holds one draft per session, created on first access
type Store struct {
	mu     sync.RWMutex
	drafts map[string]*Draft
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		drafts: make(map[string]*Draft),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the session's draft
func (s *Store) Get(sessionID string) Draft {
	s.mu.RLock()
	d, ok := s.drafts[sessionID]
	s.mu.RUnlock()
	if ok {
		return *d
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.ensure(sessionID)
}

// Next moves to the following step. On the last step it hands the form to
// complete and, if that succeeds, starts the session over with a fresh draft.
func (s *Store) Next(sessionID string, complete CompleteFunc) (Draft, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.ensure(sessionID)
	if !d.IsLastStep() {
		d.Step++
		d.UpdatedAt = s.now()
		return *d, false, nil
	}

	if complete == nil {
		return *d, false, ErrStepOutOfRange
	}
	if err := complete(d.Form); err != nil {
		return *d, false, err
	}

	log.Debug().Str("session_id", sessionID).Str("name", d.Form.Name).Msg("wizard completed")
	delete(s.drafts, sessionID)
	return *s.ensure(sessionID), true, nil
}

// Back returns to the previous step
func (s *Store) Back(sessionID string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.ensure(sessionID)
	if d.Step == 0 {
		return *d, ErrStepOutOfRange
	}
	d.Step--
	d.UpdatedAt = s.now()
	return *d, nil
}

// ApplySuggestion copies the non-zero suggested specs into the form
func (s *Store) ApplySuggestion(sessionID string, suggestion Suggestion) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.ensure(sessionID)
	d.Form.apply(suggestion)
	d.UpdatedAt = s.now()
	return *d
}

// UpdateForm edits the form; an invalid result leaves the draft untouched
func (s *Store) UpdateForm(sessionID string, update FormUpdate) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.ensure(sessionID)
	form, err := d.Form.update(update)
	if err != nil {
		return *d, err
	}
	d.Form = form
	d.UpdatedAt = s.now()
	return *d, nil
}

// Reset discards the session's draft
func (s *Store) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}

// Count returns the number of open drafts
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}

// ensure must be called with the write lock held
func (s *Store) ensure(sessionID string) *Draft {
	d, ok := s.drafts[sessionID]
	if !ok {
		d = &Draft{Form: DefaultForm(), UpdatedAt: s.now()}
		s.drafts[sessionID] = d
	}
	return d
}

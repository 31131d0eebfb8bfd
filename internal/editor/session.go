package editor

import (
	"errors"
	"fmt"

	"github.com/ruminaider/kvedit/internal/record"
)

// ErrSessionClosed is returned when saving a session that is not open.
var ErrSessionClosed = errors.New("editing session is not open")

// Session holds a working copy of a committed record for the length of one
// editing dialog. Edits only reach the committed value through Save.
type Session struct {
	committed record.Record
	working   record.Record
	open      bool
	onSave    func(record.Record) error
}

// NewSession creates a closed session. onSave persists the working copy when
// Save is called; it may be nil.
func NewSession(onSave func(record.Record) error) *Session {
	return &Session{onSave: onSave}
}

// Open snapshots current as both the committed value and the working copy.
func (s *Session) Open(current record.Record) {
	if current == nil {
		current = record.Record{}
	}
	s.committed = current
	s.working = current
	s.open = true
}

// IsOpen reports whether the session is between Open and Save or Cancel.
func (s *Session) IsOpen() bool {
	return s.open
}

// Edit replaces the working copy. Its signature matches an Editor's
// onChange callback.
func (s *Session) Edit(v record.Record) {
	s.working = v
}

// Working returns the working copy.
func (s *Session) Working() record.Record {
	return s.working
}

// Committed returns the value the session was opened with, or the last
// value saved.
func (s *Session) Committed() record.Record {
	return s.committed
}

// Dirty reports whether the working copy differs from the committed value.
// Key order counts.
func (s *Session) Dirty() bool {
	return !s.committed.Equal(s.working)
}

// Save persists the working copy and closes the session. If persisting
// fails the session stays open with the working copy intact.
func (s *Session) Save() error {
	if !s.open {
		return ErrSessionClosed
	}
	if s.onSave != nil {
		if err := s.onSave(s.working); err != nil {
			return fmt.Errorf("saving parameters: %w", err)
		}
	}
	s.committed = s.working
	s.open = false
	return nil
}

// Cancel discards the working copy and closes the session.
func (s *Session) Cancel() {
	s.working = s.committed
	s.open = false
}

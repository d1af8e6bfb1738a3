// internal/app/store/adminstate/store.go

// Package adminstate holds the console's entire working state: one
// AdminData document loaded from the seed source at startup, replaced
// wholesale on every mutation, and discarded when the session ends.
//
// Every mutating operation is a pure transform (document, params) ->
// (newDocument, error). Transforms never modify their input; the Store
// serializes commits and stamps each committed document with a new
// version so stale writers are rejected rather than silently winning.
package adminstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/suchak/adminconsole/internal/domain/models"
)

// ErrNotFound is returned by transforms whose target id does not
// resolve to a record in the document.
var ErrNotFound = errors.New("adminstate: record not found")

// ErrStaleWrite is returned by Commit when the caller's base version
// no longer matches the store's current version.
var ErrStaleWrite = errors.New("adminstate: stale write rejected")

// ValidationError describes rejected mutation input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("adminstate: invalid %s: %s", e.Field, e.Msg)
}

// TransitionError is returned when an incident action is not legal
// from the incident's current status.
type TransitionError struct {
	Action string
	From   models.IncidentStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("adminstate: cannot %s incident in status %q", e.Action, e.From)
}

// Transform is a pure mutation over the document. It must return a
// structurally new document (or an error) and leave its input intact.
type Transform func(doc *models.AdminData) (*models.AdminData, error)

// Store owns the current document. It is safe for concurrent use:
// readers take snapshots, writers are serialized through Apply/Commit.
type Store struct {
	mu      sync.RWMutex
	doc     *models.AdminData
	version uint64
}

// New creates a Store around an already-decoded document.
func New(doc *models.AdminData) *Store {
	normalize(doc)
	return &Store{doc: doc, version: 1}
}

// Load reads and decodes the seed document from path. Any failure is
// returned to the caller and is fatal to session start; there is no
// retry and no partial load.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed document: %w", err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader decodes a seed document from r.
func LoadReader(r io.Reader) (*Store, error) {
	var doc models.AdminData
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode seed document: %w", err)
	}
	return New(&doc), nil
}

// Snapshot returns the current document and its version. The returned
// document must be treated as immutable; mutations go through Apply.
func (s *Store) Snapshot() (*models.AdminData, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc, s.version
}

// Version returns the current document version.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Apply runs fn against the current document and commits the result,
// holding the write lock for the duration so concurrent mutations
// serialize instead of racing on stale snapshots. It returns the
// committed document and its new version.
func (s *Store) Apply(fn Transform) (*models.AdminData, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.doc)
	if err != nil {
		return nil, s.version, err
	}
	normalize(next)
	s.doc = next
	s.version++
	return next, s.version, nil
}

// Commit replaces the document only if baseVersion still matches the
// store's current version; otherwise it returns ErrStaleWrite. Used by
// callers that transform a snapshot outside the store lock.
func (s *Store) Commit(baseVersion uint64, next *models.AdminData) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if baseVersion != s.version {
		return s.version, ErrStaleWrite
	}
	normalize(next)
	s.doc = next
	s.version++
	return s.version, nil
}

// ApplyAt is the optimistic variant of Apply. With base zero it
// behaves exactly like Apply. With a nonzero base it runs fn against a
// snapshot and commits only if the document has not moved past base,
// returning ErrStaleWrite otherwise. Callers supply base from the
// version they last read.
func (s *Store) ApplyAt(base uint64, fn Transform) (*models.AdminData, uint64, error) {
	if base == 0 {
		return s.Apply(fn)
	}

	snap, version := s.Snapshot()
	if version != base {
		return nil, version, ErrStaleWrite
	}
	next, err := fn(snap)
	if err != nil {
		return nil, version, err
	}
	committed, err := s.Commit(base, next)
	if err != nil {
		return nil, committed, err
	}
	return next, committed, nil
}

// normalize replaces nil entity slices with empty ones and fills in
// default console settings when the seed carries none, so consumers
// never need nil checks.
func normalize(doc *models.AdminData) {
	if doc.Users == nil {
		doc.Users = []models.User{}
	}
	if doc.Devices == nil {
		doc.Devices = []models.Device{}
	}
	if doc.Groups == nil {
		doc.Groups = []models.Group{}
	}
	if doc.Incidents == nil {
		doc.Incidents = []models.Incident{}
	}
	if doc.MessagesStats == nil {
		doc.MessagesStats = []models.MessageStat{}
	}
	if doc.AuditLogs == nil {
		doc.AuditLogs = []models.AuditLog{}
	}
	if doc.Settings == (models.ConsoleSettings{}) {
		doc.Settings = models.DefaultConsoleSettings()
	}
}

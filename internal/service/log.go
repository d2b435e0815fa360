// Package service owns the in-memory document and exposes every mutation the
// UI surfaces can perform. The document is treated as an immutable value:
// each operation clones it, applies one change, persists the result and only
// then swaps the in-memory copy. A mutex serializes operations, so each one
// runs to completion against a consistent document.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ivnagustin/lock-logger-pwa/internal/common"
	"github.com/ivnagustin/lock-logger-pwa/internal/logging"
	"github.com/ivnagustin/lock-logger-pwa/internal/model"
	"github.com/ivnagustin/lock-logger-pwa/internal/share"
)

// DocumentPersister is the slice of the store the service needs.
type DocumentPersister interface {
	Load(ctx context.Context) (*model.Document, error)
	Save(ctx context.Context, doc *model.Document) error
}

// Log is the application core: one document, one lock, whole-value updates.
type Log struct {
	mu    sync.Mutex
	doc   *model.Document
	store DocumentPersister
	chain *share.Chain
	log   logging.Logger
	now   func() time.Time
}

func New(ctx context.Context, store DocumentPersister, chain *share.Chain, log logging.Logger) (*Log, error) {
	doc, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	return &Log{
		doc:   doc,
		store: store,
		chain: chain,
		log:   log.With("component", "service"),
		now:   time.Now,
	}, nil
}

// Document returns a deep copy of the current state. Renderers read this
// snapshot; nothing outside the service writes through it.
func (s *Log) Document() *model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// replace persists next and, only on success, makes it current.
func (s *Log) replace(ctx context.Context, next *model.Document) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("persisting document: %w", err)
	}
	s.doc = next
	return nil
}

// RecordEntry logs a lock event for the given lockable now. The note may be
// empty; a dismissed prompt is not a failure. The entry list stays capped at
// model.MaxEntries, newest first.
func (s *Log) RecordEntry(ctx context.Context, lockableID, note string) (model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := model.Entry{
		ID:         model.NewID(),
		LockableID: lockableID,
		TS:         s.now(),
		Note:       note,
	}

	next := s.doc.Clone()
	next.Entries = append([]model.Entry{entry}, next.Entries...)
	if len(next.Entries) > model.MaxEntries {
		next.Entries = next.Entries[:model.MaxEntries]
	}

	if err := s.replace(ctx, next); err != nil {
		return model.Entry{}, err
	}
	s.log.Debug(ctx, "entry recorded", "lockable", lockableID)
	return entry, nil
}

// AddLockable creates a new lockable. Name and icon are required; an empty
// color falls back to the preset. Lockables are never deleted, so growth is
// unbounded.
func (s *Log) AddLockable(ctx context.Context, name, icon, color string) (model.Lockable, error) {
	if name == "" {
		return model.Lockable{}, common.ErrNameRequired
	}
	if icon == "" {
		return model.Lockable{}, common.ErrIconRequired
	}
	if color == "" {
		color = model.DefaultColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lockable := model.Lockable{ID: model.NewID(), Name: name, Icon: icon, Color: color}

	next := s.doc.Clone()
	next.Lockables = append(next.Lockables, lockable)

	if err := s.replace(ctx, next); err != nil {
		return model.Lockable{}, err
	}
	s.log.Debug(ctx, "lockable added", "id", lockable.ID, "name", name)
	return lockable, nil
}

// UndoLast drops the newest entry. With no entries it is a no-op, not an
// error; surfaces are expected to disable the control instead.
func (s *Log) UndoLast(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.doc.Entries) == 0 {
		return nil
	}

	next := s.doc.Clone()
	next.Entries = next.Entries[1:]
	return s.replace(ctx, next)
}

// CanUndo reports whether there is an entry to undo.
func (s *Log) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.doc.Entries) > 0
}

// Export writes the document as indented JSON to w.
func (s *Log) Export(w io.Writer) error {
	s.mu.Lock()
	data, err := model.EncodeDocument(s.doc)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportFile writes the export into dir under the canonical file name and
// returns the full path.
func (s *Log) ExportFile(dir string) (string, error) {
	path := filepath.Join(dir, model.ExportFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := s.Export(f); err != nil {
		return "", err
	}
	return path, nil
}

// Import replaces the document with the decoded contents of data. On
// common.ErrInvalidFormat the current document is left untouched.
func (s *Log) Import(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := model.DecodeDocument(data, s.now())
	if err != nil {
		return err
	}
	if err := s.replace(ctx, doc); err != nil {
		return err
	}
	s.log.Info(ctx, "document imported",
		"lockables", len(doc.Lockables), "entries", len(doc.Entries))
	return nil
}

// UpdateTheme sets the theme preference.
func (s *Log) UpdateTheme(ctx context.Context, theme model.Theme) error {
	if !model.ValidTheme(theme) {
		return common.ErrInvalidTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	next.Prefs.Theme = theme
	return s.replace(ctx, next)
}

// ShareLast pushes a one-line summary of the newest entry through the share
// chain and reports which mechanism took it. With no entries it returns
// common.ErrNoEntries.
func (s *Log) ShareLast(ctx context.Context) (method, summary string, err error) {
	s.mu.Lock()
	if len(s.doc.Entries) == 0 {
		s.mu.Unlock()
		return "", "", common.ErrNoEntries
	}
	summary = LastSummary(s.doc)
	s.mu.Unlock()

	method, err = s.chain.Share(ctx, summary)
	if err != nil {
		return "", summary, err
	}
	return method, summary, nil
}

// Suggestions returns the quick-note suggestion list for prompts.
func (s *Log) Suggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.doc.Prefs.QuickNoteSuggestions))
	copy(out, s.doc.Prefs.QuickNoteSuggestions)
	return out
}

// ConfirmNote reports whether the surfaces should ask for a note when
// recording.
func (s *Log) ConfirmNote() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Prefs.ConfirmNote
}

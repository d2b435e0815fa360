// Package model defines the lock-logger document: the lockable items being
// tracked, the timestamped log entries, and the user preferences. The whole
// document is persisted as one JSON value and replaced wholesale on every
// mutation.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxEntries caps the entry log. Recording beyond the cap drops the oldest.
const MaxEntries = 200

// ExportFileName is the name of the JSON export file.
const ExportFileName = "lock-logger-data.json"

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// ValidTheme reports whether t is one of the three supported values.
func ValidTheme(t Theme) bool {
	return t == ThemeSystem || t == ThemeLight || t == ThemeDark
}

// EffectiveDark resolves a theme preference against the host dark-mode
// signal: dark is explicit, system follows the host.
func EffectiveDark(t Theme, systemDark bool) bool {
	return t == ThemeDark || (t == ThemeSystem && systemDark)
}

// DefaultColor is the hex color applied when a lockable is created or
// imported without one.
const DefaultColor = "#2563eb"

// Fallbacks applied by the permissive importer.
const (
	DefaultName        = "Sin nombre"
	DefaultIcon        = "🔒"
	FallbackLockableID = "casa"
)

// Lockable is a user-defined item whose locked state is being logged.
// Lockables are never mutated after creation and never deleted.
type Lockable struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Entry is one timestamped log record. LockableID is a soft reference:
// the target lockable is not guaranteed to exist.
type Entry struct {
	ID         string    `json:"id"`
	LockableID string    `json:"lockableId"`
	TS         time.Time `json:"tsISO"`
	Note       string    `json:"note,omitempty"`
}

// Prefs holds user preferences. QuickNoteSuggestions is read-only in the UI;
// it exists for import/export round-trips and prompt suggestions.
type Prefs struct {
	Theme                Theme    `json:"theme"`
	ConfirmNote          bool     `json:"confirmNote"`
	QuickNoteSuggestions []string `json:"quickNoteSuggestions"`
}

// Document is the complete persisted application state. Entries are ordered
// newest first and never exceed MaxEntries.
type Document struct {
	Lockables []Lockable `json:"lockables"`
	Entries   []Entry    `json:"entries"`
	Prefs     Prefs      `json:"prefs"`
}

// NewID returns a fresh random short identifier.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// DefaultSuggestions returns the built-in quick-note suggestion list.
func DefaultSuggestions() []string {
	return []string{"Salí apurado", "Todo en orden", "Revisar de nuevo"}
}

// DefaultDocument returns the document used when nothing is persisted yet or
// the persisted blob fails to parse: three preset lockables, no entries,
// default preferences.
func DefaultDocument() *Document {
	return &Document{
		Lockables: []Lockable{
			{ID: "casa", Name: "Casa", Icon: "🏠", Color: "#2563eb"},
			{ID: "auto", Name: "Auto", Icon: "🚗", Color: "#16a34a"},
			{ID: "oficina", Name: "Oficina", Icon: "🏢", Color: "#9333ea"},
		},
		Entries: []Entry{},
		Prefs: Prefs{
			Theme:                ThemeSystem,
			ConfirmNote:          true,
			QuickNoteSuggestions: DefaultSuggestions(),
		},
	}
}

// Clone returns a deep copy. Mutating operations clone first so the previous
// document value is never written through.
func (d *Document) Clone() *Document {
	c := &Document{
		Lockables: make([]Lockable, len(d.Lockables)),
		Entries:   make([]Entry, len(d.Entries)),
		Prefs:     d.Prefs,
	}
	copy(c.Lockables, d.Lockables)
	copy(c.Entries, d.Entries)
	c.Prefs.QuickNoteSuggestions = make([]string, len(d.Prefs.QuickNoteSuggestions))
	copy(c.Prefs.QuickNoteSuggestions, d.Prefs.QuickNoteSuggestions)
	return c
}

// Lockable returns the lockable with the given id, or nil.
func (d *Document) Lockable(id string) *Lockable {
	for i := range d.Lockables {
		if d.Lockables[i].ID == id {
			return &d.Lockables[i]
		}
	}
	return nil
}

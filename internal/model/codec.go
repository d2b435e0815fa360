package model

import (
	"encoding/json"
	"time"

	"github.com/ivnagustin/lock-logger-pwa/internal/common"
)

// DecodeDocument parses imported JSON into a Document.
//
// The only hard requirement is the top-level shape: lockables and entries
// must be present as arrays, otherwise common.ErrInvalidFormat is returned.
// Everything below that is repaired field by field: missing ids are
// generated, missing names/icons/colors get defaults, an entry pointing at
// an unknown lockable falls back to the first imported lockable (or the
// literal "casa" when the import has none), unparsable timestamps become
// now, an unknown theme becomes "system" and a non-array suggestion list
// becomes the built-in one. Entries are truncated to MaxEntries.
func DecodeDocument(data []byte, now time.Time) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, common.ErrInvalidFormat
	}

	var rawLockables, rawEntries []json.RawMessage
	if err := json.Unmarshal(raw["lockables"], &rawLockables); err != nil {
		return nil, common.ErrInvalidFormat
	}
	if err := json.Unmarshal(raw["entries"], &rawEntries); err != nil {
		return nil, common.ErrInvalidFormat
	}

	doc := &Document{
		Lockables: make([]Lockable, 0, len(rawLockables)),
		Entries:   make([]Entry, 0, len(rawEntries)),
	}

	for _, r := range rawLockables {
		doc.Lockables = append(doc.Lockables, decodeLockable(r))
	}

	fallbackID := FallbackLockableID
	if len(doc.Lockables) > 0 {
		fallbackID = doc.Lockables[0].ID
	}
	known := make(map[string]struct{}, len(doc.Lockables))
	for _, l := range doc.Lockables {
		known[l.ID] = struct{}{}
	}

	for _, r := range rawEntries {
		doc.Entries = append(doc.Entries, decodeEntry(r, known, fallbackID, now))
	}
	if len(doc.Entries) > MaxEntries {
		doc.Entries = doc.Entries[:MaxEntries]
	}

	doc.Prefs = decodePrefs(raw["prefs"])

	return doc, nil
}

// EncodeDocument serializes d as indented JSON, the export file format.
func EncodeDocument(d *Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

func decodeLockable(raw json.RawMessage) Lockable {
	var m map[string]any
	_ = json.Unmarshal(raw, &m)

	l := Lockable{
		ID:    stringField(m, "id"),
		Name:  stringField(m, "name"),
		Icon:  stringField(m, "icon"),
		Color: stringField(m, "color"),
	}
	if l.ID == "" {
		l.ID = NewID()
	}
	if l.Name == "" {
		l.Name = DefaultName
	}
	if l.Icon == "" {
		l.Icon = DefaultIcon
	}
	if l.Color == "" {
		l.Color = DefaultColor
	}
	return l
}

func decodeEntry(raw json.RawMessage, known map[string]struct{}, fallbackID string, now time.Time) Entry {
	var m map[string]any
	_ = json.Unmarshal(raw, &m)

	e := Entry{
		ID:         stringField(m, "id"),
		LockableID: stringField(m, "lockableId"),
		Note:       stringField(m, "note"),
	}
	if e.ID == "" {
		e.ID = NewID()
	}
	if _, ok := known[e.LockableID]; !ok {
		e.LockableID = fallbackID
	}

	e.TS = now
	if ts := stringField(m, "tsISO"); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			e.TS = parsed
		}
	}
	return e
}

func decodePrefs(raw json.RawMessage) Prefs {
	var m map[string]any
	_ = json.Unmarshal(raw, &m)

	p := Prefs{
		Theme:                Theme(stringField(m, "theme")),
		ConfirmNote:          true,
		QuickNoteSuggestions: DefaultSuggestions(),
	}
	if !ValidTheme(p.Theme) {
		p.Theme = ThemeSystem
	}
	if b, ok := m["confirmNote"].(bool); ok {
		p.ConfirmNote = b
	}
	if items, ok := m["quickNoteSuggestions"].([]any); ok {
		suggestions := make([]string, 0, len(items))
		for _, it := range items {
			if s, ok := it.(string); ok {
				suggestions = append(suggestions, s)
			}
		}
		p.QuickNoteSuggestions = suggestions
	}
	return p
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivnagustin/lock-logger-pwa/internal/common"
)

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func TestDecodeDocument_RejectsBrokenTopLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{{`},
		{"not an object", `[1,2,3]`},
		{"missing lockables", `{"entries": []}`},
		{"missing entries", `{"lockables": []}`},
		{"lockables not an array", `{"lockables": {}, "entries": []}`},
		{"entries not an array", `{"lockables": [], "entries": "nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.input), testNow)
			require.ErrorIs(t, err, common.ErrInvalidFormat)
		})
	}
}

func TestDecodeDocument_EmptyArraysGetDefaultPrefs(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{"lockables": [], "entries": []}`), testNow)
	require.NoError(t, err)

	assert.Empty(t, doc.Lockables)
	assert.Empty(t, doc.Entries)
	assert.Equal(t, ThemeSystem, doc.Prefs.Theme)
	assert.True(t, doc.Prefs.ConfirmNote)
	assert.Equal(t, DefaultSuggestions(), doc.Prefs.QuickNoteSuggestions)
}

func TestDecodeDocument_LockableFieldDefaults(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
		"lockables": [{}, {"id": "bici", "name": "Bici", "icon": "🚲", "color": "#fde047"}],
		"entries": []
	}`), testNow)
	require.NoError(t, err)
	require.Len(t, doc.Lockables, 2)

	repaired := doc.Lockables[0]
	assert.NotEmpty(t, repaired.ID)
	assert.Equal(t, DefaultName, repaired.Name)
	assert.Equal(t, DefaultIcon, repaired.Icon)
	assert.Equal(t, DefaultColor, repaired.Color)

	kept := doc.Lockables[1]
	assert.Equal(t, Lockable{ID: "bici", Name: "Bici", Icon: "🚲", Color: "#fde047"}, kept)
}

func TestDecodeDocument_EntryFieldDefaults(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
		"lockables": [{"id": "bici", "name": "Bici"}],
		"entries": [
			{"lockableId": "bici", "tsISO": "2025-12-24T20:00:00Z", "note": "ok"},
			{"lockableId": "desconocido", "tsISO": "not-a-date"}
		]
	}`), testNow)
	require.NoError(t, err)
	require.Len(t, doc.Entries, 2)

	kept := doc.Entries[0]
	assert.NotEmpty(t, kept.ID)
	assert.Equal(t, "bici", kept.LockableID)
	assert.Equal(t, time.Date(2025, 12, 24, 20, 0, 0, 0, time.UTC), kept.TS)
	assert.Equal(t, "ok", kept.Note)

	// Unknown lockable falls back to the first imported one; bad timestamp
	// falls back to now.
	repaired := doc.Entries[1]
	assert.Equal(t, "bici", repaired.LockableID)
	assert.Equal(t, testNow, repaired.TS)
}

func TestDecodeDocument_FallbackLockableIDWithoutLockables(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
		"lockables": [],
		"entries": [{"lockableId": "whatever"}]
	}`), testNow)
	require.NoError(t, err)
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, FallbackLockableID, doc.Entries[0].LockableID)
}

func TestDecodeDocument_TruncatesEntries(t *testing.T) {
	entries := make([]map[string]any, MaxEntries+25)
	for i := range entries {
		entries[i] = map[string]any{"lockableId": "casa"}
	}
	b, err := json.Marshal(map[string]any{
		"lockables": []map[string]any{{"id": "casa"}},
		"entries":   entries,
	})
	require.NoError(t, err)

	doc, err := DecodeDocument(b, testNow)
	require.NoError(t, err)
	assert.Len(t, doc.Entries, MaxEntries)
}

func TestDecodeDocument_PrefsDefaults(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
		"lockables": [], "entries": [],
		"prefs": {"theme": "sepia", "confirmNote": false, "quickNoteSuggestions": "nope"}
	}`), testNow)
	require.NoError(t, err)

	assert.Equal(t, ThemeSystem, doc.Prefs.Theme)
	assert.False(t, doc.Prefs.ConfirmNote)
	assert.Equal(t, DefaultSuggestions(), doc.Prefs.QuickNoteSuggestions)
}

func TestDecodeDocument_PrefsKept(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
		"lockables": [], "entries": [],
		"prefs": {"theme": "dark", "confirmNote": false, "quickNoteSuggestions": ["a", "b"]}
	}`), testNow)
	require.NoError(t, err)

	assert.Equal(t, ThemeDark, doc.Prefs.Theme)
	assert.False(t, doc.Prefs.ConfirmNote)
	assert.Equal(t, []string{"a", "b"}, doc.Prefs.QuickNoteSuggestions)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	orig := DefaultDocument()
	orig.Entries = []Entry{
		{ID: "e1", LockableID: "casa", TS: time.Date(2026, 1, 2, 8, 30, 0, 0, time.UTC), Note: "rápido"},
	}

	b, err := EncodeDocument(orig)
	require.NoError(t, err)

	back, err := DecodeDocument(b, testNow)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivnagustin/lock-logger-pwa/internal/model"
)

func entryAt(ts time.Time) model.Entry {
	return model.Entry{ID: model.NewID(), LockableID: "casa", TS: ts}
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC) // a Saturday

	tests := []struct {
		name    string
		entries []model.Entry
		want    int
	}{
		{
			name: "today and yesterday",
			entries: []model.Entry{
				entryAt(now.Add(-2 * time.Hour)),
				entryAt(now.AddDate(0, 0, -1)),
			},
			want: 2,
		},
		{
			name: "yesterday and the day before, nothing today",
			entries: []model.Entry{
				entryAt(now.AddDate(0, 0, -1)),
				entryAt(now.AddDate(0, 0, -2)),
			},
			want: 0,
		},
		{
			name:    "no entries",
			entries: nil,
			want:    0,
		},
		{
			name: "gap stops the walk",
			entries: []model.Entry{
				entryAt(now),
				entryAt(now.AddDate(0, 0, -1)),
				entryAt(now.AddDate(0, 0, -3)),
			},
			want: 2,
		},
		{
			name: "several entries on one day count once",
			entries: []model.Entry{
				entryAt(now),
				entryAt(now.Add(-time.Hour)),
				entryAt(now.Add(-2 * time.Hour)),
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.entries, now))
		})
	}
}

func TestLast7(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC) // Saturday

	entries := []model.Entry{
		entryAt(now),                     // Sat
		entryAt(now.Add(-time.Hour)),     // Sat
		entryAt(now.AddDate(0, 0, -2)),   // Thu
		entryAt(now.AddDate(0, 0, -6)),   // last Sunday, oldest bucket
		entryAt(now.AddDate(0, 0, -7)),   // out of window
		entryAt(now.AddDate(0, 0, -100)), // way out
	}

	got := Last7(entries, now)
	require.Len(t, got, 7)

	// Oldest first: Sun..Sat.
	labels := make([]string, 0, 7)
	counts := make([]int, 0, 7)
	for _, d := range got {
		labels = append(labels, d.Label)
		counts = append(counts, d.Count)
	}
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, labels)
	assert.Equal(t, []int{1, 0, 0, 0, 1, 0, 2}, counts)
}

func TestFilteredEntries(t *testing.T) {
	doc := &model.Document{
		Lockables: []model.Lockable{
			{ID: "casa", Name: "Casa", Icon: "🏠", Color: "#2563eb"},
			{ID: "auto", Name: "Auto", Icon: "🚗", Color: "#16a34a"},
		},
		Entries: []model.Entry{
			{ID: "e1", LockableID: "casa", Note: "Salí apurado", TS: testNow},
			{ID: "e2", LockableID: "auto", TS: testNow},
		},
	}

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{"empty term returns all in order", "", []string{"e1", "e2"}},
		{"whitespace-only term returns all", "   ", []string{"e1", "e2"}},
		{"matches lockable name any case", "CASA", []string{"e1"}},
		{"matches note text", "apurado", []string{"e1"}},
		{"no match", "bici", []string{}},
		{"trimmed before matching", "  auto  ", []string{"e2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilteredEntries(doc, tt.term)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestLastSummary(t *testing.T) {
	ts := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	doc := &model.Document{
		Lockables: []model.Lockable{{ID: "casa", Name: "Casa", Icon: "🏠"}},
		Entries:   []model.Entry{{ID: "e1", LockableID: "casa", TS: ts}},
	}

	got := LastSummary(doc)
	assert.Contains(t, got, "🏠 Casa — ")
	assert.Contains(t, got, "2026")
}

func TestLastSummary_UnknownLockableFallsBack(t *testing.T) {
	doc := &model.Document{
		Entries: []model.Entry{{ID: "e1", LockableID: "ghost", TS: testNow}},
	}

	got := LastSummary(doc)
	assert.Contains(t, got, model.DefaultIcon)
	assert.Contains(t, got, "ghost")
}

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ivnagustin/lock-logger-pwa/internal/model"
)

// The derived views are pure functions of the document; the Log methods
// below just apply them to the current snapshot.

// Streak counts consecutive calendar days with at least one entry, walking
// backward from today. The walk stops on the first empty day, so the streak
// reads 0 until something is logged today.
func Streak(entries []model.Entry, now time.Time) int {
	logged := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		logged[dayKey(e.TS.In(now.Location()))] = struct{}{}
	}

	streak := 0
	for day := now; ; day = day.AddDate(0, 0, -1) {
		if _, ok := logged[dayKey(day)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// DayCount is one bucket of the 7-day histogram.
type DayCount struct {
	Label string
	Count int
}

// Last7 buckets entries into the 7 calendar days ending today, oldest first,
// each with a short weekday label.
func Last7(entries []model.Entry, now time.Time) []DayCount {
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[dayKey(e.TS.In(now.Location()))]++
	}

	out := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		out = append(out, DayCount{
			Label: day.Weekday().String()[:3],
			Count: counts[dayKey(day)],
		})
	}
	return out
}

// FilteredEntries returns the entries whose lockable name or note contains
// the trimmed term, case-insensitively. An empty term returns every entry.
// Order is preserved either way.
func FilteredEntries(doc *model.Document, term string) []model.Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return doc.Entries
	}

	names := make(map[string]string, len(doc.Lockables))
	for _, l := range doc.Lockables {
		names[l.ID] = strings.ToLower(l.Name)
	}

	out := make([]model.Entry, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		if strings.Contains(names[e.LockableID], term) ||
			strings.Contains(strings.ToLower(e.Note), term) {
			out = append(out, e)
		}
	}
	return out
}

// LastSummary composes the one-line share text for the newest entry:
// icon, lockable name and the local timestamp. Entries are newest first.
func LastSummary(doc *model.Document) string {
	e := doc.Entries[0]
	icon, name := model.DefaultIcon, e.LockableID
	if l := doc.Lockable(e.LockableID); l != nil {
		icon, name = l.Icon, l.Name
	}
	return fmt.Sprintf("%s %s — %s", icon, name, e.TS.Local().Format("02/01/2006 15:04"))
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Streak applies the streak derivation to the current document.
func (s *Log) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Streak(s.doc.Entries, s.now())
}

// Last7 applies the histogram derivation to the current document.
func (s *Log) Last7() []DayCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Last7(s.doc.Entries, s.now())
}

// FilteredEntries applies the search derivation to the current document.
func (s *Log) FilteredEntries(term string) []model.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilteredEntries(s.doc.Clone(), term)
}

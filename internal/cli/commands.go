package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/ivnagustin/lock-logger-pwa/internal/common"
	"github.com/ivnagustin/lock-logger-pwa/internal/model"
)

var (
	boldText  = color.New(color.Bold)
	faintText = color.New(color.Faint)
	errText   = color.New(color.FgRed)
	okText    = color.New(color.FgGreen)
)

// record logs an entry for the lockable named by args[0]: a 1-based index
// from `list`, an id, or a name. With no argument the lockables are listed
// instead.
func (a *App) record(ctx context.Context, args []string) {
	doc := a.svc.Document()
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: record <item>")
		a.printLockables(doc)
		return
	}

	lockable := resolveLockable(doc, args[0])
	if lockable == nil {
		errText.Fprintf(a.out, "unknown item: %s\n", args[0])
		return
	}

	note := ""
	if a.svc.ConfirmNote() {
		var err error
		note, err = GetNote(a.reader, a.svc.Suggestions(), a.out)
		if err != nil {
			// A dismissed prompt records without a note, it never fails the
			// operation.
			note = ""
		}
	}

	if _, err := a.svc.RecordEntry(ctx, lockable.ID, note); err != nil {
		errText.Fprintf(a.out, "error: %v\n", err)
		return
	}
	okText.Fprintf(a.out, "✓ %s %s locked\n", lockable.Icon, lockable.Name)
}

func (a *App) addLockable(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "- Enter name", a.out)
	if err != nil || name == "" {
		fmt.Fprintln(a.out, "aborted: name is required")
		return
	}

	icon, err := GetSimpleText(a.reader, "- Enter icon (emoji)", a.out)
	if err != nil || icon == "" {
		fmt.Fprintln(a.out, "aborted: icon is required")
		return
	}

	hex, err := GetSimpleText(a.reader, "- Enter color hex (Enter for default)", a.out)
	if err != nil {
		hex = ""
	}

	lockable, err := a.svc.AddLockable(ctx, name, icon, hex)
	if err != nil {
		errText.Fprintf(a.out, "error: %v\n", err)
		return
	}
	okText.Fprintf(a.out, "✓ added %s %s (%s)\n", lockable.Icon, lockable.Name, lockable.ID)
}

func (a *App) undo(ctx context.Context) {
	if !a.svc.CanUndo() {
		fmt.Fprintln(a.out, "nothing to undo")
		return
	}
	if err := a.svc.UndoLast(ctx); err != nil {
		errText.Fprintf(a.out, "error: %v\n", err)
		return
	}
	okText.Fprintln(a.out, "✓ last entry removed")
}

func (a *App) list(term string) {
	doc := a.svc.Document()
	entries := a.svc.FilteredEntries(term)
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "no entries")
		return
	}

	for i, e := range entries {
		icon, name := model.DefaultIcon, e.LockableID
		if l := doc.Lockable(e.LockableID); l != nil {
			icon, name = l.Icon, l.Name
		}
		line := fmt.Sprintf("%3d. %s %s  %s", i+1, icon, boldText.Sprint(name),
			faintText.Sprint(e.TS.Local().Format("02/01/2006 15:04")))
		if e.Note != "" {
			line += "  — " + e.Note
		}
		fmt.Fprintln(a.out, line)
	}
}

func (a *App) stats() {
	streak := a.svc.Streak()
	fmt.Fprintf(a.out, "🔥 streak: %s\n", boldText.Sprintf("%d day(s)", streak))

	bar := color.New(color.FgBlue)
	for _, d := range a.svc.Last7() {
		fmt.Fprintf(a.out, "%s %s %d\n", d.Label, bar.Sprint(strings.Repeat("█", d.Count)), d.Count)
	}
}

func (a *App) export(args []string) {
	dir := a.config.ExportDir
	if len(args) > 0 {
		dir = args[0]
	}
	path, err := a.svc.ExportFile(dir)
	if err != nil {
		errText.Fprintf(a.out, "error: %v\n", err)
		return
	}
	okText.Fprintf(a.out, "✓ exported to %s\n", path)
}

func (a *App) importFile(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: import <file>")
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		errText.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.svc.Import(ctx, data); err != nil {
		if errors.Is(err, common.ErrInvalidFormat) {
			errText.Fprintln(a.out, "invalid format: lockables and entries must be arrays")
		} else {
			errText.Fprintf(a.out, "error: %v\n", err)
		}
		return
	}

	doc := a.svc.Document()
	okText.Fprintf(a.out, "✓ imported %d lockable(s), %d entrie(s)\n",
		len(doc.Lockables), len(doc.Entries))
}

func (a *App) share(ctx context.Context) {
	method, summary, err := a.svc.ShareLast(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoEntries) {
			fmt.Fprintln(a.out, "no entries to share")
		} else {
			errText.Fprintf(a.out, "error: %v\n", err)
		}
		return
	}
	if method != "notice" {
		okText.Fprintf(a.out, "✓ shared via %s: %s\n", method, summary)
	}
}

func (a *App) theme(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "theme: %s\n", a.svc.Document().Prefs.Theme)
		return
	}
	if err := a.svc.UpdateTheme(ctx, model.Theme(args[0])); err != nil {
		errText.Fprintf(a.out, "invalid theme %q (want system, light or dark)\n", args[0])
		return
	}
	okText.Fprintf(a.out, "✓ theme set to %s\n", args[0])
}

func (a *App) printLockables(doc *model.Document) {
	for i, l := range doc.Lockables {
		fmt.Fprintf(a.out, "%3d. %s %s\n", i+1, l.Icon, l.Name)
	}
}

// resolveLockable accepts a 1-based index, an id, or a case-insensitive name.
func resolveLockable(doc *model.Document, key string) *model.Lockable {
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(doc.Lockables) {
		return &doc.Lockables[n-1]
	}
	if l := doc.Lockable(key); l != nil {
		return l
	}
	for i := range doc.Lockables {
		if strings.EqualFold(doc.Lockables[i].Name, key) {
			return &doc.Lockables[i]
		}
	}
	return nil
}

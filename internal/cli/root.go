package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// Run is the REPL loop. Commands run to completion one at a time; the
// document can only change between prompts.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to lock-logger (type 'help' for commands)")
	scanner := bufio.NewScanner(a.reader)

	for {
		fmt.Fprintf(a.out, "lock %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: record <item>, add, undo, list [term], stats, export [dir], import <file>, share, theme <system|light|dark>, exit")
		case "record":
			a.record(ctx, args)
		case "add":
			a.addLockable(ctx)
		case "undo":
			a.undo(ctx)
		case "list":
			a.list(strings.Join(args, " "))
		case "stats":
			a.stats()
		case "export":
			a.export(args)
		case "import":
			a.importFile(ctx, args)
		case "share":
			a.share(ctx)
		case "theme":
			a.theme(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// getStatus summarizes the prompt: current streak and entry count.
func (a *App) getStatus() string {
	doc := a.svc.Document()
	return fmt.Sprintf("(🔥%d %de)", a.svc.Streak(), len(doc.Entries))
}

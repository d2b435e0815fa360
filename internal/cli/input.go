package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal. In tests you can replace it
// with a stub to avoid touching the terminal.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetNote prompts for an optional note, listing the quick suggestions first.
// An empty line (or a non-interactive stdin) means no note, which is not an
// error.
func GetNote(reader *bufio.Reader, suggestions []string, w io.Writer) (string, error) {
	if !isTerminal() {
		return "", nil
	}
	prompt := "- Note (optional, Enter to skip)"
	if len(suggestions) > 0 {
		prompt += "\n  suggestions: " + strings.Join(suggestions, " | ")
	}
	return GetSimpleText(reader, prompt, w)
}

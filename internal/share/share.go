// Package share pushes a short text summary out of the application through a
// fallback chain: external share command → clipboard tool → printed notice.
// The last link always succeeds, so a share is never silently lost.
package share

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/ivnagustin/lock-logger-pwa/internal/common"
)

// Sharer delivers text through one mechanism. An error means the next
// mechanism in the chain should be tried.
type Sharer interface {
	Share(ctx context.Context, text string) error

	// Label names the mechanism in user-facing confirmations.
	Label() string
}

// Chain tries each sharer in order and reports which one took the text.
type Chain struct {
	sharers []Sharer
}

func NewChain(sharers ...Sharer) *Chain {
	return &Chain{sharers: sharers}
}

// Share returns the label of the sharer that succeeded. It only fails when
// the chain is empty or every link fails, which a chain ending in a Notice
// sharer never does.
func (c *Chain) Share(ctx context.Context, text string) (string, error) {
	for _, s := range c.sharers {
		if err := s.Share(ctx, text); err == nil {
			return s.Label(), nil
		}
	}
	return "", common.ErrShareUnavailable
}

// CommandSharer pipes the text into an external command, e.g. a native share
// helper or a clipboard tool.
type CommandSharer struct {
	label string
	name  string
	args  []string
}

func NewCommandSharer(label, name string, args ...string) *CommandSharer {
	return &CommandSharer{label: label, name: name, args: args}
}

func (s *CommandSharer) Label() string { return s.label }

func (s *CommandSharer) Share(ctx context.Context, text string) error {
	if _, err := exec.LookPath(s.name); err != nil {
		return fmt.Errorf("%s: %w", s.name, common.ErrShareUnavailable)
	}
	cmd := exec.CommandContext(ctx, s.name, s.args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	return nil
}

// Clipboard returns a sharer for the first clipboard tool found on PATH,
// or nil when none is available.
func Clipboard() Sharer {
	candidates := []struct {
		name string
		args []string
	}{
		{"wl-copy", nil},
		{"xclip", []string{"-selection", "clipboard"}},
		{"xsel", []string{"--clipboard", "--input"}},
		{"pbcopy", nil},
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c.name); err == nil {
			return NewCommandSharer("clipboard", c.name, c.args...)
		}
	}
	return nil
}

// NoticeSharer prints the text to w. It is the terminal fallback and never
// fails.
type NoticeSharer struct {
	w io.Writer
}

func NewNoticeSharer(w io.Writer) *NoticeSharer {
	return &NoticeSharer{w: w}
}

func (s *NoticeSharer) Label() string { return "notice" }

func (s *NoticeSharer) Share(_ context.Context, text string) error {
	_, err := fmt.Fprintln(s.w, text)
	return err
}

// DefaultChain builds the share chain for this host: the configured native
// share command (if any), then the clipboard, then a notice on w.
func DefaultChain(nativeCommand string, w io.Writer) *Chain {
	var sharers []Sharer
	if nativeCommand != "" {
		sharers = append(sharers, NewCommandSharer("share", nativeCommand))
	}
	if cb := Clipboard(); cb != nil {
		sharers = append(sharers, cb)
	}
	sharers = append(sharers, NewNoticeSharer(w))
	return NewChain(sharers...)
}

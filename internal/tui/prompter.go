// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter collects scalar string inputs, choosing between the interactive
// terminal prompt and a line-oriented stdin fallback.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	isTTY bool

	reader *bufio.Reader
}

// NewPrompter builds a Prompter on the process streams, detecting whether
// stdin is a terminal.
func NewPrompter() *Prompter {
	return &Prompter{
		in:    os.Stdin,
		out:   os.Stderr,
		isTTY: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
}

// NewPrompterFor builds a Prompter on explicit streams. Used by tests and
// by callers that already know stdin is not a terminal.
func NewPrompterFor(in io.Reader, out io.Writer, isTTY bool) *Prompter {
	return &Prompter{in: in, out: out, isTTY: isTTY}
}

// IsInteractive reports whether prompts will be rendered on a terminal.
func (p *Prompter) IsInteractive() bool {
	return p.isTTY
}

// Ask collects one value. On a terminal it renders the bubbletea prompt;
// otherwise it reads a single line from stdin (trailing newline stripped).
// The returned value is trimmed of surrounding whitespace, except for
// passwords, which may legitimately start or end with spaces.
func (p *Prompter) Ask(opts InputOptions) (string, error) {
	if p.isTTY {
		value, err := Input(opts)
		if err != nil {
			return "", err
		}
		return trimInput(value, opts), nil
	}

	if p.reader == nil {
		p.reader = bufio.NewReader(p.in)
	}

	if opts.Title != "" {
		fmt.Fprintf(p.out, "%s: ", opts.Title)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return trimInput(line, opts), nil
}

// trimInput strips surrounding whitespace from a collected value. Password
// values only lose the line terminator.
func trimInput(value string, opts InputOptions) string {
	if opts.Password {
		return strings.TrimRight(value, "\r\n")
	}
	return strings.TrimSpace(value)
}

// AskRequired collects one value and rejects empty input.
func (p *Prompter) AskRequired(opts InputOptions) (string, error) {
	value, err := p.Ask(opts)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", fmt.Errorf("%s must not be empty", strings.ToLower(firstNonEmpty(opts.Title, "input")))
	}
	return value, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

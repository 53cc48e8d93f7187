// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrompter_NonTTYReadsLines(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("alice\nalice@example.com\ns3cret\n")
	var out bytes.Buffer
	p := NewPrompterFor(in, &out, false)

	for _, tt := range []struct {
		title string
		want  string
	}{
		{title: "Username", want: "alice"},
		{title: "Email", want: "alice@example.com"},
		{title: "Password", want: "s3cret"},
	} {
		got, err := p.Ask(InputOptions{Title: tt.title, Password: tt.title == "Password"})
		if err != nil {
			t.Fatalf("Ask(%s) error: %v", tt.title, err)
		}
		if got != tt.want {
			t.Errorf("Ask(%s) = %q, want %q", tt.title, got, tt.want)
		}
	}

	if !strings.Contains(out.String(), "Username: ") {
		t.Errorf("fallback should echo the title prompt, got %q", out.String())
	}
}

func TestPrompter_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	p := NewPrompterFor(strings.NewReader("  spaced out  \n"), &bytes.Buffer{}, false)
	got, err := p.Ask(InputOptions{Title: "Value"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "spaced out" {
		t.Errorf("Ask() = %q, want trimmed value", got)
	}
}

func TestPrompter_PasswordKeepsWhitespace(t *testing.T) {
	t.Parallel()

	p := NewPrompterFor(strings.NewReader("  p4ss word \r\n"), &bytes.Buffer{}, false)
	got, err := p.Ask(InputOptions{Title: "Password", Password: true})
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	// Only the line terminator goes; inner and surrounding spaces are part
	// of the credential.
	if got != "  p4ss word " {
		t.Errorf("Ask() = %q, want the password unaltered", got)
	}
}

func TestPrompter_LastLineWithoutNewline(t *testing.T) {
	t.Parallel()

	p := NewPrompterFor(strings.NewReader("busapp"), &bytes.Buffer{}, false)
	got, err := p.Ask(InputOptions{Title: "App name"})
	if err != nil {
		t.Fatalf("Ask() error: %v", err)
	}
	if got != "busapp" {
		t.Errorf("Ask() = %q, want busapp", got)
	}
}

func TestPrompter_ExhaustedInput(t *testing.T) {
	t.Parallel()

	p := NewPrompterFor(strings.NewReader(""), &bytes.Buffer{}, false)
	if _, err := p.Ask(InputOptions{Title: "Username"}); err == nil {
		t.Error("Ask() should fail when stdin is exhausted")
	}
}

func TestPrompter_AskRequired(t *testing.T) {
	t.Parallel()

	p := NewPrompterFor(strings.NewReader("\nreal\n"), &bytes.Buffer{}, false)

	if _, err := p.AskRequired(InputOptions{Title: "Username"}); err == nil {
		t.Error("AskRequired() should reject an empty line")
	}

	got, err := p.AskRequired(InputOptions{Title: "Username"})
	if err != nil {
		t.Fatalf("AskRequired() error: %v", err)
	}
	if got != "real" {
		t.Errorf("AskRequired() = %q, want real", got)
	}
}

func TestPrompter_IsInteractive(t *testing.T) {
	t.Parallel()

	if NewPrompterFor(strings.NewReader(""), &bytes.Buffer{}, false).IsInteractive() {
		t.Error("IsInteractive() = true for non-TTY prompter")
	}
	if !NewPrompterFor(strings.NewReader(""), &bytes.Buffer{}, true).IsInteractive() {
		t.Error("IsInteractive() = false for TTY prompter")
	}
}

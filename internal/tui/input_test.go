// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func typeRunes(m *inputModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestInputModel_EnterSubmits(t *testing.T) {
	t.Parallel()

	m := newInputModel(InputOptions{Title: "App name"})
	typeRunes(m, "busapp")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !m.done {
		t.Fatal("model should be done after enter")
	}
	if m.cancelled {
		t.Fatal("enter must not cancel")
	}
	if m.result != "busapp" {
		t.Errorf("result = %q, want busapp", m.result)
	}
}

func TestInputModel_EscCancels(t *testing.T) {
	t.Parallel()

	m := newInputModel(InputOptions{Title: "App name"})
	typeRunes(m, "half-typed")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if !m.done || !m.cancelled {
		t.Error("esc should mark the model done and cancelled")
	}
}

func TestInputModel_CtrlCCancels(t *testing.T) {
	t.Parallel()

	m := newInputModel(InputOptions{})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	if !m.cancelled {
		t.Error("ctrl+c should cancel")
	}
}

func TestInputModel_View(t *testing.T) {
	t.Parallel()

	m := newInputModel(InputOptions{Title: "Username"})
	view := m.View()
	if !strings.Contains(view, "Username") {
		t.Errorf("view missing title: %q", view)
	}
	if !strings.Contains(view, "esc cancel") {
		t.Errorf("view missing help line: %q", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.View() != "" {
		t.Error("view should be empty once done")
	}
}

func TestInputModel_PasswordEcho(t *testing.T) {
	t.Parallel()

	m := newInputModel(InputOptions{Title: "Password", Password: true})
	if m.input.EchoMode != textinput.EchoPassword {
		t.Error("password option should set EchoPassword mode")
	}

	typeRunes(m, "s3cret")
	if strings.Contains(m.View(), "s3cret") {
		t.Error("password characters must not be echoed in the view")
	}
}

// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts a prompt (esc or ctrl+c).
var ErrCancelled = errors.New("prompt cancelled")

type (
	// InputOptions configures a single-line input prompt.
	InputOptions struct {
		// Title is the prompt displayed above the input.
		Title string
		// Placeholder is shown while the input is empty.
		Placeholder string
		// Password hides the input characters.
		Password bool
	}

	// inputModel is the bubbletea model behind Input.
	inputModel struct {
		input     textinput.Model
		title     string
		result    string
		done      bool
		cancelled bool
	}
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// newInputModel creates the model for one prompt.
func newInputModel(opts InputOptions) *inputModel {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	if opts.Password {
		ti.EchoMode = textinput.EchoPassword
	}
	ti.Focus()

	return &inputModel{
		input: ti,
		title: opts.Title,
	}
}

// Init implements tea.Model.
func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			m.result = m.input.Value()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *inputModel) View() string {
	if m.done {
		return ""
	}

	lines := make([]string, 0, 3)
	if m.title != "" {
		lines = append(lines, titleStyle.Render(m.title))
	}
	lines = append(lines,
		m.input.View(),
		helpStyle.Render("enter submit • esc cancel"),
	)
	return strings.Join(lines, "\n")
}

// Input prompts for a single line of text on the terminal.
// Returns ErrCancelled if the user aborted.
func Input(opts InputOptions) (string, error) {
	model := newInputModel(opts)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m := finalModel.(*inputModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.result, nil
}

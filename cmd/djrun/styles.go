// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette - shared hex colors for consistent theming across all CLI
// output, picked for dark terminal backgrounds. The primary hue follows
// Django's brand green so djrun output reads as part of the same toolchain.
const (
	// ColorPrimary is Django green - used for titles, headers, and primary emphasis.
	ColorPrimary = lipgloss.Color("#44B78B")

	// ColorMuted is gray - used for subtitles, secondary text, and de-emphasized content.
	ColorMuted = lipgloss.Color("#737E83")

	// ColorSuccess is bright green - used for success states, checkmarks, and positive outcomes.
	ColorSuccess = lipgloss.Color("#2FBF71")

	// ColorError is red - used for errors, failures, and negative outcomes.
	ColorError = lipgloss.Color("#E23D3D")

	// ColorWarning is amber - used for warnings, caution states, and attention-needed items.
	ColorWarning = lipgloss.Color("#E8A33D")

	// ColorHighlight is teal - used for command names, code, and interactive elements.
	ColorHighlight = lipgloss.Color("#20AACC")
)

// Base styles - reusable lipgloss styles built from the color palette.
var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for command names, code, and interactive elements.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

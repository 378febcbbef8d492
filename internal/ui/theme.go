package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the form theme used by prompts. Focused fields are bordered in
// Warn and the affirmative button is Bad.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	t.Form.Base = t.Form.Base.PaddingLeft(1)
	t.Group.Title = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	t.Group.Description = lipgloss.NewStyle().Foreground(Muted)

	t.Focused.Base = t.Focused.Base.BorderForeground(Warn)
	t.Focused.Title = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(Bad).SetString(" ✗")
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(Bad)

	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(Warn).SetString("› ")
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(Warn)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(Muted)

	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(Primary).SetString("› ")
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(Good).SetString("[✓] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(Muted).SetString("[ ] ")

	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(Bad).Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(Good).Background(lipgloss.Color("0"))

	t.Blurred.Base = t.Blurred.Base.BorderForeground(Muted)
	t.Blurred.Title = lipgloss.NewStyle().Foreground(Muted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(Muted)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(Muted).SetString("› ")
	return t
}

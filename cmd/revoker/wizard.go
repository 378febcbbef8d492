package main

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/suryansh-23/revoker/internal/ui"
)

const wizardFrameInterval = 160 * time.Millisecond

type frameMsg struct{}

// wizardModel wraps a huh form under the animated banner.
type wizardModel struct {
	form  *huh.Form
	frame int
}

func (m wizardModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), nextFrame())
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameMsg); ok {
		m.frame = (m.frame + 1) % len(ui.Palette)
		return m, nextFrame()
	}
	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	return m, cmd
}

func (m wizardModel) View() string {
	subtitle := lipgloss.NewStyle().Foreground(ui.Muted).Render("leaked token revocation")
	return ui.LogoFrame(m.frame) + "\n" + subtitle + "\n\n" + m.form.View()
}

func nextFrame() tea.Cmd {
	return tea.Tick(wizardFrameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// runWizard runs form under the banner, falling back to a plain form on dumb
// terminals.
func runWizard(form *huh.Form) error {
	if os.Getenv("TERM") == "dumb" {
		return form.Run()
	}
	form.SubmitCmd = tea.Quit
	form.CancelCmd = tea.Interrupt

	p := tea.NewProgram(wizardModel{form: form}, tea.WithOutput(os.Stderr), tea.WithInput(os.Stdin))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return huh.ErrUserAborted
		}
		return err
	}
	if wm, ok := final.(wizardModel); ok && wm.form.State == huh.StateAborted {
		return huh.ErrUserAborted
	}
	return nil
}

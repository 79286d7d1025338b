package ui

import (
	"os"

	tea "charm.land/bubbletea/v2"
)

// ConfirmResult holds the result of a yes/no prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N", "enter":
			// Default answer is no.
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.prompt + " [y/N] ")
}

// Confirm shows a yes/no prompt on stderr and returns the user's choice.
func Confirm(prompt string) (ConfirmResult, error) {
	p := tea.NewProgram(confirmModel{prompt: prompt}, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := finalModel.(confirmModel)
	return ConfirmResult{Confirmed: m.confirmed, Cancelled: m.cancelled}, nil
}

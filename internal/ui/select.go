package ui

import (
	"os"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
)

// choiceItem adapts an option string to the bubbles list item contract.
// The index survives filtering, where the visible position does not.
type choiceItem struct {
	label string
	index int
}

func (c choiceItem) Title() string       { return c.label }
func (c choiceItem) Description() string { return "" }
func (c choiceItem) FilterValue() string { return c.label }

// chooseModel wraps a bubbles list until the user picks an entry or
// backs out. choice stays -1 on cancel.
type chooseModel struct {
	list   list.Model
	choice int
	done   bool
}

func (m chooseModel) Init() tea.Cmd { return nil }

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// While the filter input is active, keys belong to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(choiceItem); ok {
				m.choice = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m chooseModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// Choose shows a filterable list prompt on stderr and returns the index
// of the picked option, or -1 when the user cancels.
func Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, nil
	}

	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = choiceItem{label: opt, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = AccentStyle

	height := len(options) + 6
	if height > 20 {
		height = 20
	}
	l := list.New(items, delegate, 60, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	p := tea.NewProgram(chooseModel{list: l, choice: -1}, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return -1, err
	}
	m := final.(chooseModel)
	if m.choice < 0 || m.choice >= len(options) {
		return -1, nil
	}
	return m.choice, nil
}

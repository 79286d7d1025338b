// Package ui provides the interactive terminal components: selection
// prompts, confirmations, and table rendering. Prompts write to stderr
// so command output on stdout stays scriptable.
package ui

import "charm.land/lipgloss/v2"

// Shared color palette.
var (
	Primary = lipgloss.Color("62")  // cyan/teal, titles
	Accent  = lipgloss.Color("212") // pink, selected items
	Success = lipgloss.Color("82")
	Error   = lipgloss.Color("196")
	Muted   = lipgloss.Color("240")
)

var (
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)

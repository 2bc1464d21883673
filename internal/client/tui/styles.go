package tui

import "github.com/charmbracelet/lipgloss"

// brandColor is the accent used across all screens.
const brandColor = lipgloss.Color("#d9232d")

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(brandColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(brandColor).
			Padding(0, 1)

	avatarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(brandColor).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(brandColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(14)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

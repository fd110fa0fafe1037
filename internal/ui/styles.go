package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("39")  // Sky blue
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
	colorDanger    = lipgloss.Color("196") // Red
)

// TitleBar style for the top bar.
var TitleBar = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// TabActive style for the selected page tab.
var TabActive = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPrimary).
	Padding(0, 1)

// TabInactive style for other page tabs.
var TabInactive = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// CardTitle style for item card headers.
var CardTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// CardSelected style for the highlighted card.
var CardSelected = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorPrimary).
	Padding(0, 1)

// CardNormal style for unselected cards.
var CardNormal = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

// CategoryTag style for item category badges.
var CategoryTag = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// MetaText style for card meta lines (source, length, date).
var MetaText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// FavoriteMark style for the favorite heart.
var FavoriteMark = lipgloss.NewStyle().
	Foreground(colorHighlight)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ToastStyle for the transient notice line.
var ToastStyle = lipgloss.NewStyle().
	Foreground(colorWarning).
	Bold(true).
	Padding(0, 1)

// FallbackNotice style for the "demo data" banner.
var FallbackNotice = lipgloss.NewStyle().
	Foreground(colorWarning).
	Padding(0, 1)

// CorrectStyle highlights a right answer.
var CorrectStyle = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// WrongStyle highlights a wrong answer.
var WrongStyle = lipgloss.NewStyle().
	Foreground(colorDanger).
	Bold(true)

// ChatUser style for user transcript lines.
var ChatUser = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Bold(true)

// ChatAssistant style for assistant transcript lines.
var ChatAssistant = lipgloss.NewStyle().
	Foreground(colorPrimary)

// HelpStyle for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// RatingBar renders a 1-5 rating as filled and empty blocks.
func RatingBar(value int) string {
	if value < 0 {
		value = 0
	}
	if value > 5 {
		value = 5
	}
	bar := ""
	for i := 0; i < 5; i++ {
		if i < value {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

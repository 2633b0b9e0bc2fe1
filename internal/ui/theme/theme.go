package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Calm, earthy tones for a wellness app.
var (
	Primary   = lipgloss.Color("#34D399") // Soft Emerald
	Secondary = lipgloss.Color("#A78BFA") // Muted Violet
	Accent    = lipgloss.Color("#FBBF24") // Turmeric Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Dosha colors, used for profile bars and dominant-dosha highlights.
var (
	Vata  = lipgloss.Color("#A78BFA") // Air, movement
	Pitta = lipgloss.Color("#F87171") // Fire, heat
	Kapha = lipgloss.Color("#34D399") // Earth, steadiness
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Sanskrit = lipgloss.NewStyle().
			Foreground(Accent).
			Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Chosen = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// DoshaColor returns the display color for a dosha name.
// Unknown names fall back to the dim text color.
func DoshaColor(name string) color.Color {
	switch name {
	case "vata":
		return Vata
	case "pitta":
		return Pitta
	case "kapha":
		return Kapha
	default:
		return TextDim
	}
}

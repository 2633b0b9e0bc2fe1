package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BHARTIYAYASH/manasveda/internal/router"
	"github.com/BHARTIYAYASH/manasveda/internal/screen"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/theme"
)

// PlaceholderScreen is shown when a feature's dependencies are unavailable.
type PlaceholderScreen struct {
	name string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a placeholder screen for the named feature.
func New(name string) *PlaceholderScreen {
	return &PlaceholderScreen{name: name}
}

func (p *PlaceholderScreen) Init() tea.Cmd { return nil }

func (p *PlaceholderScreen) Title() string { return p.name }

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	content := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(p.name + " is unavailable without a database.\n\npress any key to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BHARTIYAYASH/manasveda/internal/guidance"
	"github.com/BHARTIYAYASH/manasveda/internal/router"
	"github.com/BHARTIYAYASH/manasveda/internal/screen"
	checkinscreen "github.com/BHARTIYAYASH/manasveda/internal/screens/checkin"
	"github.com/BHARTIYAYASH/manasveda/internal/screens/history"
	"github.com/BHARTIYAYASH/manasveda/internal/screens/journey"
	"github.com/BHARTIYAYASH/manasveda/internal/screens/placeholder"
	"github.com/BHARTIYAYASH/manasveda/internal/screens/recommendations"
	"github.com/BHARTIYAYASH/manasveda/internal/store"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/components"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	points     int
	dominant   string
	checkins   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(eventRepo store.EventRepo, snapRepo store.SnapshotRepo, noteSvc *guidance.Service) *HomeScreen {
	// Load the latest snapshot for points and dominant dosha.
	var snap *store.Snapshot
	if snapRepo != nil {
		snap, _ = snapRepo.Latest(context.Background())
	}

	var points int
	var dominant string
	if snap != nil {
		points = snap.Data.Points
		dominant = snap.Data.Dominant
	}

	var checkinCount int
	if eventRepo != nil {
		if checks, err := eventRepo.Checkins(context.Background(), store.QueryOpts{Limit: 30}); err == nil {
			checkinCount = len(checks)
		}
	}

	menuLabels := []string{"BEGIN JOURNEY", "RECOMMENDATIONS", "DAILY CHECK-IN", "HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: journey.New(eventRepo, snapRepo, noteSvc),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: recommendations.New(eventRepo, snapRepo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Daily Check-in")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: checkinscreen.New(eventRepo)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo, snapRepo)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		points:     points,
		dominant:   dominant,
		checkins:   checkinCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("MANASVEDA")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("mental wellness through Ayurveda")
	sections = append(sections, components.Panel(title+"\n"+subtitle, cw))

	sections = append(sections, components.Panel(h.renderStats(), cw))

	var menuRows []string
	for i, label := range h.menuLabels {
		menuRows = append(menuRows, components.SelectButton(label, i == h.menu.Selected, cw-8))
	}
	sections = append(sections, strings.Join(menuRows, "\n"))

	content := strings.Join(sections, "\n\n")

	return components.Frame(content, width, height)
}

func (h *HomeScreen) renderStats() string {
	dominantStr := "not yet assessed"
	if h.dominant != "" {
		dominantStr = lipgloss.NewStyle().
			Foreground(theme.DoshaColor(h.dominant)).
			Bold(true).
			Render(h.dominant)
	}

	parts := []string{
		fmt.Sprintf("Dominant dosha: %s", dominantStr),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("✦ %d pts", h.points)),
	}
	if h.checkins > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d check-ins", h.checkins)))
	}
	return strings.Join(parts, "    ")
}

func (h *HomeScreen) Title() string {
	return "Home"
}

package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BHARTIYAYASH/manasveda/internal/router"
	"github.com/BHARTIYAYASH/manasveda/internal/screen"
	"github.com/BHARTIYAYASH/manasveda/internal/store"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/layout"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions  []store.SessionEvent
	Checkins  []store.CheckinEvent
	Snapshots []store.Snapshot
	Err       error
}

// HistoryScreen displays past journeys, check-ins, and constitutions.
type HistoryScreen struct {
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo

	sessions  []store.SessionEvent
	checkins  []store.CheckinEvent
	snapshots []store.Snapshot
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.eventRepo.Sessions(ctx, store.QueryOpts{Limit: 40})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		checkins, err := s.eventRepo.Checkins(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		var snapshots []store.Snapshot
		if s.snapRepo != nil {
			snapshots, _ = s.snapRepo.List(ctx, 5)
		}

		return historyLoadedMsg{Sessions: sessions, Checkins: checkins, Snapshots: snapshots}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = finished(msg.Sessions)
			s.checkins = msg.Checkins
			s.snapshots = msg.Snapshots
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

// finished drops "started" rows so each journey appears once.
func finished(events []store.SessionEvent) []store.SessionEvent {
	out := make([]store.SessionEvent, 0, len(events))
	for _, ev := range events {
		if ev.Action == store.SessionStarted {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 && len(s.checkins) == 0 && len(s.snapshots) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Begin a journey!")
	}

	var b strings.Builder
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Latest constitutions.
	if len(s.snapshots) > 0 {
		b.WriteString(sectionHeader(width, "Constitutions", divider))
		for _, snap := range s.snapshots {
			line := fmt.Sprintf("  %s    vata %.0f%%  pitta %.0f%%  kapha %.0f%%    %s",
				snap.Timestamp.Format("Jan 02, 2006"),
				snap.Data.Profile.Vata, snap.Data.Profile.Pitta, snap.Data.Profile.Kapha,
				lipgloss.NewStyle().Foreground(theme.DoshaColor(snap.Data.Dominant)).Bold(true).
					Render(snap.Data.Dominant))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Journeys.
	if len(s.sessions) > 0 {
		b.WriteString(sectionHeader(width, "Journeys", divider))
		for i, ev := range s.sessions {
			prefix := "  "
			if i == s.selected {
				prefix = "▸ "
			}

			mins := ev.DurationSecs / 60
			secs := ev.DurationSecs % 60

			status := ev.Action
			statusStyle := lipgloss.NewStyle().Foreground(theme.Success)
			if ev.Action == store.SessionAbandoned {
				statusStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			}

			line := fmt.Sprintf("%s%s  %d:%02d  %d rooms  ✦ %d pts  %s",
				prefix, ev.Timestamp.Format("Jan 02, 2006"), mins, secs,
				ev.RoomsCompleted, ev.Points, statusStyle.Render(status))

			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == s.selected {
				style = style.Foreground(theme.Primary).Bold(true)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				style.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Recent check-ins.
	if len(s.checkins) > 0 {
		b.WriteString(sectionHeader(width, "Check-ins", divider))
		for _, check := range s.checkins {
			line := fmt.Sprintf("  %s    mood %d  energy %d  stress %d  sleep %d",
				check.Timestamp.Format("Jan 02"),
				check.Mood, check.Energy, check.Stress, check.Sleep)
			if check.Notes != "" {
				line += lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("  “" + truncate(check.Notes, 30) + "”")
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func sectionHeader(width int, name, divider string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(name)) +
		"\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) +
		"\n\n"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

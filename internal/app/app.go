package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BHARTIYAYASH/manasveda/internal/guidance"
	"github.com/BHARTIYAYASH/manasveda/internal/router"
	"github.com/BHARTIYAYASH/manasveda/internal/screen"
	"github.com/BHARTIYAYASH/manasveda/internal/screens/home"
	"github.com/BHARTIYAYASH/manasveda/internal/screens/welcome"
	"github.com/BHARTIYAYASH/manasveda/internal/store"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/layout"
)

// Options carries the dependencies injected into the screen tree.
// Repos may be nil; features degrade to placeholders.
type Options struct {
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	NoteSvc   *guidance.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	points int
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	welcomeScreen := welcome.New(func() screen.Screen {
		return home.New(opts.EventRepo, opts.SnapRepo, opts.NoteSvc)
	})

	var points int
	if opts.SnapRepo != nil {
		if snap, err := opts.SnapRepo.Latest(context.Background()); err == nil && snap != nil {
			points = snap.Data.Points
		}
	}

	return AppModel{
		router: router.New(welcomeScreen),
		points: points,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Screens handle esc themselves so flows like the journey can
	// confirm before leaving.
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome splash renders edge to edge.
	if title == "" && m.router.Depth() == 1 {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.points, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

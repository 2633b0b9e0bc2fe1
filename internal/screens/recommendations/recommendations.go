package recommendations

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BHARTIYAYASH/manasveda/internal/checkin"
	"github.com/BHARTIYAYASH/manasveda/internal/recommend"
	"github.com/BHARTIYAYASH/manasveda/internal/router"
	"github.com/BHARTIYAYASH/manasveda/internal/screen"
	"github.com/BHARTIYAYASH/manasveda/internal/store"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/layout"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/theme"
)

type metricsLoadedMsg struct {
	Metrics recommend.MetricVector
	Source  string
}

// RecommendationsScreen lists wellness practices ranked for the user.
type RecommendationsScreen struct {
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo

	metrics recommend.MetricVector
	source  string
	loaded  bool

	categories []recommend.Category
	catIndex   int
	ranked     []recommend.Recommendation
	selected   int
	expanded   map[int]bool
}

var _ screen.Screen = (*RecommendationsScreen)(nil)
var _ screen.KeyHintProvider = (*RecommendationsScreen)(nil)

// New creates a new RecommendationsScreen. Repos may be nil; the list
// then shows in library order.
func New(eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *RecommendationsScreen {
	categories := append([]recommend.Category{recommend.CategoryAll}, recommend.Categories()...)
	return &RecommendationsScreen{
		eventRepo:  eventRepo,
		snapRepo:   snapRepo,
		categories: categories,
		expanded:   make(map[int]bool),
	}
}

func (s *RecommendationsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		// Prefer today's check-in; fall back to the latest constitution.
		if s.eventRepo != nil {
			if latest, err := s.eventRepo.LatestCheckin(ctx); err == nil && latest != nil {
				check := checkin.DailyCheck{
					Mood:   latest.Mood,
					Energy: latest.Energy,
					Stress: latest.Stress,
					Sleep:  latest.Sleep,
				}
				return metricsLoadedMsg{Metrics: check.Metrics(), Source: "ranked by your latest check-in"}
			}
		}
		if s.snapRepo != nil {
			if snap, err := s.snapRepo.Latest(ctx); err == nil && snap != nil {
				return metricsLoadedMsg{
					Metrics: recommend.ProfileMetrics(snap.Data.Profile),
					Source:  "ranked by your constitution",
				}
			}
		}
		return metricsLoadedMsg{Metrics: recommend.MetricVector{}, Source: "showing the full library"}
	}
}

func (s *RecommendationsScreen) Title() string {
	return "Recommendations"
}

func (s *RecommendationsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Category"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RecommendationsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case metricsLoadedMsg:
		s.metrics = msg.Metrics
		s.source = msg.Source
		s.loaded = true
		s.rerank()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			s.catIndex--
			if s.catIndex < 0 {
				s.catIndex = len(s.categories) - 1
			}
			s.rerank()
		case "right", "l", "tab":
			s.catIndex = (s.catIndex + 1) % len(s.categories)
			s.rerank()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.ranked)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *RecommendationsScreen) rerank() {
	s.ranked = recommend.Rank(recommend.Library(), s.metrics, s.categories[s.catIndex])
	s.selected = 0
	s.expanded = make(map[int]bool)
}

func (s *RecommendationsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading recommendations...")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(s.source)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs()))
	b.WriteString("\n\n")

	if len(s.ranked) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("Nothing in this category yet.")))
		return b.String()
	}

	for i, rec := range s.ranked {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s · %s", prefix, rec.EnglishName, rec.SanskritName)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		catTag := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  (%s)", rec.Category))

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)+catTag))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetail(rec, width))
		}
	}

	return b.String()
}

func (s *RecommendationsScreen) renderTabs() string {
	parts := make([]string, 0, len(s.categories))
	for i, cat := range s.categories {
		label := string(cat)
		if cat == recommend.CategoryAll {
			label = "all"
		}
		if i == s.catIndex {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Padding(0, 1).
				Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Padding(0, 1).
				Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (s *RecommendationsScreen) renderDetail(rec recommend.Recommendation, width int) string {
	detailWidth := min(width-16, 56)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(detailWidth)

	var d strings.Builder
	d.WriteString(body.Render(rec.Description))
	d.WriteString("\n\n")

	if len(rec.Benefits) > 0 {
		d.WriteString(dim.Render("Benefits"))
		d.WriteString("\n")
		for _, benefit := range rec.Benefits {
			d.WriteString(body.Render("• " + benefit))
			d.WriteString("\n")
		}
		d.WriteString("\n")
	}

	if len(rec.Instructions) > 0 {
		d.WriteString(dim.Render("How to practice"))
		d.WriteString("\n")
		for n, step := range rec.Instructions {
			d.WriteString(body.Render(fmt.Sprintf("%d. %s", n+1, step)))
			d.WriteString("\n")
		}
		d.WriteString("\n")
	}

	if len(rec.Contraindications) > 0 {
		d.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("Take care"))
		d.WriteString("\n")
		for _, c := range rec.Contraindications {
			d.WriteString(body.Render("• " + c))
			d.WriteString("\n")
		}
		d.WriteString("\n")
	}

	d.WriteString(dim.Render(fmt.Sprintf("Dosha effect: vata %+d, pitta %+d, kapha %+d",
		rec.DoshaEffect.Vata, rec.DoshaEffect.Pitta, rec.DoshaEffect.Kapha)))
	d.WriteString("\n")

	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(d.String())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, boxed) + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

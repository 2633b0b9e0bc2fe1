package checkin

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BHARTIYAYASH/manasveda/internal/checkin"
	"github.com/BHARTIYAYASH/manasveda/internal/recommend"
	"github.com/BHARTIYAYASH/manasveda/internal/router"
	"github.com/BHARTIYAYASH/manasveda/internal/screen"
	"github.com/BHARTIYAYASH/manasveda/internal/store"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/components"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/layout"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/theme"
)

var prompts = []struct {
	Field string
	Text  string
}{
	{"mood", "How is your mood today?"},
	{"energy", "How is your energy?"},
	{"stress", "How stressed do you feel?"},
	{"sleep", "How well did you sleep last night?"},
}

// CheckinScreen collects the daily self-report.
type CheckinScreen struct {
	eventRepo store.EventRepo

	step    int // index into prompts; len(prompts) = notes, beyond = done
	ratings []int
	input   components.TextInput
	notes   components.TextInput

	check     checkin.DailyCheck
	practices []recommend.Recommendation
	saved     bool
	errMsg    string
}

var _ screen.Screen = (*CheckinScreen)(nil)
var _ screen.KeyHintProvider = (*CheckinScreen)(nil)

// New creates a new CheckinScreen.
func New(eventRepo store.EventRepo) *CheckinScreen {
	return &CheckinScreen{
		eventRepo: eventRepo,
		input:     components.NewTextInput("1-10", true, 2),
		notes:     components.NewTextInput("anything on your mind? (optional)", false, 120),
	}
}

func (c *CheckinScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *CheckinScreen) Title() string {
	return "Daily Check-in"
}

func (c *CheckinScreen) KeyHints() []layout.KeyHint {
	if c.saved {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (c *CheckinScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "esc":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return c.advance()
		}
	}

	if c.saved {
		return c, nil
	}

	var cmd tea.Cmd
	if c.step < len(prompts) {
		c.input, cmd = c.input.Update(msg)
	} else {
		c.notes, cmd = c.notes.Update(msg)
	}
	return c, cmd
}

// advance commits the current field and moves to the next one, saving
// the check-in after the notes field.
func (c *CheckinScreen) advance() (screen.Screen, tea.Cmd) {
	if c.saved {
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if c.step < len(prompts) {
		value, err := c.input.NumericValue()
		if err != nil || value < checkin.RatingMin || value > checkin.RatingMax {
			c.errMsg = fmt.Sprintf("please enter a number from %d to %d", checkin.RatingMin, checkin.RatingMax)
			return c, nil
		}
		c.errMsg = ""
		c.ratings = append(c.ratings, value)
		c.step++
		if c.step < len(prompts) {
			c.input = components.NewTextInput("1-10", true, 2)
			return c, c.input.Init()
		}
		return c, c.notes.Init()
	}

	// Notes entered; persist.
	c.check = checkin.DailyCheck{
		Mood:    c.ratings[0],
		Energy:  c.ratings[1],
		Stress:  c.ratings[2],
		Sleep:   c.ratings[3],
		Notes:   strings.TrimSpace(c.notes.Value()),
		TakenAt: time.Now(),
	}
	if err := c.check.Validate(); err != nil {
		c.errMsg = err.Error()
		return c, nil
	}

	if c.eventRepo != nil {
		err := c.eventRepo.AppendCheckin(context.Background(), store.CheckinEventData{
			Mood:   c.check.Mood,
			Energy: c.check.Energy,
			Stress: c.check.Stress,
			Sleep:  c.check.Sleep,
			Notes:  c.check.Notes,
		})
		if err != nil {
			c.errMsg = err.Error()
			return c, nil
		}
	}

	ranked := recommend.Rank(recommend.Library(), c.check.Metrics(), recommend.CategoryAll)
	if len(ranked) > 2 {
		ranked = ranked[:2]
	}
	c.practices = ranked
	c.saved = true
	return c, nil
}

func (c *CheckinScreen) View(width, height int) string {
	if c.saved {
		return c.renderDone(width, height)
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("step %d of %d", min(c.step+1, len(prompts)+1), len(prompts)+1)))
	b.WriteString("\n\n")

	if c.step < len(prompts) {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(prompts[c.step].Text))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("1 = very low · 10 = very high"))
		b.WriteString("\n\n")
		b.WriteString(c.input.View())
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Any notes for today?"))
		b.WriteString("\n\n")
		b.WriteString(c.notes.View())
	}

	if c.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(c.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (c *CheckinScreen) renderDone(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Check-in saved"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("mood %d · energy %d · stress %d · sleep %d",
			c.check.Mood, c.check.Energy, c.check.Stress, c.check.Sleep)))
	b.WriteString("\n\n")

	if len(c.practices) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Suggested for today"))
		b.WriteString("\n")
		for _, p := range c.practices {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render(fmt.Sprintf("  %s · %s", p.EnglishName, p.SanskritName)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("press enter to finish"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package journey

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/BHARTIYAYASH/manasveda/internal/bank"
	sess "github.com/BHARTIYAYASH/manasveda/internal/session"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/components"
	"github.com/BHARTIYAYASH/manasveda/internal/ui/theme"
)

func (j *JourneyScreen) View(width, height int) string {
	if j.errMsg != "" {
		return renderError(width, j.errMsg)
	}
	if j.quitConfirm {
		return renderQuitConfirm(width)
	}

	switch j.state.Screen {
	case sess.ScreenWelcome:
		return j.renderWelcome(width, height)
	case sess.ScreenRooms:
		return j.renderRooms(width, height)
	case sess.ScreenQuestion:
		return j.renderQuestion(width, height)
	case sess.ScreenResults:
		return j.renderResults(width, height)
	}
	return ""
}

func (j *JourneyScreen) renderWelcome(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("A journey through four rooms"))
	b.WriteString("\n\n")

	intro := lipgloss.NewStyle().
		Width(min(width-8, 64)).
		Foreground(theme.Text).
		Render("You will walk through four rooms, each holding a handful of " +
			"questions about how you think, digest, move, and settle. There " +
			"are no right answers. Answer honestly and your dosha " +
			"constitution will take shape at the end.")
	b.WriteString(intro)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(fmt.Sprintf("%d rooms · %d questions · +%d points per room",
			bank.RoomCount(), bank.QuestionCount(), sess.CompletionBonus)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("press enter to begin"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (j *JourneyScreen) renderRooms(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Choose a room"))
	b.WriteString("\n\n")

	for i, room := range bank.Rooms() {
		done := j.state.Completed[room.ID]

		marker := "○"
		if done {
			marker = "●"
		}

		name := fmt.Sprintf("%s %s · %s", marker, room.Name, room.SanskritName)

		var line string
		switch {
		case done:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(name + "  (complete)")
		case i == j.roomCursor:
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render("▸ " + name)
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).
				Render("  " + name)
		}
		b.WriteString(line)
		b.WriteString("\n")

		desc := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("    " + room.Description)
		b.WriteString(desc)
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("✦ %d pts · %d/%d rooms complete",
			j.state.Points, j.state.CompletedCount(), bank.RoomCount())))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (j *JourneyScreen) renderQuestion(width, height int) string {
	room, err := bank.GetRoom(j.state.ActiveRoomID)
	if err != nil {
		return renderError(width, err.Error())
	}

	var b strings.Builder

	progress := fmt.Sprintf("%s · question %d of %d",
		room.Name, j.state.Cursor+1, len(room.Questions))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(progress))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", min(width-8, 60))))
	b.WriteString("\n\n")

	b.WriteString(j.option.View())

	if q, err := j.state.CurrentQuestion(); err == nil {
		if prev, ok := j.state.AnswerFor(q.ID); ok {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render(fmt.Sprintf("previously answered: %s", prev.Option)))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (j *JourneyScreen) renderResults(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Your constitution"))
	b.WriteString("\n\n")

	barWidth := min(width-12, 48)
	b.WriteString(components.NewDoshaBar("vata ", j.profile.Vata/100, barWidth).View())
	b.WriteString("\n")
	b.WriteString(components.NewDoshaBar("pitta", j.profile.Pitta/100, barWidth).View())
	b.WriteString("\n")
	b.WriteString(components.NewDoshaBar("kapha", j.profile.Kapha/100, barWidth).View())
	b.WriteString("\n\n")

	dominant := j.profile.Dominant()
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("Dominant: "))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.DoshaColor(dominant)).
		Bold(true).
		Render(dominant))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("    ✦ %d pts earned", j.state.Points)))
	b.WriteString("\n\n")

	if len(j.practices) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Practices for your balance"))
		b.WriteString("\n")
		for _, p := range j.practices {
			line := fmt.Sprintf("  %s · %s", p.EnglishName, p.SanskritName)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case j.note != nil:
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(j.note.Headline))
		b.WriteString("\n")
		body := lipgloss.NewStyle().
			Width(min(width-12, 60)).
			Foreground(theme.Text).
			Render(j.note.Body)
		b.WriteString(body)
		b.WriteString("\n")
	case j.noteWaiting:
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("writing your wellness note..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("press enter to finish"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave your journey?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far will not be scored."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

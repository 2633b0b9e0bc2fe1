package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/BHARTIYAYASH/manasveda/internal/ui/theme"
)

// OptionList is a single-choice selector for assessment questions.
// There is no right answer; a submitted choice can be reopened so the
// user may revise it.
type OptionList struct {
	Prompt      string
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int
}

// NewOptionList creates a new option list.
func NewOptionList(prompt string, options []string) OptionList {
	return OptionList{
		Prompt:      prompt,
		Options:     options,
		Selected:    0,
		Submitted:   false,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Submitted {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "enter":
		o.Submitted = true
		o.ChosenIndex = o.Selected
	}

	return o, nil
}

// Reopen clears the submitted state so the choice can be revised.
// The previous choice stays highlighted as the cursor position.
func (o OptionList) Reopen() OptionList {
	if o.Submitted {
		o.Selected = o.ChosenIndex
	}
	o.Submitted = false
	return o
}

// View renders the option list.
func (o OptionList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(o.Prompt) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E"}

	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == o.Selected && !o.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if o.Submitted {
			if i == o.ChosenIndex {
				s += theme.Chosen.Render("✓ "+line[2:]) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == o.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// Chosen returns the submitted option text, or "" when nothing has
// been submitted yet.
func (o OptionList) Chosen() string {
	if !o.Submitted || o.ChosenIndex < 0 || o.ChosenIndex >= len(o.Options) {
		return ""
	}
	return o.Options[o.ChosenIndex]
}

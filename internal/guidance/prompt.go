package guidance

import (
	"fmt"
	"strings"
)

const noteSystemPrompt = `You are a calm, grounded Ayurvedic wellness guide. A user has completed a self-assessment and you are writing them a short personal note. Be warm and specific, never clinical or alarmist. Never give medical advice.`

func buildNoteUserMessage(input NoteInput) string {
	var b strings.Builder

	b.WriteString("Dosha profile:\n")
	b.WriteString(fmt.Sprintf("- Vata: %.1f%%\n", input.Profile.Vata))
	b.WriteString(fmt.Sprintf("- Pitta: %.1f%%\n", input.Profile.Pitta))
	b.WriteString(fmt.Sprintf("- Kapha: %.1f%%\n", input.Profile.Kapha))
	b.WriteString(fmt.Sprintf("- Dominant: %s\n", input.Profile.Dominant()))

	if input.LatestCheckin != nil {
		c := input.LatestCheckin
		b.WriteString(fmt.Sprintf("\nToday's check-in (1-10): mood %d, energy %d, stress %d, sleep %d\n",
			c.Mood, c.Energy, c.Stress, c.Sleep))
		if c.Notes != "" {
			b.WriteString(fmt.Sprintf("Notes: %s\n", c.Notes))
		}
	}

	b.WriteString("\nRecommended practices:\n")
	if len(input.Practices) == 0 {
		b.WriteString("None\n")
	} else {
		for _, p := range input.Practices {
			b.WriteString(fmt.Sprintf("- %s (%s): %s\n", p.EnglishName, p.Category, p.Description))
		}
	}

	b.WriteString(`
Instructions:
Write a short personal note:
1. A warm headline (4-8 words) that names the dominant dosha quality without jargon.
2. A body of 3-5 sentences relating the profile to everyday experience. Mention the check-in if one is given.
3. 2-3 one-line suggestions, each drawn from the recommended practices above. Do not invent practices.
Keep the whole note under 120 words. Plain language only.`)

	return b.String()
}

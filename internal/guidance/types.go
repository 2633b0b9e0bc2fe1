// Package guidance turns a constitution profile and its top-ranked
// practices into a short personal wellness note via the LLM layer.
package guidance

import (
	"github.com/BHARTIYAYASH/manasveda/internal/checkin"
	"github.com/BHARTIYAYASH/manasveda/internal/dosha"
	"github.com/BHARTIYAYASH/manasveda/internal/recommend"
)

// NoteInput carries everything the note generator needs.
type NoteInput struct {
	Profile dosha.Profile
	Points  int

	// Practices are the top-ranked recommendations for the profile.
	Practices []recommend.Recommendation

	// LatestCheckin is today's self-report, when one exists.
	LatestCheckin *checkin.DailyCheck
}

// Note is the generated wellness note.
type Note struct {
	Headline  string
	Body      string
	Practices []string
}

// Config holds note generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for note generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.5,
	}
}

package bank

// QuestionKind selects how a question is framed on screen.
// Scoring treats all kinds identically.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "mcq"
	KindFlashcard      QuestionKind = "flashcard"
	KindBodyScan       QuestionKind = "body"
	KindTracking       QuestionKind = "tracking"
)

// Label returns a human-readable name for the question kind.
func (k QuestionKind) Label() string {
	switch k {
	case KindMultipleChoice:
		return "Multiple Choice"
	case KindFlashcard:
		return "Flashcard"
	case KindBodyScan:
		return "Body Scan"
	case KindTracking:
		return "Tracking"
	default:
		return string(k)
	}
}

// Question is a single prompt with a fixed, ordered option set.
type Question struct {
	ID       string
	Prompt   string
	Kind     QuestionKind
	Options  []string
	ImageRef string
}

// Room groups an ordered sequence of questions under a shared theme.
type Room struct {
	ID           string
	Name         string
	SanskritName string
	Description  string
	Questions    []Question
}

// LastIndex returns the index of the room's final question.
func (r Room) LastIndex() int {
	return len(r.Questions) - 1
}

// Weights is the dosha delta a chosen option contributes to the profile.
// Values may be negative; the scoring engine clamps after accumulation.
type Weights struct {
	Vata  float64
	Pitta float64
	Kapha float64
}

package dosha

import (
	"github.com/BHARTIYAYASH/manasveda/internal/bank"
	"github.com/BHARTIYAYASH/manasveda/internal/session"
)

// WeightLookup resolves the dosha deltas for a chosen option.
// bank.OptionWeights is the production implementation.
type WeightLookup func(questionID, option string) (bank.Weights, error)

// Score computes a constitution profile from the committed answers.
// Unanswered questions contribute nothing, and an empty answer set
// yields the neutral split. An answer whose option has no weight entry
// surfaces the bank's *UnknownOptionError.
func Score(answers []session.Answer) (Profile, error) {
	return scoreWith(bank.OptionWeights, answers)
}

func scoreWith(lookup WeightLookup, answers []session.Answer) (Profile, error) {
	var vata, pitta, kapha float64

	for _, a := range answers {
		w, err := lookup(a.QuestionID, a.Option)
		if err != nil {
			return Profile{}, err
		}

		// Revised answers carry less conviction.
		damp := 1.0 / float64(1+a.Revisions)
		vata += w.Vata * damp
		pitta += w.Pitta * damp
		kapha += w.Kapha * damp
	}

	// Negative accumulations flatten to zero before normalizing.
	vata = max(vata, 0)
	pitta = max(pitta, 0)
	kapha = max(kapha, 0)

	total := vata + pitta + kapha
	if total == 0 {
		return Neutral, nil
	}

	return Profile{
		Vata:  vata / total * 100,
		Pitta: pitta / total * 100,
		Kapha: kapha / total * 100,
	}, nil
}

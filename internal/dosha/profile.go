package dosha

import "fmt"

// Profile is a normalized constitution split. The three axes always sum
// to 100 within rounding tolerance.
type Profile struct {
	Vata  float64
	Pitta float64
	Kapha float64
}

// Neutral is the profile returned when no answer carries any weight:
// an even split, with the remainder placed on kapha for order stability.
var Neutral = Profile{Vata: 33.3, Pitta: 33.3, Kapha: 33.4}

// Dominant returns the name of the strongest axis. Ties resolve in
// vata, pitta, kapha order.
func (p Profile) Dominant() string {
	switch {
	case p.Vata >= p.Pitta && p.Vata >= p.Kapha:
		return "vata"
	case p.Pitta >= p.Kapha:
		return "pitta"
	default:
		return "kapha"
	}
}

// String renders the profile as percentages.
func (p Profile) String() string {
	return fmt.Sprintf("vata %.1f%% / pitta %.1f%% / kapha %.1f%%", p.Vata, p.Pitta, p.Kapha)
}

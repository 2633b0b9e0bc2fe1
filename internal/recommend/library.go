package recommend

// library is the seeded intervention catalog. Declaration order is the
// tiebreak order for ranking, so entries are kept in authoring order.
var library = []Recommendation{
	{
		ID:           "shavasana",
		Category:     CategoryYoga,
		SanskritName: "शवासन",
		EnglishName:  "Shavasana (Corpse Pose)",
		Description:  "A relaxation pose that calms the mind and reduces stress.",
		Benefits: []string{
			"Reduces stress and anxiety",
			"Calms the nervous system",
			"Improves sleep quality",
		},
		Instructions: []string{
			"Lie flat on your back",
			"Arms relaxed by your sides",
			"Close your eyes and breathe naturally",
			"Hold for 5-10 minutes",
		},
		MetricWeights: map[string]float64{
			MetricStress:  -30,
			MetricAnxiety: -25,
		},
		DoshaEffect: DoshaEffect{Vata: -2, Pitta: -2, Kapha: 1},
	},
	{
		ID:           "anulom-vilom",
		Category:     CategoryMeditation,
		SanskritName: "अनुलोम विलोम",
		EnglishName:  "Anulom Vilom (Alternate Nostril Breathing)",
		Description:  "A pranayama technique that balances the nervous system.",
		Benefits: []string{
			"Reduces anxiety and stress",
			"Improves focus and concentration",
			"Balances the doshas",
		},
		Instructions: []string{
			"Sit in a comfortable position",
			"Close right nostril with thumb",
			"Inhale through left nostril",
			"Close left nostril, open right",
			"Exhale through right nostril",
		},
		MetricWeights: map[string]float64{
			MetricAnxiety: -35,
			MetricStress:  -20,
		},
		DoshaEffect: DoshaEffect{Vata: -2, Pitta: -2, Kapha: -1},
	},
	{
		ID:           "sattvic-diet",
		Category:     CategoryDiet,
		SanskritName: "सात्त्विक आहार",
		EnglishName:  "Sattvic Diet",
		Description:  "Pure, wholesome foods that promote mental clarity and calmness.",
		Benefits: []string{
			"Enhances mental clarity",
			"Reduces stress and anxiety",
			"Improves overall well-being",
		},
		Instructions: []string{
			"Include fresh fruits and vegetables",
			"Whole grains and legumes",
			"Avoid processed foods",
			"Eat mindfully and at regular times",
		},
		MetricWeights: map[string]float64{
			MetricStress:    -15,
			MetricConfusion: -20,
		},
		DoshaEffect: DoshaEffect{Vata: -1, Pitta: -2, Kapha: -1},
	},
	{
		ID:           "brahma-muhurta",
		Category:     CategoryLifestyle,
		SanskritName: "ब्रह्म मुहूर्त",
		EnglishName:  "Brahma Muhurta (Early Morning Routine)",
		Description:  "Waking up during the auspicious morning hours for enhanced learning and mental clarity.",
		Benefits: []string{
			"Improves learning capacity",
			"Enhances mental clarity",
			"Reduces stress levels",
		},
		Instructions: []string{
			"Wake up 96 minutes before sunrise",
			"Practice meditation or yoga",
			"Study during these hours",
			"Maintain consistency",
		},
		MetricWeights: map[string]float64{
			MetricConfusion: -25,
			MetricStress:    -15,
		},
		DoshaEffect: DoshaEffect{Vata: -1, Pitta: 1, Kapha: -2},
	},
	{
		ID:           "vrikshasana",
		Category:     CategoryYoga,
		SanskritName: "वृक्षासन",
		EnglishName:  "Vrikshasana (Tree Pose)",
		Description:  "A standing balance pose that builds steadiness and focus.",
		Benefits: []string{
			"Improves concentration",
			"Builds physical and mental stability",
			"Counters lethargy",
		},
		Instructions: []string{
			"Stand tall on one leg",
			"Place the other foot on the inner thigh",
			"Bring palms together at the chest",
			"Hold for 30-60 seconds each side",
		},
		Contraindications: []string{
			"Avoid with vertigo or balance disorders",
		},
		MetricWeights: map[string]float64{
			MetricConfusion:  -15,
			MetricEngagement: 20,
		},
		DoshaEffect: DoshaEffect{Vata: -1, Kapha: -2},
	},
	{
		ID:           "trataka",
		Category:     CategoryMeditation,
		SanskritName: "त्राटक",
		EnglishName:  "Trataka (Candle Gazing)",
		Description:  "A concentration practice of steady gazing at a single point.",
		Benefits: []string{
			"Strengthens focus and willpower",
			"Quiets a fearful or scattered mind",
		},
		Instructions: []string{
			"Sit with a candle flame at eye level",
			"Gaze at the flame without blinking",
			"Close your eyes and hold the afterimage",
			"Repeat for 5-10 minutes",
		},
		Contraindications: []string{
			"Avoid with eye strain or glaucoma",
		},
		MetricWeights: map[string]float64{
			MetricFear:      -20,
			MetricConfusion: -15,
		},
		DoshaEffect: DoshaEffect{Vata: -1, Pitta: 1, Kapha: -1},
	},
	{
		ID:           "triphala",
		Category:     CategoryDiet,
		SanskritName: "त्रिफला",
		EnglishName:  "Triphala (Three-Fruit Blend)",
		Description:  "A traditional herbal preparation taken to support digestion and steady energy.",
		Benefits: []string{
			"Supports digestion",
			"Steadies daily energy",
		},
		Instructions: []string{
			"Take half a teaspoon with warm water",
			"Best before sleep",
		},
		Contraindications: []string{
			"Not during pregnancy",
			"Consult a practitioner alongside medication",
		},
		MetricWeights: map[string]float64{
			MetricEngagement: 10,
			MetricStress:     -10,
		},
		DoshaEffect: DoshaEffect{Vata: -1, Pitta: -1, Kapha: -1},
	},
	{
		ID:           "abhyanga",
		Category:     CategoryLifestyle,
		SanskritName: "अभ्यंग",
		EnglishName:  "Abhyanga (Warm Oil Self-Massage)",
		Description:  "A grounding self-massage with warm oil before bathing.",
		Benefits: []string{
			"Settles anxiety and fear",
			"Grounds an overactive mind",
			"Nourishes the skin and joints",
		},
		Instructions: []string{
			"Warm sesame or coconut oil",
			"Massage from head to toe in long strokes",
			"Rest 10 minutes, then bathe warm",
		},
		Contraindications: []string{
			"Skip during fever or acute illness",
		},
		MetricWeights: map[string]float64{
			MetricAnxiety: -20,
			MetricFear:    -15,
		},
		DoshaEffect: DoshaEffect{Vata: -2, Pitta: -1, Kapha: 1},
	},
}

// Library returns the seeded catalog in declaration order. The caller
// receives a copy; entries themselves are shared and must be treated
// as read-only.
func Library() []Recommendation {
	out := make([]Recommendation, len(library))
	copy(out, library)
	return out
}

// Categories returns the filterable categories in display order.
func Categories() []Category {
	return []Category{CategoryYoga, CategoryMeditation, CategoryDiet, CategoryLifestyle}
}

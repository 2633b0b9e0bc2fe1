package bank

// The Prashna journey content: four rooms, three questions each.
// Option weights follow classical dosha keywords — variable/quick/light
// leans vata, intense/sharp/driven leans pitta, steady/slow/heavy leans
// kapha. Mixed options split their weight across two doshas.

func init() {
	c = buildCatalog(seedRooms(), seedWeights())
	if err := Validate(); err != nil {
		panic("bank: invalid seed content: " + err.Error())
	}
}

func seedRooms() []Room {
	return []Room{
		{
			ID:           "vichar",
			Name:         "Thought Room",
			SanskritName: "विचार कक्ष",
			Description:  "Explore your decision-making patterns through real-life scenarios",
			Questions: []Question{
				{
					ID:     "v1",
					Prompt: "When faced with a difficult decision, you typically:",
					Kind:   KindFlashcard,
					Options: []string{
						"Take immediate action based on instinct",
						"Analyze all possible outcomes thoroughly",
						"Seek advice from others before deciding",
						"Postpone the decision until absolutely necessary",
					},
				},
				{
					ID:     "v2",
					Prompt: "When plans change at the last minute, you:",
					Kind:   KindMultipleChoice,
					Options: []string{
						"Adapt instantly and improvise",
						"Get frustrated that the plan broke",
						"Go along calmly with the new plan",
						"Feel unsettled for the rest of the day",
					},
				},
				{
					ID:     "v3",
					Prompt: "Your stream of thought is best described as:",
					Kind:   KindFlashcard,
					Options: []string{
						"Fast-moving and easily scattered",
						"Focused and goal-driven",
						"Slow, steady and methodical",
						"Quiet until something sparks it",
					},
				},
			},
		},
		{
			ID:           "agni",
			Name:         "Fire Room",
			SanskritName: "अग्नि कक्ष",
			Description:  "Test your stress response and emotional resilience",
			Questions: []Question{
				{
					ID:     "a1",
					Prompt: "Under pressure, you tend to:",
					Kind:   KindMultipleChoice,
					Options: []string{
						"Feel energized and focused",
						"Become anxious and overwhelmed",
						"Get irritable and impatient",
						"Withdraw and seek solitude",
					},
				},
				{
					ID:     "a2",
					Prompt: "When someone criticizes your work, you:",
					Kind:   KindMultipleChoice,
					Options: []string{
						"Replay it in your mind for days",
						"Defend your position on the spot",
						"Let it pass without much sting",
						"Quietly avoid that person afterwards",
					},
				},
				{
					ID:     "a3",
					Prompt: "Your temper is:",
					Kind:   KindFlashcard,
					Options: []string{
						"Quick to flare, quick to fade",
						"Slow to rise but long-burning",
						"Rarely provoked at all",
						"Unpredictable, it depends on the day",
					},
				},
			},
		},
		{
			ID:           "sharir",
			Name:         "Body Room",
			SanskritName: "शरीर कक्ष",
			Description:  "Understand your physical constitution and tendencies",
			Questions: []Question{
				{
					ID:     "s1",
					Prompt: "How would you describe your typical energy levels throughout the day?",
					Kind:   KindBodyScan,
					Options: []string{
						"Variable and unpredictable",
						"Sharp and intense",
						"Steady and sustained",
						"Slow to start but long-lasting",
					},
				},
				{
					ID:     "s2",
					Prompt: "Your sleep is usually:",
					Kind:   KindBodyScan,
					Options: []string{
						"Light and easily disturbed",
						"Short but deep enough",
						"Long and heavy",
						"Irregular, different every night",
					},
				},
				{
					ID:     "s3",
					Prompt: "Your appetite is:",
					Kind:   KindBodyScan,
					Options: []string{
						"Erratic, sometimes I forget to eat",
						"Strong, I get sharp when hungry",
						"Mild, I can skip meals easily",
						"Comfort-driven more than hunger-driven",
					},
				},
			},
		},
		{
			ID:           "chanchal",
			Name:         "Unstable Room",
			SanskritName: "चंचल कक्ष",
			Description:  "Explore patterns of uncertainty and mental fluctuations",
			Questions: []Question{
				{
					ID:     "c1",
					Prompt: "When making choices, how often do you second-guess yourself?",
					Kind:   KindTracking,
					Options: []string{
						"Rarely - I trust my initial instincts",
						"Sometimes - only for important decisions",
						"Often - I like to consider all angles",
						"Very often - I frequently change my mind",
					},
				},
				{
					ID:     "c2",
					Prompt: "Halfway through a long project, your attention usually:",
					Kind:   KindTracking,
					Options: []string{
						"Jumps to a newer, shinier idea",
						"Locks in harder until it is finished",
						"Stays even, progress is progress",
						"Dips and needs outside encouragement",
					},
				},
				{
					ID:     "c3",
					Prompt: "Your daily routine is:",
					Kind:   KindTracking,
					Options: []string{
						"Different every day, by design",
						"Structured around goals and targets",
						"The same comfortable rhythm for years",
						"A routine I keep trying to start",
					},
				},
			},
		},
	}
}

func seedWeights() map[string]map[string]Weights {
	return map[string]map[string]Weights{
		"v1": {
			"Take immediate action based on instinct":          {Vata: 2, Pitta: 1, Kapha: 0},
			"Analyze all possible outcomes thoroughly":         {Vata: 0, Pitta: 2, Kapha: 0},
			"Seek advice from others before deciding":          {Vata: 1, Pitta: 0, Kapha: 2},
			"Postpone the decision until absolutely necessary": {Vata: 1, Pitta: 0, Kapha: 2},
		},
		"v2": {
			"Adapt instantly and improvise":          {Vata: 2, Pitta: 0, Kapha: 0},
			"Get frustrated that the plan broke":     {Vata: 0, Pitta: 2, Kapha: 0},
			"Go along calmly with the new plan":      {Vata: 0, Pitta: 0, Kapha: 2},
			"Feel unsettled for the rest of the day": {Vata: 2, Pitta: 0, Kapha: 1},
		},
		"v3": {
			"Fast-moving and easily scattered": {Vata: 2, Pitta: 0, Kapha: 0},
			"Focused and goal-driven":          {Vata: 0, Pitta: 2, Kapha: 0},
			"Slow, steady and methodical":      {Vata: 0, Pitta: 0, Kapha: 2},
			"Quiet until something sparks it":  {Vata: 1, Pitta: 0, Kapha: 1},
		},
		"a1": {
			"Feel energized and focused":      {Vata: 0, Pitta: 2, Kapha: 0},
			"Become anxious and overwhelmed":  {Vata: 2, Pitta: 0, Kapha: 0},
			"Get irritable and impatient":     {Vata: 1, Pitta: 2, Kapha: 0},
			"Withdraw and seek solitude":      {Vata: 0, Pitta: 0, Kapha: 2},
		},
		"a2": {
			"Replay it in your mind for days":      {Vata: 2, Pitta: 0, Kapha: 0},
			"Defend your position on the spot":     {Vata: 0, Pitta: 2, Kapha: 0},
			"Let it pass without much sting":       {Vata: 0, Pitta: 0, Kapha: 2},
			"Quietly avoid that person afterwards": {Vata: 1, Pitta: 0, Kapha: 2},
		},
		"a3": {
			"Quick to flare, quick to fade":        {Vata: 1, Pitta: 2, Kapha: 0},
			"Slow to rise but long-burning":        {Vata: 0, Pitta: 1, Kapha: 2},
			"Rarely provoked at all":               {Vata: 0, Pitta: 0, Kapha: 2},
			"Unpredictable, it depends on the day": {Vata: 2, Pitta: 0, Kapha: 0},
		},
		"s1": {
			"Variable and unpredictable":     {Vata: 2, Pitta: 0, Kapha: 0},
			"Sharp and intense":              {Vata: 0, Pitta: 2, Kapha: 0},
			"Steady and sustained":           {Vata: 0, Pitta: 1, Kapha: 2},
			"Slow to start but long-lasting": {Vata: 0, Pitta: 0, Kapha: 2},
		},
		"s2": {
			"Light and easily disturbed":       {Vata: 2, Pitta: 0, Kapha: 0},
			"Short but deep enough":            {Vata: 0, Pitta: 2, Kapha: 0},
			"Long and heavy":                   {Vata: 0, Pitta: 0, Kapha: 2},
			"Irregular, different every night": {Vata: 2, Pitta: 1, Kapha: 0},
		},
		"s3": {
			"Erratic, sometimes I forget to eat":      {Vata: 2, Pitta: 0, Kapha: 0},
			"Strong, I get sharp when hungry":         {Vata: 0, Pitta: 2, Kapha: 0},
			"Mild, I can skip meals easily":           {Vata: 1, Pitta: 0, Kapha: 1},
			"Comfort-driven more than hunger-driven":  {Vata: 0, Pitta: 0, Kapha: 2},
		},
		"c1": {
			"Rarely - I trust my initial instincts":       {Vata: 0, Pitta: 2, Kapha: 0},
			"Sometimes - only for important decisions":    {Vata: 0, Pitta: 1, Kapha: 1},
			"Often - I like to consider all angles":       {Vata: 1, Pitta: 1, Kapha: 0},
			"Very often - I frequently change my mind":    {Vata: 2, Pitta: 0, Kapha: 0},
		},
		"c2": {
			"Jumps to a newer, shinier idea":        {Vata: 2, Pitta: 0, Kapha: 0},
			"Locks in harder until it is finished":  {Vata: 0, Pitta: 2, Kapha: 0},
			"Stays even, progress is progress":      {Vata: 0, Pitta: 0, Kapha: 2},
			"Dips and needs outside encouragement":  {Vata: 1, Pitta: 0, Kapha: 1},
		},
		"c3": {
			"Different every day, by design":          {Vata: 2, Pitta: 0, Kapha: 0},
			"Structured around goals and targets":     {Vata: 0, Pitta: 2, Kapha: 0},
			"The same comfortable rhythm for years":   {Vata: 0, Pitta: 0, Kapha: 2},
			"A routine I keep trying to start":        {Vata: 2, Pitta: 0, Kapha: 1},
		},
	}
}

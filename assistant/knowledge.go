package assistant

import "strings"

// curated local answers, checked before any network hop. Matching is plain
// string work: an exact normalized question, or all keywords present.
type knowledgeEntry struct {
	Question string
	Keywords []string
	Answer   string
}

var knowledgeBase = []knowledgeEntry{
	{
		Question: "what is the best time to visit puducherry",
		Keywords: []string{"best", "time", "visit"},
		Answer:   "October to March is the best time to visit Puducherry — the weather is pleasant (20–30°C) and it suits beach walks, café hopping and Auroville day trips. Avoid April–June unless you are fine with humid 35°C+ days.",
	},
	{
		Question: "how do i reach puducherry",
		Keywords: []string{"how", "reach"},
		Answer:   "Puducherry is about 3.5 hours from Chennai by road (ECR is the scenic route). Buses run from Chennai CMBT all day, trains connect via Villupuram junction, and the small Puducherry airport has limited flights. Most visitors come by road from Chennai or Bengaluru.",
	},
	{
		Question: "what is special about auroville",
		Keywords: []string{"auroville"},
		Answer:   "Auroville is an experimental international township founded in 1968, about 10 km from the city. The golden Matrimandir at its centre is its landmark — day visitors can see it from the viewing point (free passes at the Visitors Centre, go before 4 PM).",
	},
	{
		Question: "is puducherry safe for solo travelers",
		Keywords: []string{"safe", "solo"},
		Answer:   "Yes, Puducherry is considered one of the safer destinations in India for solo travelers. The White Town and Promenade areas are well lit and busy into the evening. Usual precautions apply at isolated beaches after dark.",
	},
	{
		Question: "what food is puducherry famous for",
		Keywords: []string{"food", "famous"},
		Answer:   "Puducherry is known for its Franco-Tamil table: croissants and quiches at French bakeries like Baker Street, creole dishes, seafood along the coast, and classic South Indian thalis at places like Surguru. Don't skip filter coffee at Le Café on the Promenade.",
	},
	{
		Question: "how do i get around puducherry",
		Keywords: []string{"get", "around"},
		Answer:   "The easiest way to get around is a rented scooter (₹300–400/day, shops around Mission Street). Autos are plentiful but fix the fare first. The old town is compact enough to walk, and PRTC town buses cover longer hops like Auroville.",
	},
}

// lookupKnowledge returns the curated answer for a question, if any.
func lookupKnowledge(question string) (string, bool) {
	q := normalize(question)
	if q == "" {
		return "", false
	}

	for _, entry := range knowledgeBase {
		if q == entry.Question {
			return entry.Answer, true
		}
	}
	for _, entry := range knowledgeBase {
		if containsAll(q, entry.Keywords) {
			return entry.Answer, true
		}
	}
	return "", false
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func containsAll(q string, keywords []string) bool {
	for _, k := range keywords {
		if !strings.Contains(q, k) {
			return false
		}
	}
	return len(keywords) > 0
}

package emotion

// maxRecommendations caps the advice returned per analysis
const maxRecommendations = 3

// recommendationRule matches on the analysis context and emits one short,
// actionable suggestion. Plain pattern-matching, not generative text:
// auditability matters more than novelty here.
type recommendationRule struct {
	match func(in RecommendationInput) bool
	text  string
}

// RecommendationInput is the context a rule can match on
type RecommendationInput struct {
	TimeOfDay      string
	Season         string
	PrimaryEmotion string
	TrendDirection string
	MoodScore      float64 // on the mood scale
}

// Recommender emits up to three suggestions from a fixed rule table
type Recommender struct {
	rules []recommendationRule
}

// NewRecommender creates the recommender with the built-in rule table
func NewRecommender() *Recommender {
	return &Recommender{
		rules: []recommendationRule{
			{
				match: func(in RecommendationInput) bool {
					return in.TrendDirection == TrendDeclining
				},
				text: "Ditt mående har sjunkit den senaste tiden – överväg att kontakta en professionell samtalskontakt.",
			},
			{
				match: func(in RecommendationInput) bool {
					return in.Season == Winter && in.MoodScore < MoodScaleMidpoint
				},
				text: "Prova ljusterapi eller en promenad i dagsljus under vinterns mörka månader.",
			},
			{
				match: func(in RecommendationInput) bool {
					return in.TimeOfDay == Night && in.MoodScore < MoodScaleMidpoint
				},
				text: "Sena kvällar kan förstärka tunga tankar – försök varva ner och prioritera sömnen.",
			},
			{
				match: func(in RecommendationInput) bool {
					return in.PrimaryEmotion == Sadness
				},
				text: "Hör av dig till någon du litar på – att dela hur du mår kan göra det lättare.",
			},
			{
				match: func(in RecommendationInput) bool {
					return in.PrimaryEmotion == Fear
				},
				text: "Prova en kort andningsövning: andas in i fyra sekunder och ut i sex.",
			},
			{
				match: func(in RecommendationInput) bool {
					return in.PrimaryEmotion == Anger
				},
				text: "Fysisk aktivitet, som en rask promenad, kan hjälpa dig att släppa irritationen.",
			},
			{
				match: func(in RecommendationInput) bool {
					return in.Season == Summer && in.MoodScore >= MoodScaleMidpoint
				},
				text: "Ta vara på ljuset och energin – planera något utomhus med någon du tycker om.",
			},
			{
				match: func(in RecommendationInput) bool {
					return in.TimeOfDay == Morning && in.TrendDirection == TrendImproving
				},
				text: "Din trend pekar uppåt – håll fast vid dina morgonrutiner.",
			},
			{
				match: func(in RecommendationInput) bool {
					return in.MoodScore >= MoodScaleMidpoint+1.0
				},
				text: "Skriv ner vad som gjorde dagen bra, så blir det lättare att återskapa.",
			},
			{
				match: func(in RecommendationInput) bool {
					return in.MoodScore < MoodScaleMidpoint-1.0
				},
				text: "Var snäll mot dig själv idag – små steg räcker.",
			},
		},
	}
}

// Recommend evaluates the rule table in order and returns at most three
// matching suggestions.
func (r *Recommender) Recommend(in RecommendationInput) []string {
	recommendations := make([]string, 0, maxRecommendations)
	for _, rule := range r.rules {
		if rule.match(in) {
			recommendations = append(recommendations, rule.text)
			if len(recommendations) == maxRecommendations {
				break
			}
		}
	}
	return recommendations
}

package emotion

import (
	"strings"
	"time"
)

// The contextual blender works on the journaling mood scale. The engine's
// canonical valence scale is [-1, 1]; conversion happens at the engine
// boundary, never inside the blender.
const (
	MoodScaleMin      = 0.5
	MoodScaleMax      = 5.5
	MoodScaleMidpoint = 3.0
)

// TimeOfDay buckets
const (
	Morning   = "morning"
	Afternoon = "afternoon"
	Evening   = "evening"
	Night     = "night"
)

// Seasons
const (
	Winter = "winter"
	Spring = "spring"
	Summer = "summer"
	Autumn = "autumn"
)

// Trend directions
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
	TrendUnknown   = "unknown"
)

// trendWindow is the number of most recent scores considered
const trendWindow = 7

// trendNudgeWeight scales the additive pull toward the user's baseline
const trendNudgeWeight = 0.15

// ContextFactors records the contextual adjustments applied to a score,
// surfaced so the result is explainable.
type ContextFactors struct {
	TimeOfDay         string  `json:"time_of_day"`
	Season            string  `json:"season"`
	TrendDirection    string  `json:"trend_direction"`
	TimeFactor        float64 `json:"time_factor"`
	SeasonalFactor    float64 `json:"seasonal_factor"`
	IntensityModifier string  `json:"intensity_modifier,omitempty"`
	Negated           bool    `json:"negated"`
	TrendNudge        float64 `json:"trend_nudge"`
}

// seasonProfile models the documented seasonal-affective pattern in the
// target population: winter amplifies negativity the most, summer lifts
// energy the most.
type seasonProfile struct {
	depressionRisk float64 // applied below the midpoint
	energyLevel    float64 // applied at or above the midpoint
}

var seasonProfiles = map[string]seasonProfile{
	Winter: {depressionRisk: 0.85, energyLevel: 0.95},
	Spring: {depressionRisk: 1.0, energyLevel: 1.05},
	Summer: {depressionRisk: 1.05, energyLevel: 1.1},
	Autumn: {depressionRisk: 0.9, energyLevel: 1.0},
}

var timeFactors = map[string]float64{
	Morning:   1.05,
	Afternoon: 1.0,
	Evening:   0.95,
	Night:     0.9,
}

// intensityModifier pairs a text cue with its multiplicative factor.
// Order matters: the first match wins and only one modifier is applied.
type intensityModifier struct {
	keyword string
	factor  float64
}

var intensityModifiers = []intensityModifier{
	{"extremt", 1.4},
	{"extremely", 1.4},
	{"otroligt", 1.35},
	{"incredibly", 1.35},
	{"väldigt", 1.3},
	{"very", 1.3},
	{"mycket", 1.2},
	{"really", 1.2},
	{"lite grann", 0.85},
	{"a little", 0.9},
	{"lite", 0.9},
	{"slightly", 0.9},
	{"något", 0.95},
	{"somewhat", 0.95},
}

var negationWords = []string{
	"inte", "aldrig", "ej", "icke", "knappast",
	"not", "never", "no longer", "hardly", "don't", "doesn't", "can't", "isn't",
}

// Blender applies contextual, explainable adjustments to a base mood score
type Blender struct{}

// NewBlender creates a contextual blender
func NewBlender() *Blender {
	return &Blender{}
}

// TimeOfDayFor buckets a timestamp's hour
func TimeOfDayFor(t time.Time) string {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 23:
		return Evening
	default:
		return Night
	}
}

// SeasonFor maps a timestamp's month to a meteorological season
func SeasonFor(t time.Time) string {
	switch t.Month() {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Autumn
	}
}

// TrendFor derives the direction of the user's recent mood history,
// given scores on the mood scale, most recent last.
func TrendFor(recent []float64) string {
	if len(recent) < 2 {
		return TrendUnknown
	}

	window := recent
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}

	half := len(window) / 2
	earlier := mean(window[:half])
	later := mean(window[half:])

	switch delta := later - earlier; {
	case delta > 0.15:
		return TrendImproving
	case delta < -0.15:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// Describe derives the contextual situation without adjusting any score.
// Used for check-ins that carry no mood signal.
func (b *Blender) Describe(timestamp time.Time, recentMood []float64) ContextFactors {
	return ContextFactors{
		TimeOfDay:      TimeOfDayFor(timestamp),
		Season:         SeasonFor(timestamp),
		TrendDirection: TrendFor(recentMood),
	}
}

// Blend applies the contextual adjustment pipeline to a base mood score:
// intensity modifier, negation inversion, time-of-day factor, asymmetric
// seasonal factor, then the recent-trend nudge. The score is clamped to
// the valid range after every stage.
//
// text must be normalized; recentMood holds prior scores on the mood
// scale, most recent last.
func (b *Blender) Blend(score float64, text string, timestamp time.Time, recentMood []float64) (float64, ContextFactors) {
	factors := b.Describe(timestamp, recentMood)

	// 1. Intensity: first matching modifier only
	for _, modifier := range intensityModifiers {
		if strings.Contains(text, modifier.keyword) {
			factors.IntensityModifier = modifier.keyword
			score = ClampMood(score * modifier.factor)
			break
		}
	}

	// 2. Negation: invert around the midpoint so a negated strongly-positive
	// phrase becomes strongly-negative rather than neutral
	for _, word := range negationWords {
		if containsWord(text, word) {
			factors.Negated = true
			score = ClampMood(2*MoodScaleMidpoint - score)
			break
		}
	}

	// 3. Time of day
	factors.TimeFactor = timeFactors[factors.TimeOfDay]
	score = ClampMood(score * factors.TimeFactor)

	// 4. Season, asymmetric: the depression-risk factor describes downside
	// risk and must not inflate an already-positive mood
	profile := seasonProfiles[factors.Season]
	if score < MoodScaleMidpoint {
		factors.SeasonalFactor = profile.depressionRisk
	} else {
		factors.SeasonalFactor = profile.energyLevel
	}
	score = ClampMood(score * factors.SeasonalFactor)

	// 5. Trend: weakly anchor new scores near the user's baseline
	if len(recentMood) > 0 {
		window := recentMood
		if len(window) > trendWindow {
			window = window[len(window)-trendWindow:]
		}
		factors.TrendNudge = trendNudgeWeight * (mean(window) - MoodScaleMidpoint)
		score = ClampMood(score + factors.TrendNudge)
	}

	return score, factors
}

// InvertNegation exposes the negation inversion used by the blender
func InvertNegation(score float64) float64 {
	return ClampMood(2*MoodScaleMidpoint - score)
}

// ClampMood clamps a score to the mood scale
func ClampMood(score float64) float64 {
	if score < MoodScaleMin {
		return MoodScaleMin
	}
	if score > MoodScaleMax {
		return MoodScaleMax
	}
	return score
}

// containsWord matches whole words so "not" does not match "nothing"
// matching against substrings with apostrophes is allowed ("don't")
func containsWord(text, word string) bool {
	index := 0
	for {
		found := strings.Index(text[index:], word)
		if found < 0 {
			return false
		}
		start := index + found
		end := start + len(word)

		beforeOK := start == 0 || text[start-1] == ' '
		afterOK := end == len(text) || text[end] == ' ' || text[end] == '.' || text[end] == ',' || text[end] == '!' || text[end] == '?'
		if beforeOK && afterOK {
			return true
		}
		index = end
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

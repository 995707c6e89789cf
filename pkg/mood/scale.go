package mood

import (
	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/mood/emotion"
)

// The engine's canonical sentiment scale is valence in [-1, 1]. The
// journaling frontend uses the mood scale defined in the emotion package.
// These are the only conversions between the two; no other code is allowed
// to mix the scales.
const (
	ValenceMin = -1.0
	ValenceMax = 1.0
)

// moodHalfRange maps one unit of valence onto the mood scale
const moodHalfRange = (emotion.MoodScaleMax - emotion.MoodScaleMidpoint) / ValenceMax

// ClampValence clamps a score to the valence scale
func ClampValence(v float64) float64 {
	if v < ValenceMin {
		return ValenceMin
	}
	if v > ValenceMax {
		return ValenceMax
	}
	return v
}

// ValenceToMood converts canonical valence to the journaling mood scale
func ValenceToMood(v float64) float64 {
	return emotion.ClampMood(emotion.MoodScaleMidpoint + moodHalfRange*ClampValence(v))
}

// MoodToValence converts a journaling mood score back to canonical valence
func MoodToValence(m float64) float64 {
	return ClampValence((emotion.ClampMood(m) - emotion.MoodScaleMidpoint) / moodHalfRange)
}

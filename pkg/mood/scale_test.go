package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/mood/emotion"
)

func TestScaleConversion(t *testing.T) {
	t.Run("anchor points", func(t *testing.T) {
		assert.Equal(t, emotion.MoodScaleMidpoint, ValenceToMood(0))
		assert.Equal(t, emotion.MoodScaleMax, ValenceToMood(1))
		assert.Equal(t, emotion.MoodScaleMin, ValenceToMood(-1))

		assert.Equal(t, 0.0, MoodToValence(emotion.MoodScaleMidpoint))
		assert.Equal(t, 1.0, MoodToValence(emotion.MoodScaleMax))
		assert.Equal(t, -1.0, MoodToValence(emotion.MoodScaleMin))
	})

	t.Run("round trip", func(t *testing.T) {
		for _, valence := range []float64{-1.0, -0.5, -0.1, 0.0, 0.25, 0.8, 1.0} {
			assert.InDelta(t, valence, MoodToValence(ValenceToMood(valence)), 1e-9)
		}
		for _, moodScore := range []float64{0.5, 1.0, 3.0, 4.25, 5.5} {
			assert.InDelta(t, moodScore, ValenceToMood(MoodToValence(moodScore)), 1e-9)
		}
	})

	t.Run("out of range input clamps", func(t *testing.T) {
		assert.Equal(t, emotion.MoodScaleMax, ValenceToMood(3.0))
		assert.Equal(t, emotion.MoodScaleMin, ValenceToMood(-3.0))
		assert.Equal(t, 1.0, MoodToValence(99))
		assert.Equal(t, -1.0, MoodToValence(-99))
	})
}

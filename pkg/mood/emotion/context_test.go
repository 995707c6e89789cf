package emotion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeOfDayFor(t *testing.T) {
	cases := map[int]string{
		5:  Morning,
		11: Morning,
		12: Afternoon,
		17: Afternoon,
		18: Evening,
		22: Evening,
		23: Night,
		2:  Night,
	}
	for hour, expected := range cases {
		timestamp := time.Date(2025, time.June, 1, hour, 30, 0, 0, time.UTC)
		assert.Equal(t, expected, TimeOfDayFor(timestamp), "hour %d", hour)
	}
}

func TestSeasonFor(t *testing.T) {
	cases := map[time.Month]string{
		time.January:  Winter,
		time.February: Winter,
		time.March:    Spring,
		time.May:      Spring,
		time.June:     Summer,
		time.August:   Summer,
		time.October:  Autumn,
		time.December: Winter,
	}
	for month, expected := range cases {
		timestamp := time.Date(2025, month, 15, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, expected, SeasonFor(timestamp), "month %s", month)
	}
}

func TestTrendFor(t *testing.T) {
	assert.Equal(t, TrendUnknown, TrendFor(nil))
	assert.Equal(t, TrendUnknown, TrendFor([]float64{3.0}))
	assert.Equal(t, TrendImproving, TrendFor([]float64{2.0, 2.0, 2.0, 4.0, 4.0, 4.0}))
	assert.Equal(t, TrendDeclining, TrendFor([]float64{4.0, 4.0, 4.0, 2.0, 2.0, 2.0}))
	assert.Equal(t, TrendStable, TrendFor([]float64{3.0, 3.1, 3.0, 3.05}))

	// Only the last seven scores matter
	old := []float64{0.5, 0.5, 0.5, 0.5, 0.5}
	recent := []float64{3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0}
	assert.Equal(t, TrendStable, TrendFor(append(old, recent...)))
}

func TestClampMood(t *testing.T) {
	assert.Equal(t, MoodScaleMin, ClampMood(0.0))
	assert.Equal(t, MoodScaleMax, ClampMood(10.0))
	assert.Equal(t, 3.2, ClampMood(3.2))
}

func TestInvertNegation(t *testing.T) {
	assert.Equal(t, 2.0, InvertNegation(4.0))
	assert.Equal(t, 4.0, InvertNegation(2.0))
	assert.Equal(t, MoodScaleMidpoint, InvertNegation(MoodScaleMidpoint))

	// Inversion maps the scale onto itself, so applying it twice is a no-op
	for _, score := range []float64{0.5, 1.3, 3.0, 4.7, 5.5} {
		assert.InDelta(t, score, InvertNegation(InvertNegation(score)), 1e-9)
	}
}

func TestBlend(t *testing.T) {
	blender := NewBlender()
	// Afternoon in spring: time factor 1.0, no intensity or negation cues
	afternoon := time.Date(2025, time.April, 10, 14, 0, 0, 0, time.UTC)

	t.Run("negation inverts around the midpoint", func(t *testing.T) {
		plain, plainFactors := blender.Blend(4.0, "jag är glad", afternoon, nil)
		negated, negatedFactors := blender.Blend(4.0, "jag är inte glad", afternoon, nil)

		assert.False(t, plainFactors.Negated)
		assert.True(t, negatedFactors.Negated)
		assert.Less(t, negated, plain)
		// 4.0 inverts to 2.0, below-midpoint spring factor is 1.0
		assert.InDelta(t, 2.0, negated, 1e-9)
	})

	t.Run("negation matches whole words only", func(t *testing.T) {
		_, factors := blender.Blend(4.0, "jag har intetsägande dagar", afternoon, nil)
		assert.False(t, factors.Negated)
	})

	t.Run("first matching intensity modifier wins", func(t *testing.T) {
		boosted, factors := blender.Blend(4.0, "extremt glad och lite trött", afternoon, nil)
		assert.Equal(t, "extremt", factors.IntensityModifier)
		// 4.0 * 1.4 = 5.6 clamps to 5.5, then spring energy 1.05 re-clamps
		assert.Equal(t, MoodScaleMax, boosted)
	})

	t.Run("dampening modifier", func(t *testing.T) {
		damped, factors := blender.Blend(4.0, "lite grann trött", afternoon, nil)
		assert.Equal(t, "lite grann", factors.IntensityModifier)
		// 4.0 * 0.85 = 3.4, spring energy 1.05 lifts it to 3.57
		assert.InDelta(t, 3.57, damped, 1e-9)
	})

	t.Run("morning lifts and night dampens", func(t *testing.T) {
		morning := time.Date(2025, time.April, 10, 8, 0, 0, 0, time.UTC)
		night := time.Date(2025, time.April, 10, 1, 0, 0, 0, time.UTC)

		lifted, liftedFactors := blender.Blend(3.5, "", morning, nil)
		dampened, dampenedFactors := blender.Blend(3.5, "", night, nil)

		assert.Equal(t, 1.05, liftedFactors.TimeFactor)
		assert.Equal(t, 0.9, dampenedFactors.TimeFactor)
		assert.Greater(t, lifted, dampened)
	})

	t.Run("winter amplifies low mood asymmetrically", func(t *testing.T) {
		winter := time.Date(2025, time.January, 10, 14, 0, 0, 0, time.UTC)

		low, lowFactors := blender.Blend(2.0, "", winter, nil)
		high, highFactors := blender.Blend(4.0, "", winter, nil)

		assert.Equal(t, 0.85, lowFactors.SeasonalFactor)
		assert.Equal(t, 0.95, highFactors.SeasonalFactor)
		assert.InDelta(t, 1.7, low, 1e-9)
		assert.InDelta(t, 3.8, high, 1e-9)
	})

	t.Run("recent history nudges toward the baseline", func(t *testing.T) {
		lifted, factors := blender.Blend(3.0, "", afternoon, []float64{4.5, 4.5, 4.5})
		assert.InDelta(t, 0.15*1.5, factors.TrendNudge, 1e-9)
		assert.Greater(t, lifted, 3.0)

		lowered, factors := blender.Blend(3.0, "", afternoon, []float64{1.5, 1.5, 1.5})
		assert.InDelta(t, -0.15*1.5, factors.TrendNudge, 1e-9)
		assert.Less(t, lowered, 3.0)
	})

	t.Run("result is always on the mood scale", func(t *testing.T) {
		winter := time.Date(2025, time.January, 10, 3, 0, 0, 0, time.UTC)
		for _, score := range []float64{0.5, 1.0, 3.0, 5.0, 5.5} {
			for _, text := range []string{"", "extremt glad", "inte alls bra", "extremt inte glad"} {
				blended, _ := blender.Blend(score, text, winter, []float64{0.5, 5.5, 3.0})
				assert.GreaterOrEqual(t, blended, MoodScaleMin)
				assert.LessOrEqual(t, blended, MoodScaleMax)
			}
		}
	})
}

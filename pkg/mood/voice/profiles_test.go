package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// excitedFeatures is a loud, fast, high-pitched voice
func excitedFeatures() VoiceFeatures {
	return VoiceFeatures{
		PitchMean:      1.4,
		PitchStd:       0.2,
		VolumeMean:     1.5,
		VolumeStd:      0.2,
		SpeakingRate:   1.4,
		PauseFrequency: 0.3,
		BreathPattern:  "regular",
	}
}

// flatFeatures is a quiet, slow, low-pitched voice with long pauses
func flatFeatures() VoiceFeatures {
	return VoiceFeatures{
		PitchMean:      0.7,
		PitchStd:       0.1,
		VolumeMean:     0.6,
		VolumeStd:      0.1,
		SpeakingRate:   0.7,
		PauseFrequency: 1.5,
		BreathPattern:  "regular",
	}
}

func TestScoreProfiles(t *testing.T) {
	t.Run("excited voice matches joy or anger", func(t *testing.T) {
		scores := ScoreProfiles(excitedFeatures())
		assert.Equal(t, 1.0, scores[EmotionJoy])
		assert.Equal(t, 1.0, scores[EmotionAnger])
		assert.Less(t, scores[EmotionSadness], 0.5)

		primary, _, _ := topTwo(scores)
		assert.Contains(t, []string{EmotionJoy, EmotionAnger}, primary)
	})

	t.Run("flat voice matches sadness", func(t *testing.T) {
		scores := ScoreProfiles(flatFeatures())
		assert.Equal(t, 1.0, scores[EmotionSadness])

		primary, _, _ := topTwo(scores)
		assert.Equal(t, EmotionSadness, primary)
	})

	t.Run("scores are quantized to quarter steps", func(t *testing.T) {
		for name, score := range ScoreProfiles(excitedFeatures()) {
			assert.Contains(t, []float64{0.0, 0.25, 0.5, 0.75, 1.0}, score, "profile %s", name)
		}
	})
}

func TestFuseScores(t *testing.T) {
	acoustic := ScoreProfiles(excitedFeatures())

	t.Run("no transcript returns acoustic scores untouched", func(t *testing.T) {
		fused := FuseScores(acoustic, "")
		assert.Equal(t, acoustic, fused)

		fused = FuseScores(acoustic, "   ")
		assert.Equal(t, acoustic, fused)
	})

	t.Run("with transcript the distribution sums to one", func(t *testing.T) {
		fused := FuseScores(acoustic, "jag är så glad och lycklig")

		var total float64
		for _, score := range fused {
			assert.GreaterOrEqual(t, score, 0.0)
			total += score
		}
		assert.InDelta(t, 1.0, total, 1e-9)
	})

	t.Run("transcript keywords shift the winner", func(t *testing.T) {
		// Acoustically ambiguous between joy and anger; the transcript
		// tips it to anger
		fused := FuseScores(acoustic, "jag är så arg och förbannad och irriterad")
		primary, _, _ := topTwo(fused)
		assert.Equal(t, EmotionAnger, primary)
	})

	t.Run("empty everything degrades to uniform", func(t *testing.T) {
		empty := map[string]float64{}
		fused := FuseScores(empty, "ingenting särskilt")

		uniform := 1.0 / float64(len(emotionProfiles))
		for _, score := range fused {
			assert.InDelta(t, uniform, score, 1e-9)
		}
	})
}

func TestEstimateConfidence(t *testing.T) {
	features := excitedFeatures()

	t.Run("base case", func(t *testing.T) {
		assert.InDelta(t, 0.5, estimateConfidence(features, false, 0.5, 0.5), 1e-9)
	})

	t.Run("transcript adds trust", func(t *testing.T) {
		assert.InDelta(t, 0.7, estimateConfidence(features, true, 0.5, 0.5), 1e-9)
	})

	t.Run("clear winner adds trust", func(t *testing.T) {
		assert.InDelta(t, 0.65, estimateConfidence(features, false, 1.0, 0.25), 1e-9)
	})

	t.Run("abnormal volume subtracts trust", func(t *testing.T) {
		quiet := features
		quiet.VolumeMean = 0.3
		assert.InDelta(t, 0.4, estimateConfidence(quiet, false, 0.5, 0.5), 1e-9)

		loud := features
		loud.VolumeMean = 1.9
		assert.InDelta(t, 0.4, estimateConfidence(loud, false, 0.5, 0.5), 1e-9)
	})

	t.Run("always within bounds", func(t *testing.T) {
		for _, hasTranscript := range []bool{true, false} {
			for _, volume := range []float64{0.2, 1.0, 2.5} {
				f := features
				f.VolumeMean = volume
				confidence := estimateConfidence(f, hasTranscript, 1.0, 0.0)
				assert.GreaterOrEqual(t, confidence, 0.1)
				assert.LessOrEqual(t, confidence, 0.95)
			}
		}
	})
}

func TestAssessStress(t *testing.T) {
	t.Run("calm voice is low stress", func(t *testing.T) {
		stress := AssessStress(VoiceFeatures{
			PitchStd:         0.1,
			VolumeStd:        0.1,
			PauseFrequency:   0.5,
			TremorIndicators: 0.1,
		})
		assert.False(t, stress.VoiceTremor)
		assert.False(t, stress.VolumeInstability)
		assert.False(t, stress.FrequentPauses)
		assert.Equal(t, "low", stress.StressLevel)
	})

	t.Run("one indicator is medium", func(t *testing.T) {
		stress := AssessStress(VoiceFeatures{TremorIndicators: 0.5})
		assert.True(t, stress.VoiceTremor)
		assert.Equal(t, "medium", stress.StressLevel)
	})

	t.Run("several indicators are high", func(t *testing.T) {
		stress := AssessStress(VoiceFeatures{
			PitchStd:         0.6,
			VolumeStd:        0.6,
			PauseFrequency:   2.0,
			TremorIndicators: 0.5,
		})
		assert.True(t, stress.VoiceTremor)
		assert.True(t, stress.VolumeInstability)
		assert.True(t, stress.FrequentPauses)
		assert.Equal(t, "high", stress.StressLevel)
	})
}

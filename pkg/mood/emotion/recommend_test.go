package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend(t *testing.T) {
	recommender := NewRecommender()

	t.Run("declining trend puts professional help first", func(t *testing.T) {
		recommendations := recommender.Recommend(RecommendationInput{
			TimeOfDay:      Afternoon,
			Season:         Spring,
			PrimaryEmotion: Sadness,
			TrendDirection: TrendDeclining,
			MoodScore:      2.0,
		})
		require.NotEmpty(t, recommendations)
		assert.Contains(t, recommendations[0], "professionell")
	})

	t.Run("winter low mood suggests light therapy", func(t *testing.T) {
		recommendations := recommender.Recommend(RecommendationInput{
			TimeOfDay:      Afternoon,
			Season:         Winter,
			PrimaryEmotion: Neutral,
			TrendDirection: TrendStable,
			MoodScore:      2.0,
		})
		require.NotEmpty(t, recommendations)
		assert.Contains(t, recommendations[0], "ljusterapi")
	})

	t.Run("never more than three", func(t *testing.T) {
		// This input matches five rules
		recommendations := recommender.Recommend(RecommendationInput{
			TimeOfDay:      Night,
			Season:         Winter,
			PrimaryEmotion: Sadness,
			TrendDirection: TrendDeclining,
			MoodScore:      1.0,
		})
		assert.Len(t, recommendations, maxRecommendations)
	})

	t.Run("neutral input can yield nothing", func(t *testing.T) {
		recommendations := recommender.Recommend(RecommendationInput{
			TimeOfDay:      Afternoon,
			Season:         Spring,
			PrimaryEmotion: Neutral,
			TrendDirection: TrendStable,
			MoodScore:      3.0,
		})
		assert.Empty(t, recommendations)
	})

	t.Run("positive summer day", func(t *testing.T) {
		recommendations := recommender.Recommend(RecommendationInput{
			TimeOfDay:      Morning,
			Season:         Summer,
			PrimaryEmotion: Joy,
			TrendDirection: TrendImproving,
			MoodScore:      4.5,
		})
		require.NotEmpty(t, recommendations)
		assert.LessOrEqual(t, len(recommendations), maxRecommendations)
		assert.Contains(t, recommendations[0], "utomhus")
	})
}

package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexiconDetect(t *testing.T) {
	lexicon := NewLexicon()

	t.Run("single swedish emotion", func(t *testing.T) {
		assert.Equal(t, []string{Joy}, lexicon.Detect("jag är så glad idag"))
	})

	t.Run("single english emotion", func(t *testing.T) {
		assert.Equal(t, []string{Fear}, lexicon.Detect("i feel anxious about tomorrow"))
	})

	t.Run("multiple emotions in category order", func(t *testing.T) {
		detected := lexicon.Detect("jag är glad men också ledsen och rädd")
		assert.Equal(t, []string{Joy, Sadness, Fear}, detected)
	})

	t.Run("never more than three", func(t *testing.T) {
		detected := lexicon.Detect("glad ledsen arg rädd förvånad äcklad")
		require.Len(t, detected, 3)
		assert.Equal(t, []string{Joy, Sadness, Anger}, detected)
	})

	t.Run("no match yields neutral", func(t *testing.T) {
		assert.Equal(t, []string{Neutral}, lexicon.Detect("idag åt jag frukost"))
	})

	t.Run("empty input yields neutral", func(t *testing.T) {
		assert.Equal(t, []string{Neutral}, lexicon.Detect("  "))
	})

	t.Run("result is never empty", func(t *testing.T) {
		for _, text := range []string{"", "hej", "glad", "glad ledsen arg rädd"} {
			detected := lexicon.Detect(text)
			assert.GreaterOrEqual(t, len(detected), 1)
			assert.LessOrEqual(t, len(detected), 3)
		}
	})
}

func TestLexiconPrimary(t *testing.T) {
	lexicon := NewLexicon()

	assert.Equal(t, Joy, lexicon.Primary("så glad och nöjd"))
	assert.Equal(t, Sadness, lexicon.Primary("gråter varje kväll"))
	assert.Equal(t, Neutral, lexicon.Primary("åt lunch"))
}

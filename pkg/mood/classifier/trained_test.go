package classifier

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainTestPipeline(t *testing.T) *TrainedClassifier {
	t.Helper()
	trained, err := Train(TrainingCorpus(), "1.0.0")
	require.NoError(t, err)
	return trained
}

func TestTrain(t *testing.T) {
	trained := trainTestPipeline(t)

	assert.Equal(t, "1.0.0", trained.Version)
	assert.NotNil(t, trained.Vectorizer)
	assert.NotNil(t, trained.Model)
	assert.Len(t, trained.Calibrators, len(Labels()))
	assert.Positive(t, trained.Vectorizer.NumFeatures())
	assert.Equal(t, MethodTrained, trained.GetMethod())
	assert.Equal(t, "1.0.0", trained.GetVersion())
}

func TestTrainRejectsTinyCorpus(t *testing.T) {
	_, err := Train([]Example{
		{Text: "glad", Label: LabelPositive},
		{Text: "ledsen", Label: LabelNegative},
	}, "1.0.0")
	assert.Error(t, err)
}

func TestTrainedClassify(t *testing.T) {
	trained := trainTestPipeline(t)

	t.Run("positive swedish entry", func(t *testing.T) {
		result := trained.Classify("jag känner mig jättebra idag")
		assertValidResult(t, result)
		assert.Equal(t, LabelPositive, result.Label)
		assert.Greater(t, result.Score, 0.3)
		assert.Equal(t, MethodTrained, result.Method)
	})

	t.Run("negative swedish entry", func(t *testing.T) {
		result := trained.Classify("jag är så ledsen och trött på allt")
		assertValidResult(t, result)
		assert.Equal(t, LabelNegative, result.Label)
		assert.Negative(t, result.Score)
	})

	t.Run("empty input short-circuits", func(t *testing.T) {
		result := trained.Classify("")
		assertValidResult(t, result)
		assert.Equal(t, LabelNeutral, result.Label)
		assert.Equal(t, 0.5, result.Confidence)
	})

	t.Run("unknown script falls back to neutral", func(t *testing.T) {
		// None of these n-grams appear in the training vocabulary
		result := trained.Classify("你好吗今天")
		assertValidResult(t, result)
		assert.Equal(t, LabelNeutral, result.Label)
	})

	t.Run("classification is deterministic", func(t *testing.T) {
		// Repeated calls must agree to the last bit, probabilities included
		first := trained.Classify("en helt vanlig dag på jobbet")
		for i := 0; i < 25; i++ {
			assert.Equal(t, first, trained.Classify("en helt vanlig dag på jobbet"))
		}
	})
}

func TestLoadOrTrain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.bin")
	secret := []byte("test-secret")

	t.Run("trains and persists when artifact missing", func(t *testing.T) {
		pipeline, err := LoadOrTrain(path, secret, "1.0.0", nil)
		require.NoError(t, err)
		assert.Equal(t, MethodTrained, pipeline.GetMethod())
		assert.FileExists(t, path)
	})

	t.Run("loads the persisted artifact", func(t *testing.T) {
		pipeline, err := LoadOrTrain(path, secret, "1.0.0", nil)
		require.NoError(t, err)

		result := pipeline.Classify("jag känner mig jättebra idag")
		assertValidResult(t, result)
		assert.Equal(t, LabelPositive, result.Label)
	})

	t.Run("stale version triggers retraining", func(t *testing.T) {
		pipeline, err := LoadOrTrain(path, secret, "2.0.0", nil)
		require.NoError(t, err)
		assert.Equal(t, "2.0.0", pipeline.GetVersion())

		// The rewritten artifact carries the new version
		reloaded, err := LoadArtifact(path, secret, "2.0.0")
		require.NoError(t, err)
		assert.Equal(t, "2.0.0", reloaded.Version)
	})
}

package mood

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/config"
	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/logger"
	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/mood/classifier"
	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/mood/emotion"
	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/mood/voice"
)

// voiceSentiment maps a voice primary emotion to a sentiment direction
// in valence terms: +1 positive, -1 negative, 0 neutral.
var voiceSentiment = map[string]float64{
	voice.EmotionJoy:     1,
	voice.EmotionCalm:    1,
	voice.EmotionSadness: -1,
	voice.EmotionAnger:   -1,
	voice.EmotionFear:    -1,
	voice.EmotionStress:  -1,
	voice.EmotionNeutral: 0,
}

// Engine is the mood signal pipeline: normalization, sentiment
// classification, emotion tagging, contextual blending, voice analysis and
// result assembly. All collaborators are injected at construction; the
// engine holds no mutable state and is safe for concurrent Analyze calls.
type Engine struct {
	cfg *config.EngineConfig
	log *logger.Logger

	normalizer  *Normalizer
	classifier  classifier.SentimentClassifier
	lexicon     *emotion.Lexicon
	blender     *emotion.Blender
	recommender *emotion.Recommender
	voice       *voice.Estimator
}

// NewEngine builds a ready engine from configuration. It loads the trained
// sentiment model, retraining and persisting it when the cached artifact is
// missing or unusable; if even training fails the keyword fallback keeps the
// engine available.
func NewEngine(cfg *config.EngineConfig, log *logger.Logger) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("engine config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	if log == nil {
		log = logger.GetDefault()
	}
	log = log.WithField("component", "mood_engine")

	sentiment, err := classifier.LoadOrTrain(cfg.ModelPath, []byte(cfg.ArtifactSecret), cfg.ModelVersion, log)
	if err != nil {
		log.WithField("error", err.Error()).Warn("trained classifier unavailable, using keyword fallback")
		sentiment = classifier.NewKeywordClassifier()
	}

	return &Engine{
		cfg:         cfg,
		log:         log,
		normalizer:  NewNormalizer(cfg.MaxTextLength),
		classifier:  sentiment,
		lexicon:     emotion.NewLexicon(),
		blender:     emotion.NewBlender(),
		recommender: emotion.NewRecommender(),
		voice:       voice.NewEstimator(cfg.MockAudioFeatures, log),
	}, nil
}

// Classifier exposes the active sentiment classifier, mainly so callers can
// report which pipeline is serving.
func (e *Engine) Classifier() classifier.SentimentClassifier {
	return e.classifier
}

// Analyze runs the full pipeline on one check-in. It returns an error only
// for a cancelled context; degraded inputs (empty text, undecodable audio)
// produce neutral or fallback results instead of failures.
func (e *Engine) Analyze(ctx context.Context, req *MoodSignalRequest) (*MoodSignalResult, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req == nil {
		req = &MoodSignalRequest{}
	}

	timestamp := req.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	text := e.normalizer.Normalize(req.Text)
	transcript := e.normalizer.Normalize(req.Transcript)

	var voiceResult *voice.Result
	if len(req.Audio) > 0 {
		voiceResult = e.voice.Analyze(ctx, req.Audio, transcript)
	}

	// The transcript is a textual signal in its own right: a check-in that
	// carries only a transcript is classified like typed text.
	entryText := text
	if entryText == "" {
		entryText = transcript
	}

	var (
		sentiment  *classifier.Result
		emotions   []string
		sourceText string
		hasSignal  = true
	)
	switch {
	case entryText != "":
		sentiment = e.classifier.Classify(entryText)
		emotions = e.lexicon.Detect(entryText)
		sourceText = entryText
	case voiceResult != nil:
		sentiment = e.sentimentFromVoice(voiceResult)
		emotions = []string{voiceResult.PrimaryEmotion}
		sourceText = transcript
	default:
		sentiment = classifier.NeutralResult(e.classifier.GetMethod())
		emotions = []string{emotion.Neutral}
		hasSignal = false
	}

	// Contextual blending happens on the mood scale; the blended score is
	// converted back so the result carries both representations of one
	// value. A check-in with no signal stays exactly neutral.
	var (
		moodScore float64
		factors   emotion.ContextFactors
	)
	if hasSignal {
		moodScore, factors = e.blender.Blend(ValenceToMood(sentiment.Score), sourceText, timestamp, req.RecentScores)
	} else {
		moodScore = emotion.MoodScaleMidpoint
		factors = e.blender.Describe(timestamp, req.RecentScores)
	}
	score := MoodToValence(moodScore)

	intensity := score
	if intensity < 0 {
		intensity = -intensity
	}

	result := &MoodSignalResult{
		ID:         uuid.New(),
		Sentiment:  sentiment.Label,
		Score:      score,
		MoodScore:  moodScore,
		Confidence: sentiment.Confidence,
		Magnitude:  sentiment.Confidence * (1 + intensity),
		Intensity:  intensity,
		Emotions:   emotions,
		Method:     string(sentiment.Method),
		Context:    factors,
		Recommendations: e.recommender.Recommend(emotion.RecommendationInput{
			TimeOfDay:      factors.TimeOfDay,
			Season:         factors.Season,
			PrimaryEmotion: emotions[0],
			TrendDirection: factors.TrendDirection,
			MoodScore:      moodScore,
		}),
		Voice:          voiceResult,
		ProcessedAt:    time.Now().UTC(),
		ProcessingTime: time.Since(start),
	}

	e.log.WithFields(map[string]interface{}{
		"sentiment": result.Sentiment,
		"method":    result.Method,
		"has_voice": voiceResult != nil,
	}).Debug("analyzed mood signal in %s", result.ProcessingTime)

	return result, nil
}

// sentimentFromVoice derives a sentiment result for voice-only check-ins.
// The voice confidence scales the valence so an uncertain emotion call
// produces a correspondingly mild score.
func (e *Engine) sentimentFromVoice(voiceResult *voice.Result) *classifier.Result {
	direction := voiceSentiment[voiceResult.PrimaryEmotion]
	score := ClampValence(direction * voiceResult.Confidence)

	label := classifier.LabelNeutral
	if direction > 0 {
		label = classifier.LabelPositive
	} else if direction < 0 {
		label = classifier.LabelNegative
	}

	return &classifier.Result{
		Label:         label,
		Probabilities: classifier.MarginProbabilities(score),
		Score:         score,
		Confidence:    voiceResult.Confidence,
		Method:        classifier.Method(voiceResult.Method),
	}
}

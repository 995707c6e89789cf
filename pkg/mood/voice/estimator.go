package voice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/logger"
)

// Analysis methods reported in results
const (
	MethodAcoustic = "acoustic_profile"
	MethodFusion   = "acoustic_text_fusion"
	MethodFallback = "error_fallback"
)

// Result is the voice emotion report for one audio clip
type Result struct {
	ID             uuid.UUID          `json:"id"`
	PrimaryEmotion string             `json:"primary_emotion"`
	Confidence     float64            `json:"confidence"`
	Emotions       map[string]float64 `json:"emotions"`
	Features       VoiceFeatures      `json:"features"`
	Stress         StressIndicators   `json:"stress_indicators"`
	Method         string             `json:"method"`
	AnalyzedAt     time.Time          `json:"analyzed_at"`
}

// Estimator turns raw audio into an emotion estimate. It never returns an
// error to the caller: a mood check-in must not fail because the voice
// path did, so every failure degrades to a neutral fallback result.
type Estimator struct {
	extractor FeatureExtractor
	log       *logger.Logger
}

// NewEstimator creates a voice estimator. With mockFeatures set the
// deterministic mock extractor replaces the DSP path.
func NewEstimator(mockFeatures bool, log *logger.Logger) *Estimator {
	if log == nil {
		log = logger.GetDefault()
	}
	var extractor FeatureExtractor
	if mockFeatures {
		extractor = NewMockExtractor()
	} else {
		extractor = NewDSPExtractor()
	}
	return &Estimator{
		extractor: extractor,
		log:       log.WithField("component", "voice_estimator"),
	}
}

// fallbackResult is the fixed neutral result used when analysis fails
func fallbackResult() *Result {
	emotions := make(map[string]float64, len(emotionProfiles))
	for _, profile := range emotionProfiles {
		emotions[profile.name] = 0.0
	}
	emotions[EmotionNeutral] = 1.0

	return &Result{
		ID:             uuid.New(),
		PrimaryEmotion: EmotionNeutral,
		Confidence:     0.5,
		Emotions:       emotions,
		Stress:         StressIndicators{StressLevel: "low"},
		Method:         MethodFallback,
		AnalyzedAt:     time.Now().UTC(),
	}
}

// Analyze estimates the speaker's emotional state from audio bytes plus an
// optional normalized transcript. Panics and extraction errors both yield
// the neutral fallback.
func (e *Estimator) Analyze(ctx context.Context, audio []byte, transcript string) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("voice analysis panicked, using fallback: %v", r)
			result = fallbackResult()
		}
	}()

	if err := ctx.Err(); err != nil {
		e.log.Warn("voice analysis skipped: %v", err)
		return fallbackResult()
	}

	features, err := e.extractor.Extract(audio)
	if err != nil {
		e.log.Warn("feature extraction (%s) failed, using fallback: %v", e.extractor.Name(), err)
		return fallbackResult()
	}

	acoustic := ScoreProfiles(features)
	fused := FuseScores(acoustic, transcript)

	hasTranscript := strings.TrimSpace(transcript) != ""
	method := MethodAcoustic
	if hasTranscript {
		method = MethodFusion
	}

	primary, primaryScore, runnerUpScore := topTwo(fused)

	return &Result{
		ID:             uuid.New(),
		PrimaryEmotion: primary,
		Confidence:     estimateConfidence(features, hasTranscript, primaryScore, runnerUpScore),
		Emotions:       fused,
		Features:       features,
		Stress:         AssessStress(features),
		Method:         method,
		AnalyzedAt:     time.Now().UTC(),
	}
}

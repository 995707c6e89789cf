package mood

import (
	"time"

	"github.com/google/uuid"

	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/mood/classifier"
	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/mood/emotion"
	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/mood/voice"
)

// MoodSignalRequest is one check-in to analyze. Every field is optional;
// any of Text, Audio or Transcript counts as a signal, and an entirely
// empty request yields the neutral result.
type MoodSignalRequest struct {
	// Text is the raw journal entry
	Text string `json:"text,omitempty"`

	// Audio is an optional voice recording (MP3 bytes)
	Audio []byte `json:"audio,omitempty"`

	// Transcript is an optional transcription of the recording
	Transcript string `json:"transcript,omitempty"`

	// RecentScores holds the user's prior mood-scale scores, most recent
	// last, used for trend context
	RecentScores []float64 `json:"recent_scores,omitempty"`

	// Timestamp is when the check-in happened; zero means now
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// MoodSignalResult is the assembled analysis of one check-in
type MoodSignalResult struct {
	ID uuid.UUID `json:"id"`

	// Sentiment is the overall label
	Sentiment classifier.Label `json:"sentiment"`

	// Score is canonical valence in [-1, 1] after contextual blending
	Score float64 `json:"score"`

	// MoodScore is the same signal on the journaling mood scale
	MoodScore float64 `json:"mood_score"`

	// Confidence is trust in the sentiment call, in [0, 1]
	Confidence float64 `json:"confidence"`

	// Magnitude combines confidence and strength: confidence * (1 + |score|)
	Magnitude float64 `json:"magnitude"`

	// Intensity is |score|
	Intensity float64 `json:"intensity"`

	// Emotions lists up to three detected emotion tags
	Emotions []string `json:"emotions"`

	// Method records which pipeline produced the sentiment
	Method string `json:"method"`

	// Context surfaces the contextual adjustments for explainability
	Context emotion.ContextFactors `json:"context_factors"`

	// Recommendations holds up to three suggestions in the app's locale
	Recommendations []string `json:"recommendations"`

	// Voice is the voice sub-report, present only when audio was supplied
	Voice *voice.Result `json:"voice,omitempty"`

	ProcessedAt    time.Time     `json:"processed_at"`
	ProcessingTime time.Duration `json:"processing_time"`
}

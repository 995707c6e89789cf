package voice

import "strings"

// Emotion names recognized by the acoustic profiles
const (
	EmotionJoy     = "joy"
	EmotionSadness = "sadness"
	EmotionAnger   = "anger"
	EmotionFear    = "fear"
	EmotionStress  = "stress"
	EmotionCalm    = "calm"
	EmotionNeutral = "neutral"
)

// profileFeatureWeight is the score contribution of each matched feature
const profileFeatureWeight = 0.25

// Fusion weights: acoustics dominate, transcript keywords refine
const (
	acousticWeight   = 0.6
	transcriptWeight = 0.4
)

type featureRange struct {
	min, max float64
}

func (r featureRange) contains(v float64) bool {
	return v >= r.min && v <= r.max
}

// emotionProfile describes the acoustic signature of one emotion as ranges
// over the four primary features. A feature inside its range contributes
// profileFeatureWeight to the emotion's score, so a full match scores 1.0.
type emotionProfile struct {
	name   string
	pitch  featureRange // PitchMean
	volume featureRange // VolumeMean
	rate   featureRange // SpeakingRate
	pause  featureRange // PauseFrequency
}

// emotionProfiles in fixed order, so ties resolve deterministically
var emotionProfiles = []emotionProfile{
	{EmotionJoy, featureRange{1.1, 1.6}, featureRange{1.1, 1.6}, featureRange{1.1, 1.5}, featureRange{0.2, 0.8}},
	{EmotionSadness, featureRange{0.5, 0.9}, featureRange{0.4, 0.9}, featureRange{0.5, 0.9}, featureRange{1.0, 2.0}},
	{EmotionAnger, featureRange{1.2, 1.8}, featureRange{1.3, 2.0}, featureRange{1.2, 1.8}, featureRange{0.1, 0.6}},
	{EmotionFear, featureRange{1.2, 1.9}, featureRange{0.6, 1.1}, featureRange{1.2, 1.9}, featureRange{0.8, 1.6}},
	{EmotionStress, featureRange{1.1, 1.7}, featureRange{1.0, 1.5}, featureRange{1.3, 1.9}, featureRange{0.9, 1.8}},
	{EmotionCalm, featureRange{0.8, 1.1}, featureRange{0.8, 1.1}, featureRange{0.8, 1.1}, featureRange{0.4, 1.0}},
	{EmotionNeutral, featureRange{0.9, 1.1}, featureRange{0.9, 1.1}, featureRange{0.9, 1.1}, featureRange{0.5, 1.2}},
}

// voiceKeywords are short bilingual cue lists matched against the optional
// transcript. Scores are min(0.25 per match, 1.0), mirroring the acoustic
// scoring granularity.
var voiceKeywords = map[string][]string{
	EmotionJoy:     {"glad", "lycklig", "härlig", "kul", "happy", "great", "wonderful"},
	EmotionSadness: {"ledsen", "sorg", "gråter", "ensam", "sad", "crying", "lonely"},
	EmotionAnger:   {"arg", "förbannad", "irriterad", "angry", "furious", "mad"},
	EmotionFear:    {"rädd", "orolig", "ångest", "panik", "afraid", "anxious", "scared"},
	EmotionStress:  {"stressad", "pressad", "hinner inte", "stressed", "overwhelmed", "pressure"},
	EmotionCalm:    {"lugn", "avslappnad", "trygg", "calm", "relaxed", "peaceful"},
}

// ScoreProfiles matches the features against every emotion profile and
// returns raw per-emotion scores in [0, 1].
func ScoreProfiles(features VoiceFeatures) map[string]float64 {
	scores := make(map[string]float64, len(emotionProfiles))
	for _, profile := range emotionProfiles {
		score := 0.0
		if profile.pitch.contains(features.PitchMean) {
			score += profileFeatureWeight
		}
		if profile.volume.contains(features.VolumeMean) {
			score += profileFeatureWeight
		}
		if profile.rate.contains(features.SpeakingRate) {
			score += profileFeatureWeight
		}
		if profile.pause.contains(features.PauseFrequency) {
			score += profileFeatureWeight
		}
		scores[profile.name] = score
	}
	return scores
}

// scoreTranscript scores the transcript against the keyword cue lists.
// Input is expected to be normalized text.
func scoreTranscript(transcript string) map[string]float64 {
	scores := make(map[string]float64, len(emotionProfiles))
	for _, profile := range emotionProfiles {
		matches := 0
		for _, keyword := range voiceKeywords[profile.name] {
			if strings.Contains(transcript, keyword) {
				matches++
			}
		}
		score := profileFeatureWeight * float64(matches)
		if score > 1.0 {
			score = 1.0
		}
		scores[profile.name] = score
	}
	return scores
}

// FuseScores combines acoustic and transcript scores. Without a transcript
// the acoustic distribution is returned untouched; with one, the weighted
// mix is renormalized to sum to 1.
func FuseScores(acoustic map[string]float64, transcript string) map[string]float64 {
	if strings.TrimSpace(transcript) == "" {
		return acoustic
	}

	textScores := scoreTranscript(transcript)

	fused := make(map[string]float64, len(acoustic))
	var total float64
	for _, profile := range emotionProfiles {
		score := acousticWeight*acoustic[profile.name] + transcriptWeight*textScores[profile.name]
		fused[profile.name] = score
		total += score
	}
	if total <= 0 {
		// Degenerate case: nothing matched anywhere
		uniform := 1.0 / float64(len(emotionProfiles))
		for _, profile := range emotionProfiles {
			fused[profile.name] = uniform
		}
		return fused
	}

	for name := range fused {
		fused[name] /= total
	}
	return fused
}

// topTwo returns the best and runner-up emotions by score, breaking ties
// by profile order.
func topTwo(scores map[string]float64) (primary string, primaryScore, runnerUpScore float64) {
	primary = EmotionNeutral
	primaryScore = -1.0
	runnerUpScore = -1.0
	for _, profile := range emotionProfiles {
		score := scores[profile.name]
		if score > primaryScore {
			runnerUpScore = primaryScore
			primary = profile.name
			primaryScore = score
		} else if score > runnerUpScore {
			runnerUpScore = score
		}
	}
	if primaryScore < 0 {
		primaryScore = 0
	}
	if runnerUpScore < 0 {
		runnerUpScore = 0
	}
	return primary, primaryScore, runnerUpScore
}

// estimateConfidence scores how much to trust the emotion call: a fixed
// base, a bonus for having a transcript, a bonus for a clear winner and a
// penalty for abnormal recording volume.
func estimateConfidence(features VoiceFeatures, hasTranscript bool, primaryScore, runnerUpScore float64) float64 {
	confidence := 0.5
	if hasTranscript {
		confidence += 0.2
	}
	if primaryScore > 0 && primaryScore >= 1.5*runnerUpScore {
		confidence += 0.15
	}
	if features.VolumeMean < 0.5 || features.VolumeMean > 1.8 {
		confidence -= 0.1
	}

	if confidence < 0.1 {
		confidence = 0.1
	}
	if confidence > 0.95 {
		confidence = 0.95
	}
	return confidence
}

// StressIndicators is the dedicated stress sub-report
type StressIndicators struct {
	VoiceTremor       bool   `json:"voice_tremor"`
	VolumeInstability bool   `json:"volume_instability"`
	FrequentPauses    bool   `json:"frequent_pauses"`
	StressLevel       string `json:"stress_level"` // "low", "medium" or "high"
}

// AssessStress derives the stress sub-report from the acoustic features
func AssessStress(features VoiceFeatures) StressIndicators {
	indicators := StressIndicators{
		VoiceTremor:       features.TremorIndicators > 0.3,
		VolumeInstability: features.VolumeStd > 0.4 || features.PitchStd > 0.4,
		FrequentPauses:    features.PauseFrequency > 1.5,
	}

	flags := 0
	if indicators.VoiceTremor {
		flags++
	}
	if indicators.VolumeInstability {
		flags++
	}
	if indicators.FrequentPauses {
		flags++
	}

	switch {
	case flags >= 2:
		indicators.StressLevel = "high"
	case flags == 1:
		indicators.StressLevel = "medium"
	default:
		indicators.StressLevel = "low"
	}

	return indicators
}

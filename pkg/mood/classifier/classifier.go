package classifier

import (
	"strings"
)

// Label represents a sentiment class
type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
)

// Labels returns the sentiment classes in canonical order
func Labels() []Label {
	return []Label{LabelPositive, LabelNegative, LabelNeutral}
}

// Method identifies which code path produced a classification
type Method string

const (
	MethodTrained Method = "ml_tfidf_logistic"
	MethodKeyword Method = "keyword_fallback"
)

// Result represents the outcome of classifying a piece of text
type Result struct {
	Label         Label             `json:"label"`
	Probabilities map[Label]float64 `json:"class_probabilities"`
	Score         float64           `json:"score"`      // P(POSITIVE) - P(NEGATIVE), in [-1, 1]
	Confidence    float64           `json:"confidence"` // max class probability
	Method        Method            `json:"method"`
}

// SentimentClassifier maps normalized text to a sentiment label with
// per-class probabilities. Implementations never return an error for
// well-formed string input; internal failures degrade to a neutral result.
type SentimentClassifier interface {
	Classify(text string) *Result
	GetMethod() Method
	GetVersion() string
}

// NeutralResult returns the fixed result used when there is no usable signal
func NeutralResult(method Method) *Result {
	return &Result{
		Label: LabelNeutral,
		Probabilities: map[Label]float64{
			LabelPositive: 0.25,
			LabelNegative: 0.25,
			LabelNeutral:  0.5,
		},
		Score:      0.0,
		Confidence: 0.5,
		Method:     method,
	}
}

// MarginProbabilities builds a valid class distribution from a signed margin.
// The identity score == P(POSITIVE) - P(NEGATIVE) holds by construction and
// the three probabilities sum to 1.
func MarginProbabilities(score float64) map[Label]float64 {
	if score > 1.0 {
		score = 1.0
	} else if score < -1.0 {
		score = -1.0
	}

	abs := score
	if abs < 0 {
		abs = -abs
	}

	neutral := (1.0 - abs) / 2.0
	polar := 1.0 - neutral
	return map[Label]float64{
		LabelPositive: (polar + score) / 2.0,
		LabelNegative: (polar - score) / 2.0,
		LabelNeutral:  neutral,
	}
}

// KeywordClassifier is the availability floor: a deterministic keyword
// counting heuristic used when no trained pipeline can be loaded or built.
type KeywordClassifier struct {
	version  string
	positive []string
	negative []string
}

// keywordConfidence is deliberately low to signal reduced trust downstream
const keywordConfidence = 0.4

// NewKeywordClassifier creates the keyword fallback classifier
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		version: "1.0.0",
		positive: []string{
			"glad", "lycklig", "bra", "nöjd", "tacksam", "härlig", "underbar",
			"fantastisk", "hoppfull", "pigg", "stolt", "lugn", "trygg",
			"happy", "good", "great", "grateful", "calm", "hopeful", "proud",
			"wonderful", "amazing", "relaxed", "joyful", "content",
		},
		negative: []string{
			"ledsen", "trött", "orolig", "arg", "stressad", "ensam", "rädd",
			"deppig", "nedstämd", "hopplös", "jobbigt", "ångest", "sorg",
			"sad", "tired", "anxious", "angry", "stressed", "lonely", "afraid",
			"depressed", "hopeless", "worried", "miserable", "upset",
		},
	}
}

// Classify counts positive and negative keyword occurrences and derives a
// label from the majority. Ties resolve to NEUTRAL. Never fails.
func (k *KeywordClassifier) Classify(text string) *Result {
	if strings.TrimSpace(text) == "" {
		return NeutralResult(MethodKeyword)
	}

	lowered := strings.ToLower(text)

	posCount := 0
	for _, word := range k.positive {
		posCount += strings.Count(lowered, word)
	}
	negCount := 0
	for _, word := range k.negative {
		negCount += strings.Count(lowered, word)
	}

	if posCount == 0 && negCount == 0 {
		result := NeutralResult(MethodKeyword)
		result.Confidence = keywordConfidence
		return result
	}

	// Score proportional to the margin, capped at 1.0
	total := posCount + negCount
	score := float64(posCount-negCount) / float64(total)
	if score > 1.0 {
		score = 1.0
	} else if score < -1.0 {
		score = -1.0
	}

	label := LabelNeutral
	if posCount > negCount {
		label = LabelPositive
	} else if negCount > posCount {
		label = LabelNegative
	}

	return &Result{
		Label:         label,
		Probabilities: MarginProbabilities(score),
		Score:         score,
		Confidence:    keywordConfidence,
		Method:        MethodKeyword,
	}
}

// GetMethod returns the provenance flag for this classifier
func (k *KeywordClassifier) GetMethod() Method {
	return MethodKeyword
}

// GetVersion returns the classifier version
func (k *KeywordClassifier) GetVersion() string {
	return k.version
}

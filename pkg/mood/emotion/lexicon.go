package emotion

import (
	"strings"
)

// Category names, in detection priority order
const (
	Joy          = "joy"
	Sadness      = "sadness"
	Anger        = "anger"
	Fear         = "fear"
	Surprise     = "surprise"
	Disgust      = "disgust"
	Trust        = "trust"
	Anticipation = "anticipation"
	Neutral      = "neutral"
)

// maxDetected caps the number of emotion tags per analysis
const maxDetected = 3

// categoryOrder fixes the iteration order so results are stable
var categoryOrder = []string{Joy, Sadness, Anger, Fear, Surprise, Disgust, Trust, Anticipation}

// Lexicon tags text with emotions by substring-matching keyword lists.
// Deliberately not a trained model: the lists are short, bilingual
// (Swedish + English) and directly auditable by a clinician.
type Lexicon struct {
	keywords map[string][]string
}

// NewLexicon creates the emotion lexicon with the built-in keyword lists
func NewLexicon() *Lexicon {
	return &Lexicon{
		keywords: map[string][]string{
			Joy: {
				"glad", "lycklig", "nöjd", "härlig", "underbar", "fantastisk",
				"happy", "joy", "delighted", "wonderful", "great", "cheerful",
			},
			Sadness: {
				"ledsen", "sorg", "nedstämd", "deppig", "gråter", "ensam",
				"sad", "grief", "down", "depressed", "crying", "lonely",
			},
			Anger: {
				"arg", "ilsken", "irriterad", "frustrerad", "förbannad",
				"angry", "mad", "irritated", "frustrated", "furious",
			},
			Fear: {
				"rädd", "orolig", "ångest", "skräck", "nervös", "panik",
				"afraid", "anxious", "scared", "worried", "nervous", "panic",
			},
			Surprise: {
				"förvånad", "överraskad", "chockad", "oväntat",
				"surprised", "shocked", "unexpected", "astonished",
			},
			Disgust: {
				"äcklad", "avsky", "motbjudande", "vämjelse",
				"disgusted", "revolted", "gross", "repulsed",
			},
			Trust: {
				"trygg", "säker", "litar", "förtroende", "lugn",
				"safe", "secure", "trust", "confident", "calm",
			},
			Anticipation: {
				"förväntan", "ser fram emot", "längtar", "hoppas", "spännande",
				"looking forward", "excited", "hoping", "anticipating", "eager",
			},
		},
	}
}

// Detect returns up to three matched emotion names in fixed category order,
// or ["neutral"] when nothing matches. Input is expected to be normalized
// (lowercased) text.
func (l *Lexicon) Detect(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{Neutral}
	}

	detected := make([]string, 0, maxDetected)
	for _, category := range categoryOrder {
		for _, keyword := range l.keywords[category] {
			if strings.Contains(text, keyword) {
				detected = append(detected, category)
				break
			}
		}
		if len(detected) == maxDetected {
			break
		}
	}

	if len(detected) == 0 {
		return []string{Neutral}
	}
	return detected
}

// Primary returns the highest-priority detected emotion
func (l *Lexicon) Primary(text string) string {
	return l.Detect(text)[0]
}

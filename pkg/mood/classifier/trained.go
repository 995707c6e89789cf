package classifier

import (
	"fmt"
	"strings"

	"github.com/omar1u7777/Lugn-Trygg-sub003/pkg/logger"
)

// calibrationFolds is the k used for cross-validated Platt scaling
const calibrationFolds = 3

// TrainedClassifier is the char n-gram TF-IDF + calibrated logistic
// regression pipeline. It is immutable after construction and safe for
// concurrent Classify calls.
type TrainedClassifier struct {
	Version     string             `json:"version"`
	Vectorizer  *Vectorizer        `json:"vectorizer"`
	Model       *LogisticModel     `json:"model"`
	Calibrators []*PlattCalibrator `json:"calibrators"`
}

// Train builds the full pipeline from a labeled corpus: fit the n-gram
// vocabulary, train the class-balanced logistic model, then fit per-class
// Platt calibrators on k-fold out-of-sample decision scores.
func Train(corpus []Example, version string) (*TrainedClassifier, error) {
	if len(corpus) < calibrationFolds*len(Labels()) {
		return nil, fmt.Errorf("training corpus too small: %d examples", len(corpus))
	}

	documents := make([]string, len(corpus))
	labels := make([]Label, len(corpus))
	for i, example := range corpus {
		documents[i] = example.Text
		labels[i] = example.Label
	}

	vectorizer := NewVectorizer(2, 5)
	vectorizer.Fit(documents)

	vectors := make([]map[int]float64, len(documents))
	for i, doc := range documents {
		vectors[i] = vectorizer.Transform(doc)
	}

	classes := Labels()
	model := TrainLogistic(vectors, labels, vectorizer.NumFeatures(), classes)
	calibrators := FitCalibrators(vectors, labels, vectorizer.NumFeatures(), classes, calibrationFolds)

	return &TrainedClassifier{
		Version:     version,
		Vectorizer:  vectorizer,
		Model:       model,
		Calibrators: calibrators,
	}, nil
}

// Classify maps normalized text to a label with calibrated probabilities.
// Empty input short-circuits to the fixed neutral result.
func (t *TrainedClassifier) Classify(text string) *Result {
	if strings.TrimSpace(text) == "" {
		return NeutralResult(MethodTrained)
	}

	vector := t.Vectorizer.Transform(text)
	if len(vector) == 0 {
		return NeutralResult(MethodTrained)
	}

	logits := t.Model.Decision(vector)
	probs := CalibratedProbabilities(t.Calibrators, logits)

	probabilities := make(map[Label]float64, len(t.Model.Classes))
	best := 0
	for i, class := range t.Model.Classes {
		probabilities[class] = probs[i]
		if probs[i] > probs[best] {
			best = i
		}
	}

	return &Result{
		Label:         t.Model.Classes[best],
		Probabilities: probabilities,
		Score:         probabilities[LabelPositive] - probabilities[LabelNegative],
		Confidence:    probs[best],
		Method:        MethodTrained,
	}
}

// GetMethod returns the provenance flag for this classifier
func (t *TrainedClassifier) GetMethod() Method {
	return MethodTrained
}

// GetVersion returns the pipeline version tag
func (t *TrainedClassifier) GetVersion() string {
	return t.Version
}

// LoadOrTrain returns a ready classifier: it first tries the persisted
// artifact at path, and retrains from the embedded corpus when the artifact
// is missing, tampered or carries a stale version tag. A freshly trained
// pipeline is written back so later boots can skip training.
func LoadOrTrain(path string, secret []byte, version string, log *logger.Logger) (SentimentClassifier, error) {
	if log == nil {
		log = logger.GetDefault()
	}

	if trained, err := LoadArtifact(path, secret, version); err == nil {
		log.Info("loaded sentiment model artifact from %s", path)
		return trained, nil
	} else {
		log.WithField("reason", err.Error()).Warn("sentiment model artifact unusable, retraining")
	}

	trained, err := Train(TrainingCorpus(), version)
	if err != nil {
		return nil, err
	}

	if err := SaveArtifact(path, secret, trained); err != nil {
		// A failed save is not fatal: the in-memory pipeline still works
		log.WithField("error", err.Error()).Warn("failed to persist sentiment model artifact")
	}

	return trained, nil
}

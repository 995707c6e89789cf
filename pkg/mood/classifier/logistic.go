package classifier

import (
	"math"
)

// LogisticModel is a multinomial logistic regression over sparse feature
// vectors. Weights[c] holds the weight vector for class c with the bias
// term at index NumFeatures.
type LogisticModel struct {
	Classes     []Label     `json:"classes"`
	NumFeatures int         `json:"num_features"`
	Weights     [][]float64 `json:"weights"`
}

// trainingOptions control the gradient descent fit
type trainingOptions struct {
	epochs       int
	learningRate float64
	l2           float64
}

func defaultTrainingOptions() trainingOptions {
	return trainingOptions{
		epochs:       300,
		learningRate: 1.0,
		l2:           1e-4,
	}
}

// TrainLogistic fits a class-balanced multinomial logistic regression on the
// given sparse vectors. Training is fully deterministic: zero initialization
// and full-batch gradient descent.
func TrainLogistic(vectors []map[int]float64, labels []Label, numFeatures int, classes []Label) *LogisticModel {
	opts := defaultTrainingOptions()

	model := &LogisticModel{
		Classes:     classes,
		NumFeatures: numFeatures,
		Weights:     make([][]float64, len(classes)),
	}
	for c := range model.Weights {
		model.Weights[c] = make([]float64, numFeatures+1)
	}

	classIndex := make(map[Label]int, len(classes))
	for i, class := range classes {
		classIndex[class] = i
	}

	// Balanced class weights: n_samples / (n_classes * n_c)
	counts := make([]float64, len(classes))
	for _, label := range labels {
		counts[classIndex[label]]++
	}
	sampleWeight := make([]float64, len(labels))
	for i, label := range labels {
		c := classIndex[label]
		sampleWeight[i] = float64(len(labels)) / (float64(len(classes)) * counts[c])
	}

	numSamples := float64(len(vectors))
	gradients := make([][]float64, len(classes))
	for c := range gradients {
		gradients[c] = make([]float64, numFeatures+1)
	}

	for epoch := 0; epoch < opts.epochs; epoch++ {
		for c := range gradients {
			for j := range gradients[c] {
				gradients[c][j] = 0
			}
		}

		for i, vector := range vectors {
			probs := softmax(model.decision(vector))
			target := classIndex[labels[i]]

			for c := range model.Classes {
				delta := probs[c]
				if c == target {
					delta -= 1.0
				}
				delta *= sampleWeight[i]

				for j, value := range vector {
					gradients[c][j] += delta * value
				}
				gradients[c][numFeatures] += delta // bias
			}
		}

		for c := range model.Weights {
			for j := range model.Weights[c] {
				grad := gradients[c][j] / numSamples
				if j < numFeatures {
					grad += opts.l2 * model.Weights[c][j]
				}
				model.Weights[c][j] -= opts.learningRate * grad
			}
		}
	}

	return model
}

// decision computes the raw per-class scores (logits) for a sparse vector.
// The dot product runs over sorted indices so repeated calls accumulate in
// the same order and produce bit-identical logits.
func (m *LogisticModel) decision(vector map[int]float64) []float64 {
	indices := sortedIndices(vector)
	scores := make([]float64, len(m.Classes))
	for c, weights := range m.Weights {
		score := weights[m.NumFeatures] // bias
		for _, j := range indices {
			score += weights[j] * vector[j]
		}
		scores[c] = score
	}
	return scores
}

// Decision exposes raw logits, used by the calibration layer
func (m *LogisticModel) Decision(vector map[int]float64) []float64 {
	return m.decision(vector)
}

// softmax converts logits into a probability distribution
func softmax(scores []float64) []float64 {
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - maxScore)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

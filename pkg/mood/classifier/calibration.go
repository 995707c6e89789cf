package classifier

import (
	"math"
)

// PlattCalibrator maps a raw decision score to a probability through a
// fitted sigmoid, 1 / (1 + exp(A*score + B)).
type PlattCalibrator struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Predict applies the fitted sigmoid to a decision score
func (p *PlattCalibrator) Predict(score float64) float64 {
	return 1.0 / (1.0 + math.Exp(p.A*score+p.B))
}

// fitPlatt fits sigmoid parameters on (score, isPositive) pairs by gradient
// descent on the cross-entropy loss, using Platt's smoothed targets to keep
// the calibrated probabilities away from 0 and 1 on small folds.
func fitPlatt(scores []float64, positives []bool) *PlattCalibrator {
	var numPos, numNeg float64
	for _, positive := range positives {
		if positive {
			numPos++
		} else {
			numNeg++
		}
	}

	targetPos := (numPos + 1.0) / (numPos + 2.0)
	targetNeg := 1.0 / (numNeg + 2.0)

	cal := &PlattCalibrator{A: -1.0, B: 0.0}
	learningRate := 0.01

	for iter := 0; iter < 500; iter++ {
		var gradA, gradB float64
		for i, score := range scores {
			target := targetNeg
			if positives[i] {
				target = targetPos
			}
			predicted := cal.Predict(score)
			// d(loss)/d(A*score+B) for sigmoid with this parameterization
			delta := -(predicted - target)
			gradA += delta * score
			gradB += delta
		}
		n := float64(len(scores))
		cal.A -= learningRate * gradA / n
		cal.B -= learningRate * gradB / n
	}

	return cal
}

// FitCalibrators produces one Platt calibrator per class from k-fold
// cross-validated decision scores: each fold's scores come from a model
// trained on the remaining folds, so the sigmoids are fit on out-of-sample
// margins rather than training-set margins.
func FitCalibrators(vectors []map[int]float64, labels []Label, numFeatures int, classes []Label, folds int) []*PlattCalibrator {
	if folds < 2 {
		folds = 2
	}

	oofScores := make([][]float64, 0, len(vectors))
	oofLabels := make([]Label, 0, len(labels))

	for fold := 0; fold < folds; fold++ {
		var trainVectors []map[int]float64
		var trainLabels []Label
		var testVectors []map[int]float64
		var testLabels []Label

		for i := range vectors {
			if i%folds == fold {
				testVectors = append(testVectors, vectors[i])
				testLabels = append(testLabels, labels[i])
			} else {
				trainVectors = append(trainVectors, vectors[i])
				trainLabels = append(trainLabels, labels[i])
			}
		}

		foldModel := TrainLogistic(trainVectors, trainLabels, numFeatures, classes)
		for i, vector := range testVectors {
			oofScores = append(oofScores, foldModel.Decision(vector))
			oofLabels = append(oofLabels, testLabels[i])
		}
	}

	calibrators := make([]*PlattCalibrator, len(classes))
	for c, class := range classes {
		scores := make([]float64, len(oofScores))
		positives := make([]bool, len(oofScores))
		for i := range oofScores {
			scores[i] = oofScores[i][c]
			positives[i] = oofLabels[i] == class
		}
		calibrators[c] = fitPlatt(scores, positives)
	}

	return calibrators
}

// calibrationSharpness is the exponent applied to each per-class sigmoid
// output before renormalization. The sigmoids are fit independently on
// Platt-smoothed targets, which compresses the joint distribution toward
// uniform; an exponent of 2 doubles the log-odds gap between classes.
const calibrationSharpness = 2.0

// CalibratedProbabilities applies the per-class sigmoids to raw logits,
// sharpens the outputs and renormalizes so the distribution sums to 1.
// Sharpening is monotone per class, so the argmax never changes.
func CalibratedProbabilities(calibrators []*PlattCalibrator, logits []float64) []float64 {
	probs := make([]float64, len(logits))
	var sum float64
	for i, logit := range logits {
		probs[i] = math.Pow(calibrators[i].Predict(logit), calibrationSharpness)
		sum += probs[i]
	}
	if sum <= 0 {
		uniform := 1.0 / float64(len(probs))
		for i := range probs {
			probs[i] = uniform
		}
		return probs
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

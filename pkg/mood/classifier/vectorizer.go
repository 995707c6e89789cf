package classifier

import (
	"math"
	"sort"
)

// Vectorizer turns text into sparse character n-gram TF-IDF vectors.
// N-grams span whitespace boundaries (the text is padded with a single
// space on each side), term frequency is sublinear (1 + ln tf) and the
// resulting vector is L2-normalized.
type Vectorizer struct {
	MinN       int            `json:"min_n"`
	MaxN       int            `json:"max_n"`
	Vocabulary map[string]int `json:"vocabulary"` // n-gram -> feature index
	IDF        []float64      `json:"idf"`        // indexed by feature index
}

// NewVectorizer creates an unfitted vectorizer with the given n-gram range
func NewVectorizer(minN, maxN int) *Vectorizer {
	return &Vectorizer{
		MinN:       minN,
		MaxN:       maxN,
		Vocabulary: make(map[string]int),
	}
}

// ngrams extracts all character n-grams of length MinN..MaxN from the
// space-padded text. Runes are used so Swedish characters count as one.
func (v *Vectorizer) ngrams(text string) map[string]int {
	runes := []rune(" " + text + " ")
	counts := make(map[string]int)

	for n := v.MinN; n <= v.MaxN; n++ {
		for i := 0; i+n <= len(runes); i++ {
			counts[string(runes[i:i+n])]++
		}
	}

	return counts
}

// Fit builds the vocabulary and IDF table from the corpus documents
func (v *Vectorizer) Fit(documents []string) {
	docFreq := make(map[string]int)
	for _, doc := range documents {
		for gram := range v.ngrams(doc) {
			docFreq[gram]++
		}
	}

	// Deterministic feature ordering
	grams := make([]string, 0, len(docFreq))
	for gram := range docFreq {
		grams = append(grams, gram)
	}
	sort.Strings(grams)

	v.Vocabulary = make(map[string]int, len(grams))
	v.IDF = make([]float64, len(grams))

	n := float64(len(documents))
	for i, gram := range grams {
		v.Vocabulary[gram] = i
		// Smoothed IDF, as if an extra document contained every term
		v.IDF[i] = math.Log((1+n)/(1+float64(docFreq[gram]))) + 1
	}
}

// Transform converts text into a sparse L2-normalized TF-IDF vector
func (v *Vectorizer) Transform(text string) map[int]float64 {
	vector := make(map[int]float64)

	for gram, count := range v.ngrams(text) {
		index, known := v.Vocabulary[gram]
		if !known {
			continue
		}
		tf := 1 + math.Log(float64(count))
		vector[index] = tf * v.IDF[index]
	}

	// L2 normalization. Accumulate in sorted index order: float addition is
	// not associative, and map iteration order would make the norm (and every
	// downstream probability) vary by ULPs between calls.
	var norm float64
	for _, index := range sortedIndices(vector) {
		norm += vector[index] * vector[index]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for index, value := range vector {
			vector[index] = value / norm
		}
	}

	return vector
}

// sortedIndices returns a sparse vector's feature indices in ascending
// order, fixing the summation order wherever the vector is reduced.
func sortedIndices(vector map[int]float64) []int {
	indices := make([]int, 0, len(vector))
	for index := range vector {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}

// NumFeatures returns the fitted vocabulary size
func (v *Vectorizer) NumFeatures() int {
	return len(v.Vocabulary)
}

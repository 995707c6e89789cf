package voice

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/hajimehoshi/go-mp3"
)

// VoiceFeatures holds normalized, unitless acoustic measurements. Every
// numeric feature is centered near 1.0 for a typical speaking voice.
// Features are computed fresh per request and never persisted here.
type VoiceFeatures struct {
	PitchMean        float64 `json:"pitch_mean"`
	PitchStd         float64 `json:"pitch_std"`
	VolumeMean       float64 `json:"volume_mean"`
	VolumeStd        float64 `json:"volume_std"`
	SpeakingRate     float64 `json:"speaking_rate"`
	PauseFrequency   float64 `json:"pause_frequency"`
	TremorIndicators float64 `json:"tremor_indicators"`
	BreathPattern    string  `json:"breath_pattern"` // "regular" or "irregular"
}

// FeatureExtractor derives acoustic features from raw audio bytes
type FeatureExtractor interface {
	Extract(audio []byte) (VoiceFeatures, error)
	Name() string
}

// Reference values used to normalize raw measurements to ~1.0
const (
	referencePitchHz    = 150.0 // typical adult fundamental frequency
	referenceRMS        = 0.1
	referencePitchCV    = 0.15 // coefficient of variation of pitch
	referenceVolumeCV   = 0.3
	referenceActiveRate = 0.7 // fraction of frames with speech
	referencePauseRate  = 0.5 // pauses per second

	frameSize = 1024
	hopSize   = 512

	minPitchHz = 60.0
	maxPitchHz = 400.0
)

// DSPExtractor computes features from decoded PCM: frame energies for
// volume and pause structure, autocorrelation pitch tracking for pitch
// statistics and tremor. Input must be MP3; other containers fail the
// decode and the caller falls back.
type DSPExtractor struct{}

// NewDSPExtractor creates the signal-processing feature extractor
func NewDSPExtractor() *DSPExtractor {
	return &DSPExtractor{}
}

// Name identifies the extractor in logs
func (e *DSPExtractor) Name() string {
	return "dsp"
}

// Extract decodes the audio and measures the feature set
func (e *DSPExtractor) Extract(audio []byte) (VoiceFeatures, error) {
	samples, sampleRate, err := decodeMP3(audio)
	if err != nil {
		return VoiceFeatures{}, err
	}
	if len(samples) < frameSize {
		return VoiceFeatures{}, fmt.Errorf("audio too short: %d samples", len(samples))
	}

	energies := frameEnergies(samples)

	// Silence threshold relative to the mean frame energy
	meanEnergy := mean(energies)
	silenceThreshold := 0.3 * meanEnergy

	var activeEnergies []float64
	activeFrames := 0
	for _, energy := range energies {
		if energy > silenceThreshold {
			activeFrames++
			activeEnergies = append(activeEnergies, energy)
		}
	}
	if len(activeEnergies) == 0 {
		return VoiceFeatures{}, fmt.Errorf("no speech activity detected")
	}

	volMean := mean(activeEnergies)
	volStd := stddev(activeEnergies, volMean)

	durationSeconds := float64(len(samples)) / float64(sampleRate)
	pauses := countPauses(energies, silenceThreshold, sampleRate)

	pitches := trackPitch(samples, sampleRate, energies, silenceThreshold)

	features := VoiceFeatures{
		VolumeMean:     volMean / referenceRMS,
		VolumeStd:      (volStd / volMean) / referenceVolumeCV,
		SpeakingRate:   (float64(activeFrames) / float64(len(energies))) / referenceActiveRate,
		PauseFrequency: (float64(pauses) / durationSeconds) / referencePauseRate,
	}

	if len(pitches) > 0 {
		pitchMean := mean(pitches)
		pitchStd := stddev(pitches, pitchMean)
		features.PitchMean = pitchMean / referencePitchHz
		features.PitchStd = (pitchStd / pitchMean) / referencePitchCV
		features.TremorIndicators = pitchJitter(pitches) * 10.0
	} else {
		features.PitchMean = 1.0
		features.PitchStd = 0.0
		features.TremorIndicators = 0.0
	}

	if features.VolumeStd > 1.3 || features.PauseFrequency > 1.5 {
		features.BreathPattern = "irregular"
	} else {
		features.BreathPattern = "regular"
	}

	return features, nil
}

// decodeMP3 decodes MP3 bytes into mono float64 samples in [-1, 1]
func decodeMP3(audio []byte) ([]float64, int, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(audio))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode audio: %w", err)
	}

	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read decoded audio: %w", err)
	}

	// Decoder output is 16-bit little-endian stereo; downmix to mono
	numFrames := len(raw) / 4
	samples := make([]float64, 0, numFrames)
	for i := 0; i+3 < len(raw); i += 4 {
		left := int16(uint16(raw[i]) | uint16(raw[i+1])<<8)
		right := int16(uint16(raw[i+2]) | uint16(raw[i+3])<<8)
		samples = append(samples, (float64(left)+float64(right))/2.0/32768.0)
	}

	return samples, decoder.SampleRate(), nil
}

// frameEnergies computes per-frame RMS energy
func frameEnergies(samples []float64) []float64 {
	var energies []float64
	for start := 0; start+frameSize <= len(samples); start += hopSize {
		var sum float64
		for _, s := range samples[start : start+frameSize] {
			sum += s * s
		}
		energies = append(energies, math.Sqrt(sum/float64(frameSize)))
	}
	return energies
}

// countPauses counts silence runs of at least 200ms between speech
func countPauses(energies []float64, threshold float64, sampleRate int) int {
	minPauseFrames := int(0.2 * float64(sampleRate) / float64(hopSize))
	if minPauseFrames < 1 {
		minPauseFrames = 1
	}

	pauses := 0
	run := 0
	speechSeen := false
	for _, energy := range energies {
		if energy <= threshold {
			run++
			continue
		}
		if speechSeen && run >= minPauseFrames {
			pauses++
		}
		speechSeen = true
		run = 0
	}
	return pauses
}

// trackPitch estimates per-frame fundamental frequency on voiced frames
// using normalized autocorrelation over the plausible lag range.
func trackPitch(samples []float64, sampleRate int, energies []float64, silenceThreshold float64) []float64 {
	minLag := int(float64(sampleRate) / maxPitchHz)
	maxLag := int(float64(sampleRate) / minPitchHz)
	if maxLag >= frameSize {
		maxLag = frameSize - 1
	}

	var pitches []float64
	frameIndex := 0
	for start := 0; start+frameSize <= len(samples); start += hopSize {
		if frameIndex < len(energies) && energies[frameIndex] <= silenceThreshold {
			frameIndex++
			continue
		}
		frameIndex++

		frame := samples[start : start+frameSize]

		var energy float64
		for _, s := range frame {
			energy += s * s
		}
		if energy == 0 {
			continue
		}

		bestLag := 0
		bestCorr := 0.0
		for lag := minLag; lag <= maxLag; lag++ {
			var corr float64
			for i := 0; i+lag < len(frame); i++ {
				corr += frame[i] * frame[i+lag]
			}
			corr /= energy
			if corr > bestCorr {
				bestCorr = corr
				bestLag = lag
			}
		}

		// Require a clear periodic component
		if bestLag > 0 && bestCorr > 0.3 {
			pitches = append(pitches, float64(sampleRate)/float64(bestLag))
		}
	}

	return pitches
}

// pitchJitter measures mean relative frame-to-frame pitch change
func pitchJitter(pitches []float64) float64 {
	if len(pitches) < 2 {
		return 0
	}
	pitchMean := mean(pitches)
	if pitchMean == 0 {
		return 0
	}
	var sum float64
	for i := 1; i < len(pitches); i++ {
		sum += math.Abs(pitches[i] - pitches[i-1])
	}
	return (sum / float64(len(pitches)-1)) / pitchMean
}

// MockExtractor produces deterministic pseudo-random features seeded by the
// audio length. It exists for test harnesses and environments without real
// audio; production fidelity requires the DSP path.
type MockExtractor struct{}

// NewMockExtractor creates the deterministic mock extractor
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

// Name identifies the extractor in logs
func (e *MockExtractor) Name() string {
	return "mock"
}

// Extract generates a stable feature set for the given audio length
func (e *MockExtractor) Extract(audio []byte) (VoiceFeatures, error) {
	if len(audio) == 0 {
		return VoiceFeatures{}, fmt.Errorf("empty audio")
	}

	rng := rand.New(rand.NewSource(int64(len(audio))))

	features := VoiceFeatures{
		PitchMean:        0.7 + rng.Float64()*0.8,
		PitchStd:         rng.Float64() * 0.6,
		VolumeMean:       0.6 + rng.Float64()*1.0,
		VolumeStd:        rng.Float64() * 0.6,
		SpeakingRate:     0.7 + rng.Float64()*0.8,
		PauseFrequency:   rng.Float64() * 2.0,
		TremorIndicators: rng.Float64() * 0.6,
	}

	if features.VolumeStd > 0.4 {
		features.BreathPattern = "irregular"
	} else {
		features.BreathPattern = "regular"
	}

	return features, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddev(values []float64, valueMean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for _, v := range values {
		diff := v - valueMean
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(values)))
}

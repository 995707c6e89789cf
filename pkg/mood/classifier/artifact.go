package classifier

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/pbkdf2"
)

// Artifact integrity errors. Both cause the caller to discard the cached
// file and retrain rather than trust it.
var (
	ErrArtifactIntegrity = errors.New("artifact signature verification failed")
	ErrArtifactVersion   = errors.New("artifact version mismatch")
)

const (
	// artifactKeySalt is fixed: uniqueness comes from the configured secret
	artifactKeySalt = "moodengine-artifact-v1"

	artifactKeyIterations = 4096
	artifactKeySize       = 32
)

// artifactPayload is the serialized form of a trained pipeline
type artifactPayload struct {
	Version  string             `json:"version"`
	Pipeline *TrainedClassifier `json:"pipeline"`
}

// deriveArtifactKey stretches the configured secret into an HMAC key
func deriveArtifactKey(secret []byte) []byte {
	return pbkdf2.Key(secret, []byte(artifactKeySalt), artifactKeyIterations, artifactKeySize, sha256.New)
}

// signPayload computes the HMAC-SHA256 trailer over the payload bytes
func signPayload(payload, key []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(payload)
	return h.Sum(nil)
}

// SaveArtifact serializes the pipeline, appends the HMAC signature and
// writes the file atomically: temp file in the same directory, fsync,
// rename. Concurrent readers never observe a partial artifact.
func SaveArtifact(path string, secret []byte, pipeline *TrainedClassifier) error {
	payload, err := json.Marshal(&artifactPayload{
		Version:  pipeline.Version,
		Pipeline: pipeline,
	})
	if err != nil {
		return fmt.Errorf("failed to serialize model artifact: %w", err)
	}

	signature := signPayload(payload, deriveArtifactKey(secret))
	data := append(payload, signature...)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifact directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp artifact file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp artifact file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move artifact into place: %w", err)
	}

	return nil
}

// LoadArtifact reads a persisted pipeline, verifies the trailing HMAC in
// constant time and checks the embedded version tag against the expected
// one. Any mismatch returns an error; tampered bytes are never used.
func LoadArtifact(path string, secret []byte, expectedVersion string) (*TrainedClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}

	if len(data) <= sha256.Size {
		return nil, fmt.Errorf("%w: artifact too short (%d bytes)", ErrArtifactIntegrity, len(data))
	}

	payload := data[:len(data)-sha256.Size]
	signature := data[len(data)-sha256.Size:]

	expected := signPayload(payload, deriveArtifactKey(secret))
	if !hmac.Equal(signature, expected) {
		return nil, ErrArtifactIntegrity
	}

	var stored artifactPayload
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}

	if stored.Version != expectedVersion {
		return nil, fmt.Errorf("%w: artifact has %q, expected %q", ErrArtifactVersion, stored.Version, expectedVersion)
	}
	if stored.Pipeline == nil || stored.Pipeline.Vectorizer == nil || stored.Pipeline.Model == nil || len(stored.Pipeline.Calibrators) == 0 {
		return nil, fmt.Errorf("%w: artifact payload incomplete", ErrArtifactIntegrity)
	}

	return stored.Pipeline, nil
}

// VerifyArtifact checks the artifact on disk end to end, signature and
// version included. Used by the maintenance job.
func VerifyArtifact(path string, secret []byte, expectedVersion string) error {
	_, err := LoadArtifact(path, secret, expectedVersion)
	return err
}

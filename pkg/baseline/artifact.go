package baseline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact is the frozen baseline model: everything a runtime predictor
// needs to reproduce the pipeline's log-space output without any training
// machinery. It is assembled once per run and immutable after serialization.
type Artifact struct {
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
	Scaler       ScalerParams       `json:"scaler"`
	Metadata     Metadata           `json:"metadata"`
}

// ScalerParams holds the standardization statistics keyed by the original
// feature names.
type ScalerParams struct {
	Mean  map[string]float64 `json:"mean"`
	Scale map[string]float64 `json:"scale"`
}

// Metadata describes the fit that produced the artifact. Features fixes the
// transformed column order; Coefficients carries exactly these keys.
type Metadata struct {
	Samples  int      `json:"samples"`
	MAECVLog float64  `json:"mae_cv_log"`
	Features []string `json:"features"`
}

// Save writes the artifact as indented JSON. It writes to a temp file in
// the target directory and renames it into place, so a failed run never
// leaves a partial artifact behind.
func (a *Artifact) Save(path string) error {
	buf, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal baseline model: %w", err)
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("write baseline model: %w", err)
	}
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write baseline model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write baseline model: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write baseline model: %w", err)
	}
	return nil
}

// LoadArtifact reads a previously saved artifact.
func LoadArtifact(path string) (*Artifact, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline model: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(buf, &a); err != nil {
		return nil, fmt.Errorf("parse baseline model: %w", err)
	}
	return &a, nil
}

// Predict evaluates the frozen baseline for one sample and returns the
// log-space prediction. numeric maps original feature names to raw values;
// catColumn is the sample's one-hot column name (see dataprep.OneHotColumn).
// A category unseen at fit time has no matching column and contributes
// nothing, mirroring the encoder's ignore-unknown policy.
func (a *Artifact) Predict(numeric map[string]float64, catColumn string) float64 {
	sum := a.Intercept
	for _, name := range a.Metadata.Features {
		w := a.Coefficients[name]
		if mean, ok := a.Scaler.Mean[name]; ok {
			sum += w * ((numeric[name] - mean) / a.Scaler.Scale[name])
			continue
		}
		if name == catColumn {
			sum += w
		}
	}
	return sum
}

// Package config loads the YAML tuning bundles consumed by the
// recommender CLI: a position mask, a row count, and — for the EASE
// variant — temp_penalty and cooling_factor. Modeled directly on
// sim/bundle.go's PolicyBundle/LoadPolicyBundle: strict YAML decoding
// (unknown fields rejected) followed by an explicit Validate step.
package config

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/full-page-recommender/fpr"
)

// TuningBundle holds the knobs a caller would otherwise have to wire up by
// hand: the position mask, how many rows to build, and the EASE penalty
// parameters (ignored by the basic recommend path).
type TuningBundle struct {
	PositionMask  []float64 `yaml:"position_mask"`
	NumRows       int       `yaml:"num_rows"`
	TempPenalty   float64   `yaml:"temp_penalty"`
	CoolingFactor float64   `yaml:"cooling_factor"`
}

// LoadTuningBundle reads and strictly parses a YAML tuning file. Unknown
// keys (typos) are rejected at decode time, the same as LoadPolicyBundle.
func LoadTuningBundle(path string) (*TuningBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tuning config: %w", err)
	}
	var bundle TuningBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing tuning config: %w", err)
	}
	return &bundle, nil
}

// Validate checks the bundle against the same domain rules the core
// enforces at the call boundary (cooling_factor in [0,1], temp_penalty
// non-negative, mask entries finite and non-negative), so a config error
// surfaces at load time rather than on the first recommend call. Every
// violation is reported as *fpr.DomainError. For the mask-entry,
// temp_penalty and cooling_factor rules that is the same type the core
// returns at a Recommend/NewEaseFPR call; for a negative num_rows or an
// empty mask with num_rows > 0 the core returns *fpr.ArgumentError and
// *fpr.ShapeError instead.
func (b *TuningBundle) Validate() error {
	if b.NumRows < 0 {
		return &fpr.DomainError{Msg: fmt.Sprintf("num_rows must be non-negative, got %d", b.NumRows)}
	}
	if b.NumRows > 0 && len(b.PositionMask) == 0 {
		return &fpr.DomainError{Msg: "position_mask must be non-empty when num_rows > 0"}
	}
	for i, w := range b.PositionMask {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return &fpr.DomainError{Msg: fmt.Sprintf("position_mask[%d] must be a finite non-negative number, got %v", i, w)}
		}
	}
	if b.TempPenalty < 0 {
		return &fpr.DomainError{Msg: fmt.Sprintf("temp_penalty must be non-negative, got %v", b.TempPenalty)}
	}
	if b.CoolingFactor < 0 || b.CoolingFactor > 1 {
		return &fpr.DomainError{Msg: fmt.Sprintf("cooling_factor must be in [0,1], got %v", b.CoolingFactor)}
	}
	return nil
}

// Mask converts the bundle's position mask to a fpr.PositionMask.
func (b *TuningBundle) Mask() fpr.PositionMask {
	return fpr.PositionMask(b.PositionMask)
}

// NewGeometricMask builds the canonical production position mask
// mentioned in spec: base^i for i in [0, length). base is typically 0.8;
// the core does not require the result to be normalized.
func NewGeometricMask(base float64, length int) fpr.PositionMask {
	mask := make(fpr.PositionMask, length)
	w := 1.0
	for i := 0; i < length; i++ {
		mask[i] = w
		w *= base
	}
	return mask
}

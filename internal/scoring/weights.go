package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Weights defines the coefficient for each fit factor. The seven weights
// must sum to 1.0 so that totals stay in [0,1].
type Weights struct {
	Climate    float64 `json:"climate"`
	Occasion   float64 `json:"occasion"`
	Intensity  float64 `json:"intensity"`
	Longevity  float64 `json:"longevity"`
	Latent     float64 `json:"latent"`
	Aspiration float64 `json:"aspiration"`
	Diversity  float64 `json:"diversity"`
}

// DefaultWeights returns the baseline weight table.
func DefaultWeights() Weights {
	return Weights{
		Climate:    0.20,
		Occasion:   0.15,
		Intensity:  0.15,
		Longevity:  0.15,
		Latent:     0.20,
		Aspiration: 0.10,
		Diversity:  0.05,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Climate + w.Occasion + w.Intensity + w.Longevity +
		w.Latent + w.Aspiration + w.Diversity
}

// Validate checks that weights sum to 1.0 (±0.001) and none are negative.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.Climate, w.Occasion, w.Intensity, w.Longevity, w.Latent, w.Aspiration, w.Diversity} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

// LoadWeightsFromFile loads weights from a JSON file, starting from defaults
// so a partial file only overrides the listed factors.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return w, fmt.Errorf("unmarshal weights: %w", err)
	}
	if err := w.Validate(); err != nil {
		return w, err
	}
	return w, nil
}

package scoring

import (
	"errors"
	"math"

	"github.com/scentlab/fragrance-match/internal/domain"
)

// ErrInvalidK is returned by Recommend for a negative k.
var ErrInvalidK = errors.New("k must be >= 0")

// Engine scores fragrances against a user profile and runs the greedy
// diversified selection. It holds only read-only state (weights, catalog),
// so concurrent Recommend calls are safe.
type Engine struct {
	weights Weights
	catalog []domain.Fragrance
}

func NewEngine(w Weights, catalog []domain.Fragrance) *Engine {
	return &Engine{weights: w, catalog: catalog}
}

// Weights returns the engine's weight table.
func (e *Engine) Weights() Weights { return e.weights }

// Catalog returns the engine's catalog in insertion order.
func (e *Engine) Catalog() []domain.Fragrance { return e.catalog }

// Score computes the full per-factor breakdown for one (user, fragrance,
// picked-so-far) triple, rounded to 3 decimals for display.
func (e *Engine) Score(user domain.UserProfile, f domain.Fragrance, picked []domain.Fragrance) domain.ScoreBreakdown {
	parts, total := e.scoreRaw(user, f, picked)
	return roundBreakdown(parts, total)
}

// scoreRaw returns the unrounded breakdown and total. The selector compares
// raw totals; rounding is display-only.
func (e *Engine) scoreRaw(user domain.UserProfile, f domain.Fragrance, picked []domain.Fragrance) (domain.ScoreBreakdown, float64) {
	parts := domain.ScoreBreakdown{
		Climate:    ClimateFit(user, f),
		Occasion:   OccasionFit(user, f),
		Intensity:  IntensityFit(user, f),
		Longevity:  LongevityFit(user, f),
		Latent:     LatentSim(user, f),
		Aspiration: AspirationFit(user, f),
		Diversity:  DiversityBonus(picked, f),
	}
	total := e.weights.Climate*parts.Climate +
		e.weights.Occasion*parts.Occasion +
		e.weights.Intensity*parts.Intensity +
		e.weights.Longevity*parts.Longevity +
		e.weights.Latent*parts.Latent +
		e.weights.Aspiration*parts.Aspiration +
		e.weights.Diversity*parts.Diversity
	return parts, total
}

// Recommend runs k rounds of greedy selection over the catalog, re-scoring
// the remaining candidates each round because the diversity bonus depends on
// what was already picked. Ties are broken by catalog insertion order: the
// comparison is strict greater-than against a running best, so the first
// candidate encountered wins. Cost is O(len(catalog) * k).
//
// A k larger than the catalog is not an error; selection stops early and the
// result is simply shorter. k = 0 yields an empty list.
func (e *Engine) Recommend(user domain.UserProfile, k int) ([]domain.Recommendation, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}

	candidates := make([]domain.Fragrance, len(e.catalog))
	copy(candidates, e.catalog)

	picked := make([]domain.Fragrance, 0, k)
	results := make([]domain.Recommendation, 0, k)

	for round := 0; round < k; round++ {
		bestIdx := -1
		bestScore := -1.0
		var bestParts domain.ScoreBreakdown

		for i, f := range candidates {
			parts, total := e.scoreRaw(user, f, picked)
			if total > bestScore {
				bestIdx, bestScore, bestParts = i, total, parts
			}
		}
		if bestIdx < 0 {
			break
		}

		best := candidates[bestIdx]
		picked = append(picked, best)
		results = append(results, domain.Recommendation{
			ID:         best.ID,
			Name:       best.FullName(),
			Score:      round3(bestScore),
			Parts:      roundBreakdown(bestParts, bestScore),
			Archetypes: best.Archetypes,
		})
		// Remove by index, keeping the order of the rest stable so later
		// rounds break ties the same way.
		candidates = append(candidates[:bestIdx], candidates[bestIdx+1:]...)
	}
	return results, nil
}

func roundBreakdown(parts domain.ScoreBreakdown, total float64) domain.ScoreBreakdown {
	return domain.ScoreBreakdown{
		Climate:    round3(parts.Climate),
		Occasion:   round3(parts.Occasion),
		Intensity:  round3(parts.Intensity),
		Longevity:  round3(parts.Longevity),
		Latent:     round3(parts.Latent),
		Aspiration: round3(parts.Aspiration),
		Diversity:  round3(parts.Diversity),
		Total:      round3(total),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

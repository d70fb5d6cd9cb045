// Package scoring implements the quiz recommendation core: seven pure fit
// functions, a fixed-weight aggregator, a greedy diversified top-k selector
// and a plain-language explainer.
package scoring

import "github.com/scentlab/fragrance-match/internal/domain"

// Sillage targets per intensity answer; unrecognized answers fall back to 3.
var sillageTargets = map[string]float64{
	"skin":     1,
	"moderate": 3,
	"trail":    5,
}

// Longevity targets per goal answer; unrecognized answers fall back to 4.
var longevityTargets = map[string]float64{
	"short":   2,
	"workday": 4,
	"allday":  5,
}

func sillageTarget(intensity string) float64 {
	if t, ok := sillageTargets[intensity]; ok {
		return t
	}
	return 3
}

func longevityTarget(goal string) float64 {
	if t, ok := longevityTargets[goal]; ok {
		return t
	}
	return 4
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// closeness maps the distance between two [0,1] values to a similarity.
func closeness(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	return 1 - d
}

// ClimateFit rewards items tagged for the user's climate. "mixed" users get
// full credit for versatile items (two or more seasonality tags) instead of
// requiring a specific match; misses score a soft 0.3, never zero, so a
// single factor cannot prune an item outright.
func ClimateFit(user domain.UserProfile, f domain.Fragrance) float64 {
	if user.Climate == "mixed" {
		if len(f.Seasonality) >= 2 {
			return 1.0
		}
		return 0.7
	}
	for _, s := range f.Seasonality {
		if s == user.Climate {
			return 1.0
		}
	}
	return 0.3
}

// OccasionFit gives full credit for an exact occasion match, partial credit
// to versatile "everyday" items, and a floor of 0.2 otherwise.
func OccasionFit(user domain.UserProfile, f domain.Fragrance) float64 {
	everyday := false
	for _, o := range f.Occasions {
		if o == user.Occasion {
			return 1.0
		}
		if o == "everyday" {
			everyday = true
		}
	}
	if everyday {
		return 0.6
	}
	return 0.2
}

// IntensityFit decays linearly with the distance between the item's sillage
// and the target implied by the user's intensity answer, normalized so the
// maximum distance on the 1..5 scale (4) scores zero.
func IntensityFit(user domain.UserProfile, f domain.Fragrance) float64 {
	target := sillageTarget(user.Intensity)
	d := float64(f.Sillage) - target
	if d < 0 {
		d = -d
	}
	return clamp01(1 - d/4)
}

// LongevityFit applies the same linear decay against the item's longevity
// rating and the target implied by the user's longevity goal.
func LongevityFit(user domain.UserProfile, f domain.Fragrance) float64 {
	target := longevityTarget(user.LongevityGoal)
	d := float64(f.Longevity) - target
	if d < 0 {
		d = -d
	}
	return clamp01(1 - d/4)
}

// LatentSim averages closeness on the weight and brightness axes, equally
// weighted.
func LatentSim(user domain.UserProfile, f domain.Fragrance) float64 {
	a := closeness(user.WeightPref, f.Weight)
	b := closeness(user.BrightnessPref, f.Brightness)
	return 0.5*a + 0.5*b
}

// AspirationFit measures how much of the user's aspiration list the item's
// archetypes cover. The ratio is over the user's list, not the item's
// archetype count: a long wishlist is harder to satisfy fully. An empty
// aspiration list is no signal and scores a neutral 0.5.
func AspirationFit(user domain.UserProfile, f domain.Fragrance) float64 {
	if len(user.Aspiration) == 0 {
		return 0.5
	}
	have := make(map[string]struct{}, len(f.Archetypes))
	for _, a := range f.Archetypes {
		have[a] = struct{}{}
	}
	overlap := 0
	for _, want := range user.Aspiration {
		if _, ok := have[want]; ok {
			overlap++
		}
	}
	return clamp01(float64(overlap) / float64(max(1, len(user.Aspiration))))
}

// DiversityBonus is a binary novelty signal: 0.05 if the candidate brings at
// least one archetype not yet covered by the picked items, else 0. The first
// pick always gets the bonus.
func DiversityBonus(picked []domain.Fragrance, candidate domain.Fragrance) float64 {
	if len(picked) == 0 {
		return 0.05
	}
	have := make(map[string]struct{})
	for _, f := range picked {
		for _, a := range f.Archetypes {
			have[a] = struct{}{}
		}
	}
	for _, a := range candidate.Archetypes {
		if _, ok := have[a]; !ok {
			return 0.05
		}
	}
	return 0.0
}

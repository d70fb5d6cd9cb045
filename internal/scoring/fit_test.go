package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scentlab/fragrance-match/internal/catalog"
	"github.com/scentlab/fragrance-match/internal/domain"
)

func baseProfile() domain.UserProfile {
	return domain.UserProfile{
		Climate:        "mild",
		Occasion:       "office",
		Intensity:      "skin",
		LongevityGoal:  "workday",
		WeightPref:     0.40,
		BrightnessPref: 0.35,
		Aspiration:     []string{"elegant", "mysterious"},
	}
}

func TestFitFunctionsStayInRange(t *testing.T) {
	profiles := []domain.UserProfile{
		baseProfile(),
		{Climate: "mixed", Occasion: "gym", Intensity: "trail", LongevityGoal: "allday", WeightPref: 1, BrightnessPref: 0},
		{Climate: "desert", Occasion: "space", Intensity: "nuclear", LongevityGoal: "forever", WeightPref: 0.5, BrightnessPref: 0.5, Aspiration: []string{"unknown"}},
		{},
	}

	var picked []domain.Fragrance
	for _, user := range profiles {
		for _, f := range catalog.Default() {
			for name, v := range map[string]float64{
				"climate":    ClimateFit(user, f),
				"occasion":   OccasionFit(user, f),
				"intensity":  IntensityFit(user, f),
				"longevity":  LongevityFit(user, f),
				"latent":     LatentSim(user, f),
				"aspiration": AspirationFit(user, f),
				"diversity":  DiversityBonus(picked, f),
			} {
				assert.GreaterOrEqual(t, v, 0.0, "%s for %s", name, f.ID)
				assert.LessOrEqual(t, v, 1.0, "%s for %s", name, f.ID)
			}
			picked = append(picked, f)
		}
	}
}

func TestClimateFit(t *testing.T) {
	item := domain.Fragrance{Seasonality: []string{"mild", "hot"}}

	user := baseProfile()
	assert.Equal(t, 1.0, ClimateFit(user, item))

	user.Climate = "cool"
	assert.Equal(t, 0.3, ClimateFit(user, item))

	// mixed rewards versatility, not a specific match
	user.Climate = "mixed"
	assert.Equal(t, 1.0, ClimateFit(user, item))
	assert.Equal(t, 0.7, ClimateFit(user, domain.Fragrance{Seasonality: []string{"cool"}}))
}

func TestOccasionFit(t *testing.T) {
	user := baseProfile()

	assert.Equal(t, 1.0, OccasionFit(user, domain.Fragrance{Occasions: []string{"office", "date"}}))
	assert.Equal(t, 0.6, OccasionFit(user, domain.Fragrance{Occasions: []string{"everyday", "date"}}))
	assert.Equal(t, 0.2, OccasionFit(user, domain.Fragrance{Occasions: []string{"formal"}}))
}

func TestIntensityFit(t *testing.T) {
	user := baseProfile() // skin -> target sillage 1

	assert.Equal(t, 1.0, IntensityFit(user, domain.Fragrance{Sillage: 1}))
	assert.Equal(t, 0.5, IntensityFit(user, domain.Fragrance{Sillage: 3}))
	assert.Equal(t, 0.0, IntensityFit(user, domain.Fragrance{Sillage: 5}))

	// unrecognized intensity falls back to the moderate target of 3
	user.Intensity = "nuclear"
	assert.Equal(t, 1.0, IntensityFit(user, domain.Fragrance{Sillage: 3}))
	assert.Equal(t, 0.5, IntensityFit(user, domain.Fragrance{Sillage: 1}))
}

func TestLongevityFit(t *testing.T) {
	user := baseProfile() // workday -> target 4

	assert.Equal(t, 1.0, LongevityFit(user, domain.Fragrance{Longevity: 4}))
	assert.Equal(t, 0.75, LongevityFit(user, domain.Fragrance{Longevity: 3}))

	// unrecognized goal falls back to the workday target of 4
	user.LongevityGoal = "forever"
	assert.Equal(t, 1.0, LongevityFit(user, domain.Fragrance{Longevity: 4}))
}

func TestLatentSim(t *testing.T) {
	user := baseProfile()

	assert.InDelta(t, 1.0, LatentSim(user, domain.Fragrance{Weight: 0.40, Brightness: 0.35}), 1e-9)
	assert.InDelta(t, 0.95, LatentSim(user, domain.Fragrance{Weight: 0.45, Brightness: 0.30}), 1e-9)
}

func TestAspirationFit(t *testing.T) {
	user := baseProfile() // [elegant, mysterious]

	assert.Equal(t, 1.0, AspirationFit(user, domain.Fragrance{Archetypes: []string{"elegant", "mysterious", "bold"}}))
	assert.Equal(t, 0.5, AspirationFit(user, domain.Fragrance{Archetypes: []string{"elegant", "refined"}}))
	assert.Equal(t, 0.0, AspirationFit(user, domain.Fragrance{Archetypes: []string{"bold"}}))
}

func TestAspirationFitEmptyIsNeutral(t *testing.T) {
	user := baseProfile()
	user.Aspiration = nil

	for _, f := range catalog.Default() {
		assert.Equal(t, 0.5, AspirationFit(user, f), "item %s", f.ID)
	}
}

func TestDiversityBonus(t *testing.T) {
	cand := domain.Fragrance{Archetypes: []string{"bold", "youthful"}}

	// first pick always gets the bonus
	for _, f := range catalog.Default() {
		assert.Equal(t, 0.05, DiversityBonus(nil, f), "item %s", f.ID)
	}

	picked := []domain.Fragrance{{Archetypes: []string{"bold"}}}
	assert.Equal(t, 0.05, DiversityBonus(picked, cand), "youthful is novel")

	picked = append(picked, domain.Fragrance{Archetypes: []string{"youthful"}})
	assert.Equal(t, 0.0, DiversityBonus(picked, cand), "nothing novel left")
}

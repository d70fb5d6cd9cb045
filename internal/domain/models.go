package domain

import "time"

// Fragrance is a catalog item. Instances are read-only for the process
// lifetime; nothing mutates them after startup.
type Fragrance struct {
	ID          string   `json:"id"`
	Brand       string   `json:"brand"`
	Name        string   `json:"name"`
	Weight      float64  `json:"weight"`     // 0 = very light, 1 = very heavy
	Brightness  float64  `json:"brightness"` // 0 = very fresh, 1 = very sweet
	Sillage     int      `json:"sillage"`    // 1..5
	Longevity   int      `json:"longevity"`  // 1..5
	Seasonality []string `json:"seasonality"`
	Occasions   []string `json:"occasions"`
	Archetypes  []string `json:"archetypes"`
	Price       float64  `json:"price"`
}

// FullName joins brand and display name the way the catalog shows it.
func (f Fragrance) FullName() string {
	return f.Brand + " " + f.Name
}

// UserProfile is built once per request and discarded after use.
// Unrecognized categorical values never error; scoring falls back to
// documented defaults.
type UserProfile struct {
	Climate        string   `json:"climate"`         // hot | mild | cool | mixed
	Occasion       string   `json:"occasion"`        // office | date | formal | gym | everyday
	Intensity      string   `json:"intensity"`       // skin | moderate | trail
	LongevityGoal  string   `json:"longevity_goal"`  // short | workday | allday
	WeightPref     float64  `json:"weight_pref"`     // 0..1
	BrightnessPref float64  `json:"brightness_pref"` // 0..1
	Aspiration     []string `json:"aspiration"`
}

// ScoreBreakdown carries the seven per-factor sub-scores plus the weighted
// total, rounded to 3 decimals for display.
type ScoreBreakdown struct {
	Climate    float64 `json:"climate"`
	Occasion   float64 `json:"occasion"`
	Intensity  float64 `json:"intensity"`
	Longevity  float64 `json:"longevity"`
	Latent     float64 `json:"latent"`
	Aspiration float64 `json:"aspiration"`
	Diversity  float64 `json:"diversity"`
	Total      float64 `json:"total"`
}

// Recommendation is one entry of the ranked result list; rank is carried by
// position in the slice.
type Recommendation struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Score      float64        `json:"score"`
	Parts      ScoreBreakdown `json:"parts"`
	Archetypes []string       `json:"archetypes"`
}

// Lead is an optional email capture submitted after a quiz, stored outside
// the scoring path.
type Lead struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	UTMSource   string    `json:"utm_source,omitempty"`
	UTMCampaign string    `json:"utm_campaign,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Package catalog holds the fragrance catalog: a small, fixed, in-memory
// list loaded once at startup and treated as read-only afterwards.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scentlab/fragrance-match/internal/domain"
)

// Default returns the built-in demo catalog. Order matters: the selector
// breaks score ties by catalog insertion order.
func Default() []domain.Fragrance {
	return []domain.Fragrance{
		{ID: "1", Brand: "Chanel", Name: "Bleu de Chanel", Weight: 0.45, Brightness: 0.35, Sillage: 3, Longevity: 4,
			Seasonality: []string{"mild", "hot"}, Occasions: []string{"office", "everyday", "date"}, Archetypes: []string{"refined", "approachable"}, Price: 110},
		{ID: "2", Brand: "Dior", Name: "Sauvage EDT", Weight: 0.50, Brightness: 0.40, Sillage: 4, Longevity: 4,
			Seasonality: []string{"hot", "mild"}, Occasions: []string{"everyday", "date"}, Archetypes: []string{"bold", "youthful"}, Price: 100},
		{ID: "3", Brand: "Le Labo", Name: "Santal 33", Weight: 0.70, Brightness: 0.60, Sillage: 4, Longevity: 5,
			Seasonality: []string{"mild", "cool"}, Occasions: []string{"office", "date", "formal"}, Archetypes: []string{"adventurous", "sensual"}, Price: 220},
		{ID: "4", Brand: "MFK", Name: "Baccarat Rouge 540", Weight: 0.80, Brightness: 0.85, Sillage: 5, Longevity: 5,
			Seasonality: []string{"cool", "mild"}, Occasions: []string{"formal", "date"}, Archetypes: []string{"bold", "mysterious", "elegant"}, Price: 300},
		{ID: "5", Brand: "Chanel", Name: "No.5 EDP", Weight: 0.65, Brightness: 0.70, Sillage: 3, Longevity: 5,
			Seasonality: []string{"cool", "mild"}, Occasions: []string{"formal", "office"}, Archetypes: []string{"elegant", "refined"}, Price: 200},
		{ID: "6", Brand: "Tom Ford", Name: "Black Orchid", Weight: 0.85, Brightness: 0.80, Sillage: 5, Longevity: 5,
			Seasonality: []string{"cool"}, Occasions: []string{"date", "formal"}, Archetypes: []string{"mysterious", "bold", "sensual"}, Price: 180},
		{ID: "7", Brand: "Jo Malone", Name: "Wood Sage & Sea Salt", Weight: 0.25, Brightness: 0.15, Sillage: 2, Longevity: 3,
			Seasonality: []string{"hot", "mild"}, Occasions: []string{"office", "everyday"}, Archetypes: []string{"approachable", "refined"}, Price: 120},
		{ID: "8", Brand: "Prada", Name: "Infusion d'Iris", Weight: 0.35, Brightness: 0.30, Sillage: 2, Longevity: 4,
			Seasonality: []string{"mild", "cool"}, Occasions: []string{"office", "formal"}, Archetypes: []string{"elegant", "refined"}, Price: 150},
		{ID: "9", Brand: "Giorgio Armani", Name: "Acqua di Giò Profondo", Weight: 0.40, Brightness: 0.25, Sillage: 3, Longevity: 4,
			Seasonality: []string{"hot", "mild"}, Occasions: []string{"everyday", "office"}, Archetypes: []string{"approachable", "youthful"}, Price: 120},
	}
}

// LoadFromFile reads a catalog from a JSON file and validates it.
func LoadFromFile(path string) ([]domain.Fragrance, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var items []domain.Fragrance
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if err := Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Validate checks the catalog invariants: unique ids, weight and brightness
// in [0,1], sillage and longevity in 1..5, positive price.
func Validate(items []domain.Fragrance) error {
	seen := make(map[string]struct{}, len(items))
	for i, f := range items {
		if f.ID == "" {
			return fmt.Errorf("catalog item %d: empty id", i)
		}
		if _, ok := seen[f.ID]; ok {
			return fmt.Errorf("catalog item %q: duplicate id", f.ID)
		}
		seen[f.ID] = struct{}{}

		if f.Weight < 0 || f.Weight > 1 {
			return fmt.Errorf("catalog item %q: weight %.2f out of [0,1]", f.ID, f.Weight)
		}
		if f.Brightness < 0 || f.Brightness > 1 {
			return fmt.Errorf("catalog item %q: brightness %.2f out of [0,1]", f.ID, f.Brightness)
		}
		if f.Sillage < 1 || f.Sillage > 5 {
			return fmt.Errorf("catalog item %q: sillage %d out of [1,5]", f.ID, f.Sillage)
		}
		if f.Longevity < 1 || f.Longevity > 5 {
			return fmt.Errorf("catalog item %q: longevity %d out of [1,5]", f.ID, f.Longevity)
		}
		if f.Price <= 0 {
			return fmt.Errorf("catalog item %q: price must be > 0", f.ID)
		}
	}
	return nil
}

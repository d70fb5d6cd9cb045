package scoring

import (
	"fmt"
	"strings"

	"github.com/scentlab/fragrance-match/internal/domain"
)

// moodPhrase turns the intensity answer into the wording used in
// explanations. Anything unrecognized reads as the middle option.
func moodPhrase(intensity string) string {
	switch intensity {
	case "skin":
		return "skin-close"
	case "trail":
		return "leaves a trail"
	default:
		return "moderately projecting"
	}
}

// Explain renders a one-sentence justification for a pick from the user's
// answers alone; it never looks past the result entry into the catalog.
func Explain(user domain.UserProfile, _ domain.Recommendation) string {
	asp := "your style"
	if len(user.Aspiration) > 0 {
		asp = strings.Join(user.Aspiration, ", ")
	}
	return fmt.Sprintf(
		"Because you chose %s in a %s climate and prefer %s with %s longevity, "+
			"we prioritized weight/brightness close to your taste and scents mapped to %s.",
		user.Occasion, user.Climate, moodPhrase(user.Intensity), user.LongevityGoal, asp,
	)
}

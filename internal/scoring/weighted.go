package scoring

import "context"

// Weight and bonus constants for the default scorer. Seniors get a fixed
// uplift because pension transfer delays cost them disproportionately close
// to retirement.
const (
	weightDaysInState = 0.12
	weightOverdueDays = 0.35
	weightDocQuality  = 0.04
	seniorBonus       = 1.0

	// SeniorAgeFloor is the client age at which the senior uplift applies.
	SeniorAgeFloor = 55
)

type weighted struct{}

// NewWeightedScorer creates the default heuristic scorer. It is a pure
// weighted sum over case features, always available, and clamped to [0, 10].
func NewWeightedScorer() PriorityScorer {
	return weighted{}
}

func (weighted) Score(_ context.Context, f Features) (float64, error) {
	overdue := max(0, f.SLAOverdueDays)

	score := float64(f.DaysInState)*weightDaysInState +
		float64(overdue)*weightOverdueDays +
		(100-clampQuality(f.DocQuality))*weightDocQuality

	if f.ClientAge >= SeniorAgeFloor {
		score += seniorBonus
	}

	return max(0, min(10, score)), nil
}

func clampQuality(q float64) float64 {
	return max(0, min(100, q))
}

package score

import (
	"math"

	"github.com/civic-guardian/civic-api/schema"
)

// VotePressureFactor scales the active not-resolved vote count into the
// vote-pressure component.
const VotePressureFactor = 2

// VotePressure is the score contribution of the currently active
// not-resolved votes.
func VotePressure(notResolvedVotes int) int {
	return VotePressureFactor * notResolvedVotes
}

// PriorityScore combines severity, vote pressure and POI proximity into the
// final priority score, rounded to two decimal places.
func PriorityScore(p schema.ScoreParams, severity, notResolvedVotes, locationWeight int) float64 {
	s := p.Severity*float64(severity) +
		p.Votes*float64(VotePressure(notResolvedVotes)) +
		p.Location*float64(locationWeight)

	return math.Round(s*100) / 100
}

// DefaultPriorityScore computes the priority score with the standard
// coefficients.
func DefaultPriorityScore(severity, notResolvedVotes, locationWeight int) float64 {
	return PriorityScore(schema.DefaultScoreParams(), severity, notResolvedVotes, locationWeight)
}

// PriorityFromSeverity assigns the initial priority label at submission
// time, before any votes exist. It deliberately looks at severity alone,
// matching how complaints have always been triaged at intake.
func PriorityFromSeverity(severity int) schema.Priority {
	switch {
	case severity >= 7:
		return schema.PriorityCritical
	case severity >= 5:
		return schema.PriorityHigh
	case severity >= 2:
		return schema.PriorityMedium
	default:
		return schema.PriorityLow
	}
}

package verify

import (
	"github.com/civic-guardian/civic-api/schema"
)

// Thresholds are the vote counts that drive confirmation and escalation.
// Loaded once at startup and injected into the store.
type Thresholds struct {
	ResolvedConfirm    int64 `mapstructure:"resolved_confirm"`
	NotResolvedConfirm int64 `mapstructure:"not_resolved_confirm"`
	PriorityHigh       int64 `mapstructure:"priority_high"`
	PriorityCritical   int64 `mapstructure:"priority_critical"`
}

// DefaultThresholds returns the standard vote thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ResolvedConfirm:    3,
		NotResolvedConfirm: 3,
		PriorityHigh:       3,
		PriorityCritical:   6,
	}
}

// Decision is the outcome of evaluating one vote event. Priority and State
// carry the values the complaint should hold afterwards, unchanged fields
// keep their current value.
type Decision struct {
	Priority   schema.Priority
	State      schema.ComplaintState
	Archive    bool
	PurgeVotes bool
}

// Evaluate decides the complaint transition for the currently active vote
// counts. Priority escalation is independent of the confirmation branches
// and never downgrades. Resolved confirmation is checked first and wins when
// both confirmation thresholds are met at once.
func (t Thresholds) Evaluate(state schema.ComplaintState, priority schema.Priority, resolved, notResolved int64) Decision {
	d := Decision{
		Priority: priority,
		State:    state,
	}

	if notResolved >= t.PriorityCritical && priority.Rank() < schema.PriorityCritical.Rank() {
		d.Priority = schema.PriorityCritical
	} else if notResolved >= t.PriorityHigh && priority.Rank() < schema.PriorityHigh.Rank() {
		d.Priority = schema.PriorityHigh
	}

	if resolved >= t.ResolvedConfirm {
		d.State = schema.StateVerifiedResolved
		d.Archive = true
		d.PurgeVotes = true
	} else if notResolved >= t.NotResolvedConfirm {
		d.State = schema.StateCommunityVerified
		d.PurgeVotes = true
	}

	return d
}

// transitions lists the workflow moves an administrator may make. Terminal
// states are reached through Evaluate only.
var transitions = map[schema.ComplaintState][]schema.ComplaintState{
	schema.StateUnassigned:          {schema.StateAssigned},
	schema.StateAssigned:            {schema.StateInProgress, schema.StateUnassigned},
	schema.StateInProgress:          {schema.StatePendingVerification, schema.StateAssigned},
	schema.StatePendingVerification: {schema.StateInProgress},
}

// CanTransition reports whether an administrator may move a complaint from
// one workflow state to another.
func CanTransition(from, to schema.ComplaintState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

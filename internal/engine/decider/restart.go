package decider

import (
	"go.trai.ch/decider/internal/core/domain"
)

// RestartRequest is returned when a decision that something else already relies on
// turns out to be wrong. The attempt must be repeated with Preload applied up front.
type RestartRequest struct {
	Resolvent   domain.Resolvent
	Previous    domain.Decision
	Problem     *domain.Constraint
	Replacement domain.Decision
}

func (r *RestartRequest) Error() string {
	return "restart needed for " + r.Resolvent.String() + ": " + r.Previous.Kind() +
		" does not satisfy " + r.Problem.String()
}

// Preload returns the constraint a new attempt starts with. Choice requirements on
// the problem spec are replaced by the choice changes of the replacement decision.
func (r *RestartRequest) Preload() Preload {
	c := *r.Problem
	c.Reason = &domain.PresetReason{Explanation: "restarted because of", Inner: r.Problem.Reason}
	if c.Spec.Package != nil {
		var changed *domain.ChangedChoices
		if dec, ok := r.Replacement.(*domain.ChangesToMakeDecision); ok {
			changed = dec.ChangedChoices
		}
		c.Spec = domain.PackageOrBlockDepSpec{Package: c.Spec.Package.WithChangedChoices(changed)}
	}
	return Preload{Resolvent: r.Resolvent, Constraint: &c}
}

// Preload is a constraint applied before any target.
type Preload struct {
	Resolvent  domain.Resolvent
	Constraint *domain.Constraint
}

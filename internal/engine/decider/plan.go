package decider

import (
	"go.trai.ch/decider/internal/core/domain"
)

// plan orders the resolutions so that dependencies come before their dependents.
// Post dependencies and untaken constraints do not order anything, and cycles are
// broken rather than rejected.
func (d *Decider) plan() *domain.Plan {
	graph := domain.NewGraph()
	for res := range d.resolutions.All() {
		if err := graph.AddNode(res.Resolvent); err != nil {
			d.logger.Error(err)
		}
	}

	for res := range d.resolutions.All() {
		for _, c := range res.Constraints {
			dr, ok := c.Reason.(*domain.DependencyReason)
			if !ok || c.Untaken || dr.Dependency.Class == domain.DependencyPost {
				continue
			}
			if d.resolutions.Find(dr.FromResolvent) == nil || dr.FromResolvent == res.Resolvent {
				continue
			}
			if err := graph.AddEdge(dr.FromResolvent, res.Resolvent); err != nil {
				d.logger.Error(err)
			}
		}
	}

	for _, cycle := range graph.Linearize() {
		d.logger.Debug("breaking dependency cycle: " + cycle)
	}

	plan := &domain.Plan{}
	for r := range graph.Walk() {
		plan.Resolutions = append(plan.Resolutions, d.resolutions.Find(r))
	}
	return plan
}

package domain

// Resolution accumulates constraints for one Resolvent and holds at most one Decision.
type Resolution struct {
	Resolvent   Resolvent
	Constraints Constraints
	Decision    Decision
}

// NewResolution returns an undecided Resolution with no constraints.
func NewResolution(r Resolvent) *Resolution {
	return &Resolution{Resolvent: r}
}

// HasDependentReasonFor reports whether any constraint has a DependentReason for id.
func (r *Resolution) HasDependentReasonFor(id *PackageID) bool {
	for _, c := range r.Constraints {
		if dr, ok := c.Reason.(*DependentReason); ok && dr.ID == id {
			return true
		}
	}
	return false
}

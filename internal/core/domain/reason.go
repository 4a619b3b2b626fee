package domain

import (
	"strings"
)

// Reason records why a constraint exists. The set of reasons is closed.
type Reason interface {
	String() string
	reason()
}

// TargetReason is used for user-requested targets.
type TargetReason struct {
	Extra string
}

// DependencyReason is used for constraints raised by another package's dependency.
type DependencyReason struct {
	FromID        *PackageID
	FromResolvent Resolvent
	Dependency    SanitisedDependency
	AlreadyMet    bool
}

// DependentReason is used for installed packages that depend on something going away.
type DependentReason struct {
	ID            *PackageID
	DependentUpon []*PackageID
}

// PresetReason is used for preloaded and preset constraints.
type PresetReason struct {
	Explanation string
	Inner       Reason
}

// SetReason is used for targets that came from a named set.
type SetReason struct {
	Set   string
	Inner Reason
}

// ViaBinaryReason is used for constraints copied onto a binary destination.
type ViaBinaryReason struct {
	Other Resolvent
}

// WasUsedByReason is used for packages that are no longer needed.
type WasUsedByReason struct {
	IDs []*PackageID
}

// LikeOtherDestinationTypeReason is used for constraints copied from the same
// package and slot on another destination.
type LikeOtherDestinationTypeReason struct {
	Other Resolvent
	Inner Reason
}

func (*TargetReason) reason()                   {}
func (*DependencyReason) reason()               {}
func (*DependentReason) reason()                {}
func (*PresetReason) reason()                   {}
func (*SetReason) reason()                      {}
func (*ViaBinaryReason) reason()                {}
func (*WasUsedByReason) reason()                {}
func (*LikeOtherDestinationTypeReason) reason() {}

func (r *TargetReason) String() string {
	if r.Extra != "" {
		return "target (" + r.Extra + ")"
	}
	return "target"
}

func (r *DependencyReason) String() string {
	s := "dependency of " + r.FromID.String() + ": " + r.Dependency.String()
	if r.AlreadyMet {
		s += " (already met)"
	}
	return s
}

func (r *DependentReason) String() string {
	return "dependent " + r.ID.String() + " upon " + joinIDs(r.DependentUpon)
}

func (r *PresetReason) String() string {
	if r.Inner != nil {
		return r.Explanation + " " + r.Inner.String()
	}
	return r.Explanation
}

func (r *SetReason) String() string {
	return "from set " + r.Set + ": " + r.Inner.String()
}

func (r *ViaBinaryReason) String() string {
	return "via binary for " + r.Other.String()
}

func (r *WasUsedByReason) String() string {
	if len(r.IDs) == 0 {
		return "no longer used"
	}
	return "was used by " + joinIDs(r.IDs)
}

func (r *LikeOtherDestinationTypeReason) String() string {
	return "like " + r.Other.String() + ": " + r.Inner.String()
}

func joinIDs(ids []*PackageID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, ", ")
}

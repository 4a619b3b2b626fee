package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// UseExisting governs whether an installed package may satisfy a constraint
// without being reinstalled. Values are ordered from strictest to most lenient.
type UseExisting int

const (
	// UseExistingNever always reinstalls.
	UseExistingNever UseExisting = iota
	// UseExistingOnlyIfTransient keeps only transient packages.
	UseExistingOnlyIfTransient
	// UseExistingIfSameMetadata keeps the package if it is the same including metadata.
	UseExistingIfSameMetadata
	// UseExistingIfSame keeps the package if version and choices are the same.
	UseExistingIfSame
	// UseExistingIfSameVersion keeps the package if the version is the same.
	UseExistingIfSameVersion
	// UseExistingIfPossible keeps the package whenever it matches.
	UseExistingIfPossible
)

var useExistingNames = []string{
	UseExistingNever:           "never",
	UseExistingOnlyIfTransient: "only-if-transient",
	UseExistingIfSameMetadata:  "if-same-metadata",
	UseExistingIfSame:          "if-same",
	UseExistingIfSameVersion:   "if-same-version",
	UseExistingIfPossible:      "if-possible",
}

func (u UseExisting) String() string {
	if int(u) < 0 || int(u) >= len(useExistingNames) {
		return "unknown"
	}
	return useExistingNames[u]
}

// ParseUseExisting parses a name such as "if-same".
func ParseUseExisting(s string) (UseExisting, error) {
	for i, name := range useExistingNames {
		if strings.EqualFold(s, name) {
			return UseExisting(i), nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownUseExisting, "cannot parse use-existing policy"), "value", s)
}

// Constraint is one requirement or prohibition on a resolvent.
type Constraint struct {
	Spec             PackageOrBlockDepSpec
	Reason           Reason
	Destination      DestinationType
	UseExisting      UseExisting
	NothingIsFineToo bool
	Untaken          bool
	ForceUnable      bool
	FromID           *PackageID
}

func (c *Constraint) String() string {
	var flags []string
	if c.NothingIsFineToo {
		flags = append(flags, "nothing is fine too")
	}
	if c.Untaken {
		flags = append(flags, "untaken")
	}
	if c.ForceUnable {
		flags = append(flags, "force unable")
	}
	s := c.Spec.String() + " (" + c.Reason.String() + "; use existing " + c.UseExisting.String()
	if len(flags) > 0 {
		s += "; " + strings.Join(flags, ", ")
	}
	return s + ")"
}

// Constraints is the append-only constraint list of a Resolution.
type Constraints []*Constraint

// AllUntaken reports whether no constraint forces the resolvent to be taken.
func (cs Constraints) AllUntaken() bool {
	for _, c := range cs {
		if !c.Untaken {
			return false
		}
	}
	return true
}

// NothingIsFineToo reports whether doing nothing satisfies every constraint.
func (cs Constraints) NothingIsFineToo() bool {
	for _, c := range cs {
		if !c.NothingIsFineToo {
			return false
		}
	}
	return true
}

// StrictestUseExisting returns the strictest use-existing policy in the list.
func (cs Constraints) StrictestUseExisting() UseExisting {
	strictest := UseExistingIfPossible
	for _, c := range cs {
		if c.UseExisting < strictest {
			strictest = c.UseExisting
		}
	}
	return strictest
}

// AllDependent reports whether every taken constraint comes from dependents
// discovery. Untaken constraints such as presets are ignored, but at least one
// dependent constraint must be present.
func (cs Constraints) AllDependent() bool {
	found := false
	for _, c := range cs {
		_, dependent := c.Reason.(*DependentReason)
		if dependent {
			found = true
			continue
		}
		if !c.Untaken {
			return false
		}
	}
	return found
}

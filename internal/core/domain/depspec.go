package domain

import (
	"slices"
	"strings"

	"go.trai.ch/decider/internal/semver"
)

// VersionRequirement is one "operator version" clause of a package spec.
type VersionRequirement struct {
	Operator semver.Operator
	Version  semver.Version
}

// Matches reports whether v satisfies the requirement.
func (r VersionRequirement) Matches(v semver.Version) bool {
	return semver.Satisfies(v, r.Operator, r.Version)
}

// RequirementsMode says how multiple version requirements combine.
type RequirementsMode int

const (
	// RequirementsAnd requires every version requirement to hold.
	RequirementsAnd RequirementsMode = iota
	// RequirementsOr requires at least one version requirement to hold.
	RequirementsOr
)

// ChoiceRequirement is an additional requirement on a choice, written [flag] or [-flag].
type ChoiceRequirement struct {
	Flag    string
	Enabled bool
}

func (c ChoiceRequirement) String() string {
	if c.Enabled {
		return c.Flag
	}
	return "-" + c.Flag
}

// DepNode is a node in a dependency tree.
type DepNode interface {
	depNode()
}

// AllDepSpec requires every child.
type AllDepSpec struct {
	Children []DepNode
}

// AnyDepSpec is satisfied by any one child.
type AnyDepSpec struct {
	Children []DepNode
}

// ConditionalDepSpec applies its children only when Flag is enabled (or disabled, if Inverse).
type ConditionalDepSpec struct {
	Flag     string
	Inverse  bool
	Children []DepNode
}

// PackageDepSpec requires a matching package.
type PackageDepSpec struct {
	Name         InternedString
	Versions     []VersionRequirement
	VersionsMode RequirementsMode
	Slot         string
	Repository   string
	Choices      []ChoiceRequirement
}

// BlockDepSpec forbids a matching package. Strong blockers (!!) may not be
// satisfied by uninstalling afterwards.
type BlockDepSpec struct {
	Blocking PackageDepSpec
	Strong   bool
}

func (*AllDepSpec) depNode()         {}
func (*AnyDepSpec) depNode()         {}
func (*ConditionalDepSpec) depNode() {}
func (*PackageDepSpec) depNode()     {}
func (*BlockDepSpec) depNode()       {}

// MatchesIgnoringChoices checks name, version, slot and repository.
func (s *PackageDepSpec) MatchesIgnoringChoices(id *PackageID) bool {
	if id.Name != s.Name {
		return false
	}
	if s.Slot != "" && s.Slot != id.Slot {
		return false
	}
	if s.Repository != "" && s.Repository != id.Repository {
		return false
	}
	return s.matchesVersion(id)
}

// Matches checks everything including choice requirements, evaluated with changed applied.
func (s *PackageDepSpec) Matches(id *PackageID, changed *ChangedChoices) bool {
	if !s.MatchesIgnoringChoices(id) {
		return false
	}
	for _, req := range s.Choices {
		if id.ChoiceEnabled(req.Flag, changed) != req.Enabled {
			return false
		}
	}
	return true
}

func (s *PackageDepSpec) matchesVersion(id *PackageID) bool {
	if len(s.Versions) == 0 {
		return true
	}
	switch s.VersionsMode {
	case RequirementsOr:
		for _, req := range s.Versions {
			if req.Matches(id.Version) {
				return true
			}
		}
		return false
	default:
		for _, req := range s.Versions {
			if !req.Matches(id.Version) {
				return false
			}
		}
		return true
	}
}

// WithChangedChoices returns a copy with its choice requirements replaced by changed.
func (s *PackageDepSpec) WithChangedChoices(changed *ChangedChoices) *PackageDepSpec {
	out := *s
	out.Versions = slices.Clone(s.Versions)
	out.Choices = changed.Requirements()
	return &out
}

func (s *PackageDepSpec) String() string {
	var b strings.Builder
	name := s.Name.String()
	switch {
	case len(s.Versions) == 1:
		req := s.Versions[0]
		op := string(req.Operator)
		suffix := ""
		if req.Operator == semver.OpEqualStar {
			op, suffix = "=", "*"
		}
		b.WriteString(op + name + "-" + req.Version.String() + suffix)
	default:
		b.WriteString(name)
	}
	if s.Slot != "" {
		b.WriteString(":" + s.Slot)
	}
	if s.Repository != "" {
		b.WriteString("::" + s.Repository)
	}
	if len(s.Versions) > 1 {
		sep := "&"
		if s.VersionsMode == RequirementsOr {
			sep = "|"
		}
		parts := make([]string, 0, len(s.Versions))
		for _, req := range s.Versions {
			parts = append(parts, string(req.Operator)+req.Version.String())
		}
		b.WriteString("[" + strings.Join(parts, sep) + "]")
	}
	if len(s.Choices) > 0 {
		parts := make([]string, 0, len(s.Choices))
		for _, c := range s.Choices {
			parts = append(parts, c.String())
		}
		b.WriteString("[" + strings.Join(parts, ",") + "]")
	}
	return b.String()
}

func (s *BlockDepSpec) String() string {
	if s.Strong {
		return "!!" + s.Blocking.String()
	}
	return "!" + s.Blocking.String()
}

// PackageOrBlockDepSpec holds exactly one of Package or Block.
type PackageOrBlockDepSpec struct {
	Package *PackageDepSpec
	Block   *BlockDepSpec
}

// Name returns the package name the spec is about.
func (s PackageOrBlockDepSpec) Name() InternedString {
	if s.Block != nil {
		return s.Block.Blocking.Name
	}
	return s.Package.Name
}

// Matches reports whether id satisfies the spec: a package spec must match,
// a blocker must not.
func (s PackageOrBlockDepSpec) Matches(id *PackageID, changed *ChangedChoices) bool {
	if s.Block != nil {
		return !s.Block.Blocking.Matches(id, changed)
	}
	return s.Package.Matches(id, changed)
}

func (s PackageOrBlockDepSpec) String() string {
	if s.Block != nil {
		return s.Block.String()
	}
	if s.Package != nil {
		return s.Package.String()
	}
	return ""
}

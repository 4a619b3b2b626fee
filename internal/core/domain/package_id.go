package domain

import (
	"slices"
	"strings"

	"go.trai.ch/decider/internal/semver"
)

// PackageID is an immutable handle to one version of a package in one repository.
// IDs are owned by the package database; the engine compares them by pointer.
type PackageID struct {
	Name        InternedString
	Version     semver.Version
	Slot        string
	Repository  string
	Installed   bool
	Transient   bool
	Masked      bool
	MaskReasons []string
	Keywords    []string

	// Choices holds the enabled state of every choice the package declares.
	Choices map[string]bool
	// Locked lists choices that may not be changed to satisfy a requirement.
	Locked []string

	BuildDependencies      DepNode
	RunDependencies        DepNode
	PostDependencies       DepNode
	SuggestionDependencies DepNode

	// Digest identifies the dependency metadata, so two IDs with equal digests
	// declare the same dependencies.
	Digest string
}

// String renders the ID as "cat/pkg-version:slot::repository".
func (id *PackageID) String() string {
	var b strings.Builder
	b.WriteString(id.Name.String())
	b.WriteString("-")
	b.WriteString(id.Version.String())
	if id.Slot != "" {
		b.WriteString(":")
		b.WriteString(id.Slot)
	}
	if id.Repository != "" {
		b.WriteString("::")
		b.WriteString(id.Repository)
	}
	return b.String()
}

// ChoiceEnabled reports the state of flag, taking changed into account.
// Undeclared choices are disabled.
func (id *PackageID) ChoiceEnabled(flag string, changed *ChangedChoices) bool {
	if changed != nil {
		if enabled, ok := changed.Get(flag); ok {
			return enabled
		}
	}
	return id.Choices[flag]
}

// CanChangeChoice reports whether flag is declared and not locked.
func (id *PackageID) CanChangeChoice(flag string) bool {
	if _, declared := id.Choices[flag]; !declared {
		return false
	}
	return !slices.Contains(id.Locked, flag)
}

// Dependencies returns the dependency tree for class.
func (id *PackageID) Dependencies(class DependencyClass) DepNode {
	switch class {
	case DependencyBuild:
		return id.BuildDependencies
	case DependencyRun:
		return id.RunDependencies
	case DependencyPost:
		return id.PostDependencies
	case DependencySuggestion:
		return id.SuggestionDependencies
	default:
		return nil
	}
}

// SameChoices reports whether id and other have the same choice state once
// changed is applied to other.
func (id *PackageID) SameChoices(other *PackageID, changed *ChangedChoices) bool {
	for flag := range id.Choices {
		if id.Choices[flag] != other.ChoiceEnabled(flag, changed) {
			return false
		}
	}
	for flag := range other.Choices {
		if _, ok := id.Choices[flag]; !ok && other.ChoiceEnabled(flag, changed) {
			return false
		}
	}
	return true
}

// ChangedChoices records choice toggles needed to make an ID satisfy its constraints.
type ChangedChoices struct {
	flags map[string]bool
	order []string
}

// NewChangedChoices returns an empty set of changes.
func NewChangedChoices() *ChangedChoices {
	return &ChangedChoices{flags: make(map[string]bool)}
}

// Add records flag=enabled. It returns false if the opposite change was already recorded.
func (c *ChangedChoices) Add(flag string, enabled bool) bool {
	if existing, ok := c.flags[flag]; ok {
		return existing == enabled
	}
	c.flags[flag] = enabled
	c.order = append(c.order, flag)
	return true
}

// Get returns the recorded state of flag.
func (c *ChangedChoices) Get(flag string) (enabled, ok bool) {
	if c == nil {
		return false, false
	}
	enabled, ok = c.flags[flag]
	return enabled, ok
}

// Empty reports whether no change is recorded.
func (c *ChangedChoices) Empty() bool {
	return c == nil || len(c.order) == 0
}

// Requirements returns the changes as choice requirements in the order they were recorded.
func (c *ChangedChoices) Requirements() []ChoiceRequirement {
	if c == nil {
		return nil
	}
	reqs := make([]ChoiceRequirement, 0, len(c.order))
	for _, flag := range c.order {
		reqs = append(reqs, ChoiceRequirement{Flag: flag, Enabled: c.flags[flag]})
	}
	return reqs
}

// String renders the changes as "flag -other".
func (c *ChangedChoices) String() string {
	parts := make([]string, 0, len(c.Requirements()))
	for _, req := range c.Requirements() {
		parts = append(parts, req.String())
	}
	return strings.Join(parts, " ")
}

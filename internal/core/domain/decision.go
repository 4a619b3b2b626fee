package domain

// ChangeType describes what a ChangesToMake decision does to the destination.
// Values are ordered from least to most disruptive.
type ChangeType int

const (
	// ChangeTypeNew installs a package that has no installed version at all.
	ChangeTypeNew ChangeType = iota
	// ChangeTypeAddToSlot installs into a slot that already has an install it does not replace.
	ChangeTypeAddToSlot
	// ChangeTypeSlotNew installs into a new slot of an installed package.
	ChangeTypeSlotNew
	// ChangeTypeReinstall replaces the same version.
	ChangeTypeReinstall
	// ChangeTypeUpgrade replaces a lower version.
	ChangeTypeUpgrade
	// ChangeTypeDowngrade replaces a higher version.
	ChangeTypeDowngrade
)

func (c ChangeType) String() string {
	switch c {
	case ChangeTypeNew:
		return "new"
	case ChangeTypeAddToSlot:
		return "add_to_slot"
	case ChangeTypeSlotNew:
		return "slot_new"
	case ChangeTypeReinstall:
		return "reinstall"
	case ChangeTypeUpgrade:
		return "upgrade"
	case ChangeTypeDowngrade:
		return "downgrade"
	default:
		return "unknown"
	}
}

// RequiredConfirmation flags a risky decision for external approval.
type RequiredConfirmation string

const (
	// ConfirmNotBest is required when a newer installable version was not chosen.
	ConfirmNotBest RequiredConfirmation = "not_best"
	// ConfirmDowngrade is required for downgrades.
	ConfirmDowngrade RequiredConfirmation = "downgrade"
	// ConfirmMasked is required when a masked package was chosen.
	ConfirmMasked RequiredConfirmation = "masked"
	// ConfirmChangedChoices is required when choices had to be toggled.
	ConfirmChangedChoices RequiredConfirmation = "changed_choices"
	// ConfirmBreak is required when an installed package will be left broken.
	ConfirmBreak RequiredConfirmation = "break"
	// ConfirmRemoveSystemPackage is required when a system package would be removed.
	ConfirmRemoveSystemPackage RequiredConfirmation = "remove_system_package"
)

// Destination is where a ChangesToMake decision installs to, and what it replaces there.
type Destination struct {
	Repository string
	Replacing  []*PackageID
}

// UnsuitableCandidate is a package that was considered and the constraints it fails.
type UnsuitableCandidate struct {
	ID        *PackageID
	Unmet     Constraints
	Masked    bool
	Installed bool
}

// Decision is the outcome of a Resolution. The set of decisions is closed.
type Decision interface {
	// IsTaken reports whether the decision is actively wanted rather than merely permitted.
	IsTaken() bool
	// Kind names the variant for plans and logs.
	Kind() string
	decision()
}

// Confirmable is implemented by decisions that can carry required confirmations.
type Confirmable interface {
	Decision
	RequiredConfirmations() []RequiredConfirmation
	AddRequiredConfirmation(c RequiredConfirmation)
}

// ChangesToMakeDecision installs OriginID into Destination.
type ChangesToMakeDecision struct {
	OriginID       *PackageID
	Destination    *Destination
	ChangeType     ChangeType
	Taken          bool
	Best           bool
	ChangedChoices *ChangedChoices
	Confirmations  []RequiredConfirmation
}

// ExistingNoChangeDecision keeps an installed package.
type ExistingNoChangeDecision struct {
	ExistingID     *PackageID
	IsSame         bool
	IsSameVersion  bool
	IsSameMetadata bool
	IsTransient    bool
	Taken          bool
}

// NothingNoChangeDecision does nothing; nothing is installed and nothing needs to be.
type NothingNoChangeDecision struct {
	Taken bool
}

// UnableToMakeDecision records that no candidate satisfies the constraints.
type UnableToMakeDecision struct {
	Unsuitable []UnsuitableCandidate
	Taken      bool
}

// RemoveDecision uninstalls IDs.
type RemoveDecision struct {
	IDs           []*PackageID
	Taken         bool
	Confirmations []RequiredConfirmation
}

// BreakDecision leaves ExistingID installed with unsatisfied dependencies.
type BreakDecision struct {
	ExistingID    *PackageID
	Taken         bool
	Confirmations []RequiredConfirmation
}

func (*ChangesToMakeDecision) decision()    {}
func (*ExistingNoChangeDecision) decision() {}
func (*NothingNoChangeDecision) decision()  {}
func (*UnableToMakeDecision) decision()     {}
func (*RemoveDecision) decision()           {}
func (*BreakDecision) decision()            {}

func (d *ChangesToMakeDecision) IsTaken() bool    { return d.Taken }
func (d *ExistingNoChangeDecision) IsTaken() bool { return d.Taken }
func (d *NothingNoChangeDecision) IsTaken() bool  { return d.Taken }
func (d *UnableToMakeDecision) IsTaken() bool     { return d.Taken }
func (d *RemoveDecision) IsTaken() bool           { return d.Taken }
func (d *BreakDecision) IsTaken() bool            { return d.Taken }

func (*ChangesToMakeDecision) Kind() string    { return "changes_to_make" }
func (*ExistingNoChangeDecision) Kind() string { return "existing_no_change" }
func (*NothingNoChangeDecision) Kind() string  { return "nothing_no_change" }
func (*UnableToMakeDecision) Kind() string     { return "unable_to_make" }
func (*RemoveDecision) Kind() string           { return "remove" }
func (*BreakDecision) Kind() string            { return "break" }

// RequiredConfirmations implements Confirmable.
func (d *ChangesToMakeDecision) RequiredConfirmations() []RequiredConfirmation {
	return d.Confirmations
}

// AddRequiredConfirmation implements Confirmable.
func (d *ChangesToMakeDecision) AddRequiredConfirmation(c RequiredConfirmation) {
	d.Confirmations = append(d.Confirmations, c)
}

// RequiredConfirmations implements Confirmable.
func (d *RemoveDecision) RequiredConfirmations() []RequiredConfirmation {
	return d.Confirmations
}

// AddRequiredConfirmation implements Confirmable.
func (d *RemoveDecision) AddRequiredConfirmation(c RequiredConfirmation) {
	d.Confirmations = append(d.Confirmations, c)
}

// RequiredConfirmations implements Confirmable.
func (d *BreakDecision) RequiredConfirmations() []RequiredConfirmation {
	return d.Confirmations
}

// AddRequiredConfirmation implements Confirmable.
func (d *BreakDecision) AddRequiredConfirmation(c RequiredConfirmation) {
	d.Confirmations = append(d.Confirmations, c)
}

// ChosenID returns the package a decision installs or keeps, if any.
func ChosenID(d Decision) *PackageID {
	switch dec := d.(type) {
	case *ChangesToMakeDecision:
		return dec.OriginID
	case *ExistingNoChangeDecision:
		return dec.ExistingID
	default:
		return nil
	}
}

package domain

import "fmt"

// DestinationType classifies where a change would be applied.
type DestinationType int

const (
	// DestinationInstallToSlash installs the package onto the live root.
	DestinationInstallToSlash DestinationType = iota
	// DestinationCreateBinaries builds a binary package without installing it.
	DestinationCreateBinaries
)

// String returns the name used in plans and logs.
func (d DestinationType) String() string {
	switch d {
	case DestinationInstallToSlash:
		return "install_to_slash"
	case DestinationCreateBinaries:
		return "create_binaries"
	default:
		return fmt.Sprintf("destination(%d)", int(d))
	}
}

// SlotName is a slot identity that may be unknown.
type SlotName struct {
	name  InternedString
	known bool
}

// NewSlotName returns a known slot.
func NewSlotName(name string) SlotName {
	return SlotName{name: NewInternedString(name), known: true}
}

// UnknownSlot returns the slot used when no candidate could tell us the slot.
func UnknownSlot() SlotName {
	return SlotName{}
}

// Known reports whether the slot is known.
func (s SlotName) Known() bool {
	return s.known
}

// Name returns the slot name, or the empty string for an unknown slot.
func (s SlotName) Name() string {
	return s.name.String()
}

// String returns the slot name or "(unknown)".
func (s SlotName) String() string {
	if !s.known {
		return "(unknown)"
	}
	return s.name.String()
}

// Resolvent identifies one package, in one slot, for one destination.
// It is a comparable value and is used as a map key.
type Resolvent struct {
	Package     InternedString
	Slot        SlotName
	Destination DestinationType
}

// NewResolvent builds a Resolvent.
func NewResolvent(pkg string, slot SlotName, destination DestinationType) Resolvent {
	return Resolvent{
		Package:     NewInternedString(pkg),
		Slot:        slot,
		Destination: destination,
	}
}

// ResolventFor returns the resolvent an ID belongs to for the given destination.
func ResolventFor(id *PackageID, destination DestinationType) Resolvent {
	return Resolvent{
		Package:     id.Name,
		Slot:        NewSlotName(id.Slot),
		Destination: destination,
	}
}

// WithDestination returns a copy of r for another destination.
func (r Resolvent) WithDestination(destination DestinationType) Resolvent {
	r.Destination = destination
	return r
}

// String renders the resolvent as "cat/pkg:slot -> destination".
func (r Resolvent) String() string {
	return r.Package.String() + ":" + r.Slot.String() + " -> " + r.Destination.String()
}

package decider

import (
	"fmt"
	"slices"

	"go.trai.ch/decider/internal/core/domain"
)

// addDependencies turns the dependencies of a taken install or keep decision into constraints.
func (d *Decider) addDependencies(res *domain.Resolution) error {
	var (
		id       *domain.PackageID
		changed  *domain.ChangedChoices
		existing bool
	)
	switch dec := res.Decision.(type) {
	case *domain.ChangesToMakeDecision:
		if !dec.Taken {
			return nil
		}
		id, changed = dec.OriginID, dec.ChangedChoices
	case *domain.ExistingNoChangeDecision:
		if !dec.Taken {
			return nil
		}
		id, existing = dec.ExistingID, true
	default:
		return nil
	}

	for _, dep := range d.sanitisedDependencies(id, changed) {
		interest := d.policy.Interest(id, dep, existing)
		if interest == domain.InterestIgnore {
			continue
		}

		reason := &domain.DependencyReason{FromID: id, FromResolvent: res.Resolvent, Dependency: dep}
		resolvents := d.resolventsFor(dep.Spec, reason)
		if len(resolvents) == 0 {
			if dep.Spec.Block != nil {
				continue
			}
			resolvents = []domain.Resolvent{d.errorResolvent(dep.Spec, reason)}
		}

		for _, r := range resolvents {
			perResolvent := *reason
			perResolvent.AlreadyMet = d.alreadyMet(dep.Spec, r)
			c := d.constraintFor(dep.Spec, &perResolvent, r.Destination, interest == domain.InterestUntaken, id)
			if err := d.apply(d.resolutionFor(r), c); err != nil {
				return err
			}
		}
	}
	return nil
}

// sanitisedDependencies flattens the dependency trees of id into individual specs.
// Conditionals are evaluated with changed applied and any-of groups are reduced to their best branch.
func (d *Decider) sanitisedDependencies(id *domain.PackageID, changed *domain.ChangedChoices) []domain.SanitisedDependency {
	var out []domain.SanitisedDependency
	for _, class := range domain.DependencyClasses {
		if node := id.Dependencies(class); node != nil {
			d.sanitise(id, changed, class, node, nil, &out)
		}
	}
	return out
}

func (d *Decider) sanitise(
	id *domain.PackageID,
	changed *domain.ChangedChoices,
	class domain.DependencyClass,
	node domain.DepNode,
	conditions []string,
	out *[]domain.SanitisedDependency,
) {
	switch n := node.(type) {
	case *domain.AllDepSpec:
		for _, child := range n.Children {
			d.sanitise(id, changed, class, child, conditions, out)
		}
	case *domain.ConditionalDepSpec:
		if id.ChoiceEnabled(n.Flag, changed) == n.Inverse {
			return
		}
		condition := n.Flag + "?"
		if n.Inverse {
			condition = "!" + condition
		}
		nested := append(slices.Clone(conditions), condition)
		for _, child := range n.Children {
			d.sanitise(id, changed, class, child, nested, out)
		}
	case *domain.AnyDepSpec:
		if branch := d.bestBranch(id, changed, n); branch != nil {
			d.sanitise(id, changed, class, branch, conditions, out)
		}
	case *domain.PackageDepSpec:
		*out = append(*out, domain.SanitisedDependency{
			Spec:       domain.PackageOrBlockDepSpec{Package: n},
			Class:      class,
			Conditions: conditions,
		})
	case *domain.BlockDepSpec:
		*out = append(*out, domain.SanitisedDependency{
			Spec:       domain.PackageOrBlockDepSpec{Block: n},
			Class:      class,
			Conditions: conditions,
		})
	default:
		panic(fmt.Sprintf("unexpected dependency node %T", node))
	}
}

// resolventsFor returns the resolvents a spec applies to.
func (d *Decider) resolventsFor(spec domain.PackageOrBlockDepSpec, reason domain.Reason) []domain.Resolvent {
	var slots []domain.SlotName
	if spec.Block != nil {
		slots = d.blockedSlots(&spec.Block.Blocking)
	} else {
		slots = d.slotsFor(spec.Package)
	}

	destinations := d.policy.DestinationTypesFor(spec, reason)
	out := make([]domain.Resolvent, 0, len(slots)*len(destinations))
	for _, destination := range destinations {
		for _, slot := range slots {
			out = append(out, domain.Resolvent{Package: spec.Name(), Slot: slot, Destination: destination})
		}
	}
	return out
}

// slotsFor returns the explicit slot of spec, else the slots of matching installed
// packages, else the slot of the best matching installable package.
func (d *Decider) slotsFor(spec *domain.PackageDepSpec) []domain.SlotName {
	if spec.Slot != "" {
		return []domain.SlotName{domain.NewSlotName(spec.Slot)}
	}

	var slots []domain.SlotName
	for _, id := range d.db.Versions(spec.Name, domain.FilterInstalled) {
		if spec.MatchesIgnoringChoices(id) {
			slots = appendSlot(slots, domain.NewSlotName(id.Slot))
		}
	}
	if len(slots) > 0 {
		return slots
	}

	for _, filter := range []domain.Filter{domain.FilterInstallableUnmasked, domain.FilterInstallable} {
		ids := d.db.Versions(spec.Name, filter)
		for i := len(ids) - 1; i >= 0; i-- {
			if spec.MatchesIgnoringChoices(ids[i]) {
				return []domain.SlotName{domain.NewSlotName(ids[i].Slot)}
			}
		}
	}
	return nil
}

// blockedSlots returns the slots holding an installed or already chosen package that spec matches.
func (d *Decider) blockedSlots(spec *domain.PackageDepSpec) []domain.SlotName {
	var slots []domain.SlotName
	for _, id := range d.db.Versions(spec.Name, domain.FilterInstalled) {
		if spec.MatchesIgnoringChoices(id) {
			slots = appendSlot(slots, domain.NewSlotName(id.Slot))
		}
	}
	for res := range d.resolutions.All() {
		if res.Resolvent.Package != spec.Name || !res.Resolvent.Slot.Known() {
			continue
		}
		if chosen := domain.ChosenID(res.Decision); chosen != nil && spec.MatchesIgnoringChoices(chosen) {
			slots = appendSlot(slots, res.Resolvent.Slot)
		}
	}
	return slots
}

func appendSlot(slots []domain.SlotName, slot domain.SlotName) []domain.SlotName {
	if slices.Contains(slots, slot) {
		return slots
	}
	return append(slots, slot)
}

// errorResolvent is used for a spec nothing can satisfy, so the failure shows up in the plan.
func (d *Decider) errorResolvent(spec domain.PackageOrBlockDepSpec, reason domain.Reason) domain.Resolvent {
	destination := domain.DestinationInstallToSlash
	if destinations := d.policy.DestinationTypesFor(spec, reason); len(destinations) > 0 {
		destination = destinations[0]
	}
	return domain.Resolvent{Package: spec.Name(), Slot: domain.UnknownSlot(), Destination: destination}
}

// alreadyMet reports whether what is installed in r already satisfies spec.
func (d *Decider) alreadyMet(spec domain.PackageOrBlockDepSpec, r domain.Resolvent) bool {
	installed := d.installedIn(r)
	if spec.Block != nil {
		for _, id := range installed {
			if spec.Block.Blocking.Matches(id, nil) {
				return false
			}
		}
		return true
	}
	for _, id := range installed {
		if spec.Package.Matches(id, nil) {
			return true
		}
	}
	return false
}

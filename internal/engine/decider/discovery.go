package decider

import (
	"slices"

	"go.trai.ch/decider/internal/core/domain"
)

// processViaBinaries adds a binary destination next to every taken install the policy
// wants a binary for. It reports whether any resolution was added.
func (d *Decider) processViaBinaries() bool {
	changed := false
	for res := range d.resolutions.All() {
		dec, ok := res.Decision.(*domain.ChangesToMakeDecision)
		if !ok || !dec.Taken || res.Resolvent.Destination != domain.DestinationInstallToSlash {
			continue
		}
		if !d.policy.AlwaysViaBinary(res) {
			continue
		}

		binary := res.Resolvent.WithDestination(domain.DestinationCreateBinaries)
		if d.resolutions.Find(binary) != nil {
			continue
		}

		changed = true
		target := d.resolutionFor(binary)
		for _, c := range res.Constraints {
			copied := *c
			copied.Reason = &domain.ViaBinaryReason{Other: res.Resolvent}
			copied.Destination = domain.DestinationCreateBinaries
			target.Constraints = append(target.Constraints, &copied)
		}
	}
	return changed
}

// changeSets returns the installed IDs taken decisions make go away and the IDs they newly install.
func (d *Decider) changeSets() (goingAway, newlyAvailable []*domain.PackageID) {
	for res := range d.resolutions.All() {
		if res.Decision == nil || !res.Decision.IsTaken() {
			continue
		}
		switch dec := res.Decision.(type) {
		case *domain.ChangesToMakeDecision:
			if res.Resolvent.Destination != domain.DestinationInstallToSlash {
				continue
			}
			if dec.Destination != nil {
				goingAway = append(goingAway, dec.Destination.Replacing...)
			}
			newlyAvailable = append(newlyAvailable, dec.OriginID)
		case *domain.RemoveDecision:
			goingAway = append(goingAway, dec.IDs...)
		}
	}
	return goingAway, newlyAvailable
}

// processDependents finds installed packages whose dependencies are only satisfied by
// packages going away, and lets the policy constrain them.
func (d *Decider) processDependents() (bool, error) {
	goingAway, newlyAvailable := d.changeSets()
	if len(goingAway) == 0 {
		return false, nil
	}

	installed := d.db.AllInstalled()
	before := func(spec *domain.PackageDepSpec) bool {
		return anyMatches(spec, installed)
	}
	after := func(spec *domain.PackageDepSpec) bool {
		for _, id := range installed {
			if !slices.Contains(goingAway, id) && spec.Matches(id, nil) {
				return true
			}
		}
		return anyMatches(spec, newlyAvailable)
	}

	changed := false
	for _, id := range installed {
		if slices.Contains(goingAway, id) {
			continue
		}

		var dependsOn []*domain.PackageID
		for _, node := range topLevelRuntimeDependencies(id) {
			if satisfied(id, node, before) && !satisfied(id, node, after) {
				for _, gone := range goingAway {
					if !slices.Contains(dependsOn, gone) && mentions(id, node, gone) {
						dependsOn = append(dependsOn, gone)
					}
				}
			}
		}
		if len(dependsOn) == 0 {
			continue
		}

		res := d.resolutionFor(domain.ResolventFor(id, domain.DestinationInstallToSlash))
		if res.HasDependentReasonFor(id) {
			continue
		}

		changed = true
		for _, c := range d.policy.ConstraintsForDependent(res, id, dependsOn) {
			if err := d.apply(res, c); err != nil {
				return changed, err
			}
		}
	}
	return changed, nil
}

// processPurges finds installed packages that were only used by packages going away and
// lets the policy constrain them. World packages and anything still in use are kept.
func (d *Decider) processPurges() (bool, error) {
	goingAway, newlyAvailable := d.changeSets()
	if len(goingAway) == 0 {
		return false, nil
	}

	haveNow := d.db.AllInstalled()
	remaining := slices.DeleteFunc(slices.Clone(haveNow), func(id *domain.PackageID) bool {
		return slices.Contains(goingAway, id)
	})

	usedOriginally := accumulate(goingAway, haveNow)
	usedAfterwards := accumulate(newlyAvailable, append(slices.Clone(remaining), newlyAvailable...))
	unchanging := slices.DeleteFunc(slices.Clone(remaining), func(id *domain.PackageID) bool {
		return slices.Contains(usedOriginally, id)
	})
	usedByUnchanging := accumulate(unchanging, remaining)

	world := append(slices.Clone(d.db.World()), d.db.System()...)

	changed := false
	for _, id := range usedOriginally {
		if slices.Contains(goingAway, id) ||
			slices.Contains(usedAfterwards, id) ||
			slices.Contains(usedByUnchanging, id) ||
			matchesAnySpec(world, id) {
			continue
		}

		r := domain.ResolventFor(id, domain.DestinationInstallToSlash)
		if existing := d.resolutions.Find(r); existing != nil && (existing.Decision != nil || wasUsed(existing)) {
			continue
		}
		if !d.policy.AllowedToRemove(r, id) {
			continue
		}

		var usedBy []*domain.PackageID
		for _, user := range goingAway {
			if slices.Contains(accumulate([]*domain.PackageID{user}, []*domain.PackageID{id}), id) {
				usedBy = append(usedBy, user)
			}
		}

		changed = true
		res := d.resolutionFor(r)
		for _, c := range d.policy.ConstraintsForPurge(res, id, usedBy) {
			if err := d.apply(res, c); err != nil {
				return changed, err
			}
		}
	}
	return changed, nil
}

// accumulate returns the IDs in within reachable from the run and post dependencies of from.
// Every branch of an any-of group counts.
func accumulate(from, within []*domain.PackageID) []*domain.PackageID {
	var seen []*domain.PackageID
	queue := slices.Clone(from)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, spec := range runtimeSpecs(id) {
			for _, candidate := range within {
				if !slices.Contains(seen, candidate) && spec.MatchesIgnoringChoices(candidate) {
					seen = append(seen, candidate)
					queue = append(queue, candidate)
				}
			}
		}
	}
	return seen
}

// runtimeSpecs returns every package spec in the run and post dependencies of id whose
// conditionals are enabled.
func runtimeSpecs(id *domain.PackageID) []*domain.PackageDepSpec {
	var specs []*domain.PackageDepSpec
	var walk func(node domain.DepNode)
	walk = func(node domain.DepNode) {
		switch n := node.(type) {
		case *domain.AllDepSpec:
			for _, child := range n.Children {
				walk(child)
			}
		case *domain.AnyDepSpec:
			for _, child := range n.Children {
				walk(child)
			}
		case *domain.ConditionalDepSpec:
			if id.ChoiceEnabled(n.Flag, nil) != n.Inverse {
				for _, child := range n.Children {
					walk(child)
				}
			}
		case *domain.PackageDepSpec:
			specs = append(specs, n)
		}
	}
	for _, class := range []domain.DependencyClass{domain.DependencyRun, domain.DependencyPost} {
		if node := id.Dependencies(class); node != nil {
			walk(node)
		}
	}
	return specs
}

// topLevelRuntimeDependencies splits the run and post dependencies of id into the
// independent requirements that must each hold.
func topLevelRuntimeDependencies(id *domain.PackageID) []domain.DepNode {
	var out []domain.DepNode
	var walk func(node domain.DepNode)
	walk = func(node domain.DepNode) {
		switch n := node.(type) {
		case *domain.AllDepSpec:
			for _, child := range n.Children {
				walk(child)
			}
		case *domain.ConditionalDepSpec:
			if id.ChoiceEnabled(n.Flag, nil) != n.Inverse {
				for _, child := range n.Children {
					walk(child)
				}
			}
		case *domain.PackageDepSpec, *domain.AnyDepSpec:
			out = append(out, node)
		}
	}
	for _, class := range []domain.DependencyClass{domain.DependencyRun, domain.DependencyPost} {
		if node := id.Dependencies(class); node != nil {
			walk(node)
		}
	}
	return out
}

// satisfied evaluates a dependency node of id against available. Blockers are ignored.
func satisfied(id *domain.PackageID, node domain.DepNode, available func(*domain.PackageDepSpec) bool) bool {
	switch n := node.(type) {
	case *domain.AllDepSpec:
		for _, child := range n.Children {
			if !satisfied(id, child, available) {
				return false
			}
		}
		return true
	case *domain.AnyDepSpec:
		if len(n.Children) == 0 {
			return true
		}
		for _, child := range n.Children {
			if satisfied(id, child, available) {
				return true
			}
		}
		return false
	case *domain.ConditionalDepSpec:
		if id.ChoiceEnabled(n.Flag, nil) == n.Inverse {
			return true
		}
		for _, child := range n.Children {
			if !satisfied(id, child, available) {
				return false
			}
		}
		return true
	case *domain.PackageDepSpec:
		return available(n)
	default:
		return true
	}
}

// mentions reports whether any package spec inside node matches target.
func mentions(id *domain.PackageID, node domain.DepNode, target *domain.PackageID) bool {
	found := false
	satisfied(id, node, func(spec *domain.PackageDepSpec) bool {
		if spec.Matches(target, nil) {
			found = true
		}
		return false
	})
	return found
}

func wasUsed(res *domain.Resolution) bool {
	for _, c := range res.Constraints {
		if _, ok := c.Reason.(*domain.WasUsedByReason); ok {
			return true
		}
	}
	return false
}

func anyMatches(spec *domain.PackageDepSpec, ids []*domain.PackageID) bool {
	for _, id := range ids {
		if spec.Matches(id, nil) {
			return true
		}
	}
	return false
}

func matchesAnySpec(specs []*domain.PackageDepSpec, id *domain.PackageID) bool {
	for _, spec := range specs {
		if spec.MatchesIgnoringChoices(id) {
			return true
		}
	}
	return false
}

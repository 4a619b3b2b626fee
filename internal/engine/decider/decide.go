package decider

import (
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/semver"
)

// decide gives res its first decision and expands the dependencies of that decision.
func (d *Decider) decide(res *domain.Resolution) error {
	d.copyOtherDestinationConstraints(res)

	decision, err := d.findDecisionFor(res)
	if err != nil {
		return err
	}
	if decision == nil {
		decision = d.cannotDecideFor(res)
	}
	res.Decision = decision
	return d.addDependencies(res)
}

// findDecisionFor tries unmasked candidates first and masked ones after that.
func (d *Decider) findDecisionFor(res *domain.Resolution) (domain.Decision, error) {
	allowChoiceChanges := d.policy.AllowChoiceChanges(res.Resolvent)
	decision, err := d.tryToFindDecisionFor(res, allowChoiceChanges, false, true)
	if err != nil || decision != nil {
		return decision, err
	}
	return d.tryToFindDecisionFor(res, allowChoiceChanges, true, true)
}

// copyOtherDestinationConstraints copies the constraints of the same package and slot
// on other destinations onto res.
func (d *Decider) copyOtherDestinationConstraints(res *domain.Resolution) {
	for other := range d.resolutions.All() {
		if other == res ||
			other.Resolvent.Package != res.Resolvent.Package ||
			other.Resolvent.Slot != res.Resolvent.Slot {
			continue
		}
		for _, c := range other.Constraints {
			switch c.Reason.(type) {
			case *domain.LikeOtherDestinationTypeReason, *domain.ViaBinaryReason:
				continue
			}
			copied := *c
			copied.Reason = &domain.LikeOtherDestinationTypeReason{Other: other.Resolvent, Inner: c.Reason}
			copied.Destination = res.Resolvent.Destination
			res.Constraints = append(res.Constraints, &copied)
		}
	}
}

// tryToFindDecisionFor returns a decision satisfying every constraint of res, or nil.
//
//nolint:cyclop // decision table
func (d *Decider) tryToFindDecisionFor(
	res *domain.Resolution,
	allowChoiceChanges, allowMasked, allowRemove bool,
) (domain.Decision, error) {
	cs := res.Constraints
	taken := !cs.AllUntaken()
	installed := d.installedIn(res.Resolvent)

	if cs.NothingIsFineToo() && len(installed) == 0 {
		return &domain.NothingNoChangeDecision{Taken: taken}, nil
	}

	existing := d.findExistingIDFor(res)
	installable, changed, best := d.findInstallableIDFor(res, allowChoiceChanges, allowMasked)

	switch {
	case existing == nil && installable == nil:
		if allowRemove && cs.NothingIsFineToo() && len(installed) > 0 && d.allowedToRemove(res.Resolvent, installed) {
			return &domain.RemoveDecision{IDs: installed, Taken: taken}, nil
		}
		return nil, nil

	case existing == nil:
		return d.changesToMake(res, installable, changed, best, taken)

	case installable == nil:
		switch cs.StrictestUseExisting() {
		case domain.UseExistingNever:
			return nil, nil
		case domain.UseExistingOnlyIfTransient:
			if !existing.Transient {
				return nil, nil
			}
		}
		return &domain.ExistingNoChangeDecision{
			ExistingID:     existing,
			IsSame:         true,
			IsSameVersion:  true,
			IsSameMetadata: true,
			IsTransient:    existing.Transient,
			Taken:          taken,
		}, nil
	}

	sameVersion := semver.Equal(existing.Version, installable.Version)
	same := sameVersion && existing.SameChoices(installable, changed)
	sameMetadata := same && existing.Digest == installable.Digest
	transient := existing.Transient

	var keep bool
	switch cs.StrictestUseExisting() {
	case domain.UseExistingIfPossible:
		keep = true
	case domain.UseExistingIfSameVersion:
		keep = sameVersion || transient
	case domain.UseExistingIfSame:
		keep = same || transient
	case domain.UseExistingIfSameMetadata:
		keep = sameMetadata || transient
	case domain.UseExistingOnlyIfTransient:
		keep = transient
	case domain.UseExistingNever:
		keep = false
	}

	if !keep {
		return d.changesToMake(res, installable, changed, best, taken)
	}
	return &domain.ExistingNoChangeDecision{
		ExistingID:     existing,
		IsSame:         same,
		IsSameVersion:  sameVersion,
		IsSameMetadata: sameMetadata,
		IsTransient:    transient,
		Taken:          taken,
	}, nil
}

func (d *Decider) allowedToRemove(r domain.Resolvent, ids []*domain.PackageID) bool {
	for _, id := range ids {
		if !d.policy.AllowedToRemove(r, id) {
			return false
		}
	}
	return true
}

func (d *Decider) changesToMake(
	res *domain.Resolution,
	id *domain.PackageID,
	changed *domain.ChangedChoices,
	best, taken bool,
) (domain.Decision, error) {
	destination, err := d.policy.MakeDestination(res.Resolvent, id)
	if err != nil {
		return nil, err
	}
	return &domain.ChangesToMakeDecision{
		OriginID:       id,
		Destination:    destination,
		ChangeType:     d.changeTypeFor(res.Resolvent, id, destination),
		Taken:          taken,
		Best:           best,
		ChangedChoices: changed,
	}, nil
}

// changeTypeFor returns the most disruptive change installing id causes.
func (d *Decider) changeTypeFor(r domain.Resolvent, id *domain.PackageID, destination *domain.Destination) domain.ChangeType {
	if r.Destination != domain.DestinationInstallToSlash {
		return domain.ChangeTypeNew
	}

	if len(destination.Replacing) == 0 {
		others := d.db.BestPerSlot(id.Name, domain.FilterInstalled)
		if len(others) == 0 {
			return domain.ChangeTypeNew
		}
		for _, other := range others {
			if other.Slot == id.Slot {
				return domain.ChangeTypeAddToSlot
			}
		}
		return domain.ChangeTypeSlotNew
	}

	result := domain.ChangeTypeReinstall
	for _, replaced := range destination.Replacing {
		var ct domain.ChangeType
		switch c := semver.CompareWithRevision(id.Version, replaced.Version); {
		case c > 0:
			ct = domain.ChangeTypeUpgrade
		case c < 0:
			ct = domain.ChangeTypeDowngrade
		default:
			ct = domain.ChangeTypeReinstall
		}
		result = max(result, ct)
	}
	return result
}

// cannotDecideFor is used when no candidate satisfies res.
func (d *Decider) cannotDecideFor(res *domain.Resolution) domain.Decision {
	taken := !res.Constraints.AllUntaken()
	if res.Constraints.AllDependent() {
		if installed := d.installedIn(res.Resolvent); len(installed) > 0 {
			return &domain.BreakDecision{ExistingID: installed[len(installed)-1], Taken: taken}
		}
	}
	return &domain.UnableToMakeDecision{Unsuitable: d.unsuitableCandidates(res), Taken: taken}
}

func (d *Decider) unsuitableCandidates(res *domain.Resolution) []domain.UnsuitableCandidate {
	var out []domain.UnsuitableCandidate
	for _, filter := range []domain.Filter{domain.FilterInstalled, domain.FilterInstallable} {
		ids := d.candidatesFor(res.Resolvent, filter)
		for i := len(ids) - 1; i >= 0; i-- {
			id := ids[i]
			var unmet domain.Constraints
			for _, c := range res.Constraints {
				if c.ForceUnable || !c.Spec.Matches(id, nil) {
					unmet = append(unmet, c)
				}
			}
			out = append(out, domain.UnsuitableCandidate{
				ID:        id,
				Unmet:     unmet,
				Masked:    id.Masked,
				Installed: id.Installed,
			})
		}
	}
	return out
}

// candidatesFor returns the IDs that could fill r, sorted by ascending version.
// An unknown slot accepts every slot.
func (d *Decider) candidatesFor(r domain.Resolvent, filter domain.Filter) []*domain.PackageID {
	ids := d.db.Versions(r.Package, filter)
	if !r.Slot.Known() {
		return ids
	}
	out := make([]*domain.PackageID, 0, len(ids))
	for _, id := range ids {
		if id.Slot == r.Slot.Name() {
			out = append(out, id)
		}
	}
	return out
}

// installedIn returns what is installed in r today. Only the live root has installed packages.
func (d *Decider) installedIn(r domain.Resolvent) []*domain.PackageID {
	if r.Destination != domain.DestinationInstallToSlash {
		return nil
	}
	return d.candidatesFor(r, domain.FilterInstalled)
}

// findExistingIDFor returns the best installed ID that matches every constraint as it is.
func (d *Decider) findExistingIDFor(res *domain.Resolution) *domain.PackageID {
	ids := d.installedIn(res.Resolvent)
	for i := len(ids) - 1; i >= 0; i-- {
		if d.matchesAll(res.Constraints, ids[i]) {
			return ids[i]
		}
	}
	return nil
}

func (d *Decider) matchesAll(cs domain.Constraints, id *domain.PackageID) bool {
	for _, c := range cs {
		if c.ForceUnable || !c.Spec.Matches(id, nil) {
			return false
		}
	}
	return true
}

// findInstallableIDFor returns the best installable ID matching every constraint, the choice
// changes it needs, and whether it is also the best visible version. Exact matches win over
// matches that need choice changes.
func (d *Decider) findInstallableIDFor(
	res *domain.Resolution,
	allowChoiceChanges, allowMasked bool,
) (*domain.PackageID, *domain.ChangedChoices, bool) {
	ids := d.candidatesFor(res.Resolvent, domain.FilterInstallable)

	var bestVisible *domain.PackageID
	for i := len(ids) - 1; i >= 0; i-- {
		if !ids[i].Masked {
			bestVisible = ids[i]
			break
		}
	}

	passes := []bool{false}
	if allowChoiceChanges {
		passes = append(passes, true)
	}
	for _, withChanges := range passes {
		for i := len(ids) - 1; i >= 0; i-- {
			id := ids[i]
			if id.Masked && !allowMasked {
				continue
			}
			changed, ok := d.choiceChangesFor(res, id, withChanges)
			if !ok {
				continue
			}
			return id, changed, id == bestVisible
		}
	}
	return nil, nil, false
}

// choiceChangesFor works out which choices of id must change for it to satisfy every
// constraint of res. It returns false if id cannot be made to match.
func (d *Decider) choiceChangesFor(res *domain.Resolution, id *domain.PackageID, allowChanges bool) (*domain.ChangedChoices, bool) {
	changed := domain.NewChangedChoices()

	for _, c := range res.Constraints {
		if c.ForceUnable {
			return nil, false
		}

		if block := c.Spec.Block; block != nil {
			if c.Spec.Matches(id, changed) {
				continue
			}
			if allowChanges && len(block.Blocking.Choices) > 0 {
				d.logger.Debug("not changing choices of " + id.String() + " to avoid " + block.String() +
					": blockers with choice requirements are not supported")
			}
			return nil, false
		}

		spec := c.Spec.Package
		if !spec.MatchesIgnoringChoices(id) {
			return nil, false
		}
		for _, req := range spec.Choices {
			if id.ChoiceEnabled(req.Flag, changed) == req.Enabled {
				continue
			}
			if !allowChanges || !id.CanChangeChoice(req.Flag) {
				return nil, false
			}
			if !changed.Add(req.Flag, req.Enabled) {
				return nil, false
			}
		}
	}

	// A later change may have broken an earlier constraint.
	for _, c := range res.Constraints {
		if !c.Spec.Matches(id, changed) {
			return nil, false
		}
	}

	if changed.Empty() {
		return nil, true
	}
	return changed, true
}

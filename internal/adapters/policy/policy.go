// Package policy implements ports.Policy from a domain.PolicyConfig.
package policy

import (
	"slices"

	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports"
	"go.trai.ch/zerr"
)

// BinariesRepository names the repository binary packages are created in.
const BinariesRepository = "binaries"

// Policy is the configurable resolver policy.
type Policy struct {
	cfg domain.PolicyConfig
	db  ports.PackageDatabase
}

// New creates a Policy. db is used to find what an install replaces.
func New(cfg domain.PolicyConfig, db ports.PackageDatabase) *Policy {
	return &Policy{cfg: cfg, db: db}
}

// InitialConstraintsFor seeds resolutions with the configured presets for their package.
func (p *Policy) InitialConstraintsFor(r domain.Resolvent) domain.Constraints {
	var out domain.Constraints
	for _, preset := range p.cfg.Presets {
		if preset.Name != r.Package {
			continue
		}
		if preset.Slot != "" && r.Slot.Known() && preset.Slot != r.Slot.Name() {
			continue
		}
		out = append(out, &domain.Constraint{
			Spec:             domain.PackageOrBlockDepSpec{Package: preset},
			Reason:           &domain.PresetReason{Explanation: "preset"},
			Destination:      r.Destination,
			UseExisting:      domain.UseExistingIfPossible,
			NothingIsFineToo: true,
			Untaken:          true,
		})
	}
	return out
}

// UseExistingFor derives the use-existing policy from the upgrade mode. Blockers may always
// be satisfied by what is installed, or by nothing at all.
func (p *Policy) UseExistingFor(spec domain.PackageOrBlockDepSpec, reason domain.Reason) (domain.UseExisting, bool) {
	if spec.Block != nil {
		return domain.UseExistingIfPossible, true
	}

	if isTarget(reason) {
		if p.cfg.Targets != nil {
			return *p.cfg.Targets, false
		}
		switch p.cfg.Upgrade {
		case domain.UpgradeNever:
			return domain.UseExistingIfPossible, false
		default:
			return domain.UseExistingIfSame, false
		}
	}

	if p.cfg.Dependencies != nil {
		return *p.cfg.Dependencies, false
	}
	switch p.cfg.Upgrade {
	case domain.UpgradeAlways:
		return domain.UseExistingIfSameVersion, false
	default:
		return domain.UseExistingIfPossible, false
	}
}

// isTarget looks through preset, set and copied reasons for a target reason.
func isTarget(reason domain.Reason) bool {
	for reason != nil {
		switch r := reason.(type) {
		case *domain.TargetReason:
			return true
		case *domain.SetReason:
			reason = r.Inner
		case *domain.PresetReason:
			reason = r.Inner
		case *domain.LikeOtherDestinationTypeReason:
			reason = r.Inner
		default:
			return false
		}
	}
	return false
}

// Interest ignores build dependencies of kept packages unless configured otherwise and
// treats suggestions as configured.
func (p *Policy) Interest(_ *domain.PackageID, dep domain.SanitisedDependency, existing bool) domain.Interest {
	switch dep.Class {
	case domain.DependencyBuild:
		if existing && !p.cfg.InstalledBuildDeps {
			return domain.InterestIgnore
		}
		return domain.InterestTake
	case domain.DependencySuggestion:
		if dep.Spec.Block != nil {
			return domain.InterestIgnore
		}
		return p.cfg.Suggestions
	default:
		return domain.InterestTake
	}
}

// DestinationTypesFor always targets the live root. Binaries are added by AlwaysViaBinary.
func (p *Policy) DestinationTypesFor(domain.PackageOrBlockDepSpec, domain.Reason) []domain.DestinationType {
	return []domain.DestinationType{domain.DestinationInstallToSlash}
}

// MakeDestination installs into the installed repository, replacing whatever occupies the
// same slot there. Binaries replace nothing.
func (p *Policy) MakeDestination(r domain.Resolvent, id *domain.PackageID) (*domain.Destination, error) {
	switch r.Destination {
	case domain.DestinationInstallToSlash:
		dest := &domain.Destination{Repository: p.db.InstalledRepository()}
		for _, installed := range p.db.Versions(id.Name, domain.FilterInstalled) {
			if installed.Slot == id.Slot {
				dest.Replacing = append(dest.Replacing, installed)
			}
		}
		return dest, nil
	case domain.DestinationCreateBinaries:
		return &domain.Destination{Repository: BinariesRepository}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrNoDestination, id.String()), "destination", r.Destination.String())
	}
}

// AllowChoiceChanges reports the configured choice-changes setting.
func (p *Policy) AllowChoiceChanges(domain.Resolvent) bool {
	return p.cfg.ChoiceChanges
}

// AlwaysViaBinary reports whether the chosen package matches a via-binary spec.
func (p *Policy) AlwaysViaBinary(res *domain.Resolution) bool {
	id := domain.ChosenID(res.Decision)
	if id == nil {
		return false
	}
	return matchesAny(p.cfg.ViaBinary, id)
}

// ConstraintsForDependent rebuilds, removes or breaks the dependent as configured.
func (p *Policy) ConstraintsForDependent(
	res *domain.Resolution,
	id *domain.PackageID,
	dependsOn []*domain.PackageID,
) domain.Constraints {
	reason := &domain.DependentReason{ID: id, DependentUpon: dependsOn}
	spec := &domain.PackageDepSpec{Name: id.Name, Slot: id.Slot}

	c := &domain.Constraint{
		Reason:      reason,
		Destination: res.Resolvent.Destination,
		FromID:      id,
	}
	switch p.cfg.Dependents {
	case domain.DependentsRemove:
		c.Spec = domain.PackageOrBlockDepSpec{Block: &domain.BlockDepSpec{Blocking: *spec}}
		c.UseExisting = domain.UseExistingIfPossible
		c.NothingIsFineToo = true
	case domain.DependentsBreak:
		c.Spec = domain.PackageOrBlockDepSpec{Package: spec}
		c.UseExisting = domain.UseExistingIfPossible
		c.ForceUnable = true
	default:
		c.Spec = domain.PackageOrBlockDepSpec{Package: spec}
		c.UseExisting = domain.UseExistingNever
	}
	return domain.Constraints{c}
}

// ConstraintsForPurge removes id. Unless purging is enabled the removal is only a suggestion.
func (p *Policy) ConstraintsForPurge(
	res *domain.Resolution,
	id *domain.PackageID,
	usedBy []*domain.PackageID,
) domain.Constraints {
	return domain.Constraints{{
		Spec: domain.PackageOrBlockDepSpec{Block: &domain.BlockDepSpec{
			Blocking: domain.PackageDepSpec{Name: id.Name, Slot: id.Slot},
		}},
		Reason:           &domain.WasUsedByReason{IDs: usedBy},
		Destination:      res.Resolvent.Destination,
		UseExisting:      domain.UseExistingIfPossible,
		NothingIsFineToo: true,
		Untaken:          !p.cfg.Purge,
		FromID:           id,
	}}
}

// AllowedToRemove permits removal from the live root only.
func (p *Policy) AllowedToRemove(r domain.Resolvent, _ *domain.PackageID) bool {
	return r.Destination == domain.DestinationInstallToSlash
}

// Prefer ranks specs naming a preferred package first and avoided ones last.
func (p *Policy) Prefer(spec *domain.PackageDepSpec) domain.Preference {
	named := func(s *domain.PackageDepSpec) bool { return s.Name == spec.Name }
	switch {
	case slices.ContainsFunc(p.cfg.Prefer, named):
		return domain.PreferencePrefer
	case slices.ContainsFunc(p.cfg.Avoid, named):
		return domain.PreferenceAvoid
	default:
		return domain.PreferenceNone
	}
}

// Confirm approves the confirmations listed in the permit setting.
func (p *Policy) Confirm(_ *domain.Resolution, c domain.RequiredConfirmation) bool {
	return slices.Contains(p.cfg.Permit, c)
}

func matchesAny(specs []*domain.PackageDepSpec, id *domain.PackageID) bool {
	for _, spec := range specs {
		if spec.MatchesIgnoringChoices(id) {
			return true
		}
	}
	return false
}

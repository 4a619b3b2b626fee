package decider

import (
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/semver"
)

// tier ranks an any-of branch; lower is better.
type tier int

const (
	tierPreferred tier = iota
	tierVacuousBlocker
	tierInstallableAndSimilarInstalled
	tierAlreadySatisfied
	tierInstallable
	tierBlocksInstalled
	tierAvoided
	tierNotInstallable
)

// bias breaks ties between branches of the same tier; lower is better.
type bias int

const (
	biasGreaterOrNone bias = iota
	biasEqual
	biasLess
	biasBlockEverything
)

type score struct {
	tier tier
	bias bias
}

func (s score) less(other score) bool {
	if s.tier != other.tier {
		return s.tier < other.tier
	}
	return s.bias < other.bias
}

// bestBranch returns the highest scoring non-empty branch of group. Ties go to the earlier branch.
func (d *Decider) bestBranch(id *domain.PackageID, changed *domain.ChangedChoices, group *domain.AnyDepSpec) domain.DepNode {
	var (
		best      domain.DepNode
		bestScore score
	)
	for _, branch := range group.Children {
		var specs []domain.SanitisedDependency
		d.sanitise(id, changed, domain.DependencyBuild, branch, nil, &specs)
		if len(specs) == 0 {
			continue
		}

		// A branch is only as good as its worst spec.
		branchScore := d.scoreSpec(specs[0].Spec)
		for _, dep := range specs[1:] {
			if s := d.scoreSpec(dep.Spec); branchScore.less(s) {
				branchScore = s
			}
		}

		if best == nil || branchScore.less(bestScore) {
			best, bestScore = branch, branchScore
		}
	}
	return best
}

func (d *Decider) scoreSpec(spec domain.PackageOrBlockDepSpec) score {
	if spec.Block != nil {
		return d.scoreBlock(spec.Block)
	}

	pkg := spec.Package
	s := score{bias: packageBias(pkg)}

	preference := d.policy.Prefer(pkg)
	installable := d.anyMatching(pkg, domain.FilterInstallableUnmasked)
	installed := d.anyMatching(pkg, domain.FilterInstalled)
	similarInstalled := len(d.db.Versions(pkg.Name, domain.FilterInstalled)) > 0

	switch {
	case preference == domain.PreferencePrefer:
		s.tier = tierPreferred
	case preference == domain.PreferenceAvoid && (installable || installed):
		s.tier = tierAvoided
	case installable && similarInstalled:
		s.tier = tierInstallableAndSimilarInstalled
	case installed || d.alreadyChosen(pkg):
		s.tier = tierAlreadySatisfied
	case installable:
		s.tier = tierInstallable
	default:
		s.tier = tierNotInstallable
	}
	return s
}

func (d *Decider) scoreBlock(block *domain.BlockDepSpec) score {
	s := score{bias: blockBias(&block.Blocking)}
	installed := d.anyMatching(&block.Blocking, domain.FilterInstalled)
	installable := d.anyMatching(&block.Blocking, domain.FilterInstallable)

	switch {
	case !installed && !installable:
		s.tier = tierVacuousBlocker
	case installed:
		s.tier = tierBlocksInstalled
	default:
		s.tier = tierAlreadySatisfied
	}
	return s
}

func (d *Decider) anyMatching(spec *domain.PackageDepSpec, filter domain.Filter) bool {
	for _, id := range d.db.Versions(spec.Name, filter) {
		if spec.MatchesIgnoringChoices(id) {
			return true
		}
	}
	return false
}

// alreadyChosen reports whether a decided resolution installs or keeps something spec matches.
func (d *Decider) alreadyChosen(spec *domain.PackageDepSpec) bool {
	for res := range d.resolutions.All() {
		if res.Resolvent.Package != spec.Name {
			continue
		}
		if chosen := domain.ChosenID(res.Decision); chosen != nil && spec.MatchesIgnoringChoices(chosen) {
			return true
		}
	}
	return false
}

func operatorBias(op semver.Operator) bias {
	switch op {
	case semver.OpGreater, semver.OpGreaterEqual:
		return biasGreaterOrNone
	case semver.OpLess, semver.OpLessEqual:
		return biasLess
	default:
		return biasEqual
	}
}

func packageBias(spec *domain.PackageDepSpec) bias {
	if len(spec.Versions) == 0 {
		return biasGreaterOrNone
	}
	return combineBias(spec, operatorBias)
}

// blockBias inverts the operator sense: blocking old versions favours new ones.
func blockBias(spec *domain.PackageDepSpec) bias {
	if len(spec.Versions) == 0 {
		return biasBlockEverything
	}
	return combineBias(spec, func(op semver.Operator) bias {
		switch operatorBias(op) {
		case biasLess, biasEqual:
			return biasGreaterOrNone
		default:
			return biasLess
		}
	})
}

// combineBias folds the bias of each version requirement: the worst for "and", the best for "or".
func combineBias(spec *domain.PackageDepSpec, of func(semver.Operator) bias) bias {
	result := of(spec.Versions[0].Operator)
	for _, req := range spec.Versions[1:] {
		b := of(req.Operator)
		if spec.VersionsMode == domain.RequirementsOr {
			result = min(result, b)
		} else {
			result = max(result, b)
		}
	}
	return result
}

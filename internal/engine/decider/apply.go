package decider

import (
	"fmt"
	"slices"

	"go.trai.ch/decider/internal/core/domain"
)

// apply adds c to res. If res is already decided and the decision does not satisfy c,
// the decision is revisited.
func (d *Decider) apply(res *domain.Resolution, c *domain.Constraint) error {
	res.Constraints = append(res.Constraints, c)
	if res.Decision == nil {
		return nil
	}
	if verify(res.Decision, c) {
		return nil
	}
	return d.madeWrongDecision(res, c)
}

// verify reports whether decision satisfies c.
func verify(decision domain.Decision, c *domain.Constraint) bool {
	if c.ForceUnable {
		return false
	}
	if !c.Untaken && !decision.IsTaken() {
		return false
	}

	switch dec := decision.(type) {
	case *domain.ChangesToMakeDecision:
		return c.Spec.Matches(dec.OriginID, dec.ChangedChoices)
	case *domain.ExistingNoChangeDecision:
		return c.Spec.Matches(dec.ExistingID, nil) && useExistingAllows(c.UseExisting, dec)
	case *domain.NothingNoChangeDecision:
		return c.NothingIsFineToo
	case *domain.RemoveDecision:
		return c.NothingIsFineToo
	case *domain.BreakDecision:
		return c.Spec.Matches(dec.ExistingID, nil)
	case *domain.UnableToMakeDecision:
		return false
	default:
		panic(fmt.Sprintf("unexpected decision type %T", decision))
	}
}

// useExistingAllows reports whether keeping an installed package is acceptable under policy.
func useExistingAllows(policy domain.UseExisting, dec *domain.ExistingNoChangeDecision) bool {
	switch policy {
	case domain.UseExistingIfPossible:
		return true
	case domain.UseExistingIfSameVersion:
		return dec.IsSameVersion || dec.IsTransient
	case domain.UseExistingIfSame:
		return dec.IsSame || dec.IsTransient
	case domain.UseExistingIfSameMetadata:
		return dec.IsSameMetadata || dec.IsTransient
	case domain.UseExistingOnlyIfTransient:
		return dec.IsTransient
	default:
		return false
	}
}

// madeWrongDecision finds a replacement for the decision of res now that c has been added.
// Replacing a decision anything else may rely on requires a restart.
func (d *Decider) madeWrongDecision(res *domain.Resolution, c *domain.Constraint) error {
	adapted := &domain.Resolution{
		Resolvent:   res.Resolvent,
		Constraints: slices.Clone(res.Constraints),
	}

	replacement, err := d.findDecisionFor(adapted)
	if err != nil {
		return err
	}
	if replacement == nil {
		res.Decision = d.cannotDecideFor(adapted)
		return nil
	}

	if _, ok := res.Decision.(*domain.NothingNoChangeDecision); ok {
		res.Decision = replacement
		return d.addDependencies(res)
	}

	return &RestartRequest{
		Resolvent:   res.Resolvent,
		Previous:    res.Decision,
		Problem:     c,
		Replacement: replacement,
	}
}

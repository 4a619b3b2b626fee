// Package decider runs one resolution attempt: it accumulates constraints per
// resolvent, decides each resolvent in turn, and emits the resulting plan.
package decider

import (
	"context"
	"errors"

	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports"
)

// Target is a user-requested package spec.
type Target struct {
	Spec *domain.PackageDepSpec
	// Set names the set the target came from, if any.
	Set string
}

func (t Target) String() string {
	return t.Spec.String()
}

func (t Target) reason() domain.Reason {
	reason := &domain.TargetReason{}
	if t.Set != "" {
		return &domain.SetReason{Set: t.Set, Inner: reason}
	}
	return reason
}

// Outcome is the result of Decider.Run. It is one of Planned, Restart or Unresolvable.
type Outcome interface {
	outcome()
}

// Planned is returned when every required resolvent was decided.
type Planned struct {
	Plan *domain.Plan
}

// Restart is returned when the attempt must be repeated with an additional preload.
type Restart struct {
	Request *RestartRequest
}

// Unresolvable is returned when at least one required resolvent could not be decided.
type Unresolvable struct {
	Plan     *domain.Plan
	Failures []*domain.Resolution
}

func (Planned) outcome()      {}
func (Restart) outcome()      {}
func (Unresolvable) outcome() {}

// Decider holds the state of one resolution attempt. It is not safe for concurrent use
// and must not be reused across attempts.
type Decider struct {
	db          ports.PackageDatabase
	policy      ports.Policy
	observer    ports.Observer
	logger      ports.Logger
	resolutions *Resolutions
}

// New creates a Decider for a single attempt.
func New(db ports.PackageDatabase, policy ports.Policy, observer ports.Observer, logger ports.Logger) *Decider {
	return &Decider{
		db:          db,
		policy:      policy,
		observer:    observer,
		logger:      logger,
		resolutions: NewResolutions(),
	}
}

// Run applies preloads, then targets, and resolves until every resolvent is decided.
// The returned error is reserved for cancellation and failing collaborators; conflicts
// and undecidable resolvents are reported through the Outcome.
func (d *Decider) Run(ctx context.Context, preloads []Preload, targets []Target) (Outcome, error) {
	for _, p := range preloads {
		if err := d.apply(d.resolutionFor(p.Resolvent), p.Constraint); err != nil {
			return outcomeFor(err)
		}
	}
	for _, t := range targets {
		if err := d.addTarget(t); err != nil {
			return outcomeFor(err)
		}
	}

	if err := d.resolve(ctx); err != nil {
		return outcomeFor(err)
	}

	plan := d.plan()
	if failures := plan.Failures(); len(failures) > 0 {
		return Unresolvable{Plan: plan, Failures: failures}, nil
	}
	return Planned{Plan: plan}, nil
}

func outcomeFor(err error) (Outcome, error) {
	var restart *RestartRequest
	if errors.As(err, &restart) {
		return Restart{Request: restart}, nil
	}
	return nil, err
}

// Resolutions exposes the registry, mainly for inspection in tests.
func (d *Decider) Resolutions() *Resolutions {
	return d.resolutions
}

func (d *Decider) addTarget(t Target) error {
	spec := domain.PackageOrBlockDepSpec{Package: t.Spec}
	reason := t.reason()

	resolvents := d.resolventsFor(spec, reason)
	if len(resolvents) == 0 {
		resolvents = []domain.Resolvent{d.errorResolvent(spec, reason)}
	}
	for _, r := range resolvents {
		if err := d.apply(d.resolutionFor(r), d.constraintFor(spec, reason, r.Destination, false, nil)); err != nil {
			return err
		}
	}
	return nil
}

// resolutionFor returns the resolution for r, seeding new ones with the policy's initial constraints.
func (d *Decider) resolutionFor(r domain.Resolvent) *domain.Resolution {
	res, created := d.resolutions.GetOrCreate(r)
	if created {
		res.Constraints = append(res.Constraints, d.policy.InitialConstraintsFor(r)...)
	}
	return res
}

func (d *Decider) constraintFor(
	spec domain.PackageOrBlockDepSpec,
	reason domain.Reason,
	destination domain.DestinationType,
	untaken bool,
	from *domain.PackageID,
) *domain.Constraint {
	useExisting, nothingFine := d.policy.UseExistingFor(spec, reason)
	return &domain.Constraint{
		Spec:             spec,
		Reason:           reason,
		Destination:      destination,
		UseExisting:      useExisting,
		NothingIsFineToo: nothingFine,
		Untaken:          untaken,
		FromID:           from,
	}
}

// resolve runs the stages of an attempt until none of them changes anything.
func (d *Decider) resolve(ctx context.Context) error {
	for {
		if err := d.decideWithDependencies(ctx); err != nil {
			return err
		}

		d.observer.OnStage(domain.StageVias)
		if d.processViaBinaries() {
			continue
		}

		d.observer.OnStage(domain.StageDependents)
		changed, err := d.processDependents()
		if err != nil {
			return err
		}
		if changed {
			continue
		}

		d.observer.OnStage(domain.StagePurges)
		changed, err = d.processPurges()
		if err != nil {
			return err
		}
		if !changed {
			break
		}
	}

	d.observer.OnStage(domain.StageConfirmations)
	d.processConfirmations()
	return nil
}

// decideWithDependencies decides every undecided resolution. Required resolutions go
// first, then those where doing nothing is acceptable, then suggestions.
func (d *Decider) decideWithDependencies(ctx context.Context) error {
	stages := []domain.Stage{
		domain.StageDecidingNonSuggestions,
		domain.StageDecidingNothings,
		domain.StageDecidingSuggestions,
	}

	notified := -1
	for current := 0; current < len(stages); {
		if err := ctx.Err(); err != nil {
			return err
		}
		stage := stages[current]
		if notified != current {
			d.observer.OnStage(stage)
			notified = current
		}

		changed := false
		for res := range d.resolutions.All() {
			if res.Decision != nil {
				continue
			}
			switch stage {
			case domain.StageDecidingNonSuggestions:
				if res.Constraints.AllUntaken() || res.Constraints.NothingIsFineToo() {
					continue
				}
			case domain.StageDecidingNothings:
				if res.Constraints.AllUntaken() {
					continue
				}
			}

			changed = true
			d.observer.OnStep(res.Resolvent)
			if err := d.decide(res); err != nil {
				return err
			}
		}

		if !changed {
			current++
		}
	}
	return nil
}

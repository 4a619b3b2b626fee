package decider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/decider/internal/adapters/depstring"
	"go.trai.ch/decider/internal/adapters/policy"
	"go.trai.ch/decider/internal/adapters/repository"
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports/mocks"
	"go.trai.ch/decider/internal/engine/decider"
	"go.uber.org/mock/gomock"
)

func TestDecider_BuildChainIsOrderedDependenciesFirst(t *testing.T) {
	t.Parallel()

	d := fixture{available: []repository.Package{
		{ID: "cat/one-1", Build: "cat/two"},
		{ID: "cat/two-1", Run: "cat/three"},
		{ID: "cat/three-1"},
	}}.decider(t)

	plan := planned(t, run(t, d, "cat/one"))
	assert.Equal(t, []string{
		"cat/three:0 changes_to_make",
		"cat/two:0 changes_to_make",
		"cat/one:0 changes_to_make",
	}, describe(plan))

	for _, res := range plan.Resolutions {
		dec, ok := res.Decision.(*domain.ChangesToMakeDecision)
		require.True(t, ok)
		assert.Equal(t, domain.ChangeTypeNew, dec.ChangeType)
		assert.True(t, dec.Taken)
		assert.True(t, dec.Best)
		assert.Empty(t, dec.Confirmations)
	}
}

func TestDecider_AnyOfPicksInstallableBranch(t *testing.T) {
	t.Parallel()

	d := fixture{available: []repository.Package{
		{ID: "cat/one-1", Run: "|| ( cat/two cat/three )"},
		{ID: "cat/three-1"},
	}}.decider(t)

	plan := planned(t, run(t, d, "cat/one"))
	assert.Equal(t, []string{"cat/three:0 changes_to_make", "cat/one:0 changes_to_make"}, describe(plan))
	assert.Nil(t, plan.Find(domain.NewResolvent("cat/two", domain.UnknownSlot(), domain.DestinationInstallToSlash)))
}

func TestDecider_AnyOfIsDeterministic(t *testing.T) {
	t.Parallel()

	f := fixture{available: []repository.Package{
		{ID: "cat/one-1", Run: "|| ( cat/two cat/three ) || ( cat/three cat/two )"},
		{ID: "cat/two-1"},
		{ID: "cat/three-1"},
	}}

	first := describe(planned(t, run(t, f.decider(t), "cat/one")))
	for range 5 {
		assert.Equal(t, first, describe(planned(t, run(t, f.decider(t), "cat/one"))))
	}
	// Ties go to the first branch of each group.
	assert.Equal(t, []string{
		"cat/two:0 changes_to_make",
		"cat/three:0 changes_to_make",
		"cat/one:0 changes_to_make",
	}, first)
}

func TestDecider_AnyOfPrefersInstalledThenPolicy(t *testing.T) {
	t.Parallel()

	f := fixture{
		installed: []repository.Package{{ID: "cat/three-1"}},
		available: []repository.Package{
			{ID: "cat/one-1", Run: "|| ( cat/two cat/three )"},
			{ID: "cat/two-1"},
		},
	}
	plan := planned(t, run(t, f.decider(t), "cat/one"))
	assert.Equal(t, []string{"cat/three:0 existing_no_change", "cat/one:0 changes_to_make"}, describe(plan))

	f.policy = func(c *domain.PolicyConfig) {
		c.Prefer = []*domain.PackageDepSpec{depstring.MustParsePackageDepSpec("cat/two")}
	}
	plan = planned(t, run(t, f.decider(t), "cat/one"))
	assert.Equal(t, []string{"cat/two:0 changes_to_make", "cat/one:0 changes_to_make"}, describe(plan))
}

func TestDecider_SlottedDependencyOnlyDecidesItsSlot(t *testing.T) {
	t.Parallel()

	d := fixture{available: []repository.Package{
		{ID: "cat/one-1", Run: "cat/two:slot2"},
		{ID: "cat/two-1", Slot: "slot1"},
		{ID: "cat/two-2", Slot: "slot2"},
		{ID: "cat/two-3", Slot: "slot3"},
	}}.decider(t)

	plan := planned(t, run(t, d, "cat/one"))
	assert.Equal(t, []string{"cat/two:slot2 changes_to_make", "cat/one:0 changes_to_make"}, describe(plan))
	assert.Equal(t, "cat/two-2:slot2::gentoo", domain.ChosenID(find(t, plan, "cat/two", "slot2").Decision).String())
}

func TestDecider_SlotExclusivity(t *testing.T) {
	t.Parallel()

	d := fixture{available: []repository.Package{
		{ID: "cat/one-1", Run: "cat/two:slot1 cat/two:slot2 cat/two"},
		{ID: "cat/two-1", Slot: "slot1"},
		{ID: "cat/two-2", Slot: "slot2"},
	}}.decider(t)

	plan := planned(t, run(t, d, "cat/one"))

	type key struct {
		pkg  string
		dest domain.DestinationType
		slot string
	}
	seen := make(map[key]bool)
	for _, res := range plan.Resolutions {
		k := key{res.Resolvent.Package.String(), res.Resolvent.Destination, res.Resolvent.Slot.String()}
		assert.False(t, seen[k], "two resolutions for %v", k)
		seen[k] = true
	}
	assert.Len(t, plan.Resolutions, 3)
}

func TestDecider_PostDependencyMayComeLater(t *testing.T) {
	t.Parallel()

	d := fixture{available: []repository.Package{
		{ID: "cat/one-1", Post: "cat/two"},
		{ID: "cat/two-1", Build: "cat/one"},
	}}.decider(t)

	plan := planned(t, run(t, d, "cat/one"))
	assert.Equal(t, []string{"cat/one:0 changes_to_make", "cat/two:0 changes_to_make"}, describe(plan))
}

func TestDecider_UpgradeAsNeededKeepsInstalledDependencies(t *testing.T) {
	t.Parallel()

	f := fixture{
		installed: []repository.Package{{ID: "cat/two-2"}},
		available: []repository.Package{
			{ID: "cat/one-1", Run: "cat/two"},
			{ID: "cat/two-3"},
		},
	}

	plan := planned(t, run(t, f.decider(t), "cat/one"))
	assert.Equal(t, []string{"cat/two:0 existing_no_change", "cat/one:0 changes_to_make"}, describe(plan))

	plan = planned(t, run(t, f.decider(t), "cat/one", "cat/two"))
	assert.Equal(t, []string{"cat/two:0 changes_to_make", "cat/one:0 changes_to_make"}, describe(plan))

	dec, ok := find(t, plan, "cat/two", "0").Decision.(*domain.ChangesToMakeDecision)
	require.True(t, ok)
	assert.Equal(t, "cat/two-3:0::gentoo", dec.OriginID.String())
	assert.Equal(t, domain.ChangeTypeUpgrade, dec.ChangeType)
	require.Len(t, dec.Destination.Replacing, 1)
	assert.Equal(t, "cat/two-2:0::vdb", dec.Destination.Replacing[0].String())
	assert.Equal(t, "vdb", dec.Destination.Repository)
}

func TestDecider_ConditionalDependencies(t *testing.T) {
	t.Parallel()

	for _, enabled := range []bool{true, false} {
		d := fixture{available: []repository.Package{
			{ID: "cat/one-1", Run: "foo? ( cat/two ) !foo? ( cat/three )", Choices: map[string]bool{"foo": enabled}},
			{ID: "cat/two-1"},
			{ID: "cat/three-1"},
		}}.decider(t)

		want := "cat/three:0 changes_to_make"
		if enabled {
			want = "cat/two:0 changes_to_make"
		}
		plan := planned(t, run(t, d, "cat/one"))
		assert.Equal(t, []string{want, "cat/one:0 changes_to_make"}, describe(plan))
	}
}

func TestDecider_UseExistingTiers(t *testing.T) {
	t.Parallel()

	never := domain.UseExistingNever
	possible := domain.UseExistingIfPossible

	f := fixture{
		installed: []repository.Package{{ID: "cat/one-1"}},
		available: []repository.Package{{ID: "cat/one-1"}},
	}

	f.policy = func(c *domain.PolicyConfig) { c.Targets = &never }
	plan := planned(t, run(t, f.decider(t), "cat/one"))
	dec, ok := find(t, plan, "cat/one", "0").Decision.(*domain.ChangesToMakeDecision)
	require.True(t, ok)
	assert.Equal(t, domain.ChangeTypeReinstall, dec.ChangeType)

	f.policy = func(c *domain.PolicyConfig) { c.Targets = &possible }
	plan = planned(t, run(t, f.decider(t), "cat/one"))
	existing, ok := find(t, plan, "cat/one", "0").Decision.(*domain.ExistingNoChangeDecision)
	require.True(t, ok)
	assert.True(t, existing.IsSame)

	installedOnly := fixture{
		installed: []repository.Package{{ID: "cat/one-1"}},
		policy:    func(c *domain.PolicyConfig) { c.Targets = &never },
	}
	outcome := run(t, installedOnly.decider(t), "cat/one")
	unresolvable, ok := outcome.(decider.Unresolvable)
	require.True(t, ok)
	require.Len(t, unresolvable.Failures, 1)
	assert.IsType(t, &domain.UnableToMakeDecision{}, unresolvable.Failures[0].Decision)
}

func TestDecider_MissingDependencyIsUnresolvable(t *testing.T) {
	t.Parallel()

	d := fixture{available: []repository.Package{{ID: "cat/one-1", Run: "cat/missing"}}}.decider(t)

	outcome := run(t, d, "cat/one")
	unresolvable, ok := outcome.(decider.Unresolvable)
	require.True(t, ok)
	require.Len(t, unresolvable.Failures, 1)
	assert.Equal(t, "cat/missing:(unknown) -> install_to_slash", unresolvable.Failures[0].Resolvent.String())
	assert.NotNil(t, unresolvable.Plan)
}

func TestDecider_MaskedPackagesNeedConfirmation(t *testing.T) {
	t.Parallel()

	f := fixture{available: []repository.Package{{ID: "cat/one-1", Masked: true}}}

	dec := planned(t, run(t, f.decider(t), "cat/one")).Resolutions[0].Decision.(*domain.ChangesToMakeDecision)
	assert.Equal(t, []domain.RequiredConfirmation{domain.ConfirmNotBest, domain.ConfirmMasked}, dec.Confirmations)

	f.policy = func(c *domain.PolicyConfig) { c.Permit = []domain.RequiredConfirmation{domain.ConfirmNotBest} }
	dec = planned(t, run(t, f.decider(t), "cat/one")).Resolutions[0].Decision.(*domain.ChangesToMakeDecision)
	assert.Equal(t, []domain.RequiredConfirmation{domain.ConfirmMasked}, dec.Confirmations)
}

func TestDecider_DowngradeNeedsConfirmation(t *testing.T) {
	t.Parallel()

	d := fixture{
		installed: []repository.Package{{ID: "cat/one-2"}},
		available: []repository.Package{{ID: "cat/one-1"}},
	}.decider(t)

	plan := planned(t, run(t, d, "<cat/one-2"))
	dec, ok := find(t, plan, "cat/one", "0").Decision.(*domain.ChangesToMakeDecision)
	require.True(t, ok)
	assert.Equal(t, domain.ChangeTypeDowngrade, dec.ChangeType)
	assert.Equal(t, []domain.RequiredConfirmation{domain.ConfirmDowngrade}, dec.Confirmations)
}

func TestDecider_BlockerRemovesInstalledPackage(t *testing.T) {
	t.Parallel()

	d := fixture{
		installed: []repository.Package{{ID: "cat/two-1"}},
		available: []repository.Package{{ID: "cat/one-1", Run: "!cat/two"}},
		system:    []string{"cat/two"},
	}.decider(t)

	plan := planned(t, run(t, d, "cat/one"))
	assert.Equal(t, []string{"cat/two:0 remove", "cat/one:0 changes_to_make"}, describe(plan))

	remove, ok := find(t, plan, "cat/two", "0").Decision.(*domain.RemoveDecision)
	require.True(t, ok)
	assert.True(t, remove.Taken)
	assert.Equal(t, []domain.RequiredConfirmation{domain.ConfirmRemoveSystemPackage}, remove.Confirmations)
}

func TestDecider_ViaBinary(t *testing.T) {
	t.Parallel()

	d := fixture{
		available: []repository.Package{{ID: "cat/one-1"}},
		policy: func(c *domain.PolicyConfig) {
			c.ViaBinary = []*domain.PackageDepSpec{depstring.MustParsePackageDepSpec("cat/one")}
		},
	}.decider(t)

	plan := planned(t, run(t, d, "cat/one"))
	binary := plan.Find(domain.NewResolvent("cat/one", domain.NewSlotName("0"), domain.DestinationCreateBinaries))
	require.NotNil(t, binary)

	dec, ok := binary.Decision.(*domain.ChangesToMakeDecision)
	require.True(t, ok)
	assert.True(t, dec.Taken)
	assert.Equal(t, policy.BinariesRepository, dec.Destination.Repository)
	assert.Equal(t, domain.ChangeTypeNew, dec.ChangeType)
}

func TestDecider_DependentsAreRebuilt(t *testing.T) {
	t.Parallel()

	f := fixture{
		installed: []repository.Package{
			{ID: "cat/app-1", Run: "=cat/lib-1"},
			{ID: "cat/lib-1"},
		},
		available: []repository.Package{
			{ID: "cat/app-2", Run: "cat/lib"},
			{ID: "cat/lib-2"},
		},
	}

	plan := planned(t, run(t, f.decider(t), "cat/lib"))
	assert.Equal(t, []string{"cat/lib:0 changes_to_make", "cat/app:0 changes_to_make"}, describe(plan))

	app := find(t, plan, "cat/app", "0")
	assert.True(t, app.Constraints.AllDependent())
	assert.Equal(t, "cat/app-2:0::gentoo", domain.ChosenID(app.Decision).String())
}

func TestDecider_DependentsCanBeLeftBroken(t *testing.T) {
	t.Parallel()

	d := fixture{
		installed: []repository.Package{
			{ID: "cat/app-1", Run: "=cat/lib-1"},
			{ID: "cat/lib-1"},
		},
		available: []repository.Package{{ID: "cat/lib-2"}},
		policy:    func(c *domain.PolicyConfig) { c.Dependents = domain.DependentsBreak },
	}.decider(t)

	plan := planned(t, run(t, d, "cat/lib"))
	brk, ok := find(t, plan, "cat/app", "0").Decision.(*domain.BreakDecision)
	require.True(t, ok)
	assert.Equal(t, "cat/app-1:0::vdb", brk.ExistingID.String())
	assert.Equal(t, []domain.RequiredConfirmation{domain.ConfirmBreak}, brk.Confirmations)
}

func TestDecider_UnusedPackagesArePurgeSuggestions(t *testing.T) {
	t.Parallel()

	f := fixture{
		installed: []repository.Package{
			{ID: "cat/app-1", Run: "cat/lib"},
			{ID: "cat/lib-1"},
		},
		available: []repository.Package{{ID: "cat/app-2"}},
	}

	plan := planned(t, run(t, f.decider(t), "cat/app"))
	remove, ok := find(t, plan, "cat/lib", "0").Decision.(*domain.RemoveDecision)
	require.True(t, ok)
	assert.False(t, remove.Taken)
	assert.Len(t, plan.Steps(), 1)

	f.policy = func(c *domain.PolicyConfig) { c.Purge = true }
	plan = planned(t, run(t, f.decider(t), "cat/app"))
	remove, ok = find(t, plan, "cat/lib", "0").Decision.(*domain.RemoveDecision)
	require.True(t, ok)
	assert.True(t, remove.Taken)
	assert.Len(t, plan.Steps(), 2)

	f.system = []string{"cat/lib"}
	plan = planned(t, run(t, f.decider(t), "cat/app"))
	assert.Nil(t, plan.Find(domain.NewResolvent("cat/lib", domain.NewSlotName("0"), domain.DestinationInstallToSlash)))
}

func TestDecider_WrongDecisionRequestsRestart(t *testing.T) {
	t.Parallel()

	f := fixture{available: []repository.Package{
		{ID: "cat/one-1", Run: "cat/two"},
		{ID: "cat/three-1", Build: "cat/four"},
		{ID: "cat/four-1", Run: "cat/two[foo]"},
		{ID: "cat/two-1", Choices: map[string]bool{"foo": false}},
	}}

	outcome := run(t, f.decider(t), "cat/one", "cat/three")
	restart, ok := outcome.(decider.Restart)
	require.True(t, ok, "expected a restart, got %T", outcome)
	assert.Equal(t, "cat/two:0 -> install_to_slash", restart.Request.Resolvent.String())
	assert.Equal(t, "changes_to_make", restart.Request.Previous.Kind())

	preload := restart.Request.Preload()
	assert.Equal(t, "cat/two[foo]", preload.Constraint.Spec.String())
	assert.IsType(t, &domain.PresetReason{}, preload.Constraint.Reason)

	second, err := f.decider(t).Run(context.Background(), []decider.Preload{preload}, targets("cat/one", "cat/three"))
	require.NoError(t, err)
	plan := planned(t, second)

	dec, ok := find(t, plan, "cat/two", "0").Decision.(*domain.ChangesToMakeDecision)
	require.True(t, ok)
	enabled, changed := dec.ChangedChoices.Get("foo")
	assert.True(t, changed)
	assert.True(t, enabled)
	assert.Equal(t, []domain.RequiredConfirmation{domain.ConfirmChangedChoices}, dec.Confirmations)
}

func TestDecider_NotifiesStagesInOrder(t *testing.T) {
	t.Parallel()

	u := fixture{available: []repository.Package{{ID: "cat/one-1"}}}.universe(t)
	db := repository.New(u)

	ctrl := gomock.NewController(t)
	observer := mocks.NewMockObserver(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	r := domain.NewResolvent("cat/one", domain.NewSlotName("0"), domain.DestinationInstallToSlash)
	gomock.InOrder(
		observer.EXPECT().OnStage(domain.StageDecidingNonSuggestions),
		observer.EXPECT().OnStep(r),
		observer.EXPECT().OnStage(domain.StageDecidingNothings),
		observer.EXPECT().OnStage(domain.StageDecidingSuggestions),
		observer.EXPECT().OnStage(domain.StageVias),
		observer.EXPECT().OnStage(domain.StageDependents),
		observer.EXPECT().OnStage(domain.StagePurges),
		observer.EXPECT().OnStage(domain.StageConfirmations),
	)

	outcome, err := decider.New(db, policy.New(u.Policy, db), observer, logger).
		Run(context.Background(), nil, targets("cat/one"))
	require.NoError(t, err)
	planned(t, outcome)
}

func TestDecider_Cancelled(t *testing.T) {
	t.Parallel()

	d := fixture{available: []repository.Package{{ID: "cat/one-1"}}}.decider(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Run(ctx, nil, targets("cat/one"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDecider_SetTargets(t *testing.T) {
	t.Parallel()

	d := fixture{available: []repository.Package{{ID: "cat/one-1"}}}.decider(t)

	outcome, err := d.Run(context.Background(), nil, []decider.Target{
		{Spec: depstring.MustParsePackageDepSpec("cat/one"), Set: "world"},
	})
	require.NoError(t, err)

	res := find(t, planned(t, outcome), "cat/one", "0")
	reason, ok := res.Constraints[0].Reason.(*domain.SetReason)
	require.True(t, ok)
	assert.Equal(t, "world", reason.Set)
}

func TestDecider_PresetDoesNotHideBrokenDependent(t *testing.T) {
	t.Parallel()

	f := fixture{
		installed: []repository.Package{
			{ID: "cat/app-1", Run: "=cat/lib-1"},
			{ID: "cat/lib-1"},
		},
		available: []repository.Package{{ID: "cat/lib-2"}},
		policy: func(c *domain.PolicyConfig) {
			c.Presets = []*domain.PackageDepSpec{depstring.MustParsePackageDepSpec("cat/app")}
		},
	}

	plan := planned(t, run(t, f.decider(t), "cat/lib"))
	app := find(t, plan, "cat/app", "0")
	brk, ok := app.Decision.(*domain.BreakDecision)
	require.True(t, ok, "got %T", app.Decision)
	assert.True(t, brk.Taken)
	assert.Equal(t, "cat/app-1:0::vdb", brk.ExistingID.String())

	var preset bool
	for _, c := range app.Constraints {
		if _, ok := c.Reason.(*domain.PresetReason); ok {
			preset = true
		}
	}
	assert.True(t, preset)
}

func TestDecider_DependentsCanBeRemoved(t *testing.T) {
	t.Parallel()

	d := fixture{
		installed: []repository.Package{
			{ID: "cat/app-1", Run: "=cat/lib-1"},
			{ID: "cat/lib-1"},
		},
		available: []repository.Package{{ID: "cat/lib-2"}},
		policy:    func(c *domain.PolicyConfig) { c.Dependents = domain.DependentsRemove },
	}.decider(t)

	plan := planned(t, run(t, d, "cat/lib"))
	app := find(t, plan, "cat/app", "0")
	remove, ok := app.Decision.(*domain.RemoveDecision)
	require.True(t, ok, "got %T", app.Decision)
	assert.True(t, remove.Taken)
	require.Len(t, remove.IDs, 1)
	assert.Equal(t, "cat/app-1:0::vdb", remove.IDs[0].String())
	assert.Empty(t, remove.Confirmations)
	assert.True(t, app.Constraints.AllDependent())

	lib, ok := find(t, plan, "cat/lib", "0").Decision.(*domain.ChangesToMakeDecision)
	require.True(t, ok)
	assert.Equal(t, domain.ChangeTypeUpgrade, lib.ChangeType)
}

func TestDecider_NewSlotChangeType(t *testing.T) {
	t.Parallel()

	d := fixture{
		installed: []repository.Package{{ID: "cat/two-1", Slot: "slot1"}},
		available: []repository.Package{
			{ID: "cat/two-1", Slot: "slot1"},
			{ID: "cat/two-2", Slot: "slot2"},
		},
	}.decider(t)

	plan := planned(t, run(t, d, "cat/two:slot2"))
	dec, ok := find(t, plan, "cat/two", "slot2").Decision.(*domain.ChangesToMakeDecision)
	require.True(t, ok)
	assert.Equal(t, domain.ChangeTypeSlotNew, dec.ChangeType)
	assert.Empty(t, dec.Destination.Replacing)
}

// sideBySidePolicy installs next to what is in the slot instead of replacing it.
type sideBySidePolicy struct {
	*policy.Policy
}

func (p sideBySidePolicy) MakeDestination(r domain.Resolvent, id *domain.PackageID) (*domain.Destination, error) {
	dest, err := p.Policy.MakeDestination(r, id)
	if dest != nil {
		dest.Replacing = nil
	}
	return dest, err
}

func TestDecider_AddToSlotChangeType(t *testing.T) {
	t.Parallel()

	u := fixture{
		installed: []repository.Package{{ID: "cat/two-1"}},
		available: []repository.Package{{ID: "cat/two-2"}},
	}.universe(t)
	db := repository.New(u)
	observer, logger := quietMocks(t)
	d := decider.New(db, sideBySidePolicy{policy.New(u.Policy, db)}, observer, logger)

	plan := planned(t, run(t, d, ">=cat/two-2"))
	dec, ok := find(t, plan, "cat/two", "0").Decision.(*domain.ChangesToMakeDecision)
	require.True(t, ok)
	assert.Equal(t, domain.ChangeTypeAddToSlot, dec.ChangeType)
}

func TestDecider_BinaryCopiesConstraintsOfInstall(t *testing.T) {
	t.Parallel()

	d := fixture{
		available: []repository.Package{{ID: "cat/one-1"}},
		policy: func(c *domain.PolicyConfig) {
			c.ViaBinary = []*domain.PackageDepSpec{depstring.MustParsePackageDepSpec("cat/one")}
		},
	}.decider(t)

	plan := planned(t, run(t, d, "cat/one"))
	slash := find(t, plan, "cat/one", "0")
	binary := plan.Find(slash.Resolvent.WithDestination(domain.DestinationCreateBinaries))
	require.NotNil(t, binary)

	var copied []*domain.LikeOtherDestinationTypeReason
	for _, c := range binary.Constraints {
		if reason, ok := c.Reason.(*domain.LikeOtherDestinationTypeReason); ok {
			assert.Equal(t, domain.DestinationCreateBinaries, c.Destination)
			copied = append(copied, reason)
		}
	}
	require.Len(t, copied, 1)
	assert.Equal(t, slash.Resolvent, copied[0].Other)
	assert.IsType(t, &domain.TargetReason{}, copied[0].Inner)

	for _, c := range slash.Constraints {
		_, ok := c.Reason.(*domain.LikeOtherDestinationTypeReason)
		assert.False(t, ok)
	}
}

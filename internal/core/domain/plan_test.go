package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/semver"
)

func TestPlan_StepsAndFailures(t *testing.T) {
	id := &domain.PackageID{
		Name:       domain.NewInternedString("cat/one"),
		Version:    semver.MustParseVersion("1.0"),
		Slot:       "0",
		Repository: "repo",
	}
	installed := &domain.PackageID{
		Name:       domain.NewInternedString("cat/two"),
		Version:    semver.MustParseVersion("2"),
		Slot:       "0",
		Repository: "installed",
		Installed:  true,
	}

	changes := domain.NewResolution(domain.ResolventFor(id, domain.DestinationInstallToSlash))
	changes.Decision = &domain.ChangesToMakeDecision{
		OriginID:    id,
		Destination: &domain.Destination{Repository: "installed"},
		ChangeType:  domain.ChangeTypeNew,
		Taken:       true,
		Best:        true,
	}
	kept := domain.NewResolution(domain.ResolventFor(installed, domain.DestinationInstallToSlash))
	kept.Decision = &domain.ExistingNoChangeDecision{ExistingID: installed, Taken: true}
	failed := domain.NewResolution(domain.NewResolvent("cat/missing", domain.UnknownSlot(), domain.DestinationInstallToSlash))
	failed.Decision = &domain.UnableToMakeDecision{Taken: true}
	suggestion := domain.NewResolution(domain.NewResolvent("cat/maybe", domain.UnknownSlot(), domain.DestinationInstallToSlash))
	suggestion.Decision = &domain.UnableToMakeDecision{Taken: false}

	plan := &domain.Plan{Resolutions: []*domain.Resolution{kept, changes, failed, suggestion}}

	assert.Equal(t, []*domain.Resolution{changes}, plan.Steps())
	assert.Equal(t, []*domain.Resolution{failed}, plan.Failures())
	assert.Same(t, changes, plan.Find(changes.Resolvent))
	assert.Nil(t, plan.Find(domain.NewResolvent("cat/none", domain.UnknownSlot(), domain.DestinationInstallToSlash)))
}

func TestPlan_Record(t *testing.T) {
	id := &domain.PackageID{
		Name:       domain.NewInternedString("cat/one"),
		Version:    semver.MustParseVersion("2.0"),
		Slot:       "0",
		Repository: "repo",
	}
	old := &domain.PackageID{
		Name:       domain.NewInternedString("cat/one"),
		Version:    semver.MustParseVersion("1.0"),
		Slot:       "0",
		Repository: "installed",
		Installed:  true,
	}
	changed := domain.NewChangedChoices()
	changed.Add("foo", true)

	res := domain.NewResolution(domain.ResolventFor(id, domain.DestinationInstallToSlash))
	res.Constraints = append(res.Constraints, &domain.Constraint{
		Spec:   domain.PackageOrBlockDepSpec{Package: &domain.PackageDepSpec{Name: id.Name}},
		Reason: &domain.TargetReason{},
	})
	res.Decision = &domain.ChangesToMakeDecision{
		OriginID:       id,
		Destination:    &domain.Destination{Repository: "installed", Replacing: []*domain.PackageID{old}},
		ChangeType:     domain.ChangeTypeUpgrade,
		Taken:          true,
		ChangedChoices: changed,
		Confirmations:  []domain.RequiredConfirmation{domain.ConfirmChangedChoices},
	}

	plan := &domain.Plan{Resolutions: []*domain.Resolution{res, domain.NewResolution(resolvent("cat/undecided"))}}
	rec := plan.Record("abc", []string{"cat/one"})

	assert.Equal(t, "abc", rec.Key)
	assert.Equal(t, domain.PlanRecordVersion, rec.Version)
	require.Len(t, rec.Steps, 1)
	assert.Equal(t, domain.PlanStep{
		Resolvent:      "cat/one:0 -> install_to_slash",
		Decision:       "changes_to_make",
		Taken:          true,
		Package:        "cat/one-2.0:0::repo",
		ChangeType:     "upgrade",
		Replacing:      []string{"cat/one-1.0:0::installed"},
		ChangedChoices: "foo",
		Confirmations:  []string{"changed_choices"},
		Reasons:        []string{"target"},
	}, rec.Steps[0])
}

func TestPlan_RecordShowsMaskReasons(t *testing.T) {
	masked := &domain.PackageID{
		Name:        domain.NewInternedString("cat/one"),
		Version:     semver.MustParseVersion("1.0"),
		Slot:        "0",
		Repository:  "repo",
		Masked:      true,
		MaskReasons: []string{"keyword ~amd64", "license"},
	}
	target := &domain.Constraint{
		Spec:   domain.PackageOrBlockDepSpec{Package: &domain.PackageDepSpec{Name: masked.Name}},
		Reason: &domain.TargetReason{},
	}

	res := domain.NewResolution(domain.ResolventFor(masked, domain.DestinationInstallToSlash))
	res.Decision = &domain.UnableToMakeDecision{
		Taken: true,
		Unsuitable: []domain.UnsuitableCandidate{
			{ID: masked, Masked: true, Unmet: domain.Constraints{target}},
		},
	}

	rec := (&domain.Plan{Resolutions: []*domain.Resolution{res}}).Record("k", nil)
	require.Len(t, rec.Steps, 1)
	assert.Equal(t, []string{"cat/one-1.0:0::repo (masked: keyword ~amd64, license); unmet cat/one"}, rec.Steps[0].Unsuitable)
}

func TestGeneratePlanKey(t *testing.T) {
	a := domain.GeneratePlanKey("digest", []string{"cat/one", "cat/two"})
	b := domain.GeneratePlanKey("digest", []string{"cat/two", "cat/one"})
	c := domain.GeneratePlanKey("other", []string{"cat/one", "cat/two"})
	d := domain.GeneratePlanKey("digest", []string{"cat/one", "cat/two"}, "keep-going")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.NotEmpty(t, a)
}

func TestStage_IsDeciding(t *testing.T) {
	assert.True(t, domain.StageDecidingNothings.IsDeciding())
	assert.False(t, domain.StagePurges.IsDeciding())
}

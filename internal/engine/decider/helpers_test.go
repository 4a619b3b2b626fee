package decider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/decider/internal/adapters/depstring"
	"go.trai.ch/decider/internal/adapters/policy"
	"go.trai.ch/decider/internal/adapters/repository"
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports/mocks"
	"go.trai.ch/decider/internal/engine/decider"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	installed []repository.Package
	available []repository.Package
	system    []string
	policy    func(*domain.PolicyConfig)
}

func (f fixture) universe(t *testing.T) *domain.Universe {
	t.Helper()

	vdb, err := repository.NewRepository("vdb", true, f.installed)
	require.NoError(t, err)
	gentoo, err := repository.NewRepository("gentoo", false, f.available)
	require.NoError(t, err)

	u := &domain.Universe{
		Repositories: []*domain.Repository{gentoo, vdb},
		Policy:       domain.DefaultPolicyConfig(),
	}
	for _, s := range f.system {
		u.System = append(u.System, depstring.MustParsePackageDepSpec(s))
	}
	if f.policy != nil {
		f.policy(&u.Policy)
	}
	return u
}

func (f fixture) decider(t *testing.T) *decider.Decider {
	t.Helper()

	u := f.universe(t)
	db := repository.New(u)
	observer, logger := quietMocks(t)
	return decider.New(db, policy.New(u.Policy, db), observer, logger)
}

func quietMocks(t *testing.T) (*mocks.MockObserver, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	observer := mocks.NewMockObserver(ctrl)
	observer.EXPECT().OnStage(gomock.Any()).AnyTimes()
	observer.EXPECT().OnStep(gomock.Any()).AnyTimes()
	observer.EXPECT().OnRestart(gomock.Any(), gomock.Any()).AnyTimes()
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return observer, logger
}

func targets(specs ...string) []decider.Target {
	out := make([]decider.Target, 0, len(specs))
	for _, s := range specs {
		out = append(out, decider.Target{Spec: depstring.MustParsePackageDepSpec(s)})
	}
	return out
}

func run(t *testing.T, d *decider.Decider, specs ...string) decider.Outcome {
	t.Helper()

	outcome, err := d.Run(context.Background(), nil, targets(specs...))
	require.NoError(t, err)
	return outcome
}

func planned(t *testing.T, outcome decider.Outcome) *domain.Plan {
	t.Helper()

	p, ok := outcome.(decider.Planned)
	require.True(t, ok, "expected a plan, got %T", outcome)
	return p.Plan
}

// describe renders each resolution as "resolvent kind".
func describe(plan *domain.Plan) []string {
	out := make([]string, 0, len(plan.Resolutions))
	for _, res := range plan.Resolutions {
		out = append(out, res.Resolvent.Package.String()+":"+res.Resolvent.Slot.String()+" "+res.Decision.Kind())
	}
	return out
}

func find(t *testing.T, plan *domain.Plan, pkg, slot string) *domain.Resolution {
	t.Helper()

	res := plan.Find(domain.NewResolvent(pkg, domain.NewSlotName(slot), domain.DestinationInstallToSlash))
	require.NotNil(t, res, "no resolution for %s:%s", pkg, slot)
	return res
}

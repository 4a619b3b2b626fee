package resolver_test

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
	"go.trai.ch/decider/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newSession(t *testing.T, packages []repository.Package, maxRestarts int) (*resolver.Session, *mocks.MockObserver) {
	t.Helper()

	gentoo, err := repository.NewRepository("gentoo", false, packages)
	require.NoError(t, err)
	u := &domain.Universe{Repositories: []*domain.Repository{gentoo}, Policy: domain.DefaultPolicyConfig()}
	db := repository.New(u)

	ctrl := gomock.NewController(t)
	observer := mocks.NewMockObserver(ctrl)
	observer.EXPECT().OnStage(gomock.Any()).AnyTimes()
	observer.EXPECT().OnStep(gomock.Any()).AnyTimes()
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return resolver.NewSession(db, policy.New(u.Policy, db), observer, logger, maxRestarts), observer
}

func target(s string) decider.Target {
	return decider.Target{Spec: depstring.MustParsePackageDepSpec(s)}
}

func names(plan *domain.Plan) []string {
	out := make([]string, 0, len(plan.Resolutions))
	for _, res := range plan.Resolutions {
		out = append(out, res.Resolvent.Package.String())
	}
	return out
}

func TestSession_FailedAddLeavesPlanIntact(t *testing.T) {
	t.Parallel()

	s, _ := newSession(t, []repository.Package{
		{ID: "cat/one-1", Build: "cat/two"},
		{ID: "cat/two-1", Run: "cat/three"},
		{ID: "cat/three-1"},
		{ID: "cat/five-1", Run: "cat/six cat/seven"},
		{ID: "cat/six-1"},
		{ID: "cat/seven-1", Run: "cat/nonexistent"},
	}, domain.DefaultMaxRestarts)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, target("cat/one")))
	before := names(s.Plan())
	assert.Equal(t, []string{"cat/three", "cat/two", "cat/one"}, before)

	err := s.Add(ctx, target("cat/five"))
	require.ErrorIs(t, err, domain.ErrUnresolvable)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "cat/nonexistent:(unknown) -> install_to_slash", zErr.Metadata()["failures"])

	assert.Equal(t, before, names(s.Plan()))
	assert.Len(t, s.Targets(), 1)
	require.NotNil(t, s.Rejected())
	assert.NotNil(t, s.Rejected().Find(domain.NewResolvent("cat/nonexistent", domain.UnknownSlot(), domain.DestinationInstallToSlash)))
}

func TestSession_AddAccumulatesTargets(t *testing.T) {
	t.Parallel()

	s, _ := newSession(t, []repository.Package{{ID: "cat/one-1"}, {ID: "cat/two-1"}}, domain.DefaultMaxRestarts)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, target("cat/one")))
	require.NoError(t, s.Add(ctx, target("cat/two")))
	assert.Equal(t, []string{"cat/one", "cat/two"}, names(s.Plan()))
	assert.Len(t, s.Targets(), 2)
	assert.Nil(t, s.Rejected())
}

func TestSession_NoTargets(t *testing.T) {
	t.Parallel()

	s, _ := newSession(t, nil, domain.DefaultMaxRestarts)
	assert.ErrorIs(t, s.Add(context.Background()), domain.ErrNoTargetsSpecified)
}

func restartingPackages() []repository.Package {
	return []repository.Package{
		{ID: "cat/one-1", Run: "cat/two"},
		{ID: "cat/three-1", Build: "cat/four"},
		{ID: "cat/four-1", Run: "cat/two[foo]"},
		{ID: "cat/two-1", Choices: map[string]bool{"foo": false}},
	}
}

func TestSession_RestartsWithPreload(t *testing.T) {
	t.Parallel()

	s, observer := newSession(t, restartingPackages(), domain.DefaultMaxRestarts)
	observer.EXPECT().OnRestart(1, domain.NewResolvent("cat/two", domain.NewSlotName("0"), domain.DestinationInstallToSlash))

	require.NoError(t, s.Add(context.Background(), target("cat/one"), target("cat/three")))

	res := s.Plan().Find(domain.NewResolvent("cat/two", domain.NewSlotName("0"), domain.DestinationInstallToSlash))
	require.NotNil(t, res)
	dec, ok := res.Decision.(*domain.ChangesToMakeDecision)
	require.True(t, ok)
	assert.False(t, dec.ChangedChoices.Empty())
}

func TestSession_TooManyRestarts(t *testing.T) {
	t.Parallel()

	s, _ := newSession(t, restartingPackages(), 0)

	err := s.Add(context.Background(), target("cat/one"), target("cat/three"))
	require.ErrorIs(t, err, domain.ErrTooManyRestarts)
	assert.Empty(t, s.Plan().Resolutions)
	assert.Empty(t, s.Targets())
}

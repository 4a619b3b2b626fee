package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/decider/internal/adapters/repository"
	"go.trai.ch/decider/internal/core/domain"
)

func newUniverse(t *testing.T) *domain.Universe {
	t.Helper()

	installed, err := repository.NewRepository("vdb", true, []repository.Package{
		{ID: "cat/two-2", Slot: "0"},
		{ID: "cat/one-1"},
	})
	require.NoError(t, err)

	gentoo, err := repository.NewRepository("gentoo", false, []repository.Package{
		{ID: "cat/two-3", Slot: "0"},
		{ID: "cat/two-1", Slot: "0"},
		{ID: "cat/two-5", Slot: "1", Masked: true},
		{ID: "cat/one-1", Run: "cat/two foo? ( cat/three )", Choices: map[string]bool{"foo": true}},
	})
	require.NoError(t, err)

	return &domain.Universe{Repositories: []*domain.Repository{gentoo, installed}}
}

func versions(ids []*domain.PackageID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func TestDatabase_Versions(t *testing.T) {
	t.Parallel()

	db := repository.New(newUniverse(t))
	name := domain.NewInternedString("cat/two")

	assert.Equal(t,
		[]string{"cat/two-1:0::gentoo", "cat/two-3:0::gentoo", "cat/two-5:1::gentoo"},
		versions(db.Versions(name, domain.FilterInstallable)))
	assert.Equal(t,
		[]string{"cat/two-1:0::gentoo", "cat/two-3:0::gentoo"},
		versions(db.Versions(name, domain.FilterInstallableUnmasked)))
	assert.Equal(t, []string{"cat/two-2:0::vdb"}, versions(db.Versions(name, domain.FilterInstalled)))
	assert.Empty(t, db.Versions(domain.NewInternedString("cat/nope"), domain.FilterInstallable))
}

func TestDatabase_BestPerSlot(t *testing.T) {
	t.Parallel()

	db := repository.New(newUniverse(t))
	best := db.BestPerSlot(domain.NewInternedString("cat/two"), domain.FilterInstallable)
	assert.Equal(t, []string{"cat/two-3:0::gentoo", "cat/two-5:1::gentoo"}, versions(best))
}

func TestDatabase_Installed(t *testing.T) {
	t.Parallel()

	db := repository.New(newUniverse(t))
	assert.Equal(t, []string{"cat/one-1:0::vdb", "cat/two-2:0::vdb"}, versions(db.AllInstalled()))
	assert.Equal(t, "vdb", db.InstalledRepository())
	assert.Equal(t, repository.DefaultInstalledRepository, repository.New(&domain.Universe{}).InstalledRepository())
}

func TestPackage_ResolveMaskReasons(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		pkg  repository.Package
		want []string
	}{
		{"explicit", repository.Package{Masked: true, MaskReasons: []string{"license"}, Keywords: []string{"~amd64"}}, []string{"license"}},
		{"testing keywords", repository.Package{Masked: true, Keywords: []string{"~amd64", "~arm64"}}, []string{"keyword ~amd64 ~arm64"}},
		{"stable keyword", repository.Package{Masked: true, Keywords: []string{"~amd64", "arm64"}}, []string{"masked"}},
		{"no keywords", repository.Package{Masked: true}, []string{"masked"}},
		{"unmasked", repository.Package{Keywords: []string{"~amd64"}}, nil},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.pkg.ID = "cat/one-1"
			id, err := tt.pkg.Resolve("gentoo", false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.MaskReasons)
		})
	}
}

func TestPackage_Resolve(t *testing.T) {
	t.Parallel()

	id, err := repository.Package{
		ID:      "cat/one-1.2-r1",
		Run:     "cat/two foo? ( cat/three )",
		Choices: map[string]bool{"foo": true},
		Masked:  true,
	}.Resolve("gentoo", false)
	require.NoError(t, err)

	assert.Equal(t, "cat/one", id.Name.String())
	assert.Equal(t, "0", id.Slot)
	assert.Equal(t, []string{"masked"}, id.MaskReasons)
	assert.NotNil(t, id.RunDependencies)
	assert.Nil(t, id.BuildDependencies)
	assert.NotEmpty(t, id.Digest)

	same, err := repository.Package{ID: "cat/one-1.3", Run: "cat/two  foo? ( cat/three )"}.Resolve("gentoo", false)
	require.NoError(t, err)
	assert.Equal(t, id.Digest, same.Digest)

	other, err := repository.Package{ID: "cat/one-1.3", Run: "cat/two"}.Resolve("gentoo", false)
	require.NoError(t, err)
	assert.NotEqual(t, id.Digest, other.Digest)
}

func TestNewRepository_Errors(t *testing.T) {
	t.Parallel()

	_, err := repository.NewRepository("gentoo", false, []repository.Package{{ID: "cat/one-1"}, {ID: "cat/one-1"}})
	require.ErrorIs(t, err, domain.ErrDuplicatePackageID)

	_, err = repository.NewRepository("gentoo", false, []repository.Package{{ID: "cat/one"}})
	require.ErrorIs(t, err, domain.ErrInvalidPackageID)

	_, err = repository.NewRepository("gentoo", false, []repository.Package{{ID: "cat/one-1", Run: "( cat/two"}})
	require.ErrorIs(t, err, domain.ErrInvalidDepString)
}

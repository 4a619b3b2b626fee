package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/decider/internal/adapters/cas"
	"go.trai.ch/decider/internal/core/domain"
)

func record(key string) domain.PlanRecord {
	return domain.PlanRecord{
		Key:     key,
		Version: domain.PlanRecordVersion,
		Targets: []string{"cat/one"},
		Steps: []domain.PlanStep{
			{Resolvent: "cat/one:0 -> install_to_slash", Decision: "changes_to_make", Taken: true},
		},
	}
}

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(root, record("abc123")))

	got, err := store.Get(root, "abc123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record("abc123"), *got)

	assert.FileExists(t, filepath.Join(root, domain.DefaultStorePath(), "abc123.json"))
}

func TestStore_Missing(t *testing.T) {
	got, err := cas.NewStore().Get(t.TempDir(), "nothing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_StaleVersion(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	old := record("old")
	old.Version = domain.PlanRecordVersion + 1
	require.NoError(t, store.Put(root, old))

	got, err := store.Get(root, "old")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Corrupt(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, domain.DefaultStorePath())
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0o600))

	_, err := cas.NewStore().Get(root, "bad")
	require.ErrorIs(t, err, domain.ErrStoreUnmarshalFailed)
}

func TestStore_InvalidKey(t *testing.T) {
	store := cas.NewStore()

	_, err := store.Get(t.TempDir(), "../escape")
	require.Error(t, err)

	require.Error(t, store.Put(t.TempDir(), record("")))
}

package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/decider/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("cat/one")
	is2 := domain.NewInternedString("cat/one")

	assert.Equal(t, is1.Value(), is2.Value())
	assert.Equal(t, "cat/one", is1.String())
	assert.Empty(t, domain.InternedString{}.String())
}

func TestInternedStringJSON(t *testing.T) {
	type entry struct {
		Name domain.InternedString `json:"name"`
	}

	data, err := json.Marshal(entry{Name: domain.NewInternedString("cat/two")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"cat/two"}`, string(data))

	var got entry
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "cat/two", got.Name.String())
}

func TestResolvent(t *testing.T) {
	a := domain.NewResolvent("cat/one", domain.NewSlotName("0"), domain.DestinationInstallToSlash)
	b := domain.NewResolvent("cat/one", domain.NewSlotName("0"), domain.DestinationInstallToSlash)
	c := a.WithDestination(domain.DestinationCreateBinaries)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "cat/one:0 -> install_to_slash", a.String())
	assert.Equal(t, "cat/one:0 -> create_binaries", c.String())

	unknown := domain.NewResolvent("cat/missing", domain.UnknownSlot(), domain.DestinationInstallToSlash)
	assert.False(t, unknown.Slot.Known())
	assert.Equal(t, "cat/missing:(unknown) -> install_to_slash", unknown.String())

	seen := map[domain.Resolvent]bool{a: true}
	assert.True(t, seen[b])
	assert.False(t, seen[c])
}

package ability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameHash_KnownValues(t *testing.T) {
	// pinned so a refactor cannot silently change the client-compatible hash
	assert.Equal(t, uint32(3182672069), NameHash("Fire_DMG"))
	assert.Equal(t, uint32(3301789414), NameHash("Ice_DMG"))
	assert.Equal(t, uint32(0), NameHash(""))
}

func TestBuildHashIndex_Lookup(t *testing.T) {
	idx := BuildHashIndex([]Config{
		{
			Name:      "Fire_DMG",
			Specials:  map[string]float64{"damage": 1, "duration": 2},
			Modifiers: []string{"Fire_Burn"},
		},
		{
			Name:     "Ice_DMG",
			Specials: map[string]float64{"slow": 0.2},
		},
	})

	for _, name := range []string{"Fire_DMG", "Ice_DMG", "damage", "duration", "Fire_Burn", "slow"} {
		got, ok := idx.Lookup(NameHash(name))
		require.True(t, ok, "missing %q", name)
		assert.Equal(t, name, got)
	}
	assert.Equal(t, 6, idx.Len())

	_, ok := idx.Lookup(NameHash("Water_DMG"))
	assert.False(t, ok)
}

func TestBuildHashIndex_CollisionKeepsLast(t *testing.T) {
	// "Ooqkl" and "A#0zz" collide: their char diffs sum to exactly 2^32
	// under the 131 rolling hash
	const first, second = "Ooqkl", "A#0zz"
	require.Equal(t, NameHash(first), NameHash(second))

	idx := BuildHashIndex([]Config{
		{Name: first},
		{Name: second},
	})

	got, ok := idx.Lookup(NameHash(first))
	require.True(t, ok)
	assert.Equal(t, second, got)
	assert.Equal(t, 1, idx.Len())
}

func TestBuildHashIndex_DuplicateNameIsNotACollision(t *testing.T) {
	// the same special name on two abilities maps to one entry, silently
	idx := BuildHashIndex([]Config{
		{Name: "Fire_DMG", Specials: map[string]float64{"damage": 1}},
		{Name: "Ice_DMG", Specials: map[string]float64{"damage": 2}},
	})

	got, ok := idx.Lookup(NameHash("damage"))
	require.True(t, ok)
	assert.Equal(t, "damage", got)
	assert.Equal(t, 3, idx.Len())
}

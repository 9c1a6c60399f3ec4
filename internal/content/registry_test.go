package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryUniqueSegmentsAndCollections(t *testing.T) {
	segments := map[string]bool{}
	collections := map[string]bool{}
	for _, e := range All() {
		assert.False(t, segments[e.Segment], "duplicate segment %s", e.Segment)
		assert.False(t, collections[e.Collection], "duplicate collection %s", e.Collection)
		segments[e.Segment] = true
		collections[e.Collection] = true
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("partners")
	require.True(t, ok)
	assert.Equal(t, "partners", e.Collection)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestEventFamiliesAreSingletonActive(t *testing.T) {
	for _, seg := range []string{"mci-event", "conclave-event", "awards-event"} {
		e, ok := Lookup(seg)
		require.True(t, ok, seg)
		assert.True(t, e.SingletonActive, seg)
		assert.False(t, e.Singleton, seg)
	}
}

func TestSettingsAreSingletons(t *testing.T) {
	for _, seg := range []string{"site-settings", "footer-settings", "about-settings"} {
		e, ok := Lookup(seg)
		require.True(t, ok, seg)
		assert.True(t, e.Singleton, seg)
	}
}

func TestEveryEntryRevalidatesSomething(t *testing.T) {
	for _, e := range All() {
		assert.NotEmpty(t, e.Revalidate, e.Segment)
	}
}

func TestSchemaExcludesReservedKeys(t *testing.T) {
	for _, e := range All() {
		for _, key := range e.Schema().FieldKeys() {
			assert.NotContains(t, reservedKeys, key, e.Segment)
		}
	}
}

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_RoundTrip(t *testing.T) {
	cache := NewCache(0)
	analysis := map[string]CharacterInfo{
		"mary": {Name: "Mary", Gender: GenderFemale},
	}

	assert.Nil(t, cache.Get("some story text"))

	cache.Put("some story text", analysis)
	got := cache.Get("some story text")
	require.NotNil(t, got)
	assert.Equal(t, GenderFemale, got["mary"].Gender)

	cache.Clear()
	assert.Nil(t, cache.Get("some story text"))
}

func TestCache_FingerprintUsesLeadingBytes(t *testing.T) {
	cache := NewCache(10)

	// Documents sharing their first 10 bytes share one entry.
	a := "0123456789 the rest differs here"
	b := "0123456789 completely other tail"
	assert.Equal(t, cache.Fingerprint(a), cache.Fingerprint(b))

	cache.Put(a, map[string]CharacterInfo{"x": {Name: "X"}})
	assert.NotNil(t, cache.Get(b))

	c := "different lead entirely"
	assert.NotEqual(t, cache.Fingerprint(a), cache.Fingerprint(c))
	assert.Nil(t, cache.Get(c))
}

func TestNewCache_DefaultLength(t *testing.T) {
	cache := NewCache(-5)
	assert.Equal(t, DefaultFingerprintLength, cache.fingerprintLen)
}

package corpus

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// requireWellFormedEscapes fails unless every '%' in p is followed by two
// uppercase hex digits and every other byte is in the fragment alphabet.
func requireWellFormedEscapes(t require.TestingT, p []byte) {
	for i := 0; i < len(p); i++ {
		if p[i] != '%' {
			if !strings.ContainsRune(fragmentAlphabet, rune(p[i])) {
				require.Failf(t, "unexpected byte", "%q at offset %d", p[i], i)
			}
			continue
		}
		require.Less(t, i+2, len(p), "truncated escape at offset %d", i)
		require.Contains(t, hexDigits, string(p[i+1]), "offset %d", i+1)
		require.Contains(t, hexDigits, string(p[i+2]), "offset %d", i+2)
		i += 2
	}
}

// positions counts fragment positions: an escape or a single byte.
func positions(p []byte) int {
	return len(p) - 2*bytes.Count(p, []byte("%"))
}

func fragmentConfigGen(t *rapid.T) FragmentConfig {
	minLen := rapid.IntRange(1, 32).Draw(t, "minLen").(int)
	maxLen := rapid.IntRange(minLen, minLen+32).Draw(t, "maxLen").(int)
	prob := rapid.Float64Range(0, 1).Draw(t, "escapeProbability").(float64)
	return FragmentConfig{MinLen: minLen, MaxLen: maxLen, EscapeProbability: prob}
}

func TestFragmentProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := fragmentConfigGen(t)
		r := rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed").(int64)))

		frag := Fragment(r, cfg)
		requireWellFormedEscapes(t, frag)

		n := positions(frag)
		require.GreaterOrEqual(t, n, cfg.MinLen)
		require.LessOrEqual(t, n, cfg.MaxLen)
	})
}

func TestFragmentDefaultBounds(t *testing.T) {
	cfg := DefaultFragmentConfig()
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		frag := Fragment(r, cfg)
		requireWellFormedEscapes(t, frag)
		n := positions(frag)
		require.True(t, n >= 5 && n <= 20, "fragment has %d positions", n)
	}
}

func TestFragmentEscapeProbabilityExtremes(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	never := Fragment(r, FragmentConfig{MinLen: 50, MaxLen: 50, EscapeProbability: 0})
	assert.Len(t, never, 50)
	assert.NotContains(t, string(never), "%")

	always := Fragment(r, FragmentConfig{MinLen: 50, MaxLen: 50, EscapeProbability: 1})
	assert.Len(t, always, 150)
	assert.Equal(t, 50, bytes.Count(always, []byte("%")))
}

func TestFragmentReproducibleWithSameSeed(t *testing.T) {
	cfg := DefaultFragmentConfig()
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		require.Equal(t, Fragment(a, cfg), Fragment(b, cfg))
	}
}

func TestStressPayloadProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := fragmentConfigGen(t)
		threshold := rapid.IntRange(1, 1<<16).Draw(t, "threshold").(int)
		r := rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed").(int64)))

		payload, last := StressPayload(r, threshold, cfg)
		require.GreaterOrEqual(t, len(payload), threshold)
		require.Less(t, len(payload)-last, threshold)
		require.LessOrEqual(t, last, len(stressChunkPrefix)+3*cfg.MaxLen)
	})
}

func TestStressPayloadDefault(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	payload, last := StressPayload(r, 135000, DefaultFragmentConfig())

	require.Greater(t, len(payload), 2*64*1024)
	require.Greater(t, len(payload), 135000-last)
	require.Less(t, len(payload)-last, 135000)
	require.True(t, bytes.HasPrefix(payload, []byte(stressChunkPrefix)))

	// Strip the fixed chunk prefix; what is left must be fragments only.
	body := bytes.ReplaceAll(payload, []byte(stressChunkPrefix), nil)
	requireWellFormedEscapes(t, body)
	assert.Greater(t, bytes.Count(payload, []byte("http://")), 100)
}

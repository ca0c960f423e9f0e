package corpus

import (
	"github.com/lxl66566/urldecoder/config"
)

const (
	// fragmentAlphabet is letters, digits and the unreserved punctuation of
	// RFC 3986. It has no '%', so the only escapes in a fragment are the
	// well-formed ones Fragment emits itself.
	fragmentAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_.~"
	hexDigits        = "0123456789ABCDEF"

	stressChunkPrefix = " text http://stress.test/"
)

// Rand is the source of randomness for the randomized scenarios.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// FragmentConfig bounds the output of Fragment.
type FragmentConfig struct {
	MinLen            int
	MaxLen            int
	EscapeProbability float64
}

// DefaultFragmentConfig returns the fragment bounds of the default corpus.
func DefaultFragmentConfig() FragmentConfig {
	return FragmentConfig{
		MinLen:            config.DefaultFragmentMinLen,
		MaxLen:            config.DefaultFragmentMaxLen,
		EscapeProbability: config.DefaultEscapeProbability,
	}
}

// Fragment returns a random URL path segment of between MinLen and MaxLen
// positions. Each position is either a percent-escape of a random byte,
// always '%' plus two uppercase hex digits, or one byte of the unreserved
// alphabet.
func Fragment(r Rand, cfg FragmentConfig) []byte {
	n := cfg.MinLen
	if cfg.MaxLen > cfg.MinLen {
		n += r.Intn(cfg.MaxLen - cfg.MinLen + 1)
	}

	out := make([]byte, 0, 3*n)
	for i := 0; i < n; i++ {
		if r.Float64() < cfg.EscapeProbability {
			v := r.Intn(256)
			out = append(out, '%', hexDigits[v>>4], hexDigits[v&0x0f])
			continue
		}
		out = append(out, fragmentAlphabet[r.Intn(len(fragmentAlphabet))])
	}
	return out
}

// StressPayload appends " text http://stress.test/<fragment>" chunks until
// the payload is at least threshold bytes long. It also returns the length
// of the final chunk.
func StressPayload(r Rand, threshold int, cfg FragmentConfig) (payload []byte, lastChunk int) {
	payload = make([]byte, 0, threshold+len(stressChunkPrefix)+3*cfg.MaxLen)
	for len(payload) < threshold {
		before := len(payload)
		payload = append(payload, stressChunkPrefix...)
		payload = append(payload, Fragment(r, cfg)...)
		lastChunk = len(payload) - before
	}
	return payload, lastChunk
}

package corpus

import (
	"errors"
	"fmt"
)

// Seed names. They are stable across runs and double as file names.
const (
	NameBasic                = "seed_basic_01"
	NameCrossURL             = "seed_boundary_cross_url"
	NameSplitPercent         = "seed_boundary_split_percent_1"
	NameSplitPercentDigit    = "seed_boundary_split_percent_2"
	NameSplitPrefix          = "seed_boundary_split_prefix"
	NameSplitHTTPSPrefix     = "seed_boundary_split_https_prefix"
	NameTruncatedScheme      = "seed_boundary_truncated_scheme"
	NameFullBufferURL        = "seed_boundary_full_buffer_url"
	NameURLEndsAtEdge        = "seed_boundary_url_ends_at_edge"
	NameSplitMultiByteEscape = "seed_boundary_split_utf8_escape"
	NameLargeStress          = "seed_large_stress"
	NameMalformed            = "seed_malformed"
)

// ErrUnknownScenario is returned by Lookup for a name no scenario has.
var ErrUnknownScenario = errors.New("unknown scenario")

// Params are the inputs shared by all scenario builders.
type Params struct {
	BufferSize      int
	StressThreshold int
	Fragment        FragmentConfig
	Rand            Rand
}

// Scenario builds the payload of one seed file.
type Scenario struct {
	Name        string
	Description string
	// Randomized scenarios draw from Params.Rand; all others are a pure
	// function of the buffer size.
	Randomized bool
	Build      func(p Params) []byte
}

func bySize(f func(bufSize int) []byte) func(Params) []byte {
	return func(p Params) []byte { return f(p.BufferSize) }
}

var scenarios = []Scenario{
	{
		Name:        NameBasic,
		Description: "two well-formed URLs with escapes, no boundary",
		Build:       func(Params) []byte { return BasicSample() },
	},
	{
		Name:        NameCrossURL,
		Description: "https URL starting 10 bytes before the boundary",
		Build:       bySize(CrossBoundaryURL),
	},
	{
		Name:        NameSplitPercent,
		Description: "'%' is the last byte of the buffer, \"20\" follows",
		Build:       bySize(SplitEscapeAtPercent),
	},
	{
		Name:        NameSplitPercentDigit,
		Description: "\"%2\" ends the buffer, \"0\" follows",
		Build:       bySize(SplitEscapeAtFirstDigit),
	},
	{
		Name:        NameSplitPrefix,
		Description: "\"http:\" ends the buffer, \"//\" follows",
		Build:       bySize(SplitSchemePrefix),
	},
	{
		Name:        NameSplitHTTPSPrefix,
		Description: "\"https:\" ends the buffer, \"//\" follows",
		Build:       bySize(SplitHTTPSPrefix),
	},
	{
		Name:        NameTruncatedScheme,
		Description: "\"htt\" ends the buffer, \"p://\" follows",
		Build:       bySize(TruncatedScheme),
	},
	{
		Name:        NameFullBufferURL,
		Description: "one URL fills the whole buffer and ends it with '%'",
		Build:       bySize(FullBufferURL),
	},
	{
		Name:        NameURLEndsAtEdge,
		Description: "URL ends on the last byte of the buffer",
		Build:       bySize(URLEndsAtBoundary),
	},
	{
		Name:        NameSplitMultiByteEscape,
		Description: "UTF-8 escape run split inside one code point",
		Build:       bySize(SplitMultiByteEscape),
	},
	{
		Name:        NameLargeStress,
		Description: "many random URLs across several boundaries",
		Randomized:  true,
		Build: func(p Params) []byte {
			payload, _ := StressPayload(p.Rand, p.StressThreshold, p.Fragment)
			return payload
		},
	},
	{
		Name:        NameMalformed,
		Description: "bare '%' runs, %GG and %00",
		Build:       func(Params) []byte { return Malformed() },
	},
}

// Scenarios returns every scenario in generation order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// Lookup returns the scenarios with the given names, in the order given.
// With no names it returns all of them.
func Lookup(names ...string) ([]Scenario, error) {
	if len(names) == 0 {
		return Scenarios(), nil
	}

	index := make(map[string]Scenario, len(scenarios))
	for _, sc := range scenarios {
		index[sc.Name] = sc
	}

	out := make([]Scenario, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		sc, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, sc)
	}
	return out, nil
}

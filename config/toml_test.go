package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ensureFiles(t *testing.T, rootDir string, files ...string) {
	for _, f := range files {
		p := rootify(f, rootDir)
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
}

func TestEnsureRoot(t *testing.T) {
	require := require.New(t)

	tmpDir := filepath.Join(t.TempDir(), "home")
	require.NoError(EnsureRoot(tmpDir))
	// idempotent
	require.NoError(EnsureRoot(tmpDir))

	ensureFiles(t, tmpDir, "config")
}

func TestWriteConfigFileIsValidTOML(t *testing.T) {
	require := require.New(t)

	rootDir := t.TempDir()
	require.NoError(EnsureRoot(rootDir))

	cfg := DefaultConfig()
	cfg.Corpus.Scenarios = []string{"seed_basic_01", "seed_malformed"}
	require.NoError(WriteConfigFile(rootDir, cfg))

	var decoded struct {
		LogLevel  string `toml:"log-level"`
		LogFormat string `toml:"log-format"`
		Corpus    struct {
			Dir               string   `toml:"dir"`
			BufferSize        int      `toml:"buffer-size"`
			Seed              int64    `toml:"seed"`
			StressThreshold   int      `toml:"stress-threshold"`
			FragmentMinLen    int      `toml:"fragment-min-len"`
			FragmentMaxLen    int      `toml:"fragment-max-len"`
			EscapeProbability float64  `toml:"escape-probability"`
			Scenarios         []string `toml:"scenarios"`
		} `toml:"corpus"`
	}
	_, err := toml.DecodeFile(filepath.Join(rootDir, defaultConfigFilePath), &decoded)
	require.NoError(err)

	assert.Equal(t, DefaultLogLevel, decoded.LogLevel)
	assert.Equal(t, LogFormatPlain, decoded.LogFormat)
	assert.Equal(t, DefaultCorpusDir, decoded.Corpus.Dir)
	assert.Equal(t, DefaultBufferSize, decoded.Corpus.BufferSize)
	assert.EqualValues(t, 0, decoded.Corpus.Seed)
	assert.Equal(t, DefaultStressThreshold, decoded.Corpus.StressThreshold)
	assert.Equal(t, DefaultFragmentMinLen, decoded.Corpus.FragmentMinLen)
	assert.Equal(t, DefaultFragmentMaxLen, decoded.Corpus.FragmentMaxLen)
	assert.InDelta(t, DefaultEscapeProbability, decoded.Corpus.EscapeProbability, 1e-9)
	assert.Equal(t, []string{"seed_basic_01", "seed_malformed"}, decoded.Corpus.Scenarios)
}

func TestWriteConfigFileRoundTripsThroughViper(t *testing.T) {
	require := require.New(t)

	rootDir := t.TempDir()
	require.NoError(EnsureRoot(rootDir))

	want := TestConfig()
	want.Corpus.BufferSize = 4096
	want.Corpus.StressThreshold = 10000
	require.NoError(WriteConfigFile(rootDir, want))

	v := viper.New()
	v.SetConfigFile(filepath.Join(rootDir, defaultConfigFilePath))
	require.NoError(v.ReadInConfig())

	got := DefaultConfig()
	require.NoError(v.Unmarshal(got))
	got.SetRoot(rootDir)

	assert.Equal(t, 4096, got.Corpus.BufferSize)
	assert.Equal(t, 10000, got.Corpus.StressThreshold)
	assert.EqualValues(t, 10, got.Corpus.Seed)
	assert.NoError(t, got.ValidateBasic())
}

func TestWriteConfigFileEscapesStrings(t *testing.T) {
	testCases := map[string]struct {
		dir       string
		scenarios []string
	}{
		"apostrophe":   {dir: "bob's corpus"},
		"quote":        {dir: `say "hi"`, scenarios: []string{`weird"name`}},
		"backslash":    {dir: `C:\corpus\fuzz`, scenarios: []string{`a\b`}},
		"control char": {dir: "tab\there", scenarios: []string{"new\nline"}},
		"unicode":      {dir: "корпус/天気", scenarios: []string{"seed_basic_01", "seed_malformed"}},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			rootDir := t.TempDir()
			require.NoError(t, EnsureRoot(rootDir))

			cfg := DefaultConfig()
			cfg.Corpus.Dir = tc.dir
			cfg.Corpus.Scenarios = tc.scenarios
			require.NoError(t, WriteConfigFile(rootDir, cfg))

			var decoded struct {
				Corpus struct {
					Dir       string   `toml:"dir"`
					Scenarios []string `toml:"scenarios"`
				} `toml:"corpus"`
			}
			_, err := toml.DecodeFile(filepath.Join(rootDir, defaultConfigFilePath), &decoded)
			require.NoError(t, err)
			assert.Equal(t, tc.dir, decoded.Corpus.Dir)
			assert.ElementsMatch(t, tc.scenarios, decoded.Corpus.Scenarios)
		})
	}
}

func TestTOMLValue(t *testing.T) {
	testCases := []struct {
		in   interface{}
		want string
	}{
		{"plain", `"plain"`},
		{"bob's", `"bob's"`},
		{65536, "65536"},
		{int64(-3), "-3"},
		{0.3, "0.3"},
		{[]string(nil), "[]"},
		{[]string{"a", "b"}, `["a", "b"]`},
	}

	for _, tc := range testCases {
		got, err := tomlValue(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%#v", tc.in)
	}
}

package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

const (
	// LogFormatPlain is a format for human-readable text
	LogFormatPlain = "plain"
	// LogFormatJSON is a format for json output
	LogFormatJSON = "json"

	// DefaultLogLevel defines a default log level as INFO.
	DefaultLogLevel = "info"

	// DefaultBufferSize is the read size of the scanner the corpus targets.
	DefaultBufferSize = 64 * 1024
	// MinBufferSize is the smallest buffer every boundary scenario fits in.
	MinBufferSize = 64

	// DefaultStressThreshold is the length the stress payload must reach.
	// Against DefaultBufferSize this is two full boundary crossings.
	DefaultStressThreshold = 135000

	DefaultFragmentMinLen    = 5
	DefaultFragmentMaxLen    = 20
	DefaultEscapeProbability = 0.3
)

// NOTE: libs/cli must know to look in the config dir!
var (
	defaultConfigDir      = "config"
	defaultConfigFileName = "config.toml"
	defaultConfigFilePath = filepath.Join(defaultConfigDir, defaultConfigFileName)

	// DefaultCorpusDir is where seeds are written, relative to the home
	// directory.
	DefaultCorpusDir = filepath.Join("corpus", "fuzz_target_1")
)

// Config defines the top level configuration for the corpus generator.
type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`

	Corpus *CorpusConfig `mapstructure:"corpus"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: DefaultBaseConfig(),
		Corpus:     DefaultCorpusConfig(),
	}
}

// TestConfig returns a configuration that can be used for testing. It keeps
// the default buffer size and pins the random seed.
func TestConfig() *Config {
	return &Config{
		BaseConfig: DefaultBaseConfig(),
		Corpus:     TestCorpusConfig(),
	}
}

// SetRoot sets the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	cfg.Corpus.RootDir = root
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *Config) ValidateBasic() error {
	if err := cfg.BaseConfig.ValidateBasic(); err != nil {
		return err
	}
	if err := cfg.Corpus.ValidateBasic(); err != nil {
		return fmt.Errorf("error in [corpus] section: %w", err)
	}
	return nil
}

//-----------------------------------------------------------------------------
// BaseConfig

// BaseConfig defines the base configuration options.
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	// Output level for logging
	LogLevel string `mapstructure:"log-level"`

	// Output format: 'plain' (text) or 'json'
	LogFormat string `mapstructure:"log-format"`
}

// DefaultBaseConfig returns a default base configuration.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		RootDir:   ".",
		LogLevel:  DefaultLogLevel,
		LogFormat: LogFormatPlain,
	}
}

// ConfigFile returns the full path to the config.toml file.
func (cfg BaseConfig) ConfigFile() string {
	return rootify(defaultConfigFilePath, cfg.RootDir)
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg BaseConfig) ValidateBasic() error {
	switch cfg.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return errors.New("unknown log format (must be 'plain' or 'json')")
	}
	return nil
}

//-----------------------------------------------------------------------------
// CorpusConfig

// CorpusConfig defines the layout of the generated corpus and the parameters
// of its randomized scenarios.
type CorpusConfig struct {
	RootDir string `mapstructure:"home"`

	// Directory seeds are written to. Relative paths are resolved against
	// the home directory.
	Dir string `mapstructure:"dir"`

	// Read size of the scanner under test. Every boundary scenario is placed
	// relative to this offset.
	BufferSize int `mapstructure:"buffer-size"`

	// Seed for the randomized scenarios. 0 draws one from OS randomness.
	Seed int64 `mapstructure:"seed"`

	// Minimum length of the stress payload.
	StressThreshold int `mapstructure:"stress-threshold"`

	// Inclusive length bounds of a random URL fragment.
	FragmentMinLen int `mapstructure:"fragment-min-len"`
	FragmentMaxLen int `mapstructure:"fragment-max-len"`

	// Chance that a fragment position is a percent-escape.
	EscapeProbability float64 `mapstructure:"escape-probability"`

	// Scenarios to generate. Empty means all of them.
	Scenarios []string `mapstructure:"scenarios"`
}

// DefaultCorpusConfig returns a default configuration for the corpus.
func DefaultCorpusConfig() *CorpusConfig {
	return &CorpusConfig{
		Dir:               DefaultCorpusDir,
		BufferSize:        DefaultBufferSize,
		Seed:              0,
		StressThreshold:   DefaultStressThreshold,
		FragmentMinLen:    DefaultFragmentMinLen,
		FragmentMaxLen:    DefaultFragmentMaxLen,
		EscapeProbability: DefaultEscapeProbability,
	}
}

// TestCorpusConfig returns a corpus configuration with a fixed seed.
func TestCorpusConfig() *CorpusConfig {
	cfg := DefaultCorpusConfig()
	cfg.Seed = 10
	return cfg
}

// CorpusDir returns the full path to the corpus directory.
func (cfg *CorpusConfig) CorpusDir() string {
	return rootify(cfg.Dir, cfg.RootDir)
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *CorpusConfig) ValidateBasic() error {
	if cfg.Dir == "" {
		return errors.New("dir can't be empty")
	}
	if cfg.BufferSize < MinBufferSize {
		return fmt.Errorf("buffer-size must be at least %d, got %d", MinBufferSize, cfg.BufferSize)
	}
	if cfg.StressThreshold <= 2*cfg.BufferSize {
		return fmt.Errorf("stress-threshold (%d) must exceed twice the buffer-size (%d)",
			cfg.StressThreshold, cfg.BufferSize)
	}
	if cfg.FragmentMinLen < 1 {
		return errors.New("fragment-min-len must be positive")
	}
	if cfg.FragmentMaxLen < cfg.FragmentMinLen {
		return fmt.Errorf("fragment-max-len (%d) can't be less than fragment-min-len (%d)",
			cfg.FragmentMaxLen, cfg.FragmentMinLen)
	}
	if cfg.EscapeProbability < 0 || cfg.EscapeProbability > 1 {
		return errors.New("escape-probability must be within [0, 1]")
	}
	return nil
}

//-----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

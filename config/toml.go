package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/creachadair/atomicfile"

	tmos "github.com/lxl66566/urldecoder/libs/os"
)

// defaultDirPerm is the default permissions used when creating directories.
const defaultDirPerm = 0700

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("configFileTemplate").Funcs(template.FuncMap{
		"toml": tomlValue,
	})
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// EnsureRoot creates the root and config directories if they don't exist.
func EnsureRoot(rootDir string) error {
	if err := tmos.EnsureDir(rootDir, defaultDirPerm); err != nil {
		return err
	}
	return tmos.EnsureDir(filepath.Join(rootDir, defaultConfigDir), defaultDirPerm)
}

// WriteConfigFile renders config using the template and writes it to
// <rootDir>/config/config.toml.
func WriteConfigFile(rootDir string, config *Config) error {
	return config.WriteToTemplate(filepath.Join(rootDir, defaultConfigFilePath))
}

// WriteToTemplate writes the config to the exact file specified by
// the path, in the default toml template and does not mangle the path
// or filename at all.
func (cfg *Config) WriteToTemplate(path string) error {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, cfg); err != nil {
		return err
	}

	_, err := atomicfile.WriteAll(path, &buffer, 0644)
	return err
}

// tomlValue renders v as a TOML value, quoting and escaping strings.
func tomlValue(v interface{}) (string, error) {
	if ss, ok := v.([]string); ok && ss == nil {
		v = []string{}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]interface{}{"v": v}); err != nil {
		return "", err
	}
	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "v = ") {
		return "", fmt.Errorf("cannot render %T as a TOML value", v)
	}
	return strings.TrimPrefix(out, "v = "), nil
}

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go
const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

# NOTE: Any path below can be absolute (e.g. "/var/corpus") or relative to
# the home directory (e.g. "corpus"). The home directory is the current
# directory by default, but could be changed via $SEEDCORPUS_HOME env variable
# or --home cmd flag.

#######################################################################
###                   Main Base Config Options                      ###
#######################################################################

# Output level for logging: debug | info | error
log-level = {{ toml .BaseConfig.LogLevel }}

# Output format: 'plain' (text) or 'json'
log-format = {{ toml .BaseConfig.LogFormat }}

#######################################################################
###                      Corpus Config Options                      ###
#######################################################################
[corpus]

# Directory the seed files are written to
dir = {{ toml .Corpus.Dir }}

# Read size, in bytes, of the scanner under test. Boundary seeds place their
# split escapes and split scheme prefixes relative to this offset.
buffer-size = {{ .Corpus.BufferSize }}

# Seed for the randomized scenarios. 0 picks a fresh one on every run;
# the chosen value is logged so a run can be replayed.
seed = {{ .Corpus.Seed }}

# Minimum length of the stress payload. Must exceed twice buffer-size.
stress-threshold = {{ .Corpus.StressThreshold }}

# Inclusive length bounds of each random URL fragment
fragment-min-len = {{ .Corpus.FragmentMinLen }}
fragment-max-len = {{ .Corpus.FragmentMaxLen }}

# Probability that a fragment position becomes a percent-escape
escape-probability = {{ toml .Corpus.EscapeProbability }}

# Scenarios to generate. An empty list generates all of them.
scenarios = {{ toml .Corpus.Scenarios }}
`

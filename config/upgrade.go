package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/creachadair/atomicfile"
	"github.com/creachadair/tomledit"
	"github.com/creachadair/tomledit/parser"
	"github.com/creachadair/tomledit/transform"
)

const corpusTable = "corpus"

// setting is one key of the config file grammar. Keep in sync with
// defaultConfigTemplate.
type setting struct {
	table   parser.Key // nil for top-level keys
	name    string
	comment string
	value   func(*Config) interface{}
}

func (s setting) path() []string {
	return append(append([]string{}, s.table...), s.name)
}

func (s setting) key() string { return strings.Join(s.path(), ".") }

var settings = []setting{
	{nil, "log-level", "Output level for logging: debug | info | error",
		func(c *Config) interface{} { return c.LogLevel }},
	{nil, "log-format", "Output format: 'plain' (text) or 'json'",
		func(c *Config) interface{} { return c.LogFormat }},
	{parser.Key{corpusTable}, "dir", "Directory the seed files are written to",
		func(c *Config) interface{} { return c.Corpus.Dir }},
	{parser.Key{corpusTable}, "buffer-size", "Read size, in bytes, of the scanner under test",
		func(c *Config) interface{} { return c.Corpus.BufferSize }},
	{parser.Key{corpusTable}, "seed", "Seed for the randomized scenarios. 0 picks a fresh one on every run",
		func(c *Config) interface{} { return c.Corpus.Seed }},
	{parser.Key{corpusTable}, "stress-threshold", "Minimum length of the stress payload. Must exceed twice buffer-size",
		func(c *Config) interface{} { return c.Corpus.StressThreshold }},
	{parser.Key{corpusTable}, "fragment-min-len", "Shortest random URL fragment",
		func(c *Config) interface{} { return c.Corpus.FragmentMinLen }},
	{parser.Key{corpusTable}, "fragment-max-len", "Longest random URL fragment",
		func(c *Config) interface{} { return c.Corpus.FragmentMaxLen }},
	{parser.Key{corpusTable}, "escape-probability", "Probability that a fragment position becomes a percent-escape",
		func(c *Config) interface{} { return c.Corpus.EscapeProbability }},
	{parser.Key{corpusTable}, "scenarios", "Scenarios to generate. An empty list generates all of them",
		func(c *Config) interface{} { return c.Corpus.Scenarios }},
}

// UpgradeConfigFile adds every setting the config file at path does not
// define yet, with its value taken from cfg. Settings already in the file
// keep their values, layout and comments. It returns the dotted names of the
// added keys; the file is rewritten only when at least one was added.
func UpgradeConfigFile(ctx context.Context, path string, cfg *Config) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	before, err := definedKeys(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var plan transform.Plan
	for _, s := range settings {
		if before[s.key()] {
			continue
		}
		v, err := tomlValue(s.value(cfg))
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", s.key(), err)
		}
		plan = append(plan, transform.Step{
			Desc: fmt.Sprintf("Add %s", s.key()),
			T: transform.EnsureKey(s.table, &parser.KeyValue{
				Block: parser.Comments{s.comment},
				Name:  parser.Key{s.name},
				Value: parser.MustValue(v),
			}),
			ErrorOK: true,
		})
	}
	if len(plan) == 0 {
		return nil, nil
	}

	if !before[corpusTable] {
		data = append(data, "\n["+corpusTable+"]\n"...)
	}
	doc, err := tomledit.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := plan.Apply(ctx, doc); err != nil {
		return nil, fmt.Errorf("updating %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tomledit.Format(&buf, doc); err != nil {
		return nil, fmt.Errorf("formatting %s: %w", path, err)
	}
	after, err := definedKeys(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("updated %s is invalid: %w", path, err)
	}

	var added []string
	for _, s := range settings {
		if !before[s.key()] && after[s.key()] {
			added = append(added, s.key())
		}
	}
	if len(added) == 0 {
		return nil, nil
	}
	if _, err := atomicfile.WriteAll(path, &buf, 0644); err != nil {
		return nil, err
	}
	return added, nil
}

// definedKeys reports which settings, and whether the corpus table, are
// present in data.
func definedKeys(data []byte) (map[string]bool, error) {
	var raw map[string]interface{}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	keys := map[string]bool{corpusTable: md.IsDefined(corpusTable)}
	for _, s := range settings {
		keys[s.key()] = md.IsDefined(s.path()...)
	}
	return keys, nil
}

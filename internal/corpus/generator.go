package corpus

import (
	"fmt"

	"github.com/lxl66566/urldecoder/config"
	"github.com/lxl66566/urldecoder/libs/log"
	tmos "github.com/lxl66566/urldecoder/libs/os"
	tmrand "github.com/lxl66566/urldecoder/libs/rand"
)

// Result describes one written seed file.
type Result struct {
	Name string
	Path string
	Size int
}

// Generator runs scenarios and persists their payloads.
type Generator struct {
	cfg    *config.CorpusConfig
	logger log.Logger
	store  *Store
	rng    Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the seeded source built from the config.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithStore replaces the store rooted at the configured corpus directory.
func WithStore(s *Store) Option {
	return func(g *Generator) { g.store = s }
}

// NewGenerator validates cfg and returns a Generator reporting progress to
// logger. Unless WithRand is given, randomness comes from cfg.Seed, or from
// a fresh seed which is logged when cfg.Seed is zero.
func NewGenerator(cfg *config.CorpusConfig, logger log.Logger, opts ...Option) (*Generator, error) {
	if err := cfg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("invalid corpus config: %w", err)
	}

	g := &Generator{
		cfg:    cfg,
		logger: logger,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.store == nil {
		g.store = NewStore(cfg.CorpusDir())
	}
	if g.rng == nil {
		rng, seed, err := tmrand.NewRand(cfg.Seed)
		if err != nil {
			return nil, err
		}
		g.rng = rng
		logger.Info("seeded random source", "seed", seed)
	}
	return g, nil
}

// Params returns the scenario inputs derived from the config.
func (g *Generator) Params() Params {
	return Params{
		BufferSize:      g.cfg.BufferSize,
		StressThreshold: g.cfg.StressThreshold,
		Fragment: FragmentConfig{
			MinLen:            g.cfg.FragmentMinLen,
			MaxLen:            g.cfg.FragmentMaxLen,
			EscapeProbability: g.cfg.EscapeProbability,
		},
		Rand: g.rng,
	}
}

// Run generates the named scenarios, or the configured ones when names is
// empty, or all of them when neither is set. Scenarios run in order and the
// first failure stops the run; seeds already written stay on disk.
func (g *Generator) Run(names ...string) ([]Result, error) {
	if len(names) == 0 {
		names = g.cfg.Scenarios
	}
	selected, err := Lookup(names...)
	if err != nil {
		return nil, err
	}

	dir := g.store.Dir()
	g.logger.Info("generating seed corpus", "dir", dir, "buffer_size", g.cfg.BufferSize)

	existed := tmos.FileExists(dir)
	if err := g.store.Ensure(); err != nil {
		return nil, err
	}
	if !existed {
		g.logger.Info("created directory", "dir", dir)
	}

	params := g.Params()
	results := make([]Result, 0, len(selected))
	for _, sc := range selected {
		seed := Seed{Name: sc.Name, Payload: sc.Build(params)}
		if err := g.store.Write(seed); err != nil {
			return results, err
		}
		g.logger.Info("generated", "name", seed.Name, "bytes", len(seed.Payload))
		results = append(results, Result{
			Name: seed.Name,
			Path: g.store.Path(seed.Name),
			Size: len(seed.Payload),
		})
	}

	g.logger.Info("done", "seeds", len(results), "dir", dir)
	return results, nil
}

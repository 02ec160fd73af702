package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gedembed/assignment"
	"github.com/katalvlaran/gedembed/editcost"
	"github.com/katalvlaran/gedembed/embedding"
	"github.com/katalvlaran/gedembed/ged"
)

// Environment variables consulted by Load.
const (
	EnvConfigPath = "GEDMATRIX_CONFIG"
	EnvWorkers    = "GEDMATRIX_WORKERS"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Run        RunConfig        `yaml:"run"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Assignment AssignmentConfig `yaml:"assignment"`
	Cost       CostConfig       `yaml:"cost"`
}

type RunConfig struct {
	Workers       int    `yaml:"workers"`
	FailurePolicy string `yaml:"failure_policy"`
	TieRule       string `yaml:"tie_rule"`
	CacheSize     int    `yaml:"cache_size"`
}

type EmbeddingConfig struct {
	Metric   string `yaml:"metric"`
	Strategy string `yaml:"strategy"`
}

type AssignmentConfig struct {
	Algorithm string `yaml:"algorithm"`
}

type CostConfig struct {
	NodePolicy              string  `yaml:"node_policy"`
	Substitution            float64 `yaml:"substitution"`
	Insertion               float64 `yaml:"insertion"`
	EdgeInsertion           float64 `yaml:"edge_insertion"`
	EdgeDeletion            float64 `yaml:"edge_deletion"`
	ChargeInsertedNodeEdges bool    `yaml:"charge_inserted_node_edges"`
}

// DefaultConfig mirrors the library defaults of ged, embedding, assignment
// and editcost.
func DefaultConfig() *Config {
	return &Config{
		Run: RunConfig{
			Workers:       runtime.GOMAXPROCS(0),
			FailurePolicy: ged.FailFast.String(),
			TieRule:       ged.TieFingerprint.String(),
		},
		Embedding: EmbeddingConfig{
			Metric:   embedding.Euclidean.String(),
			Strategy: embedding.Pairwise.String(),
		},
		Assignment: AssignmentConfig{
			Algorithm: assignment.Hungarian.String(),
		},
		Cost: CostConfig{
			NodePolicy:    editcost.UnitCost.String(),
			Substitution:  editcost.DefaultSubstitutionCost,
			Insertion:     editcost.DefaultInsertionCost,
			EdgeInsertion: editcost.DefaultEdgeInsertionCost,
			EdgeDeletion:  editcost.DefaultEdgeDeletionCost,
		},
	}
}

// Load reads path (or $GEDMATRIX_CONFIG when path is empty) over
// DefaultConfig, applies the environment and validates the result.
// No path at all yields the validated defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := loadYAMLFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := applyEnvironment(cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode reads YAML from r over DefaultConfig without touching the
// environment.
func Decode(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := decode(r, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return decode(bytes.NewReader(data), cfg)
}

// decode rejects unknown keys so a misspelt option does not silently
// fall back to its default. An empty document is not an error.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

func applyEnvironment(cfg *Config) error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvWorkers, v, err)
		}
		cfg.Run.Workers = n
	}

	return nil
}

// applyDefaults fills values whose zero means "unset".
func (c *Config) applyDefaults() {
	if c.Run.Workers == 0 {
		c.Run.Workers = runtime.GOMAXPROCS(0)
	}
}

// Validate checks every field that Options would otherwise reject or panic on.
func (c *Config) Validate() error {
	_, err := c.Options()
	return err
}

// Options translates the configuration into ged options.
func (c *Config) Options() ([]ged.Option, error) {
	if c.Run.Workers < 1 {
		return nil, fmt.Errorf("%w: run.workers %d < 1", ErrInvalidConfig, c.Run.Workers)
	}
	if c.Run.CacheSize < 0 {
		return nil, fmt.Errorf("%w: run.cache_size %d < 0", ErrInvalidConfig, c.Run.CacheSize)
	}
	policy, err := ged.ParseFailurePolicy(c.Run.FailurePolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: run.failure_policy: %w", ErrInvalidConfig, err)
	}
	tie, err := ged.ParseTieRule(c.Run.TieRule)
	if err != nil {
		return nil, fmt.Errorf("%w: run.tie_rule: %w", ErrInvalidConfig, err)
	}
	metric, err := embedding.ParseMetric(c.Embedding.Metric)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding.metric: %w", ErrInvalidConfig, err)
	}
	strategy, err := embedding.ParseStrategy(c.Embedding.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding.strategy: %w", ErrInvalidConfig, err)
	}
	algo, err := assignment.ParseAlgorithm(c.Assignment.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: assignment.algorithm: %w", ErrInvalidConfig, err)
	}
	nodePolicy, err := editcost.ParseNodePolicy(c.Cost.NodePolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: cost.node_policy: %w", ErrInvalidConfig, err)
	}
	costs := editcost.Options{
		NodePolicy:              nodePolicy,
		SubstitutionCost:        c.Cost.Substitution,
		InsertionCost:           c.Cost.Insertion,
		EdgeInsertionCost:       c.Cost.EdgeInsertion,
		EdgeDeletionCost:        c.Cost.EdgeDeletion,
		ChargeInsertedNodeEdges: c.Cost.ChargeInsertedNodeEdges,
	}
	if err := costs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: cost: %w", ErrInvalidConfig, err)
	}

	return []ged.Option{
		ged.WithWorkers(c.Run.Workers),
		ged.WithFailurePolicy(policy),
		ged.WithRoleSelector(ged.SmallerSource{Tie: tie}),
		ged.WithPairCache(c.Run.CacheSize),
		ged.WithEmbeddingOptions(embedding.WithMetric(metric), embedding.WithStrategy(strategy)),
		ged.WithAssignmentOptions(assignment.WithAlgorithm(algo)),
		ged.WithCostOptions(
			editcost.WithNodePolicy(costs.NodePolicy),
			editcost.WithSubstitutionCost(costs.SubstitutionCost),
			editcost.WithInsertionCost(costs.InsertionCost),
			editcost.WithEdgeCosts(costs.EdgeInsertionCost, costs.EdgeDeletionCost),
			editcost.WithInsertedNodeEdges(costs.ChargeInsertedNodeEdges),
		),
	}, nil
}

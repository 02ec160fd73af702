package ged

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/gedembed/assignment"
	"github.com/katalvlaran/gedembed/editcost"
	"github.com/katalvlaran/gedembed/embedding"
)

// FailurePolicy decides what a failing cell does to the run.
type FailurePolicy int

const (
	// FailFast cancels the run on the first failing cell.
	FailFast FailurePolicy = iota

	// Isolate marks failing cells NaN and keeps going.
	Isolate
)

// String implements fmt.Stringer.
func (p FailurePolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case Isolate:
		return "isolate"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// ParseFailurePolicy maps a config name to a FailurePolicy.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch s {
	case "", "fail-fast", "failfast":
		return FailFast, nil
	case "isolate":
		return Isolate, nil
	default:
		return 0, fmt.Errorf("ParseFailurePolicy(%q): %w", s, ErrUnknownPolicy)
	}
}

// ProgressFunc receives the number of finished cells and the total.
// It may be called from several workers at once.
type ProgressFunc func(done, total int)

// Options configures Pair and DistanceMatrix.
type Options struct {
	// Workers bounds concurrent cells; 1 is the sequential double loop.
	Workers int

	// Policy is FailFast or Isolate.
	Policy FailurePolicy

	// Roles picks the source side of every pair.
	Roles RoleSelector

	// CacheSize > 0 enables the LRU pair cache (symmetric selectors only).
	CacheSize int

	// Logger receives run and failure records.
	Logger *slog.Logger

	// Progress, when set, is called after each finished cell.
	Progress ProgressFunc

	Embedding  []embedding.Option
	Assignment []assignment.Option
	Cost       []editcost.Option
}

// Option is a functional setter for Options.
type Option func(*Options)

// DefaultOptions returns GOMAXPROCS workers, FailFast, SmallerSource with the
// fingerprint tie rule, no cache and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Policy:  FailFast,
		Roles:   SmallerSource{Tie: TieFingerprint},
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithWorkers sets the pool size. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("ged: WithWorkers(%d): need at least one worker", n))
	}

	return func(o *Options) { o.Workers = n }
}

// WithFailurePolicy selects FailFast or Isolate. Panics on undeclared values.
func WithFailurePolicy(p FailurePolicy) Option {
	if p != FailFast && p != Isolate {
		panic(fmt.Sprintf("ged: WithFailurePolicy(%v)", p))
	}

	return func(o *Options) { o.Policy = p }
}

// WithRoleSelector replaces the default SmallerSource selector. Panics on nil.
func WithRoleSelector(r RoleSelector) Option {
	if r == nil {
		panic("ged: WithRoleSelector(nil)")
	}

	return func(o *Options) { o.Roles = r }
}

// WithPairCache enables an LRU of size entries keyed by the unordered pair of
// entry fingerprints. 0 disables it. Panics on negative sizes.
func WithPairCache(size int) Option {
	if size < 0 {
		panic(fmt.Sprintf("ged: WithPairCache(%d): negative size", size))
	}

	return func(o *Options) { o.CacheSize = size }
}

// WithLogger sets the run logger; nil restores the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.Logger = l
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithEmbeddingOptions forwards options to embedding.Distances.
func WithEmbeddingOptions(opts ...embedding.Option) Option {
	return func(o *Options) { o.Embedding = append(o.Embedding, opts...) }
}

// WithAssignmentOptions forwards options to assignment.Solve.
func WithAssignmentOptions(opts ...assignment.Option) Option {
	return func(o *Options) { o.Assignment = append(o.Assignment, opts...) }
}

// WithCostOptions forwards options to editcost.
func WithCostOptions(opts ...editcost.Option) Option {
	return func(o *Options) { o.Cost = append(o.Cost, opts...) }
}

// gatherOptions applies setters over DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

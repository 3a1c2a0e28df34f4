package vectorengine

import (
	"fmt"
	"log/slog"

	"github.com/mzammit001/VectorEngine/sieve"
)

// Default size thresholds. Below them work stays on the calling goroutine.
const (
	DefaultParallelSumThreshold       = 100_000
	DefaultParallelFrequencyThreshold = 1_400_000
	DefaultParallelSortThreshold      = 75_000
	DefaultDeriveThreshold            = 100_000
	DefaultCountingLimit              = 20_000_000
)

// Thresholds tune when the engine switches algorithms.
type Thresholds struct {
	// ParallelSum is the length from which Sum, Minimum and Maximum fan out.
	ParallelSum int
	// ParallelFrequency is the length from which Frequency fans out.
	ParallelFrequency int
	// ParallelSort is the length from which Sorted uses the parallel merge sort.
	ParallelSort int
	// Derive is the length below which elementwise operations involving a
	// random vector skip deriving statistics and leave them to be recomputed.
	Derive int
	// CountingLimit is the largest value counting-array algorithms accept.
	CountingLimit int64
}

// DefaultThresholds returns the production thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ParallelSum:       DefaultParallelSumThreshold,
		ParallelFrequency: DefaultParallelFrequencyThreshold,
		ParallelSort:      DefaultParallelSortThreshold,
		Derive:            DefaultDeriveThreshold,
		CountingLimit:     DefaultCountingLimit,
	}
}

func (t Thresholds) validate() error {
	if t.ParallelSum < 1 || t.ParallelFrequency < 1 || t.ParallelSort < 1 || t.Derive < 0 || t.CountingLimit < 0 {
		return fmt.Errorf("%w: thresholds %+v", ErrInvalidArgument, t)
	}
	return nil
}

type options struct {
	workers          int
	thresholds       Thresholds
	sieveConfig      sieve.Config
	sieveProvider    sieve.Provider
	memoryLimit      int64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Engine construction.
type Option func(*options)

// WithWorkers sets how many goroutines a single reduction may fan out to.
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithThresholds replaces the size thresholds.
//
// Example forcing parallel reductions on small inputs in a test:
//
//	e, _ := vectorengine.New(vectorengine.WithThresholds(vectorengine.Thresholds{
//	    ParallelSum: 2, ParallelFrequency: 2, ParallelSort: 2,
//	    Derive: 0, CountingLimit: 1 << 20,
//	}))
func WithThresholds(t Thresholds) Option {
	return func(o *options) {
		o.thresholds = t
	}
}

// WithSieveConfig configures the sieve cache the engine creates.
// Memory, Logger and OnRebuild are filled in by the engine when left unset.
// Ignored when WithSieveProvider is also given.
func WithSieveConfig(cfg sieve.Config) Option {
	return func(o *options) {
		o.sieveConfig = cfg
	}
}

// WithSieveProvider injects a shared sieve provider, typically one created
// once per process and handed to every Engine.
func WithSieveProvider(p sieve.Provider) Option {
	return func(o *options) {
		o.sieveProvider = p
	}
}

// WithMemoryLimit caps the bytes sieve tables may hold. 0 means unlimited.
// When the cap is reached tables stop growing and queries fall back to
// direct computation.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vectorengine.BasicMetricsCollector{}
//	e, _ := vectorengine.New(vectorengine.WithMetricsCollector(metrics))
//	// ... use e ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, hit ratio: %.2f\n", stats.QueryCount, stats.CacheHitRatio())
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vectorengine.NewJSONLogger(slog.LevelInfo)
//	e, _ := vectorengine.New(vectorengine.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

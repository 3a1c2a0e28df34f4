package vectorengine

import (
	"fmt"
	"time"

	"github.com/mzammit001/VectorEngine/internal/parallel"
	"github.com/mzammit001/VectorEngine/internal/resource"
	"github.com/mzammit001/VectorEngine/sieve"
)

// Engine creates vectors and carries the shared state they compute with:
// the sieve provider, the worker runner, thresholds, logging and metrics.
//
// An Engine is safe for concurrent use. Vectors it creates are not; each
// Vector must be used by one goroutine at a time.
type Engine struct {
	sieves     sieve.Provider
	runner     *parallel.Runner
	rc         *resource.Controller
	thresholds Thresholds
	logger     *Logger
	metrics    MetricsCollector
}

// New creates an Engine.
func New(optFns ...Option) (*Engine, error) {
	o := options{
		thresholds:  DefaultThresholds(),
		sieveConfig: sieve.DefaultConfig(),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	if err := o.thresholds.validate(); err != nil {
		return nil, err
	}
	if o.memoryLimit < 0 {
		return nil, fmt.Errorf("%w: memory limit %d", ErrInvalidArgument, o.memoryLimit)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes: o.memoryLimit,
		MaxWorkers:       int64(max(o.workers, 0)),
	})

	e := &Engine{
		sieves:     o.sieveProvider,
		runner:     parallel.NewRunner(o.workers, rc),
		rc:         rc,
		thresholds: o.thresholds,
		logger:     o.logger,
		metrics:    o.metricsCollector,
	}

	if e.sieves == nil {
		cfg := o.sieveConfig
		if cfg.Memory == nil {
			cfg.Memory = rc
		}
		if cfg.Logger == nil {
			cfg.Logger = o.logger.Logger
		}
		if cfg.OnRebuild == nil {
			cfg.OnRebuild = func(kind sieve.Kind, limit int, d time.Duration) {
				e.metrics.RecordSieveRebuild(kind.String(), limit, d)
			}
		}
		e.sieves = sieve.New(cfg)
	}

	return e, nil
}

// Sieves returns the provider answering membership queries.
func (e *Engine) Sieves() sieve.Provider { return e.sieves }

// Thresholds returns the configured thresholds.
func (e *Engine) Thresholds() Thresholds { return e.thresholds }

// Workers returns the maximum fan-out of a single reduction.
func (e *Engine) Workers() int { return e.runner.Workers() }

// MemoryUsage returns the bytes currently reserved for sieve tables created
// by this engine.
func (e *Engine) MemoryUsage() int64 { return e.rc.MemoryUsage() }

// IsPrime reports whether n is prime, using the sieve when n is covered.
func (e *Engine) IsPrime(n int64) bool { return e.sieves.Query(sieve.KindPrime, n) }

// IsSemiprime reports whether n is the product of exactly two primes.
func (e *Engine) IsSemiprime(n int64) bool { return e.sieves.Query(sieve.KindSemiprime, n) }

// IsAbundant reports whether the proper divisors of n sum to more than n.
func (e *Engine) IsAbundant(n int64) bool { return e.sieves.Query(sieve.KindAbundant, n) }

// IsComposite reports whether n is greater than one and not prime.
func (e *Engine) IsComposite(n int64) bool { return n > 1 && !e.IsPrime(n) }

func (e *Engine) observeTransform(op string, began time.Time) {
	e.metrics.RecordTransform(op, time.Since(began), nil)
}

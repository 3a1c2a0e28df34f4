package sieve

import (
	"log/slog"
	"math"
	"math/bits"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/mzammit001/VectorEngine/internal/conv"
)

const (
	// DefaultPrimeCeiling bounds the prime table.
	DefaultPrimeCeiling = 30_000_000
	// DefaultSemiprimeCeiling bounds the semiprime table.
	DefaultSemiprimeCeiling = 30_000_000
	// DefaultAbundantCeiling bounds the abundant table.
	DefaultAbundantCeiling = 1_500_000

	// DefaultPrimeGrowthStep is the minimum growth of the prime table.
	DefaultPrimeGrowthStep = 5_000_000
	// DefaultSemiprimeGrowthStep is the minimum growth of the semiprime table.
	DefaultSemiprimeGrowthStep = 5_000_000
	// DefaultAbundantGrowthStep is the minimum growth of the abundant table.
	DefaultAbundantGrowthStep = 250_000

	// abundantGap over-estimates the distance between abundant numbers,
	// which occur roughly every 4 to 6 integers.
	abundantGap = 6

	// maxAbundantCeiling keeps divisor sums inside int32 during a build.
	maxAbundantCeiling = 100_000_000
)

// MemoryBudget reserves and releases bytes for table storage.
// *resource.Controller satisfies it.
type MemoryBudget interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// Config configures a Cache.
type Config struct {
	// Ceilings are the largest table limits per kind.
	PrimeCeiling     int
	SemiprimeCeiling int
	AbundantCeiling  int

	// GrowthSteps are the minimum amount a table grows by when it grows.
	PrimeGrowthStep     int
	SemiprimeGrowthStep int
	AbundantGrowthStep  int

	// Memory, if set, must grant a table's bytes before it is built.
	Memory MemoryBudget

	// Logger receives rebuild and fallback events. Nil discards them.
	Logger *slog.Logger

	// OnRebuild, if set, is called after every table rebuild.
	OnRebuild func(kind Kind, limit int, duration time.Duration)
}

// DefaultConfig returns the production limits.
func DefaultConfig() Config {
	return Config{
		PrimeCeiling:        DefaultPrimeCeiling,
		SemiprimeCeiling:    DefaultSemiprimeCeiling,
		AbundantCeiling:     DefaultAbundantCeiling,
		PrimeGrowthStep:     DefaultPrimeGrowthStep,
		SemiprimeGrowthStep: DefaultSemiprimeGrowthStep,
		AbundantGrowthStep:  DefaultAbundantGrowthStep,
	}
}

func (cfg *Config) normalize() {
	def := DefaultConfig()
	if cfg.PrimeCeiling < 0 {
		cfg.PrimeCeiling = 0
	}
	if cfg.SemiprimeCeiling < 0 {
		cfg.SemiprimeCeiling = 0
	}
	// Semiprime members are stored as uint32.
	if _, err := conv.IntToUint32(cfg.SemiprimeCeiling); err != nil {
		cfg.SemiprimeCeiling = math.MaxUint32
	}
	cfg.AbundantCeiling = min(max(cfg.AbundantCeiling, 0), maxAbundantCeiling)
	if cfg.PrimeGrowthStep <= 0 {
		cfg.PrimeGrowthStep = def.PrimeGrowthStep
	}
	if cfg.SemiprimeGrowthStep <= 0 {
		cfg.SemiprimeGrowthStep = def.SemiprimeGrowthStep
	}
	if cfg.AbundantGrowthStep <= 0 {
		cfg.AbundantGrowthStep = def.AbundantGrowthStep
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}

// Stats is a snapshot of one table's state.
type Stats struct {
	Kind      Kind
	Limit     int
	Ceiling   int
	Members   uint64
	Bytes     int64
	Rebuilds  int64
	Hits      int64
	Fallbacks int64
}

type counters struct {
	rebuilds  atomic.Int64
	hits      atomic.Int64
	fallbacks atomic.Int64
}

// Cache is the table-backed Provider. It is safe for concurrent use:
// queries are lock-free and rebuilds are serialized.
type Cache struct {
	cfg    Config
	tables [kindCount]atomic.Pointer[table]
	stats  [kindCount]counters

	mu          sync.Mutex // serializes rebuilds
	fallbackLog rate.Sometimes
}

var _ Provider = (*Cache)(nil)

// New creates an empty Cache. Tables are built on first demand.
func New(cfg Config) *Cache {
	cfg.normalize()
	return &Cache{
		cfg:         cfg,
		fallbackLog: rate.Sometimes{First: 1, Interval: time.Second},
	}
}

// Limit returns the current exclusive upper bound of the table for kind.
func (c *Cache) Limit(kind Kind) int {
	if t := c.tables[kind].Load(); t != nil {
		return t.limit
	}
	return 0
}

// Ceiling returns the configured maximum limit for kind.
func (c *Cache) Ceiling(kind Kind) int {
	switch kind {
	case KindPrime:
		return c.cfg.PrimeCeiling
	case KindSemiprime:
		return c.cfg.SemiprimeCeiling
	case KindAbundant:
		return c.cfg.AbundantCeiling
	default:
		return 0
	}
}

func (c *Cache) growthStep(kind Kind) int {
	switch kind {
	case KindPrime:
		return c.cfg.PrimeGrowthStep
	case KindSemiprime:
		return c.cfg.SemiprimeGrowthStep
	default:
		return c.cfg.AbundantGrowthStep
	}
}

// Query implements Provider.
func (c *Cache) Query(kind Kind, n int64) bool {
	if kind >= kindCount {
		return false
	}
	t := c.tables[kind].Load()
	if t != nil && n >= 0 && n < int64(t.limit) {
		c.stats[kind].hits.Add(1)
		return t.contains(int(n))
	}

	c.stats[kind].fallbacks.Add(1)
	c.fallbackLog.Do(func() {
		c.cfg.Logger.Debug("sieve query outside table",
			"kind", kind.String(),
			"n", n,
			"limit", c.Limit(kind),
		)
	})
	return Direct(kind, n)
}

// EnsureCapacity implements Provider.
func (c *Cache) EnsureCapacity(kind Kind, start int64, length int) {
	if kind >= kindCount || length <= 0 {
		return
	}
	start = max(start, 0)
	if start >= int64(c.Ceiling(kind)) {
		// Every candidate lies beyond the largest table we would build.
		return
	}
	c.grow(kind, neededBound(kind, start, length))
}

// EnsureRange implements Provider.
func (c *Cache) EnsureRange(kind Kind, start, limit int64) {
	if kind >= kindCount || limit <= max(start, 0) {
		return
	}
	ceiling := int64(c.Ceiling(kind))
	if start >= ceiling {
		return
	}
	c.grow(kind, conv.ClampInt64ToInt(min(limit, ceiling)))
}

// neededBound estimates the exclusive upper bound a scan for length members
// from start will reach.
func neededBound(kind Kind, start int64, length int) int {
	n := int64(length)
	var gap int64
	switch kind {
	case KindAbundant:
		gap = abundantGap
	default:
		// log2 over-estimates the mean prime gap ln(x).
		gap = int64(bits.Len64(uint64(satAdd(start, n))))
	}
	return conv.ClampInt64ToInt(satAdd(satAdd(start, satMul(n, gap)), 1))
}

func (c *Cache) grow(kind Kind, needed int) {
	cur := c.Limit(kind)
	if needed <= cur || cur >= c.Ceiling(kind) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.growLocked(kind, needed)
}

// growLocked rebuilds the table for kind so that it covers needed, bounded by
// the ceiling. Callers hold c.mu.
func (c *Cache) growLocked(kind Kind, needed int) {
	cur := c.Limit(kind)
	ceiling := c.Ceiling(kind)
	if needed <= cur || cur >= ceiling {
		return
	}

	target := min(ceiling, max(needed, cur+c.growthStep(kind)))
	// Semiprimes up to target have a prime factor of at most target/2.
	need := target/2 + 1
	reserve := denseBytes(target)
	switch kind {
	case KindAbundant:
		// int32 divisor sums live only for the duration of the build.
		reserve += int64(target) * 4
	case KindSemiprime:
		c.growLocked(KindPrime, need)
		// A prime table too small for the factors is replaced by a scratch one.
		if c.Limit(KindPrime) < need {
			reserve += denseBytes(need)
		}
	}
	if c.cfg.Memory != nil {
		if err := c.cfg.Memory.AcquireMemory(reserve); err != nil {
			c.cfg.Logger.Warn("sieve growth skipped",
				"kind", kind.String(),
				"limit", cur,
				"target", target,
				"error", err,
			)
			return
		}
	}

	began := time.Now()
	var t *table
	switch kind {
	case KindPrime:
		t = buildPrimeTable(target)
	case KindSemiprime:
		primes := c.tables[KindPrime].Load()
		if primes != nil && primes.limit >= need {
			t = buildSemiprimeTable(target, primes.dense)
		} else {
			t = buildSemiprimeTable(target, sievePrimes(need))
		}
	case KindAbundant:
		t = buildAbundantTable(target)
	}
	elapsed := time.Since(began)

	if c.cfg.Memory != nil {
		// Settle the reservation on the table's real footprint.
		c.cfg.Memory.ReleaseMemory(reserve)
		if err := c.cfg.Memory.AcquireMemory(t.bytes); err != nil {
			c.cfg.Logger.Warn("sieve table dropped after build",
				"kind", kind.String(),
				"target", target,
				"error", err,
			)
			return
		}
	}

	old := c.tables[kind].Swap(t)
	if old != nil && c.cfg.Memory != nil {
		c.cfg.Memory.ReleaseMemory(old.bytes)
	}
	c.stats[kind].rebuilds.Add(1)

	c.cfg.Logger.Info("sieve rebuilt",
		"kind", kind.String(),
		"limit", target,
		"previous", cur,
		"bytes", t.bytes,
		"duration", elapsed,
	)
	if c.cfg.OnRebuild != nil {
		c.cfg.OnRebuild(kind, target, elapsed)
	}
}

// Stats returns a snapshot of every table.
func (c *Cache) Stats() [kindCount]Stats {
	var out [kindCount]Stats
	for _, kind := range Kinds {
		s := Stats{
			Kind:      kind,
			Ceiling:   c.Ceiling(kind),
			Rebuilds:  c.stats[kind].rebuilds.Load(),
			Hits:      c.stats[kind].hits.Load(),
			Fallbacks: c.stats[kind].fallbacks.Load(),
		}
		if t := c.tables[kind].Load(); t != nil {
			s.Limit = t.limit
			s.Members = t.count()
			s.Bytes = t.bytes
		}
		out[kind] = s
	}
	return out
}

func satAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func satMul(a, b int64) int64 {
	if a != 0 && b > math.MaxInt64/a {
		return math.MaxInt64
	}
	return a * b
}

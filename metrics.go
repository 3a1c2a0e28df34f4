package vectorengine

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    queryCounter *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordQuery(stat string, cached bool, d time.Duration) {
//	    p.queryCounter.WithLabelValues(stat, strconv.FormatBool(cached)).Inc()
//	}
type MetricsCollector interface {
	// RecordGenerate is called after each generator call.
	// kind is the generator name, err is nil if successful.
	RecordGenerate(kind string, length int, duration time.Duration, err error)

	// RecordTransform is called after each transform operation.
	RecordTransform(op string, duration time.Duration, err error)

	// RecordQuery is called after each statistic query. cached reports
	// whether the value was served from the vector's cache.
	RecordQuery(stat string, cached bool, duration time.Duration)

	// RecordSieveRebuild is called after a sieve table is rebuilt.
	RecordSieveRebuild(kind string, limit int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordTransform(string, time.Duration, error)     {}
func (NoopMetricsCollector) RecordQuery(string, bool, time.Duration)          {}
func (NoopMetricsCollector) RecordSieveRebuild(string, int, time.Duration)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GenerateCount      atomic.Int64
	GenerateErrors     atomic.Int64
	GeneratedElements  atomic.Int64
	GenerateTotalNanos atomic.Int64
	TransformCount     atomic.Int64
	TransformErrors    atomic.Int64
	QueryCount         atomic.Int64
	QueryCacheHits     atomic.Int64
	QueryTotalNanos    atomic.Int64
	SieveRebuilds      atomic.Int64
	SieveRebuildNanos  atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(kind string, length int, duration time.Duration, err error) {
	b.GenerateCount.Add(1)
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GenerateErrors.Add(1)
		return
	}
	b.GeneratedElements.Add(int64(length))
}

// RecordTransform implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTransform(op string, duration time.Duration, err error) {
	b.TransformCount.Add(1)
	if err != nil {
		b.TransformErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(stat string, cached bool, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if cached {
		b.QueryCacheHits.Add(1)
	}
}

// RecordSieveRebuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSieveRebuild(kind string, limit int, duration time.Duration) {
	b.SieveRebuilds.Add(1)
	b.SieveRebuildNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GenerateCount:     b.GenerateCount.Load(),
		GenerateErrors:    b.GenerateErrors.Load(),
		GeneratedElements: b.GeneratedElements.Load(),
		GenerateAvgNanos:  avg(b.GenerateTotalNanos.Load(), b.GenerateCount.Load()),
		TransformCount:    b.TransformCount.Load(),
		TransformErrors:   b.TransformErrors.Load(),
		QueryCount:        b.QueryCount.Load(),
		QueryCacheHits:    b.QueryCacheHits.Load(),
		QueryAvgNanos:     avg(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		SieveRebuilds:     b.SieveRebuilds.Load(),
		SieveRebuildNanos: b.SieveRebuildNanos.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector metrics.
type BasicMetricsStats struct {
	GenerateCount     int64
	GenerateErrors    int64
	GeneratedElements int64
	GenerateAvgNanos  int64
	TransformCount    int64
	TransformErrors   int64
	QueryCount        int64
	QueryCacheHits    int64
	QueryAvgNanos     int64
	SieveRebuilds     int64
	SieveRebuildNanos int64
}

// CacheHitRatio returns the fraction of queries served from a vector cache.
func (s BasicMetricsStats) CacheHitRatio() float64 {
	if s.QueryCount == 0 {
		return 0
	}
	return float64(s.QueryCacheHits) / float64(s.QueryCount)
}

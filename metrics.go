package bitcursor

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
//	    fillHistogram prometheus.Histogram
//	    openGauge     prometheus.Gauge
//	}
//
//	func (p *PrometheusCollector) RecordFill(n int) {
//	    p.fillHistogram.Observe(float64(n))
//	}
//
// Methods are called on the goroutine that drives the cursor, except
// RecordLeak and RecordCursorClose for a leaked cursor, which run on the
// runtime's cleanup goroutine.
type MetricsCollector interface {
	// RecordBuild is called after a set is built from n input values.
	RecordBuild(n int, cardinality uint64, duration time.Duration)

	// RecordCursorOpen is called when a cursor is opened over a set.
	RecordCursorOpen(kind CursorKind)

	// RecordCursorClose is called exactly once per opened cursor.
	RecordCursorClose(kind CursorKind)

	// RecordFill is called after every BatchCursor fill that reached the engine.
	RecordFill(n int)

	// RecordLeak is called when a cursor is reclaimed without Close.
	RecordLeak(kind CursorKind)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, uint64, time.Duration) {}
func (NoopMetricsCollector) RecordCursorOpen(CursorKind)            {}
func (NoopMetricsCollector) RecordCursorClose(CursorKind)           {}
func (NoopMetricsCollector) RecordFill(int)                         {}
func (NoopMetricsCollector) RecordLeak(CursorKind)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildValues      atomic.Int64
	BuildCardinality atomic.Int64
	BuildTotalNanos  atomic.Int64
	CursorsOpened    atomic.Int64
	CursorsClosed    atomic.Int64
	BatchesOpened    atomic.Int64
	BatchesClosed    atomic.Int64
	FillCount        atomic.Int64
	FillValues       atomic.Int64
	ShortFills       atomic.Int64
	Leaks            atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(n int, cardinality uint64, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildValues.Add(int64(n))
	b.BuildCardinality.Add(int64(cardinality)) //nolint:gosec // cardinality <= 2^32
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordCursorOpen implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCursorOpen(kind CursorKind) {
	if kind == KindBatch {
		b.BatchesOpened.Add(1)
		return
	}
	b.CursorsOpened.Add(1)
}

// RecordCursorClose implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCursorClose(kind CursorKind) {
	if kind == KindBatch {
		b.BatchesClosed.Add(1)
		return
	}
	b.CursorsClosed.Add(1)
}

// RecordFill implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFill(n int) {
	b.FillCount.Add(1)
	b.FillValues.Add(int64(n))
	if n < BatchSize {
		b.ShortFills.Add(1)
	}
}

// RecordLeak implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLeak(CursorKind) {
	b.Leaks.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	opened := b.CursorsOpened.Load() + b.BatchesOpened.Load()
	closed := b.CursorsClosed.Load() + b.BatchesClosed.Load()

	return BasicMetricsStats{
		BuildCount:       b.BuildCount.Load(),
		BuildValues:      b.BuildValues.Load(),
		BuildCardinality: b.BuildCardinality.Load(),
		BuildAvgNanos:    avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		CursorsOpened:    b.CursorsOpened.Load(),
		BatchesOpened:    b.BatchesOpened.Load(),
		OpenCursors:      opened - closed,
		FillCount:        b.FillCount.Load(),
		FillAvgValues:    avg(b.FillValues.Load(), b.FillCount.Load()),
		ShortFills:       b.ShortFills.Load(),
		Leaks:            b.Leaks.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount       int64
	BuildValues      int64
	BuildCardinality int64
	BuildAvgNanos    int64
	CursorsOpened    int64
	BatchesOpened    int64
	OpenCursors      int64
	FillCount        int64
	FillAvgValues    int64
	ShortFills       int64
	Leaks            int64
}

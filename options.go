package bitcursor

import (
	"log/slog"

	"github.com/hupe1980/bitcursor/internal/native"
	"github.com/hupe1980/bitcursor/resource"
)

// DefaultIngestWorkers is the default fan-out of Ingest.
const DefaultIngestWorkers = 4

var (
	defaultEngine      = native.NewRoaring()
	runOptimizedEngine = native.NewRoaring(func(o *native.RoaringOptions) {
		o.RunOptimize = true
	})
)

type options struct {
	engine           native.Engine
	runOptimize      bool
	logger           *Logger
	metricsCollector MetricsCollector
	resources        *resource.Controller
	ingestWorkers    int
}

// Option configures Set construction.
//
// Options are captured by the Set at construction and shared with every
// cursor opened over it.
type Option func(*options)

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitcursor.NewJSONLogger(slog.LevelDebug)
//	s := bitcursor.FromSeq(seq, bitcursor.WithLogger(logger))
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

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bitcursor.BasicMetricsCollector{}
//	s := bitcursor.FromSeq(seq, bitcursor.WithMetricsCollector(metrics))
//	// ... iterate s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Fills: %d, Avg fill: %d\n", stats.FillCount, stats.FillAvgValues)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithResourceController accounts the memory of every Set built with this
// option against rc. Ingest additionally waits for memory and worker slots.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithRunOptimize converts eligible containers to run-length containers
// once the set is built. Long consecutive ranges benefit most.
func WithRunOptimize() Option {
	return func(o *options) {
		o.runOptimize = true
	}
}

// WithIngestWorkers bounds the number of sources Ingest materializes at once.
// Values <= 0 select DefaultIngestWorkers.
func WithIngestWorkers(n int) Option {
	return func(o *options) {
		o.ingestWorkers = n
	}
}

// withEngine replaces the compressed set engine. Used by tests.
func withEngine(e native.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

func applyOptions(optFns []Option) *options {
	o := &options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		ingestWorkers:    DefaultIngestWorkers,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(o)
		}
	}

	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.ingestWorkers <= 0 {
		o.ingestWorkers = DefaultIngestWorkers
	}
	if o.engine == nil {
		o.engine = defaultEngine
		if o.runOptimize {
			o.engine = runOptimizedEngine
		}
	}
	return o
}

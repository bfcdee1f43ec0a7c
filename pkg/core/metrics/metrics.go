package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	mdwerror "github.com/msto63/triangle/foundation/core/error"
)

// Namespace prefixes every metric name
const Namespace = "tri"

// Collector records pipeline metrics for one process. It implements
// triangle.Observer and writes the Prometheus text exposition format to a
// file, since a command line run has no scrape endpoint.
//
// Metrics:
//   - tri_stage_total: completed stages by stage and status
//   - tri_stage_duration_seconds: stage duration histogram
//   - tri_errors_total: failed runs by error code and severity
//   - tri_tree_tokens, tri_tree_nodes, tri_tree_depth: size of parsed trees
type Collector struct {
	registry *prometheus.Registry

	stageTotal    *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	errorsTotal   *prometheus.CounterVec
	treeTokens    prometheus.Histogram
	treeNodes     prometheus.Histogram
	treeDepth     prometheus.Histogram
}

// NewCollector creates a collector and registers its metrics. If registry
// is nil, a new registry is used.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,

		stageTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "stage_total",
				Help:      "Total number of completed pipeline stages",
			},
			[]string{"stage", "status"},
		),

		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of pipeline stages in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"stage"},
		),

		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "errors_total",
				Help:      "Total number of failed runs by error code and severity",
			},
			[]string{"code", "severity"},
		),

		treeTokens: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "tree_tokens",
				Help:      "Number of tokens per parsed program",
				Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
			},
		),

		treeNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "tree_nodes",
				Help:      "Number of AST nodes per parsed program",
				Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
			},
		),

		treeDepth: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "tree_depth",
				Help:      "Depth of parsed ASTs",
				Buckets:   prometheus.LinearBuckets(2, 4, 8),
			},
		),
	}

	registry.MustRegister(
		c.stageTotal,
		c.stageDuration,
		c.errorsTotal,
		c.treeTokens,
		c.treeNodes,
		c.treeDepth,
	)

	return c
}

// ObserveStage records a finished pipeline stage
func (c *Collector) ObserveStage(stage string, elapsed time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.stageTotal.WithLabelValues(stage, status).Inc()
	c.stageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// ObserveTree records the size of a parsed tree
func (c *Collector) ObserveTree(tokens, nodes, depth int) {
	c.treeTokens.Observe(float64(tokens))
	c.treeNodes.Observe(float64(nodes))
	c.treeDepth.Observe(float64(depth))
}

// RecordError counts a failed run under its error code and severity
func (c *Collector) RecordError(err error) {
	if err == nil {
		return
	}
	c.errorsTotal.WithLabelValues(
		mdwerror.GetCode(err).String(),
		mdwerror.GetSeverity(err).String(),
	).Inc()
}

// Registry returns the underlying Prometheus registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return mdwerror.Wrap(err, "failed to write metrics").
			WithCode(mdwerror.CodeIO).
			WithOperation("metrics.WriteTextfile").
			WithDetail("path", path)
	}
	return nil
}

package metrics

import (
	"github.com/aretw0/latextree/pkg/latex"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collectors groups the Prometheus metrics exported by the server.
type Collectors struct {
	Registry *prometheus.Registry

	renders      *prometheus.CounterVec
	nodes        prometheus.Counter
	placeholders prometheus.Counter
	depth        prometheus.Histogram
	storeErrors  *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry,
// together with the Go runtime and process collectors.
func New() *Collectors {
	c := &Collectors{
		Registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "latextree_renders_total",
				Help: "Total number of rendered diagram blocks",
			},
			[]string{"source"},
		),
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "latextree_nodes_rendered_total",
			Help: "Total number of concrete nodes rendered",
		}),
		placeholders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "latextree_placeholders_rendered_total",
			Help: "Total number of absent-child placeholders rendered",
		}),
		depth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "latextree_tree_depth",
			Help:    "Depth of rendered trees",
			Buckets: prometheus.LinearBuckets(1, 2, 10),
		}),
		storeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "latextree_store_errors_total",
				Help: "Total number of failed document store operations",
			},
			[]string{"op"},
		),
	}

	c.Registry.MustRegister(
		c.renders, c.nodes, c.placeholders, c.depth, c.storeErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveRender records one rendered tree from the given source (e.g. "http", "mcp").
func (c *Collectors) ObserveRender(source string, s latex.Stats) {
	c.renders.WithLabelValues(source).Inc()
	c.nodes.Add(float64(s.Nodes))
	c.placeholders.Add(float64(s.Placeholders))
	c.depth.Observe(float64(s.Depth))
}

// ObserveStoreError records a failed store operation.
func (c *Collectors) ObserveStoreError(op string) {
	c.storeErrors.WithLabelValues(op).Inc()
}

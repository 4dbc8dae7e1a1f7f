package z3

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "smtfuzz"
	metricsSubsystem = "solver"
)

// Ensure collector implements interface.
var _ prometheus.Collector = (*Collector)(nil)

// Collector exports the statistics of a Solver as Prometheus metrics.
// Values are read from the solver on each scrape, so the collector must not
// be gathered concurrently with solver calls.
type Collector struct {
	solver *Solver

	checks    *prometheus.Desc
	checkTime *prometheus.Desc
	models    *prometheus.Desc
	depth     *prometheus.Desc
}

// NewCollector returns a collector for s.
func NewCollector(s *Solver) *Collector {
	labels := prometheus.Labels{"solver": Name}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, metricsSubsystem, name), help, nil, labels)
	}

	return &Collector{
		solver:    s,
		checks:    desc("checks_total", "Total number of satisfiability checks."),
		checkTime: desc("check_seconds_total", "Total time spent in satisfiability checks."),
		models:    desc("models_total", "Total number of models built."),
		depth:     desc("depth", "Current assertion scope depth."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.checks
	ch <- c.checkTime
	ch <- c.models
	ch <- c.depth
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.solver.Stats()
	ch <- prometheus.MustNewConstMetric(c.checks, prometheus.CounterValue, float64(st.CheckN))
	ch <- prometheus.MustNewConstMetric(c.checkTime, prometheus.CounterValue, st.CheckTime.Seconds())
	ch <- prometheus.MustNewConstMetric(c.models, prometheus.CounterValue, float64(st.ModelN))
	ch <- prometheus.MustNewConstMetric(c.depth, prometheus.GaugeValue, float64(c.solver.Depth()))
}

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rooseveltalej/proyecto3/pkg/model"
)

// PromSink records scheduler searches in Prometheus metrics.
type PromSink struct {
	searches  *prometheus.CounterVec
	nodes     *prometheus.HistogramVec
	schedules *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

var _ model.SearchRecorder = (*PromSink)(nil)

// NewPromSink registers the scheduler metrics on reg, or on the default registerer when reg is nil.
// Collectors that are already registered are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	searches, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduler_searches_total",
		Help: "Total number of schedule searches by outcome",
	}, []string{"mode", "outcome"}))
	if err != nil {
		return nil, err
	}
	nodes, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scheduler_search_nodes",
		Help:    "Candidates considered per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"mode"}))
	if err != nil {
		return nil, err
	}
	schedules, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduler_schedules_total",
		Help: "Total number of schedules returned",
	}, []string{"mode"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scheduler_search_duration_seconds",
		Help:    "Wall time spent per search",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"}))
	if err != nil {
		return nil, err
	}

	return &PromSink{searches: searches, nodes: nodes, schedules: schedules, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) (C, error) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := are.ExistingCollector.(C)
			if !ok {
				return collector, fmt.Errorf("collector registered with a different type: %w", err)
			}
			return existing, nil
		}
		return collector, err
	}
	return collector, nil
}

// RecordSearch implements model.SearchRecorder.
func (s *PromSink) RecordSearch(stats model.SearchStats) {
	mode := string(stats.Mode)
	s.searches.WithLabelValues(mode, stats.Outcome()).Inc()
	s.nodes.WithLabelValues(mode).Observe(float64(stats.Nodes))
	s.schedules.WithLabelValues(mode).Add(float64(stats.Schedules))
	s.duration.WithLabelValues(mode).Observe(stats.Duration.Seconds())
}

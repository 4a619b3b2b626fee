// Package metrics counts resolution progress with Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports"
	"go.trai.ch/zerr"
)

// Observer implements ports.Observer by updating Prometheus collectors.
// When a textfile path is set, Close writes every metric to it.
type Observer struct {
	registry *prometheus.Registry
	path     string

	steps    prometheus.Counter
	stages   *prometheus.CounterVec
	restarts prometheus.Counter
	duration prometheus.Histogram
	planned  *prometheus.GaugeVec
}

var _ ports.Observer = (*Observer)(nil)

// New creates an Observer with its own registry. An empty path disables the textfile.
func New(path string) *Observer {
	o := &Observer{
		registry: prometheus.NewRegistry(),
		path:     path,
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "decider_steps_total",
			Help: "Number of resolvents given a decision.",
		}),
		stages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "decider_stage_transitions_total",
			Help: "Number of times each resolution stage was entered.",
		}, []string{"stage"}),
		restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "decider_restarts_total",
			Help: "Number of resolution attempts ended by a restart request.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "decider_resolution_duration_seconds",
			Help:    "Time taken to resolve a set of targets.",
			Buckets: prometheus.DefBuckets,
		}),
		planned: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "decider_plan_resolutions",
			Help: "Number of resolutions in the last plan by decision kind.",
		}, []string{"decision"}),
	}
	o.registry.MustRegister(o.steps, o.stages, o.restarts, o.duration, o.planned)
	return o
}

// Registry returns the registry holding the observer's collectors.
func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

// OnStage counts a stage transition.
func (o *Observer) OnStage(stage domain.Stage) {
	o.stages.WithLabelValues(string(stage)).Inc()
}

// OnStep counts a decision.
func (o *Observer) OnStep(domain.Resolvent) {
	o.steps.Inc()
}

// OnRestart counts a restart.
func (o *Observer) OnRestart(int, domain.Resolvent) {
	o.restarts.Inc()
}

// ObservePlan records how long resolution took and what the plan contains.
func (o *Observer) ObservePlan(elapsed time.Duration, plan *domain.Plan) {
	o.duration.Observe(elapsed.Seconds())
	o.planned.Reset()
	if plan == nil {
		return
	}
	for _, res := range plan.Resolutions {
		if res.Decision == nil {
			continue
		}
		o.planned.WithLabelValues(res.Decision.Kind()).Inc()
	}
}

// Close writes the metrics to the textfile, if one was configured.
func (o *Observer) Close() error {
	if o.path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(o.path, o.registry); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write metrics"), "path", o.path)
	}
	return nil
}

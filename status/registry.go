package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric names written by the simulation passes
const (
	MetricFrames        = "frames"
	MetricShots         = "shots"
	MetricTargetHits    = "target_hits"
	MetricPlatformHits  = "platform_hits"
	MetricObstacleHits  = "obstacle_hits"
	MetricFrozenPairs   = "frozen_pairs"
	MetricPairReversals = "pair_reversals"
	MetricLaunchSpeed   = "launch_speed_max"
	MetricTransitions   = "phase_transitions"
)

// Registry is the metrics facade shared by the session and the driver
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Counter returns the named counter
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Counters.Get(name)
}

// Gauge returns the named gauge
func (r *Registry) Gauge(name string) *Gauge {
	return r.Gauges.Get(name)
}

// Lines renders every metric as "name=value", counters first, each group sorted
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Counters.Count()+r.Gauges.Count())
	for _, k := range r.Counters.Keys() {
		lines = append(lines, k+"="+strconv.FormatInt(r.Counters.Get(k).Load(), 10))
	}
	for _, k := range r.Gauges.Keys() {
		lines = append(lines, fmt.Sprintf("%s=%.3f", k, r.Gauges.Get(k).Get()))
	}
	return lines
}

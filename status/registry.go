package status

import "sync/atomic"

// Registry is the central metrics facade
// Gameplay code bumps counters; the debug overlay reads sorted snapshots
type Registry struct {
	ints *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{ints: NewMetricMap[atomic.Int64]()}
}

// Counter returns the named counter, creating it if absent
// Callers may cache the pointer; writes are lock-free
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.ints.Get(name)
}

// Incr adds 1 to the named counter
func (r *Registry) Incr(name string) {
	r.ints.Get(name).Add(1)
}

// Add adds delta to the named counter
func (r *Registry) Add(name string, delta int64) {
	r.ints.Get(name).Add(delta)
}

// Set stores an absolute value on the named counter
func (r *Registry) Set(name string, val int64) {
	r.ints.Get(name).Store(val)
}

// Stat is one name/value pair from a registry snapshot
type Stat struct {
	Name  string
	Value int64
}

// Snapshot returns all counters in sorted name order
func (r *Registry) Snapshot() []Stat {
	stats := make([]Stat, 0, r.ints.Count())
	r.ints.Range(func(key string, ptr *atomic.Int64) {
		stats = append(stats, Stat{Name: key, Value: ptr.Load()})
	})
	return stats
}

// Default is the process-wide registry
var Default = NewRegistry()

// Incr adds 1 to a counter on the default registry
func Incr(name string) {
	Default.Incr(name)
}

// Add adds delta to a counter on the default registry
func Add(name string, delta int64) {
	Default.Add(name, delta)
}

// Set stores an absolute value on the default registry
func Set(name string, val int64) {
	Default.Set(name, val)
}

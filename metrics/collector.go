package metrics

import (
	"sort"
	"sync"

	"github.com/philipp01105/tlog/target"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name when none is given
const DefaultNamespace = "tlog"

var (
	// ErrDuplicate is returned when a name is registered twice
	ErrDuplicate = errors.New("stats source already registered")
	// ErrEmptyName is returned for an empty source name
	ErrEmptyName = errors.New("stats source name is empty")
)

// Collector exports target Stats as Prometheus counters labelled by
// target name. It implements prometheus.Collector.
type Collector struct {
	mu      sync.RWMutex
	sources map[string]target.StatsProvider

	written  *prometheus.Desc
	failed   *prometheus.Desc
	filtered *prometheus.Desc
}

// NewCollector creates an empty collector. An empty namespace means
// DefaultNamespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	labels := []string{"target"}
	return &Collector{
		sources: make(map[string]target.StatsProvider),
		written: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "target", "written_total"),
			"Records written by the target.",
			labels, nil,
		),
		failed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "target", "failed_total"),
			"Records the target failed to write.",
			labels, nil,
		),
		filtered: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "target", "filtered_total"),
			"Records rejected by the target level.",
			labels, nil,
		),
	}
}

// Register adds a stats source under name
func (c *Collector) Register(name string, src target.StatsProvider) error {
	if name == "" {
		return ErrEmptyName
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.sources[name]; ok {
		return errors.Wrapf(ErrDuplicate, "target %q", name)
	}
	c.sources[name] = src
	return nil
}

// Unregister removes name. It reports whether name was registered.
func (c *Collector) Unregister(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.sources[name]; !ok {
		return false
	}
	delete(c.sources, name)
	return true
}

// Names returns the registered names in sorted order
func (c *Collector) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.written
	ch <- c.failed
	ch <- c.filtered
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for name, src := range c.sources {
		s := src.Stats()
		ch <- prometheus.MustNewConstMetric(c.written, prometheus.CounterValue, float64(s.Written), name)
		ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(s.Failed), name)
		ch <- prometheus.MustNewConstMetric(c.filtered, prometheus.CounterValue, float64(s.Filtered), name)
	}
}

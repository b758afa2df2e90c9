package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Collector = (*PrometheusCollector)(nil)
var _ prometheus.Collector = (*PrometheusCollector)(nil)

// PrometheusCollector implements Collector using Prometheus metrics.
type PrometheusCollector struct {
	name   string
	labels prometheus.Labels

	// Counters - use atomic operations for lock-free performance
	placementCount int64
	removalCount   int64
	collisionCount int64
	lookupCount    map[LookupResult]*int64 // result -> count, keys fixed at construction

	// Gauges
	nodes     int64
	positions int64
	sizeBytes int64

	// Static configuration gauge
	settingsReplicas prometheus.Gauge

	// Prometheus metric descriptors
	placementDesc *prometheus.Desc
	removalDesc   *prometheus.Desc
	collisionDesc *prometheus.Desc
	lookupDesc    *prometheus.Desc
	nodesDesc     *prometheus.Desc
	positionsDesc *prometheus.Desc
	sizeDesc      *prometheus.Desc
}

// NewPrometheusCollector creates a new Prometheus-based metric collector.
func NewPrometheusCollector(name string, replicas int) *PrometheusCollector {
	labels := prometheus.Labels{
		"name": name,
	}

	collector := &PrometheusCollector{
		name:        name,
		labels:      labels,
		lookupCount: make(map[LookupResult]*int64, len(LookupResults)),
	}

	for _, result := range LookupResults {
		var count int64
		collector.lookupCount[result] = &count
	}

	collector.placementDesc = prometheus.NewDesc(
		"conshash_placement_total",
		"Total number of replica positions placed on the ring",
		nil, labels,
	)
	collector.removalDesc = prometheus.NewDesc(
		"conshash_removal_total",
		"Total number of replica positions removed from the ring",
		nil, labels,
	)
	collector.collisionDesc = prometheus.NewDesc(
		"conshash_collision_total",
		"Total number of positions overwritten by a node with a different identity",
		nil, labels,
	)
	collector.lookupDesc = prometheus.NewDesc(
		"conshash_lookup_total",
		"Total number of key lookups",
		[]string{"result"}, labels,
	)
	collector.nodesDesc = prometheus.NewDesc(
		"conshash_nodes",
		"Current number of registered nodes",
		nil, labels,
	)
	collector.positionsDesc = prometheus.NewDesc(
		"conshash_positions",
		"Current number of replica positions on the ring",
		nil, labels,
	)
	collector.sizeDesc = prometheus.NewDesc(
		"conshash_size_bytes",
		"Estimated memory footprint of the ring in bytes",
		nil, labels,
	)

	collector.settingsReplicas = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "conshash_settings_replicas",
		Help:        "Number of replica positions placed per node",
		ConstLabels: labels,
	})
	collector.settingsReplicas.Set(float64(replicas))

	return collector
}

// AddPlacements atomically adds the specified count to the placement counter.
func (p *PrometheusCollector) AddPlacements(count int64) {
	atomic.AddInt64(&p.placementCount, count)
}

// AddRemovals atomically adds the specified count to the removal counter.
func (p *PrometheusCollector) AddRemovals(count int64) {
	atomic.AddInt64(&p.removalCount, count)
}

// IncCollision atomically increments the collision counter.
func (p *PrometheusCollector) IncCollision() {
	atomic.AddInt64(&p.collisionCount, 1)
}

// IncLookup atomically increments the lookup counter for the given result.
// Unknown results are dropped.
func (p *PrometheusCollector) IncLookup(result LookupResult) {
	if counter, ok := p.lookupCount[result]; ok {
		atomic.AddInt64(counter, 1)
	}
}

// SetNodes atomically updates the registered node count.
func (p *PrometheusCollector) SetNodes(count int64) {
	atomic.StoreInt64(&p.nodes, count)
}

// SetPositions atomically updates the ring position count.
func (p *PrometheusCollector) SetPositions(count int64) {
	atomic.StoreInt64(&p.positions, count)
}

// SetSizeBytes atomically updates the ring size in bytes.
func (p *PrometheusCollector) SetSizeBytes(bytes int64) {
	atomic.StoreInt64(&p.sizeBytes, bytes)
}

// Describe implements prometheus.Collector interface.
func (p *PrometheusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- p.placementDesc
	ch <- p.removalDesc
	ch <- p.collisionDesc
	ch <- p.lookupDesc
	ch <- p.nodesDesc
	ch <- p.positionsDesc
	ch <- p.sizeDesc
	ch <- p.settingsReplicas.Desc()
}

// Collect implements prometheus.Collector interface.
func (p *PrometheusCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(
		p.placementDesc,
		prometheus.CounterValue,
		float64(atomic.LoadInt64(&p.placementCount)),
	)
	ch <- prometheus.MustNewConstMetric(
		p.removalDesc,
		prometheus.CounterValue,
		float64(atomic.LoadInt64(&p.removalCount)),
	)
	ch <- prometheus.MustNewConstMetric(
		p.collisionDesc,
		prometheus.CounterValue,
		float64(atomic.LoadInt64(&p.collisionCount)),
	)

	for _, result := range LookupResults {
		ch <- prometheus.MustNewConstMetric(
			p.lookupDesc,
			prometheus.CounterValue,
			float64(atomic.LoadInt64(p.lookupCount[result])),
			string(result),
		)
	}

	ch <- prometheus.MustNewConstMetric(
		p.nodesDesc,
		prometheus.GaugeValue,
		float64(atomic.LoadInt64(&p.nodes)),
	)
	ch <- prometheus.MustNewConstMetric(
		p.positionsDesc,
		prometheus.GaugeValue,
		float64(atomic.LoadInt64(&p.positions)),
	)
	ch <- prometheus.MustNewConstMetric(
		p.sizeDesc,
		prometheus.GaugeValue,
		float64(atomic.LoadInt64(&p.sizeBytes)),
	)

	p.settingsReplicas.Collect(ch)
}

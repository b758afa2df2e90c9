package metrics

// NewCollector creates the metric collector of a named ring.
func NewCollector(name string, replicas int) Collector {
	return NewPrometheusCollector(name, replicas)
}

// Collector defines the interface for metric collection operations.
// This allows for both real Prometheus metrics and no-op implementations.
type Collector interface {
	AddPlacements(count int64)
	AddRemovals(count int64)
	IncCollision()
	IncLookup(result LookupResult)
	SetNodes(count int64)
	SetPositions(count int64)
	SetSizeBytes(bytes int64)
}

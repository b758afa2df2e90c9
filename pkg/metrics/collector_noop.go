package metrics

var _ Collector = (*NoOpCollector)(nil)

// NoOpCollector is a no-op implementation of Collector that does nothing.
// This provides better performance than conditional checks when metrics are disabled.
type NoOpCollector struct{}

func (n *NoOpCollector) AddPlacements(count int64)     {}
func (n *NoOpCollector) AddRemovals(count int64)       {}
func (n *NoOpCollector) IncCollision()                 {}
func (n *NoOpCollector) IncLookup(result LookupResult) {}
func (n *NoOpCollector) SetNodes(count int64)          {}
func (n *NoOpCollector) SetPositions(count int64)      {}
func (n *NoOpCollector) SetSizeBytes(bytes int64)      {}

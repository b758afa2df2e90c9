package conshash

import (
	"sync"

	"github.com/samber/conshash/pkg/metrics"
)

// New creates an empty ring placing replicas positions per node, with the
// default hasher and no locking. Panics if replicas is negative.
//
// A ring with 0 replicas never holds a position: every lookup on it fails with ErrEmptyRing.
func New[N Node[N]](replicas int) *Ring[N] {
	return NewRing[N](replicas).Build()
}

// NewRing starts the configuration of a ring placing replicas positions per node.
// Panics if replicas is negative.
func NewRing[N Node[N]](replicas int) RingConfig[N] {
	assertValue(replicas >= 0, "replicas must not be negative")

	return RingConfig[N]{
		replicas: replicas,
		hasher:   DefaultHasher,
	}
}

// RingConfig is an immutable builder. Every With* method returns a modified copy.
type RingConfig[N Node[N]] struct {
	replicas int
	hasher   Hasher

	locking        bool
	strictIdentity bool
	cloneOnRead    bool

	prometheusMetricsName string
}

// WithHasher replaces DefaultHasher for both replica placement and Locate.
func (cfg RingConfig[N]) WithHasher(hasher Hasher) RingConfig[N] {
	assertValue(hasher != nil, "hasher must not be nil")

	cfg.hasher = hasher
	return cfg
}

// WithLocking protects the ring with a sync.RWMutex, for rings shared between goroutines.
// Batch operations are still not atomic: a lookup may observe a partially applied AddNodes.
func (cfg RingConfig[N]) WithLocking() RingConfig[N] {
	cfg.locking = true
	return cfg
}

// WithStrictIdentity rejects adding an identity twice and removing an unknown identity.
func (cfg RingConfig[N]) WithStrictIdentity() RingConfig[N] {
	cfg.strictIdentity = true
	return cfg
}

// WithCloneOnRead makes lookups return a Clone of the stored node instead of the stored copy.
func (cfg RingConfig[N]) WithCloneOnRead() RingConfig[N] {
	cfg.cloneOnRead = true
	return cfg
}

// WithPrometheusMetrics enables metric collection. The built ring implements
// prometheus.Collector and must be registered by the caller.
func (cfg RingConfig[N]) WithPrometheusMetrics(name string) RingConfig[N] {
	assertValue(name != "", "metrics name must not be empty")

	cfg.prometheusMetricsName = name
	return cfg
}

func (cfg RingConfig[N]) Build() *Ring[N] {
	var mu rwMutex = mutexMock{}
	if cfg.locking {
		mu = &sync.RWMutex{}
	}

	var collector metrics.Collector = &metrics.NoOpCollector{}
	if cfg.prometheusMetricsName != "" {
		collector = metrics.NewCollector(cfg.prometheusMetricsName, cfg.replicas)
	}

	return newRing[N](
		mu,
		cfg.replicas,
		cfg.hasher,
		cfg.strictIdentity,
		cfg.cloneOnRead,
		collector,
	)
}

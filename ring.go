// Package conshash implements a consistent hashing ring with virtual replicas.
// Adding or removing a node only remaps the keys owned by that node.
package conshash

import (
	"fmt"
	"maps"
	"slices"

	"github.com/DmitriyVTitov/size"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/conshash/internal"
	"github.com/samber/conshash/pkg/metrics"
)

var _ prometheus.Collector = (*Ring[StringNode])(nil)

// newRing creates an empty Ring. This is an internal constructor used by the builder pattern.
func newRing[N Node[N]](
	mu rwMutex,
	replicas int,
	hasher Hasher,
	strictIdentity bool,
	cloneOnRead bool,
	collector metrics.Collector,
) *Ring[N] {
	return &Ring[N]{
		mu:       mu,
		replicas: replicas,
		hasher:   hasher,

		strictIdentity: strictIdentity,
		cloneOnRead:    cloneOnRead,

		positions: []uint64{},
		entries:   make(map[uint64]N),
		nodes:     make(map[string]N),
		owned:     make(map[string]int),

		collector: collector,
	}
}

// Ring is a consistent hashing ring. Each node occupies `replicas` positions,
// and a key belongs to the node at the first position clockwise from the key.
//
// A Ring is not safe for concurrent use unless built WithLocking.
type Ring[N Node[N]] struct {
	noCopy internal.NoCopy // Prevents accidental copying of the ring

	mu       rwMutex
	replicas int    // Positions placed per node, fixed at construction
	hasher   Hasher // Places replicas and hashes Locate keys

	strictIdentity bool
	cloneOnRead    bool

	positions []uint64       // Occupied positions, sorted ascending
	entries   map[uint64]N   // Position -> copy of the owning node
	nodes     map[string]N   // Identity -> copy of every registered node
	owned     map[string]int // Identity -> number of positions it holds

	collector metrics.Collector
}

// Replicas returns the number of positions placed per node.
func (r *Ring[N]) Replicas() int {
	return r.replicas
}

// Hash maps a key into the ring coordinate space with the ring's hasher.
func (r *Ring[N]) Hash(key string) uint64 {
	return r.hasher.hashString(key)
}

// HashBytes maps raw bytes into the ring coordinate space with the ring's hasher.
func (r *Ring[N]) HashBytes(data []byte) uint64 {
	return r.hasher(data)
}

// AddNode places the node at its replica positions: hash(identity + i) for i in [0, replicas).
// The index is appended without separator, so identities ending with a digit
// may share positions with a shorter identity ("n1"+"0" == "n"+"10").
// A position already held by another identity is overwritten. A node losing
// all of its positions this way is unregistered.
// Adding a registered identity again refreshes its copies, or fails with
// ErrDuplicateIdentity when the ring was built WithStrictIdentity.
func (r *Ring[N]) AddNode(node N) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.addNodeUnsafe(node)
}

// AddNodes adds each node in order. It stops at the first error; nodes added
// before the failure stay on the ring.
func (r *Ring[N]) AddNodes(nodes []N) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, node := range nodes {
		if err := r.addNodeUnsafe(node); err != nil {
			return fmt.Errorf("add node %d of %d: %w", i+1, len(nodes), err)
		}
	}

	return nil
}

// RemoveNode deletes the replica positions of the node. Only positions still
// held by the node's identity are deleted: positions overwritten by another
// node are left untouched.
// Returns ErrEmptyRing if the ring holds no position. Removing an unknown
// identity is a no-op, or fails with ErrNodeNotFound when the ring was built WithStrictIdentity.
func (r *Ring[N]) RemoveNode(node N) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.removeNodeUnsafe(node)
}

// RemoveNodes removes each node in order. It stops at the first error; nodes
// removed before the failure stay removed.
func (r *Ring[N]) RemoveNodes(nodes []N) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, node := range nodes {
		if err := r.removeNodeUnsafe(node); err != nil {
			return fmt.Errorf("remove node %d of %d: %w", i+1, len(nodes), err)
		}
	}

	return nil
}

// GetNode returns the node owning the position `key`: the node at the smallest
// position >= key, wrapping around to the smallest position of the ring.
// Returns ErrEmptyRing if the ring holds no position.
func (r *Ring[N]) GetNode(key uint64) (node N, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.positions) == 0 {
		r.collector.IncLookup(metrics.LookupResultEmpty)
		return node, &EmptyRingError{Op: "get node"}
	}

	r.collector.IncLookup(metrics.LookupResultHit)
	return r.read(r.entries[r.positions[r.successor(key)]]), nil
}

// Locate returns the node owning the key hashed with the ring's hasher.
func (r *Ring[N]) Locate(key string) (N, error) {
	return r.GetNode(r.hasher.hashString(key))
}

// GetNodes returns up to count distinct nodes, in clockwise order starting
// with the owner of key. Useful to pick the replicas of a key.
// Returns ErrEmptyRing if the ring holds no position.
func (r *Ring[N]) GetNodes(key uint64, count int) ([]N, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.positions) == 0 {
		r.collector.IncLookup(metrics.LookupResultEmpty)
		return nil, &EmptyRingError{Op: "get nodes"}
	}

	r.collector.IncLookup(metrics.LookupResultHit)

	if count <= 0 {
		return []N{}, nil
	}

	result := make([]N, 0, min(count, len(r.nodes)))
	seen := make(map[string]struct{}, cap(result))

	start := r.successor(key)
	for i := 0; i < len(r.positions) && len(result) < count; i++ {
		node := r.entries[r.positions[(start+i)%len(r.positions)]]
		id := node.Identity()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, r.read(node))
	}

	return result, nil
}

// Has returns true if a node with the same identity is registered.
func (r *Ring[N]) Has(node N) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.nodes[node.Identity()]
	return ok
}

// Nodes returns the registered nodes sorted by identity.
func (r *Ring[N]) Nodes() []N {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(r.nodes))
	nodes := make([]N, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, r.read(r.nodes[id]))
	}
	return nodes
}

// Positions returns a sorted copy of the occupied positions.
func (r *Ring[N]) Positions() []uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.positions)
}

// Len returns the number of occupied positions.
func (r *Ring[N]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.positions)
}

// IsEmpty returns true when the ring holds no position. Lookups and removals
// on an empty ring fail with ErrEmptyRing.
func (r *Ring[N]) IsEmpty() bool {
	return r.Len() == 0
}

// SizeBytes returns an estimation of the memory used by the ring, including node copies.
// Warning: This is slow, it walks every stored value.
func (r *Ring[N]) SizeBytes() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bytes := int64(size.Of(r.positions) + size.Of(r.entries) + size.Of(r.nodes) + size.Of(r.owned))
	r.collector.SetSizeBytes(bytes)
	return bytes
}

// Describe implements the prometheus.Collector interface.
func (r *Ring[N]) Describe(ch chan<- *prometheus.Desc) {
	if prometheusCollector, ok := r.collector.(prometheus.Collector); ok {
		prometheusCollector.Describe(ch)
	}
}

// Collect implements the prometheus.Collector interface.
func (r *Ring[N]) Collect(ch chan<- prometheus.Metric) {
	if prometheusCollector, ok := r.collector.(prometheus.Collector); ok {
		// Triggers a size calculation.
		r.SizeBytes()
		prometheusCollector.Collect(ch)
	}
}

func (r *Ring[N]) addNodeUnsafe(node N) error {
	if r.replicas == 0 {
		return nil
	}

	id := node.Identity()
	if _, ok := r.nodes[id]; ok && r.strictIdentity {
		return &DuplicateIdentityError{Identity: id}
	}

	r.nodes[id] = node.Clone()

	for i := 0; i < r.replicas; i++ {
		position := r.hasher.replicaPosition(id, i)

		if previous, ok := r.entries[position]; !ok {
			r.insertPosition(position)
			r.owned[id]++
		} else if previousID := previous.Identity(); previousID != id {
			r.collector.IncCollision()
			log.Warnw("replica position collision", "position", position, "node", id, "previous", previousID)
			r.releasePosition(previousID)
			r.owned[id]++
		}

		r.entries[position] = node.Clone()
	}

	r.collector.AddPlacements(int64(r.replicas))
	r.updateGauges()
	log.Debugw("node added", "node", id, "positions", len(r.positions))

	return nil
}

func (r *Ring[N]) removeNodeUnsafe(node N) error {
	if len(r.positions) == 0 {
		return &EmptyRingError{Op: "remove node"}
	}

	id := node.Identity()
	if _, ok := r.nodes[id]; !ok && r.strictIdentity {
		return &NodeNotFoundError{Identity: id}
	}

	removed := 0
	for i := 0; i < r.replicas; i++ {
		position := r.hasher.replicaPosition(id, i)

		owner, ok := r.entries[position]
		if !ok || owner.Identity() != id {
			continue
		}

		delete(r.entries, position)
		r.deletePosition(position)
		removed++
	}

	delete(r.nodes, id)
	delete(r.owned, id)

	r.collector.AddRemovals(int64(removed))
	r.updateGauges()
	log.Debugw("node removed", "node", id, "removed", removed, "positions", len(r.positions))

	return nil
}

// successor returns the index of the smallest position >= key, or 0 when key
// is past the last position. The ring must not be empty.
func (r *Ring[N]) successor(key uint64) int {
	idx, _ := slices.BinarySearch(r.positions, key)
	if idx == len(r.positions) {
		idx = 0
	}
	return idx
}

func (r *Ring[N]) insertPosition(position uint64) {
	idx, found := slices.BinarySearch(r.positions, position)
	if !found {
		r.positions = slices.Insert(r.positions, idx, position)
	}
}

func (r *Ring[N]) deletePosition(position uint64) {
	idx, found := slices.BinarySearch(r.positions, position)
	if found {
		r.positions = slices.Delete(r.positions, idx, idx+1)
	}
}

// releasePosition unregisters id once its last position is overwritten.
func (r *Ring[N]) releasePosition(id string) {
	r.owned[id]--
	if r.owned[id] > 0 {
		return
	}

	delete(r.owned, id)
	delete(r.nodes, id)
	log.Warnw("node lost all positions", "node", id)
}

func (r *Ring[N]) read(node N) N {
	if r.cloneOnRead {
		return node.Clone()
	}
	return node
}

func (r *Ring[N]) updateGauges() {
	r.collector.SetNodes(int64(len(r.nodes)))
	r.collector.SetPositions(int64(len(r.positions)))
}

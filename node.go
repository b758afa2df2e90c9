package conshash

// Node is the capability a value needs to be placed on a Ring.
//
// Identity is the string the replica positions are derived from. It is also
// the only thing compared on removal: two values with the same identity are
// the same node for the ring. Identities should not end with a digit: see
// Ring.AddNode for how replica positions are derived.
//
// Clone returns an independent copy. The ring stores one copy per replica
// position, so mutating the value passed to AddNode afterwards does not
// alter what lookups return.
type Node[N any] interface {
	Identity() string
	Clone() N
}

// StringNode is a Node identified by its own string value.
type StringNode string

var _ Node[StringNode] = StringNode("")

// Identity returns the node itself.
func (n StringNode) Identity() string {
	return string(n)
}

// Clone returns the node itself. Strings are immutable.
func (n StringNode) Clone() StringNode {
	return n
}

package conshash

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRing is returned by lookups and removals on a ring without any position.
	ErrEmptyRing = &EmptyRingError{}
	// ErrDuplicateIdentity is returned in strict identity mode when a node is added twice.
	ErrDuplicateIdentity = &DuplicateIdentityError{}
	// ErrNodeNotFound is returned in strict identity mode when removing an unknown node.
	ErrNodeNotFound = &NodeNotFoundError{}
)

// EmptyRingError reports an operation that requires at least one position on the ring.
type EmptyRingError struct {
	Op string
}

func (e *EmptyRingError) Error() string {
	if e.Op == "" {
		return "conshash: ring is empty"
	}
	return fmt.Sprintf("conshash: %s: ring is empty", e.Op)
}

// Is allows errors.Is to match any EmptyRingError, including ErrEmptyRing.
func (e *EmptyRingError) Is(target error) bool {
	var emptyRingError *EmptyRingError
	return errors.As(target, &emptyRingError)
}

// DuplicateIdentityError reports a node whose identity is already registered.
type DuplicateIdentityError struct {
	Identity string
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("conshash: node %q is already registered", e.Identity)
}

// Is allows errors.Is to match any DuplicateIdentityError, including ErrDuplicateIdentity.
func (e *DuplicateIdentityError) Is(target error) bool {
	var duplicateIdentityError *DuplicateIdentityError
	return errors.As(target, &duplicateIdentityError)
}

// NodeNotFoundError reports a node whose identity is not registered.
type NodeNotFoundError struct {
	Identity string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("conshash: node %q is not registered", e.Identity)
}

// Is allows errors.Is to match any NodeNotFoundError, including ErrNodeNotFound.
func (e *NodeNotFoundError) Is(target error) bool {
	var nodeNotFoundError *NodeNotFoundError
	return errors.As(target, &nodeNotFoundError)
}

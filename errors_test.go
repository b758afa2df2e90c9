package conshash

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyRingError(t *testing.T) {
	is := assert.New(t)

	err := &EmptyRingError{Op: "get node"}
	is.Equal("conshash: get node: ring is empty", err.Error())
	is.Equal("conshash: ring is empty", ErrEmptyRing.Error())
	is.ErrorIs(err, ErrEmptyRing)
	is.ErrorIs(fmt.Errorf("wrapped: %w", err), ErrEmptyRing)
	is.NotErrorIs(err, ErrNodeNotFound)

	var target *EmptyRingError
	is.True(errors.As(fmt.Errorf("wrapped: %w", err), &target))
	is.Equal("get node", target.Op)
}

func TestDuplicateIdentityError(t *testing.T) {
	is := assert.New(t)

	err := &DuplicateIdentityError{Identity: "a"}
	is.Equal(`conshash: node "a" is already registered`, err.Error())
	is.ErrorIs(err, ErrDuplicateIdentity)
	is.NotErrorIs(err, ErrEmptyRing)
}

func TestNodeNotFoundError(t *testing.T) {
	is := assert.New(t)

	err := &NodeNotFoundError{Identity: "a"}
	is.Equal(`conshash: node "a" is not registered`, err.Error())
	is.ErrorIs(err, ErrNodeNotFound)
	is.NotErrorIs(err, ErrDuplicateIdentity)
}

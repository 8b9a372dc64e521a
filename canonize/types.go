// Package canonize provides tunable options and error definitions
// for AHU canonicalization over a tree.Tree.
package canonize

import (
	"errors"
	"fmt"
)

// Sentinel errors for canonicalization.
var (
	// ErrTreeNil is returned if a nil tree pointer is passed.
	ErrTreeNil = errors.New("canonize: tree is nil")

	// ErrStartNodeNotFound is returned when the start node index is outside
	// the tree's arena.
	ErrStartNodeNotFound = errors.New("canonize: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("canonize: invalid option supplied")

	// ErrNotATree is returned by validation-enabled runs (and by Isomorphic)
	// when the input is cyclic or disconnected.
	ErrNotATree = errors.New("canonize: input is not a tree")
)

// Option configures canonicalization via functional arguments.
// If an Option is invalid (e.g. negative start node), it is recorded
// internally and surfaced as ErrOptionViolation when Canonize is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a canonicalization run.
type Options struct {
	// StartNode is the arena index discovery starts from. The canonical form
	// does not depend on it; it exists so root-independence can be exercised.
	StartNode int

	// OnRound is called after each peeling round with the 1-based round
	// number and the count of nodes still standing.
	OnRound func(round, remaining int)

	// Validate, when true, checks connectivity and acyclicity before peeling
	// and rejects malformed input with ErrNotATree. When false (the default)
	// malformed input is a documented precondition violation: the run may
	// loop indefinitely or produce a meaningless label.
	Validate bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - discovery starts at node 0
//   - no-op round hook
//   - no input validation.
func DefaultOptions() Options {
	return Options{
		StartNode: 0,
		OnRound:   func(int, int) {},
		Validate:  false,
		err:       nil,
	}
}

// WithStartNode sets the node discovery starts from.
// A negative index is an invalid option → ErrOptionViolation;
// an index beyond the arena is reported at run time as ErrStartNodeNotFound.
func WithStartNode(i int) Option {
	return func(o *Options) {
		if i < 0 {
			o.err = fmt.Errorf("%w: StartNode cannot be negative (%d)", ErrOptionViolation, i)
			return
		}
		o.StartNode = i
	}
}

// WithOnRound registers a callback fired after every peeling round.
func WithOnRound(fn func(round, remaining int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithValidation enables the explicit tree-ness check before peeling.
func WithValidation() Option {
	return func(o *Options) {
		o.Validate = true
	}
}

// SPDX-License-Identifier: MIT
// Package: treecanon/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Constructors MUST NOT panic at runtime.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor's minimum
// (e.g. Caterpillar with an empty spine).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrBadDegree indicates a negative branching parameter (Spider legs,
// KaryTree arity, Caterpillar legs).
var ErrBadDegree = errors.New("builder: degree parameter out of range")

// ErrBadPrufer indicates a Prüfer sequence entry outside [0, n) for the
// implied node count n = len(seq)+2.
var ErrBadPrufer = errors.New("builder: invalid prüfer sequence")

// ErrBadPermutation indicates that the slice passed to Relabel is not a
// permutation of 0..n-1 for the tree's node count n.
var ErrBadPermutation = errors.New("builder: invalid permutation")

// ErrNotATree indicates that ToPrufer was handed a cyclic or disconnected
// input; the encoding is only defined for trees.
var ErrNotATree = errors.New("builder: input is not a tree")

// SPDX-License-Identifier: MIT
// Package: treecanon/builder
//
// Package builder provides deterministic tree constructors for fixtures,
// demos, and tests.
//
// What
//
//   - Shapes: Path, Star, Caterpillar, Spider, KaryTree.
//   - Randomness: Random(n, seed) draws a uniformly random labeled tree via a
//     random Prüfer sequence; identical seeds yield identical trees.
//   - Codecs: FromPrufer / ToPrufer convert between labeled trees on n nodes
//     and Prüfer sequences of length n-2.
//   - Relabel permutes node identities while preserving topology — the
//     natural fixture for relabeling-independence checks.
//
// Design contract (strict)
//
//   - Determinism: same parameters (and seed) ⇒ identical arena, identical
//     edge emission order.
//   - Safety: never panic; constructors return sentinel errors
//     (ErrTooFewNodes, ErrBadDegree, ErrBadPrufer, ErrBadPermutation,
//     ErrNotATree) wrapped with method context.
//   - Every constructor returns a fresh tree.Tree; nothing is shared between
//     calls.
//
// Complexity: all constructors and codecs run in O(n) time and space.
package builder

// Package treecanon answers one question fast: are two unrooted,
// unlabeled trees the same shape?
//
// It implements the classic AHU (Aho–Hopcroft–Ullman) canonical form:
// every tree maps to a string of balanced parentheses such that two
// trees are isomorphic if and only if their strings are identical.
//
// 🌳 What is treecanon?
//
//	A small, pure-Go library built from three subpackages:
//		• tree/     — arena-backed unrooted tree: nodes are indices, edges are index pairs
//		• canonize/ — the canonicalizer: BFS discovery, leaf peeling, label folding
//		• builder/  — deterministic tree fixtures: paths, stars, spiders, random trees, Prüfer codecs
//
// ✨ Why choose treecanon?
//
//   - O(V+E) — each node and edge endpoint is inspected a constant number of times
//   - Deterministic — same topology in, same string out, regardless of node numbering
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – round hooks and opt-in validation for untrusted input
//
// Quick ASCII example:
//
//	    0───2───3───4
//	        │
//	        1
//
//	canonizes to "(()())(())" — and so does every other tree of that shape,
//	no matter how its nodes are numbered or its edges ordered.
//
// Dive into the per-package doc.go files for usage, options, and complexity
// notes.
//
//	go get github.com/katalvlaran/treecanon
package treecanon

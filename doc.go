// Package matrixgraph is a generic, in-memory directed-graph container
// backed by an adjacency matrix: register nodes of any comparable type,
// wire weighted edges between them, walk the graph breadth-first, and
// round-trip it through the Trivial Graph Format.
//
// 🚀 What is matrixgraph?
//
//	A small, single-purpose library that brings together:
//		• Core container: dense node registry + square edge matrix, generic over node and weight types
//		• Mutations: add/remove nodes and edges with O(1) swap-with-last node removal
//		• Lazy traversal: pull-based breadth-first iteration, one GraphEntry at a time
//		• Text codec: TGF (Trivial Graph Format) rendering and parsing with per-line errors
//
// ✨ Why choose matrixgraph?
//
//   - Minimal API, clear, intuitive naming
//   - Compile-time-checked generics – no interface{} in the data path
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – neighbor and traversal order is always ascending by index
//
// Under the hood, everything is organized under three subpackages:
//
//	core/ : NodeSet registry, Graph engine, lazy neighbor sequences, adjacency views
//	bfs/  : lazy breadth-first traversal over any neighbor source
//	tgf/  : Trivial Graph Format marshal/unmarshal
//
// Quick ASCII example:
//
//	    1──▶2
//	    │
//	    ▼
//	    3──▶4
//
//	represents four nodes and three directed edges, exactly the graph built by
//	core.FromEdges([]core.Edge[int, int]{{1, 2, 3}, {3, 4, 7}, {1, 3, 4}}).
//
//	go get github.com/katalvlaran/matrixgraph
package matrixgraph

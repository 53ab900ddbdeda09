// Package bfs provides lazy breadth-first traversal over a neighbor
// source, yielding one GraphEntry per visited node on demand.
//
// What:
//
//   - Traversal is a pull-based iterator: each Next() dequeues one node,
//     emits it together with all of its direct neighbors (ascending index
//     order), and enqueues the neighbors not yet seen.
//   - Works against the small Source capability interface; *core.Graph
//     satisfies it, and Iter is the inference-friendly front door for it.
//   - Each reachable node is visited and emitted exactly once; visit order
//     is standard BFS layer order with ties broken by ascending index.
//
// Why:
//
//   - Explore reachable subgraphs without materializing the whole walk.
//   - Consume traversal at the caller's pace: stop early, no cleanup.
//
// Laziness contract:
//
//	A Traversal is finite and single-use: once Next reports done it stays
//	done, and restarting means constructing a new Traversal. The source
//	graph is borrowed read-only for the whole walk; mutating it mid-walk
//	violates the container's borrow contract (see core package doc).
//
// Emission contract:
//
//	GraphEntry.Edges lists *all* neighbors of the emitted node, visited or
//	not; it reflects graph structure, not traversal novelty.
//
// Complexity (n = reachable nodes, over a full drain):
//
//   - Time:   O(n·m) against an adjacency matrix of dimension m (one row
//     scan per visited node).
//   - Memory: O(n) for the queue and visited set.
//
// Errors:
//
//   - ErrSourceNil        if the source is nil.
//   - ErrStartOutOfRange  if the start index addresses no node. The
//     constructor fails rather than yielding an empty sequence, so a bad
//     start is never silently indistinguishable from an isolated node.
package bfs

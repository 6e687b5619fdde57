// Package cityroute computes single-source shortest paths over weighted,
// undirected graphs of named nodes — city networks, rail maps, anything
// built from "(place, place, distance)" records.
//
// 🚀 What is cityroute?
//
//	A small, thread-safe library that brings together:
//		• Node registry: dedupe places by name, address them by dense ids
//		• Indexed min-heap: a true decrease-key priority queue
//		• Dijkstra engine: one run per source, O((V+E) log V)
//		• Path reconstruction: distance + ordered route between two names
//		• Legacy adapters: tab-delimited city files in, route reports out
//
// ✨ Why choose cityroute?
//
//   - Exact decrease-key – the heap tracks each node's slot, no lazy duplicates
//   - Deterministic – fixed input order yields a fixed route, always
//   - Query isolation – per-run state lives in the result tree, never on the graph
//   - Pure algorithms core – the CLI and file formats are thin adapters
//
// Under the hood, everything is organized in topic packages:
//
//	core/       — Graph, NodeID, Edge: the named-node registry & adjacency
//	minheap/    — indexed binary min-heap with Insert/ExtractMin/DecreaseKey
//	dijkstra/   — the shortest-path engine and Tree/Route results
//	routefile/  — tab-delimited edge & query files, report writer
//	cmd/        — the cityroute command-line front end
//
// Quick ASCII example:
//
//	    York──62──Leeds
//	     │          │
//	    194        312
//	     │          │
//	   London──—──Glasgow
//
//	four cities, four distances; ask for York→Glasgow and get the route.
//
// Dive into README.md for full examples and the file-format reference.
//
//	go get github.com/katalvlaran/cityroute
package cityroute

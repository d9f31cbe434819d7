// Package metro is an in-memory toolkit for answering shortest-route
// questions over weighted transit networks.
//
// What is inside?
//
//	graph/    — dense, thread-safe undirected weighted graph (vertices 0..n-1)
//	pqueue/   — generic min-priority queue with FIFO tie-break
//	dijkstra/ — single-source shortest paths, path reconstruction, options
//	builder/  — deterministic topologies (path, cycle, grid, random, …)
//	loader/   — text edge-list and YAML network formats
//	report/   — aligned text tables, route lines and YAML documents
//	cmd/metro — command-line front end (route, table, generate)
//
// Quick ASCII example:
//
//	Central ──2── Market ──3── Harbor ──7.5── Airport
//	   └───────────────15──────────────────────┘
//
// The cheapest Central → Airport route goes through Market and Harbor
// (total 12.5) rather than the direct 15-minute link.
//
//	go install github.com/katalvlaran/metro/cmd/metro@latest
package metro

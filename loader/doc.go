// Package loader turns textual network descriptions into a populated
// graph.Graph.
//
// Two formats are understood:
//
// Text (edge list). The first significant line is the vertex count; every
// following significant line is one undirected edge "u v w". Blank lines and
// everything after '#' are ignored. The weight is mandatory.
//
//	# three stations on one line
//	3
//	0 1 2.5
//	1 2 4
//
// YAML. Either a plain vertex count or a list of station names (which fixes
// the count). Edge endpoints may be indices or, when stations are named,
// station names.
//
//	stations: [Central, Harbor, Airport]
//	edges:
//	  - {from: Central, to: Harbor, weight: 4}
//	  - {from: 1, to: 2, weight: 11.5}
//
// Malformed input is reported with the 1-based line number and the matching
// sentinel error; graph validation errors (out-of-range endpoints, negative
// weights) are wrapped and can be matched with errors.Is against the graph
// package sentinels.
package loader

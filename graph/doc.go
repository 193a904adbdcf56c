// Package graph holds the in-memory transport network: an undirected graph
// whose nodes are stops and whose edges are segments weighted by travel time in
// minutes. There is at most one edge per pair of stops; self-loops are allowed.
//
// Nodes and adjacency keep insertion order, and iteration follows it.
package graph

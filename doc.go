// Package constellations groups points in 4-dimensional integer space into
// "constellations": maximal sets of points linked through chains of hops of
// Manhattan distance ≤ 3.
//
// 🚀 What is constellations?
//
//	A small toolkit that brings together:
//		• Points: 4-D integer coordinates, L1 distance, record parsing
//		• Clustering: scan-and-merge Clusterer with merge hooks
//		• Alternatives: union-find, BFS and gonum graph components
//		• CLI: read a chart, print "constellations: N"
//
// Under the hood, everything is organized under these packages:
//
//	point/              — Point, Distance, Parse, ReadAll
//	constellation/      — Group, Clusterer, UnionFind, BFS, Graph, Compute
//	internal/config/    — YAML configuration with env overrides
//	internal/cli/       — cobra command + zap logging
//	cmd/constellations/ — the binary
//
// Quick ASCII example (distances along the x axis):
//
//	A ─3─ B ─3─ C          D
//
//	A, B and C form one constellation (A–C is 6, but B links them);
//	D stands alone. Result: 2 constellations.
//
//	go install github.com/katalvlaran/constellations/cmd/constellations@latest
package constellations

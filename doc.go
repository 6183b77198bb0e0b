// Package meshseg partitions polygonal surface meshes into visually
// meaningful regions via spectral clustering over the face-adjacency graph.
//
// 🚀 What is meshseg?
//
//	A deterministic, library-only segmentation pipeline that combines:
//		• Adjacency extraction: edge-keyed incident-face maps over arbitrary polygons
//		• Pairwise distances: geodesic + convexity-weighted angular blends
//		• Affinity: all-pairs shortest paths folded through a Gaussian kernel
//		• Spectral embedding: normalized Laplacian, top-k eigenvectors
//		• Clustering: Lloyd k-means with k-means++ or greedy farthest seeding
//
// ✨ Why choose meshseg?
//
//   - Deterministic – explicit seeds, fixed loop orders, reproducible labels
//   - Strict errors – sentinel errors per stage, matched with errors.Is
//   - Pure algorithm – no UI, no persistence, the host owns the mesh
//   - Configurable – functional options for coefficients, solvers and sinks
//
// Everything is organized under two subpackages:
//
//	mesh/    — read-only mesh contract, indexed implementation, adjacency extraction
//	segment/ — distance, affinity, spectral embedding and k-means stages
//
// Quick ASCII example:
//
//	    ┌──┬──┐
//	    │ 0│ 1│        six faces of a cube unfold into a cross;
//	    ├──┼──┤──┬──┐  Segment(m, 2) labels the two natural halves.
//	    │ 2│ 3│ 4│ 5│
//	    └──┴──┴──┴──┘
//
// Dive into the segment package docs for the full pipeline contract.
//
//	go get github.com/katalvlaran/meshseg
package meshseg

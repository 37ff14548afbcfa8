// Package embedgraph is an in-memory engine for large, sparse, labelled
// graphs backing node- and edge-embedding pipelines.
//
// 🚀 What is embedgraph?
//
//	A compact, immutable graph core plus the samplers embedding pipelines
//	need:
//
//	  • CSR-like store: ingest dirty tabular streams, get a canonical,
//	    read-only layout over dense integer ids
//	  • node2vec walks: weighted second-order sampling, parallelised
//	    across cores, deterministic per seed
//	  • Connectivity: Kruskal spanning forests and the Bader-Cong
//	    parallel spanning arborescence / connected components
//	  • Batch generators: word2vec contexts, co-occurrence matrices,
//	    link-prediction sampling
//
// ✨ Why choose embedgraph?
//
//   - Immutable by design  — build once, read concurrently from every core
//   - Reproducible         — one u64 seed fixes every walk and every batch
//   - Cache-conscious      — sorted encoded edges, contiguous outbound ranges
//   - Pure Go              — no cgo
//
// Everything is organized under focused subpackages:
//
//	vocabulary/   — string ↔ dense-id bijections, node/edge type labels
//	graph/        — the immutable CSR core and its opt-in fast-walk columns
//	graphbuilder/ — record-stream ingestion, dedup, mirroring, validation
//	walk/         — the biased transition engine and the parallel walk driver
//	connectivity/ — Kruskal and Bader-Cong spanning forests / components
//	batch/        — word2vec, co-occurrence and link-prediction generators
//	metrics/      — degree statistics, density, textual reports
//
// Quick ASCII example:
//
//	    A───B───C───D
//
//	a path over four nodes becomes six stored edges after mirroring,
//	outbounds [1,3,5,6], density 0.5.
//
// Dive into the package docs for full examples and the concurrency
// contracts each routine honours.
//
//	go get github.com/katalvlaran/embedgraph
package embedgraph

// Package graphbuilder ingests unsorted, possibly dirty record streams and
// produces a canonical graph.Graph: dedup, sort, self-loop handling, and
// singleton detection all happen here so that graph.Graph itself never has
// to validate its own invariants at read time.
//
// The input contract is expressed as iter.Seq[EdgeRecordResult] /
// iter.Seq[NodeRecordResult] - Go's standard range-over-func iterator shape
// - so any CSV/TSV reader, in-memory slice, or generated stream can feed
// Build without this package knowing anything about file formats.
package graphbuilder

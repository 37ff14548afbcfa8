// Package metrics implements the read-only reporting layer over
// graph.Graph: degree statistics (mean, median, mode), density, self-loop
// rate, singleton count, and a textual Report.String() summary.
package metrics

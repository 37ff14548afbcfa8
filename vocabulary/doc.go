// Package vocabulary provides the bijection between external string keys and
// the dense integer ids the graph core operates on, plus LabeledVocabulary,
// which layers a per-element assignment sequence and per-label counts over a
// Vocabulary for node-types and edge-types.
//
// A Vocabulary runs in one of two modes, fixed at construction:
//
//   - symbolic: ids are assigned in first-seen insertion order, 0, 1, 2, ...
//   - numeric: the caller asserts every name is itself a decimal unsigned
//     integer; the id equals the parsed value and the forward map is a thin
//     parse-and-check, never an allocation of a new id.
//
// In both modes the reverse mapping (id -> name) is built lazily on first
// use, guarded by a sync.Once, since many pipelines only ever look up by
// name and never need to print an id back out.
package vocabulary

// Package batch implements the batch generators that turn walk.Generate's
// output (or, for link prediction, the graph directly) into the three
// training-ready shapes embedding pipelines consume: word2vec context
// windows, a symmetric co-occurrence CSR, and permuted link-prediction
// samples over a chosen edge-embedding method.
//
// Nothing here trains a model; these are pure transforms over already-
// computed walks and embeddings - batch is the thin seam the core exposes
// toward downstream trainers.
package batch

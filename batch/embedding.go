// SPDX-License-Identifier: MIT
//
// File: embedding.go
// Role: the tagged EmbeddingMethod variant the link prediction generator
// uses to combine two node embeddings into one edge feature vector.
package batch

import "math"

// EmbeddingMethod selects how two node embeddings are combined into one
// edge-feature vector for link prediction.
type EmbeddingMethod int

const (
	// Hadamard multiplies the two vectors element-wise.
	Hadamard EmbeddingMethod = iota
	// Average takes the element-wise mean.
	Average
	// Sum takes the element-wise sum.
	Sum
	// L1 takes the signed element-wise difference (src - dst).
	L1
	// AbsoluteL1 takes the element-wise absolute difference.
	AbsoluteL1
	// L2 takes the element-wise squared difference.
	L2
	// Concatenate appends dst's vector after src's.
	Concatenate
)

// String names the method, for diagnostics and test table labels.
func (m EmbeddingMethod) String() string {
	switch m {
	case Hadamard:
		return "Hadamard"
	case Average:
		return "Average"
	case Sum:
		return "Sum"
	case L1:
		return "L1"
	case AbsoluteL1:
		return "AbsoluteL1"
	case L2:
		return "L2"
	case Concatenate:
		return "Concatenate"
	default:
		return "Unknown"
	}
}

// combineEmbeddings applies method to the (src, dst) node embedding pair.
// Every method but Concatenate requires equal-length inputs.
func combineEmbeddings(method EmbeddingMethod, u, v []float64) ([]float64, error) {
	if method == Concatenate {
		out := make([]float64, len(u)+len(v))
		copy(out, u)
		copy(out[len(u):], v)

		return out, nil
	}

	if len(u) != len(v) {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, len(u))
	for i := range u {
		switch method {
		case Hadamard:
			out[i] = u[i] * v[i]
		case Average:
			out[i] = (u[i] + v[i]) / 2
		case Sum:
			out[i] = u[i] + v[i]
		case L1:
			out[i] = u[i] - v[i]
		case AbsoluteL1:
			out[i] = math.Abs(u[i] - v[i])
		case L2:
			d := u[i] - v[i]
			out[i] = d * d
		default:
			return nil, ErrUnknownEmbeddingMethod
		}
	}

	return out, nil
}

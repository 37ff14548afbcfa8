// SPDX-License-Identifier: MIT
package metrics

import "errors"

// ErrNilGraph indicates Compute was called with a nil *graph.Graph.
var ErrNilGraph = errors.New("metrics: graph is nil")

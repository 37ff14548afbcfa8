// SPDX-License-Identifier: MIT
package graph

import "sort"

// sortByDegreeDesc orders ids by descending degree(id), breaking ties by
// ascending NodeID so cache selection is deterministic for a fixed graph.
func sortByDegreeDesc(ids []NodeID, degree func(NodeID) uint64) {
	sort.Slice(ids, func(i, j int) bool {
		di, dj := degree(ids[i]), degree(ids[j])
		if di != dj {
			return di > dj
		}

		return ids[i] < ids[j]
	})
}

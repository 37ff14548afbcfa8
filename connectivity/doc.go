// Package connectivity implements the two spanning-forest routines over a
// graph.Graph: a sequential Kruskal forest with union-find over dense ids,
// and the parallel Bader-Cong spanning arborescence / connected-components
// scan driven by shared work-stealing stacks and a lockless write-once
// parents array.
package connectivity

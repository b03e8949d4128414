// Package inspect checks the structure of a carved grid: how many passages it
// has, whether every cell is reachable, whether any loop exists, and how its
// dead ends and boundary openings are distributed.
//
// Analyze walks the open passages with BFS and summarizes the grid in a
// Report; Report.Perfect tells whether the grid is a spanning tree.
// Complexity: O(W×H) time and memory.
package inspect

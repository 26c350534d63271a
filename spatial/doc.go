// Package spatial provides the 5-dimensional bucket grid EdgeFinder uses
// for O(1)-expected candidate-partner lookup.
//
// Cells are keyed by (quantised R, quantised G, quantised B, current mod
// value, target mod value). Storage is sparse: only populated cells
// exist, backed by a map rather than a dense 5-D array, since the full
// address space (≈((256>>p)³ · mod_factor²) cells) is almost always
// mostly empty for real batches — the same lazy-cell reasoning the
// teacher corpus applies to its own grid-graph package.
package spatial

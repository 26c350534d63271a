// Package edgefind enumerates candidate sample-swap edges within one
// batch of vertices, using a spatial.Index for neighbourhood lookup.
//
// For each message-bearing sample, candidates are samples whose current
// mod value equals the sample's target and whose target equals the
// sample's current mod value — so that swapping the pair advances both
// toward their targets in one move. Candidates are searched in a
// quantised colour window of half-width max_delta = distance_max >> p
// around the sample's own quantised colour.
//
// Duplicate suppression (spec.md §4.4's asymmetry rule): the X axis is
// scanned only upward from the sample's own quantised X. Every cell whose
// quantised X equals the sample's own (any Y, any Z in the window) is
// scanned with a vertex_id > u filter, because a partner in that column
// scans the same column and would otherwise find this sample too. Cells
// with a strictly greater quantised X are scanned without a filter: the
// partner's own upward scan starts above this sample's X and never
// reaches back to it. Each mutual-partner sample pair is therefore
// registered exactly once.
package edgefind

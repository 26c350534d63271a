// Package match implements the greedy minimum-weight matching over one
// batch's edge set (Matcher), and the bounded reserve-matching passes
// that pair leftover message vertices against reserve vertices
// (ReserveMatcher).
//
// The matching heuristic — sort by edge-degree ascending, then take each
// vertex's lightest edge to a still-valid partner — concentrates scarce
// choices where they are most constrained, the same heuristic the
// teacher corpus's Christofides implementation applies to minimum-weight
// matching on the MST's odd-degree vertex set.
package match

// Package circuit performs DC nodal analysis of resistive circuits with
// ideal voltage sources.
//
// A Circuit is a caller-owned description: a bounded arena of nodes
// (stable integer ids 0..MaxNodes-1, tombstoned on delete) plus a bounded
// list of two-terminal components. Deleting a node eagerly prunes every
// component incident to it, so a component whose endpoint disappeared is
// never solved.
//
// Solve assembles the conductance matrix G and injected-current vector I
// with one KCL row per existing non-ground node, delegates to linsolve,
// and derives per-component branch currents:
//
//   - Resistor R between n1,n2: conductance 1/R stamped on the diagonal of
//     each free endpoint, −1/R on the joining off-diagonals. Terms for a
//     ground endpoint are skipped (the ground row/column is implicitly
//     eliminated).
//   - Ideal voltage source with one ground terminal: the non-ground node's
//     row is overwritten with an identity row and the RHS is set to ±value
//     depending on which terminal is ground, forcing that node's potential
//     directly. Ideal sources have no branch conductance, so they cannot be
//     stamped as KCL terms.
//   - Ideal voltage source between two non-ground nodes: a Norton
//     equivalent with a fixed 0.01 Ω internal resistance in parallel with
//     an injected current value/0.01. This keeps the system a constant
//     linear one (no auxiliary branch-current unknowns) at the price of a
//     small voltage error — under 1% for the default constant.
//
// Known limitation: the current through an ideal voltage source is a
// dependent variable that plain nodal analysis does not solve; it is
// reported as 0 in the result. CurrentSource is declared for completeness
// but is reserved: no solver stamps it.
//
// Errors are sentinels (ErrInsufficientCircuit, ErrNoFreeNode,
// ErrUnsolvableCircuit, ...). ErrUnsolvableCircuit wraps linsolve.ErrSingular,
// so errors.Is works against either.
package circuit

// Package quad builds and evaluates the quadrature rules attached to
// CKD spectral bins.
//
// What:
//
//   - Quad stores an immutable set of nodes and weights defined on the
//     reference interval [-1, 1].
//   - Named recipes: NewGaussLegendre (nodes/weights from gonum) and
//     NewGaussLobatto (endpoint-including rule, interior nodes at the
//     roots of P'ₙ₋₁). New dispatches on the textual type found in
//     dataset attributes ("gauss_legendre", "gauss_lobatto").
//   - EvalNodes rescales nodes to an arbitrary closed interval [a, b]
//     through the affine map x' = ½(a + b + (b − a)x); Integrate applies
//     the matching Jacobian ½(b − a) exactly once.
//
// Why:
//
//   - A CKD bin represents a coefficient's spectral variation by a small
//     set of quadrature points; the rule is the contract between bin
//     construction and the downstream radiative evaluation loop.
//
// Identity:
//
//   - A Quad is shared by pointer across every bin of a bin set; the
//     ckd package validates that sharing by pointer identity, never by
//     value equality. Construct one rule per bin set and pass it around.
//
// Errors:
//
//   - ErrUnknownType: quadrature type string not recognized by New.
//   - ErrBadOrder: nonpositive point count (Lobatto needs at least 2).
//   - ErrLengthMismatch: nodes/weights (or values/weights) length skew.
package quad

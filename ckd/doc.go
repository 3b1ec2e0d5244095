// Package ckd models correlated-k distribution (CKD) spectral
// discretizations: bins, bin sets, quadrature-point addressing, and
// the selection machinery that picks the bins a simulation run covers.
//
// What:
//
//   - Bin: an immutable spectral sub-interval [wmin, wmax) carrying a
//     shared quadrature rule; expands into Bindex values, one per
//     quadrature point.
//   - Bindex: one (bin, quadrature-point-index) pair — the atomic unit
//     at which radiative properties are evaluated downstream.
//   - BinSet: a canonically ordered collection of bins that all share
//     one quadrature rule instance. Ordering is by (wmin, wmax, id) and
//     is load-bearing: consumers assume ascending wavelength order.
//   - Bin filters: composable predicates (all, ids, interval) combined
//     with logical OR by FilterBins; SelectBins adds a data-driven spec
//     dialect (plain strings, predicates, [type, kwargs] pairs,
//     {type, filter_kwargs} mappings) that loads directly from YAML.
//   - Registry: a memoizing bin-set factory over a data.Store. One id
//     maps to one BinSet pointer for the life of the registry, which
//     anchors the quadrature-sharing invariant process-wide.
//
// Identity over equality:
//
//   - Two quadrature rules with identical nodes and weights are NOT
//     interchangeable: a BinSet validates that every bin references the
//     same *quad.Quad pointer as the set itself. Value equality would
//     silently let two discretizations mix; pointer identity makes the
//     mistake loud at construction time.
//
// Errors:
//
//   - ErrBinBounds: bin with wmin >= wmax.
//   - ErrNilQuad, ErrNilBin: missing required references.
//   - ErrQuadMismatch: a bin referencing a foreign quadrature rule.
//   - ErrBadInterval: interval filter with wmin > wmax.
//   - ErrUnknownFilter: bin filter type string not recognized.
//   - ErrBadSelector: selection spec of unhandled shape.
//   - ErrBadConvert: loose-input conversion given an unconvertible value.
package ckd

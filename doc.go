// Package spectral is a toolkit for correlated-k distribution (CKD)
// spectral discretizations: named spectral bins, quadrature rules, and
// the selection machinery that drives multi-bin radiative-transfer
// simulations one spectral point at a time.
//
// What it gives you:
//
//	• Quadrature rules: Gauss-Legendre and Gauss-Lobatto nodes/weights
//	  on [-1, 1], with interval-rescaled evaluation and integration
//	• Spectral bins: immutable (wmin, wmax) sub-intervals carrying one
//	  shared quadrature rule, expanded into (bin, node-index) pairs
//	• Bin sets: canonically ordered, quadrature-consistent collections
//	  addressable by identifier and safe to cache process-wide
//	• Bin selection: a small composable filter surface (ids, intervals,
//	  arbitrary predicates) with a data-driven spec dialect that loads
//	  straight from YAML configuration
//	• Datasets: a NetCDF-backed store serving bin-set definitions by
//	  logical path, with a memoizing registry on top
//
// Everything is organized under four subpackages:
//
//	units/ — wavelength-dimension quantities (magnitude + unit)
//	quad/  — quadrature rule construction and evaluation
//	ckd/   — Bin, Bindex, BinSet, bin selection, bin-set registry
//	data/  — dataset store interfaces and the NetCDF reader
//
// All values are immutable after construction. A BinSet published by
// the registry is shared freely across goroutines without locking;
// every Bin of a set references the same quadrature rule object, and
// the registry guarantees one BinSet instance per identifier for the
// life of the process.
//
//	go get github.com/spectralkit/spectral
package spectral

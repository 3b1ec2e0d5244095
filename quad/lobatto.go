// SPDX-License-Identifier: MIT

package quad

import "math"

// Gauss-Lobatto nodes and weights on [-1, 1].
//
// The n-point Lobatto rule fixes its first and last nodes at ∓1; the
// n-2 interior nodes are the roots of P'ₙ₋₁, the derivative of the
// Legendre polynomial of degree n-1. Roots are located by Newton
// iteration seeded with Chebyshev-Gauss-Lobatto points, which is
// accurate enough that a handful of iterations reaches machine
// precision for any practical point count. Weights follow the closed
// form wᵢ = 2 / (n(n-1)·Pₙ₋₁(xᵢ)²), which also covers the endpoints.

const (
	lobattoTol     = 1e-15
	lobattoMaxIter = 100
)

// legendre evaluates Pₙ and P'ₙ at x via the three-term recurrence.
func legendre(n int, x float64) (p, dp float64) {
	if n == 0 {
		return 1, 0
	}
	pPrev, p := 1.0, x
	for k := 2; k <= n; k++ {
		pPrev, p = p, ((2*float64(k)-1)*x*p-(float64(k)-1)*pPrev)/float64(k)
	}
	// P'ₙ(x) = n (x Pₙ - Pₙ₋₁) / (x² - 1), valid for |x| < 1.
	dp = float64(n) * (x*p - pPrev) / (x*x - 1)
	return p, dp
}

// lobatto returns the ascending nodes and weights of the n-point rule.
// The caller guarantees n >= 2.
func lobatto(n int) (nodes, weights []float64) {
	nodes = make([]float64, n)
	weights = make([]float64, n)

	deg := n - 1 // degree of the Legendre polynomial whose derivative vanishes at interior nodes
	endpointWeight := 2 / (float64(n) * float64(deg))

	nodes[0], nodes[n-1] = -1, 1
	weights[0], weights[n-1] = endpointWeight, endpointWeight

	for i := 1; i < n-1; i++ {
		// Chebyshev-Gauss-Lobatto seed, mapped to ascending order.
		x := -math.Cos(math.Pi * float64(i) / float64(deg))
		for iter := 0; iter < lobattoMaxIter; iter++ {
			p, dp := legendre(deg, x)
			// d²Pₙ from the Legendre differential equation:
			// (1-x²) P'' = 2x P' - n(n+1) P.
			d2p := (2*x*dp - float64(deg)*float64(deg+1)*p) / (1 - x*x)
			step := dp / d2p
			x -= step
			if math.Abs(step) < lobattoTol {
				break
			}
		}
		p, _ := legendre(deg, x)
		nodes[i] = x
		weights[i] = 2 / (float64(n) * float64(deg) * p * p)
	}
	return nodes, weights
}

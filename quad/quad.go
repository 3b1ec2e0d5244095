// SPDX-License-Identifier: MIT

package quad

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	gquad "gonum.org/v1/gonum/integrate/quad"
)

// Sentinel errors for quadrature construction and evaluation.
var (
	// ErrUnknownType indicates a quadrature type string New does not recognize.
	ErrUnknownType = errors.New("quad: unknown quadrature type")

	// ErrBadOrder indicates a point count for which the requested rule is undefined.
	ErrBadOrder = errors.New("quad: invalid number of quadrature points")

	// ErrLengthMismatch indicates nodes and weights (or sampled values and
	// weights) of differing lengths.
	ErrLengthMismatch = errors.New("quad: length mismatch")
)

// Type enumerates the supported quadrature rule kinds.
type Type int

const (
	// GaussLegendre is the open Gauss-Legendre rule (no endpoint nodes).
	GaussLegendre Type = iota

	// GaussLobatto is the closed Gauss-Lobatto rule (nodes include ±1).
	GaussLobatto
)

// typeNames maps a Type to the textual form used in dataset attributes.
var typeNames = [...]string{
	GaussLegendre: "gauss_legendre",
	GaussLobatto:  "gauss_lobatto",
}

// String returns the dataset-attribute form of t.
func (t Type) String() string {
	if t < GaussLegendre || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType resolves a quadrature type string as found in dataset
// attributes. Returns ErrUnknownType for anything unrecognized.
func ParseType(s string) (Type, error) {
	switch s {
	case "gauss_legendre":
		return GaussLegendre, nil
	case "gauss_lobatto":
		return GaussLobatto, nil
	default:
		return GaussLegendre, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Interval is a closed integration interval [A, B]. A nil *Interval in
// EvalNodes and Integrate selects the reference interval [-1, 1].
type Interval struct {
	A, B float64
}

// Quad is an immutable quadrature rule: ordered nodes and matching
// weights on the reference interval [-1, 1].
type Quad struct {
	typ     Type
	nodes   []float64
	weights []float64
}

// newQuad validates and freezes a rule. Inputs are copied.
func newQuad(typ Type, nodes, weights []float64) (*Quad, error) {
	if len(nodes) != len(weights) {
		return nil, fmt.Errorf("%w: %d nodes vs %d weights", ErrLengthMismatch, len(nodes), len(weights))
	}
	q := &Quad{
		typ:     typ,
		nodes:   append([]float64(nil), nodes...),
		weights: append([]float64(nil), weights...),
	}
	return q, nil
}

// NewExplicit builds a rule directly from nodes and weights defined on
// [-1, 1]. Both slices are copied. Fails with ErrLengthMismatch when
// the lengths differ.
func NewExplicit(typ Type, nodes, weights []float64) (*Quad, error) {
	return newQuad(typ, nodes, weights)
}

// NewGaussLegendre builds an n-point Gauss-Legendre rule on [-1, 1].
// Nodes and weights come from gonum's fixed-location Legendre rule.
func NewGaussLegendre(n int) (*Quad, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: gauss_legendre needs n >= 1, got %d", ErrBadOrder, n)
	}
	nodes := make([]float64, n)
	weights := make([]float64, n)
	gquad.Legendre{}.FixedLocations(nodes, weights, -1, 1)
	return newQuad(GaussLegendre, nodes, weights)
}

// NewGaussLobatto builds an n-point Gauss-Lobatto rule on [-1, 1]. The
// first and last nodes are exactly -1 and +1; interior nodes are the
// roots of P'ₙ₋₁ (see lobatto.go).
func NewGaussLobatto(n int) (*Quad, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: gauss_lobatto needs n >= 2, got %d", ErrBadOrder, n)
	}
	nodes, weights := lobatto(n)
	return newQuad(GaussLobatto, nodes, weights)
}

// New builds a rule of the given textual type with n points. The type
// strings match the dataset attribute vocabulary ("gauss_legendre",
// "gauss_lobatto").
func New(typ string, n int) (*Quad, error) {
	t, err := ParseType(typ)
	if err != nil {
		return nil, err
	}
	switch t {
	case GaussLobatto:
		return NewGaussLobatto(n)
	default:
		return NewGaussLegendre(n)
	}
}

// Type returns the rule kind.
func (q *Quad) Type() Type { return q.typ }

// Len returns the number of quadrature points.
func (q *Quad) Len() int { return len(q.nodes) }

// Nodes returns a copy of the reference-interval nodes.
func (q *Quad) Nodes() []float64 {
	return append([]float64(nil), q.nodes...)
}

// Weights returns a copy of the weights.
func (q *Quad) Weights() []float64 {
	return append([]float64(nil), q.weights...)
}

// EvalNodes returns the nodes rescaled to interval. A nil interval is
// the identity (reference interval [-1, 1]).
func (q *Quad) EvalNodes(interval *Interval) []float64 {
	if interval == nil {
		return q.Nodes()
	}
	a, b := interval.A, interval.B
	out := make([]float64, len(q.nodes))
	for i, x := range q.nodes {
		out[i] = 0.5 * (a + b + (b-a)*x)
	}
	return out
}

// Integrate evaluates the rule against function values sampled at the
// (rescaled) nodes: dot(weights, values), times the affine Jacobian
// ½(B − A) when an interval is given. len(values) must equal Len.
func (q *Quad) Integrate(values []float64, interval *Interval) (float64, error) {
	if len(values) != len(q.weights) {
		return 0, fmt.Errorf("%w: %d values vs %d weights", ErrLengthMismatch, len(values), len(q.weights))
	}
	sum := floats.Dot(q.weights, values)
	if interval == nil {
		return sum, nil
	}
	return 0.5 * (interval.B - interval.A) * sum, nil
}

// String returns a short summary, e.g. "Quad(type=gauss_legendre, n=16)".
func (q *Quad) String() string {
	return fmt.Sprintf("Quad(type=%s, n=%d)", q.typ, len(q.nodes))
}

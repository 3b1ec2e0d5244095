// SPDX-License-Identifier: MIT

package ckd

import (
	"fmt"

	"github.com/spectralkit/spectral/quad"
	"github.com/spectralkit/spectral/units"
)

// Bin is an immutable spectral sub-interval carrying one quadrature
// rule. Bins are always owned by exactly one BinSet after construction
// and share their rule with every other bin of that set by pointer.
type Bin struct {
	id   string
	wmin units.Quantity
	wmax units.Quantity
	quad *quad.Quad
}

// NewBin builds a bin. Fails with ErrBinBounds unless wmin < wmax
// strictly (comparison is unit-aware) and with ErrNilQuad when no
// quadrature rule is given.
func NewBin(id string, wmin, wmax units.Quantity, q *quad.Quad) (*Bin, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: bin %q", ErrNilQuad, id)
	}
	if !wmin.Less(wmax) {
		return nil, fmt.Errorf("%w: bin %q has wmin=%s, wmax=%s", ErrBinBounds, id, wmin, wmax)
	}
	return &Bin{id: id, wmin: wmin, wmax: wmax, quad: q}, nil
}

// ID returns the bin identifier, unique within its owning bin set.
func (b *Bin) ID() string { return b.id }

// Wmin returns the lower spectral bound.
func (b *Bin) Wmin() units.Quantity { return b.wmin }

// Wmax returns the upper spectral bound.
func (b *Bin) Wmax() units.Quantity { return b.wmax }

// Quad returns the quadrature rule shared with the owning bin set.
func (b *Bin) Quad() *quad.Quad { return b.quad }

// Width returns wmax - wmin.
func (b *Bin) Width() units.Quantity {
	return b.wmax.Sub(b.wmin)
}

// Wcenter returns the central wavelength (wmin + wmax) / 2.
func (b *Bin) Wcenter() units.Quantity {
	return b.wmin.Add(b.wmax).Mul(0.5)
}

// Interval returns the bin bounds as a quadrature integration interval
// expressed in unit, ready for quad.EvalNodes / quad.Integrate.
func (b *Bin) Interval(unit units.Unit) quad.Interval {
	return quad.Interval{A: b.wmin.MagAs(unit), B: b.wmax.MagAs(unit)}
}

// Bindexes returns the (bin, index) pairs owned by this bin, one per
// quadrature point, in node order.
func (b *Bin) Bindexes() []Bindex {
	out := make([]Bindex, b.quad.Len())
	for i := range out {
		out[i] = Bindex{Bin: b, Index: i}
	}
	return out
}

// String renders the bin as "id [wmin, wmax]".
func (b *Bin) String() string {
	return fmt.Sprintf("%s [%s, %s]", b.id, b.wmin, b.wmax)
}

// Bindex is a (bin, quadrature-point-index) pair: the atomic unit of
// spectral evaluation. It is a pure lookup key; Index is deliberately
// not validated against the bin's quadrature point count, so an
// out-of-range index is a caller bug that surfaces at use, not at
// construction.
type Bindex struct {
	Bin   *Bin
	Index int
}

// String renders the pair as "id:index".
func (bx Bindex) String() string {
	if bx.Bin == nil {
		return fmt.Sprintf("<nil>:%d", bx.Index)
	}
	return fmt.Sprintf("%s:%d", bx.Bin.ID(), bx.Index)
}

// SPDX-License-Identifier: MIT

package ckd

import (
	"fmt"
	"sort"

	"github.com/spectralkit/spectral/quad"
	"github.com/spectralkit/spectral/units"
)

// BinSet is an immutable, canonically ordered collection of bins
// sharing one quadrature rule instance. It is the addressable,
// cacheable, filterable spectral discretization handed to the
// simulation loop.
type BinSet struct {
	id   string
	quad *quad.Quad
	bins []*Bin
}

// NewBinSet builds a bin set. Bins are deduplicated by identity and
// canonically sorted by (wmin, wmax, id) regardless of input order.
// Fails with ErrNilQuad or ErrNilBin on missing references, and with
// ErrQuadMismatch when any bin references a quadrature rule other than
// q — identity is compared, not value, because a bin set is one
// discretization applied uniformly and mixing rules would silently
// break integration downstream.
func NewBinSet(id string, q *quad.Quad, bins []*Bin) (*BinSet, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: bin set %q", ErrNilQuad, id)
	}
	for i, b := range bins {
		if b == nil {
			return nil, fmt.Errorf("%w: bin set %q, position %d", ErrNilBin, id, i)
		}
		if b.Quad() != q {
			return nil, fmt.Errorf("%w: bin set %q, bin %q", ErrQuadMismatch, id, b.ID())
		}
	}
	return &BinSet{id: id, quad: q, bins: sortBins(bins)}, nil
}

// sortBins returns a copy of bins deduplicated by pointer identity and
// sorted by the canonical (wmin, wmax, id) key. Applied on every
// construction and on every selection result; caller-supplied order is
// never trusted.
func sortBins(bins []*Bin) []*Bin {
	seen := make(map[*Bin]struct{}, len(bins))
	out := make([]*Bin, 0, len(bins))
	for _, b := range bins {
		if _, dup := seen[b]; dup {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := a.Wmin().Cmp(b.Wmin()); c != 0 {
			return c < 0
		}
		if c := a.Wmax().Cmp(b.Wmax()); c != 0 {
			return c < 0
		}
		return a.ID() < b.ID()
	})
	return out
}

// ID returns the bin set identifier, used as the registry cache key.
func (s *BinSet) ID() string { return s.id }

// Quad returns the quadrature rule shared by every bin of the set.
func (s *BinSet) Quad() *quad.Quad { return s.quad }

// Len returns the number of bins.
func (s *BinSet) Len() int { return len(s.bins) }

// Bins returns the bins in canonical order. The slice is a copy; the
// bins themselves are shared and immutable.
func (s *BinSet) Bins() []*Bin {
	return append([]*Bin(nil), s.bins...)
}

// BinIDs returns the bin identifiers in canonical order.
func (s *BinSet) BinIDs() []string {
	out := make([]string, len(s.bins))
	for i, b := range s.bins {
		out[i] = b.ID()
	}
	return out
}

// BinWmins returns the lower bounds in canonical order, expressed in
// the default wavelength unit (nanometers).
func (s *BinSet) BinWmins() []float64 {
	out := make([]float64, len(s.bins))
	for i, b := range s.bins {
		out[i] = b.Wmin().MagAs(units.Nanometer)
	}
	return out
}

// BinWmaxs returns the upper bounds in canonical order, expressed in
// the default wavelength unit (nanometers).
func (s *BinSet) BinWmaxs() []float64 {
	out := make([]float64, len(s.bins))
	for i, b := range s.bins {
		out[i] = b.Wmax().MagAs(units.Nanometer)
	}
	return out
}

// Bindexes returns the bindexes of every bin in canonical order, the
// flat sequence the spectral evaluation loop walks.
func (s *BinSet) Bindexes() []Bindex {
	out := make([]Bindex, 0, len(s.bins)*s.quad.Len())
	for _, b := range s.bins {
		out = append(out, b.Bindexes()...)
	}
	return out
}

// FilterBins returns the bins accepted by at least one of the given
// filters (logical OR), re-sorted into canonical order. No filters
// selects nothing.
func (s *BinSet) FilterBins(filters ...BinFilter) []*Bin {
	var selected []*Bin
	for _, b := range s.bins {
		for _, accept := range filters {
			if accept(b) {
				selected = append(selected, b)
				break
			}
		}
	}
	return sortBins(selected)
}

// SelectBins resolves loose selection specs into filters and applies
// them via FilterBins. Per spec item:
//
//   - a string selects the bin with that identifier;
//   - a BinFilter (or bare func(*Bin) bool) is used verbatim;
//   - a []any{type, kwargs} pair is dispatched through NewBinFilter;
//   - a map[string]any{"type": ..., "filter_kwargs": ...} likewise;
//   - a Selector (parsed from YAML) carries any of the above.
//
// Anything else fails with ErrBadSelector. Dispatch is exact:
// selection specs are authored as plain data, so ambiguous shapes are
// rejected rather than coerced.
func (s *BinSet) SelectBins(specs ...any) ([]*Bin, error) {
	filters := make([]BinFilter, 0, len(specs))
	for _, spec := range specs {
		f, err := selectorFilter(spec)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return s.FilterBins(filters...), nil
}

// selectorFilter resolves one selection spec into a BinFilter.
func selectorFilter(spec any) (BinFilter, error) {
	switch v := spec.(type) {
	case string:
		return FilterIDs(v), nil

	case BinFilter:
		return v, nil

	case func(*Bin) bool:
		return v, nil

	case Selector:
		return selectorFilter(v.Spec())

	case *Selector:
		return selectorFilter(v.Spec())

	case []any:
		if len(v) != 2 {
			return nil, fmt.Errorf("%w: filter pair must have 2 elements, got %d", ErrBadSelector, len(v))
		}
		typ, err := toString(v[0])
		if err != nil {
			return nil, err
		}
		kwargs, err := kwargsArg(v[1])
		if err != nil {
			return nil, err
		}
		return NewBinFilter(typ, kwargs)

	case map[string]any:
		for key := range v {
			if key != "type" && key != "filter_kwargs" {
				return nil, fmt.Errorf("%w: unexpected key %q", ErrBadSelector, key)
			}
		}
		rawType, ok := v["type"]
		if !ok {
			return nil, fmt.Errorf("%w: filter mapping needs a type", ErrBadSelector)
		}
		typ, err := toString(rawType)
		if err != nil {
			return nil, err
		}
		kwargs, err := kwargsArg(v["filter_kwargs"])
		if err != nil {
			return nil, err
		}
		return NewBinFilter(typ, kwargs)

	default:
		return nil, fmt.Errorf("%w: %v (%T)", ErrBadSelector, spec, spec)
	}
}

// kwargsArg normalizes a filter keyword-argument value: nil means no
// arguments.
func kwargsArg(v any) (map[string]any, error) {
	switch t := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %v (%T) is not a keyword mapping", ErrBadSelector, v, v)
	}
}

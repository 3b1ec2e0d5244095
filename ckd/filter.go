// SPDX-License-Identifier: MIT

package ckd

import (
	"fmt"

	"github.com/spectralkit/spectral/units"
)

// BinFilter is a bin predicate. Filters are pure and never mutate the
// bin they inspect.
type BinFilter func(*Bin) bool

// FilterAll accepts every bin unconditionally.
func FilterAll() BinFilter {
	return func(*Bin) bool { return true }
}

// FilterIDs accepts a bin iff its identifier is one of ids.
func FilterIDs(ids ...string) BinFilter {
	member := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		member[id] = struct{}{}
	}
	return func(b *Bin) bool {
		_, ok := member[b.ID()]
		return ok
	}
}

// FilterInterval accepts bins lying within [wmin, wmax].
//
// Fails with ErrBadInterval when wmin > wmax. The degenerate point
// interval wmin == wmax accepts only bins that contain the point
// strictly — a bin merely touching it at an edge is never selected.
// With endpoints true (overlap mode), a bin is accepted when fully
// contained in [wmin, wmax] or when either interval bound falls
// strictly inside the bin; with endpoints false, only full containment
// qualifies.
func FilterInterval(wmin, wmax units.Quantity, endpoints bool) (BinFilter, error) {
	if wmax.Less(wmin) {
		return nil, fmt.Errorf("%w: got wmin=%s, wmax=%s", ErrBadInterval, wmin, wmax)
	}

	if wmin.Equal(wmax) {
		point := wmin
		return func(b *Bin) bool {
			return b.Wmin().Less(point) && point.Less(b.Wmax())
		}, nil
	}

	contained := func(b *Bin) bool {
		return !b.Wmin().Less(wmin) && !wmax.Less(b.Wmax())
	}
	if !endpoints {
		return contained, nil
	}
	return func(b *Bin) bool {
		return contained(b) ||
			(b.Wmin().Less(wmin) && wmin.Less(b.Wmax())) ||
			(b.Wmin().Less(wmax) && wmax.Less(b.Wmax()))
	}, nil
}

// NewBinFilter builds a primitive filter from its textual type and a
// keyword-argument mapping, the shape selection specs take when they
// come from configuration data. Valid types:
//
//   - "all": no arguments;
//   - "ids": {"ids": [...string] } (a single string also works);
//   - "interval": {"wmin": ..., "wmax": ..., "endpoints": bool},
//     bounds being quantities or bare numbers in the default unit,
//     endpoints defaulting to true.
//
// An unknown type fails with ErrUnknownFilter; malformed arguments
// fail with ErrBadConvert (or ErrBadInterval).
func NewBinFilter(typ string, kwargs map[string]any) (BinFilter, error) {
	switch typ {
	case "all":
		return FilterAll(), nil

	case "ids":
		ids, err := idsArg(kwargs)
		if err != nil {
			return nil, err
		}
		return FilterIDs(ids...), nil

	case "interval":
		wmin, wmax, endpoints, err := intervalArgs(kwargs)
		if err != nil {
			return nil, err
		}
		return FilterInterval(wmin, wmax, endpoints)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, typ)
	}
}

func idsArg(kwargs map[string]any) ([]string, error) {
	for key := range kwargs {
		if key != "ids" {
			return nil, fmt.Errorf("%w: unexpected ids filter argument %q", ErrBadConvert, key)
		}
	}
	raw, ok := kwargs["ids"]
	if !ok {
		return nil, fmt.Errorf("%w: ids filter needs an ids argument", ErrBadConvert)
	}

	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		ids := make([]string, len(v))
		for i, item := range v {
			s, err := toString(item)
			if err != nil {
				return nil, err
			}
			ids[i] = s
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("%w: %v (%T) is not an identifier collection", ErrBadConvert, raw, raw)
	}
}

func intervalArgs(kwargs map[string]any) (wmin, wmax units.Quantity, endpoints bool, err error) {
	endpoints = true
	haveWmin, haveWmax := false, false

	for key, value := range kwargs {
		switch key {
		case "wmin":
			wmin, err = toQuantity(value)
			haveWmin = true
		case "wmax":
			wmax, err = toQuantity(value)
			haveWmax = true
		case "endpoints":
			var ok bool
			if endpoints, ok = value.(bool); !ok {
				err = fmt.Errorf("%w: %v (%T) is not a bool", ErrBadConvert, value, value)
			}
		default:
			err = fmt.Errorf("%w: unexpected interval filter argument %q", ErrBadConvert, key)
		}
		if err != nil {
			return wmin, wmax, endpoints, err
		}
	}

	if !haveWmin || !haveWmax {
		return wmin, wmax, endpoints, fmt.Errorf("%w: interval filter needs wmin and wmax", ErrBadConvert)
	}
	return wmin, wmax, endpoints, nil
}

// SPDX-License-Identifier: MIT

// Loose-input conversion. Selection and bin specs are typically
// authored as plain data (YAML or literal Go values), so the accepted
// shapes form a small closed union resolved here explicitly; nothing
// is coerced by guesswork.

package ckd

import (
	"fmt"
	"strconv"

	"github.com/spectralkit/spectral/quad"
	"github.com/spectralkit/spectral/units"
)

// toQuantity coerces a loose bound value: a units.Quantity passes
// through, bare numbers are interpreted in the default wavelength unit
// (nanometers).
func toQuantity(v any) (units.Quantity, error) {
	switch t := v.(type) {
	case units.Quantity:
		return t, nil
	case float64:
		return units.Q(t, units.Nanometer), nil
	case int:
		return units.Q(float64(t), units.Nanometer), nil
	default:
		return units.Quantity{}, fmt.Errorf("%w: %v (%T) is not a quantity", ErrBadConvert, v, v)
	}
}

// toString coerces a loose identifier value.
func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %v (%T) is not a string", ErrBadConvert, v, v)
	}
	return s, nil
}

// ConvertBin resolves a loose bin spec into a *Bin:
//
//   - *Bin: passed through unchanged;
//   - []any of length 2: (wmin, wmax), identifier derived from the
//     central wavelength;
//   - []any of length 3: (id, wmin, wmax);
//   - []any of length 4: (id, wmin, wmax, *quad.Quad);
//   - map[string]any with keys "id", "wmin", "wmax" and optional "quad".
//
// fallback supplies the quadrature rule for shapes that do not carry
// one. Anything else fails with ErrBadConvert.
func ConvertBin(value any, fallback *quad.Quad) (*Bin, error) {
	switch v := value.(type) {
	case *Bin:
		return v, nil

	case []any:
		return convertBinSlice(v, fallback)

	case map[string]any:
		return convertBinMap(v, fallback)

	default:
		return nil, fmt.Errorf("%w: cannot build a bin from %v (%T)", ErrBadConvert, value, value)
	}
}

func convertBinSlice(v []any, fallback *quad.Quad) (*Bin, error) {
	q := fallback
	var idValue any

	var boundValues []any
	switch len(v) {
	case 2:
		boundValues = v
	case 3:
		idValue, boundValues = v[0], v[1:]
	case 4:
		idValue, boundValues = v[0], v[1:3]
		var ok bool
		if q, ok = v[3].(*quad.Quad); !ok {
			return nil, fmt.Errorf("%w: %v (%T) is not a quadrature rule", ErrBadConvert, v[3], v[3])
		}
	default:
		return nil, fmt.Errorf("%w: bin tuple must have 2 to 4 elements, got %d", ErrBadConvert, len(v))
	}

	wmin, err := toQuantity(boundValues[0])
	if err != nil {
		return nil, err
	}
	wmax, err := toQuantity(boundValues[1])
	if err != nil {
		return nil, err
	}

	var id string
	if idValue == nil {
		id = centerID(wmin, wmax)
	} else if id, err = toString(idValue); err != nil {
		return nil, err
	}
	return NewBin(id, wmin, wmax, q)
}

func convertBinMap(v map[string]any, fallback *quad.Quad) (*Bin, error) {
	q := fallback
	var id string
	var wmin, wmax units.Quantity
	haveID, haveWmin, haveWmax := false, false, false

	for key, value := range v {
		var err error
		switch key {
		case "id":
			id, err = toString(value)
			haveID = true
		case "wmin":
			wmin, err = toQuantity(value)
			haveWmin = true
		case "wmax":
			wmax, err = toQuantity(value)
			haveWmax = true
		case "quad":
			var ok bool
			if q, ok = value.(*quad.Quad); !ok {
				err = fmt.Errorf("%w: %v (%T) is not a quadrature rule", ErrBadConvert, value, value)
			}
		default:
			err = fmt.Errorf("%w: unexpected bin field %q", ErrBadConvert, key)
		}
		if err != nil {
			return nil, err
		}
	}

	if !haveWmin || !haveWmax {
		return nil, fmt.Errorf("%w: bin mapping needs wmin and wmax", ErrBadConvert)
	}
	if !haveID {
		id = centerID(wmin, wmax)
	}
	return NewBin(id, wmin, wmax, q)
}

// centerID derives a bin identifier from the central wavelength
// expressed in the default unit, e.g. (540 nm, 560 nm) -> "550".
func centerID(wmin, wmax units.Quantity) string {
	center := 0.5 * (wmin.MagAs(units.Nanometer) + wmax.MagAs(units.Nanometer))
	return strconv.FormatFloat(center, 'g', -1, 64)
}

// ConvertBindex resolves a loose bindex spec into a *Bindex:
//
//   - *Bindex: passed through unchanged;
//   - []any of length 2: (bin, index), the bin element going through
//     ConvertBin;
//   - map[string]any with keys "bin" and "index".
//
// The index is intentionally not range-checked against the bin's
// quadrature point count.
func ConvertBindex(value any, fallback *quad.Quad) (*Bindex, error) {
	switch v := value.(type) {
	case *Bindex:
		return v, nil

	case []any:
		if len(v) != 2 {
			return nil, fmt.Errorf("%w: bindex tuple must have 2 elements, got %d", ErrBadConvert, len(v))
		}
		return buildBindex(v[0], v[1], fallback)

	case map[string]any:
		for key := range v {
			if key != "bin" && key != "index" {
				return nil, fmt.Errorf("%w: unexpected bindex field %q", ErrBadConvert, key)
			}
		}
		binValue, ok := v["bin"]
		if !ok {
			return nil, fmt.Errorf("%w: bindex mapping needs a bin", ErrBadConvert)
		}
		indexValue, ok := v["index"]
		if !ok {
			return nil, fmt.Errorf("%w: bindex mapping needs an index", ErrBadConvert)
		}
		return buildBindex(binValue, indexValue, fallback)

	default:
		return nil, fmt.Errorf("%w: cannot build a bindex from %v (%T)", ErrBadConvert, value, value)
	}
}

func buildBindex(binValue, indexValue any, fallback *quad.Quad) (*Bindex, error) {
	b, err := ConvertBin(binValue, fallback)
	if err != nil {
		return nil, err
	}
	index, ok := indexValue.(int)
	if !ok {
		return nil, fmt.Errorf("%w: %v (%T) is not an index", ErrBadConvert, indexValue, indexValue)
	}
	return &Bindex{Bin: b, Index: index}, nil
}

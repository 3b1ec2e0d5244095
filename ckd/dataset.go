// SPDX-License-Identifier: MIT

package ckd

import (
	"fmt"

	"github.com/spectralkit/spectral/data"
	"github.com/spectralkit/spectral/quad"
	"github.com/spectralkit/spectral/units"
)

// FromDataset builds a bin set from a labeled dataset.
//
// The dataset's global attributes name the quadrature (quadrature_type,
// quadrature_n); exactly one rule is built from them and shared by
// reference across every bin. Per-bin records come from the "bin",
// "wmin" and "wmax" columns, the bound columns carrying their own unit
// tags.
func FromDataset(id string, ds data.Dataset) (*BinSet, error) {
	quadType, err := ds.AttrString("quadrature_type")
	if err != nil {
		return nil, err
	}
	quadN, err := ds.AttrInt("quadrature_n")
	if err != nil {
		return nil, err
	}
	q, err := quad.New(quadType, quadN)
	if err != nil {
		return nil, err
	}

	binIDs, err := ds.Strings("bin")
	if err != nil {
		return nil, err
	}
	wmins, wminUnit, err := ds.Column("wmin")
	if err != nil {
		return nil, err
	}
	wmaxs, wmaxUnit, err := ds.Column("wmax")
	if err != nil {
		return nil, err
	}
	if len(wmins) != len(binIDs) || len(wmaxs) != len(binIDs) {
		return nil, fmt.Errorf("%w: %d bins vs %d wmin and %d wmax records",
			data.ErrBadDataset, len(binIDs), len(wmins), len(wmaxs))
	}

	uMin, err := units.Parse(wminUnit)
	if err != nil {
		return nil, err
	}
	uMax, err := units.Parse(wmaxUnit)
	if err != nil {
		return nil, err
	}

	bins := make([]*Bin, len(binIDs))
	for i, binID := range binIDs {
		b, err := NewBin(binID, units.Q(wmins[i], uMin), units.Q(wmaxs[i], uMax), q)
		if err != nil {
			return nil, err
		}
		bins[i] = b
	}
	return NewBinSet(id, q, bins)
}

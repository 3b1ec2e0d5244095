// SPDX-License-Identifier: MIT

package units

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownUnit indicates a unit symbol that Parse does not recognize.
var ErrUnknownUnit = errors.New("units: unknown unit")

// Unit identifies a wavelength-dimension unit. The zero value is the
// nanometer, which is also the default presentation unit everywhere in
// this module.
type Unit int

const (
	// Nanometer is the default wavelength unit.
	Nanometer Unit = iota

	// Angstrom (Å), 0.1 nm.
	Angstrom

	// Micrometer (µm), 1e3 nm.
	Micrometer

	// Millimeter (mm), 1e6 nm.
	Millimeter

	// Centimeter (cm), 1e7 nm.
	Centimeter

	// Meter (m), 1e9 nm.
	Meter
)

// toNano maps a Unit to its exact conversion factor to nanometers.
var toNano = [...]float64{
	Nanometer:  1,
	Angstrom:   0.1,
	Micrometer: 1e3,
	Millimeter: 1e6,
	Centimeter: 1e7,
	Meter:      1e9,
}

// symbols maps a Unit to its canonical symbol.
var symbols = [...]string{
	Nanometer:  "nm",
	Angstrom:   "angstrom",
	Micrometer: "um",
	Millimeter: "mm",
	Centimeter: "cm",
	Meter:      "m",
}

// String returns the canonical symbol of u.
func (u Unit) String() string {
	if u < Nanometer || int(u) >= len(symbols) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return symbols[u]
}

// Parse resolves a unit symbol as found in dataset metadata.
// Recognized spellings include "nm", "nanometer", "angstrom", "Å",
// "um", "µm", "micron", "mm", "cm" and "m". Returns ErrUnknownUnit for
// anything else.
func Parse(symbol string) (Unit, error) {
	switch symbol {
	case "nm", "nanometer", "nanometers":
		return Nanometer, nil
	case "angstrom", "angstroms", "Å", "A":
		return Angstrom, nil
	case "um", "µm", "micrometer", "micrometers", "micron", "microns":
		return Micrometer, nil
	case "mm", "millimeter", "millimeters":
		return Millimeter, nil
	case "cm", "centimeter", "centimeters":
		return Centimeter, nil
	case "m", "meter", "meters", "metre", "metres":
		return Meter, nil
	default:
		return Nanometer, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
}

// Quantity is an immutable wavelength-dimension value: a magnitude
// tagged with its Unit.
type Quantity struct {
	Magnitude float64
	Unit      Unit
}

// Q builds a Quantity from a magnitude and a Unit.
func Q(magnitude float64, unit Unit) Quantity {
	return Quantity{Magnitude: magnitude, Unit: unit}
}

// From builds a Quantity from a bare magnitude and a unit symbol, the
// shape in which bounds arrive from dataset metadata.
func From(magnitude float64, symbol string) (Quantity, error) {
	u, err := Parse(symbol)
	if err != nil {
		return Quantity{}, err
	}
	return Q(magnitude, u), nil
}

// nano returns the magnitude of q expressed in nanometers.
func (q Quantity) nano() float64 {
	return q.Magnitude * toNano[q.Unit]
}

// MagAs returns the magnitude of q expressed in unit.
func (q Quantity) MagAs(unit Unit) float64 {
	return q.nano() / toNano[unit]
}

// To converts q to unit, preserving the physical value.
func (q Quantity) To(unit Unit) Quantity {
	return Q(q.MagAs(unit), unit)
}

// Less reports whether q is strictly smaller than other.
func (q Quantity) Less(other Quantity) bool {
	return q.nano() < other.nano()
}

// Equal reports whether q and other denote the same physical value,
// regardless of unit.
func (q Quantity) Equal(other Quantity) bool {
	return q.nano() == other.nano()
}

// Cmp returns -1, 0 or +1 comparing q against other.
func (q Quantity) Cmp(other Quantity) int {
	switch a, b := q.nano(), other.nano(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Add returns q + other, expressed in q's unit.
func (q Quantity) Add(other Quantity) Quantity {
	return Q(q.Magnitude+other.MagAs(q.Unit), q.Unit)
}

// Sub returns q - other, expressed in q's unit.
func (q Quantity) Sub(other Quantity) Quantity {
	return Q(q.Magnitude-other.MagAs(q.Unit), q.Unit)
}

// Mul returns q scaled by k, expressed in q's unit.
func (q Quantity) Mul(k float64) Quantity {
	return Q(q.Magnitude*k, q.Unit)
}

// String renders q as "<magnitude> <unit>".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.Magnitude, 'g', -1, 64) + " " + q.Unit.String()
}

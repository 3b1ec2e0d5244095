// Package units carries wavelength-dimension quantities as explicit
// (magnitude, unit) pairs.
//
// What:
//
//   - Unit enumerates the length units that appear in spectral dataset
//     metadata (nm, Å, µm, mm, cm, m), each with an exact conversion
//     factor to the nanometer.
//   - Quantity pairs a float64 magnitude with a Unit and supports
//     ordering, same-dimension arithmetic, and unit conversion.
//
// Why:
//
//   - Spectral bounds are read from datasets whose columns declare their
//     own unit; comparing or subtracting two bounds without normalizing
//     units first silently corrupts every downstream bin computation.
//
// Scope:
//
//   - Wavelength only. This package is deliberately not a general unit
//     system; it is the thin collaborator the spectral core needs to
//     preserve and validate units on bin bounds.
//
// Errors:
//
//   - ErrUnknownUnit: a unit symbol not recognized by Parse.
package units

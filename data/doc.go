// Package data serves labeled spectral datasets by logical path.
//
// What:
//
//   - Store is the single retrieval collaborator the spectral core
//     knows about: Open(logicalPath) returns a labeled Dataset.
//   - Dataset exposes global attributes (quadrature type and point
//     count, optional bin-set cross-reference), a column of bin
//     identifier strings, and unit-tagged numeric bound columns.
//   - DirStore serves NetCDF classic files stored under a local
//     directory root; the reader is built on github.com/ctessum/cdf.
//
// Why:
//
//   - Bin-set definitions are externally owned files; this package is
//     the only place that knows how they are stored and decoded, so the
//     spectral core stays unaware of storage mechanics.
//
// Lifecycle:
//
//   - A Dataset handle is opened, read and closed deterministically
//     around one construction call; handles never outlive the bin set
//     they produced.
//
// Errors:
//
//   - ErrNotFound: no dataset backs the requested logical path. The
//     caller propagates this unchanged; there are no retry semantics.
//   - ErrBadDataset: the file exists but is missing a required
//     attribute or variable, or a column has an unexpected shape.
package data

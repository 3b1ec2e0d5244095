// SPDX-License-Identifier: MIT

// NetCDF classic dataset reader built on github.com/ctessum/cdf.
//
// Layout expected of a bin-set definition file:
//   - global attributes: quadrature_type (string), quadrature_n (int),
//     optionally bin_set (string cross-reference);
//   - variable "bin": char matrix of shape (bin, str_len), one
//     fixed-width identifier per row, NUL- or space-padded;
//   - variables "wmin", "wmax": double vectors of shape (bin,), each
//     carrying a "units" string attribute.

package data

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ctessum/cdf"
)

// ncDataset adapts a *cdf.File to the Dataset interface.
type ncDataset struct {
	f      *cdf.File
	closer io.Closer
}

// readOnlyAt satisfies cdf.ReaderWriterAt for read-only handles; cdf.Open
// never writes, so WriteAt only guards against misuse.
type readOnlyAt struct {
	io.ReaderAt
}

func (readOnlyAt) WriteAt([]byte, int64) (int, error) {
	return 0, fmt.Errorf("netcdf: dataset opened read-only")
}

// OpenNetCDF decodes a NetCDF classic dataset from r. The returned
// Dataset's Close is a no-op; use a Store when the handle owns a file.
func OpenNetCDF(r io.ReaderAt) (Dataset, error) {
	f, err := cdf.Open(readOnlyAt{r})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDataset, err)
	}
	return &ncDataset{f: f}, nil
}

func (d *ncDataset) attr(variable, name string) (any, error) {
	v := d.f.Header.GetAttribute(variable, name)
	if v == nil {
		return nil, fmt.Errorf("%w: missing attribute %q", ErrBadDataset, name)
	}
	return v, nil
}

func (d *ncDataset) AttrString(name string) (string, error) {
	v, err := d.attr("", name)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(bytes.TrimRight(t, "\x00")), nil
	default:
		return "", fmt.Errorf("%w: attribute %q is not a string", ErrBadDataset, name)
	}
}

func (d *ncDataset) AttrInt(name string) (int, error) {
	v, err := d.attr("", name)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case []int32:
		if len(t) == 1 {
			return int(t[0]), nil
		}
	case []int16:
		if len(t) == 1 {
			return int(t[0]), nil
		}
	case []float64:
		if len(t) == 1 {
			return int(t[0]), nil
		}
	case []float32:
		if len(t) == 1 {
			return int(t[0]), nil
		}
	}
	return 0, fmt.Errorf("%w: attribute %q is not a scalar integer", ErrBadDataset, name)
}

// hasVariable reports whether the file declares the named variable.
func (d *ncDataset) hasVariable(name string) bool {
	for _, v := range d.f.Header.Variables() {
		if v == name {
			return true
		}
	}
	return false
}

func (d *ncDataset) Strings(variable string) ([]string, error) {
	if !d.hasVariable(variable) {
		return nil, fmt.Errorf("%w: missing variable %q", ErrBadDataset, variable)
	}
	dims := d.f.Header.Lengths(variable)
	if len(dims) != 2 {
		return nil, fmt.Errorf("%w: variable %q must be a (row, char) matrix", ErrBadDataset, variable)
	}
	rows, width := dims[0], dims[1]

	buf := make([]byte, rows*width)
	r := d.f.Reader(variable, nil, nil)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", ErrBadDataset, variable, err)
	}

	out := make([]string, rows)
	for i := 0; i < rows; i++ {
		row := buf[i*width : (i+1)*width]
		out[i] = string(bytes.TrimRight(row, "\x00 "))
	}
	return out, nil
}

func (d *ncDataset) Column(variable string) ([]float64, string, error) {
	if !d.hasVariable(variable) {
		return nil, "", fmt.Errorf("%w: missing variable %q", ErrBadDataset, variable)
	}
	dims := d.f.Header.Lengths(variable)
	if len(dims) != 1 {
		return nil, "", fmt.Errorf("%w: variable %q must be a vector", ErrBadDataset, variable)
	}

	values := make([]float64, dims[0])
	r := d.f.Reader(variable, nil, nil)
	if _, err := r.Read(values); err != nil {
		return nil, "", fmt.Errorf("%w: reading %q: %v", ErrBadDataset, variable, err)
	}

	unitAttr, err := d.attr(variable, "units")
	if err != nil {
		return nil, "", err
	}
	unit, ok := unitAttr.(string)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q units attribute is not a string", ErrBadDataset, variable)
	}
	return values, unit, nil
}

func (d *ncDataset) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

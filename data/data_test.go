package data_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ctessum/cdf"
	"github.com/spectralkit/spectral/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeBinSetFile fabricates a NetCDF classic bin-set definition file
// with the layout the reader expects: a char-matrix "bin" column and
// double "wmin"/"wmax" columns tagged with a units attribute.
func writeBinSetFile(t *testing.T, path string, ids []string, wmins, wmaxs []float64, unit string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	width := 0
	for _, id := range ids {
		if len(id) > width {
			width = len(id)
		}
	}

	h := cdf.NewHeader([]string{"bin", "str_len"}, []int{len(ids), width})
	h.AddAttribute("", "quadrature_type", "gauss_legendre")
	h.AddAttribute("", "quadrature_n", []int32{16})
	h.AddVariable("bin", []string{"bin", "str_len"}, []byte{0})
	h.AddVariable("wmin", []string{"bin"}, []float64{0})
	h.AddAttribute("wmin", "units", unit)
	h.AddVariable("wmax", []string{"bin"}, []float64{0})
	h.AddAttribute("wmax", "units", unit)
	h.Define()

	fh, err := os.Create(path)
	require.NoError(t, err)
	defer fh.Close()

	f, err := cdf.Create(fh, h)
	require.NoError(t, err)

	chars := make([]byte, len(ids)*width)
	for i, id := range ids {
		copy(chars[i*width:(i+1)*width], id)
	}
	writeVar(t, f, "bin", chars)
	writeVar(t, f, "wmin", wmins)
	writeVar(t, f, "wmax", wmaxs)

	require.NoError(t, cdf.UpdateNumRecs(fh))
}

func writeVar(t *testing.T, f *cdf.File, name string, values any) {
	t.Helper()
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	_, err := w.Write(values)
	require.NoError(t, err)
}

// TestDirStore_OpenAndDecode round-trips a bin-set file through the
// directory store and the NetCDF reader.
func TestDirStore_OpenAndDecode(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "ckd", "bin_sets", "test-10nm.nc")
	writeBinSetFile(t, path,
		[]string{"540", "550", "560"},
		[]float64{535, 545, 555},
		[]float64{545, 555, 565},
		"nm")

	store := data.NewDirStore(root)
	ds, err := store.Open("ckd/bin_sets/test-10nm.nc")
	require.NoError(t, err)
	defer ds.Close()

	qt, err := ds.AttrString("quadrature_type")
	require.NoError(t, err)
	assert.Equal(t, "gauss_legendre", qt)

	qn, err := ds.AttrInt("quadrature_n")
	require.NoError(t, err)
	assert.Equal(t, 16, qn)

	ids, err := ds.Strings("bin")
	require.NoError(t, err)
	assert.Equal(t, []string{"540", "550", "560"}, ids)

	wmins, unit, err := ds.Column("wmin")
	require.NoError(t, err)
	assert.Equal(t, "nm", unit)
	assert.Equal(t, []float64{535, 545, 555}, wmins)

	wmaxs, unit, err := ds.Column("wmax")
	require.NoError(t, err)
	assert.Equal(t, "nm", unit)
	assert.Equal(t, []float64{545, 555, 565}, wmaxs)
}

// TestDirStore_NotFound verifies the ErrNotFound sentinel for missing
// logical paths.
func TestDirStore_NotFound(t *testing.T) {
	store := data.NewDirStore(t.TempDir())
	_, err := store.Open("ckd/bin_sets/nope.nc")
	assert.ErrorIs(t, err, data.ErrNotFound)
}

// TestNetCDF_MissingPieces verifies ErrBadDataset for absent
// attributes and variables.
func TestNetCDF_MissingPieces(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "minimal.nc")
	writeBinSetFile(t, path, []string{"x"}, []float64{1}, []float64{2}, "nm")

	ds, err := data.NewDirStore(root).Open("minimal.nc")
	require.NoError(t, err)
	defer ds.Close()

	_, err = ds.AttrString("no_such_attr")
	assert.ErrorIs(t, err, data.ErrBadDataset)

	_, err = ds.AttrInt("quadrature_type") // wrong kind
	assert.ErrorIs(t, err, data.ErrBadDataset)

	_, err = ds.Strings("no_such_var")
	assert.ErrorIs(t, err, data.ErrBadDataset)

	_, _, err = ds.Column("bin") // not a numeric vector
	assert.ErrorIs(t, err, data.ErrBadDataset)
}

// TestAbsorptionPath checks the published-path table lookup.
func TestAbsorptionPath(t *testing.T) {
	p, err := data.AbsorptionPath("afgl_1986-us_standard-10nm")
	require.NoError(t, err)
	assert.Equal(t, "ckd/absorption/10nm/afgl_1986-us_standard-10nm.nc", p)

	_, err = data.AbsorptionPath("mars_2086")
	assert.ErrorIs(t, err, data.ErrNotFound)

	assert.Contains(t, data.AbsorptionIDs(), "afgl_1986-tropical-1nm-v3")
}

package ckd_test

import (
	"fmt"
	"testing"

	"github.com/spectralkit/spectral/ckd"
	"github.com/spectralkit/spectral/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDataset is an in-memory data.Dataset serving one bin-set
// definition.
type fakeDataset struct {
	strAttrs map[string]string
	intAttrs map[string]int
	ids      []string
	wmin     []float64
	wmax     []float64
	unit     string
	closed   int
}

func (d *fakeDataset) AttrString(name string) (string, error) {
	v, ok := d.strAttrs[name]
	if !ok {
		return "", fmt.Errorf("%w: missing attribute %q", data.ErrBadDataset, name)
	}
	return v, nil
}

func (d *fakeDataset) AttrInt(name string) (int, error) {
	v, ok := d.intAttrs[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing attribute %q", data.ErrBadDataset, name)
	}
	return v, nil
}

func (d *fakeDataset) Strings(string) ([]string, error) { return d.ids, nil }

func (d *fakeDataset) Column(variable string) ([]float64, string, error) {
	switch variable {
	case "wmin":
		return d.wmin, d.unit, nil
	case "wmax":
		return d.wmax, d.unit, nil
	default:
		return nil, "", fmt.Errorf("%w: missing variable %q", data.ErrBadDataset, variable)
	}
}

func (d *fakeDataset) Close() error {
	d.closed++
	return nil
}

// fakeStore maps logical paths to dataset factories and records opens.
type fakeStore struct {
	datasets map[string]func() *fakeDataset
	opens    []string
	last     *fakeDataset
}

func (s *fakeStore) Open(logicalPath string) (data.Dataset, error) {
	s.opens = append(s.opens, logicalPath)
	build, ok := s.datasets[logicalPath]
	if !ok {
		return nil, fmt.Errorf("%w: %q", data.ErrNotFound, logicalPath)
	}
	s.last = build()
	return s.last, nil
}

// binSetDataset fabricates a three-bin 10 nm definition.
func binSetDataset() *fakeDataset {
	return &fakeDataset{
		strAttrs: map[string]string{"quadrature_type": "gauss_legendre"},
		intAttrs: map[string]int{"quadrature_n": 16},
		ids:      []string{"545", "555", "565"},
		wmin:     []float64{540, 550, 560},
		wmax:     []float64{550, 560, 570},
		unit:     "nm",
	}
}

func newFakeStore(ids ...string) *fakeStore {
	s := &fakeStore{datasets: map[string]func() *fakeDataset{}}
	for _, id := range ids {
		s.datasets["ckd/bin_sets/"+id+".nc"] = binSetDataset
	}
	return s
}

// TestFromDataset verifies the dataset construction path end to end.
func TestFromDataset(t *testing.T) {
	set, err := ckd.FromDataset("test-10nm", binSetDataset())
	require.NoError(t, err)

	assert.Equal(t, "test-10nm", set.ID())
	assert.Equal(t, []string{"545", "555", "565"}, set.BinIDs())
	assert.Equal(t, 16, set.Quad().Len())

	for _, b := range set.Bins() {
		assert.Same(t, set.Quad(), b.Quad(), "every bin shares the set's rule by reference")
	}
}

// TestFromDataset_LengthSkew verifies rejection of a dataset whose
// columns disagree on record count.
func TestFromDataset_LengthSkew(t *testing.T) {
	ds := binSetDataset()
	ds.wmax = ds.wmax[:2]
	_, err := ckd.FromDataset("broken", ds)
	assert.ErrorIs(t, err, data.ErrBadDataset)
}

// TestFromDataset_BadQuadAttr verifies that quadrature construction
// errors surface unchanged.
func TestFromDataset_BadQuadAttr(t *testing.T) {
	ds := binSetDataset()
	ds.strAttrs["quadrature_type"] = "trapezoid"
	_, err := ckd.FromDataset("broken", ds)
	assert.Error(t, err)
}

// TestRegistry_Memoization verifies the identity contract: repeated
// lookups return the identical BinSet and quadrature rule objects, and
// the store is consulted exactly once per id.
func TestRegistry_Memoization(t *testing.T) {
	store := newFakeStore("afgl_1986-us_standard-10nm")
	reg := ckd.NewRegistry(store)

	first, err := reg.FromDB("afgl_1986-us_standard-10nm")
	require.NoError(t, err)
	second, err := reg.FromDB("afgl_1986-us_standard-10nm")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first.Quad(), second.Quad())
	assert.Same(t, first.Bins()[0].Quad(), second.Bins()[2].Quad())
	assert.Equal(t, []string{"ckd/bin_sets/afgl_1986-us_standard-10nm.nc"}, store.opens,
		"the backing dataset is opened once")
	assert.Equal(t, 1, reg.Len())
}

// TestRegistry_ClosesDataset verifies the deterministic open/close
// lifecycle around construction.
func TestRegistry_ClosesDataset(t *testing.T) {
	store := newFakeStore("x")
	reg := ckd.NewRegistry(store)

	_, err := reg.FromDB("x")
	require.NoError(t, err)
	assert.Equal(t, 1, store.last.closed, "handle must not outlive construction")
}

// TestRegistry_NotFoundPropagates verifies that a missing backing
// dataset surfaces the store's sentinel unchanged.
func TestRegistry_NotFoundPropagates(t *testing.T) {
	reg := ckd.NewRegistry(newFakeStore())
	_, err := reg.FromDB("missing")
	assert.ErrorIs(t, err, data.ErrNotFound)
}

// TestRegistry_Eviction verifies the bounded-LRU policy: evicting an
// id drops memoization for it without touching live entries.
func TestRegistry_Eviction(t *testing.T) {
	store := newFakeStore("a", "b")
	reg := ckd.NewRegistry(store, ckd.WithCapacity(1))

	a1, err := reg.FromDB("a")
	require.NoError(t, err)
	_, err = reg.FromDB("b") // evicts a
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	a2, err := reg.FromDB("a")
	require.NoError(t, err)
	assert.NotSame(t, a1, a2, "an evicted id is rebuilt on next lookup")
}

// TestRegistry_CapacityPanics verifies the option constructor rejects
// nonsensical capacities loudly.
func TestRegistry_CapacityPanics(t *testing.T) {
	assert.Panics(t, func() { ckd.WithCapacity(0) })
}

// TestRegistry_FromNodeDataset verifies the self-referential
// indirection: a node dataset names its bin set by attribute, and the
// lookup lands on the identical cached instance.
func TestRegistry_FromNodeDataset(t *testing.T) {
	store := newFakeStore("referenced")
	reg := ckd.NewRegistry(store)

	direct, err := reg.FromDB("referenced")
	require.NoError(t, err)

	node := &fakeDataset{strAttrs: map[string]string{"bin_set": "referenced"}}
	viaNode, err := reg.FromNodeDataset(node)
	require.NoError(t, err)
	assert.Same(t, direct, viaNode)
}

// TestRegistry_ConvertBinSet covers the loose bin-set reference shapes.
func TestRegistry_ConvertBinSet(t *testing.T) {
	store := newFakeStore("x")
	reg := ckd.NewRegistry(store)

	byID, err := reg.ConvertBinSet("x")
	require.NoError(t, err)

	passthrough, err := reg.ConvertBinSet(byID)
	require.NoError(t, err)
	assert.Same(t, byID, passthrough)

	_, err = reg.ConvertBinSet(12)
	assert.ErrorIs(t, err, ckd.ErrBadConvert)
}

// TestRegistry_ConcurrentLookups verifies that concurrent callers for
// one id observe a single published instance.
func TestRegistry_ConcurrentLookups(t *testing.T) {
	store := newFakeStore("shared")
	reg := ckd.NewRegistry(store)

	results := make(chan *ckd.BinSet, 8)
	for i := 0; i < 8; i++ {
		go func() {
			set, err := reg.FromDB("shared")
			assert.NoError(t, err)
			results <- set
		}()
	}

	first := <-results
	for i := 1; i < 8; i++ {
		assert.Same(t, first, <-results)
	}
	assert.Len(t, store.opens, 1)
}

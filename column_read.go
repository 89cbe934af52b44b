package rootevents

import (
	"fmt"
	"reflect"

	"go-hep.org/x/hep/groot/rtree"

	"github.com/scigolib/rootevents/internal/utils"
)

// ReadColumn reads count consecutive values of the column called name, starting at row start.
//
// Values keep the column's native Go type: scalars (int32, float64, ...), arrays
// for fixed-size columns ([23]int16, [3][4]int16, ...) and slices for
// variable-length columns. Every returned value is an independent copy.
//
// Errors:
//   - ErrLookup: the column does not exist
//   - ErrRange: start < 0, count < 0 or start+count > Entries()
//   - ErrIO: the decoder failed or the store is closed
func (t *Table) ReadColumn(name string, start, count int64) ([]any, error) {
	cols, err := t.readColumns([]string{name}, start, count)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// ReadColumnAs reads a column whose native element type is exactly T.
// No conversion is attempted: a column of int16 cannot be read as int32.
func ReadColumnAs[T any](t *Table, name string, start, count int64) ([]T, error) {
	rv, ok := t.vars[name]
	if !ok {
		return nil, t.lookupError(name)
	}

	want := reflect.TypeOf((*T)(nil)).Elem()
	if got := reflect.TypeOf(rv.Value).Elem(); got != want {
		return nil, fmt.Errorf("%w: column %q holds %s, not %s", ErrType, name, got, want)
	}

	vals, err := t.ReadColumn(name, start, count)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(vals))
	for i, v := range vals {
		out[i] = v.(T)
	}
	return out, nil
}

// readColumns reads the same row range of several columns in one pass.
// The result holds one slice per requested name, in request order.
func (t *Table) readColumns(names []string, start, count int64) ([][]any, error) {
	// Resolve names first, then the range.
	slot := make([]int, len(names))
	index := make(map[string]int, len(names))
	var rvars []rtree.ReadVar
	for i, name := range names {
		if j, ok := index[name]; ok {
			slot[i] = j
			continue
		}
		rv, ok := t.vars[name]
		if !ok {
			return nil, t.lookupError(name)
		}
		index[name] = len(rvars)
		slot[i] = len(rvars)
		rvars = append(rvars, freshVar(rv))
	}

	if err := utils.ValidateRowRange(start, count, t.Entries()); err != nil {
		return nil, fmt.Errorf("%w: tree %q: %w", ErrRange, t.Name(), err)
	}

	if t.store.closed() {
		return nil, fmt.Errorf("%w: store is closed", ErrIO)
	}

	unique := make([][]any, len(rvars))
	for i := range unique {
		unique[i] = make([]any, 0, count)
	}

	if count > 0 {
		if err := t.scan(rvars, start, count, unique); err != nil {
			return nil, err
		}
	}

	out := make([][]any, len(names))
	for i := range names {
		out[i] = unique[slot[i]]
	}
	return out, nil
}

func (t *Table) scan(rvars []rtree.ReadVar, start, count int64, dst [][]any) error {
	r, err := rtree.NewReader(t.tree, rvars, rtree.WithRange(start, start+count))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, utils.WrapObjectError(fmt.Sprintf("tree %q", t.Name()), "reader setup failed", err))
	}
	defer func() { _ = r.Close() }()

	err = r.Read(func(rtree.RCtx) error {
		for i, rv := range rvars {
			dst[i] = append(dst[i], copyValue(rv.Value))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, utils.WrapObjectError(fmt.Sprintf("tree %q", t.Name()), fmt.Sprintf("rows [%d, %d) read failed", start, start+count), err))
	}
	return nil
}

// freshVar returns rv with its own destination value.
func freshVar(rv rtree.ReadVar) rtree.ReadVar {
	rv.Value = reflect.New(reflect.TypeOf(rv.Value).Elem()).Interface()
	return rv
}

// copyValue detaches the decoded value behind ptr from the reader's buffers.
func copyValue(ptr any) any {
	v := reflect.ValueOf(ptr).Elem()
	if v.Kind() != reflect.Slice {
		return v.Interface() // Arrays and scalars are copied by value.
	}
	c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
	reflect.Copy(c, v)
	return c.Interface()
}

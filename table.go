package rootevents

import (
	"fmt"
	"reflect"

	"go-hep.org/x/hep/groot/rtree"
)

// Shape is the per-row layout of a column.
type Shape int

// Column shapes.
const (
	Scalar     Shape = iota // One value per row.
	FixedArray              // A fixed-size array per row.
	VarArray                // A variable-length array per row, sized by a count column.
)

func (s Shape) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case FixedArray:
		return "fixed-array"
	case VarArray:
		return "var-array"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Column describes one branch of a tree.
type Column struct {
	Name  string
	Type  string // Element type, e.g. "int16".
	Shape Shape
	Dims  []int  // Fixed dimensions, outermost first.
	Count string // Count column of a VarArray.
}

// String formats the column type the way a Go declaration would, e.g. "[23]int16".
func (c Column) String() string {
	s := c.Type
	for i := len(c.Dims) - 1; i >= 0; i-- {
		s = fmt.Sprintf("[%d]%s", c.Dims[i], s)
	}
	if c.Shape == VarArray {
		s = "[]" + s
	}
	return s
}

// Table represents a tree of equal-length columns, one row per event.
type Table struct {
	store  *Store
	tree   rtree.Tree
	cols   []Column
	vars   map[string]rtree.ReadVar
	layout EventLayout
}

func newTable(s *Store, tree rtree.Tree) *Table {
	t := &Table{
		store:  s,
		tree:   tree,
		vars:   make(map[string]rtree.ReadVar),
		layout: DefaultLayout(),
	}
	for _, rv := range rtree.NewReadVars(tree) {
		if _, dup := t.vars[rv.Name]; dup {
			continue
		}
		t.vars[rv.Name] = rv
		t.cols = append(t.cols, describeColumn(tree, rv))
	}
	return t
}

// describeColumn derives the column shape from the value the decoder allocates for it.
func describeColumn(tree rtree.Tree, rv rtree.ReadVar) Column {
	col := Column{Name: rv.Name, Shape: Scalar}
	typ := reflect.TypeOf(rv.Value).Elem()

	if typ.Kind() == reflect.Slice {
		col.Shape = VarArray
		col.Count = countLeaf(tree, rv)
		typ = typ.Elem()
	}
	for typ.Kind() == reflect.Array {
		if col.Shape == Scalar {
			col.Shape = FixedArray
		}
		col.Dims = append(col.Dims, typ.Len())
		typ = typ.Elem()
	}
	col.Type = typ.String()
	return col
}

// countLeaf names the leaf holding the per-row length of a variable-length column.
func countLeaf(tree rtree.Tree, rv rtree.ReadVar) string {
	b := tree.Branch(rv.Name)
	if b == nil {
		return ""
	}
	leaf := b.Leaf(rv.Leaf)
	if leaf == nil || leaf.LeafCount() == nil {
		return ""
	}
	return leaf.LeafCount().Name()
}

// Name returns the tree name.
func (t *Table) Name() string {
	return t.tree.Name()
}

// Title returns the tree title.
func (t *Table) Title() string {
	return t.tree.Title()
}

// Entries returns the number of rows.
func (t *Table) Entries() int64 {
	return t.tree.Entries()
}

// Columns returns the column catalogue in branch order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// Column returns the description of the column called name.
func (t *Table) Column(name string) (Column, error) {
	for _, c := range t.cols {
		if c.Name == name {
			return c, nil
		}
	}
	return Column{}, t.lookupError(name)
}

func (t *Table) lookupError(name string) error {
	return fmt.Errorf("%w: column %q in tree %q", ErrLookup, name, t.Name())
}

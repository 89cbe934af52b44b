package rootevents

import (
	"testing"

	"github.com/stretchr/testify/require"

	roottesting "github.com/scigolib/rootevents/internal/testing"
)

func TestTableColumns(t *testing.T) {
	_, table := openFixture(t, 3)

	require.Equal(t, "tree", table.Name())
	require.Equal(t, int64(3), table.Entries())

	cols := table.Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	require.Equal(t, roottesting.EventBranches, names)

	tests := []struct {
		name   string
		typ    string
		shape  Shape
		dims   []int
		count  string
		goType string
	}{
		{name: "eventID", typ: "int32", shape: Scalar, goType: "int32"},
		{name: "adcVal", typ: "int16", shape: FixedArray, dims: []int{roottesting.WaveformSamples}, goType: "[23]int16"},
		{name: "baselineMean", typ: "float64", shape: Scalar, goType: "float64"},
		{name: "nsTime", typ: "int64", shape: Scalar, goType: "int64"},
		{name: "hitTimes", typ: "float32", shape: VarArray, count: "nHits", goType: "[]float32"},
		{name: "adcGrid", typ: "int16", shape: FixedArray, dims: []int{roottesting.GridChannels, roottesting.GridSamples}, goType: "[3][4]int16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, err := table.Column(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.typ, col.Type)
			require.Equal(t, tt.shape, col.Shape)
			require.Equal(t, tt.dims, col.Dims)
			require.Equal(t, tt.count, col.Count)
			require.Equal(t, tt.goType, col.String())
		})
	}

	_, err := table.Column("energy")
	require.ErrorIs(t, err, ErrLookup)
}

// TestTableColumnsCopy ensures the catalogue cannot be modified through Columns.
func TestTableColumnsCopy(t *testing.T) {
	_, table := openFixture(t, 1)

	cols := table.Columns()
	cols[0].Name = "renamed"

	col, err := table.Column("eventID")
	require.NoError(t, err)
	require.Equal(t, "eventID", col.Name)
}

func TestShapeString(t *testing.T) {
	require.Equal(t, "scalar", Scalar.String())
	require.Equal(t, "fixed-array", FixedArray.String())
	require.Equal(t, "var-array", VarArray.String())
	require.Equal(t, "Shape(7)", Shape(7).String())
}

func TestColumnString(t *testing.T) {
	require.Equal(t, "float64", Column{Type: "float64"}.String())
	require.Equal(t, "[23][45]int16", Column{Type: "int16", Shape: FixedArray, Dims: []int{23, 45}}.String())
	require.Equal(t, "[][2]float32", Column{Type: "float32", Shape: VarArray, Dims: []int{2}}.String())
}

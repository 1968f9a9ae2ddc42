package aosoa

import (
	"bytes"
	"testing"

	"github.com/TheBitDrifter/table"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCellTable builds a warehouse-style table holding n rows of diameters
// and ages.
func newCellTable(t *testing.T, n int) table.Table {
	t.Helper()
	schema := table.Factory.NewSchema()
	schema.Register(diameter.ElementType())
	schema.Register(age.ElementType())

	tbl, err := table.NewTableBuilder().
		WithSchema(schema).
		WithEntryIndex(table.Factory.NewEntryIndex()).
		WithElementTypes(diameter.ElementType(), age.ElementType()).
		Build()
	require.NoError(t, err)

	_, err = tbl.NewEntries(n)
	require.NoError(t, err)
	for row := 0; row < n; row++ {
		*diameter.Row(tbl, row) = Diameter(row)
		*age.Row(tbl, row) = Age(100 + row)
	}
	return tbl
}

func TestPackTable(t *testing.T) {
	layout := newCellLayout(t)
	rows := 2*LaneWidth + 1
	tbl := newCellTable(t, rows)

	population := Factory.NewSoA(layout)
	require.NoError(t, population.PackTable(tbl))

	assert.Equal(t, rows, population.Elements())
	assert.Equal(t, 3, population.Vectors())
	for i := 0; i < rows; i++ {
		assert.Equal(t, Diameter(i), diameter.Get(population, i))
		assert.Equal(t, Age(100+i), age.Get(population, i))
		// Array fields have no table column and stay zeroed.
		assert.Equal(t, Coord(0), position.Get(population, i, 0))
	}

	// Packing appends behind existing entities.
	require.NoError(t, population.PackTable(tbl))
	assert.Equal(t, 2*rows, population.Elements())
	assert.Equal(t, Diameter(0), diameter.Get(population, rows))
}

func TestUnpackTable(t *testing.T) {
	layout := newCellLayout(t)
	rows := LaneWidth + 3
	tbl := newCellTable(t, rows)

	population := Factory.NewSoA(layout)
	require.NoError(t, population.PackTable(tbl))
	scale(population)
	require.NoError(t, population.UnpackTable(tbl))

	for row := 0; row < rows; row++ {
		assert.Equal(t, Diameter(2*row), *diameter.Row(tbl, row))
		assert.Equal(t, Age(100+row), *age.Row(tbl, row))
	}

	t.Run("length mismatch", func(t *testing.T) {
		short := newPopulation(t, layout, 2)
		assert.Error(t, short.UnpackTable(tbl))
	})

	t.Run("nil table", func(t *testing.T) {
		assert.Error(t, population.PackTable(nil))
		assert.Error(t, population.UnpackTable(nil))
	})
}

func TestPackTableIntoVariant(t *testing.T) {
	layout := newCellLayout(t)
	slim, err := layout.Variant("slim", Only(diameter))
	require.NoError(t, err)

	t.Cleanup(func() { Config.SetLogger(zerolog.Nop()) })
	var buf bytes.Buffer
	Config.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	population := Factory.NewSoA(slim)
	require.NoError(t, population.PackTable(newCellTable(t, 3)))
	assert.Contains(t, buf.String(), `"skipped":1`)
	for i := 0; i < 3; i++ {
		assert.Equal(t, Diameter(i), diameter.Get(population, i))
	}
	assert.False(t, age.Check(population))
}

package aosoa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyScalarField(t *testing.T) {
	src := Lanes[int]{1, 2, 3, 4}
	var dst Lanes[int]

	CopyScalarField(&dst, 0, &src, 3)
	CopyScalarField(&dst, 3, &src, 0)
	assert.Equal(t, Lanes[int]{4, 0, 0, 1}, dst)

	CopyScalarFieldFrom(&dst, 1, 9)
	assert.Equal(t, Lanes[int]{4, 9, 0, 1}, dst)
	assert.Equal(t, Lanes[int]{1, 2, 3, 4}, src)
}

func TestCopyArrayField(t *testing.T) {
	src := []Lanes[int]{{1, 2, 3, 4}, {5, 6, 7, 8}}
	dst := make([]Lanes[int], 2)

	CopyArrayField(dst, 2, src, 1)
	assert.Equal(t, []Lanes[int]{{0, 0, 2, 0}, {0, 0, 6, 0}}, dst)

	CopyArrayFieldFrom(dst, 0, []int{-1, -2})
	assert.Equal(t, []Lanes[int]{{-1, 0, 2, 0}, {-2, 0, 6, 0}}, dst)
	assert.Len(t, dst, 2)
}

func TestFieldDescriptors(t *testing.T) {
	assert.Equal(t, ShapeValue, diameter.Shape())
	assert.Equal(t, 1, diameter.Len())
	assert.Equal(t, ShapeArray, position.Shape())
	assert.Equal(t, 3, position.Len())
	assert.NotEqual(t, diameter.Ordinal(), age.Ordinal())
	assert.NotEqual(t, diameter.Ordinal(), position.Ordinal())
	assert.NotNil(t, diameter.ElementType())
	assert.Equal(t, "aosoa.Diameter", diameter.String())
	assert.Equal(t, "[3]aosoa.Coord", position.String())

	assert.Panics(t, func() { FactoryNewArrayField[Coord](0) })
}

func TestFieldBatchViews(t *testing.T) {
	layout := newCellLayout(t)
	population := newPopulation(t, layout, LaneWidth+1)

	lanes := diameter.Batch(population, 0)
	require.NotNil(t, lanes)
	for lane, v := range lanes.Slice() {
		assert.Equal(t, Diameter(lane), v)
	}

	// Views alias the population's storage.
	lanes.Slice()[1] = 77
	assert.Equal(t, Diameter(77), diameter.Get(population, 1))

	y := position.Batch(population, 1, 1)
	require.NotNil(t, y)
	assert.Equal(t, Coord(2*LaneWidth), y[0])

	cell := Factory.NewScalar(layout)
	assert.Nil(t, position.Batch(cell, 0, 0))
}

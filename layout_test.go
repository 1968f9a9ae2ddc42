package aosoa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ordinals(fields ...FieldDescriptor) []uint32 {
	out := make([]uint32, len(fields))
	for i, f := range fields {
		out[i] = f.Ordinal()
	}
	return out
}

func TestNewLayout(t *testing.T) {
	layout := newCellLayout(t)

	assert.Equal(t, "cell", layout.Name())
	assert.Equal(t, ordinals(diameter, age, position), ordinals(layout.Fields()...))
	assert.Equal(t, ordinals(diameter, age, position), ordinals(layout.Materialized()...))
	assert.True(t, layout.Contains(diameter, age, position))
	assert.True(t, layout.Contains())
}

func TestNewLayoutDuplicateField(t *testing.T) {
	_, err := Factory.NewLayout("cell", diameter, age, diameter)
	var dupErr DuplicateFieldError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, diameter.Ordinal(), dupErr.Field.Ordinal())
}

func TestLayoutVariants(t *testing.T) {
	layout := newCellLayout(t)

	tests := []struct {
		name   string
		policy Policy
		want   []FieldDescriptor
	}{
		{"select all", SelectAll, []FieldDescriptor{diameter, age, position}},
		{"only", Only(position, diameter), []FieldDescriptor{diameter, position}},
		{"omit", Omit(position), []FieldDescriptor{diameter, age}},
		{
			"by ordinal",
			PolicyFunc(func(_ FieldDescriptor, _ *Layout, ordinal int) bool { return ordinal != 1 }),
			[]FieldDescriptor{diameter, position},
		},
		{
			"by shape",
			PolicyFunc(func(f FieldDescriptor, _ *Layout, _ int) bool { return f.Shape() == ShapeValue }),
			[]FieldDescriptor{diameter, age},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variant, err := layout.Variant(tt.name, tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.name, variant.Name())
			assert.Equal(t, ordinals(layout.Fields()...), ordinals(variant.Fields()...))
			assert.Equal(t, ordinals(tt.want...), ordinals(variant.Materialized()...))
			assert.True(t, variant.Contains(tt.want...))
		})
	}
}

func TestPolicySeesEnclosingLayout(t *testing.T) {
	layout := newCellLayout(t)
	var seen []string
	_, err := layout.Variant("probe", PolicyFunc(func(_ FieldDescriptor, l *Layout, _ int) bool {
		seen = append(seen, l.Name())
		return true
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"probe", "probe", "probe"}, seen)
}

func TestVariantOfVariantNarrows(t *testing.T) {
	layout := newCellLayout(t)
	slim, err := layout.Variant("slim", Omit(age))
	require.NoError(t, err)

	// Selecting everything cannot bring the omitted field back.
	again, err := slim.Variant("again", SelectAll)
	require.NoError(t, err)
	assert.Equal(t, ordinals(diameter, position), ordinals(again.Materialized()...))
	assert.False(t, again.Contains(age))
}

func TestOmittedFieldAccess(t *testing.T) {
	layout := newCellLayout(t)
	slim, err := layout.Variant("slim", Omit(age))
	require.NoError(t, err)

	cell := Factory.NewScalar(slim)
	assert.True(t, diameter.Check(cell))
	assert.True(t, position.Check(cell))
	assert.False(t, age.Check(cell))

	want := FieldNotMaterializedError{Field: age, Layout: "slim"}.Error()
	assert.PanicsWithError(t, want, func() { age.Get(cell, 0) })
	assert.PanicsWithError(t, want, func() { age.Set(cell, 0, 1) })

	// A slim cell packs into a full population only if every field exists.
	population := Factory.NewSoA(layout)
	var mismatch LayoutMismatchError
	require.ErrorAs(t, population.PushBack(cell), &mismatch)
	assert.Equal(t, 0, population.Elements())

	// The other direction projects.
	slimPopulation := Factory.NewSoA(slim)
	full := Factory.NewScalar(layout)
	setCell(full, 0, 4)
	require.NoError(t, slimPopulation.PushBack(full))
	requireCell(t, slimPopulation, 0, 4)
}

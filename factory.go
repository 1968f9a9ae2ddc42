package aosoa

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

// NewLayout declares an entity type whose layouts materialize every field.
func (f factory) NewLayout(name string, fields ...FieldDescriptor) (*Layout, error) {
	return newLayout(name, fields, SelectAll)
}

func (f factory) NewScalar(layout *Layout) *Scalar {
	return newScalar(layout)
}

func (f factory) NewVector(layout *Layout) *Vector {
	v := newVector(layout)
	return &v
}

func (f factory) NewSoA(layout *Layout) *SoA {
	return newSoA(layout)
}

// NewSoARef returns a view sharing owner's bookkeeping and storage.
func (f factory) NewSoARef(owner *SoA) *SoARef {
	return newSoARef(owner)
}

func (f factory) NewAoSoA(layout *Layout) *AoSoA {
	return newAoSoA(layout)
}

func (f factory) NewIndexList(indices ...int) IndexList {
	var l IndexList
	l.Append(indices...)
	return l
}

func (f factory) NewCursor(source Batched) *Cursor {
	return newCursor(source)
}

func FactoryNewField[T any]() Field[T] {
	elem := table.FactoryNewElementType[T]()
	fieldSchema.Register(elem)
	return Field[T]{
		elem:    elem,
		rows:    table.FactoryNewAccessor[T](elem),
		ordinal: fieldSchema.RowIndexFor(elem),
	}
}

// FactoryNewArrayField declares a field holding n values of T per entity.
func FactoryNewArrayField[T any](n int) ArrayField[T] {
	if n < 1 {
		panic("aosoa: array field length must be positive")
	}
	elem := table.FactoryNewElementType[[]T]()
	fieldSchema.Register(elem)
	return ArrayField[T]{
		elem:    elem,
		ordinal: fieldSchema.RowIndexFor(elem),
		n:       n,
	}
}

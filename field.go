package aosoa

import (
	"fmt"

	"github.com/TheBitDrifter/table"
)

var (
	_ FieldDescriptor = Field[int]{}
	_ FieldDescriptor = ArrayField[int]{}
)

// fieldSchema hands out the ordinals shared by every layout.
var fieldSchema = table.Factory.NewSchema()

// Shape is the declared storage shape of a field.
type Shape int

const (
	ShapeValue Shape = iota
	ShapeArray
)

// Field is a plain per-lane value of an entity.
//
// Like warehouse components, each field needs its own Go type:
//
//	type Diameter float64
//	var diameter = aosoa.FactoryNewField[Diameter]()
type Field[T any] struct {
	elem    table.ElementType
	rows    table.Accessor[T]
	ordinal uint32
}

// ArrayField is a fixed-size array of per-lane values. Its length is fixed
// when the field is declared.
type ArrayField[T any] struct {
	elem    table.ElementType
	ordinal uint32
	n       int
}

func (f Field[T]) ElementType() table.ElementType { return f.elem }
func (f Field[T]) Ordinal() uint32                { return f.ordinal }
func (f Field[T]) Len() int                       { return 1 }
func (f Field[T]) Shape() Shape                   { return ShapeValue }

func (f Field[T]) String() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func (f Field[T]) newColumn(scalar bool, batches int) column {
	return &valueColumn[T]{
		field:      f,
		columnData: newColumnData[T](1, scalar, batches),
	}
}

// Get returns the value of the entity at index. Scalar entities only have
// index 0.
func (f Field[T]) Get(e Entity, index int) T {
	c := columnOf[*valueColumn[T]](e, f)
	if c.scalar() {
		return c.values[0]
	}
	batch, lane := decode(index)
	return c.lanes[batch][lane]
}

func (f Field[T]) Set(e Entity, index int, v T) {
	c := columnOf[*valueColumn[T]](e, f)
	if c.scalar() {
		c.values[0] = v
		return
	}
	batch, lane := decode(index)
	c.lanes[batch][lane] = v
}

// Batch returns the packed lanes of a batch for vectorized kernels.
// Scalar entities have no batches and yield nil.
func (f Field[T]) Batch(e Entity, batch int) *Lanes[T] {
	c := columnOf[*valueColumn[T]](e, f)
	if c.scalar() {
		return nil
	}
	return &c.lanes[batch]
}

// Check reports whether the entity materializes the field.
func (f Field[T]) Check(e Entity) bool {
	_, ok := e.fields().column(f.ordinal)
	return ok
}

// Row returns the field's value in a table row.
func (f Field[T]) Row(tbl table.Table, row int) *T {
	return f.rows.Get(row, tbl)
}

func (f ArrayField[T]) ElementType() table.ElementType { return f.elem }
func (f ArrayField[T]) Ordinal() uint32                { return f.ordinal }
func (f ArrayField[T]) Len() int                       { return f.n }
func (f ArrayField[T]) Shape() Shape                   { return ShapeArray }

func (f ArrayField[T]) String() string {
	var zero T
	return fmt.Sprintf("[%d]%T", f.n, zero)
}

func (f ArrayField[T]) newColumn(scalar bool, batches int) column {
	return &arrayColumn[T]{
		field:      f,
		columnData: newColumnData[T](f.n, scalar, batches),
	}
}

// Get returns element k of the array held by the entity at index.
func (f ArrayField[T]) Get(e Entity, index, k int) T {
	c := columnOf[*arrayColumn[T]](e, f)
	if c.scalar() {
		return c.values[k]
	}
	batch, lane := decode(index)
	return c.elems(batch)[k][lane]
}

func (f ArrayField[T]) Set(e Entity, index, k int, v T) {
	c := columnOf[*arrayColumn[T]](e, f)
	if c.scalar() {
		c.values[k] = v
		return
	}
	batch, lane := decode(index)
	c.elems(batch)[k][lane] = v
}

// Batch returns the packed lanes of element k within a batch.
func (f ArrayField[T]) Batch(e Entity, batch, k int) *Lanes[T] {
	c := columnOf[*arrayColumn[T]](e, f)
	if c.scalar() {
		return nil
	}
	return &c.elems(batch)[k]
}

func (f ArrayField[T]) Check(e Entity) bool {
	_, ok := e.fields().column(f.ordinal)
	return ok
}

func columnOf[C column](e Entity, f FieldDescriptor) C {
	c, ok := e.fields().column(f.Ordinal())
	if !ok {
		panic(FieldNotMaterializedError{Field: f, Layout: e.Layout().Name()})
	}
	return c.(C)
}

// CopyScalarField copies one lane of a plain field between batches.
func CopyScalarField[T any](dst *Lanes[T], dstLane int, src *Lanes[T], srcLane int) {
	dst[dstLane] = src[srcLane]
}

// CopyScalarFieldFrom stores a scalar entity's plain field into one lane.
func CopyScalarFieldFrom[T any](dst *Lanes[T], dstLane int, src T) {
	dst[dstLane] = src
}

// CopyArrayField copies one lane of every array element between batches.
// dst and src must have the same length.
func CopyArrayField[T any](dst []Lanes[T], dstLane int, src []Lanes[T], srcLane int) {
	for k := range dst {
		dst[k][dstLane] = src[k][srcLane]
	}
}

// CopyArrayFieldFrom stores a scalar entity's array field into one lane.
func CopyArrayFieldFrom[T any](dst []Lanes[T], dstLane int, src []T) {
	for k := range dst {
		dst[k][dstLane] = src[k]
	}
}

package aosoa

import (
	"github.com/TheBitDrifter/table"
)

// Backend is the bookkeeping every layout provides.
type Backend interface {
	Size() int
	Elements() int
	IsFull() bool
}

// Entity is an entity type materialized in one of the layouts: *Scalar,
// *Vector, *SoA or *SoARef. Field accessors accept any of them.
type Entity interface {
	Backend
	Kind() Kind
	Layout() *Layout
	fields() *fieldStore
}

// Batched is a population that can be walked batch by batch.
type Batched interface {
	Vectors() int
	BatchOccupancy(batch int) int
}

// FieldDescriptor describes one field of an entity type.
type FieldDescriptor interface {
	ElementType() table.ElementType
	Ordinal() uint32
	Len() int
	Shape() Shape
	newColumn(scalar bool, batches int) column
}

// Policy decides which fields an entity variant materializes. It is handed
// the field, the enclosing layout and the field's declaration ordinal.
type Policy interface {
	Select(field FieldDescriptor, layout *Layout, ordinal int) bool
}

type column interface {
	descriptor() FieldDescriptor
	resize(batches int)
	reserve(batches int)
	copyLane(dst column, dstBatch, dstLane, srcBatch, srcLane int)
	inTable(tbl table.Table) bool
	loadRow(tbl table.Table, row, batch, lane int)
	storeRow(tbl table.Table, row, batch, lane int)
}

// gatherSource is a population Gather can read lanes from.
type gatherSource interface {
	Elements() int
	Layout() *Layout
	holds(index int) bool
	storeFor(batch int) (store *fieldStore, local int)
}

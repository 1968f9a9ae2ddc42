package aosoa

import "github.com/TheBitDrifter/table"

var (
	_ column = &valueColumn[int]{}
	_ column = &arrayColumn[int]{}
)

// columnData stores one field for a whole entity. Batched layouts keep
// stride lanes per batch, indexed batch*stride+element; the scalar layout
// keeps stride plain values.
type columnData[T any] struct {
	stride int
	lanes  []Lanes[T]
	values []T
}

func newColumnData[T any](stride int, scalar bool, batches int) columnData[T] {
	if scalar {
		return columnData[T]{stride: stride, values: make([]T, stride)}
	}
	return columnData[T]{stride: stride, lanes: make([]Lanes[T], batches*stride)}
}

func (c *columnData[T]) scalar() bool {
	return c.values != nil
}

func (c *columnData[T]) elems(batch int) []Lanes[T] {
	start := batch * c.stride
	return c.lanes[start : start+c.stride]
}

func (c *columnData[T]) resize(batches int) {
	n := batches * c.stride
	if n <= cap(c.lanes) {
		old := len(c.lanes)
		c.lanes = c.lanes[:n]
		if n > old {
			clear(c.lanes[old:n])
		}
		return
	}
	// Grow by doubling or to n, whichever is larger
	grown := make([]Lanes[T], n, max(n, 2*cap(c.lanes)))
	copy(grown, c.lanes)
	c.lanes = grown
}

func (c *columnData[T]) reserve(batches int) {
	n := batches * c.stride
	if n <= cap(c.lanes) {
		return
	}
	grown := make([]Lanes[T], len(c.lanes), n)
	copy(grown, c.lanes)
	c.lanes = grown
}

type valueColumn[T any] struct {
	field Field[T]
	columnData[T]
}

func (c *valueColumn[T]) descriptor() FieldDescriptor { return c.field }

func (c *valueColumn[T]) copyLane(dst column, dstBatch, dstLane, srcBatch, srcLane int) {
	d := dst.(*valueColumn[T])
	switch {
	case c.scalar() && d.scalar():
		d.values[0] = c.values[0]
	case d.scalar():
		d.values[0] = c.lanes[srcBatch][srcLane]
	case c.scalar():
		CopyScalarFieldFrom(&d.lanes[dstBatch], dstLane, c.values[0])
	default:
		CopyScalarField(&d.lanes[dstBatch], dstLane, &c.lanes[srcBatch], srcLane)
	}
}

func (c *valueColumn[T]) inTable(tbl table.Table) bool {
	return c.field.rows.Check(tbl)
}

func (c *valueColumn[T]) loadRow(tbl table.Table, row, batch, lane int) {
	c.lanes[batch][lane] = *c.field.rows.Get(row, tbl)
}

func (c *valueColumn[T]) storeRow(tbl table.Table, row, batch, lane int) {
	*c.field.rows.Get(row, tbl) = c.lanes[batch][lane]
}

type arrayColumn[T any] struct {
	field ArrayField[T]
	columnData[T]
}

func (c *arrayColumn[T]) descriptor() FieldDescriptor { return c.field }

func (c *arrayColumn[T]) copyLane(dst column, dstBatch, dstLane, srcBatch, srcLane int) {
	d := dst.(*arrayColumn[T])
	switch {
	case c.scalar() && d.scalar():
		copy(d.values, c.values)
	case d.scalar():
		for k, lanes := range c.elems(srcBatch) {
			d.values[k] = lanes[srcLane]
		}
	case c.scalar():
		CopyArrayFieldFrom(d.elems(dstBatch), dstLane, c.values)
	default:
		CopyArrayField(d.elems(dstBatch), dstLane, c.elems(srcBatch), srcLane)
	}
}

// Array fields have no table representation.
func (c *arrayColumn[T]) inTable(table.Table) bool             { return false }
func (c *arrayColumn[T]) loadRow(table.Table, int, int, int)  {}
func (c *arrayColumn[T]) storeRow(table.Table, int, int, int) {}

package aosoa

import (
	"iter"
)

// Cursor walks a batched population one batch at a time.
type Cursor struct {
	source Batched

	// Current iteration state
	batch     int
	occupancy int

	initialized bool
}

func newCursor(source Batched) *Cursor {
	return &Cursor{source: source}
}

// Next advances to the next batch and reports whether there was one.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.batch = -1
		c.initialized = true
	}
	if c.batch+1 < c.source.Vectors() {
		c.batch++
		c.occupancy = c.source.BatchOccupancy(c.batch)
		return true
	}
	c.Reset()
	return false
}

// Batches yields every batch index with its number of valid lanes.
func (c *Cursor) Batches() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		c.Reset()
		for c.Next() {
			if !yield(c.batch, c.occupancy) {
				c.Reset()
				return
			}
		}
	}
}

func (c *Cursor) Reset() {
	c.batch = 0
	c.occupancy = 0
	c.initialized = false
}

// Batch returns the index of the current batch.
func (c *Cursor) Batch() int {
	return c.batch
}

// Occupancy returns the number of valid lanes in the current batch.
func (c *Cursor) Occupancy() int {
	return c.occupancy
}

func (c *Cursor) RemainingBatches() int {
	if !c.initialized {
		return c.source.Vectors()
	}
	return c.source.Vectors() - c.batch - 1
}

func (c *Cursor) TotalElements() int {
	total := 0
	for b := 0; b < c.source.Vectors(); b++ {
		total += c.source.BatchOccupancy(b)
	}
	return total
}

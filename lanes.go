package aosoa

// LaneWidth is the number of entities packed into one batch.
const LaneWidth = 4

// Lanes holds one field's values for every lane of a packed batch.
type Lanes[T any] [LaneWidth]T

// Slice returns the lanes as a slice backed by the batch.
func (l *Lanes[T]) Slice() []T {
	return l[:]
}

// decode splits a global scalar index into its batch and lane.
func decode(index int) (batch, lane int) {
	return index / LaneWidth, index % LaneWidth
}

// batchesFor returns how many batches n entities occupy and the occupancy
// of the last one.
func batchesFor(n int) (batches, last int) {
	if n <= 0 {
		return 0, 0
	}
	batches = n / LaneWidth
	last = n % LaneWidth
	if last != 0 {
		batches++
	} else {
		last = LaneWidth
	}
	return batches, last
}

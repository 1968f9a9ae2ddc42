package aosoa

import "iter"

var (
	_ gatherSource = &AoSoA{}
	_ Batched      = &AoSoA{}
)

// AoSoA is a growable sequence of packed batches addressed batch first, then
// lane. It is the destination of Gather.
type AoSoA struct {
	layout  *Layout
	batches []Vector
}

func newAoSoA(layout *Layout) *AoSoA {
	return &AoSoA{layout: layout}
}

func (a *AoSoA) Layout() *Layout { return a.layout }

// Len returns the number of batches.
func (a *AoSoA) Len() int     { return len(a.batches) }
func (a *AoSoA) Vectors() int { return len(a.batches) }

func (a *AoSoA) Elements() int {
	total := 0
	for i := range a.batches {
		total += a.batches[i].Size()
	}
	return total
}

func (a *AoSoA) BatchOccupancy(batch int) int {
	return a.batches[batch].Size()
}

// At returns the batch at index b.
func (a *AoSoA) At(b int) *Vector {
	return &a.batches[b]
}

func (a *AoSoA) storeFor(batch int) (*fieldStore, int) {
	return &a.batches[batch].store, 0
}

// holds reports whether index addresses an occupied lane.
func (a *AoSoA) holds(index int) bool {
	if index < 0 {
		return false
	}
	batch, lane := decode(index)
	return batch < len(a.batches) && lane < a.batches[batch].Size()
}

// SetSize resizes the container to n batches. Batches that come into range
// start empty. A container without a layout cannot hold batches.
func (a *AoSoA) SetSize(n int) error {
	if a.layout == nil && n > 0 {
		return MissingLayoutError{}
	}
	old := len(a.batches)
	if n <= cap(a.batches) {
		a.batches = a.batches[:n]
	} else {
		// Grow by doubling or to n, whichever is larger
		grown := make([]Vector, n, max(n, 2*cap(a.batches)))
		copy(grown, a.batches[:old])
		a.batches = grown
	}
	for i := old; i < n; i++ {
		if a.batches[i].store.layout != a.layout {
			a.batches[i] = newVector(a.layout)
			continue
		}
		a.batches[i].VectorBackend = VectorBackend{}
	}
	Config.logger.Debug().
		Str("layout", a.layout.Name()).
		Int("from", old).
		Int("to", n).
		Msg("resized aosoa")
	return nil
}

// Reserve preallocates room for the given number of batches.
func (a *AoSoA) Reserve(batches int) {
	if batches <= cap(a.batches) {
		return
	}
	grown := make([]Vector, len(a.batches), batches)
	copy(grown, a.batches)
	a.batches = grown
}

// Clear drops every batch while keeping allocated capacity.
func (a *AoSoA) Clear() {
	a.batches = a.batches[:0]
}

// PushBack appends a copy of v's valid lanes as a new batch. Only the last
// batch may be partial, so a batch cannot follow a partial one. A container
// without a layout adopts v's.
func (a *AoSoA) PushBack(v *Vector) error {
	if n := len(a.batches); n > 0 && !a.batches[n-1].IsFull() {
		return PartialBatchError{Occupancy: a.batches[n-1].Size()}
	}
	if a.layout == nil {
		a.layout = v.Layout()
	}
	plan, err := planCopy(v.Layout(), a.layout)
	if err != nil {
		return err
	}
	if err := a.SetSize(len(a.batches) + 1); err != nil {
		return err
	}
	dest := &a.batches[len(a.batches)-1]
	for lane := 0; lane < v.Size(); lane++ {
		plan.copy(&dest.store, 0, lane, &v.store, 0, lane)
	}
	return dest.SetSize(v.Size())
}

func (a *AoSoA) Scalar(index int) (*Scalar, error) {
	return unpack(a, index)
}

func (a *AoSoA) CopyTo(srcBatch, srcLane, destLane int, dest *Vector) error {
	return copyTo(a, srcBatch, srcLane, destLane, dest)
}

// Gather packs the entities at indices into out. Indices address the
// batch-then-lane positions of a; an index landing on an unoccupied lane is
// out of range.
func (a *AoSoA) Gather(indices IndexList, out *AoSoA) error {
	return gather(a, indices, out)
}

func (a *AoSoA) Batches() iter.Seq2[int, int] {
	return newCursor(a).Batches()
}

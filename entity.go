package aosoa

import "iter"

var (
	_ Entity = &Scalar{}
	_ Entity = &Vector{}
	_ Entity = &SoA{}
	_ Entity = &SoARef{}

	_ gatherSource = &SoA{}
	_ gatherSource = &SoARef{}

	_ Batched = &SoA{}
	_ Batched = &SoARef{}
)

// Scalar is a single entity.
type Scalar struct {
	ScalarBackend
	store fieldStore
}

func newScalar(layout *Layout) *Scalar {
	return &Scalar{store: newFieldStore(layout, true, 0)}
}

func (s *Scalar) Kind() Kind          { return KindScalar }
func (s *Scalar) Layout() *Layout     { return s.store.layout }
func (s *Scalar) fields() *fieldStore { return &s.store }

// Vector is one packed batch of up to LaneWidth entities.
type Vector struct {
	VectorBackend
	store fieldStore
}

func newVector(layout *Layout) Vector {
	return Vector{store: newFieldStore(layout, false, 1)}
}

func (v *Vector) Kind() Kind          { return KindVector }
func (v *Vector) Layout() *Layout     { return v.store.layout }
func (v *Vector) fields() *fieldStore { return &v.store }

// PushBack packs a scalar entity into the next free lane.
func (v *Vector) PushBack(s *Scalar) error {
	plan, err := planCopy(s.Layout(), v.Layout())
	if err != nil {
		return err
	}
	lane := v.size
	if err := v.VectorBackend.PushBack(s.ScalarBackend); err != nil {
		return err
	}
	plan.copy(&v.store, 0, lane, &s.store, 0, 0)
	return nil
}

// Scalar unpacks the entity in lane into a new scalar entity.
func (v *Vector) Scalar(lane int) (*Scalar, error) {
	if lane < 0 || lane >= v.size {
		return nil, IndexOutOfRangeError{Index: lane, Elements: v.size}
	}
	s := newScalar(v.Layout())
	s.Layout().identity.copy(&s.store, 0, 0, &v.store, 0, lane)
	return s, nil
}

// SoA is an owning AoSoA population: an ordered sequence of packed batches
// where every batch but the last is full.
type SoA struct {
	SoABackend
	store fieldStore
}

func newSoA(layout *Layout) *SoA {
	return &SoA{store: newFieldStore(layout, false, 0)}
}

func (s *SoA) Kind() Kind          { return KindSoA }
func (s *SoA) Layout() *Layout     { return s.store.layout }
func (s *SoA) fields() *fieldStore { return &s.store }

func (s *SoA) storeFor(batch int) (*fieldStore, int) {
	return &s.store, batch
}

func (s *SoA) holds(index int) bool {
	return index >= 0 && index < s.Elements()
}

func (s *SoA) BatchOccupancy(batch int) int {
	if batch == s.vectors-1 {
		return s.lastSize
	}
	return LaneWidth
}

// PushBack appends a scalar entity, opening a new batch when needed.
func (s *SoA) PushBack(sc *Scalar) error {
	plan, err := planCopy(sc.Layout(), s.Layout())
	if err != nil {
		return err
	}
	s.SoABackend.PushBack(sc.ScalarBackend)
	s.store.resize(s.vectors)
	plan.copy(&s.store, s.vectors-1, s.lastSize-1, &sc.store, 0, 0)
	return nil
}

// PushBackVector appends a full batch. The population's last batch must be
// full as well.
func (s *SoA) PushBackVector(v *Vector) error {
	plan, err := planCopy(v.Layout(), s.Layout())
	if err != nil {
		return err
	}
	if err := s.SoABackend.PushBackVector(&v.VectorBackend); err != nil {
		return err
	}
	s.store.resize(s.vectors)
	for lane := 0; lane < LaneWidth; lane++ {
		plan.copy(&s.store, s.vectors-1, lane, &v.store, 0, lane)
	}
	return nil
}

// Clear removes every entity while keeping allocated capacity.
func (s *SoA) Clear() {
	s.SoABackend.Clear()
	s.store.resize(0)
}

// Reserve preallocates room for the given number of batches.
func (s *SoA) Reserve(batches int) {
	s.store.reserve(batches)
}

// Scalar unpacks the entity at a global index.
func (s *SoA) Scalar(index int) (*Scalar, error) {
	return unpack(s, index)
}

// CopyTo copies every field of the entity at (srcBatch, srcLane) into lane
// destLane of dest.
func (s *SoA) CopyTo(srcBatch, srcLane, destLane int, dest *Vector) error {
	return copyTo(s, srcBatch, srcLane, destLane, dest)
}

// Gather packs the entities at indices, in order, into out. out is resized
// to exactly len(indices) entities; s is never modified.
func (s *SoA) Gather(indices IndexList, out *AoSoA) error {
	return gather(s, indices, out)
}

// Batches yields every batch index with its number of valid lanes.
func (s *SoA) Batches() iter.Seq2[int, int] {
	return newCursor(s).Batches()
}

// SoARef is a non-owning view of an SoA population. It observes the owner's
// bookkeeping and fields and cannot grow or shrink it; it must not be used
// past the lifetime its owner is meant to have.
type SoARef struct {
	SoARefBackend
	owner *SoA
}

func newSoARef(owner *SoA) *SoARef {
	return &SoARef{
		SoARefBackend: SoARefBackend{owner: &owner.SoABackend},
		owner:         owner,
	}
}

func (r *SoARef) Kind() Kind          { return KindSoARef }
func (r *SoARef) Layout() *Layout     { return r.owner.Layout() }
func (r *SoARef) fields() *fieldStore { return &r.owner.store }

func (r *SoARef) storeFor(batch int) (*fieldStore, int) {
	return r.owner.storeFor(batch)
}

func (r *SoARef) holds(index int) bool {
	return r.owner.holds(index)
}

func (r *SoARef) BatchOccupancy(batch int) int {
	return r.owner.BatchOccupancy(batch)
}

func (r *SoARef) Scalar(index int) (*Scalar, error) {
	return unpack(r, index)
}

func (r *SoARef) CopyTo(srcBatch, srcLane, destLane int, dest *Vector) error {
	return copyTo(r, srcBatch, srcLane, destLane, dest)
}

func (r *SoARef) Gather(indices IndexList, out *AoSoA) error {
	return gather(r, indices, out)
}

func unpack(src gatherSource, index int) (*Scalar, error) {
	if !src.holds(index) {
		return nil, IndexOutOfRangeError{Index: index, Elements: src.Elements()}
	}
	batch, lane := decode(index)
	store, local := src.storeFor(batch)
	s := newScalar(src.Layout())
	src.Layout().identity.copy(&s.store, 0, 0, store, local, lane)
	return s, nil
}

func copyTo(src gatherSource, srcBatch, srcLane, destLane int, dest *Vector) error {
	index := srcBatch*LaneWidth + srcLane
	if srcLane < 0 || srcLane >= LaneWidth || !src.holds(index) {
		return IndexOutOfRangeError{Index: index, Elements: src.Elements()}
	}
	if destLane < 0 || destLane >= LaneWidth {
		return CapacityError{Capacity: LaneWidth, Requested: destLane + 1}
	}
	plan, err := planCopy(src.Layout(), dest.Layout())
	if err != nil {
		return err
	}
	store, local := src.storeFor(srcBatch)
	plan.copy(&dest.store, 0, destLane, store, local, srcLane)
	return nil
}

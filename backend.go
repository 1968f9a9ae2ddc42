package aosoa

var (
	_ Backend = ScalarBackend{}
	_ Backend = &VectorBackend{}
	_ Backend = &SoABackend{}
	_ Backend = SoARefBackend{}
)

// Kind tags the memory layout an entity is materialized in.
type Kind int

const (
	KindScalar Kind = iota
	KindVector
	KindSoA
	KindSoARef
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindSoA:
		return "soa"
	case KindSoARef:
		return "soa-ref"
	}
	return "unknown"
}

// ScalarBackend is the bookkeeping of a single entity. It is always full.
type ScalarBackend struct{}

func (ScalarBackend) Size() int     { return 1 }
func (ScalarBackend) Elements() int { return 1 }
func (ScalarBackend) IsFull() bool  { return true }

// VectorBackend tracks the occupancy of one packed batch.
type VectorBackend struct {
	size int
}

// SetSize sets the number of valid lanes.
func (b *VectorBackend) SetSize(n int) error {
	if n < 0 || n > LaneWidth {
		return CapacityError{Capacity: LaneWidth, Requested: n}
	}
	b.size = n
	return nil
}

func (b *VectorBackend) Size() int     { return b.size }
func (b *VectorBackend) Elements() int { return b.size }
func (b *VectorBackend) Vectors() int  { return 1 }
func (b *VectorBackend) IsFull() bool  { return b.size == LaneWidth }

// ElementsCurrentVector matches the SoA query of the same name so callers can
// ask either layout how many lanes of the working batch are valid.
func (b *VectorBackend) ElementsCurrentVector() int { return b.size }

// PushBack claims the next lane for a scalar entity.
func (b *VectorBackend) PushBack(ScalarBackend) error {
	if b.IsFull() {
		return CapacityError{Capacity: LaneWidth, Requested: b.size + 1}
	}
	b.size++
	return nil
}

// SoABackend tracks a sequence of batches where only the last one may be
// partially occupied.
type SoABackend struct {
	vectors  int
	lastSize int
}

// SetSize sets the occupancy of the last batch.
func (b *SoABackend) SetSize(n int) error {
	if n < 0 || n > LaneWidth {
		return CapacityError{Capacity: LaneWidth, Requested: n}
	}
	b.lastSize = n
	return nil
}

// Size returns the number of batches, not the number of entities.
func (b *SoABackend) Size() int { return b.vectors }

func (b *SoABackend) Vectors() int { return b.vectors }

func (b *SoABackend) Elements() int {
	if b.vectors == 0 {
		return 0
	}
	return (b.vectors-1)*LaneWidth + b.lastSize
}

func (b *SoABackend) ElementsCurrentVector() int { return b.lastSize }

func (b *SoABackend) IsFull() bool { return b.lastSize == LaneWidth }

func (b *SoABackend) Clear() {
	b.vectors = 0
	b.lastSize = 0
}

// Reserve is a capacity hint; bookkeeping is unaffected.
func (b *SoABackend) Reserve(int) {}

// PushBack accounts for one more scalar entity, opening a new batch when the
// population is empty or the last batch is full.
func (b *SoABackend) PushBack(ScalarBackend) {
	if b.Elements() == 0 || b.IsFull() {
		b.vectors++
		b.lastSize = 1
		return
	}
	b.lastSize++
}

// PushBackVector accounts for one more full batch. Beyond counting the
// batch, it sets the last occupancy to LaneWidth and returns
// PartialBatchError when v is partial or the current last batch is, so
// every batch but the last stays full.
func (b *SoABackend) PushBackVector(v *VectorBackend) error {
	if !v.IsFull() {
		return PartialBatchError{Occupancy: v.Size()}
	}
	if b.vectors != 0 && !b.IsFull() {
		return PartialBatchError{Occupancy: b.lastSize}
	}
	b.vectors++
	b.lastSize = LaneWidth
	return nil
}

// SoARefBackend observes the bookkeeping of an owning SoABackend.
type SoARefBackend struct {
	owner *SoABackend
}

func (b SoARefBackend) Size() int                  { return b.owner.Size() }
func (b SoARefBackend) Vectors() int               { return b.owner.Vectors() }
func (b SoARefBackend) Elements() int              { return b.owner.Elements() }
func (b SoARefBackend) ElementsCurrentVector() int { return b.owner.ElementsCurrentVector() }
func (b SoARefBackend) IsFull() bool               { return b.owner.IsFull() }

package aosoa

import "iter"

// InlineIndices is the number of indices an IndexList holds without
// allocating.
const InlineIndices = 8

// IndexList is a short ordered list of global entity indices, typically the
// neighbors found by a spatial query. The first InlineIndices entries live
// inline; further entries spill to the heap.
type IndexList struct {
	inline [InlineIndices]int
	n      int
	spill  []int
}

func (l *IndexList) Append(indices ...int) {
	for _, index := range indices {
		if l.n < InlineIndices {
			l.inline[l.n] = index
		} else {
			l.spill = append(l.spill, index)
		}
		l.n++
	}
}

func (l *IndexList) Len() int {
	return l.n
}

func (l *IndexList) At(i int) int {
	if i < InlineIndices {
		return l.inline[i]
	}
	return l.spill[i-InlineIndices]
}

// Reset empties the list, keeping any spill capacity.
func (l *IndexList) Reset() {
	l.n = 0
	l.spill = l.spill[:0]
}

// All yields every position and index in order.
func (l *IndexList) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < l.n; i++ {
			if !yield(i, l.At(i)) {
				return
			}
		}
	}
}

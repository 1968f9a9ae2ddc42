package aosoa

import (
	"github.com/TheBitDrifter/mask"
)

// Layout is an entity type: a name and the ordered fields every layout of
// it materializes.
type Layout struct {
	name         string
	fields       []FieldDescriptor
	selected     mask.Mask
	materialized []FieldDescriptor
	slots        []int
	identity     copyPlan
}

func newLayout(name string, fields []FieldDescriptor, policy Policy) (*Layout, error) {
	l := &Layout{
		name:   name,
		fields: fields,
	}
	var declared mask.Mask
	var maxOrdinal uint32
	for _, f := range fields {
		if declared.ContainsAll(maskOf(f)) {
			return nil, DuplicateFieldError{Field: f}
		}
		declared.Mark(f.Ordinal())
		maxOrdinal = max(maxOrdinal, f.Ordinal())
	}
	l.slots = make([]int, maxOrdinal+1)
	for i := range l.slots {
		l.slots[i] = -1
	}
	for i, f := range fields {
		if !policy.Select(f, l, i) {
			continue
		}
		l.selected.Mark(f.Ordinal())
		l.slots[f.Ordinal()] = len(l.materialized)
		l.materialized = append(l.materialized, f)
	}
	l.identity = make(copyPlan, len(l.materialized))
	for i := range l.identity {
		l.identity[i] = i
	}
	return l, nil
}

// Variant derives a specialized entity type that only materializes the
// fields both this layout and policy select.
func (l *Layout) Variant(name string, policy Policy) (*Layout, error) {
	narrowed := PolicyFunc(func(f FieldDescriptor, v *Layout, ordinal int) bool {
		return l.slot(f.Ordinal()) >= 0 && policy.Select(f, v, ordinal)
	})
	return newLayout(name, l.fields, narrowed)
}

func (l *Layout) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Fields returns every declared field, materialized or not.
func (l *Layout) Fields() []FieldDescriptor { return l.fields }

func (l *Layout) Materialized() []FieldDescriptor { return l.materialized }

// Contains reports whether all of fields are materialized.
func (l *Layout) Contains(fields ...FieldDescriptor) bool {
	return l.selected.ContainsAll(fieldMask(fields))
}

func (l *Layout) slot(ordinal uint32) int {
	if int(ordinal) >= len(l.slots) {
		return -1
	}
	return l.slots[ordinal]
}

func maskOf(f FieldDescriptor) mask.Mask {
	var m mask.Mask
	m.Mark(f.Ordinal())
	return m
}

// copyPlan maps every materialized destination field to the index of the
// matching source column.
type copyPlan []int

func planCopy(src, dst *Layout) (copyPlan, error) {
	if src == nil || dst == nil {
		return nil, MissingLayoutError{}
	}
	if src == dst {
		return src.identity, nil
	}
	plan := make(copyPlan, len(dst.materialized))
	for i, f := range dst.materialized {
		j := src.slot(f.Ordinal())
		if j < 0 || src.materialized[j].Len() != f.Len() {
			return nil, LayoutMismatchError{Field: f, Source: src.name}
		}
		plan[i] = j
	}
	return plan, nil
}

func (p copyPlan) copy(dst *fieldStore, dstBatch, dstLane int, src *fieldStore, srcBatch, srcLane int) {
	for i, j := range p {
		src.columns[j].copyLane(dst.columns[i], dstBatch, dstLane, srcBatch, srcLane)
	}
}

// fieldStore holds the columns of an entity, one per materialized field.
type fieldStore struct {
	layout  *Layout
	columns []column
}

func newFieldStore(layout *Layout, scalar bool, batches int) fieldStore {
	columns := make([]column, len(layout.materialized))
	for i, f := range layout.materialized {
		columns[i] = f.newColumn(scalar, batches)
	}
	return fieldStore{layout: layout, columns: columns}
}

func (s *fieldStore) column(ordinal uint32) (column, bool) {
	i := s.layout.slot(ordinal)
	if i < 0 {
		return nil, false
	}
	return s.columns[i], true
}

func (s *fieldStore) resize(batches int) {
	for _, c := range s.columns {
		c.resize(batches)
	}
}

func (s *fieldStore) reserve(batches int) {
	for _, c := range s.columns {
		c.reserve(batches)
	}
}

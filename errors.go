package aosoa

import "fmt"

type CapacityError struct {
	Capacity, Requested int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("batch capacity %d exceeded: requested %d lanes", e.Capacity, e.Requested)
}

type PartialBatchError struct {
	Occupancy int
}

func (e PartialBatchError) Error() string {
	return fmt.Sprintf("bulk append requires full batches: found occupancy %d of %d", e.Occupancy, LaneWidth)
}

type IndexOutOfRangeError struct {
	Index, Elements int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for %d elements", e.Index, e.Elements)
}

type LayoutMismatchError struct {
	Field  FieldDescriptor
	Source string
}

func (e LayoutMismatchError) Error() string {
	return fmt.Sprintf("field %v is not materialized by source layout %q", e.Field, e.Source)
}

type DuplicateFieldError struct {
	Field FieldDescriptor
}

func (e DuplicateFieldError) Error() string {
	return fmt.Sprintf("field declared twice: %v", e.Field)
}

type FieldNotMaterializedError struct {
	Field  FieldDescriptor
	Layout string
}

func (e FieldNotMaterializedError) Error() string {
	return fmt.Sprintf("field %v is not materialized by layout %q", e.Field, e.Layout)
}

type TableLengthError struct {
	Rows, Elements int
}

func (e TableLengthError) Error() string {
	return fmt.Sprintf("table has %d rows but population holds %d elements", e.Rows, e.Elements)
}

type AliasError struct{}

func (e AliasError) Error() string {
	return "gather destination is its own source"
}

type MissingLayoutError struct{}

func (e MissingLayoutError) Error() string {
	return "aosoa container has no layout"
}

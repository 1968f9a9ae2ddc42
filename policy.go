package aosoa

import "github.com/TheBitDrifter/mask"

var (
	_ Policy = PolicyFunc(nil)
	_ Policy = selectAll{}
	_ Policy = maskPolicy{}
)

// SelectAll is the default policy: every declared field is materialized.
var SelectAll Policy = selectAll{}

type selectAll struct{}

func (selectAll) Select(FieldDescriptor, *Layout, int) bool { return true }

// PolicyFunc adapts a function to a Policy.
type PolicyFunc func(field FieldDescriptor, layout *Layout, ordinal int) bool

func (p PolicyFunc) Select(field FieldDescriptor, layout *Layout, ordinal int) bool {
	return p(field, layout, ordinal)
}

type maskPolicy struct {
	fields mask.Mask
	keep   bool
}

func (p maskPolicy) Select(field FieldDescriptor, _ *Layout, _ int) bool {
	return p.fields.ContainsAll(maskOf(field)) == p.keep
}

// Only materializes the given fields and nothing else.
func Only(fields ...FieldDescriptor) Policy {
	return maskPolicy{fields: fieldMask(fields), keep: true}
}

// Omit materializes every field except the given ones.
func Omit(fields ...FieldDescriptor) Policy {
	return maskPolicy{fields: fieldMask(fields), keep: false}
}

func fieldMask(fields []FieldDescriptor) mask.Mask {
	var m mask.Mask
	for _, f := range fields {
		m.Mark(f.Ordinal())
	}
	return m
}

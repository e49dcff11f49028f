package context

import (
	"fmt"
	"reflect"
)

// MarshallingContext drives one write pass: it holds the current
// outbound bean a Selector dispatches by type (spec.md §4.1
// "matchNext(marshal-ctx)") and the output field buffer a Segment/Field
// walk fills before a RecordFormat composes it into raw record text
// (spec.md §4.7, "MarshallingContext"). Like UnmarshallingContext, one
// instance is reused across every record written on a stream.
type MarshallingContext struct {
	recordName string
	fields     []string
	bean       reflect.Value
}

// SetBean installs the application bean the next MatchNext(write) and
// Segment/Field walk operate against.
func (c *MarshallingContext) SetBean(bean reflect.Value) {
	c.bean = bean
}

// Bean returns the outbound bean installed by SetBean.
func (c *MarshallingContext) Bean() reflect.Value {
	return c.bean
}

// BeginRecord resets the output field buffer for a new record with
// fieldCount positional slots.
func (c *MarshallingContext) BeginRecord(recordName string, fieldCount int) {
	c.recordName = recordName
	c.fields = make([]string, fieldCount)
}

// SetField writes text into the output buffer at position.
func (c *MarshallingContext) SetField(position int, text string) error {
	if position < 0 || position >= len(c.fields) {
		return fmt.Errorf("record %q: field position %d out of range [0,%d)", c.recordName, position, len(c.fields))
	}

	c.fields[position] = text

	return nil
}

// Fields returns the output buffer in declaration-position order, ready
// for a RecordFormat.Compose call.
func (c *MarshallingContext) Fields() []string {
	return c.fields
}

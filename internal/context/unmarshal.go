package context

import "github.com/somranjan/beanio/options"

// UnmarshallingContext drives one read pass over a stream: it tracks
// the reader's position for diagnostics, holds the current record's
// extracted field text, and accumulates the Diagnostics a Segment/Field
// walk raises against that record (spec.md §4.7, "UnmarshallingContext").
// A single instance is reused across every record read on a stream;
// BeginRecord resets the per-record state without reallocating the
// whole context.
type UnmarshallingContext struct {
	LineNumber  int
	RecordCount int

	recordName string
	rawRecord  []byte
	fields     []string
	diags      Diagnostics
}

// BeginRecord resets per-record state for a newly read raw record,
// advancing LineNumber and RecordCount for position reporting.
func (c *UnmarshallingContext) BeginRecord(recordName string, raw []byte, lineDelta int) {
	c.recordName = recordName
	c.rawRecord = raw
	c.fields = nil
	c.diags = Diagnostics{}
	c.LineNumber += lineDelta
	c.RecordCount++
}

// SetFields installs the field texts a RecordFormat.Extract produced
// for the current record, in declaration-position order.
func (c *UnmarshallingContext) SetFields(fields []string) {
	c.fields = fields
}

// Field returns the text at position, or "" if the current record has
// fewer fields than position (a short record, not itself an error at
// this layer — callers that require the field raise their own
// diagnostic).
func (c *UnmarshallingContext) Field(position int) string {
	if position < 0 || position >= len(c.fields) {
		return ""
	}

	return c.fields[position]
}

// FieldCount reports how many field texts the current record has.
func (c *UnmarshallingContext) FieldCount() int {
	return len(c.fields)
}

// RawRecord returns the current record's raw, unparsed text.
func (c *UnmarshallingContext) RawRecord() []byte {
	return c.rawRecord
}

// AddFieldError records a field-level violation against the current record.
func (c *UnmarshallingContext) AddFieldError(field string, kind options.ErrorKind, message string) {
	c.diags.AddFieldError(field, kind, message)
}

// AddRecordError records a record-level violation against the current record.
func (c *UnmarshallingContext) AddRecordError(kind options.ErrorKind, message string) {
	c.diags.AddRecordError(kind, message)
}

// HasErrors reports whether the current record accumulated any
// diagnostic since the last BeginRecord.
func (c *UnmarshallingContext) HasErrors() bool {
	return c.diags.HasErrors()
}

// InvalidRecordError returns an *InvalidRecord wrapping every
// diagnostic accumulated against the current record, or nil if there
// were none.
func (c *UnmarshallingContext) InvalidRecordError() error {
	if !c.diags.HasErrors() {
		return nil
	}

	return &InvalidRecord{RecordName: c.recordName, Diagnostics: c.diags}
}

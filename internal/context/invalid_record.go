// Package context holds the two mutable contexts that drive a parser
// tree walk: UnmarshallingContext (read) and MarshallingContext
// (write), plus the diagnostic accumulator both share (spec.md §4.7:
// "MarshallingContext / UnmarshallingContext").
package context

import (
	"fmt"
	"strings"

	"github.com/somranjan/beanio/options"
)

// FieldError is one field-level validation failure, accumulated against
// the field name rather than raised immediately so a record can report
// every violation it has in one pass (spec.md §7, "error accumulation").
// Kind classifies the failure per spec.md's error taxonomy, so a sink
// (internal/metrics) can break occurrences down by kind rather than
// lumping every diagnostic under ErrorKindUnknown.
type FieldError struct {
	Field   string
	Kind    options.ErrorKind
	Message string
}

// RecordError is one record-level (not field-scoped) validation failure.
type RecordError struct {
	Kind    options.ErrorKind
	Message string
}

// diagFieldError pairs one field-level message with its ErrorKind, the
// unexported storage form kept in fieldErrors.
type diagFieldError struct {
	kind    options.ErrorKind
	message string
}

// diagRecordError pairs one record-level message with its ErrorKind.
type diagRecordError struct {
	kind    options.ErrorKind
	message string
}

// Diagnostics accumulates the field and record errors raised while
// validating one record, the same accumulate-then-report shape as the
// teacher's Diagnostics type (internal/diagnostic/types.go), specialized
// to this domain's two error classes instead of three severities.
type Diagnostics struct {
	fieldErrors  map[string][]diagFieldError
	fieldOrder   []string
	recordErrors []diagRecordError
}

// AddFieldError records a field-level violation of the given kind.
func (d *Diagnostics) AddFieldError(field string, kind options.ErrorKind, message string) {
	if d.fieldErrors == nil {
		d.fieldErrors = make(map[string][]diagFieldError)
	}

	if len(d.fieldErrors[field]) == 0 {
		d.fieldOrder = append(d.fieldOrder, field)
	}

	d.fieldErrors[field] = append(d.fieldErrors[field], diagFieldError{kind: kind, message: message})
}

// AddRecordError records a record-level violation of the given kind.
func (d *Diagnostics) AddRecordError(kind options.ErrorKind, message string) {
	d.recordErrors = append(d.recordErrors, diagRecordError{kind: kind, message: message})
}

// HasFieldErrors reports whether any field error was recorded.
func (d *Diagnostics) HasFieldErrors() bool {
	return len(d.fieldErrors) > 0
}

// HasRecordErrors reports whether any record error was recorded.
func (d *Diagnostics) HasRecordErrors() bool {
	return len(d.recordErrors) > 0
}

// HasErrors reports whether either class has at least one entry.
func (d *Diagnostics) HasErrors() bool {
	return d.HasFieldErrors() || d.HasRecordErrors()
}

// FieldErrors returns every recorded field, message pair, grouped by
// field in the order each field was first reported, then in insertion
// order within each field.
func (d *Diagnostics) FieldErrors() []FieldError {
	var out []FieldError

	for _, field := range d.sortedFieldNames() {
		for _, fe := range d.fieldErrors[field] {
			out = append(out, FieldError{Field: field, Kind: fe.kind, Message: fe.message})
		}
	}

	return out
}

// RecordErrors returns every recorded record-level message, in
// insertion order.
func (d *Diagnostics) RecordErrors() []RecordError {
	out := make([]RecordError, len(d.recordErrors))
	for i, re := range d.recordErrors {
		out[i] = RecordError{Kind: re.kind, Message: re.message}
	}

	return out
}

// sortedFieldNames preserves the order fields were first reported in,
// matching a Java LinkedHashMap's iteration order (the original's
// getFieldErrors() returns a Map.Entry iteration in insertion order).
func (d *Diagnostics) sortedFieldNames() []string {
	return d.fieldOrder
}

// InvalidRecord is the error type returned when a record fails
// validation, carrying every field and record error collected for it.
// Its Error() string format is grounded exactly on
// InvalidRecordException.toString() (original_source
// tags/1.2.1/src/org/beanio/InvalidRecordException.java): the base
// message, then one "\n ==> " line per record error, then one
// "\n ==> Invalid '<field>':  <message>" line per field error.
type InvalidRecord struct {
	RecordName  string
	Diagnostics Diagnostics
}

func (e *InvalidRecord) Error() string {
	var s strings.Builder

	fmt.Fprintf(&s, "Invalid record '%s'", e.RecordName)

	for _, re := range e.Diagnostics.RecordErrors() {
		s.WriteString("\n ==> ")
		s.WriteString(re.Message)
	}

	for _, fe := range e.Diagnostics.FieldErrors() {
		fmt.Fprintf(&s, "\n ==> Invalid '%s':  %s", fe.Field, fe.Message)
	}

	return s.String()
}

// Kinds returns the distinct ErrorKind values across every field and
// record error this InvalidRecord carries, so a caller (e.g. a metrics
// sink) can break one invalid-record occurrence down by kind instead of
// counting it once under a single bucket.
func (e *InvalidRecord) Kinds() []options.ErrorKind {
	seen := make(map[options.ErrorKind]bool)

	var out []options.ErrorKind

	add := func(k options.ErrorKind) {
		if !seen[k] {
			seen[k] = true

			out = append(out, k)
		}
	}

	for _, re := range e.Diagnostics.RecordErrors() {
		add(re.Kind)
	}

	for _, fe := range e.Diagnostics.FieldErrors() {
		add(fe.Kind)
	}

	return out
}

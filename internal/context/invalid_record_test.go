package context

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/somranjan/beanio/options"
)

func TestInvalidRecord_ErrorFormat(t *testing.T) {
	var diags Diagnostics
	diags.AddRecordError(options.ErrorKindUnknown, "unexpected trailing field")
	diags.AddFieldError("age", options.ErrorKindTypeHandler, "must be a positive integer")
	diags.AddFieldError("age", options.ErrorKindTypeHandler, "must be less than 150")

	err := &InvalidRecord{RecordName: "person", Diagnostics: diags}

	want := "Invalid record 'person'" +
		"\n ==> unexpected trailing field" +
		"\n ==> Invalid 'age':  must be a positive integer" +
		"\n ==> Invalid 'age':  must be less than 150"

	assert.Equal(t, want, err.Error())
}

func TestInvalidRecord_NoDiagnosticsStillFormatsBaseMessage(t *testing.T) {
	err := &InvalidRecord{RecordName: "person"}
	assert.Equal(t, "Invalid record 'person'", err.Error())
}

func TestDiagnostics_HasErrors(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())

	d.AddFieldError("name", options.ErrorKindRequired, "required")
	assert.True(t, d.HasErrors())
	assert.True(t, d.HasFieldErrors())
	assert.False(t, d.HasRecordErrors())
}

func TestInvalidRecord_KindsDeduplicatesAcrossFieldAndRecordErrors(t *testing.T) {
	var diags Diagnostics
	diags.AddRecordError(options.ErrorKindRecordLength, "too short")
	diags.AddFieldError("name", options.ErrorKindRequired, "field is required")
	diags.AddFieldError("age", options.ErrorKindRequired, "field is required")

	err := &InvalidRecord{RecordName: "person", Diagnostics: diags}

	assert.ElementsMatch(t, []options.ErrorKind{options.ErrorKindRecordLength, options.ErrorKindRequired}, err.Kinds())
}

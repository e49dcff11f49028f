package parser

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parsectx "github.com/somranjan/beanio/internal/context"
	"github.com/somranjan/beanio/internal/format"
	"github.com/somranjan/beanio/internal/parser/accessor"
	"github.com/somranjan/beanio/internal/typehandler"
	"github.com/somranjan/beanio/options"
)

func newKindRecord(t *testing.T, literal string, trim bool) (*Record, *Field) {
	t.Helper()

	acc, err := accessor.NewFieldAccessor(reflect.TypeOf(widget{}), "Kind")
	require.NoError(t, err)

	registry := typehandler.NewBuiltinRegistry()
	handler, err := registry.Resolve("", acc.Type(), "")
	require.NoError(t, err)

	idField := &Field{Name: "kind", Position: 0, Literal: literal, Trim: trim, Accessor: acc, Handler: handler}

	r := &Record{
		name:        "widget",
		maxOccurs:   options.Unbounded,
		identifiers: []identifier{{field: idField}},
		root:        &Segment{Fields: []*Field{idField}},
		beanType:    reflect.TypeOf(widget{}),
	}

	return r, idField
}

// TestRecordMatchAny_TrimMatchesAgainstPaddedText is the reproduction
// for the Field.Unmarshal/Record.MatchAny trim disagreement: a
// trim:true identifying field configured with a literal must be
// recognized against its padded fixed-length text the same way it
// would bind once matched.
func TestRecordMatchAny_TrimMatchesAgainstPaddedText(t *testing.T) {
	r, _ := newKindRecord(t, "H", true)

	ctx := &parsectx.UnmarshallingContext{}
	ctx.SetFields([]string{"H   "})

	assert.True(t, r.MatchAny(ctx), "padded identifier text should match once trimmed")
}

func TestRecordMatchAny_NoTrimRequiresExactText(t *testing.T) {
	r, _ := newKindRecord(t, "H", false)

	ctx := &parsectx.UnmarshallingContext{}
	ctx.SetFields([]string{"H   "})

	assert.False(t, r.MatchAny(ctx), "untrimmed identifier must match the literal exactly")
}

func TestRecordMatchAny_IdentificationAgreesWithUnmarshalBinding(t *testing.T) {
	r, _ := newKindRecord(t, "H", true)

	ctx := &parsectx.UnmarshallingContext{}
	ctx.BeginRecord("widget", []byte("H   "), 1)
	ctx.SetFields([]string{"H   "})

	require.True(t, r.MatchAny(ctx), "record must identify the padded literal it will go on to bind")

	bean, err := r.Unmarshal(ctx)
	require.NoError(t, err)
	assert.Equal(t, "H", bean.Interface().(widget).Kind)
}

func TestRecordValidateLength_BelowMinimumRaisesRecordError(t *testing.T) {
	r, _ := newKindRecord(t, "", false)
	r.minLength = 10

	ctx := &parsectx.UnmarshallingContext{}
	ctx.BeginRecord("widget", []byte("short"), 1)
	ctx.SetFields([]string{"short"})

	_, err := r.Unmarshal(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least")
}

func TestRecordValidateLength_AboveMaximumRaisesRecordError(t *testing.T) {
	r, _ := newKindRecord(t, "", false)
	r.maxLength = 3

	ctx := &parsectx.UnmarshallingContext{}
	ctx.BeginRecord("widget", []byte("way too long"), 1)
	ctx.SetFields([]string{"way too long"})

	_, err := r.Unmarshal(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most")
}

func TestRecordValidateLength_WithinBoundsSucceeds(t *testing.T) {
	r, _ := newKindRecord(t, "", false)
	r.minLength = 1
	r.maxLength = 20

	ctx := &parsectx.UnmarshallingContext{}
	ctx.BeginRecord("widget", []byte("H"), 1)
	ctx.SetFields([]string{"H"})

	_, err := r.Unmarshal(ctx)
	assert.NoError(t, err)
}

func TestRecordMarshal_ComposesThroughMarshallingContext(t *testing.T) {
	acc, err := accessor.NewFieldAccessor(reflect.TypeOf(widget{}), "Kind")
	require.NoError(t, err)

	registry := typehandler.NewBuiltinRegistry()
	handler, err := registry.Resolve("", acc.Type(), "")
	require.NoError(t, err)

	f := &Field{Name: "kind", Position: 0, Accessor: acc, Handler: handler}
	r := &Record{
		name:     "widget",
		root:     &Segment{Fields: []*Field{f}},
		format:   format.CSV(),
		beanType: reflect.TypeOf(widget{}),
	}

	ctx := &parsectx.MarshallingContext{}
	raw, err := r.Marshal(ctx, reflect.ValueOf(widget{Kind: "H"}))
	require.NoError(t, err)
	assert.Equal(t, "H", string(raw))
}

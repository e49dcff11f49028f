package parser

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parsectx "github.com/somranjan/beanio/internal/context"
	"github.com/somranjan/beanio/internal/parser/accessor"
	"github.com/somranjan/beanio/internal/typehandler"
	"github.com/somranjan/beanio/options"
)

type widget struct {
	Kind string
	Qty  int
}

func widgetField(t *testing.T, name string, mutate func(*Field)) *Field {
	t.Helper()

	acc, err := accessor.NewFieldAccessor(reflect.TypeOf(widget{}), name)
	require.NoError(t, err)

	registry := typehandler.NewBuiltinRegistry()

	handler, err := registry.Resolve("", acc.Type(), "")
	require.NoError(t, err)

	f := &Field{Name: name, Position: 0, Accessor: acc, Handler: handler}
	if mutate != nil {
		mutate(f)
	}

	return f
}

func unmarshalField(f *Field, text string) (*parsectx.UnmarshallingContext, widget) {
	ctx := &parsectx.UnmarshallingContext{}
	ctx.BeginRecord("widget", []byte(text), 1)

	bean := reflect.New(reflect.TypeOf(widget{})).Elem()
	f.Unmarshal(ctx, text, bean)

	return ctx, bean.Interface().(widget)
}

// TestFieldUnmarshal_EmptyNonRequiredWithLiteralSkipsLiteralCheck is the
// reproduction for the reordering fix: an empty, non-required field
// carrying a literal must take the default/null path and stop, never
// reaching the literal comparison (spec.md §4.3 pipeline, step 3 before
// steps 4/5).
func TestFieldUnmarshal_EmptyNonRequiredWithLiteralSkipsLiteralCheck(t *testing.T) {
	f := widgetField(t, "Kind", func(f *Field) {
		f.Literal = "H"
	})

	ctx, bean := unmarshalField(f, "")
	assert.False(t, ctx.HasErrors())
	assert.Equal(t, "", bean.Kind)
}

func TestFieldUnmarshal_EmptyNonRequiredWithRegexSkipsRegexCheck(t *testing.T) {
	f := widgetField(t, "Kind", func(f *Field) {
		f.Regex = regexp.MustCompile(`^[A-Z]+$`)
	})

	ctx, bean := unmarshalField(f, "")
	assert.False(t, ctx.HasErrors())
	assert.Equal(t, "", bean.Kind)
}

func TestFieldUnmarshal_EmptyNonRequiredUsesDefaultThenSkipsLiteral(t *testing.T) {
	f := widgetField(t, "Kind", func(f *Field) {
		f.Literal = "H"
		f.Default = "fallback"
	})

	// Default substitutes "fallback", which does not satisfy the
	// literal "H" — but the pipeline already stopped at the empty/
	// default branch, so no literal error should surface.
	ctx, bean := unmarshalField(f, "")
	assert.False(t, ctx.HasErrors())
	assert.Equal(t, "fallback", bean.Kind)
}

func TestFieldUnmarshal_EmptyRequiredFailsBeforeLiteralCheck(t *testing.T) {
	f := widgetField(t, "Kind", func(f *Field) {
		f.Required = true
		f.Literal = "H"
	})

	ctx, _ := unmarshalField(f, "")
	require.True(t, ctx.HasErrors())
	assert.Contains(t, ctx.InvalidRecordError().Error(), "required")
}

// TestFieldUnmarshal_EmptyRequiredNillableYieldsDefaultInsteadOfError is
// the reproduction for the nillable wiring fix: a field configured both
// required and nillable must take the empty/default path on empty input
// rather than raising the required error (spec.md §4.3 step 3, "if
// nillable or !required, yield default or null and stop").
func TestFieldUnmarshal_EmptyRequiredNillableYieldsDefaultInsteadOfError(t *testing.T) {
	f := widgetField(t, "Kind", func(f *Field) {
		f.Required = true
		f.Nillable = true
	})

	ctx, bean := unmarshalField(f, "")
	assert.False(t, ctx.HasErrors())
	assert.Equal(t, "", bean.Kind)
}

// TestFieldUnmarshal_EmptyRequiredNillableWithDefaultUsesDefault checks
// the same nillable path still honors a configured default rather than
// always yielding the zero value.
func TestFieldUnmarshal_EmptyRequiredNillableWithDefaultUsesDefault(t *testing.T) {
	f := widgetField(t, "Kind", func(f *Field) {
		f.Required = true
		f.Nillable = true
		f.Default = "UNSPECIFIED"
	})

	ctx, bean := unmarshalField(f, "")
	assert.False(t, ctx.HasErrors())
	assert.Equal(t, "UNSPECIFIED", bean.Kind)
}

func TestFieldUnmarshal_NonEmptyLiteralMismatchFails(t *testing.T) {
	f := widgetField(t, "Kind", func(f *Field) {
		f.Literal = "H"
	})

	ctx, _ := unmarshalField(f, "X")
	require.True(t, ctx.HasErrors())
	assert.Contains(t, ctx.InvalidRecordError().Error(), "literal")
}

func TestFieldUnmarshal_NonEmptyLiteralMatchSucceeds(t *testing.T) {
	f := widgetField(t, "Kind", func(f *Field) {
		f.Literal = "H"
	})

	ctx, bean := unmarshalField(f, "H")
	assert.False(t, ctx.HasErrors())
	assert.Equal(t, "H", bean.Kind)
}

func TestFieldUnmarshal_TrimThenLiteralMatch(t *testing.T) {
	f := widgetField(t, "Kind", func(f *Field) {
		f.Trim = true
		f.Literal = "H"
	})

	ctx, bean := unmarshalField(f, "H   ")
	assert.False(t, ctx.HasErrors())
	assert.Equal(t, "H", bean.Kind)
}

func TestFieldMarshal_PadsFixedLengthField(t *testing.T) {
	f := widgetField(t, "Kind", func(f *Field) {
		f.Length = 5
		f.Justify = options.JustifyLeft
		f.Padding = ' '
	})

	ctx := &parsectx.MarshallingContext{}
	ctx.BeginRecord("widget", 1)

	bean := reflect.ValueOf(widget{Kind: "H"})
	require.NoError(t, f.Marshal(ctx, bean))
	assert.Equal(t, []string{"H    "}, ctx.Fields())
}

func TestFieldMarshal_RightJustifyPadsLeft(t *testing.T) {
	f := widgetField(t, "Qty", func(f *Field) {
		f.Length = 4
		f.Justify = options.JustifyRight
		f.Padding = '0'
	})

	ctx := &parsectx.MarshallingContext{}
	ctx.BeginRecord("widget", 1)

	bean := reflect.ValueOf(widget{Qty: 7})
	require.NoError(t, f.Marshal(ctx, bean))
	assert.Equal(t, []string{"0007"}, ctx.Fields())
}

package parser

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	parsectx "github.com/somranjan/beanio/internal/context"
	"github.com/somranjan/beanio/internal/format"
	"github.com/somranjan/beanio/internal/parser/accessor"
	"github.com/somranjan/beanio/internal/typehandler"
	"github.com/somranjan/beanio/options"
)

// Field is the unchanged field codec pipeline from spec.md §4.3: extract
// -> trim -> default -> literal/regex validate -> length validate ->
// TypeHandler convert on read; the mirror image on write.
type Field struct {
	Name             string
	Position         int
	Accessor         accessor.PropertyAccessor
	Handler          typehandler.Handler
	MinLength        int
	MaxLength        int // options.Unbounded for unrestricted
	Required         bool
	Nillable         bool
	Trim             bool
	Literal          string
	Regex            *regexp.Regexp
	Default          string
	Ignore           bool
	RecordIdentifier bool
	Length           int // fixed-length field width, 0 if not fixed-length
	Padding          rune
	Justify          options.Justify
	XML              format.XMLFieldSpec
}

// Unmarshal runs the read-side pipeline against one extracted field
// text, setting bean's bound property or recording a diagnostic on ctx
// (spec.md §7: field-level errors accumulate rather than abort the
// record immediately).
func (f *Field) Unmarshal(ctx *parsectx.UnmarshallingContext, text string, bean reflect.Value) {
	raw := text
	if f.Trim {
		raw = strings.TrimSpace(raw)
	}

	if raw == "" {
		if f.Required && !f.Nillable {
			ctx.AddFieldError(f.Name, options.ErrorKindRequired, "field is required")
			return
		}

		if f.Default == "" {
			// Nillable or not-required and no default: yield null and stop
			// (spec.md §4.3 step 3) — literal/regex never apply to an
			// empty field that isn't required, and a required-but-nillable
			// field takes this same path instead of erroring.
			return
		}

		raw = f.Default
	} else {
		if f.Literal != "" && raw != f.Literal {
			ctx.AddFieldError(f.Name, options.ErrorKindLiteral, fmt.Sprintf("expected literal value %q, got %q", f.Literal, raw))
			return
		}

		if f.Regex != nil && !f.Regex.MatchString(raw) {
			ctx.AddFieldError(f.Name, options.ErrorKindRegex, fmt.Sprintf("%q does not match pattern %q", raw, f.Regex.String()))
			return
		}
	}

	if f.MinLength > 0 && len(raw) < f.MinLength {
		ctx.AddFieldError(f.Name, options.ErrorKindFieldTooShort, fmt.Sprintf("field is %d characters, requires at least %d", len(raw), f.MinLength))
		return
	}

	if f.MaxLength != options.Unbounded && f.MaxLength > 0 && len(raw) > f.MaxLength {
		ctx.AddFieldError(f.Name, options.ErrorKindFieldTooLong, fmt.Sprintf("field is %d characters, at most %d allowed", len(raw), f.MaxLength))
		return
	}

	if f.Ignore || f.Accessor == nil {
		return
	}

	value, err := f.Handler.Parse(raw, f.Accessor.Type())
	if err != nil {
		ctx.AddFieldError(f.Name, options.ErrorKindTypeHandler, err.Error())
		return
	}

	if err := f.Accessor.Set(bean, reflect.ValueOf(value)); err != nil {
		ctx.AddFieldError(f.Name, options.ErrorKindTypeHandler, err.Error())
	}
}

// Marshal runs the write-side pipeline, producing this field's text for
// the current bean, justifying/padding it to Length when this is a
// fixed-length field (spec.md §4.3, `justify`/`padding`), and writing
// the result into ctx's output buffer at Position.
func (f *Field) Marshal(ctx *parsectx.MarshallingContext, bean reflect.Value) error {
	text, err := f.marshalText(bean)
	if err != nil {
		return err
	}

	if f.Position < 0 {
		return nil
	}

	return ctx.SetField(f.Position, text)
}

// marshalText computes this field's justified/padded output text
// without touching ctx.
func (f *Field) marshalText(bean reflect.Value) (string, error) {
	var text string

	switch {
	case f.Ignore:
		text = f.Default
	case f.Literal != "":
		text = f.Literal
	case f.Accessor == nil:
		text = f.Default
	default:
		v, err := f.Accessor.Get(bean)
		if err != nil {
			return "", fmt.Errorf("field %q: %w", f.Name, err)
		}

		text, err = f.Handler.Format(v.Interface())
		if err != nil {
			return "", fmt.Errorf("field %q: %w", f.Name, err)
		}
	}

	if f.Length > 0 {
		padChar := f.Padding
		if padChar == 0 {
			padChar = ' '
		}

		if len(text) > f.Length {
			return "", fmt.Errorf("field %q: formatted value %q is longer than its %d-character width", f.Name, text, f.Length)
		}

		text = f.Justify.Pad(text, f.Length, padChar)
	}

	return text, nil
}

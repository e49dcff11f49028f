package parser

import (
	"reflect"

	parsectx "github.com/somranjan/beanio/internal/context"
	"github.com/somranjan/beanio/internal/parser/accessor"
	"github.com/somranjan/beanio/internal/typehandler"
	"github.com/somranjan/beanio/options"
)

// Segment is a logical grouping of Fields and nested Beans under a
// Record, visited in declaration order, each Field reading the extracted
// text at its Position (for XML, Build sets Position to the field's
// declaration index). A Record's own body is itself a
// Segment with no Accessor (it binds directly against the top-level
// record bean rather than a nested property of it).
type Segment struct {
	Name       string
	Accessor   accessor.PropertyAccessor // nil for a Record's root segment
	BeanType   reflect.Type              // concrete type to instantiate when Accessor is set
	Fields     []*Field
	Beans      []*Segment
	Properties []*Property
}

// Property is a constant bean property (spec.md §3, Bean/BeanProperty
// row): it never touches the stream text, only sets a fixed value on
// the bean once per occurrence, so Unmarshal runs it unconditionally
// and Marshal ignores it entirely.
type Property struct {
	Name     string
	Accessor accessor.PropertyAccessor
	Handler  typehandler.Handler
	Value    string
}

// Unmarshal binds every field and nested bean under this segment onto
// bean, which must already be the correctly typed, addressable struct
// value (the record's own bean for the root segment, or a freshly
// allocated nested bean for a child Segment).
func (s *Segment) Unmarshal(ctx *parsectx.UnmarshallingContext, fields []string, bean reflect.Value) {
	for _, f := range s.Fields {
		text := ""
		if f.Position >= 0 && f.Position < len(fields) {
			text = fields[f.Position]
		}

		f.Unmarshal(ctx, text, bean)
	}

	for _, p := range s.Properties {
		value, err := p.Handler.Parse(p.Value, p.Accessor.Type())
		if err != nil {
			ctx.AddFieldError(p.Name, options.ErrorKindTypeHandler, err.Error())
			continue
		}

		if err := p.Accessor.Set(bean, reflect.ValueOf(value)); err != nil {
			ctx.AddFieldError(p.Name, options.ErrorKindTypeHandler, err.Error())
		}
	}

	for _, nested := range s.Beans {
		nestedBean := reflect.New(nested.BeanType).Elem()
		nested.Unmarshal(ctx, fields, nestedBean)

		if nested.Accessor != nil {
			if err := nested.Accessor.Set(bean, nestedBean); err != nil {
				ctx.AddRecordError(options.ErrorKindUnknown, err.Error())
			}
		}
	}
}

// Marshal writes every field and nested bean under this segment into
// ctx's output buffer at each Field's configured position (spec.md
// §4.7, "MarshallingContext").
func (s *Segment) Marshal(ctx *parsectx.MarshallingContext, bean reflect.Value) error {
	for _, f := range s.Fields {
		if err := f.Marshal(ctx, bean); err != nil {
			return err
		}
	}

	for _, nested := range s.Beans {
		nestedBean := bean

		if nested.Accessor != nil {
			v, err := nested.Accessor.Get(bean)
			if err != nil {
				return err
			}

			nestedBean = v
		}

		if err := nested.Marshal(ctx, nestedBean); err != nil {
			return err
		}
	}

	return nil
}

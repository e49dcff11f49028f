package parser

import (
	"fmt"
	"reflect"
	"strings"

	parsectx "github.com/somranjan/beanio/internal/context"
	"github.com/somranjan/beanio/internal/format"
	"github.com/somranjan/beanio/options"
)

// identifier is one of a Record's identifying criteria: a field marked
// recordIdentifier in the configuration (spec.md §4.1, "Identification"
// — a record is recognized by its identifying fields' literal/regex
// match, checked before any other candidate record in declaration
// order wins the ambiguous-match tie-break).
type identifier struct {
	field *Field
}

// Record is a Selector leaf: one physical record definition, its
// identification criteria, its bound Go type, and the Segment tree that
// binds its fields (spec.md §4.1 Selector contract + §4.2 composition).
type Record struct {
	name         string
	minOccurs    int
	maxOccurs    int
	count        int
	order        int
	minLength    int
	maxLength    int
	format       format.RecordFormat
	identifiers  []identifier
	root         *Segment
	beanType     reflect.Type
}

func (r *Record) Name() string   { return r.name }
func (r *Record) Order() int     { return r.order }
func (r *Record) Count() int     { return r.count }
func (r *Record) MinOccurs() int { return r.minOccurs }

func (r *Record) SetCount(n int) { r.count = n }

func (r *Record) Reset() { r.count = 0 }

func (r *Record) IsMaxOccursReached() bool {
	return r.maxOccurs != options.Unbounded && r.count >= r.maxOccurs
}

func (r *Record) Close() error {
	if r.count < r.minOccurs {
		return fmt.Errorf("record %q: occurred %d time(s), requires at least %d", r.name, r.count, r.minOccurs)
	}

	return nil
}

// MatchAny checks identification criteria against ctx's currently
// staged fields/raw record without advancing Count, used for ambiguous-
// sibling lookahead (spec.md §4.1 "Tie-breaks").
func (r *Record) MatchAny(ctx *parsectx.UnmarshallingContext) bool {
	if len(r.identifiers) == 0 {
		return true
	}

	for _, id := range r.identifiers {
		text := ctx.Field(id.field.Position)
		if id.field.Trim {
			text = strings.TrimSpace(text)
		}

		if id.field.Literal != "" && text != id.field.Literal {
			return false
		}

		if id.field.Regex != nil && !id.field.Regex.MatchString(text) {
			return false
		}
	}

	return true
}

// MatchNext claims the current record if MatchAny succeeds and this
// record has not exceeded maxOccurs, incrementing Count (spec.md §4.1).
func (r *Record) MatchNext(ctx *parsectx.UnmarshallingContext) (Selector, bool) {
	if r.IsMaxOccursReached() {
		return nil, false
	}

	if !r.MatchAny(ctx) {
		return nil, false
	}

	r.count++

	return r, true
}

// Skip discards the current record occurrence without binding it,
// advancing Count so maxOccurs bookkeeping stays correct.
func (r *Record) Skip(ctx *parsectx.UnmarshallingContext) {
	r.count++
}

// definesExact reports whether bean's concrete type is exactly this
// record's bound class (spec.md §4.1 Tie-breaks, "exact class").
func (r *Record) definesExact(bean reflect.Value) bool {
	return bean.IsValid() && bean.Type() == r.beanType
}

// definesAssignable reports whether bean's type is assignable to this
// record's bound class without being an exact match (spec.md §4.1
// Tie-breaks, "then assignable").
func (r *Record) definesAssignable(bean reflect.Value) bool {
	return bean.IsValid() && bean.Type() != r.beanType && bean.Type().AssignableTo(r.beanType)
}

// MatchNextForWrite claims bean if it belongs to this record's bound
// type (exact or assignable) and maxOccurs has not been exceeded,
// incrementing Count (spec.md §4.1, write-side MatchNext).
func (r *Record) MatchNextForWrite(ctx *parsectx.MarshallingContext) (Selector, bool) {
	if r.IsMaxOccursReached() {
		return nil, false
	}

	bean := ctx.Bean()
	if !r.definesExact(bean) && !r.definesAssignable(bean) {
		return nil, false
	}

	r.count++

	return r, true
}

// validateLength checks raw's byte length against this record's
// configured minLength/maxLength, the record-level framing check
// spec.md §7 calls ErrorKindRecordLength ("record-length out of
// [minLength,maxLength]").
func (r *Record) validateLength(raw []byte) error {
	n := len(raw)

	if r.minLength > 0 && n < r.minLength {
		return fmt.Errorf("record is %d bytes, requires at least %d", n, r.minLength)
	}

	if r.maxLength != options.Unbounded && r.maxLength > 0 && n > r.maxLength {
		return fmt.Errorf("record is %d bytes, at most %d allowed", n, r.maxLength)
	}

	return nil
}

// Unmarshal binds ctx's currently extracted fields onto a freshly
// allocated bean of this record's configured type and returns it. A
// record-length violation is recorded as a record-level error and
// short-circuits Segment descent entirely (spec.md §4.2, "record-level
// framing/identification errors short-circuit Segment descent but
// still complete the record").
func (r *Record) Unmarshal(ctx *parsectx.UnmarshallingContext) (reflect.Value, error) {
	bean := reflect.New(r.beanType).Elem()

	if err := r.validateLength(ctx.RawRecord()); err != nil {
		ctx.AddRecordError(options.ErrorKindRecordLength, err.Error())
		return bean, ctx.InvalidRecordError()
	}

	fields := make([]string, ctx.FieldCount())
	for i := range fields {
		fields[i] = ctx.Field(i)
	}

	r.root.Unmarshal(ctx, fields, bean)

	if err := ctx.InvalidRecordError(); err != nil {
		return bean, err
	}

	return bean, nil
}

// Marshal composes bean into this record's raw output text via its
// bound RecordFormat, threading ctx through the Segment/Field walk so
// fields are written into the one buffer ctx owns (spec.md §4.7,
// "MarshallingContext").
func (r *Record) Marshal(ctx *parsectx.MarshallingContext, bean reflect.Value) ([]byte, error) {
	ctx.BeginRecord(r.name, len(flattenFields(r.root)))

	if err := r.root.Marshal(ctx, bean); err != nil {
		return nil, fmt.Errorf("record %q: %w", r.name, err)
	}

	raw, err := r.format.Compose(ctx.Fields())
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", r.name, err)
	}

	return raw, nil
}

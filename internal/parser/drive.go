package parser

import (
	"bufio"
	"fmt"
	"io"
	"reflect"

	parsectx "github.com/somranjan/beanio/internal/context"
)

// Reader and Writer are the thin, line-oriented transport this module
// ships for the formats it defines; the RecordReader/RecordWriter
// boundary itself stays injectable/abstract (SPEC_FULL.md §1) — one
// raw record per line is enough to exercise every
// Selector/Segment/Field/TypeHandler path end to end without building
// a production I/O layer. XML streams are newline-delimited here for
// the same reason: one element per line, not a single streamed
// document.
type Reader struct {
	tree  *StreamTree
	lines *bufio.Scanner
	ctx   *parsectx.UnmarshallingContext
	line  int
}

// NewReader wraps r as a record source for tree.
func NewReader(tree *StreamTree, r io.Reader) *Reader {
	return &Reader{tree: tree, lines: bufio.NewScanner(r), ctx: &parsectx.UnmarshallingContext{}}
}

// Read returns the next bound record and its record name, or io.EOF
// once the
// underlying text is exhausted. A returned non-nil error that is not
// io.EOF may be an *parsectx.InvalidRecord (field/record violations —
// the bean is still the best-effort partial bind) or a framing/
// identification error (no bean produced).
func (rd *Reader) Read() (reflect.Value, string, error) {
	if !rd.lines.Scan() {
		if err := rd.lines.Err(); err != nil {
			return reflect.Value{}, "", fmt.Errorf("line %d: %w", rd.line+1, err)
		}

		return reflect.Value{}, "", io.EOF
	}

	rd.line++
	raw := []byte(rd.lines.Text())

	rec, fields, ok, err := identify(rd.tree.Root, raw)
	if err != nil {
		return reflect.Value{}, "", fmt.Errorf("line %d: %w", rd.line, err)
	}

	if !ok {
		return reflect.Value{}, "", fmt.Errorf("line %d: no record in stream %q matches this text", rd.line, rd.tree.Name)
	}

	rd.ctx.BeginRecord(rec.name, raw, 1)
	rd.ctx.SetFields(fields)

	if _, matched := rd.tree.Root.MatchNext(rd.ctx); !matched {
		return reflect.Value{}, "", fmt.Errorf("line %d: record %q identified but rejected by selector cardinality", rd.line, rec.name)
	}

	bean, err := rec.Unmarshal(rd.ctx)

	return bean, rec.name, err
}

// identify walks sel depth-first, extracting each candidate Record's
// own fields and checking MatchAny against them, returning the first
// Record (and its extracted fields) willing to claim raw. This mirrors
// Group.MatchAny's own depth-first walk, but — unlike Group.MatchAny,
// which assumes a context already populated with one shared field
// layout — re-extracts per candidate, since sibling Records (fixed-
// length ones especially) do not necessarily share field widths.
func identify(sel Selector, raw []byte) (*Record, []string, bool, error) {
	switch s := sel.(type) {
	case *Record:
		if s.IsMaxOccursReached() {
			return nil, nil, false, nil
		}

		if err := s.format.Validate(raw); err != nil {
			return nil, nil, false, nil
		}

		fields, err := s.format.Extract(raw)
		if err != nil {
			return nil, nil, false, nil
		}

		scratch := &parsectx.UnmarshallingContext{}
		scratch.SetFields(fields)

		if !s.MatchAny(scratch) {
			return nil, nil, false, nil
		}

		return s, fields, true, nil

	case *Group:
		for _, c := range s.children {
			rec, fields, ok, err := identify(c, raw)
			if err != nil || ok {
				return rec, fields, ok, err
			}
		}

		return nil, nil, false, nil

	default:
		return nil, nil, false, fmt.Errorf("unknown selector type %T", sel)
	}
}

// Writer marshals beans into a tree's records, one raw record per
// line, the write-side mirror of Reader. Which record a given bean
// belongs to is never told to Write explicitly — like the read side's
// MatchNext, the root Selector dispatches the bean to its matching
// Record by type (spec.md §2, "the root Selector dispatches beans to
// the matching Record"; §4.1, "matchNext(marshal-ctx) -> Selector|
// none").
type Writer struct {
	tree *StreamTree
	w    io.Writer
	ctx  *parsectx.MarshallingContext
}

// NewWriter wraps w as a record sink for tree.
func NewWriter(tree *StreamTree, w io.Writer) *Writer {
	return &Writer{tree: tree, w: w, ctx: &parsectx.MarshallingContext{}}
}

// Write dispatches bean to whichever configured record its bound type
// matches (exact type first, then an assignable one, spec.md §4.1
// Tie-breaks), composes it, and writes it to the underlying writer
// followed by a newline. It returns the claiming record's name.
func (wr *Writer) Write(bean reflect.Value) (string, error) {
	wr.ctx.SetBean(bean)

	sel, ok := wr.tree.Root.MatchNextForWrite(wr.ctx)
	if !ok {
		return "", fmt.Errorf("stream %q has no record bound to type %s", wr.tree.Name, bean.Type())
	}

	rec, ok := sel.(*Record)
	if !ok {
		return "", fmt.Errorf("stream %q: selector %q matched write dispatch but is not a record", wr.tree.Name, sel.Name())
	}

	raw, err := rec.Marshal(wr.ctx, bean)
	if err != nil {
		return "", err
	}

	if _, err := wr.w.Write(raw); err != nil {
		return "", err
	}

	if _, err := wr.w.Write([]byte("\n")); err != nil {
		return "", err
	}

	return rec.name, nil
}

package format

import "fmt"

// FixedLength is the RecordFormat for fixed-width records (spec.md §4.6,
// "fixed-length"). Field boundaries come from the field configuration's
// declared lengths, summed in declaration order, rather than from any
// delimiter in the text itself.
type FixedLength struct {
	// Lengths holds each field's width in declaration order. A negative
	// width is only valid as the last entry, consuming
	// whatever text remains on the record (spec.md §4.3, "the final
	// field of a fixed-length record may be unbounded").
	Lengths []int
}

// Validate never rejects a fixed-length record on width alone: a record
// shorter than the summed field widths is framing-valid, its trailing
// fields simply extracted as empty text (spec.md §4.4, "fields beyond
// EOL yield empty text"). Record-level length bounds are instead
// enforced by Record.validateLength against the Record's own configured
// minLength/maxLength (spec.md §7, ErrorKindRecordLength).
func (f FixedLength) Validate(raw []byte) error {
	return nil
}

func (f FixedLength) Extract(raw []byte) ([]string, error) {
	fields := make([]string, len(f.Lengths))
	pos := 0

	for i, w := range f.Lengths {
		if w < 0 {
			if pos < len(raw) {
				fields[i] = string(raw[pos:])
			}

			pos = len(raw)

			continue
		}

		switch {
		case pos >= len(raw):
			// Entirely beyond EOL: empty text, not an error.
		case pos+w > len(raw):
			fields[i] = string(raw[pos:])
		default:
			fields[i] = string(raw[pos : pos+w])
		}

		pos += w
	}

	return fields, nil
}

func (f FixedLength) Compose(fields []string) ([]byte, error) {
	if len(fields) != len(f.Lengths) {
		return nil, fmt.Errorf("composing fixed-length record: got %d fields, configured for %d", len(fields), len(f.Lengths))
	}

	out := make([]byte, 0, totalLen(f.Lengths))
	for _, text := range fields {
		out = append(out, text...)
	}

	return out, nil
}

func totalLen(lengths []int) int {
	n := 0
	for _, w := range lengths {
		if w > 0 {
			n += w
		}
	}

	return n
}

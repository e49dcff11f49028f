package format

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Delimited is the RecordFormat for character-delimited records (spec.md
// §4.6, "delimited"). Fields are positional: Extract returns them in the
// order they appear on the line, and the builder maps declaration
// position to that order.
//
// No third-party CSV/delimited-text library appears anywhere in the
// reference pack's dependency graph (see DESIGN.md), so this codec uses
// encoding/csv directly rather than hand-rolling a splitter: csv.Reader
// already implements the quoting/escaping spec.md §4.6 requires
// (RFC 4180 quoting, with Comma set to the configured delimiter), and
// csv.Writer is its exact output-side counterpart.
type Delimited struct {
	Delimiter rune
	Quote     rune // 0 relaxes quote parsing on read; reading and Compose always quote with '"'
}

func (d Delimited) reader(raw []byte) *csv.Reader {
	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = d.delimiter()
	r.LazyQuotes = d.Quote == 0
	r.FieldsPerRecord = -1

	return r
}

func (d Delimited) delimiter() rune {
	if d.Delimiter == 0 {
		return ','
	}

	return d.Delimiter
}

func (d Delimited) Validate(raw []byte) error {
	_, err := d.reader(raw).Read()
	if err != nil {
		return fmt.Errorf("malformed delimited record: %w", err)
	}

	return nil
}

func (d Delimited) Extract(raw []byte) ([]string, error) {
	fields, err := d.reader(raw).Read()
	if err != nil {
		return nil, fmt.Errorf("malformed delimited record: %w", err)
	}

	return fields, nil
}

func (d Delimited) Compose(fields []string) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	w.Comma = d.delimiter()

	if err := w.Write(fields); err != nil {
		return nil, fmt.Errorf("composing delimited record: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("composing delimited record: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\r\n"), nil
}

// CSV is Delimited preconfigured for comma-separated, double-quoted
// records (spec.md §4.6, "csv" is delimited with fixed punctuation).
func CSV() Delimited {
	return Delimited{Delimiter: ',', Quote: '"'}
}

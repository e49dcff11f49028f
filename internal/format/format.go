// Package format implements the per-record-format codecs that turn a
// raw record (a delimited line, a fixed-width line, or an XML element)
// into positional field text on read, and back on write (spec.md §4.6:
// "RecordFormat").
package format

// RecordFormat validates, extracts from, and composes one physical
// record's text according to one framing convention. Each concrete
// format (delimited, fixed-length, XML) is a small independent codec;
// callers pick the codec once per Stream and reuse it across every
// record read or written on that stream.
type RecordFormat interface {
	// Validate checks raw's framing (e.g. well-formed XML; FixedLength
	// accepts any width) before any field is extracted, returning a
	// framing-level error (spec.md §7, ErrorKindMalformedRecord /
	// ErrorKindRecordLength) if raw cannot be this format's record shape
	// at all.
	Validate(raw []byte) error

	// Extract splits raw into its positional field texts, ordered the
	// way the format determines field order (declaration position for
	// delimited/fixed-length, name match for XML).
	Extract(raw []byte) ([]string, error)

	// Compose assembles fields (already justified/padded/escaped by the
	// caller) back into this format's raw record text.
	Compose(fields []string) ([]byte, error)
}

// Package metrics isolates the optional observability surface
// SPEC_FULL.md §3 adds on top of spec.md's core: counters for records
// read/written, a gauge for open streams, and a counter for
// InvalidRecord occurrences by error kind. Nothing in internal/parser
// or internal/context imports this package or prometheus directly —
// callers pass a Sink in, and NoOp costs nothing when metrics aren't
// wanted.
package metrics

import "github.com/somranjan/beanio/options"

// Sink receives engine events worth counting. A stream name identifies
// the configured Stream; a record name identifies the Record within it
// (empty for stream-level events).
type Sink interface {
	// RecordRead is called once per successfully unmarshalled record.
	RecordRead(stream, record string)

	// RecordWritten is called once per successfully marshalled record.
	RecordWritten(stream, record string)

	// InvalidRecordOccurred is called once per distinct ErrorKind among
	// an invalid record's field and record errors.
	InvalidRecordOccurred(stream string, kind options.ErrorKind)

	// StreamOpened/StreamClosed bracket one open-to-close pass over a
	// stream, backing the "open streams" gauge.
	StreamOpened(stream string)
	StreamClosed(stream string)
}

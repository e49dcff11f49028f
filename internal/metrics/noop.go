package metrics

import "github.com/somranjan/beanio/options"

// NoOp is the default Sink: every call is a no-op. Callers that don't
// care about metrics can pass this instead of threading a nil check
// through every call site.
type NoOp struct{}

func (NoOp) RecordRead(stream, record string)                            {}
func (NoOp) RecordWritten(stream, record string)                        {}
func (NoOp) InvalidRecordOccurred(stream string, kind options.ErrorKind) {}
func (NoOp) StreamOpened(stream string)                                 {}
func (NoOp) StreamClosed(stream string)                                 {}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/somranjan/beanio/options"
)

func TestPrometheusCountsRecordsAndErrors(t *testing.T) {
	registry := prometheus.NewRegistry()
	sink := NewPrometheus(registry)

	sink.RecordRead("orders", "header")
	sink.RecordRead("orders", "header")
	sink.RecordWritten("orders", "header")
	sink.InvalidRecordOccurred("orders", options.ErrorKindRequired)

	require.InDelta(t, 2, testutil.ToFloat64(sink.recordsRead.WithLabelValues("orders", "header")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(sink.recordsWritten.WithLabelValues("orders", "header")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(sink.invalidRecords.WithLabelValues("orders", options.ErrorKindRequired.String())), 0)
}

func TestPrometheusStreamGaugeTracksOpenClose(t *testing.T) {
	registry := prometheus.NewRegistry()
	sink := NewPrometheus(registry)

	sink.StreamOpened("orders")
	sink.StreamOpened("invoices")
	require.InDelta(t, 2, testutil.ToFloat64(sink.streamsOpen), 0)

	sink.StreamClosed("orders")
	require.InDelta(t, 1, testutil.ToFloat64(sink.streamsOpen), 0)
}

func TestNoOpDoesNotPanic(t *testing.T) {
	var sink Sink = NoOp{}

	sink.RecordRead("orders", "header")
	sink.RecordWritten("orders", "header")
	sink.InvalidRecordOccurred("orders", options.ErrorKindRequired)
	sink.StreamOpened("orders")
	sink.StreamClosed("orders")
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/somranjan/beanio/options"
)

// Prometheus is the concrete Sink backing a /metrics scrape endpoint.
// Grounded on quadgatefoundation-fluxor's pkg/observability/prometheus
// (promauto.With(registerer) metric construction, one struct holding
// every metric) — narrowed from that file's dozen HTTP/eventbus/pool
// metrics down to the handful this engine's record lifecycle actually
// produces.
type Prometheus struct {
	recordsRead    *prometheus.CounterVec
	recordsWritten *prometheus.CounterVec
	invalidRecords *prometheus.CounterVec
	streamsOpen    prometheus.Gauge
}

// NewPrometheus registers this sink's metrics against registerer and
// returns it. Pass prometheus.NewRegistry() for an isolated registry
// (as the tests and the CLI demo do), or prometheus.DefaultRegisterer
// for the process-wide one.
func NewPrometheus(registerer prometheus.Registerer) *Prometheus {
	return &Prometheus{
		recordsRead: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "beanio_records_read_total",
				Help: "Total number of records successfully unmarshalled.",
			},
			[]string{"stream", "record"},
		),
		recordsWritten: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "beanio_records_written_total",
				Help: "Total number of records successfully marshalled.",
			},
			[]string{"stream", "record"},
		),
		invalidRecords: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "beanio_invalid_records_total",
				Help: "Total number of invalid records, by error kind (once per distinct kind per record).",
			},
			[]string{"stream", "kind"},
		),
		streamsOpen: promauto.With(registerer).NewGauge(
			prometheus.GaugeOpts{
				Name: "beanio_streams_open",
				Help: "Number of streams currently open for reading or writing.",
			},
		),
	}
}

func (p *Prometheus) RecordRead(stream, record string) {
	p.recordsRead.WithLabelValues(stream, record).Inc()
}

func (p *Prometheus) RecordWritten(stream, record string) {
	p.recordsWritten.WithLabelValues(stream, record).Inc()
}

func (p *Prometheus) InvalidRecordOccurred(stream string, kind options.ErrorKind) {
	p.invalidRecords.WithLabelValues(stream, kind.String()).Inc()
}

func (p *Prometheus) StreamOpened(stream string) {
	p.streamsOpen.Inc()
}

func (p *Prometheus) StreamClosed(stream string) {
	p.streamsOpen.Dec()
}

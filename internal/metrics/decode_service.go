// Package metrics exposes Prometheus collectors for the decode service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btc_tx_visualizer",
		Subsystem: "decode_service",
		Name:      "requests_total",
		Help:      "Count of decode requests.",
	}, []string{"status"})

	decodeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "btc_tx_visualizer",
		Subsystem: "decode_service",
		Name:      "request_duration_seconds",
		Help:      "Duration of decode requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	decodedTransactionSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "btc_tx_visualizer",
		Subsystem: "decode_service",
		Name:      "transaction_size_bytes",
		Help:      "Serialized size of successfully decoded transactions.",
		Buckets:   prometheus.ExponentialBuckets(64, 2, 12),
	})

	decodedScriptTypes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "btc_tx_visualizer",
		Subsystem: "decode_service",
		Name:      "output_script_types_total",
		Help:      "Count of decoded output script types.",
	}, []string{"script_type"})
)

// DecodeService tracks metrics for the HTTP decode endpoint.
type DecodeService struct{}

// NewDecodeService constructs a metrics collector for decode requests.
func NewDecodeService() *DecodeService {
	return &DecodeService{}
}

// ObserveRequest records a single decode request outcome and duration.
func (m DecodeService) ObserveRequest(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	decodeRequestsTotal.WithLabelValues(status).Inc()
	decodeRequestDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveTransaction records facts about a successfully decoded transaction.
func (m DecodeService) ObserveTransaction(rawSize int, scriptTypes []string) {
	decodedTransactionSize.Observe(float64(rawSize))
	for _, st := range scriptTypes {
		decodedScriptTypes.WithLabelValues(st).Inc()
	}
}

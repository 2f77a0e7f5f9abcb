// Package metrics defines Prometheus counters and histograms for the
// codec's Parse and Pack calls, registered the way the teacher's gRPC
// middleware registers its own. Parse and Pack do not record into them
// themselves; a caller records each call with ObserveParse or ObservePack.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ParseTotal counts Message.Parse calls by outcome ("ok" or a wire
	// error sentinel name).
	ParseTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dnswire_parse_total", Help: "Total Message.Parse calls by outcome"},
		[]string{"outcome"},
	)
	// PackTotal counts Message.Pack calls by outcome.
	PackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dnswire_pack_total", Help: "Total Message.Pack calls by outcome"},
		[]string{"outcome"},
	)
	// MessageBytes records the size of parsed and packed wire messages.
	MessageBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dnswire_message_bytes",
			Help:    "Size in bytes of DNS messages processed",
			Buckets: []float64{28, 64, 128, 256, 512, 1232, 4096, 16384, 65535},
		},
		[]string{"direction"},
	)
	// CodecDuration records how long Parse/Pack took.
	CodecDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "dnswire_codec_duration_seconds", Help: "Parse/Pack latency", Buckets: prometheus.DefBuckets},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(ParseTotal, PackTotal, MessageBytes, CodecDuration)
}

// ObserveParse records the outcome and size of a Parse call.
func ObserveParse(start time.Time, size int, outcome string) {
	ParseTotal.WithLabelValues(outcome).Inc()
	MessageBytes.WithLabelValues("in").Observe(float64(size))
	CodecDuration.WithLabelValues("parse").Observe(time.Since(start).Seconds())
}

// ObservePack records the outcome and size of a Pack call.
func ObservePack(start time.Time, size int, outcome string) {
	PackTotal.WithLabelValues(outcome).Inc()
	MessageBytes.WithLabelValues("out").Observe(float64(size))
	CodecDuration.WithLabelValues("pack").Observe(time.Since(start).Seconds())
}

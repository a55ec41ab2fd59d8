package prometheus

import (
	"sync"
	"time"

	"github.com/NeuralTrust/TrustDesk/pkg/pii_entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

const (
	OutcomeDispatched = "dispatched"
	OutcomeBlocked    = "blocked"
	OutcomeError      = "error"

	CallReply    = "reply"
	CallClassify = "classify"
)

var (
	// Latency buckets in milliseconds; reasoning calls are seconds long.
	latencyBuckets = []float64{
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	MessagesTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustdesk_messages_total",
			Help: "Total number of messages processed by outcome",
		},
		[]string{"outcome"},
	)

	PIIDetectionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustdesk_pii_detections_total",
			Help: "Messages in which a PII category was detected",
		},
		[]string{"category"},
	)

	PIIOccurrencesTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustdesk_pii_occurrences_total",
			Help: "Spans replaced by the redactor per PII category",
		},
		[]string{"category"},
	)

	ReasoningLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustdesk_reasoning_latency_ms",
			Help:    "Reasoning service call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"call", "status"},
	)
)

type MetricsConfig struct {
	Enabled bool
}

var (
	Config       MetricsConfig
	registerOnce sync.Once
)

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registerOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	})

	for entity := range pii_entities.AllEntities {
		PIIDetectionsTotal.WithLabelValues(string(entity))
		PIIOccurrencesTotal.WithLabelValues(string(entity))
	}
	for _, outcome := range []string{OutcomeDispatched, OutcomeBlocked, OutcomeError} {
		MessagesTotal.WithLabelValues(outcome)
	}

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

func RecordMessage(outcome string, found []pii_entities.Entity) {
	if !Config.Enabled {
		return
	}
	MessagesTotal.WithLabelValues(outcome).Inc()
	for _, entity := range found {
		PIIDetectionsTotal.WithLabelValues(string(entity)).Inc()
	}
}

// RecordPIIOccurrences counts replaced spans; a category can be hit several
// times in one message.
func RecordPIIOccurrences(entity pii_entities.Entity, occurrences int) {
	if !Config.Enabled || occurrences <= 0 {
		return
	}
	PIIOccurrencesTotal.WithLabelValues(string(entity)).Add(float64(occurrences))
}

func ObserveReasoningCall(call string, err error, elapsed time.Duration) {
	if !Config.Enabled {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	ReasoningLatency.WithLabelValues(call, status).Observe(float64(elapsed.Milliseconds()))
}

// Registry exposes the private registry for the metrics endpoint and tests.
func Registry() *prometheus.Registry {
	return registry
}

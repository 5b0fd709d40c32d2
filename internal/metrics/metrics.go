package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "semantic_engine_requests_total",
			Help: "Total requests served by endpoint",
		},
		[]string{"endpoint"},
	)

	sentencesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "semantic_engine_sentences_total",
			Help: "Total sentences classified by category and method",
		},
		[]string{"category", "method"},
	)

	processingSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "semantic_engine_processing_seconds",
			Help:    "Classification batch processing time in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(requestsTotal, sentencesTotal, processingSeconds)
	})
}

// RecordRequest counts one served request against an endpoint label.
func RecordRequest(endpoint string) {
	requestsTotal.WithLabelValues(endpoint).Inc()
}

// RecordSentences counts classified sentences for a category and method.
func RecordSentences(category, method string, count int) {
	if count == 0 {
		return
	}
	sentencesTotal.WithLabelValues(category, method).Add(float64(count))
}

// ObserveProcessing records one batch's wall-clock processing time.
func ObserveProcessing(ms float64) {
	processingSeconds.Observe(ms / 1000)
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}

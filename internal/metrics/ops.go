package metrics

import "github.com/prometheus/client_golang/prometheus"

// Domain operation Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docdex",
			Name:      "search_requests_total",
			Help:      "Total number of search requests",
		},
		[]string{"status"},
	)

	SearchResultCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docdex",
			Name:      "search_result_count",
			Help:      "Number of hits returned per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	ListingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docdex",
			Name:      "listing_requests_total",
			Help:      "Total number of listing requests",
		},
		[]string{"status"},
	)

	DocumentOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docdex",
			Name:      "document_ops_total",
			Help:      "Total number of document mutations",
		},
		[]string{"op", "status"}, // op: create / update / delete
	)
)

var opMetricsRegistered bool

// RegisterOpMetrics registers domain operation metrics. Must be called once from main.
func RegisterOpMetrics() {
	if opMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchResultCount)
	prometheus.MustRegister(ListingRequestsTotal)
	prometheus.MustRegister(DocumentOpsTotal)
	opMetricsRegistered = true
}

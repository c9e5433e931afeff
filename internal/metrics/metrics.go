package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobsearch_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	SearchesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobsearch_searches_total",
			Help: "Total number of executed searches.",
		},
	)
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobsearch_search_duration_seconds",
			Help:    "Duration of each search invocation in seconds.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)
	ExactMatchesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobsearch_exact_matches_total",
			Help: "Total number of jobs placed in the exact tier.",
		},
	)
	AuxiliaryMatchesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobsearch_auxiliary_matches_total",
			Help: "Total number of jobs placed in the auxiliary tier.",
		},
	)
	HTTPRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobsearch_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"path", "status"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(SearchesCounter)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(ExactMatchesCounter)
	prometheus.MustRegister(AuxiliaryMatchesCounter)
	prometheus.MustRegister(HTTPRequestsCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":"+strconv.Itoa(port), nil))
	}()
}

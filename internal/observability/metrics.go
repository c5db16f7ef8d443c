package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce           sync.Once
	requestsTotal          *prometheus.CounterVec
	latencySeconds         *prometheus.HistogramVec
	errorsTotal            *prometheus.CounterVec
	lessonCompletionsTotal *prometheus.CounterVec
	activityMinutesTotal   prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used across the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eduverse_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		latencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eduverse_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eduverse_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		lessonCompletionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eduverse_lesson_completions_total",
			Help: "Number of first-time lesson completions recorded.",
		}, []string{"course_id"})

		activityMinutesTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "eduverse_activity_minutes_total",
			Help: "Learned minutes accumulated into the activity ledger.",
		})

		prometheus.MustRegister(requestsTotal, latencySeconds, errorsTotal, lessonCompletionsTotal, activityMinutesTotal)
	})
}

// Requests exposes the counter for API requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// Latency exposes the latency histogram for API requests.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return latencySeconds
}

// Errors exposes the counter for API error responses.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return errorsTotal
}

// LessonCompletions exposes the counter for first-time lesson completions.
func LessonCompletions() *prometheus.CounterVec {
	RegisterMetrics()
	return lessonCompletionsTotal
}

// ActivityMinutes exposes the counter for accumulated learned minutes.
func ActivityMinutes() prometheus.Counter {
	RegisterMetrics()
	return activityMinutesTotal
}

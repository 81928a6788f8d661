package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mbconsole"

type PrometheusRecorder struct {
	registry *prometheus.Registry

	brokerCallsTotal   *prometheus.CounterVec
	brokerCallDuration *prometheus.HistogramVec
	loginsTotal        *prometheus.CounterVec
	logoutsTotal       prometheus.Counter
	createsTotal       *prometheus.CounterVec
	deletesTotal       *prometheus.CounterVec

	window *CallWindow
}

func NewPrometheusRecorder() *PrometheusRecorder {
	pr := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),

		brokerCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "broker_calls_total",
				Help:      "Total number of calls made to the broker management API",
			},
			[]string{"method", "endpoint", "status"},
		),

		brokerCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "broker_call_duration_seconds",
				Help:      "Latency of broker management API calls",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		loginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Login attempts by result",
			},
			[]string{"result"},
		),

		logoutsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logouts_total",
				Help:      "Number of logouts",
			},
		),

		createsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resources_created_total",
				Help:      "Create requests submitted through the console",
			},
			[]string{"kind", "result"},
		),

		deletesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resources_deleted_total",
				Help:      "Delete requests submitted through the console",
			},
			[]string{"kind", "result"},
		),

		window: NewCallWindow(time.Minute, 1000),
	}

	pr.registry.MustRegister(
		pr.brokerCallsTotal,
		pr.brokerCallDuration,
		pr.loginsTotal,
		pr.logoutsTotal,
		pr.createsTotal,
		pr.deletesTotal,
	)
	return pr
}

// Registry exposes the registry for the /metrics handler.
func (pr *PrometheusRecorder) Registry() *prometheus.Registry {
	return pr.registry
}

func (pr *PrometheusRecorder) ObserveBrokerCall(method, endpoint string, status int, elapsed time.Duration) {
	pr.brokerCallsTotal.WithLabelValues(method, endpoint, statusLabel(status)).Inc()
	pr.brokerCallDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
	pr.window.Record(status, time.Now())
}

func (pr *PrometheusRecorder) RecordLogin(success bool) {
	pr.loginsTotal.WithLabelValues(resultLabel(success)).Inc()
}

func (pr *PrometheusRecorder) RecordLogout() {
	pr.logoutsTotal.Inc()
}

func (pr *PrometheusRecorder) RecordCreate(kind string, success bool) {
	pr.createsTotal.WithLabelValues(kind, resultLabel(success)).Inc()
}

func (pr *PrometheusRecorder) RecordDelete(kind string, success bool) {
	pr.deletesTotal.WithLabelValues(kind, resultLabel(success)).Inc()
}

func (pr *PrometheusRecorder) CallStats() CallStats {
	return pr.window.Stats()
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

package metrics

import "time"

// Recorder is the interface for metrics collection in the console.
// This interface allows for easy mocking in tests.
type Recorder interface {
	// Broker management API calls
	ObserveBrokerCall(method, endpoint string, status int, elapsed time.Duration)

	// Console actions
	RecordLogin(success bool)
	RecordLogout()
	RecordCreate(kind string, success bool)
	RecordDelete(kind string, success bool)

	// Overview
	CallStats() CallStats
}

// CallStats summarizes recent broker calls for the overview page.
type CallStats struct {
	Total      int64
	Failures   int64
	RatePerSec float64
	LastStatus int
	LastCallAt time.Time
}

// NewRecorder returns a prometheus backed recorder when enabled, a no-op otherwise.
func NewRecorder(enabled bool) Recorder {
	if enabled {
		return NewPrometheusRecorder()
	}
	return NewNoopRecorder()
}

// Ensure implementations satisfy Recorder
var (
	_ Recorder = (*PrometheusRecorder)(nil)
	_ Recorder = (*NoopRecorder)(nil)
	_ Recorder = (*MockRecorder)(nil)
)

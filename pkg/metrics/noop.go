package metrics

import "time"

type NoopRecorder struct {
}

func NewNoopRecorder() *NoopRecorder {
	return &NoopRecorder{}
}

func (nr *NoopRecorder) ObserveBrokerCall(method, endpoint string, status int, elapsed time.Duration) {
	// no-op
}

func (nr *NoopRecorder) RecordLogin(success bool) {
	// no-op
}

func (nr *NoopRecorder) RecordLogout() {
	// no-op
}

func (nr *NoopRecorder) RecordCreate(kind string, success bool) {
	// no-op
}

func (nr *NoopRecorder) RecordDelete(kind string, success bool) {
	// no-op
}

func (nr *NoopRecorder) CallStats() CallStats {
	return CallStats{}
}

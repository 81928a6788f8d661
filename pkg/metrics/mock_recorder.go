package metrics

import (
	"sync"
	"time"
)

// BrokerCall is one call seen by MockRecorder.
type BrokerCall struct {
	Method   string
	Endpoint string
	Status   int
}

// MockRecorder records everything in memory for assertions in tests.
type MockRecorder struct {
	mu sync.Mutex

	Calls    []BrokerCall
	Logins   map[bool]int
	Logouts  int
	Creates  map[string]int
	Deletes  map[string]int
	Failures map[string]int
}

func NewMockRecorder() *MockRecorder {
	return &MockRecorder{
		Logins:   make(map[bool]int),
		Creates:  make(map[string]int),
		Deletes:  make(map[string]int),
		Failures: make(map[string]int),
	}
}

func (m *MockRecorder) ObserveBrokerCall(method, endpoint string, status int, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, BrokerCall{Method: method, Endpoint: endpoint, Status: status})
}

func (m *MockRecorder) RecordLogin(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logins[success]++
}

func (m *MockRecorder) RecordLogout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logouts++
}

func (m *MockRecorder) RecordCreate(kind string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if success {
		m.Creates[kind]++
		return
	}
	m.Failures["create:"+kind]++
}

func (m *MockRecorder) RecordDelete(kind string, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if success {
		m.Deletes[kind]++
		return
	}
	m.Failures["delete:"+kind]++
}

func (m *MockRecorder) CallStats() CallStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := CallStats{Total: int64(len(m.Calls))}
	for _, c := range m.Calls {
		if failed(c.Status) {
			stats.Failures++
		}
		stats.LastStatus = c.Status
	}
	return stats
}

// CallCount returns how many calls hit method+endpoint.
func (m *MockRecorder) CallCount(method, endpoint string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if c.Method == method && c.Endpoint == endpoint {
			n++
		}
	}
	return n
}

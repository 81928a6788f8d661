package metrics

import (
	"sync"
	"time"
)

// CallWindow keeps the broker calls seen inside a sliding time window.
type CallWindow struct {
	mu         sync.RWMutex
	calls      []call
	windowSize time.Duration
	maxCalls   int

	total    int64
	failures int64
	last     call
}

type call struct {
	status int
	at     time.Time
}

func NewCallWindow(windowSize time.Duration, maxCalls int) *CallWindow {
	return &CallWindow{
		calls:      make([]call, 0, maxCalls),
		windowSize: windowSize,
		maxCalls:   maxCalls,
	}
}

// Record adds one call. Status 0 means the request never got a response.
func (w *CallWindow) Record(status int, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c := call{status: status, at: at}
	w.calls = append(w.calls, c)
	w.total++
	if failed(status) {
		w.failures++
	}
	w.last = c

	// Prune calls outside the window
	cutoff := at.Add(-w.windowSize)
	firstValid := len(w.calls)
	for i, c := range w.calls {
		if c.at.After(cutoff) {
			firstValid = i
			break
		}
	}
	if firstValid > 0 {
		n := copy(w.calls, w.calls[firstValid:])
		w.calls = w.calls[:n]
	}

	// Cap to maxCalls to prevent unbounded growth
	if len(w.calls) > w.maxCalls {
		excess := len(w.calls) - w.maxCalls
		n := copy(w.calls, w.calls[excess:])
		w.calls = w.calls[:n]
	}
}

// Rate is the number of calls per second over the window.
func (w *CallWindow) Rate() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if len(w.calls) < 2 {
		return 0.0
	}
	elapsed := w.calls[len(w.calls)-1].at.Sub(w.calls[0].at).Seconds()
	if elapsed <= 0 {
		return 0.0
	}
	return float64(len(w.calls)-1) / elapsed
}

func (w *CallWindow) Stats() CallStats {
	rate := w.Rate()

	w.mu.RLock()
	defer w.mu.RUnlock()
	return CallStats{
		Total:      w.total,
		Failures:   w.failures,
		RatePerSec: rate,
		LastStatus: w.last.status,
		LastCallAt: w.last.at,
	}
}

func (w *CallWindow) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.calls)
}

func failed(status int) bool {
	return status == 0 || status >= 400
}

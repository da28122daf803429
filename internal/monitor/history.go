package monitor

import "sync"

// DefaultHistorySize is the number of points kept per metric.
const DefaultHistorySize = 60

// History keeps the most recent values of each metric in ring buffers.
// It is safe for concurrent use: the dashboard reads it while a refresh
// cycle writes to it.
type History struct {
	mu      sync.RWMutex
	size    int
	metrics map[string]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history that keeps size points per metric.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:    size,
		metrics: make(map[string]*ringBuffer),
	}
}

// Record appends value to metric, evicting the oldest point once the
// buffer is full.
func (h *History) Record(metric string, value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	buf, ok := h.metrics[metric]
	if !ok {
		buf = newRingBuffer(h.size)
		h.metrics[metric] = buf
	}
	buf.push(value)
}

// Values returns the retained points for metric, oldest first.
func (h *History) Values(metric string) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.metrics[metric]
	if !ok {
		return nil
	}
	return buf.getLast(buf.count)
}

// Last returns the most recent value for metric.
func (h *History) Last(metric string) (float64, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	buf, ok := h.metrics[metric]
	if !ok || buf.count == 0 {
		return 0, false
	}
	v := buf.getLast(1)
	return v[0], true
}

// Len returns the number of points stored for metric.
func (h *History) Len(metric string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if buf, ok := h.metrics[metric]; ok {
		return buf.count
	}
	return 0
}

// Size returns the per-metric capacity.
func (h *History) Size() int {
	return h.size
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value, overwriting the oldest once full.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns up to n of the newest values in chronological order.
func (r *ringBuffer) getLast(n int) []float64 {
	if n <= 0 || r.count == 0 {
		return nil
	}
	if n > r.count {
		n = r.count
	}

	result := make([]float64, n)
	start := (r.head - n + r.size) % r.size
	for i := 0; i < n; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}

// Package telemetry buffers sampled (x, y) data for charting and logging.
// It holds the data contract a chart window would consume; rendering is out
// of scope.
package telemetry

import (
	"sync"

	"github.com/pkg/errors"
)

// Point is one sample in a series.
type Point struct {
	X float64
	Y float64
}

// Series is a bounded buffer of points. Once full, adding a point evicts
// the oldest, so the buffer always holds the most recent window. Safe for
// concurrent use: a control loop appends while a display reads.
type Series struct {
	mu    sync.Mutex
	data  []Point
	pos   int
	count int
	lastX float64
}

// NewSeries returns an empty series holding at most capacity points.
func NewSeries(capacity int) (*Series, error) {
	if capacity <= 0 {
		return nil, errors.Errorf("series capacity must be positive, got %d", capacity)
	}
	return &Series{data: make([]Point, capacity)}, nil
}

// Add appends a point, evicting the oldest if the series is full.
func (s *Series) Add(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(x, y)
}

func (s *Series) add(x, y float64) {
	s.data[s.pos] = Point{X: x, Y: y}
	s.pos++
	if s.pos >= len(s.data) {
		s.pos = 0
	}
	if s.count < len(s.data) {
		s.count++
	}
	s.lastX = x
}

// Append appends a point one x unit after the previous point. The first
// point lands at x = 0.
func (s *Series) Append(y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		s.add(0, y)
		return
	}
	s.add(s.lastX+1, y)
}

// Points returns a snapshot of the buffered points, oldest first.
func (s *Series) Points() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Point, 0, s.count)
	start := s.pos - s.count
	if start < 0 {
		start += len(s.data)
	}
	for i := 0; i < s.count; i++ {
		out = append(out, s.data[(start+i)%len(s.data)])
	}
	return out
}

// Last returns the most recent point, if any.
func (s *Series) Last() (Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return Point{}, false
	}
	idx := s.pos - 1
	if idx < 0 {
		idx += len(s.data)
	}
	return s.data[idx], true
}

// Len returns how many points are buffered.
func (s *Series) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Cap returns the maximum number of points the series holds.
func (s *Series) Cap() int {
	return len(s.data)
}

// Reset clears the series and seeds it with one point.
func (s *Series) Reset(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = 0
	s.count = 0
	s.add(x, y)
}

package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// Clock abstracts millisecond time so control loops can be driven by a
// mock in tests instead of wall-clock sleeps.
type Clock interface {
	NowMs() int64
}

// Wall is the real clock.
type Wall struct{}

func (Wall) NowMs() int64 { return NowMs() }

// Mock is a manually advanced clock for tests. Not safe for concurrent
// use; drive it from the test goroutine only.
type Mock struct {
	ms int64
}

func NewMock(startMs int64) *Mock { return &Mock{ms: startMs} }

func (m *Mock) NowMs() int64 { return m.ms }

// Advance moves the mock clock forward by d and returns the new time.
func (m *Mock) Advance(d time.Duration) int64 {
	m.ms += d.Milliseconds()
	return m.ms
}

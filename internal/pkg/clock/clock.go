package clock

import "time"

type Clock interface {
	Now() time.Time
}

// CPUClock reports the CPU time consumed by the process.
type CPUClock interface {
	CPUTime() time.Duration
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	currentTime time.Time
	cpu         time.Duration
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

func (c *MockClock) CPUTime() time.Duration {
	return c.cpu
}

func (c *MockClock) AddCPU(d time.Duration) {
	c.cpu += d
}

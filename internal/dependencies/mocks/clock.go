package mocks

import (
	"time"

	"github.com/mcoot/connectn/internal/dependencies/clock"
)

// MockClock hands out a controlled time. With a non-zero Step every read
// moves the clock forward, so consecutive moves get distinct timestamps.
type MockClock struct {
	CurrentTime time.Time
	Step        time.Duration
	Reads       int
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock frozen at the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// NewSteppingMockClock creates a MockClock that advances by step after each read
func NewSteppingMockClock(t time.Time, step time.Duration) *MockClock {
	return &MockClock{CurrentTime: t, Step: step}
}

// Now returns the current mocked time, then applies Step
func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	c.CurrentTime = c.CurrentTime.Add(c.Step)
	c.Reads++
	return now
}

// Advance moves the clock forward between turns
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

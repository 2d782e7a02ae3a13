package clock

import "time"

// Clock stamps game creation and moves. The gap between CreatedAt and the
// last UpdatedAt is the game duration reported when a game completes.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// New returns the clock used outside tests
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current wall-clock time
func (SystemClock) Now() time.Time {
	return time.Now()
}

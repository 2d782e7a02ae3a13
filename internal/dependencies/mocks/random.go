package mocks

import (
	"github.com/mcoot/connectn/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IDResults is a queue of results to return from ID
	IDResults []string
	idIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// ID returns the next queued result, or empty string if none remaining
func (r *MockRandom) ID(length int) string {
	if r.idIndex >= len(r.IDResults) {
		return ""
	}
	result := r.IDResults[r.idIndex]
	r.idIndex++
	return result
}

// QueueID adds values to the ID result queue
func (r *MockRandom) QueueID(values ...string) {
	r.IDResults = append(r.IDResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IDResults = nil
	r.idIndex = 0
}

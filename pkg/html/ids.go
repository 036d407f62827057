package html

import (
	"strconv"
	"sync"
)

const defaultIDPrefix = "i"

// IDGenerator hands out element ids of the form "{prefix}{n}" with one
// counter per prefix. Counters only move forward until Reset is called.
type IDGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

// NewIDGenerator returns a generator with every counter at zero.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{counters: make(map[string]int)}
}

// DefaultIDs is the process-wide generator used by widgets that were not
// given their own.
var DefaultIDs = NewIDGenerator()

// Next increments the counter for prefix and returns the new id. An empty
// prefix uses "i".
func (g *IDGenerator) Next(prefix string) string {
	if prefix == "" {
		prefix = defaultIDPrefix
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.counters == nil {
		g.counters = make(map[string]int)
	}
	g.counters[prefix]++
	return prefix + strconv.Itoa(g.counters[prefix])
}

// Reset clears every counter.
func (g *IDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counters = make(map[string]int)
}

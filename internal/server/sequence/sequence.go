// Package sequence issues process-lifetime, strictly increasing integer
// identifiers with an independent counter per entity kind.
package sequence

import "sync"

// Kind names an identifier namespace.
type Kind string

const (
	KindUser Kind = "user"
	KindTask Kind = "task"
)

// Allocator hands out identifiers starting at 1, incrementing by 1 per call.
// Issued identifiers are never reused within the process lifetime; there is
// no persistence across restarts.
type Allocator struct {
	mu   sync.Mutex
	last map[Kind]int64
}

func NewAllocator() *Allocator {
	return &Allocator{last: make(map[Kind]int64)}
}

// Next returns the next identifier for the given kind.
func (a *Allocator) Next(kind Kind) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last[kind]++
	return a.last[kind]
}

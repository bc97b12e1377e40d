package trace

import (
	"sync"
	"time"
)

// Outcome values recorded for a command.
const (
	OutcomeOK    = "ok"
	OutcomeNoop  = "noop"
	OutcomeError = "error"
)

// Record is one dispatched command.
type Record struct {
	Command  string
	Frame    uint64 // active frame when the command ran
	Start    time.Time
	Duration time.Duration
	Outcome  string
	Err      string
}

// Journal keeps the most recent commands in a bounded ring.
type Journal struct {
	mu       sync.RWMutex
	records  []Record
	next     int // slot the next record is written to once the ring is full
	size     int
	onChange func()
}

// NewJournal creates a journal holding up to size records (default 64).
func NewJournal(size int) *Journal {
	if size <= 0 {
		size = 64
	}
	return &Journal{
		records: make([]Record, 0, size),
		size:    size,
	}
}

// Add appends r, evicting the oldest record when full.
func (j *Journal) Add(r Record) {
	j.mu.Lock()
	if len(j.records) < j.size {
		j.records = append(j.records, r)
	} else {
		j.records[j.next] = r
		j.next = (j.next + 1) % j.size
	}
	fn := j.onChange
	j.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Recent returns the records newest first.
func (j *Journal) Recent() []Record {
	j.mu.RLock()
	defer j.mu.RUnlock()

	n := len(j.records)
	out := make([]Record, 0, n)
	// The newest record sits just before next in ring order.
	for i := 1; i <= n; i++ {
		out = append(out, j.records[(j.next-i+n)%n])
	}
	return out
}

// Len returns the number of records held.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.records)
}

// SetOnChange sets a callback run after every Add (thread-safe).
func (j *Journal) SetOnChange(fn func()) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.onChange = fn
}

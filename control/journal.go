// File: control/journal.go
// Package control
// Author: momentics <momentics@gmail.com>
//
// Bounded in-memory journal of committed atom transitions, kept for debug
// probes and post-mortem inspection. Not a persistence layer: records fall
// off the front once capacity is reached.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-atom/api"
)

// Ensure compile-time interface compliance.
var _ api.Inspectable = (*TransitionJournal)(nil)

// TransitionRecord is one committed transition as seen by the journal.
type TransitionRecord struct {
	Seq       uint64
	Timestamp time.Time
	Atom      string
	Value     any
}

// DefaultJournalCapacity bounds a journal when the caller supplies none.
const DefaultJournalCapacity = 1024

// TransitionJournal is a fixed-capacity FIFO of recent transitions.
type TransitionJournal struct {
	mu  sync.Mutex
	q   *queue.Queue
	cap int
	seq uint64
}

// NewTransitionJournal creates a journal bounded to capacity records.
// Capacity below 1 falls back to DefaultJournalCapacity.
func NewTransitionJournal(capacity int) *TransitionJournal {
	if capacity < 1 {
		capacity = DefaultJournalCapacity
	}
	return &TransitionJournal{q: queue.New(), cap: capacity}
}

// Record appends one transition, evicting the oldest when full, and returns
// the sequence number assigned to it. Sequence numbers keep growing after
// eviction, so gaps at the front reveal dropped history.
func (j *TransitionJournal) Record(atomName string, ts time.Time, value any) uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.seq++
	j.q.Add(TransitionRecord{Seq: j.seq, Timestamp: ts, Atom: atomName, Value: value})
	for j.q.Length() > j.cap {
		j.q.Remove()
	}
	return j.seq
}

// Dump returns the retained records, oldest first.
func (j *TransitionJournal) Dump() []TransitionRecord {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]TransitionRecord, 0, j.q.Length())
	for i := 0; i < j.q.Length(); i++ {
		out = append(out, j.q.Get(i).(TransitionRecord))
	}
	return out
}

// Last returns the most recent record, if any.
func (j *TransitionJournal) Last() (TransitionRecord, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.q.Length() == 0 {
		return TransitionRecord{}, false
	}
	return j.q.Get(-1).(TransitionRecord), true
}

// Len returns the number of retained records.
func (j *TransitionJournal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.q.Length()
}

// Cap returns the retention bound.
func (j *TransitionJournal) Cap() int {
	return j.cap
}

// Name implements api.Inspectable.
func (j *TransitionJournal) Name() string { return "journal" }

// Snapshot implements api.Inspectable.
func (j *TransitionJournal) Snapshot() map[string]any {
	j.mu.Lock()
	defer j.mu.Unlock()
	return map[string]any{
		"len": j.q.Length(),
		"cap": j.cap,
		"seq": j.seq,
	}
}

package zoo

import (
	"sort"
	"time"
)

// Scheduler runs a callback once after a delay. There is no cancel:
// callbacks that fire after their condition went stale must re-check
// state themselves.
type Scheduler interface {
	After(d time.Duration, fn func())
}

type pendingCall struct {
	due time.Time
	fn  func()
}

// FrameScheduler queues callbacks and runs the due ones when the owning
// loop calls Run, so every callback executes on the loop's goroutine.
// It is not safe for concurrent use.
type FrameScheduler struct {
	clock   Clock
	pending []pendingCall
}

// NewFrameScheduler creates a scheduler measuring delays on clock.
func NewFrameScheduler(clock Clock) *FrameScheduler {
	return &FrameScheduler{clock: clock}
}

// After queues fn to run on the first Run at or after now+d.
func (s *FrameScheduler) After(d time.Duration, fn func()) {
	call := pendingCall{due: s.clock.Now().Add(d), fn: fn}
	i := sort.Search(len(s.pending), func(i int) bool {
		return s.pending[i].due.After(call.due)
	})
	s.pending = append(s.pending, pendingCall{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = call
}

// Run fires every callback due at or before now, earliest first, and
// returns how many ran. Callbacks scheduled by a callback run in the same
// pass when they are already due.
func (s *FrameScheduler) Run(now time.Time) int {
	ran := 0
	for len(s.pending) > 0 && !s.pending[0].due.After(now) {
		call := s.pending[0]
		s.pending = s.pending[1:]
		call.fn()
		ran++
	}
	return ran
}

// Pending returns the number of queued callbacks.
func (s *FrameScheduler) Pending() int { return len(s.pending) }

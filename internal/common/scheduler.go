package common

import "time"

// Scheduler fires a callback once after a delay. There is no cancellation:
// the cosmetic delays in this app (logout, post-wipe reload, simulated
// uploads) never need to be unwound.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// TimerScheduler schedules callbacks on real timers.
type TimerScheduler struct{}

// After fires fn once d has elapsed.
func (TimerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// ImmediateScheduler runs callbacks synchronously, ignoring the delay.
// Used in tests and in CLI paths where waiting out a cosmetic delay
// would serve no one.
type ImmediateScheduler struct{}

// After runs fn right away.
func (ImmediateScheduler) After(_ time.Duration, fn func()) {
	fn()
}

// ManualScheduler queues callbacks until Fire is called. Tests use it to
// assert on the state between scheduling a transition and its completion.
type ManualScheduler struct {
	pending []func()
}

// After queues fn without running it.
func (s *ManualScheduler) After(_ time.Duration, fn func()) {
	s.pending = append(s.pending, fn)
}

// Fire runs every queued callback in order and clears the queue.
func (s *ManualScheduler) Fire() {
	queued := s.pending
	s.pending = nil
	for _, fn := range queued {
		fn()
	}
}

// Pending reports how many callbacks are queued.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

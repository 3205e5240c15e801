// internal/system/scheduler.go
package system

import "slices"

// TimerID identifies a scheduled callback.
type TimerID uint64

type scheduledTimer struct {
	id TimerID
	at float64
	fn func()
}

// Scheduler runs one-shot callbacks on the simulation clock. It only
// advances when Update is called, so pausing the game pauses it too.
// Callbacks must check that the entities they touch still exist.
type Scheduler struct {
	now    float64
	nextID TimerID
	timers []scheduledTimer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once delay seconds from now.
func (s *Scheduler) After(delay float64, fn func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, scheduledTimer{id: s.nextID, at: s.now + delay, fn: fn})
	return s.nextID
}

// Cancel drops a pending timer. Unknown ids are ignored.
func (s *Scheduler) Cancel(id TimerID) {
	s.timers = slices.DeleteFunc(s.timers, func(t scheduledTimer) bool { return t.id == id })
}

// Update advances the clock and fires due timers in deadline order.
// Timers scheduled by a callback run on a later Update at the earliest.
func (s *Scheduler) Update(deltaTime float64) {
	s.now += deltaTime

	var due []scheduledTimer
	s.timers = slices.DeleteFunc(s.timers, func(t scheduledTimer) bool {
		if t.at <= s.now {
			due = append(due, t)
			return true
		}
		return false
	})
	slices.SortStableFunc(due, func(a, b scheduledTimer) int {
		switch {
		case a.at < b.at:
			return -1
		case a.at > b.at:
			return 1
		}
		return int(a.id) - int(b.id)
	})
	for _, t := range due {
		t.fn()
	}
}

func (s *Scheduler) Pending() int { return len(s.timers) }

// Clear drops every pending timer without running it.
func (s *Scheduler) Clear() {
	s.timers = nil
}

package orbit

import "sync"

// Scheduler runs repeating tasks once per display frame. The host calls
// Frame from its refresh loop (tea.Tick in the terminal, ebiten's Update
// in a window).
type Scheduler struct {
	mu    sync.Mutex
	tasks []*Subscription
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Subscription is the cancellation handle for a scheduled task.
type Subscription struct {
	s      *Scheduler
	fn     func()
	once   sync.Once
	active bool // guarded by s.mu
}

// Subscribe registers fn to run on every subsequent frame.
func (s *Scheduler) Subscribe(fn func()) *Subscription {
	sub := &Subscription{s: s, fn: fn, active: true}
	s.mu.Lock()
	s.tasks = append(s.tasks, sub)
	s.mu.Unlock()
	return sub
}

// Cancel stops the task. Only the first call has an effect; it is safe to
// call from inside a running frame.
func (sub *Subscription) Cancel() {
	sub.once.Do(func() {
		s := sub.s
		s.mu.Lock()
		defer s.mu.Unlock()
		sub.active = false
		for i, t := range s.tasks {
			if t == sub {
				s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
				break
			}
		}
	})
}

// Active reports whether the task is still scheduled.
func (sub *Subscription) Active() bool {
	sub.s.mu.Lock()
	defer sub.s.mu.Unlock()
	return sub.active
}

// Frame runs every active task once, in subscription order. Tasks
// cancelled during the frame are skipped.
func (s *Scheduler) Frame() {
	s.mu.Lock()
	if len(s.tasks) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks run without holding the lock
	tasks := make([]*Subscription, len(s.tasks))
	copy(tasks, s.tasks)
	s.mu.Unlock()

	for _, t := range tasks {
		if t.Active() && t.fn != nil {
			t.fn()
		}
	}
}

// Active returns the number of scheduled tasks.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

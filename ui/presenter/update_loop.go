package presenter

// Ticker is driven once per loop iteration.
type Ticker interface{ Tick() }

// Loop drives the active session and invokes a scheduler callback.
//
// The active session changes as the directory walk advances; SetSession(nil)
// leaves the loop idle. The zero value is usable (methods are nil-safe).
type Loop struct {
	Session  Ticker
	Schedule func()
	stopped  bool
}

func NewLoop(schedule func()) *Loop {
	return &Loop{Schedule: schedule}
}

// SetSession swaps the ticked session.
func (l *Loop) SetSession(s Ticker) {
	if l != nil {
		l.Session = s
	}
}

// Stop prevents further rescheduling.
func (l *Loop) Stop() {
	if l != nil {
		l.stopped = true
	}
}

func (l *Loop) Tick() {
	if l == nil || l.stopped {
		return
	}
	if l.Session != nil {
		l.Session.Tick()
	}
	if l.Schedule != nil && !l.stopped {
		l.Schedule()
	}
}

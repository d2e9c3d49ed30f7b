package clock

import "time"

// Clock provides wall-clock time. Injected where time-dependent
// behavior needs to be testable.
type Clock interface {
	Now() time.Time
}

// System returns a Clock backed by time.Now().
func System() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Fixed is a manually advanced Clock for tests.
type Fixed struct {
	Current time.Time
}

func (f *Fixed) Now() time.Time { return f.Current }

// Advance moves the fixed clock forward by d.
func (f *Fixed) Advance(d time.Duration) { f.Current = f.Current.Add(d) }

package domain

import "github.com/jonboulle/clockwork"

// clock stamps Report.GeneratedAt.
var clock clockwork.Clock = clockwork.NewRealClock()

// SetClock replaces the clock that stamps new reports. A nil clock restores
// wall time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clock = c
}

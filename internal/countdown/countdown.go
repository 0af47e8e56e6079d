// Package countdown splits the time left until an event into display units.
package countdown

import "time"

// Countdown is the time left until an event, in whole seconds.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Until returns the time left from now until target. The second return value is
// false once target has been reached, in which case the countdown is zero.
func Until(target, now time.Time) (Countdown, bool) {
	left := int64(target.Sub(now) / time.Second)
	if left <= 0 {
		return Countdown{}, false
	}

	return Countdown{
		Days:    int(left / 86400),
		Hours:   int(left % 86400 / 3600),
		Minutes: int(left % 3600 / 60),
		Seconds: int(left % 60),
	}, true
}

// TotalSeconds converts the countdown back into a number of seconds.
func (c Countdown) TotalSeconds() int64 {
	return int64(c.Days)*86400 + int64(c.Hours)*3600 + int64(c.Minutes)*60 + int64(c.Seconds)
}

package webidl

import "time"

// https://w3c.github.io/hr-time/#dom-domhighrestimestamp
type DOMHighResTimeStamp float64

var timeOrigin = time.Now()

// Now returns the milliseconds elapsed since the time origin of this process.
func Now() DOMHighResTimeStamp {
	return DOMHighResTimeStamp(time.Since(timeOrigin)) / DOMHighResTimeStamp(time.Millisecond)
}


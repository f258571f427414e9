package common

import (
	"fmt"
	"time"
)

var startTime = time.Now()

type Duration time.Duration

func (it Duration) String() string {
	return fmt.Sprintf("%7.3fs", time.Duration(it).Seconds())
}

type stopwatch struct {
	message string
	started time.Time
}

func Stopwatch(form string, details ...interface{}) *stopwatch {
	return &stopwatch{
		message: fmt.Sprintf(form, details...),
		started: time.Now(),
	}
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Report() Duration {
	elapsed := it.Elapsed()
	Log("%s %s", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Debug() Duration {
	elapsed := it.Elapsed()
	Debug("%s %s", it.message, elapsed)
	return elapsed
}

// Timeline notes a trace level event stamped with time since process start.
func Timeline(form string, details ...interface{}) {
	if TraceFlag() {
		Trace("%s %s", Duration(time.Since(startTime)), fmt.Sprintf(form, details...))
	}
}

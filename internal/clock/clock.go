// Package clock abstracts the reference instant the interpreter anchors
// relative phrases against, so invocations can run either on the live
// system clock or on a caller-supplied fixed instant.
package clock

import (
	"fmt"
	"time"
)

// Clock supplies the reference instant for one invocation.
type Clock interface {
	Now() time.Time
}

// System returns a Clock backed by the live system clock.
func System() Clock {
	return systemClock{}
}

// Fixed returns a Clock that always reports the given instant. Every
// relative phrase resolved against it observes the same value.
func Fixed(t time.Time) Clock {
	return fixedClock{instant: t}
}

// Parse builds a fixed Clock from a strict RFC 3339 timestamp such as
// "2025-06-26T15:30:00+01:00".
func Parse(value string) (Clock, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("parse reference instant %q: %w", value, err)
	}
	return Fixed(t), nil
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type fixedClock struct {
	instant time.Time
}

func (c fixedClock) Now() time.Time { return c.instant }

var (
	_ Clock = (*systemClock)(nil)
	_ Clock = (*fixedClock)(nil)
)

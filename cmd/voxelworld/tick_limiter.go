package main

import "time"

// TickLimiter paces the simulation loop to a fixed tick rate.
type TickLimiter struct {
	rate int
	next time.Time
}

// NewTickLimiter creates a limiter for rate ticks per second; rate <= 0
// disables pacing.
func NewTickLimiter(rate int) *TickLimiter {
	return &TickLimiter{rate: rate}
}

// Wait blocks until the next tick is due. Uses a hybrid sleep/spin
// approach for better precision on high tick rates.
func (t *TickLimiter) Wait() {
	if t.rate <= 0 {
		t.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(t.rate)

	if t.next.IsZero() {
		t.next = time.Now().Add(target)
	} else {
		t.next = t.next.Add(target)
	}

	for {
		remaining := time.Until(t.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		if time.Until(t.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., a long generation burst), resync to avoid drift
	if late := -time.Until(t.next); late > target {
		t.next = time.Now().Add(target)
	}
}

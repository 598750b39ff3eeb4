package realtime

import (
	"math"
	"math/rand"
	"time"
)

// reconnector computes exponential backoff with jitter for reconnect
// attempts. A session that stayed up for a minute resets the attempt
// counter, so a long-lived connection that drops starts over from the base
// delay.
type reconnector struct {
	baseDelay   time.Duration
	maxDelay    time.Duration
	maxAttempts int
	attempt     int
	connectedAt time.Time
}

func newReconnector(base, max time.Duration, maxAttempts int) *reconnector {
	if base <= 0 {
		base = time.Second
	}
	if max <= 0 {
		max = 30 * time.Second
	}
	return &reconnector{
		baseDelay:   base,
		maxDelay:    max,
		maxAttempts: maxAttempts,
	}
}

func (r *reconnector) shouldRetry() bool {
	return r.maxAttempts == 0 || r.attempt < r.maxAttempts
}

func (r *reconnector) markConnected() {
	r.connectedAt = time.Now()
}

func (r *reconnector) nextDelay() time.Duration {
	if !r.connectedAt.IsZero() && time.Since(r.connectedAt) > 60*time.Second {
		r.attempt = 0
	}

	jitter := time.Duration(rand.Float64() * float64(r.baseDelay) * 0.5)
	delay := time.Duration(math.Min(
		float64(r.baseDelay)*math.Pow(2, float64(r.attempt))+float64(jitter),
		float64(r.maxDelay),
	))
	r.attempt++
	return delay
}

// Package retry runs an operation until it succeeds or a bounded budget of
// attempts and wall‑clock time is spent, backing off exponentially between
// attempts.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ErrExhausted is matched by errors.Is when the budget ran out.
var ErrExhausted = errors.New("retry budget exhausted")

// ExhaustedError carries the attempt count and the last failure.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry budget exhausted after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() []error { return []error{ErrExhausted, e.Err} }

// Policy bounds a retry loop. MaxElapsed is a deadline over the whole loop,
// attempts included; AttemptTimeout cuts a single attempt short so the next
// one can start. Zero disables either bound. MaxAttempts below one is treated
// as one.
type Policy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsed      time.Duration
	AttemptTimeout  time.Duration
}

// DefaultPolicy mirrors the server defaults.
var DefaultPolicy = Policy{
	MaxAttempts:     5,
	InitialInterval: 250 * time.Millisecond,
	MaxInterval:     5 * time.Second,
	MaxElapsed:      time.Minute,
	AttemptTimeout:  20 * time.Second,
}

// NotifyFunc observes every failed attempt before the wait that follows it.
type NotifyFunc func(attempt int, err error, wait time.Duration)

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.InitialInterval
	eb.MaxInterval = p.MaxInterval
	eb.MaxElapsedTime = p.MaxElapsed

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return backoff.WithContext(backoff.WithMaxRetries(eb, uint64(attempts-1)), ctx)
}

// Do calls op until it returns a nil error (Success) or the policy gives up
// (Exhausted). Cancellation of the caller's ctx ends the loop with ctx.Err();
// running out of MaxElapsed, even in the middle of an attempt, is Exhausted.
func Do[T any](ctx context.Context, p Policy, op func(context.Context) (T, error), notify NotifyFunc) (T, error) {
	var (
		out      T
		attempts int
		last     error
	)

	budget := ctx
	if p.MaxElapsed > 0 {
		var cancel context.CancelFunc
		budget, cancel = context.WithTimeout(ctx, p.MaxElapsed)
		defer cancel()
	}

	err := backoff.RetryNotify(func() error {
		attempts++
		v, err := attempt(budget, p.AttemptTimeout, op)
		if err != nil {
			last = err
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			if budget.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		out = v
		return nil
	}, p.backOff(budget), func(err error, wait time.Duration) {
		if notify != nil {
			notify(attempts, err, wait)
		}
	})

	switch {
	case err == nil:
		return out, nil
	case ctx.Err() != nil:
		var zero T
		return zero, fmt.Errorf("retry canceled after %d attempts: %w", attempts, ctx.Err())
	default:
		if last == nil {
			last = err
		}
		var zero T
		return zero, &ExhaustedError{Attempts: attempts, Err: last}
	}
}

func attempt[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return op(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return op(ctx)
}

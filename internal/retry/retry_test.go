package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fastPolicy = Policy{
	MaxAttempts:     5,
	InitialInterval: time.Millisecond,
	MaxInterval:     2 * time.Millisecond,
	MaxElapsed:      time.Second,
}

func flaky(failures int) (func(context.Context) (string, error), *int) {
	calls := 0
	return func(context.Context) (string, error) {
		calls++
		if calls <= failures {
			return "", errors.New("upstream hiccup")
		}
		return "Tacos 🌮, obviously!", nil
	}, &calls
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	op, calls := flaky(3)
	var notified []int

	got, err := Do(context.Background(), fastPolicy, op, func(attempt int, err error, _ time.Duration) {
		notified = append(notified, attempt)
		assert.EqualError(t, err, "upstream hiccup")
	})

	require.NoError(t, err)
	assert.Equal(t, "Tacos 🌮, obviously!", got)
	assert.Equal(t, 4, *calls)
	assert.Equal(t, []int{1, 2, 3}, notified)
}

func TestDo_FirstTry(t *testing.T) {
	op, calls := flaky(0)

	got, err := Do(context.Background(), fastPolicy, op, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, 1, *calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	op, calls := flaky(100)

	_, err := Do(context.Background(), fastPolicy, op, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 5, *calls)

	var ex *ExhaustedError
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, 5, ex.Attempts)
	assert.EqualError(t, ex.Err, "upstream hiccup")
}

func TestDo_ZeroAttemptsMeansOne(t *testing.T) {
	op, calls := flaky(100)

	_, err := Do(context.Background(), Policy{InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}, op, nil)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 1, *calls)
}

func TestDo_ElapsedBound(t *testing.T) {
	p := Policy{
		MaxAttempts:     1_000_000,
		InitialInterval: 5 * time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxElapsed:      50 * time.Millisecond,
	}
	op, _ := flaky(1_000_000)

	start := time.Now()
	_, err := Do(context.Background(), p, op, nil)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := Policy{MaxAttempts: 100, InitialInterval: time.Hour, MaxInterval: time.Hour}

	calls := 0
	op := func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, errors.New("boom")
	}

	_, err := Do(ctx, p, op, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 1, calls)
}

// hang blocks until its context ends, like an upstream that never answers.
func hang(ctx context.Context) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestDo_ElapsedBoundsHungAttempt(t *testing.T) {
	p := Policy{
		MaxAttempts:     2,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
		MaxElapsed:      100 * time.Millisecond,
	}

	start := time.Now()
	_, err := Do(context.Background(), p, hang, nil)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDo_AttemptTimeoutMovesOn(t *testing.T) {
	p := Policy{
		MaxAttempts:     3,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
		AttemptTimeout:  20 * time.Millisecond,
	}

	calls := 0
	op := func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return hang(ctx)
		}
		return "second try", nil
	}

	got, err := Do(context.Background(), p, op, nil)
	require.NoError(t, err)
	assert.Equal(t, "second try", got)
	assert.Equal(t, 2, calls)
}

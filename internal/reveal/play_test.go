package reveal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPlay_PublishesEveryPrefix(t *testing.T) {
	var got []string
	err := Play(context.Background(), "héllo", time.Millisecond, func(p string) {
		got = append(got, p)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"", "h", "hé", "hél", "héll", "héllo"}, got)
}

func TestPlay_Empty(t *testing.T) {
	called := false
	require.NoError(t, Play(context.Background(), "", time.Millisecond, func(string) { called = true }))
	assert.False(t, called)
}

func TestPlay_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var got []string

	err := Play(ctx, "a long answer that will not finish", 5*time.Millisecond, func(p string) {
		got = append(got, p)
		if len(got) == 3 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, len(got), 10)
}

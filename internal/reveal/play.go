package reveal

import (
	"context"
	"time"
)

// Play reveals text outside of bubbletea, calling publish with every prefix
// starting from "". It returns nil once the whole text was published and
// ctx.Err() if ctx ends first.
func Play(ctx context.Context, text string, interval time.Duration, publish func(prefix string)) error {
	seq := NewSequence(text)
	seq.Begin()
	if seq.State() != Revealing {
		return nil
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	publish(seq.Prefix())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			seq.Cancel()
			return ctx.Err()
		case <-ticker.C:
			prefix, more := seq.Advance()
			publish(prefix)
			if !more {
				return nil
			}
		}
	}
}

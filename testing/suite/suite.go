package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Random *SequenceRandom
}

// New - returns a context bound to the test and a suite with a silent logger and a
// deterministic random source.
func New(t *testing.T, randomValues ...int) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Random: &SequenceRandom{values: randomValues},
	}
}

// SequenceRandom - replays the given values, wrapped below n; zero once exhausted.
type SequenceRandom struct {
	values []int
	next   int
}

func (that *SequenceRandom) Intn(n int) int {
	if that.next >= len(that.values) {
		return 0
	}

	value := that.values[that.next]
	that.next++

	return value % n
}

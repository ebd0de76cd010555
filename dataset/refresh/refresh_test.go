package refresh

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsRebuilder(t *testing.T) {
	done := make(chan struct{})
	rebuild := func(ctx context.Context) error {
		close(done)
		return nil
	}

	s := NewScheduler(slog.Default())
	require.NoError(t, s.Start(context.Background(), "* * * * * *", rebuild))
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("rebuild was not invoked within timeout")
	}
}

func TestSchedulerStartRejectsBadSchedule(t *testing.T) {
	s := NewScheduler(slog.Default())
	err := s.Start(context.Background(), "not a schedule", func(context.Context) error { return nil })
	require.Error(t, err)
}

package network

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSendWithoutConnection(t *testing.T) {
	c := NewClient()
	seq, err := c.SendIntent(1, 0, 0)
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("err = %v, want ErrNotConnected", err)
	}
	if seq != 1 {
		t.Errorf("sequence = %d, want 1", seq)
	}
	if seq, _ := c.SendIntent(1, 0, 0); seq != 2 {
		t.Errorf("sequence = %d, want 2", seq)
	}
	if c.LatestSnapshot() != nil {
		t.Error("snapshot before connecting")
	}
}

func TestWaitJoinedTimesOut(t *testing.T) {
	c := NewClient()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := c.WaitJoined(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestWaitJoinedReportsFailure(t *testing.T) {
	c := NewClient()
	boom := errors.New("rejected")
	c.fail(boom)
	c.fail(errors.New("later"))

	if _, err := c.WaitJoined(context.Background()); !errors.Is(err, boom) {
		t.Errorf("err = %v, want the first failure", err)
	}
}

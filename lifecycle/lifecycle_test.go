package lifecycle

import (
	"context"
	"testing"
)

func TestStopWaits(t *testing.T) {
	lc := New()
	done := make(chan struct{})
	finished := false
	lc.Go(func(ctx context.Context) {
		close(done)
		<-ctx.Done()
		finished = true
	})
	<-done
	if lc.ShouldStop() {
		t.Error("Expected running lifecycle")
	}
	lc.Stop()
	if !finished {
		t.Error("Expected Stop to wait for the goroutine")
	}
	if !lc.ShouldStop() {
		t.Error("Expected stopped lifecycle")
	}
	select {
	case <-lc.Stopping():
	default:
		t.Error("Expected Stopping to be closed")
	}
}

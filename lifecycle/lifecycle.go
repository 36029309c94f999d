package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle tracks background goroutines that must finish before shutdown.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

// Go runs fn on its own goroutine and tracks it until it returns.
func (lc *Lifecycle) Go(fn func(ctx context.Context)) {
	lc.wg.Add(1)
	go func() {
		defer lc.wg.Done()
		fn(lc.ctx)
	}()
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

func (lc *Lifecycle) Stopping() <-chan struct{} {
	return lc.ctx.Done()
}

// Stop cancels the context and waits for every tracked goroutine.
func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}

package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle tracks background goroutines so Stop can cancel them and wait
// until every one has called Done.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	hooks  []func()
	mu     sync.Mutex
}

func New() *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

func (lc *Lifecycle) Context() context.Context {
	return lc.ctx
}

func (lc *Lifecycle) Started() {
	lc.wg.Add(1)
}

func (lc *Lifecycle) Done() {
	lc.wg.Done()
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

// OnStop registers a hook that runs after cancellation and before Stop
// waits for the goroutines. Hooks unblock goroutines parked outside of a
// context-aware wait.
func (lc *Lifecycle) OnStop(hook func()) {
	lc.mu.Lock()
	lc.hooks = append(lc.hooks, hook)
	lc.mu.Unlock()
}

func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.mu.Lock()
	hooks := lc.hooks
	lc.hooks = nil
	lc.mu.Unlock()
	for _, hook := range hooks {
		hook()
	}
	lc.wg.Wait()
}

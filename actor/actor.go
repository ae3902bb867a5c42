package actor

import (
	"sync"
)

type Actor[T any] interface {
	Send(message T)
	// Stop waits until every message sent before it is handled.
	Stop()
}

// Handler handles one message; returning false stops the actor.
type Handler[T any] func(T) bool

func NewActor[T any](handler Handler[T]) Actor[T] {
	actor := &actor[T]{
		handler: handler,
		Cond:    sync.NewCond(&sync.Mutex{}),
		done:    make(chan struct{}),
	}
	go run(actor)
	return actor
}

type actor[T any] struct {
	handler  Handler[T]
	pending  []T
	stopping bool
	done     chan struct{}
	*sync.Cond
}

func (a *actor[T]) Send(msg T) {
	a.Cond.L.Lock()
	if !a.stopping {
		a.pending = append(a.pending, msg)
		a.Cond.Signal()
	}
	a.Cond.L.Unlock()
}

func (a *actor[T]) Stop() {
	a.Cond.L.Lock()
	a.stopping = true
	a.Cond.Signal()
	a.Cond.L.Unlock()
	<-a.done
}

func run[T any](a *actor[T]) {
	defer close(a.done)
	for {
		a.Cond.L.Lock()
		for len(a.pending) == 0 && !a.stopping {
			a.Cond.Wait()
		}
		if len(a.pending) == 0 {
			a.Cond.L.Unlock()
			return
		}
		msg := a.pending[0]
		a.pending = a.pending[1:]
		a.Cond.L.Unlock()

		if !a.handler(msg) {
			a.Cond.L.Lock()
			a.stopping = true
			a.pending = nil
			a.Cond.L.Unlock()
			return
		}
	}
}

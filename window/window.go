// Package window is the process-wide pointer event target. Any number of
// components listen on the same Window; each listener is represented by a
// Subscription that its owner must cancel.
package window

import (
	"sync"

	"huepick/device"
	"huepick/events"
)

type Handler func(events.Pointer)

// Area returns the current hit area of an area-bound listener.
type Area func() device.Rect

type Window struct {
	mu        sync.Mutex
	listeners []*Subscription
	nextId    int
}

type Subscription struct {
	window *Window
	id     int
	kind   events.Kind
	area   Area
	handle Handler
}

func New() *Window {
	return &Window{}
}

// Listen registers handler for every event of kind.
func (w *Window) Listen(kind events.Kind, handler Handler) *Subscription {
	return w.add(kind, nil, handler)
}

// ListenArea registers handler for events of kind whose position falls
// inside area() at dispatch time.
func (w *Window) ListenArea(kind events.Kind, area Area, handler Handler) *Subscription {
	return w.add(kind, area, handler)
}

func (w *Window) add(kind events.Kind, area Area, handler Handler) *Subscription {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextId++
	sub := &Subscription{window: w, id: w.nextId, kind: kind, area: area, handle: handler}
	w.listeners = append(w.listeners, sub)
	return sub
}

// Listeners returns the number of live subscriptions.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

// Dispatch delivers event synchronously to the matching listeners in
// subscription order. Listeners added or cancelled by a handler take
// effect from the next Dispatch.
func (w *Window) Dispatch(event events.Pointer) {
	kind := events.KindOf(event)

	w.mu.Lock()
	targets := make([]*Subscription, 0, len(w.listeners))
	for _, sub := range w.listeners {
		if sub.kind == kind {
			targets = append(targets, sub)
		}
	}
	w.mu.Unlock()

	for _, sub := range targets {
		if sub.area != nil && !sub.area().Contains(event.Pos()) {
			continue
		}
		sub.handle(event)
	}
}

// Cancel removes the subscription. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.window == nil {
		return
	}
	w := s.window
	w.mu.Lock()
	for i, sub := range w.listeners {
		if sub == s {
			w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
			break
		}
	}
	w.mu.Unlock()
	s.window = nil
}

func (s *Subscription) Active() bool {
	return s != nil && s.window != nil
}

package pointer

import (
	"log"

	"huepick/device"
	"huepick/events"
	"huepick/window"
)

// Owner is notified after every state change of a Tracker.
type Owner interface {
	RequestUpdate()
}

// Tracker follows the window's pointer position and primary button. It
// holds a back-reference to its owner and is driven by the owner's mount
// lifecycle through OnMount and OnUnmount.
type Tracker struct {
	window     *window.Window
	owner      Owner
	position   device.Position
	buttonDown bool
	subs       []*window.Subscription
}

func New(win *window.Window) *Tracker {
	return &Tracker{window: win}
}

func (t *Tracker) Attach(owner Owner) {
	if t.owner != nil {
		log.Panicf("### pointer tracker is already attached to %T", t.owner)
	}
	t.owner = owner
}

func (t *Tracker) OnMount() {
	if len(t.subs) > 0 {
		return
	}
	t.subs = []*window.Subscription{
		t.window.Listen(events.Move, t.move),
		t.window.Listen(events.Press, t.press),
		t.window.Listen(events.Release, t.release),
	}
}

func (t *Tracker) OnUnmount() {
	for _, sub := range t.subs {
		sub.Cancel()
	}
	t.subs = nil
}

func (t *Tracker) Position() device.Position {
	return t.position
}

func (t *Tracker) ButtonDown() bool {
	return t.buttonDown
}

func (t *Tracker) move(event events.Pointer) {
	t.position = event.Pos()
	t.changed()
}

func (t *Tracker) press(events.Pointer) {
	t.buttonDown = true
	t.changed()
}

func (t *Tracker) release(events.Pointer) {
	t.buttonDown = false
	t.changed()
}

func (t *Tracker) changed() {
	if t.owner != nil {
		t.owner.RequestUpdate()
	}
}

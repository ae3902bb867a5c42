package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"huepick/device"
	"huepick/events"
)

func TestDispatchByKind(t *testing.T) {
	w := New()
	var got []string
	w.Listen(events.Move, func(e events.Pointer) { got = append(got, "move "+e.Pos().String()) })
	w.Listen(events.Press, func(e events.Pointer) { got = append(got, "press") })
	w.Listen(events.Move, func(e events.Pointer) { got = append(got, "move2") })

	w.Dispatch(events.PointerMove{Position: device.Position{X: 1, Y: 2}})
	w.Dispatch(events.PointerRelease{})
	w.Dispatch(events.PointerPress{})
	assert.Equal(t, []string{"move [1:2]", "move2", "press"}, got)
}

func TestListenArea(t *testing.T) {
	w := New()
	area := device.Rect{Position: device.Position{X: 10, Y: 10}, Size: device.Size{Width: 5, Height: 2}}
	clicks := 0
	w.ListenArea(events.Click, func() device.Rect { return area }, func(events.Pointer) { clicks++ })

	w.Dispatch(events.PointerClick{Position: device.Position{X: 10, Y: 10}})
	w.Dispatch(events.PointerClick{Position: device.Position{X: 14, Y: 11}})
	w.Dispatch(events.PointerClick{Position: device.Position{X: 15, Y: 11}})
	w.Dispatch(events.PointerClick{Position: device.Position{X: 9, Y: 10}})
	assert.Equal(t, 2, clicks)

	area.Position = device.Position{}
	w.Dispatch(events.PointerClick{Position: device.Position{X: 0, Y: 0}})
	assert.Equal(t, 3, clicks)
}

func TestCancel(t *testing.T) {
	w := New()
	moves := 0
	a := w.Listen(events.Move, func(events.Pointer) { moves++ })
	b := w.Listen(events.Move, func(events.Pointer) { moves++ })
	assert.Equal(t, 2, w.Listeners())

	a.Cancel()
	a.Cancel()
	assert.False(t, a.Active())
	assert.True(t, b.Active())
	assert.Equal(t, 1, w.Listeners())

	w.Dispatch(events.PointerMove{})
	assert.Equal(t, 1, moves)

	var none *Subscription
	none.Cancel()
	assert.False(t, none.Active())
}

func TestCancelDuringDispatch(t *testing.T) {
	w := New()
	calls := 0
	var second *Subscription
	w.Listen(events.Move, func(events.Pointer) {
		calls++
		second.Cancel()
	})
	second = w.Listen(events.Move, func(events.Pointer) { calls++ })

	w.Dispatch(events.PointerMove{})
	assert.Equal(t, 2, calls)
	w.Dispatch(events.PointerMove{})
	assert.Equal(t, 3, calls)
}

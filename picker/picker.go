// Package picker is the colour picker element: a hue/saturation gradient
// that follows the pointer and reports the colour under it.
//
// The element owns a pointer.Tracker and recomputes its derived state once
// per update cycle. While the button is held every cycle picks; a discrete
// click picks once.
package picker

import (
	"log"

	"github.com/lucasb-eyer/go-colorful"

	"huepick/device"
	"huepick/events"
	"huepick/host"
	"huepick/loop"
	"huepick/pointer"
	"huepick/style"
	"huepick/window"
)

// PickedEvent names the selection event.
const PickedEvent = "colour-picked"

// Picked is emitted on every selection. Listeners read the colour from
// Target.
type Picked struct {
	Target *Picker
}

func (Picked) Name() string { return PickedEvent }

// Layout provides the element's current bounding box in screen cells.
type Layout interface {
	Bounds() device.Rect
}

type Picker struct {
	*host.Element

	tracker   *pointer.Tracker
	styles    *style.Layer
	layout    Layout
	canvas    *Canvas
	colour    colorful.Color
	listeners []func(Picked)
	dragPicks int
}

// New creates an unmounted picker listening on win and scheduling its
// update cycles on poster. Until SetLayout is called the element is laid
// out by its own canvas widget.
func New(poster loop.Poster, win *window.Window, styles *style.Layer) *Picker {
	p := &Picker{
		tracker: pointer.New(win),
		styles:  styles,
		colour:  styles.IndicatorColour(),
	}
	p.Element = host.New(poster, p.update)
	p.canvas = newCanvas(styles)
	p.layout = p.canvas

	p.tracker.Attach(p.Element)
	p.AddController(p.tracker)
	p.AddController(&clickListener{window: win, picker: p})
	return p
}

func (p *Picker) SetLayout(layout Layout) {
	p.layout = layout
}

// Canvas is the widget that places the element on screen.
func (p *Picker) Canvas() *Canvas {
	return p.canvas
}

func (p *Picker) Tracker() *pointer.Tracker {
	return p.tracker
}

// OnPick registers a listener for PickedEvent.
func (p *Picker) OnPick(listener func(Picked)) {
	p.listeners = append(p.listeners, listener)
}

func (p *Picker) Colour() colorful.Color {
	return p.colour
}

func (p *Picker) Bindings() style.Bindings {
	return p.styles.Bindings()
}

func (p *Picker) Dragging() bool {
	return p.Mounted() && p.tracker.ButtonDown()
}

func (p *Picker) update() {
	dragging := p.tracker.ButtonDown()
	if !dragging {
		p.dragPicks = 0
	}

	bounds := p.layout.Bounds()
	p.styles.Resize(bounds.Size)
	derived, ok := Derive(p.tracker.Position(), bounds)
	if !ok {
		return
	}
	p.styles.Apply(style.Bindings{
		X:          derived.Local.X,
		Y:          derived.Local.Y,
		Hue:        derived.Hue,
		Saturation: derived.Saturation,
		Emphasis:   dragging,
	})

	if dragging {
		p.dragPicks++
		p.Pick()
	}
}

// Pick reads back the colour painted under the indicator, stores it and
// notifies the listeners.
func (p *Picker) Pick() {
	p.colour = p.styles.IndicatorColour()
	event := Picked{Target: p}
	for _, listener := range p.listeners {
		listener(event)
	}
}

func (p *Picker) click(events.Pointer) {
	picked := p.dragPicks > 0
	p.Flush()
	p.dragPicks = 0
	if picked {
		log.Printf("picker: click after %s drag ignored", p.colour.Hex())
		return
	}
	p.Pick()
}

// clickListener binds the click handler to the element's region for the
// time the element is mounted.
type clickListener struct {
	window *window.Window
	picker *Picker
	sub    *window.Subscription
}

func (c *clickListener) OnMount() {
	if c.sub.Active() {
		return
	}
	c.sub = c.window.ListenArea(events.Click, c.bounds, c.picker.click)
}

func (c *clickListener) bounds() device.Rect {
	return c.picker.layout.Bounds()
}

func (c *clickListener) OnUnmount() {
	c.sub.Cancel()
	c.sub = nil
}

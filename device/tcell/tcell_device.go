package tcell

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"huepick/device"
	"huepick/events"
	"huepick/lifecycle"
	"huepick/loop"
	"huepick/widgets"
	"huepick/window"
)

const wheel = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// Device is the terminal platform. Terminal events are polled on their own
// goroutine and handled as loop tasks: pointer events are dispatched to the
// window, everything else goes to the handler.
type Device struct {
	screen   tcell.Screen
	poster   loop.Poster
	window   *window.Window
	handler  func(events.Event)
	position device.Position
	pressed  bool
	sync     bool
}

// NewDevice initialises screen, or a new terminal screen if screen is nil,
// with mouse motion reporting enabled.
func NewDevice(screen tcell.Screen, poster loop.Poster, win *window.Window, handler func(events.Event)) (*Device, error) {
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.SetStyle(toTcell(device.DefaultStyle))
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	return &Device{
		screen:   screen,
		poster:   poster,
		window:   win,
		handler:  handler,
		position: device.Position{X: -1, Y: -1},
	}, nil
}

// Start polls terminal events until lc stops. Stopping lc finalises the
// screen.
func (d *Device) Start(lc *lifecycle.Lifecycle) {
	lc.Started()
	lc.OnStop(d.screen.Fini)
	go func() {
		defer lc.Done()
		for {
			event := d.screen.PollEvent()
			if event == nil || lc.ShouldStop() {
				return
			}
			d.poster.Post(func() { d.HandleEvent(event) })
		}
	}()
}

func (d *Device) Size() device.Size {
	w, h := d.screen.Size()
	return device.Size{Width: w, Height: h}
}

func (d *Device) HandleEvent(event tcell.Event) {
	switch event := event.(type) {
	case *tcell.EventResize:
		d.sync = true
		w, h := event.Size()
		d.handler(events.ScreenSize{Width: w, Height: h})

	case *tcell.EventKey:
		d.handleKeyEvent(event)

	case *tcell.EventMouse:
		for _, pointerEvent := range d.Translate(event) {
			d.window.Dispatch(pointerEvent)
		}

	default:
		log.Printf("### unhandled tcell event: %T", event)
	}
}

func (d *Device) handleKeyEvent(key *tcell.EventKey) {
	switch key.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		d.handler(events.Quit{})
	case tcell.KeyRune:
		if key.Rune() == 'q' || key.Rune() == 'Q' {
			d.handler(events.Quit{})
			return
		}
		d.handler(events.Key{Name: key.Name()})
	default:
		d.handler(events.Key{Name: key.Name()})
	}
}

// Translate turns a terminal mouse report into pointer events. Only the
// primary button counts; wheel reports only move the pointer. A release
// that follows a press is also reported as a click.
func (d *Device) Translate(event *tcell.EventMouse) []events.Pointer {
	x, y := event.Position()
	pos := device.Position{X: x, Y: y}
	result := []events.Pointer{}

	if pos != d.position {
		d.position = pos
		result = append(result, events.PointerMove{Position: pos})
	}
	if event.Buttons()&wheel != 0 {
		return result
	}

	down := event.Buttons()&tcell.Button1 != 0
	if down && !d.pressed {
		d.pressed = true
		result = append(result, events.PointerPress{Position: pos})
	} else if !down && d.pressed {
		d.pressed = false
		result = append(result, events.PointerRelease{Position: pos}, events.PointerClick{Position: pos})
	}
	return result
}

func (d *Device) Render(screen *widgets.Screen) {
	for y := range screen.Cells {
		for x, cell := range screen.Cells[y] {
			if cell.Rune == 0 {
				continue
			}
			d.screen.SetContent(x, y, cell.Rune, nil, toTcell(cell.Style))
		}
	}
	if d.sync {
		d.screen.Sync()
		d.sync = false
	} else {
		d.screen.Show()
	}
}

func toTcell(style device.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(toColor(style.FG)).
		Background(toColor(style.BG)).
		Bold(style.Flags&device.Bold == device.Bold).
		Italic(style.Flags&device.Italic == device.Italic).
		Reverse(style.Flags&device.Reverse == device.Reverse)
}

func toColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

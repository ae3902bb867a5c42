package app

import (
	"fmt"
	"log"

	"github.com/lucasb-eyer/go-colorful"

	"huepick/config"
	"huepick/device"
	"huepick/events"
	"huepick/history"
	"huepick/lifecycle"
	"huepick/loop"
	"huepick/picker"
	"huepick/style"
	"huepick/widgets"
	"huepick/window"
)

type Device interface {
	Render(*widgets.Screen)
	Size() device.Size
}

type App struct {
	conf       config.Config
	loop       *loop.Loop
	window     *window.Window
	picker     *picker.Picker
	journal    *history.Journal
	device     Device
	screenSize device.Size
	picks      int
	announce   string
	frames     int
}

var (
	styleTitle  = device.Style{FG: colorful.Color{R: 0, G: 16.0 / 255, B: 64.0 / 255}, BG: colorful.Color{R: 0.5, G: 1, B: 0.5}, Flags: device.Bold}
	styleStatus = device.DefaultStyle
)

var (
	rowConstraint = widgets.Constraint{Size: widgets.Size{Width: 0, Height: 1}, Flex: widgets.Flex{X: 1, Y: 0}}
	colConstraint = widgets.Constraint{Size: widgets.Size{Width: 0, Height: 0}, Flex: widgets.Flex{X: 1, Y: 1}}
)

// New wires a picker to l and win. journal may be nil.
func New(conf config.Config, l *loop.Loop, win *window.Window, journal *history.Journal) *App {
	a := &App{
		conf:    conf,
		loop:    l,
		window:  win,
		journal: journal,
	}
	a.picker = picker.New(l, win, style.New(conf.Lightness))
	if conf.Width > 0 && conf.Height > 0 {
		a.picker.Canvas().Fixed(device.Size{Width: conf.Width, Height: conf.Height})
	}
	a.picker.OnPick(a.picked)
	return a
}

func (a *App) SetDevice(d Device) {
	a.device = d
	a.screenSize = d.Size()
}

func (a *App) Picker() *picker.Picker {
	return a.picker
}

func (a *App) Frames() int {
	return a.frames
}

func (a *App) Picks() int {
	return a.picks
}

// Run mounts the picker and runs the loop until quit.
func (a *App) Run(lc *lifecycle.Lifecycle) {
	a.picker.Mount()
	a.loop.Run(lc, a.Frame)
	a.picker.Unmount()
}

func (a *App) HandleEvent(event events.Event) {
	switch event := event.(type) {
	case events.ScreenSize:
		a.screenSize = device.Size{Width: event.Width, Height: event.Height}

	case events.Quit:
		a.picker.Unmount()
		a.loop.Quit()

	case events.Key:
		log.Printf("app: ignored %s", event)

	default:
		log.Panicf("### unhandled app event: %#v", event)
	}
}

func (a *App) picked(event picker.Picked) {
	colour := event.Target.Colour()
	a.picks++
	a.announce = "Picked " + colour.Hex()
	log.Printf("app: %s %s", picker.PickedEvent, colour.Hex())
	if a.journal != nil {
		a.journal.Record(colour)
	}
}

// Frame renders the current state to the device.
func (a *App) Frame() {
	a.frames++
	screen := widgets.NewScreen(a.screenSize)
	a.RootWidget().Render(screen, widgets.Position{X: 0, Y: 0}, a.screenSize)
	if a.device != nil {
		a.device.Render(screen)
	}
}

func (a *App) RootWidget() widgets.Widget {
	return widgets.Column(colConstraint,
		a.title(),
		a.pickerArea(),
		a.statusLine(),
	)
}

func (a *App) title() widgets.Widget {
	return widgets.Styled(styleTitle,
		widgets.Row(rowConstraint,
			widgets.Text(" "+a.conf.Title).Flex(1),
			widgets.Text(fmt.Sprintf(" picks: %d ", a.picks)),
		),
	)
}

func (a *App) pickerArea() widgets.Widget {
	canvas := a.picker.Canvas()
	c := canvas.Constraint()
	if c.Flex.Y > 0 {
		return canvas
	}
	return widgets.Row(widgets.Constraint{Size: widgets.Size{Width: 0, Height: c.Height}, Flex: widgets.Flex{X: 1, Y: 1}},
		canvas,
		widgets.Spacer{},
	)
}

func (a *App) statusLine() widgets.Widget {
	b := a.picker.Bindings()
	colour := a.picker.Colour()
	return widgets.Styled(styleStatus,
		widgets.Row(rowConstraint,
			widgets.Text(fmt.Sprintf(" hue %3d°  saturation %3d%%  ", b.Hue, b.Saturation)),
			widgets.Styled(device.Style{FG: colour, BG: colour}, widgets.Text("    ")),
			widgets.Text(" "+colour.Hex()+"  "),
			widgets.Text(a.announce).Flex(1),
		),
	)
}

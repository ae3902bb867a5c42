package events

import (
	"fmt"

	"huepick/device"
)

type Event interface {
	event()
}

// Pointer is implemented by every event that carries a pointer position.
type Pointer interface {
	Event
	Pos() device.Position
}

type Kind int

const (
	Move Kind = iota
	Press
	Release
	Click
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "Move"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Click:
		return "Click"
	}
	return "UNKNOWN POINTER KIND"
}

type PointerMove struct{ device.Position }

func (PointerMove) event() {}

func (e PointerMove) Pos() device.Position { return e.Position }

type PointerPress struct{ device.Position }

func (PointerPress) event() {}

func (e PointerPress) Pos() device.Position { return e.Position }

type PointerRelease struct{ device.Position }

func (PointerRelease) event() {}

func (e PointerRelease) Pos() device.Position { return e.Position }

type PointerClick struct{ device.Position }

func (PointerClick) event() {}

func (e PointerClick) Pos() device.Position { return e.Position }

func KindOf(event Pointer) Kind {
	switch event.(type) {
	case PointerMove:
		return Move
	case PointerPress:
		return Press
	case PointerRelease:
		return Release
	case PointerClick:
		return Click
	}
	panic(fmt.Sprintf("### unhandled pointer event: %#v", event))
}

type ScreenSize struct {
	Width, Height int
}

func (ScreenSize) event() {}

type Quit struct{}

func (Quit) event() {}

type Key struct {
	Name string
}

func (Key) event() {}

func (k Key) String() string {
	return fmt.Sprintf("Key(%s)", k.Name)
}

package device

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

type Position struct {
	X int
	Y int
}

func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("[%d:%d]", p.X, p.Y)
}

type Size struct {
	Width  int
	Height int
}

type Rect struct {
	Position
	Size
}

// Contains reports whether pos lies in [X, X+Width) × [Y, Y+Height).
func (r Rect) Contains(pos Position) bool {
	return r.X <= pos.X && r.X+r.Width > pos.X &&
		r.Y <= pos.Y && r.Y+r.Height > pos.Y
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%s %dx%d}", r.Position, r.Width, r.Height)
}

type Flex struct {
	X int
	Y int
}

type Constraint struct {
	Size
	Flex
}

type Style struct {
	FG, BG colorful.Color
	Flags  Flags
}

type Flags byte

const (
	Bold    Flags = 1
	Italic  Flags = 2
	Reverse Flags = 4
)

var DefaultStyle = Style{
	FG: colorful.Color{R: 1, G: 1, B: 205.0 / 255},
	BG: colorful.Color{R: 0, G: 16.0 / 255, B: 64.0 / 255},
}

type Cell struct {
	Rune  rune
	Style Style
}

package widgets

import (
	"fmt"
	"strings"

	"huepick/device"
)

type Widget interface {
	Constraint() Constraint
	Render(Renderer, Position, Size)
	String() string
	ToString(*strings.Builder, string)
}

type Renderer interface {
	SetStyle(style Style)
	CurrentStyle() Style
	Text([]rune, Position)
	Cell(device.Cell, Position)
}

type (
	Constraint = device.Constraint
	Position   = device.Position
	Size       = device.Size
	Flex       = device.Flex
	Style      = device.Style
)

// Screen is an off-screen cell buffer. Widgets render into it and a
// device shows it.
type Screen struct {
	Cells [][]device.Cell
	style Style
}

func NewScreen(size Size) *Screen {
	screen := &Screen{style: device.DefaultStyle}
	if size.Width <= 0 || size.Height <= 0 {
		return screen
	}
	screen.Cells = make([][]device.Cell, size.Height)
	for y := range screen.Cells {
		screen.Cells[y] = make([]device.Cell, size.Width)
		for x := range screen.Cells[y] {
			screen.Cells[y][x] = device.Cell{Rune: ' ', Style: device.DefaultStyle}
		}
	}
	return screen
}

func (s *Screen) Size() Size {
	if len(s.Cells) == 0 {
		return Size{}
	}
	return Size{Width: len(s.Cells[0]), Height: len(s.Cells)}
}

func (s *Screen) SetStyle(style Style) {
	s.style = style
}

func (s *Screen) CurrentStyle() Style {
	return s.style
}

func (s *Screen) Text(runes []rune, pos Position) {
	for i, r := range runes {
		s.Cell(device.Cell{Rune: r, Style: s.style}, Position{X: pos.X + i, Y: pos.Y})
	}
}

// Cell sets a single cell; positions outside the screen are dropped.
func (s *Screen) Cell(cell device.Cell, pos Position) {
	if pos.Y < 0 || pos.Y >= len(s.Cells) || pos.X < 0 || pos.X >= len(s.Cells[pos.Y]) {
		return
	}
	s.Cells[pos.Y][pos.X] = cell
}

// Line returns the runes of line y, mostly for tests and logging.
func (s *Screen) Line(y int) string {
	if y < 0 || y >= len(s.Cells) {
		return ""
	}
	buf := &strings.Builder{}
	for _, cell := range s.Cells[y] {
		buf.WriteRune(cell.Rune)
	}
	return buf.String()
}

func styleString(s Style) string {
	return fmt.Sprintf("Style{FG: %s, BG: %s, Flags: {%s}}", s.FG.Hex(), s.BG.Hex(), flagsString(s.Flags))
}

func constraintString(c Constraint) string {
	return fmt.Sprintf("Constraint(Size(Width: %d, Height: %d), Flex(X: %d, Y:%d))", c.Width, c.Height, c.X, c.Y)
}

func flagsString(f device.Flags) string {
	flags := []string{}
	if f&device.Bold == device.Bold {
		flags = append(flags, "Bold")
	}
	if f&device.Italic == device.Italic {
		flags = append(flags, "Italic")
	}
	if f&device.Reverse == device.Reverse {
		flags = append(flags, "Reverse")
	}
	return strings.Join(flags, ", ")
}

func toString[W Widget](w W) string {
	buf := &strings.Builder{}
	w.ToString(buf, "")
	return buf.String()
}

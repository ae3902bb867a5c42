// Package style is the presentation layer of the picker. It keeps the
// bindings published by the element and turns them into coloured cells:
// a hue/saturation gradient with an indicator cell on top.
package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"huepick/device"
)

// Bindings is the style-binding surface published by the picker element.
type Bindings struct {
	X, Y       int
	Hue        int
	Saturation int
	Emphasis   bool
}

func (b Bindings) String() string {
	return fmt.Sprintf("Bindings{X: %d, Y: %d, Hue: %d, Saturation: %d, Emphasis: %v}",
		b.X, b.Y, b.Hue, b.Saturation, b.Emphasis)
}

const (
	indicatorRune         = '○'
	indicatorEmphasisRune = '◉'
)

type Layer struct {
	lightness float64
	size      device.Size
	bindings  Bindings
	cells     [][]device.Cell
	indicator colorful.Color
	stale     bool
}

func New(lightness float64) *Layer {
	l := &Layer{
		lightness: lightness,
		bindings:  Bindings{Saturation: 100},
		stale:     true,
	}
	l.indicator = l.Colour(0, 100)
	return l
}

func (l *Layer) Apply(b Bindings) {
	if b == l.bindings {
		return
	}
	l.bindings = b
	l.stale = true
}

func (l *Layer) Bindings() Bindings {
	return l.bindings
}

func (l *Layer) Resize(size device.Size) {
	if size == l.size {
		return
	}
	l.size = size
	l.stale = true
}

func (l *Layer) Size() device.Size {
	return l.size
}

func (l *Layer) Lightness() float64 {
	return l.lightness
}

// Colour is the rule the indicator is painted with.
func (l *Layer) Colour(hue, saturation int) colorful.Color {
	return colorful.Hsl(float64(hue), float64(saturation)/100, l.lightness).Clamped()
}

// Paint returns the painted cells, repainting them if bindings or size
// changed since the last call. Rows are indexed by y.
func (l *Layer) Paint() [][]device.Cell {
	if !l.stale {
		return l.cells
	}
	l.stale = false

	w, h := l.size.Width, l.size.Height
	if w <= 0 || h <= 0 {
		l.cells = nil
		return nil
	}
	l.cells = make([][]device.Cell, h)
	for y := range l.cells {
		row := make([]device.Cell, w)
		saturation := 1 - float64(y)/float64(h)
		for x := range row {
			bg := colorful.Hsl(float64(x)/float64(w)*360, saturation, l.lightness).Clamped()
			row[x] = device.Cell{Rune: ' ', Style: device.Style{FG: bg, BG: bg}}
		}
		l.cells[y] = row
	}

	b := l.bindings
	if b.X >= 0 && b.X < w && b.Y >= 0 && b.Y < h {
		bg := l.Colour(b.Hue, b.Saturation)
		cell := device.Cell{Rune: indicatorRune, Style: device.Style{FG: contrast(bg), BG: bg}}
		if b.Emphasis {
			cell.Rune = indicatorEmphasisRune
			cell.Style.Flags |= device.Bold
		}
		l.cells[b.Y][b.X] = cell
	}
	return l.cells
}

// IndicatorColour reads back the background of the painted indicator cell.
// If the indicator is outside the painted area the last painted colour is
// returned.
func (l *Layer) IndicatorColour() colorful.Color {
	cells := l.Paint()
	b := l.bindings
	if b.Y >= 0 && b.Y < len(cells) && b.X >= 0 && b.X < len(cells[b.Y]) {
		l.indicator = cells[b.Y][b.X].Style.BG
	}
	return l.indicator
}

func contrast(c colorful.Color) colorful.Color {
	lightness, _, _ := c.Lab()
	if lightness > 0.6 {
		return colorful.Color{}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

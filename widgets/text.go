package widgets

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"huepick/device"
)

type text struct {
	text  string
	width int
	flex  int
}

// Text is a single line of text. Its default width is the display width
// of the text, measured after NFC normalisation.
func Text(txt string) text {
	txt = norm.NFC.String(txt)
	return text{text: txt, width: runewidth.StringWidth(txt)}
}

func (t text) Width(width int) text {
	t.width = width
	return t
}

func (t text) Flex(flex int) text {
	t.flex = flex
	return t
}

func (t text) Constraint() Constraint {
	return Constraint{Size: Size{Width: t.width, Height: 1}, Flex: Flex{X: t.flex, Y: 0}}
}

func (t text) Render(renderer Renderer, pos Position, size Size) {
	if size.Width < 1 || size.Height < 1 {
		return
	}
	txt := t.text
	if runewidth.StringWidth(txt) > size.Width {
		txt = runewidth.Truncate(txt, size.Width, "…")
	}
	style := renderer.CurrentStyle()
	x := 0
	for _, r := range txt {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		renderer.Cell(device.Cell{Rune: r, Style: style}, Position{X: pos.X + x, Y: pos.Y})
		if w == 2 {
			renderer.Cell(device.Cell{Rune: 0, Style: style}, Position{X: pos.X + x + 1, Y: pos.Y})
		}
		x += w
	}
	if x < size.Width {
		renderer.Text([]rune(strings.Repeat(" ", size.Width-x)), Position{X: pos.X + x, Y: pos.Y})
	}
}

func (t text) String() string { return toString(t) }

func (t text) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sText(%q, width: %d, flex: %d)\n", offset, t.text, t.width, t.flex)
}

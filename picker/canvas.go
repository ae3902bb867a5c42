package picker

import (
	"fmt"
	"strings"

	"huepick/device"
	"huepick/style"
	"huepick/widgets"
)

// Canvas renders the style layer and remembers where it was rendered last,
// which makes it the picker's Layout.
type Canvas struct {
	styles     *style.Layer
	bounds     device.Rect
	constraint widgets.Constraint
}

func newCanvas(styles *style.Layer) *Canvas {
	return &Canvas{
		styles:     styles,
		constraint: widgets.Constraint{Flex: widgets.Flex{X: 1, Y: 1}},
	}
}

// Fixed gives the canvas a fixed size instead of filling the free space.
func (c *Canvas) Fixed(size device.Size) *Canvas {
	c.constraint = widgets.Constraint{Size: size}
	return c
}

func (c *Canvas) Bounds() device.Rect {
	return c.bounds
}

func (c *Canvas) Constraint() widgets.Constraint {
	return c.constraint
}

func (c *Canvas) Render(renderer widgets.Renderer, pos widgets.Position, size widgets.Size) {
	if c.constraint.Flex.X == 0 && size.Width > c.constraint.Width {
		size.Width = c.constraint.Width
	}
	if c.constraint.Flex.Y == 0 && size.Height > c.constraint.Height {
		size.Height = c.constraint.Height
	}
	c.bounds = device.Rect{Position: pos, Size: size}
	c.styles.Resize(size)
	for y, row := range c.styles.Paint() {
		for x, cell := range row {
			renderer.Cell(cell, device.Position{X: pos.X + x, Y: pos.Y + y})
		}
	}
}

func (c *Canvas) String() string {
	buf := &strings.Builder{}
	c.ToString(buf, "")
	return buf.String()
}

func (c *Canvas) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sCanvas(%s, %s)\n", offset, c.bounds, c.styles.Bindings())
}

package widgets

import (
	"fmt"
	"math"
	"strings"
)

type row struct {
	constraint Constraint
	widgets    []Widget
}

func Row(constraint Constraint, ws ...Widget) Widget {
	return row{constraint: constraint, widgets: ws}
}

func (r row) Constraint() Constraint {
	return r.constraint
}

func (r row) Render(renderer Renderer, pos Position, size Size) {
	sizes := make([]int, len(r.widgets))
	flexes := make([]int, len(r.widgets))
	for i, widget := range r.widgets {
		sizes[i] = widget.Constraint().Width
		flexes[i] = widget.Constraint().Flex.X
	}
	widths := calcSizes(size.Width, sizes, flexes)
	x := pos.X
	for i, widget := range r.widgets {
		widget.Render(renderer, Position{X: x, Y: pos.Y}, Size{Width: widths[i], Height: size.Height})
		x += widths[i]
	}
}

func (r row) String() string { return toString(r) }

func (r row) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sRow(%s)\n", offset, constraintString(r.constraint))
	for _, widget := range r.widgets {
		widget.ToString(buf, offset+"| ")
	}
}

type column struct {
	constraint Constraint
	widgets    []Widget
}

func Column(constraint Constraint, ws ...Widget) Widget {
	return column{constraint: constraint, widgets: ws}
}

func (c column) Constraint() Constraint {
	return c.constraint
}

func (c column) Render(renderer Renderer, pos Position, size Size) {
	sizes := make([]int, len(c.widgets))
	flexes := make([]int, len(c.widgets))
	for i, widget := range c.widgets {
		sizes[i] = widget.Constraint().Height
		flexes[i] = widget.Constraint().Flex.Y
	}
	heights := calcSizes(size.Height, sizes, flexes)
	y := pos.Y
	for i, widget := range c.widgets {
		widget.Render(renderer, Position{X: pos.X, Y: y}, Size{Width: size.Width, Height: heights[i]})
		y += heights[i]
	}
}

func (c column) String() string { return toString(c) }

func (c column) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sColumn(%s)\n", offset, constraintString(c.constraint))
	for _, widget := range c.widgets {
		widget.ToString(buf, offset+"| ")
	}
}

// calcSizes distributes targetSize over widgets: fixed sizes shrink from
// the largest down when there is not enough room, extra room goes to the
// flexible ones proportionally to their flex.
func calcSizes(targetSize int, sizes []int, flexes []int) []int {
	result := make([]int, len(sizes))
	if len(sizes) == 0 {
		return result
	}
	totalSize, totalFlex := 0, 0
	for i, size := range sizes {
		result[i] = size
		totalSize += size
		totalFlex += flexes[i]
	}
	for totalSize > targetSize {
		idx := 0
		maxSize := result[0]
		for i, size := range result {
			if maxSize < size {
				maxSize = size
				idx = i
			}
		}
		result[idx]--
		totalSize--
	}

	if totalFlex == 0 || totalSize >= targetSize {
		return result
	}

	diff := targetSize - totalSize
	for i, flex := range flexes {
		rate := float64(diff*flex) / float64(totalFlex)
		result[i] += int(math.Floor(rate))
	}
	totalSize = 0
	for _, size := range result {
		totalSize += size
	}
	for i := range result {
		if totalSize == targetSize {
			break
		}
		if flexes[i] > 0 {
			result[i]++
			totalSize++
		}
	}
	return result
}

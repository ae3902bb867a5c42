package picker

import (
	"huepick/device"
)

// Derived is the state recomputed on every update cycle from the pointer
// position and the element's box.
type Derived struct {
	Local      device.Position
	Hue        int
	Saturation int
}

// Derive maps a global pointer position onto the box. It reports false
// when the position is outside [0, width) × [0, height) of the box, in
// which case nothing should be recomputed.
func Derive(pointer device.Position, bounds device.Rect) (Derived, bool) {
	if bounds.Empty() {
		return Derived{}, false
	}
	local := pointer.Sub(bounds.Position)
	if local.X < 0 || local.Y < 0 || local.X >= bounds.Width || local.Y >= bounds.Height {
		return Derived{}, false
	}
	return Derived{
		Local:      local,
		Hue:        local.X * 360 / bounds.Width,
		Saturation: 100 - local.Y*100/bounds.Height,
	}, true
}

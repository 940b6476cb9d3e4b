// Package loopio reads boundary loops from text and SVG.
package loopio

import "github.com/osuushi/curvesep/advanced"

// One closed boundary loop, in order.
type Loop []advanced.PointData

func (loop Loop) Outline() advanced.Outline {
	outline := make(advanced.Outline, len(loop))
	for i, p := range loop {
		outline[i] = p.Position
	}
	return outline
}

// Reversing keeps every control point between the same two neighbors, so the
// curves are unchanged.
func (loop Loop) Reverse() Loop {
	reversed := make(Loop, 0, len(loop))
	for i := len(loop) - 1; i >= 0; i-- {
		reversed = append(reversed, loop[i])
	}
	return reversed
}

// The loop, reversed if needed so that it winds counterclockwise. Control
// points count towards the winding, which is the right call for any loop whose
// curves don't cross each other.
func (loop Loop) EnsureCCW() Loop {
	if loop.Outline().IsCCW() {
		return loop
	}
	return loop.Reverse()
}

func (loop Loop) ControlCount() int {
	n := 0
	for _, p := range loop {
		if p.Type == advanced.Control {
			n++
		}
	}
	return n
}

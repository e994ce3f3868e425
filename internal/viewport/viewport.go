// Package viewport keeps the pan/zoom transform of the map.
//
// Coordinates are in pointer units (terminal cells for the TUI). The
// transform maps content ("world") coordinates to viewport coordinates:
//
//	screen = translate + world*scale
//
// Scale stays in [MinScale, MaxScale] and translate is clamped so the
// content never leaves empty space inside the viewport.
package viewport

import "math"

const (
	MinScale        = 1.0
	MaxScale        = 8.0
	ZoomSensitivity = 0.0015
	// DragThreshold is how far, in pointer units on either axis, a press
	// may travel before it counts as a drag instead of a click.
	DragThreshold = 3.0

	scaleEpsilon = 0.0001
)

type Point struct {
	X, Y float64
}

type Size struct {
	W, H float64
}

// Transform is a uniform scale followed by a translation.
type Transform struct {
	Scale float64
	X     float64
	Y     float64
}

// Identity is the unzoomed, unpanned transform.
func Identity() Transform { return Transform{Scale: 1} }

// Apply maps a world point to the viewport.
func (t Transform) Apply(p Point) Point {
	return Point{X: t.X + p.X*t.Scale, Y: t.Y + p.Y*t.Scale}
}

// Invert maps a viewport point back to world coordinates.
func (t Transform) Invert(p Point) Point {
	return Point{X: (p.X - t.X) / t.Scale, Y: (p.Y - t.Y) / t.Scale}
}

// Clamp bounds the translation of t on each axis to
// [min(viewport-content*scale, 0), 0].
func Clamp(t Transform, viewport, content Size) Transform {
	t.X = clampAxis(t.X, viewport.W, content.W, t.Scale)
	t.Y = clampAxis(t.Y, viewport.H, content.H, t.Scale)
	return t
}

func clampAxis(v, view, content, scale float64) float64 {
	lo := math.Min(view-content*scale, 0)
	return clamp(v, lo, 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Viewport holds the transform together with the sizes it is clamped
// against.
type Viewport struct {
	size    Size
	content Size
	t       Transform
}

// New returns an identity viewport whose content exactly fills it.
func New(size Size) Viewport {
	return Viewport{size: size, content: size, t: Identity()}
}

func (v Viewport) Transform() Transform { return v.t }
func (v Viewport) Size() Size           { return v.size }
func (v Viewport) Content() Size        { return v.content }

// Resize changes the viewport and content sizes and re-clamps the
// translation.
func (v *Viewport) Resize(size, content Size) {
	v.size = size
	v.content = content
	v.t = Clamp(v.t, v.size, v.content)
}

// Reset returns to the identity transform.
func (v *Viewport) Reset() { v.t = Identity() }

// Zoom applies one wheel tick of the given delta with pointer as the fixed
// point: the world point under the pointer stays under it. Positive delta
// zooms out. It reports whether the transform changed; scale changes below
// a negligible threshold are dropped.
func (v *Viewport) Zoom(pointer Point, delta float64) bool {
	prev := v.t
	factor := math.Exp(-delta * ZoomSensitivity)
	scale := clamp(prev.Scale*factor, MinScale, MaxScale)
	if math.Abs(scale-prev.Scale) < scaleEpsilon {
		return false
	}
	world := prev.Invert(pointer)
	next := Transform{
		Scale: scale,
		X:     pointer.X - world.X*scale,
		Y:     pointer.Y - world.Y*scale,
	}
	v.t = Clamp(next, v.size, v.content)
	return true
}

// ZoomCenter zooms about the middle of the viewport.
func (v *Viewport) ZoomCenter(delta float64) bool {
	return v.Zoom(Point{X: v.size.W / 2, Y: v.size.H / 2}, delta)
}

// PanBy shifts the translation and clamps it. It reports whether anything
// moved.
func (v *Viewport) PanBy(dx, dy float64) bool {
	prev := v.t
	next := prev
	next.X += dx
	next.Y += dy
	v.t = Clamp(next, v.size, v.content)
	return v.t != prev
}

package viewport

import "math"

// PanSession is one press-drag-release gesture. It exists only while the
// primary button is held; callers route pointer motion to it for that
// duration and End it on every way out (release, pointer leaving the
// window, teardown).
type PanSession struct {
	anchor     Point
	anchorFrom Transform
	dragged    bool
	ended      bool
}

// BeginPan records the pointer and the current translation as the anchor.
func (v *Viewport) BeginPan(pointer Point) *PanSession {
	return &PanSession{anchor: pointer, anchorFrom: v.t}
}

// Move pans v to anchor translate + (pointer - anchor pointer) and clamps.
// It reports whether the transform changed. Moves after End are ignored.
func (s *PanSession) Move(v *Viewport, pointer Point) bool {
	if s == nil || s.ended || v == nil {
		return false
	}
	dx := pointer.X - s.anchor.X
	dy := pointer.Y - s.anchor.Y
	if math.Abs(dx) > DragThreshold || math.Abs(dy) > DragThreshold {
		s.dragged = true
	}
	prev := v.t
	next := prev
	next.X = s.anchorFrom.X + dx
	next.Y = s.anchorFrom.Y + dy
	v.t = Clamp(next, v.size, v.content)
	return v.t != prev
}

// Dragged reports whether the pointer went past DragThreshold.
func (s *PanSession) Dragged() bool { return s != nil && s.dragged }

// Active reports whether the session has not been ended yet.
func (s *PanSession) Active() bool { return s != nil && !s.ended }

// End releases the session and reports whether it was a drag. Calling it
// again is a no-op that returns the same answer.
func (s *PanSession) End() bool {
	if s == nil {
		return false
	}
	s.ended = true
	return s.dragged
}

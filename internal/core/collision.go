package core

// Collision predicates used by the simulation. All functions are pure:
// deterministic given their geometric inputs, no mutation, no global state.

// CirclesOverlap reports whether two discs intersect.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	rr := ra + rb
	return dx*dx+dy*dy < rr*rr
}

// CircleRectOverlap reports whether a disc intersects an axis-aligned
// rectangle. Uses the closest point on the rectangle to the disc center.
func CircleRectOverlap(c Vec2, r float64, rect Rect) bool {
	closestX := ClampF(c.X, rect.X, rect.Right())
	closestY := ClampF(c.Y, rect.Y, rect.Bottom())
	dx := c.X - closestX
	dy := c.Y - closestY
	return dx*dx+dy*dy < r*r
}

// CircleSegmentOverlap reports whether a disc intersects a line segment.
// The closest point on the segment is found by projecting the disc center
// onto the segment and clamping the projection parameter to [0, 1].
func CircleSegmentOverlap(c Vec2, r float64, seg Segment) bool {
	ab := seg.B.Sub(seg.A)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	var t float64
	if lenSq > 0 {
		ac := c.Sub(seg.A)
		t = ClampF((ac.X*ab.X+ac.Y*ab.Y)/lenSq, 0, 1)
	}
	closest := seg.A.Add(ab.Scale(t))
	dx := c.X - closest.X
	dy := c.Y - closest.Y
	return dx*dx+dy*dy < r*r
}

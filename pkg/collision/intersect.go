package collision

import (
	"math"

	"go-arcade-shooter/pkg/geom"
)

// Hit describes an intersection between two shapes.
type Hit struct {
	// Depth holds the penetration depth per axis. For circle pairs both
	// components carry the same scalar depth along the normal.
	Depth geom.Vec2
	// Normal points from the first shape toward the second. For box pairs
	// its components are ±1, chosen by comparing the box centers rather
	// than the penetration direction. Under deep interpenetration this may
	// not follow the true minimum-penetration axis; it is kept for
	// lightweight "which side" resolution.
	Normal geom.Vec2
}

// MTV returns the minimum translation vector that separates the first
// shape from the second: the smaller-depth axis for boxes, the full
// displacement along the normal for circles.
func (h Hit) MTV() geom.Vec2 {
	if h.Depth.X() < h.Depth.Y() {
		return geom.V(-h.Normal.X()*h.Depth.X(), 0)
	}
	return geom.V(0, -h.Normal.Y()*h.Depth.Y())
}

// IntersectBoxes tests two AABBs with the separating-axis test in 2D:
// the boxes overlap only when both per-axis intervals overlap. Touching
// edges do not count as overlap.
func IntersectBoxes(a, b Box) (Hit, bool) {
	dx := b.Center.X() - a.Center.X()
	px := (a.W+b.W)/2 - math.Abs(dx)
	if px <= 0 {
		return Hit{}, false
	}
	dy := b.Center.Y() - a.Center.Y()
	py := (a.H+b.H)/2 - math.Abs(dy)
	if py <= 0 {
		return Hit{}, false
	}
	return Hit{
		Depth:  geom.V(px, py),
		Normal: geom.V(sign(dx), sign(dy)),
	}, true
}

// IntersectCircles tests two circles. Overlap holds when the center
// distance is strictly less than the summed radii, so exact tangency is
// not a hit. The normal is the unit vector from the first center to the
// second; when the centers coincide the normal is undefined and the unit
// X axis is used as the canonical fallback.
func IntersectCircles(a, b Circle) (Hit, bool) {
	d := b.Center.Sub(a.Center)
	dist := d.Len()
	rsum := a.R + b.R
	if dist >= rsum {
		return Hit{}, false
	}
	normal := geom.V(1, 0)
	if dist > 0 {
		normal = d.Mul(1 / dist)
	}
	depth := rsum - dist
	return Hit{
		Depth:  geom.V(depth, depth),
		Normal: normal,
	}, true
}

// IntersectBoxCircle tests a box against a circle by clamping the circle
// center into the box extents and comparing the closest point's distance
// against the radius. A circle centered exactly on the closest point
// (center inside the box) falls back to the unit X normal with the full
// radius as depth.
func IntersectBoxCircle(box Box, c Circle) (Hit, bool) {
	min, max := box.Min(), box.Max()
	closest := geom.V(
		geom.Clamp(c.Center.X(), min.X(), max.X()),
		geom.Clamp(c.Center.Y(), min.Y(), max.Y()),
	)
	d := c.Center.Sub(closest)
	dist := d.Len()
	if dist >= c.R {
		return Hit{}, false
	}
	normal := geom.V(1, 0)
	if dist > 0 {
		normal = d.Mul(1 / dist)
	}
	depth := c.R - dist
	return Hit{
		Depth:  geom.V(depth, depth),
		Normal: normal,
	}, true
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

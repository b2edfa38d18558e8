// Package collision provides pairwise AABB and circle intersection tests.
// All functions are pure: shapes are value types and no state is shared.
package collision

import (
	"errors"
	"fmt"

	"go-arcade-shooter/pkg/geom"
)

// ErrInvalidShape is returned when a shape is constructed with
// non-positive dimensions.
var ErrInvalidShape = errors.New("collision: invalid shape")

// BoxShape is an owner-relative AABB template: a static offset from the
// owning entity plus dimensions. A positioned Box is derived each frame
// via At and never persisted on its own.
type BoxShape struct {
	Offset geom.Vec2
	W, H   float64
}

// NewBoxShape validates the dimensions and builds a box template.
func NewBoxShape(offset geom.Vec2, w, h float64) (BoxShape, error) {
	if w <= 0 || h <= 0 {
		return BoxShape{}, fmt.Errorf("box %gx%g: %w", w, h, ErrInvalidShape)
	}
	return BoxShape{Offset: offset, W: w, H: h}, nil
}

// At returns the box positioned at the owner's current position.
func (s BoxShape) At(pos geom.Vec2) Box {
	return Box{Center: pos.Add(s.Offset), W: s.W, H: s.H}
}

// CircleShape is an owner-relative circle template.
type CircleShape struct {
	Offset geom.Vec2
	R      float64
}

// NewCircleShape validates the radius and builds a circle template.
func NewCircleShape(offset geom.Vec2, r float64) (CircleShape, error) {
	if r <= 0 {
		return CircleShape{}, fmt.Errorf("circle r=%g: %w", r, ErrInvalidShape)
	}
	return CircleShape{Offset: offset, R: r}, nil
}

// At returns the circle positioned at the owner's current position.
func (s CircleShape) At(pos geom.Vec2) Circle {
	return Circle{Center: pos.Add(s.Offset), R: s.R}
}

// Box is a positioned axis-aligned bounding box.
type Box struct {
	Center geom.Vec2
	W, H   float64
}

// Min returns the top-left corner.
func (b Box) Min() geom.Vec2 {
	return geom.V(b.Center.X()-b.W/2, b.Center.Y()-b.H/2)
}

// Max returns the bottom-right corner.
func (b Box) Max() geom.Vec2 {
	return geom.V(b.Center.X()+b.W/2, b.Center.Y()+b.H/2)
}

// Circle is a positioned circle.
type Circle struct {
	Center geom.Vec2
	R      float64
}

package component

import "go-arcade-shooter/pkg/geom"

// Transform is the positional state shared by every entity. PrevPos holds
// the position of the previous simulation step so the render phase can
// interpolate between steps.
type Transform struct {
	Pos     geom.Vec2
	PrevPos geom.Vec2
	Vel     geom.Vec2
	Rot     float64 // radians, kept in [0, 2π)
}

// Place teleports the entity, resetting the interpolation history.
func (t *Transform) Place(pos geom.Vec2) {
	t.Pos = pos
	t.PrevPos = pos
}

// Integrate advances the position by one fixed step.
func (t *Transform) Integrate(dt float64) {
	t.PrevPos = t.Pos
	t.Pos = t.Pos.Add(t.Vel.Mul(dt))
}

// SetRot stores a rotation normalized into [0, 2π).
func (t *Transform) SetRot(rad float64) {
	t.Rot = geom.NormalizeAngle(rad)
}

// RenderPos returns the position interpolated between the previous and
// current simulation step by alpha.
func (t *Transform) RenderPos(alpha float64) geom.Vec2 {
	return geom.Lerp(t.PrevPos, t.Pos, alpha)
}

package component

import (
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/pkg/collision"
)

// Enemy is a pooled hostile ship. The movement pattern and its parameters
// are fixed at spawn and never change mid-lifetime.
type Enemy struct {
	Transform
	ID      uint64 // unique per activation, used by the wave tracker
	DefID   string
	Pattern defs.MovementPattern
	Shape   collision.BoxShape

	Health        int
	MaxHealth     int
	ContactDamage int
	ScoreValue    int

	// Pattern parameters.
	MinX, MaxX    float64 // side-to-side bounds
	TopY, BottomY float64 // downward wrap bounds
	AnchorX       float64 // zigzag horizontal anchor
	WobbleAmp     float64 // zigzag amplitude, px
	WobbleFreq    float64 // zigzag frequency, rad/s
	Elapsed       float64 // pattern-local simulation time

	// Firing (turrets).
	FireInterval float64
	FireTimer    float64
}

package defs

// MovementPattern identifies one of the closed set of enemy movement
// behaviors. The pattern is fixed per enemy instance at creation.
type MovementPattern string

const (
	PatternSideToSide MovementPattern = "SIDE_TO_SIDE"
	PatternDownward   MovementPattern = "DOWNWARD"
	PatternZigzag     MovementPattern = "ZIGZAG"
	PatternStationary MovementPattern = "STATIONARY"
)

// Visuals describes how an enemy is drawn when no sprite is available.
type Visuals struct {
	ColorIndex int     `json:"color_index"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// FormationKind selects the spawn position layout of a wave.
type FormationKind string

const (
	FormationLine   FormationKind = "LINE"
	FormationColumn FormationKind = "COLUMN"
	FormationVee    FormationKind = "VEE"
)

package input

// Action is a game command produced by the input layer.
type Action string

const (
	ActionLeft   Action = "LEFT"
	ActionRight  Action = "RIGHT"
	ActionThrust Action = "THRUST"
	ActionShoot  Action = "SHOOT"
	ActionPause  Action = "PAUSE"
)

// State is the held-control snapshot consumed by the simulation each step.
type State struct {
	Left   bool
	Right  bool
	Thrust bool
	Shoot  bool
}

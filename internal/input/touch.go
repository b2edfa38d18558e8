package input

import "math"

// Gesture classifies a finished touch.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
)

// ClassifyGesture maps a touch's start and end points to a gesture: below
// the distance threshold it is a tap, otherwise a swipe along the dominant
// axis. Downward swipes are unused and classify as none.
func ClassifyGesture(startX, startY, endX, endY, threshold float64) Gesture {
	dx := endX - startX
	dy := endY - startY
	if math.Hypot(dx, dy) < threshold {
		return GestureTap
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return GestureSwipeLeft
		}
		return GestureSwipeRight
	}
	if dy < 0 {
		return GestureSwipeUp
	}
	return GestureNone
}

// gestureAction maps a gesture to the action it triggers.
func gestureAction(g Gesture) (Action, bool) {
	switch g {
	case GestureTap:
		return ActionShoot, true
	case GestureSwipeLeft:
		return ActionLeft, true
	case GestureSwipeRight:
		return ActionRight, true
	case GestureSwipeUp:
		return ActionThrust, true
	default:
		return "", false
	}
}

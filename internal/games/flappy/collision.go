package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Collision is the outcome of a collision pass.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionObstacle
)

// String returns the collision name.
func (c Collision) String() string {
	switch c {
	case CollisionGround:
		return "ground"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// DetectCollision tests the actor box against the ground line and every
// pipe. Ground contact is reported before obstacle contact.
func DetectCollision(actor core.Rect, pairs []Pair, pipeW, pipeH, groundLine float64) Collision {
	if actor.Bottom() >= groundLine {
		return CollisionGround
	}
	for _, p := range pairs {
		if actor.Intersects(p.TopRect(pipeW, pipeH)) || actor.Intersects(p.BottomRect(pipeW, pipeH)) {
			return CollisionObstacle
		}
	}
	return CollisionNone
}

// MarkPassed latches every pair whose trailing edge the actor has cleared.
// Returns how many pairs were newly passed.
func MarkPassed(actorX float64, pairs []Pair, pipeW float64) int {
	passed := 0
	for i := range pairs {
		if !pairs[i].Passed && actorX > pairs[i].X+pipeW {
			pairs[i].Passed = true
			passed++
		}
	}
	return passed
}

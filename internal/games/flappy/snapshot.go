package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// ActorView is the actor as seen by renderers.
type ActorView struct {
	Box      core.Rect
	Velocity float64
	Pitch    float64
	Frame    Frame
}

// PipeView is one pipe of a pair.
type PipeView struct {
	PairID uint64
	Kind   PipeKind
	Box    core.Rect
}

// Snapshot is a read-only copy of the world for one frame.
type Snapshot struct {
	WorldW       float64
	WorldH       float64
	GroundLine   float64
	Actor        ActorView
	Pipes        []PipeView // Oldest pair first, top before bottom
	Score        float64
	DisplayScore int // Score truncated for display
	Terminal     bool
	Theme        ThemeState
	Tick         uint64
}

// Snapshot captures the world as of the last step.
func (w *World) Snapshot() Snapshot {
	obs := w.cfg.Obstacles
	pairs := w.field.Pairs()
	pipes := make([]PipeView, 0, 2*len(pairs))
	for _, p := range pairs {
		pipes = append(pipes,
			PipeView{PairID: p.ID, Kind: PipeTop, Box: p.TopRect(obs.Width, obs.Height)},
			PipeView{PairID: p.ID, Kind: PipeBottom, Box: p.BottomRect(obs.Width, obs.Height)},
		)
	}

	return Snapshot{
		WorldW:     w.cfg.World.Width,
		WorldH:     w.cfg.World.Height,
		GroundLine: w.cfg.GroundLine(),
		Actor: ActorView{
			Box:      w.actor.Box(),
			Velocity: w.actor.Velocity,
			Pitch:    w.actor.Pitch,
			Frame:    w.actor.Frame,
		},
		Pipes:        pipes,
		Score:        w.score,
		DisplayScore: int(w.score),
		Terminal:     w.terminal,
		Theme:        w.theme.State(w.lastNow),
		Tick:         w.tick,
	}
}

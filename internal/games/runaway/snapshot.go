package runaway

// ActorSnapshot is an actor's pose at a point in time.
type ActorSnapshot struct {
	X, Y    float64
	Heading float64
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	Player    ActorSnapshot
	Pickup    ActorSnapshot
	Obstacles []ActorSnapshot
}

func snapshotOf(a *Actor) ActorSnapshot {
	p := a.Position()
	return ActorSnapshot{X: p.X, Y: p.Y, Heading: a.Heading()}
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]ActorSnapshot, len(g.obstacles))
	for i, o := range g.obstacles {
		obstacles[i] = snapshotOf(o.actor)
	}

	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.clock.Score(),
		Player:    snapshotOf(g.player.actor),
		Pickup:    snapshotOf(g.pickup.actor),
		Obstacles: obstacles,
	}
}

package runaway

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/runaway/internal/config"
	"github.com/vovakirdan/runaway/internal/core"
)

// Phase is the game loop state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// agent pairs an actor with the behavior that drives it.
type agent struct {
	actor    *Actor
	behavior Behavior
}

// Game implements the Runaway game loop.
type Game struct {
	id    string
	title string
	cfg   config.RunawayConfig

	arena   Arena
	radius2 float64
	rng     *rand.Rand
	clock   *ScoreClock
	phase   Phase
	tick    uint64
	last    Status

	player    agent
	pickup    agent
	obstacles []agent
	controls  *Manual

	display Display
	logger  *log.Logger
	screenW int
	screenH int
}

// Option configures a Game.
type Option func(*Game)

// WithDisplay sets where per-tick statuses are published.
func WithDisplay(d Display) Option {
	return func(g *Game) {
		if d != nil {
			g.display = d
		}
	}
}

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithClock replaces the wall clock used for elapsed time.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.clock = NewScoreClock(now)
	}
}

// WithSeed seeds the game's RNG.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIdentity overrides the registry ID and title.
func WithIdentity(id, title string) Option {
	return func(g *Game) {
		g.id = id
		g.title = title
	}
}

// New validates cfg and sets up the actors. The game starts Idle; call
// Start (or Reset) to begin a session.
func New(cfg config.RunawayConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runaway: %w", err)
	}

	g := &Game{
		id:      "runaway",
		title:   "Runaway",
		cfg:     cfg,
		arena:   Arena{HalfWidth: cfg.Arena.HalfWidth, HalfHeight: cfg.Arena.HalfHeight},
		radius2: cfg.CatchRadius2(),
		rng:     rand.New(rand.NewSource(1)),
		clock:   NewScoreClock(time.Now),
		display: nopDisplay{},
		logger:  log.New(io.Discard),
		screenW: 80,
		screenH: 24,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.setup()
	return g, nil
}

// setup creates every actor and scatters the obstacles across the arena.
func (g *Game) setup() {
	g.controls = NewManual()
	g.player = agent{
		actor:    NewActor(KindPlayer, g.cfg.Player.StepMove, g.cfg.Player.StepTurn),
		behavior: g.controls,
	}
	g.pickup = agent{
		actor:    NewActor(KindPickup, g.cfg.Pickup.StepMove, g.cfg.Pickup.StepTurn),
		behavior: NewRandomWander(g.rng),
	}

	g.obstacles = make([]agent, g.cfg.Rules.NumObstacles)
	for i := range g.obstacles {
		a := NewActor(KindObstacle, g.cfg.Obstacles.StepMove, g.cfg.Obstacles.StepTurn)
		a.Teleport(g.randomCoord(int(g.arena.HalfWidth)), g.randomCoord(int(g.arena.HalfHeight)))
		g.obstacles[i] = agent{actor: a, behavior: NewRandomWander(g.rng)}
	}

	g.phase = PhaseIdle
	g.tick = 0
	g.last = Status{}
}

// Start begins a session: the player returns to the origin, the pickup is
// respawned and the score clock restarts.
func (g *Game) Start() {
	g.player.actor.Teleport(0, 0)
	g.respawn(g.pickup.actor)
	g.controls.Clear()
	g.clock.Start()
	g.tick = 0
	g.last = g.clock.Status(0)
	g.phase = PhaseRunning
	g.display.ShowStatus(g.last)

	g.logger.Debug("session started", "game", g.id, "obstacles", len(g.obstacles))
}

// Step runs one tick. It returns Continue=false once the game is won, and
// does nothing outside the running phase.
func (g *Game) Step() core.StepResult {
	if g.phase != PhaseRunning {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.act(g.player, g.pickup.actor)
	g.act(g.pickup, g.player.actor)
	for _, o := range g.obstacles {
		g.act(o, g.player.actor)
	}

	caught, penalties := g.resolveCollisions()

	status := g.clock.Status(g.tick)
	status.Caught = caught
	status.Penalties = penalties
	g.last = status
	g.display.ShowStatus(status)

	if status.Score >= g.cfg.Rules.WinThreshold {
		g.phase = PhaseWon
		g.display.ShowWin(status)
		g.logger.Debug("session won", "tick", g.tick, "score", status.Score, "elapsed", status.ElapsedSeconds())
		return core.StepResult{State: g.State(), Continue: false}
	}

	return core.StepResult{State: g.State(), Continue: true}
}

// act lets one agent decide against its counterpart, then clamps it.
func (g *Game) act(ag agent, counterpart *Actor) {
	cmd := ag.behavior.Decide(ag.actor, counterpart.Position(), counterpart.Heading())
	cmd.Apply(ag.actor, g.arena)
	g.arena.Clamp(ag.actor)
}

// resolveCollisions is the only place the score changes.
func (g *Game) resolveCollisions() (caught, penalties int) {
	player := g.player.actor.Position()

	if Collides(player, g.pickup.actor.Position(), g.radius2) {
		g.clock.adjust(1)
		caught++
		g.respawn(g.pickup.actor)
		g.logger.Debug("pickup caught", "tick", g.tick, "score", g.clock.Score())
	}

	for i, o := range g.obstacles {
		if Collides(player, o.actor.Position(), g.radius2) {
			g.clock.adjust(-1)
			penalties++
			g.respawn(o.actor)
			g.logger.Debug("obstacle hit", "tick", g.tick, "obstacle", i, "score", g.clock.Score())
		}
	}
	return caught, penalties
}

// respawn teleports a to a random lattice point of the respawn square.
// The square does not follow the arena size; points outside a smaller
// arena are clamped onto it.
func (g *Game) respawn(a *Actor) {
	ext := g.cfg.Arena.RespawnExtent
	a.Teleport(g.randomCoord(ext), g.randomCoord(ext))
	g.arena.Clamp(a)
}

// randomCoord returns a uniform integer in [-ext, ext].
func (g *Game) randomCoord(ext int) float64 {
	return float64(g.rng.Intn(2*ext+1) - ext)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset re-seeds the game, rebuilds the actors and starts a new session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.setup()
	g.Start()
}

// Input queues a movement action for the player. Other actions are ignored.
// Safe to call concurrently with Step.
func (g *Game) Input(a core.Action) {
	var mv Move
	switch a {
	case core.ActionUp:
		mv = MoveForward
	case core.ActionDown:
		mv = MoveBackward
	case core.ActionLeft:
		mv = MoveTurnLeft
	case core.ActionRight:
		mv = MoveTurnRight
	default:
		return
	}
	g.controls.Enqueue(mv)
}

// TickInterval returns the configured fixed tick interval.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.TickInterval()
}

// Phase returns the loop state.
func (g *Game) Phase() Phase {
	return g.phase
}

// LastStatus returns the most recently published status.
func (g *Game) LastStatus() Status {
	return g.last
}

// State returns the current game state. Elapsed freezes once the game is won.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:   g.clock.Score(),
		Running: g.phase == PhaseRunning,
		Won:     g.phase == PhaseWon,
	}
	switch g.phase {
	case PhaseRunning:
		st.Elapsed = g.clock.Elapsed()
	case PhaseWon:
		st.Elapsed = g.last.Elapsed
	}
	return st
}

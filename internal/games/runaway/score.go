package runaway

import (
	"fmt"
	"math"
	"time"
)

// Status is the per-tick snapshot published to the Display.
type Status struct {
	Tick      uint64
	Score     int
	Elapsed   time.Duration
	Caught    int // Pickups caught this tick
	Penalties int // Obstacles hit this tick
}

// ElapsedSeconds returns the elapsed time rounded to a tenth of a second.
func (s Status) ElapsedSeconds() float64 {
	return math.Round(s.Elapsed.Seconds()*10) / 10
}

func (s Status) String() string {
	return fmt.Sprintf("Score: %d | Time: %.1fs", s.Score, s.ElapsedSeconds())
}

// WinMessage is the final line shown when the session is won.
func (s Status) WinMessage() string {
	return fmt.Sprintf("You won! Time: %.1fs", s.ElapsedSeconds())
}

// Display receives what the game loop publishes.
type Display interface {
	ShowStatus(Status)
	ShowWin(Status)
}

type nopDisplay struct{}

func (nopDisplay) ShowStatus(Status) {}
func (nopDisplay) ShowWin(Status) {}

// ScoreClock tracks the score and the wall-clock time since Start.
type ScoreClock struct {
	score int
	start time.Time
	now   func() time.Time
}

// NewScoreClock creates a clock reading time from now.
func NewScoreClock(now func() time.Time) *ScoreClock {
	if now == nil {
		now = time.Now
	}
	return &ScoreClock{now: now}
}

// Start zeroes the score and records the start time.
func (c *ScoreClock) Start() {
	c.score = 0
	c.start = c.now()
}

// Score returns the current score.
func (c *ScoreClock) Score() int {
	return c.score
}

// Elapsed returns the time since Start.
func (c *ScoreClock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// adjust changes the score. Only collision resolution calls it.
func (c *ScoreClock) adjust(delta int) {
	c.score += delta
}

// Status builds the snapshot for the given tick.
func (c *ScoreClock) Status(tick uint64) Status {
	return Status{
		Tick:    tick,
		Score:   c.score,
		Elapsed: c.Elapsed(),
	}
}

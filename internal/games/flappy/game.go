// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
)

// ID is the identifier used for score storage.
const ID = "flappy"

// Phase is the state of the game session.
type Phase int

const (
	NotStarted Phase = iota
	Playing
	Paused
	GameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NotStarted"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Active reports whether a session is running, paused or not.
func (p Phase) Active() bool {
	return p == Playing || p == Paused
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg    config.FlappyConfig
	store  highscore.Store
	logger *log.Logger
	assets Assets
	rng    *rand.Rand

	bird   Bird
	stream *Stream
	frame  Frame // Collision shapes from the last simulated tick
	phase  Phase

	score     int
	highScore int
	sessions  int
	cause     string // What ended the last session

	background  string
	skin        string
	groundShift float64 // Ground scroll offset in (-GroundTile, 0]
	tick        uint64
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for session events and save failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithSeed seeds the RNG driving pipe gaps and scenery choice.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAssets replaces the default glyph set.
func WithAssets(a Assets) Option {
	return func(g *Game) {
		g.assets = a
	}
}

// New creates a game in the NotStarted phase. The high score is read from
// store once, here.
func New(cfg config.FlappyConfig, store highscore.Store, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		store:  store,
		logger: log.New(io.Discard),
		assets: DefaultAssets(),
		rng:    rand.New(rand.NewSource(0)),
		stream: NewStream(cfg.World, cfg.Obstacles),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.store == nil {
		g.store = &highscore.MemoryStore{}
	}
	g.highScore = max(g.store.Load(), 0)
	g.background = g.pick(cfg.UI.Background, config.Backgrounds)
	g.skin = g.pick(cfg.Bird.Skin, config.Skins)
	g.bird = NewBird(cfg.Bird)
	return g
}

// pick resolves "random" to one of the variants.
func (g *Game) pick(setting string, variants []string) string {
	if setting == "random" {
		return variants[g.rng.Intn(len(variants))]
	}
	return setting
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// resetSession starts a fresh session: new bird, no pipes, score zero,
// not paused. Every restart path goes through here.
func (g *Game) resetSession() {
	g.bird = NewBird(g.cfg.Bird)
	g.stream.Reset()
	g.frame = Frame{}
	g.score = 0
	g.cause = ""
	g.phase = Playing
	g.sessions++
	g.logger.Debug("session started", "session", g.sessions, "highscore", g.highScore)
}

// Step advances the game by one tick. Input is applied first, in the order
// flap, pause, restart; the world is simulated only while Playing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var cues []core.Cue

	if in.Has(core.ActionJump) {
		if g.phase == NotStarted || g.phase == GameOver {
			g.resetSession()
		}
		if g.phase == Playing {
			g.bird = g.bird.Flap(g.cfg.Physics)
			cues = append(cues, CueFlap)
		}
	}

	if g.phase.Active() && (in.Has(core.ActionPause) || in.ClickedIn(g.pauseButton())) {
		if g.phase == Playing {
			g.phase = Paused
			cues = append(cues, CuePause)
		} else {
			g.phase = Playing
		}
	}

	if g.phase == GameOver && (in.Has(core.ActionRestart) || in.ClickedIn(g.restartButton())) {
		g.resetSession()
	}

	if g.phase == Playing {
		cues = g.simulate(cues)
	}

	g.groundShift = math.Mod(g.groundShift-g.cfg.World.GroundScroll, g.cfg.World.GroundTile)
	g.tick++

	return core.StepResult{State: g.State(), Cues: cues}
}

// simulate runs one Playing tick and appends the cues it produces.
func (g *Game) simulate(cues []core.Cue) []core.Cue {
	g.bird = g.bird.Update(g.cfg.Physics, g.cfg.Bird)
	g.stream.SpawnIfNeeded(g.rng)
	g.stream.Advance()

	g.frame = NewFrame(g.bird, g.stream.pipes, g.cfg)
	v := Resolve(g.frame, g.stream, g.cfg)

	if v.HitPipe {
		cues = append(cues, CueHit)
	}
	if v.HitGround || v.HitCeiling {
		cues = append(cues, CueDie)
	}
	for range v.Passed {
		g.score++
		cues = append(cues, CuePoint)
	}

	if v.Collided() {
		g.endSession(v)
	}
	return cues
}

// endSession moves to GameOver and persists a beaten high score. The store
// may be shared with other sessions, so it is read again before and after
// the save. A failed save is logged; the game carries on with the new value
// in memory.
func (g *Game) endSession(v Verdict) {
	g.phase = GameOver
	g.cause = v.Cause()
	g.logger.Debug("game over", "score", g.score, "pipe", v.HitPipe, "ground", v.HitGround, "ceiling", v.HitCeiling)

	g.highScore = max(g.highScore, g.store.Load())
	if g.score <= g.highScore {
		return
	}
	if err := g.store.Save(g.score); err != nil {
		g.highScore = g.score
		g.logger.Warn("highscore save failed", "score", g.score, "err", err)
		return
	}
	g.highScore = max(g.score, g.store.Load())
	if g.highScore == g.score {
		g.logger.Info("new highscore", "score", g.score)
	}
}

func (g *Game) pauseButton() core.RectF {
	b := g.cfg.UI.PauseButton
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

func (g *Game) restartButton() core.RectF {
	b := g.cfg.UI.RestartButton
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Frame returns the collision shapes computed on the last simulated tick.
func (g *Game) Frame() Frame {
	return g.frame
}

// Cause returns what ended the last session: pipe, ground or ceiling.
// It is empty until a session ends.
func (g *Game) Cause() string {
	return g.cause
}

// WorldSize returns the logical world dimensions.
func (g *Game) WorldSize() (w, h float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Started:   g.phase != NotStarted,
		GameOver:  g.phase == GameOver,
		Paused:    g.phase == Paused,
	}
}

// Render draws the current game state to the screen, scaling the world to
// the screen's size.
func (g *Game) Render(dst *core.Screen) {
	rc := NewRenderContext(g.assets, g.cfg.World, dst.Width(), dst.Height())
	Render(rc, g.Snapshot(), dst)
}

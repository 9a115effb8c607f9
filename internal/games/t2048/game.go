// Package t2048 implements the 2048 sliding-tile puzzle on top of the pure
// board engine: a session controller, save/restore, and the registry.Game
// adapter that animates and renders it.
package t2048

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

const saveTimeout = 2 * time.Second

// SaveKeys are the base keys progress is stored under. The profile and
// mode are appended per game.
type SaveKeys struct {
	Game string
	Best string
}

// DefaultSaveKeys returns the stock storage keys.
func DefaultSaveKeys() SaveKeys {
	return SaveKeys{Game: "game2048", Best: "game2048-best"}
}

// Package-level settings applied to every new game.
var (
	configuredRules = DefaultRules()
	configuredKeys  = DefaultSaveKeys()
)

// SetRules sets the rules used by games created afterwards.
func SetRules(r Rules) {
	configuredRules = r
}

// CurrentRules returns the rules new games will use.
func CurrentRules() Rules {
	return configuredRules
}

// SetSaveKeys sets the base storage keys.
func SetSaveKeys(k SaveKeys) {
	if k.Game == "" || k.Best == "" {
		return
	}
	configuredKeys = k
}

// Game adapts a Session to the terminal platform.
type Game struct {
	mode    Mode
	tick    uint64
	session *Session

	custom  *Rules // Overrides the package rules when set
	store   SaveStore
	logger  *log.Logger
	persist *Persistence

	paused    bool
	anim      animator
	flash     scoreFlash
	startBest int // Best score when the current game began
	lastError error
}

// New creates a classic 2048 game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a 2048 game without a win target.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Description returns a one-line summary of the variant.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "No winning tile; play until the board locks up"
	}
	return "Merge tiles to reach 2048"
}

// UseStore makes the game load and save progress through store.
// It takes effect on the next Reset.
func (g *Game) UseStore(store SaveStore, logger *log.Logger) {
	g.store = store
	g.logger = logger
}

// UseRules sets rules for this game only. It takes effect on the next Reset.
func (g *Game) UseRules(r Rules) {
	g.custom = &r
}

// rules returns the configured rules adjusted for the mode.
func (g *Game) rules() Rules {
	r := configuredRules
	if g.custom != nil {
		r = *g.custom
	}
	if g.mode == ModeEndless {
		r.WinTile = 0
	}
	return r
}

// keys returns the storage keys for a profile.
func (g *Game) keys(profile string) (game, best string) {
	if profile == "" {
		profile = core.DefaultProfile
	}
	game, best = configuredKeys.Game, configuredKeys.Best
	if g.mode == ModeEndless {
		game += "-endless"
		best += "-endless"
	}
	return profile + "/" + game, profile + "/" + best
}

// Reset loads the saved game for the configured profile, or starts a new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.paused = false
	g.anim.stop()
	g.flash = scoreFlash{}
	g.lastError = nil

	opts := []Option{WithRules(g.rules()), WithSeed(cfg.Seed)}

	if g.store == nil {
		g.persist = nil
		g.session = NewSession(opts...)
	} else {
		gameKey, bestKey := g.keys(cfg.Profile)
		g.persist = &Persistence{
			Store:   g.store,
			GameKey: gameKey,
			BestKey: bestKey,
			Logger:  g.logger,
		}
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		g.session = g.persist.Load(ctx, opts...)
		cancel()
	}

	g.startBest = g.session.BestScore()
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.anim.advance()
	g.flash.advance()

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	changed := false

	switch {
	case in.Has(core.ActionRestart):
		g.session.Restart()
		g.startBest = g.session.BestScore()
		g.anim.stop()
		g.flash = scoreFlash{}
		changed = true

	case in.Has(core.ActionUndo):
		if g.session.Undo() {
			g.anim.stop()
			g.flash = scoreFlash{}
			changed = true
		}

	case in.Has(core.ActionContinue):
		changed = g.session.Continue()

	default:
		if dir, ok := directionFor(in); ok {
			out := g.session.Move(dir)
			if out.Moved {
				g.anim.start(out)
				g.flash.show(out.ScoreIncrease)
				changed = true
			}
		}
	}

	if changed {
		g.save()
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// directionFor returns the first direction found in the frame.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	}
	return 0, false
}

// save persists the session if a store is attached. Failures are logged
// and otherwise ignored; the game keeps running.
func (g *Game) save() {
	if g.persist == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	g.lastError = g.persist.Save(ctx, g.session)
	if g.lastError != nil {
		g.persist.logger().Warn("cannot save game", "key", g.persist.GameKey, "error", g.lastError)
	}
}

// MaxTile returns the largest tile on the board.
func (g *Game) MaxTile() int {
	if g.session == nil {
		return 0
	}
	return g.session.Board().MaxTile()
}

// newBest reports whether the current score set a new record this game.
func (g *Game) newBest() bool {
	s := g.session.Score()
	return s > 0 && s > g.startBest && s >= g.session.BestScore()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	status := g.session.Status()
	return core.GameState{
		Score:    g.session.Score(),
		Best:     g.session.BestScore(),
		Won:      status == StatusWon,
		GameOver: status == StatusLost,
		Paused:   g.paused,
	}
}

package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
		Profile:  "tester",
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterministicReset(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig())

	g2 := New()
	g2.Reset(testConfig())

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Board != s2.Board || s1.IDs != s2.IDs {
		t.Errorf("same seed should produce same initial board:\n%v\nvs\n%v", s1.Board, s2.Board)
	}
}

func TestStepMoves(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	setBoard(g.session, [4][4]int{{2, 2, 0, 0}})

	res := g.Step(frame(core.ActionLeft))

	if !res.Changed {
		t.Fatal("a legal move should report a change")
	}
	if res.State.Score != 4 {
		t.Errorf("Score = %d, want 4", res.State.Score)
	}
	if !g.anim.active() {
		t.Error("a move should start an animation")
	}
	if !g.flash.visible() || g.flash.amount != 4 {
		t.Errorf("score flash = %+v, want +4", g.flash)
	}

	if g.Step(core.NewInputFrame()).Changed {
		t.Error("an empty frame should not change the game")
	}
}

func TestStepUndoAndRestart(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	setBoard(g.session, [4][4]int{{2, 2, 0, 0}})

	g.Step(frame(core.ActionLeft))
	res := g.Step(frame(core.ActionUndo))
	if !res.Changed || res.State.Score != 0 {
		t.Errorf("undo result = %+v, want score 0", res)
	}
	if g.Step(frame(core.ActionUndo)).Changed {
		t.Error("second undo should do nothing")
	}

	g.Step(frame(core.ActionLeft))
	res = g.Step(frame(core.ActionRestart))
	if !res.Changed || res.State.Score != 0 || res.State.Best != 4 {
		t.Errorf("restart result = %+v, want score 0 best 4", res.State)
	}
}

func TestStepWinAndContinue(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	setBoard(g.session, [4][4]int{{1024, 1024, 0, 0}})

	res := g.Step(frame(core.ActionLeft))
	if !res.State.Won || res.State.GameOver {
		t.Fatalf("state = %+v, want won", res.State)
	}

	res = g.Step(frame(core.ActionContinue))
	if !res.Changed || res.State.Won {
		t.Errorf("continue result = %+v, want playing", res)
	}
}

func TestEndlessModeNoWin(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig())
	setBoard(g.session, [4][4]int{{1024, 1024, 0, 0}})

	res := g.Step(frame(core.ActionLeft))

	if res.State.Won {
		t.Error("endless mode should not have a win state")
	}
	if g.Snapshot().MaxTile != 2048 {
		t.Errorf("MaxTile = %d, want 2048", g.Snapshot().MaxTile)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	setBoard(g.session, [4][4]int{{2, 2, 0, 0}})

	g.Step(frame(core.ActionPause))
	res := g.Step(frame(core.ActionLeft))
	if res.Changed || !res.State.Paused {
		t.Errorf("paused step = %+v, want no change", res)
	}

	g.Step(frame(core.ActionPause))
	if !g.Step(frame(core.ActionLeft)).Changed {
		t.Error("move after unpausing should apply")
	}
}

func TestGameSavesThroughStore(t *testing.T) {
	store := newMemStore()

	g := New()
	g.UseStore(store, nil)
	g.Reset(testConfig())
	setBoard(g.session, [4][4]int{{2, 2, 0, 0}})
	g.Step(frame(core.ActionLeft))

	if _, ok := store.games["tester/game2048"]; !ok {
		t.Fatalf("expected save under tester/game2048, have %v", store.games)
	}
	if store.best["tester/game2048-best"] != 4 {
		t.Errorf("stored best = %d, want 4", store.best["tester/game2048-best"])
	}

	g2 := New()
	g2.UseStore(store, nil)
	cfg := testConfig()
	cfg.Seed = 999
	g2.Reset(cfg)

	if g2.Snapshot().Board != g.Snapshot().Board || g2.State().Score != 4 {
		t.Errorf("reloaded game differs:\n%v\nwant\n%v", g2.Snapshot().Board, g.Snapshot().Board)
	}
}

func TestEndlessUsesSeparateSave(t *testing.T) {
	store := newMemStore()

	g := NewEndless()
	g.UseStore(store, nil)
	g.Reset(testConfig())
	g.Step(frame(core.ActionRestart))

	if _, ok := store.games["tester/game2048-endless"]; !ok {
		t.Errorf("expected endless save key, have %v", store.games)
	}
}

func TestSnapshot(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	snap := g.Snapshot()

	if snap.Mode != ModeClassic {
		t.Errorf("Snapshot Mode = %s, want classic", snap.Mode)
	}
	if snap.Status != StatusPlaying {
		t.Errorf("Snapshot Status = %s, want playing", snap.Status)
	}
	if snap.CanUndo {
		t.Error("fresh game should not offer undo")
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	setBoard(g.session, [4][4]int{{2048, 0, 0, 4}})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Best: 0", "2048", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Errorf("small screen should show a resize hint:\n%s", small.String())
	}
}

func TestRenderLostOverlay(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.session.rules = twosOnly
	g.session.spawner = engine.NewSpawner(g.session.rng, 0, nil)
	setBoard(g.session, [4][4]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 8, 8},
	})

	res := g.Step(frame(core.ActionLeft))
	if !res.State.GameOver {
		t.Fatalf("state = %+v, want game over", res.State)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"GAME OVER", "New best!"} {
		if !strings.Contains(out, want) {
			t.Errorf("lost overlay missing %q:\n%s", want, out)
		}
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(2048) != core.ColorBrightMagenta {
		t.Error("2048 should be bright magenta")
	}
	if TileColor(8192) != core.ColorMagenta {
		t.Error("tiles beyond 2048 should share one color")
	}
}

func TestUseRulesOverridesPackageRules(t *testing.T) {
	g := New()
	g.UseRules(Rules{WinTile: 64, FourProb: 0})
	g.Reset(testConfig())

	if got := len(g.Session().Board().Tiles()); got != 2 {
		t.Errorf("initial tiles = %d, want 2", got)
	}
	if got := g.Session().Rules().WinTile; got != 64 {
		t.Errorf("WinTile = %d, want 64", got)
	}

	e := NewEndless()
	e.UseRules(Rules{WinTile: 64})
	e.Reset(testConfig())
	if got := e.Session().Rules().WinTile; got != 0 {
		t.Errorf("endless WinTile = %d, want 0", got)
	}
}

func TestMaxTile(t *testing.T) {
	g := New()
	if g.MaxTile() != 0 {
		t.Errorf("MaxTile() before Reset = %d, want 0", g.MaxTile())
	}
	g.Reset(testConfig())
	setBoard(g.session, [4][4]int{{2, 128}, {0, 0, 16}})
	if g.MaxTile() != 128 {
		t.Errorf("MaxTile() = %d, want 128", g.MaxTile())
	}
}

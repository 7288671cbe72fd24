package skyfall

import (
	"math"
	"strings"
	"testing"

	"github.com/akarneev/skyfall/internal/config"
	"github.com/akarneev/skyfall/internal/core"
)

// newTestGame builds a game with difficulty progression disabled so
// speeds and delays stay at their base values for exact assertions.
func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	g.cfg.Difficulty.Enabled = false
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	return g
}

// holdWaves pushes the next wave far into the future so crafted
// scenarios are not disturbed by natural spawns.
func holdWaves(g *Game) {
	g.spawner.ResetDelay(1e9)
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same inputs must produce identical results
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}

	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%7 < 3 {
			inputSequence[i].Set(core.ActionLeft)
		} else if i%7 < 5 {
			inputSequence[i].Set(core.ActionRight)
		}
		if i%40 == 0 {
			inputSequence[i].Set(core.ActionFire)
		}
	}

	g1 := New()
	g1.Reset(cfg)
	for _, in := range inputSequence {
		g1.Step(in)
	}
	snap1 := g1.Snapshot()

	g2 := New()
	g2.Reset(cfg)
	for _, in := range inputSequence {
		g2.Step(in)
	}
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.PlayerX != snap2.PlayerX || snap1.PlayerY != snap2.PlayerY {
		t.Errorf("Determinism failed: cursor positions differ")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
		in := core.NewInputFrame()
		for i := 0; i < 600; i++ {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snapA, snapB := run(1), run(2)
	if snapA.Hash() == snapB.Hash() {
		t.Error("Different seeds produced identical sessions")
	}
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)

	wantX := g.cfg.Cursor.Velocity / 60.0
	if math.Abs(g.player.Pos.X-wantX) > 1e-9 {
		t.Errorf("Cursor X = %v, want %v", g.player.Pos.X, wantX)
	}
	if g.player.Pos.Y != 0 {
		t.Errorf("Cursor Y = %v, want 0", g.player.Pos.Y)
	}

	// Opposing directions cancel out
	in = core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionRight)
	g.Step(in)
	if math.Abs(g.player.Pos.X-wantX) > 1e-9 {
		t.Errorf("Cursor moved under cancelling input: X = %v", g.player.Pos.X)
	}
}

func TestCursorBoundNudge(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	// Right edge: the crosshair width counts against the bound. The
	// out-of-bounds tick spends itself on a one cell nudge and the
	// movement input is dropped.
	g.player.Pos = core.V(38, 0) // 38+3 > 40
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.player.Pos.X != 37 {
		t.Errorf("After nudge X = %v, want 37", g.player.Pos.X)
	}

	// Back in bounds, movement resumes
	g.Step(in)
	wantX := 37 + g.cfg.Cursor.Velocity/60.0
	if math.Abs(g.player.Pos.X-wantX) > 1e-9 {
		t.Errorf("After resume X = %v, want %v", g.player.Pos.X, wantX)
	}

	// Left edge has no width allowance
	g.player.Pos = core.V(-40.5, 0)
	g.Step(core.NewInputFrame())
	if g.player.Pos.X != -39.5 {
		t.Errorf("Left nudge X = %v, want -39.5", g.player.Pos.X)
	}

	// Bottom bound sits above the ground band
	g.player.Pos = core.V(0, -8.5) // -8.5 - 1 < -9
	g.Step(core.NewInputFrame())
	if g.player.Pos.Y != -7.5 {
		t.Errorf("Bottom nudge Y = %v, want -7.5", g.player.Pos.Y)
	}
}

func TestCursorBoundOneAxisPerTick(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	// Out of bounds on both axes: horizontal is corrected first
	g.player.Pos = core.V(41, 13)
	g.Step(core.NewInputFrame())
	if g.player.Pos.X != 40 || g.player.Pos.Y != 13 {
		t.Errorf("First nudge = (%v, %v), want (40, 13)", g.player.Pos.X, g.player.Pos.Y)
	}
}

func TestFireCooldown(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	in := core.NewInputFrame()
	in.Set(core.ActionFire)

	g.Step(in)
	if len(g.interceptors) != 1 {
		t.Fatalf("Interceptors after first shot = %d, want 1", len(g.interceptors))
	}
	if g.interceptors[0].Pos != g.player.Pos {
		t.Errorf("Interceptor spawned at %v, want cursor position %v", g.interceptors[0].Pos, g.player.Pos)
	}
	if g.interceptors[0].Elapsed != g.cfg.Interceptor.Period {
		t.Errorf("Interceptor elapsed = %v, want %v", g.interceptors[0].Elapsed, g.cfg.Interceptor.Period)
	}

	// Holding fire through the cooldown yields no extra shots
	for i := 0; i < 29; i++ {
		g.Step(in)
	}
	if len(g.interceptors) != 1 {
		t.Errorf("Interceptors during cooldown = %d, want 1", len(g.interceptors))
	}

	// Cooldown expires after half a second at 60 ticks
	g.Step(in)
	if len(g.interceptors) != 2 {
		t.Errorf("Interceptors after cooldown = %d, want 2", len(g.interceptors))
	}
}

func TestWaveSpawning(t *testing.T) {
	g := newTestGame(777)

	in := core.NewInputFrame()
	for i := 0; i < 240; i++ { // 4 seconds at 60 ticks
		g.Step(in)
	}

	if len(g.rockets) == 0 {
		t.Fatal("No rockets after the wave delay elapsed")
	}

	// Level 1 wave size draw is in [2, 4)
	if len(g.rockets) < 2 || len(g.rockets) > 3 {
		t.Errorf("Wave size = %d, want 2 or 3", len(g.rockets))
	}

	for i, r := range g.rockets {
		if r.Heading < 0.75*math.Pi || r.Heading >= 1.25*math.Pi {
			t.Errorf("Rocket %d heading = %v, want [0.75pi, 1.25pi)", i, r.Heading)
		}
		if r.Launch.Y != 12 {
			t.Errorf("Rocket %d launched at Y = %v, want 12", i, r.Launch.Y)
		}
		if r.Launch.X < -40 || r.Launch.X >= 40 {
			t.Errorf("Rocket %d launched at X = %v, want [-40, 40)", i, r.Launch.X)
		}
		if !r.Alive() {
			t.Errorf("Rocket %d spawned dead", i)
		}
	}
}

func TestGroundImpact(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	g.rockets = append(g.rockets, Rocket{
		Pos:     core.V(0, -8.99),
		Launch:  core.V(0, 12),
		Heading: math.Pi,
		Life:    1.0,
	})

	g.Step(core.NewInputFrame())

	if g.player.Life != g.cfg.Gameplay.GroundLife-1 {
		t.Errorf("Player life = %v, want %v", g.player.Life, g.cfg.Gameplay.GroundLife-1)
	}
	if len(g.rockets) != 0 {
		t.Errorf("Rocket survived ground impact: %d left", len(g.rockets))
	}
	if len(g.interceptors) != 1 {
		t.Fatalf("Ground blasts = %d, want 1", len(g.interceptors))
	}
	if g.interceptors[0].Pos.Y >= -9 {
		t.Errorf("Ground blast at Y = %v, want below the ground line", g.interceptors[0].Pos.Y)
	}
	if g.score != 0 {
		t.Errorf("Ground impact awarded score %d", g.score)
	}
}

func TestGroundExplosionsDisabled(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)
	g.cfg.Gameplay.GroundExplosions = false

	g.rockets = append(g.rockets, Rocket{
		Pos:     core.V(0, -8.99),
		Heading: math.Pi,
		Life:    1.0,
	})

	g.Step(core.NewInputFrame())

	if len(g.interceptors) != 0 {
		t.Errorf("Ground blast spawned with explosions disabled")
	}
	if g.player.Life != g.cfg.Gameplay.GroundLife-1 {
		t.Errorf("Player life = %v, want %v", g.player.Life, g.cfg.Gameplay.GroundLife-1)
	}
}

func TestSideExitSilent(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	g.rockets = append(g.rockets, Rocket{
		Pos:     core.V(41, 0),
		Heading: math.Pi,
		Life:    1.0,
	})

	g.Step(core.NewInputFrame())

	if len(g.rockets) != 0 {
		t.Errorf("Rocket survived side exit: %d left", len(g.rockets))
	}
	if g.player.Life != g.cfg.Gameplay.GroundLife {
		t.Errorf("Side exit cost the player a life: %v", g.player.Life)
	}
	if len(g.interceptors) != 0 {
		t.Errorf("Side exit spawned a blast")
	}
	if g.score != 0 {
		t.Errorf("Side exit awarded score %d", g.score)
	}
}

func TestInterception(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	// Blast at half life has its maximum radius
	g.interceptors = append(g.interceptors, Interceptor{
		Pos:     core.V(5, 5),
		Elapsed: 2.5,
	})
	g.rockets = append(g.rockets, Rocket{
		Pos:     core.V(5, 5),
		Heading: math.Pi,
		Life:    1.0,
	})

	g.Step(core.NewInputFrame())

	if len(g.rockets) != 0 {
		t.Errorf("Rocket survived interception: %d left", len(g.rockets))
	}
	if g.score != g.cfg.Gameplay.InterceptBonus {
		t.Errorf("Score = %d, want %d", g.score, g.cfg.Gameplay.InterceptBonus)
	}
	if len(g.interceptors) != 1 {
		t.Errorf("Blast pruned too early: %d left", len(g.interceptors))
	}
}

func TestInterceptionScoredOncePerRocket(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	// Two overlapping blasts, one rocket: bonus awarded once
	g.interceptors = append(g.interceptors,
		Interceptor{Pos: core.V(5, 5), Elapsed: 2.5},
		Interceptor{Pos: core.V(5.5, 5), Elapsed: 2.5},
	)
	g.rockets = append(g.rockets, Rocket{
		Pos:     core.V(5, 5),
		Heading: math.Pi,
		Life:    1.0,
	})

	g.Step(core.NewInputFrame())

	if g.score != g.cfg.Gameplay.InterceptBonus {
		t.Errorf("Score = %d, want %d", g.score, g.cfg.Gameplay.InterceptBonus)
	}
}

func TestScoringDisabled(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)
	g.cfg.Gameplay.Scoring = false

	g.interceptors = append(g.interceptors, Interceptor{Pos: core.V(5, 5), Elapsed: 2.5})
	g.rockets = append(g.rockets, Rocket{Pos: core.V(5, 5), Heading: math.Pi, Life: 1.0})

	g.Step(core.NewInputFrame())

	if len(g.rockets) != 0 {
		t.Errorf("Rocket survived interception with scoring disabled")
	}
	if g.score != 0 {
		t.Errorf("Score = %d with scoring disabled", g.score)
	}
}

func TestGroundImpactBeatsInterception(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	// A rocket that crosses the ground line inside a blast still counts
	// as a ground hit, not an interception
	g.interceptors = append(g.interceptors, Interceptor{Pos: core.V(0, -9), Elapsed: 2.5})
	g.rockets = append(g.rockets, Rocket{Pos: core.V(0, -8.99), Heading: math.Pi, Life: 1.0})

	g.Step(core.NewInputFrame())

	if g.player.Life != g.cfg.Gameplay.GroundLife-1 {
		t.Errorf("Player life = %v, want %v", g.player.Life, g.cfg.Gameplay.GroundLife-1)
	}
	if g.score != 0 {
		t.Errorf("Dead rocket still scored: %d", g.score)
	}
}

func TestGameOverAfterFiveImpacts(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	for i := 0; i < 5; i++ {
		// Spread impacts out so earlier ground blasts cannot intercept
		// later rockets
		x := float64(i*12 - 24)
		g.rockets = append(g.rockets, Rocket{
			Pos:     core.V(x, -8.99),
			Heading: math.Pi,
			Life:    1.0,
		})
		g.Step(core.NewInputFrame())
	}

	if g.state != StateGameOver {
		t.Errorf("State = %q after 5 ground impacts, want %q", g.state, StateGameOver)
	}
	if !g.State().GameOver {
		t.Error("GameState.GameOver = false after 5 ground impacts")
	}
}

func TestBlastExpiry(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	g.interceptors = append(g.interceptors, Interceptor{Pos: core.V(0, 5), Elapsed: g.cfg.Interceptor.Period})

	// The animation runs at 3x real time: a 5 second period lasts 100
	// ticks at 60 ticks per second
	in := core.NewInputFrame()
	for i := 0; i < 99; i++ {
		g.Step(in)
	}
	if len(g.interceptors) != 1 {
		t.Fatalf("Blast expired early: %d left after 99 ticks", len(g.interceptors))
	}

	g.Step(in)
	if len(g.interceptors) != 0 {
		t.Errorf("Blast still alive after full period: %d left", len(g.interceptors))
	}
}

func TestLevelTimer(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	g.levelTimer = 2.0 / 60.0
	in := core.NewInputFrame()
	g.Step(in)
	if g.level != 1 {
		t.Errorf("Level advanced early: %d", g.level)
	}
	g.Step(in)
	if g.level != 2 {
		t.Errorf("Level = %d after the timer elapsed, want 2", g.level)
	}
	if math.Abs(g.levelTimer-g.cfg.Spawner.LevelTime) > 1e-9 {
		t.Errorf("Level timer = %v after rollover, want %v", g.levelTimer, g.cfg.Spawner.LevelTime)
	}
}

func TestLevelingDisabled(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)
	g.cfg.Gameplay.Leveling = false

	g.levelTimer = 1.0 / 60.0
	g.Step(core.NewInputFrame())

	if g.level != 1 {
		t.Errorf("Level = %d with leveling disabled, want 1", g.level)
	}
	if math.Abs(g.levelTimer-g.cfg.Spawner.LevelTime) > 1e-9 {
		t.Errorf("Level timer did not reset: %v", g.levelTimer)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if g.state != StatePaused {
		t.Fatalf("State = %q after pause, want %q", g.state, StatePaused)
	}

	// Simulation is frozen while paused
	before := g.tickCount
	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)
	if g.tickCount != before {
		t.Error("Tick count advanced while paused")
	}
	if len(g.interceptors) != 0 {
		t.Error("Interceptor fired while paused")
	}

	g.Step(pause)
	if g.state != StatePlaying {
		t.Errorf("State = %q after unpause, want %q", g.state, StatePlaying)
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	g.score = 900
	g.player.Life = 0
	g.Step(core.NewInputFrame())
	if g.state != StateGameOver {
		t.Fatalf("State = %q, want %q", g.state, StateGameOver)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.state != StatePlaying {
		t.Errorf("State = %q after restart, want %q", g.state, StatePlaying)
	}
	if g.score != 0 {
		t.Errorf("Score = %d after restart, want 0", g.score)
	}
	if g.player.Life != g.cfg.Gameplay.GroundLife {
		t.Errorf("Player life = %v after restart, want %v", g.player.Life, g.cfg.Gameplay.GroundLife)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g1 := newTestGame(99)
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	for i := 0; i < 300; i++ {
		g1.Step(in)
	}

	snap := g1.Snapshot()

	g2 := newTestGame(1) // Different seed, fully overwritten by the snapshot
	g2.ApplySnapshot(snap)

	restored := g2.Snapshot()
	if snap.Hash() != restored.Hash() {
		t.Fatalf("Snapshot round trip changed the hash: %d != %d", snap.Hash(), restored.Hash())
	}

	// Both games continue identically from the restored state
	for i := 0; i < 120; i++ {
		g1.Step(in)
		g2.Step(in)
	}
	snap1, snap2 := g1.Snapshot(), g2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Error("Restored game diverged from the original")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(42)
	holdWaves(g)

	g.rockets = append(g.rockets, Rocket{
		Pos:     core.V(0, 5),
		Launch:  core.V(-10, 12),
		Heading: math.Pi,
		Life:    1.0,
	})
	g.interceptors = append(g.interceptors, Interceptor{Pos: core.V(10, 0), Elapsed: 2.5})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD missing score")
	}
	if !strings.Contains(out, "Level: 1") {
		t.Error("HUD missing level")
	}
	if !strings.Contains(out, string(RocketChar)) {
		t.Error("Rocket not rendered")
	}
	if !strings.Contains(out, string(BlastChar)) {
		t.Error("Blast not rendered")
	}
	if !strings.Contains(out, string(GroundChar)) {
		t.Error("Ground not rendered")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Missing too-small message")
	}

	// Simulation stays frozen on an undersized screen
	snapBefore := g.Snapshot()
	before := snapBefore.Hash()
	g.Step(core.NewInputFrame())
	snapAfter := g.Snapshot()
	if snapAfter.Hash() != before {
		t.Error("Game advanced on an undersized screen")
	}
}

func TestGameInterface(t *testing.T) {
	g := New()
	if g.ID() != "skyfall" {
		t.Errorf("ID = %q, want %q", g.ID(), "skyfall")
	}
	if g.Title() != "Skyfall Command" {
		t.Errorf("Title = %q", g.Title())
	}
}

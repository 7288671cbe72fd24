package skyfall

import (
	"fmt"

	"github.com/akarneev/skyfall/internal/config"
	"github.com/akarneev/skyfall/internal/core"
	"github.com/akarneev/skyfall/internal/registry"
)

// Visual characters for rendering
const (
	CursorCenterChar = '┼'
	CursorArmChar    = '─'
	RocketChar       = '▼'
	TracerChar       = '·'
	BlastCoreChar    = '█'
	BlastChar        = '▒'
	GroundChar       = '█'
)

// GameState constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Skyfall Command game logic. All positions live in
// a centered coordinate system: the origin is the middle of the play
// area and Y grows upward. Conversion to screen cells happens only at
// render time.
type Game struct {
	// Game objects
	player       Cursor
	rockets      []Rocket
	interceptors []Interceptor
	spawner      *Spawner

	// Game state
	state       string
	score       int
	level       int
	tickCount   int
	shotTimeout float64 // Seconds until the next interceptor may fire
	levelTimer  float64 // Seconds until the level advances

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.SkyfallConfig
	difficulty *config.DifficultyManager
	dt         float64

	// Layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Skyfall Command game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyfall Command"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadSkyfall(configPath)
	if err != nil {
		cfg = config.DefaultSkyfallConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplySkyfallPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg

	// Initialize difficulty manager
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// Check screen size
	g.minScreenW = 40
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	// Initialize game state
	g.score = 0
	g.level = 1
	g.tickCount = 0
	g.shotTimeout = 0
	g.levelTimer = cfg.Spawner.LevelTime

	g.player = Cursor{
		Pos:  core.V(0, 0),
		Life: cfg.Gameplay.GroundLife,
	}
	g.rockets = make([]Rocket, 0, 16)
	g.interceptors = make([]Interceptor, 0, 16)
	g.spawner = NewSpawner(runtime.Seed, cfg.Spawner)

	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or game over
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	ax := core.AxesFrom(in)

	g.updateLevel()
	g.moveCursor(ax)
	g.updateFire(ax)
	g.updateSpawner()
	g.updateRockets()
	g.updateInterceptors()
	g.handleBorderCollisions()
	g.handleInterceptions()
	g.pruneDead()

	if g.player.Life <= 0 {
		g.state = StateGameOver
	}

	return core.StepResult{State: g.State()}
}

// updateLevel advances the level timer. The timer always runs so the
// cadence stays stable, but the level only grows when leveling is on.
func (g *Game) updateLevel() {
	g.levelTimer -= g.dt
	if g.levelTimer <= 0 {
		if g.cfg.Gameplay.Leveling {
			g.level++
		}
		g.levelTimer = g.cfg.Spawner.LevelTime
	}
}

// moveCursor applies player input to the crosshair. When the crosshair
// sits out of bounds the whole tick is spent nudging it back one cell,
// and the input is dropped.
func (g *Game) moveCursor(ax core.Axes) {
	if !g.keepCursorInBounds() {
		return
	}
	v := g.cfg.Cursor.Velocity
	g.player.Pos = g.player.Pos.Add(core.V(ax.X*v*g.dt, ax.Y*v*g.dt))
}

// keepCursorInBounds nudges an out-of-bounds crosshair one cell back
// towards the play area. Returns false if a nudge happened. Horizontal
// overshoot is corrected before vertical, one axis per tick.
func (g *Game) keepCursorInBounds() bool {
	halfW := float64(g.runtime.ScreenW) / 2
	halfH := float64(g.runtime.ScreenH) / 2
	p := &g.player.Pos

	if p.X+g.cfg.Cursor.Width > halfW {
		p.X -= 1
		return false
	} else if p.X < -halfW {
		p.X += 1
		return false
	}
	if p.Y > halfH {
		p.Y -= 1
		return false
	} else if p.Y-g.cfg.Cursor.Height < -halfH+g.cfg.Rockets.GroundHeight {
		p.Y += 1
		return false
	}
	return true
}

// updateFire launches an interceptor at the crosshair when the fire
// action is held and the shot cooldown has elapsed.
func (g *Game) updateFire(ax core.Axes) {
	g.shotTimeout -= g.dt
	if !ax.Fire || g.shotTimeout > 0 {
		return
	}
	g.shotTimeout = g.cfg.Interceptor.ShotTimeout
	g.interceptors = append(g.interceptors, Interceptor{
		Pos:     g.player.Pos,
		Elapsed: g.cfg.Interceptor.Period,
	})
}

// updateSpawner counts down the wave cooldown and launches the next
// rocket wave when it fires.
func (g *Game) updateSpawner() {
	g.spawner.Tick(g.dt)
	if !g.spawner.Due() {
		return
	}

	extra := g.difficulty.ExtraRockets(g.score, g.tickCount)
	count := g.spawner.WaveSize(g.level, extra)
	wave := g.spawner.SpawnWave(count, float64(g.runtime.ScreenW), float64(g.runtime.ScreenH))
	g.rockets = append(g.rockets, wave...)

	g.spawner.ResetDelay(g.difficulty.WaveDelay(g.cfg.Spawner.WaveDelay, g.score, g.tickCount))
}

// updateRockets integrates all rockets along their headings.
func (g *Game) updateRockets() {
	velocity := g.difficulty.RocketSpeed(g.cfg.Rockets.Velocity, g.score, g.tickCount)
	for i := range g.rockets {
		g.rockets[i].Advance(velocity, g.dt)
	}
}

// updateInterceptors ages all blasts.
func (g *Game) updateInterceptors() {
	for i := range g.interceptors {
		g.interceptors[i].Age(g.cfg.Interceptor.ElapseRate, g.dt)
	}
}

// handleBorderCollisions kills rockets that left the play area. A
// ground impact costs the player a life and, when enabled, spawns a
// blast at the impact point. Side exits are silent.
func (g *Game) handleBorderCollisions() {
	halfW := float64(g.runtime.ScreenW) / 2
	groundY := -float64(g.runtime.ScreenH)/2 + g.cfg.Rockets.GroundHeight

	for i := range g.rockets {
		r := &g.rockets[i]
		if !r.Alive() {
			continue
		}
		if r.Pos.Y < groundY {
			r.Life = 0
			g.player.Life--
			if g.cfg.Gameplay.GroundExplosions {
				g.interceptors = append(g.interceptors, Interceptor{
					Pos:     r.Pos,
					Elapsed: g.cfg.Interceptor.Period,
				})
			}
			continue
		}
		if r.Pos.X > halfW || r.Pos.X < -halfW {
			r.Life = 0
		}
	}
}

// handleInterceptions kills every rocket inside a blast radius. The
// bonus is awarded at most once per rocket regardless of how many
// blasts overlap it.
func (g *Game) handleInterceptions() {
	base := g.cfg.Interceptor.BaseRadius
	for ri := range g.rockets {
		r := &g.rockets[ri]
		for ii := range g.interceptors {
			if r.Pos.Dist(g.interceptors[ii].Pos) >= g.interceptors[ii].Radius(base) {
				continue
			}
			if r.Alive() && g.cfg.Gameplay.Scoring {
				g.score += g.cfg.Gameplay.InterceptBonus
			}
			r.Life = 0
		}
	}
}

// pruneDead removes dead rockets and expired blasts. Runs after all
// collision passes so a rocket killed this tick still had its full
// tick of interactions.
func (g *Game) pruneDead() {
	live := g.rockets[:0]
	for _, r := range g.rockets {
		if r.Alive() {
			live = append(live, r)
		}
	}
	g.rockets = live

	active := g.interceptors[:0]
	for _, b := range g.interceptors {
		if !b.Expired() {
			active = append(active, b)
		}
	}
	g.interceptors = active
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderGround(dst)
	g.renderRockets(dst)
	g.renderBlasts(dst)
	g.renderCursor(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderGround draws the ground band at the bottom of the play area.
func (g *Game) renderGround(dst *core.Screen) {
	groundRows := int(g.cfg.Rockets.GroundHeight)
	for row := dst.Height() - groundRows; row < dst.Height(); row++ {
		for x := 0; x < dst.Width(); x++ {
			dst.SetCell(x, row, GroundChar, core.ColorGreen)
		}
	}
}

// renderRockets draws each rocket with a tracer back to its launch
// point.
func (g *Game) renderRockets(dst *core.Screen) {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)

	color := tracerColor(g.level)
	for i := range g.rockets {
		r := &g.rockets[i]
		lx, ly := r.Launch.ToCell(w, h)
		px, py := r.Pos.ToCell(w, h)
		dst.DrawLine(lx, ly, px, py, TracerChar, color)
		dst.SetCell(px, py, RocketChar, core.ColorBrightWhite)
	}
}

// tracerColor shifts rocket trails from green towards red as the level
// climbs.
func tracerColor(level int) core.Color {
	switch {
	case level <= 3:
		return core.ColorGreen
	case level <= 6:
		return core.ColorYellow
	case level <= 8:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

// renderBlasts draws interceptor blasts as filled discs. The aspect
// compensates for terminal cells being roughly twice as tall as wide.
func (g *Game) renderBlasts(dst *core.Screen) {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)
	base := g.cfg.Interceptor.BaseRadius

	// Interceptor tracers run from the battery at the ground line,
	// fading as the blast burns down
	battery := core.V(0, -h/2+g.cfg.Rockets.GroundHeight)
	bx, by := battery.ToCell(w, h)

	for i := range g.interceptors {
		b := &g.interceptors[i]
		cx, cy := b.Pos.ToCell(w, h)

		tracer := core.ColorWhite
		if b.Elapsed < g.cfg.Interceptor.Period/2 {
			tracer = core.ColorGray
		}
		dst.DrawLine(bx, by, cx, cy, TracerChar, tracer)

		radius := b.Radius(base)
		if radius <= 0 {
			continue
		}
		dst.FillDisc(cx, cy, radius, 2.0, BlastChar, core.ColorYellow)
		dst.SetCell(cx, cy, BlastCoreChar, core.ColorBrightYellow)
	}
}

// renderCursor draws the player crosshair.
func (g *Game) renderCursor(dst *core.Screen) {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)
	cx, cy := g.player.Pos.ToCell(w, h)

	width := int(g.cfg.Cursor.Width)
	for dx := 0; dx < width; dx++ {
		ch := CursorArmChar
		if dx == width/2 {
			ch = CursorCenterChar
		}
		dst.SetCell(cx+dx, cy, ch, core.ColorCyan)
	}
}

// renderHUD draws the score, level, and remaining lives.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	levelText := fmt.Sprintf("Level: %d", g.level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	// Lives as a bar on the bottom row, over the ground
	lives := int(g.player.Life)
	if lives < 0 {
		lives = 0
	}
	bar := "Life: "
	for i := 0; i < lives; i++ {
		bar += "■"
	}
	dst.DrawTextColored(1, dst.Height()-1, bar, core.ColorBrightWhite)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	health := int(g.player.Life)
	if health < 0 {
		health = 0
	}
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Health:   health,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("skyfall", func() registry.Game {
		return New()
	})
}

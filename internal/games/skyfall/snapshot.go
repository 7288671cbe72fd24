package skyfall

import (
	"math"

	"github.com/akarneev/skyfall/internal/core"
)

// Snapshot contains the complete game state for replay and save support.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	PlayerX     float64
	PlayerY     float64
	PlayerLife  float64
	Score       int
	Level       int
	State       string
	ShotTimeout float64
	LevelTimer  float64
	WaveDelay   float64

	// Rocket state (each rocket is 6 floats: X, Y, LaunchX, LaunchY,
	// Heading, Life)
	RocketCount int
	RocketData  []float64

	// Blast state (each blast is 3 floats: X, Y, Elapsed)
	BlastCount int
	BlastData  []float64

	// RNG state for the spawner
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	rocketData := make([]float64, len(g.rockets)*6)
	for i, r := range g.rockets {
		idx := i * 6
		rocketData[idx] = r.Pos.X
		rocketData[idx+1] = r.Pos.Y
		rocketData[idx+2] = r.Launch.X
		rocketData[idx+3] = r.Launch.Y
		rocketData[idx+4] = r.Heading
		rocketData[idx+5] = r.Life
	}

	blastData := make([]float64, len(g.interceptors)*3)
	for i, b := range g.interceptors {
		idx := i * 3
		blastData[idx] = b.Pos.X
		blastData[idx+1] = b.Pos.Y
		blastData[idx+2] = b.Elapsed
	}

	return Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PlayerX:     g.player.Pos.X,
		PlayerY:     g.player.Pos.Y,
		PlayerLife:  g.player.Life,
		Score:       g.score,
		Level:       g.level,
		State:       g.state,
		ShotTimeout: g.shotTimeout,
		LevelTimer:  g.levelTimer,
		WaveDelay:   g.spawner.Delay(),

		RocketCount: len(g.rockets),
		RocketData:  rocketData,
		BlastCount:  len(g.interceptors),
		BlastData:   blastData,

		RNGState: g.spawner.RNGState(),
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.player.Pos.X = snap.PlayerX
	g.player.Pos.Y = snap.PlayerY
	g.player.Life = snap.PlayerLife
	g.score = snap.Score
	g.level = snap.Level
	g.state = snap.State
	g.shotTimeout = snap.ShotTimeout
	g.levelTimer = snap.LevelTimer
	g.spawner.ResetDelay(snap.WaveDelay)

	g.rockets = make([]Rocket, 0, snap.RocketCount)
	for i := 0; i < snap.RocketCount; i++ {
		idx := i * 6
		if idx+5 < len(snap.RocketData) {
			g.rockets = append(g.rockets, Rocket{
				Pos:     core.V(snap.RocketData[idx], snap.RocketData[idx+1]),
				Launch:  core.V(snap.RocketData[idx+2], snap.RocketData[idx+3]),
				Heading: snap.RocketData[idx+4],
				Life:    snap.RocketData[idx+5],
			})
		}
	}

	g.interceptors = make([]Interceptor, 0, snap.BlastCount)
	for i := 0; i < snap.BlastCount; i++ {
		idx := i * 3
		if idx+2 < len(snap.BlastData) {
			g.interceptors = append(g.interceptors, Interceptor{
				Pos:     core.V(snap.BlastData[idx], snap.BlastData[idx+1]),
				Elapsed: snap.BlastData[idx+2],
			})
		}
	}

	g.spawner.RestoreRNGState(snap.RNGState)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerLife)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ShotTimeout)
	h = h*31 + math.Float64bits(snap.LevelTimer)
	h = h*31 + math.Float64bits(snap.WaveDelay)
	h = h*31 + uint64(snap.RocketCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlastCount)  //#nosec G115 -- hash computation

	for _, v := range snap.RocketData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BlastData {
		h = h*31 + math.Float64bits(v)
	}

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}

	h = h*31 + snap.RNGState
	return h
}

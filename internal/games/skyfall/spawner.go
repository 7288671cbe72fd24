package skyfall

import (
	"math"

	"github.com/akarneev/skyfall/internal/config"
	"github.com/akarneev/skyfall/internal/core"
)

// Spawner launches waves of rockets on a cooldown timer. All random
// draws go through its RNG so a fixed seed reproduces the same attack
// pattern.
type Spawner struct {
	rng   *SimpleRNG
	cfg   config.SpawnerConfig
	delay float64
}

// NewSpawner creates a spawner with the first wave due after the
// configured wave delay.
func NewSpawner(seed int64, cfg config.SpawnerConfig) *Spawner {
	return &Spawner{
		rng:   NewSimpleRNG(seed),
		cfg:   cfg,
		delay: cfg.WaveDelay,
	}
}

// Tick counts down towards the next wave.
func (s *Spawner) Tick(dt float64) {
	s.delay -= dt
}

// Due reports whether a wave should be launched this tick.
func (s *Spawner) Due() bool {
	return s.delay <= 0
}

// WaveSize draws the number of rockets for the next wave. The bounds
// grow with the current level; extra is added on top of the draw.
func (s *Spawner) WaveSize(level, extra int) int {
	return s.rng.IntRange(s.cfg.WaveMin+level, s.cfg.WaveMax+level) + extra
}

// SpawnWave creates count rockets at the top edge of the given play
// area. Each rocket gets a uniform horizontal position and a downward
// heading in [0.75*pi, 1.25*pi).
func (s *Spawner) SpawnWave(count int, screenW, screenH float64) []Rocket {
	rockets := make([]Rocket, 0, count)
	for i := 0; i < count; i++ {
		pos := core.V(s.rng.Float64()*screenW-screenW/2, screenH/2)
		heading := s.rng.Float64()*0.5*math.Pi + 0.75*math.Pi
		rockets = append(rockets, Rocket{
			Pos:     pos,
			Launch:  pos,
			Heading: heading,
			Life:    1.0,
		})
	}
	return rockets
}

// ResetDelay arms the cooldown for the next wave.
func (s *Spawner) ResetDelay(delay float64) {
	s.delay = delay
}

// Delay returns the remaining cooldown, for snapshots.
func (s *Spawner) Delay() float64 {
	return s.delay
}

// RNGState exposes the generator state, for snapshots.
func (s *Spawner) RNGState() uint64 {
	return s.rng.State()
}

// RestoreRNGState restores the generator state from a snapshot.
func (s *Spawner) RestoreRNGState(state uint64) {
	s.rng.SetState(state)
}

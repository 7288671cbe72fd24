package skyfall

import (
	"math"
	"testing"

	"github.com/akarneev/skyfall/internal/config"
)

func testSpawnerConfig() config.SpawnerConfig {
	return config.SpawnerConfig{
		WaveDelay: 4.0,
		LevelTime: 15.0,
		WaveMin:   1,
		WaveMax:   3,
	}
}

func TestSimpleRNGDeterminism(t *testing.T) {
	r1 := NewSimpleRNG(42)
	r2 := NewSimpleRNG(42)

	for i := 0; i < 100; i++ {
		if r1.Next() != r2.Next() {
			t.Fatalf("RNG diverged at draw %d", i)
		}
	}
}

func TestSimpleRNGZeroSeed(t *testing.T) {
	r := NewSimpleRNG(0)
	if r.State() == 0 {
		t.Error("Zero seed left the generator stuck at zero")
	}
}

func TestSimpleRNGFloat64Range(t *testing.T) {
	r := NewSimpleRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want [0, 1)", v)
		}
	}
}

func TestSimpleRNGIntRange(t *testing.T) {
	r := NewSimpleRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.IntRange(2, 5)
		if v < 2 || v >= 5 {
			t.Fatalf("IntRange(2, 5) = %d", v)
		}
	}

	if got := r.IntRange(3, 3); got != 3 {
		t.Errorf("IntRange on empty range = %d, want 3", got)
	}
}

func TestSpawnerCooldown(t *testing.T) {
	s := NewSpawner(1, testSpawnerConfig())

	dt := 1.0 / 60.0
	for i := 0; i < 239; i++ {
		s.Tick(dt)
	}
	if s.Due() {
		t.Error("Wave due before the delay elapsed")
	}

	s.Tick(dt)
	if !s.Due() {
		t.Error("Wave not due after the delay elapsed")
	}

	s.ResetDelay(2.0)
	if s.Due() {
		t.Error("Wave still due after reset")
	}
	if s.Delay() != 2.0 {
		t.Errorf("Delay = %v, want 2.0", s.Delay())
	}
}

func TestSpawnerWaveSize(t *testing.T) {
	s := NewSpawner(1, testSpawnerConfig())

	for level := 1; level <= 5; level++ {
		for i := 0; i < 100; i++ {
			n := s.WaveSize(level, 0)
			if n < 1+level || n >= 3+level {
				t.Fatalf("WaveSize(level=%d) = %d, want [%d, %d)", level, n, 1+level, 3+level)
			}
		}
	}

	// Difficulty extras are added on top of the draw
	n := s.WaveSize(1, 2)
	if n < 4 || n >= 6 {
		t.Errorf("WaveSize(1, extra=2) = %d, want [4, 6)", n)
	}
}

func TestSpawnerWaveGeometry(t *testing.T) {
	s := NewSpawner(9, testSpawnerConfig())

	rockets := s.SpawnWave(50, 80, 24)
	if len(rockets) != 50 {
		t.Fatalf("SpawnWave(50) produced %d rockets", len(rockets))
	}

	for i, r := range rockets {
		if r.Pos != r.Launch {
			t.Errorf("Rocket %d: position %v differs from launch %v", i, r.Pos, r.Launch)
		}
		if r.Pos.Y != 12 {
			t.Errorf("Rocket %d: Y = %v, want 12", i, r.Pos.Y)
		}
		if r.Pos.X < -40 || r.Pos.X >= 40 {
			t.Errorf("Rocket %d: X = %v, want [-40, 40)", i, r.Pos.X)
		}
		if r.Heading < 0.75*math.Pi || r.Heading >= 1.25*math.Pi {
			t.Errorf("Rocket %d: heading = %v, want [0.75pi, 1.25pi)", i, r.Heading)
		}
		if r.Life != 1.0 {
			t.Errorf("Rocket %d: life = %v, want 1.0", i, r.Life)
		}
	}
}

func TestSpawnerRNGStateRoundTrip(t *testing.T) {
	s1 := NewSpawner(5, testSpawnerConfig())
	s1.SpawnWave(3, 80, 24)

	s2 := NewSpawner(1, testSpawnerConfig())
	s2.RestoreRNGState(s1.RNGState())

	w1 := s1.SpawnWave(3, 80, 24)
	w2 := s2.SpawnWave(3, 80, 24)
	for i := range w1 {
		if w1[i] != w2[i] {
			t.Fatalf("Restored spawner diverged at rocket %d", i)
		}
	}
}

func TestBlastRadiusParabola(t *testing.T) {
	base := 1.8

	// Zero at both ends of the five second lifetime
	if r := BlastRadius(base, 5.0); math.Abs(r) > 1e-9 {
		t.Errorf("BlastRadius at birth = %v, want 0", r)
	}
	if r := BlastRadius(base, 0.0); math.Abs(r) > 1e-9 {
		t.Errorf("BlastRadius at expiry = %v, want 0", r)
	}

	// Peak of 2.5x base in the middle
	if r := BlastRadius(base, 2.5); math.Abs(r-base*2.5) > 1e-9 {
		t.Errorf("BlastRadius at peak = %v, want %v", r, base*2.5)
	}

	// Symmetric around the midpoint
	if r1, r2 := BlastRadius(base, 1.0), BlastRadius(base, 4.0); math.Abs(r1-r2) > 1e-9 {
		t.Errorf("BlastRadius asymmetric: %v != %v", r1, r2)
	}

	// Monotonic growth on the first half of the animation
	prev := BlastRadius(base, 5.0)
	for e := 4.9; e >= 2.5; e -= 0.1 {
		cur := BlastRadius(base, e)
		if cur <= prev {
			t.Fatalf("BlastRadius not growing at elapsed %v", e)
		}
		prev = cur
	}
}

func TestInterceptorAging(t *testing.T) {
	b := Interceptor{Elapsed: 5.0}

	// The animation runs three times faster than real time
	b.Age(3.0, 1.0/60.0)
	if math.Abs(b.Elapsed-4.95) > 1e-9 {
		t.Errorf("Elapsed = %v after one tick, want 4.95", b.Elapsed)
	}

	if b.Expired() {
		t.Error("Blast expired with time remaining")
	}
	b.Elapsed = 0
	if !b.Expired() {
		t.Error("Blast not expired at zero")
	}
}

func TestRocketAdvance(t *testing.T) {
	r := Rocket{Heading: math.Pi, Life: 1.0}

	// Straight down: heading pi points along -Y
	r.Advance(4.5, 1.0)
	if math.Abs(r.Pos.X) > 1e-9 || math.Abs(r.Pos.Y+4.5) > 1e-9 {
		t.Errorf("Rocket at %v after 1s straight down, want (0, -4.5)", r.Pos)
	}
}

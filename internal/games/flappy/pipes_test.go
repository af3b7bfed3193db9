package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestNewPipe(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		p := NewPipe(cfg.World, cfg.Obstacles, rng)
		if p.X != 318 {
			t.Fatalf("spawn x = %v, expected 318", p.X)
		}
		if p.GapTop < 100 || p.GapTop >= 300 {
			t.Fatalf("gap top %v outside [100, 300)", p.GapTop)
		}
		if p.GapTop != math.Trunc(p.GapTop) {
			t.Fatalf("gap top %v should be a whole number", p.GapTop)
		}
		if p.Passed {
			t.Fatal("new pipe must not be passed")
		}
	}
}

func TestPipeShapes(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	for _, gapTop := range []float64{100, 187, 299} {
		lower, upper := Pipe{X: 120, GapTop: gapTop}.Shapes(cfg.Obstacles)

		if lower.X != 120 || lower.Y != gapTop || lower.W != 52 || lower.H != 320 {
			t.Errorf("lower = %+v", lower)
		}
		if upper.Y != gapTop-100-320 || upper.W != 52 || upper.H != 320 {
			t.Errorf("upper = %+v", upper)
		}
		if gap := lower.Y - upper.Bottom(); gap != 100 {
			t.Errorf("vertical gap = %v, expected 100", gap)
		}
		if lower.Intersects(upper) {
			t.Error("barriers must not overlap")
		}
	}
}

func TestPipeScrollAndEviction(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := NewStream(cfg.World, cfg.Obstacles)
	s.SpawnIfNeeded(rand.New(rand.NewSource(1)))

	for k := 1; k <= 183; k++ {
		s.Advance()
		if s.Len() != 1 {
			t.Fatalf("tick %d: pipe evicted early", k)
		}
		if want := 318 - float64(k)*2; s.pipes[0].X != want {
			t.Fatalf("tick %d: x = %v, expected %v", k, s.pipes[0].X, want)
		}
	}

	// x = -50 is the cutoff
	s.Advance()
	if s.Len() != 0 {
		t.Errorf("pipe at x=-50 should be evicted, have %d pipes", s.Len())
	}
}

func TestStreamSpawnCadence(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := NewStream(cfg.World, cfg.Obstacles)
	rng := rand.New(rand.NewSource(3))

	if !s.SpawnIfNeeded(rng) {
		t.Fatal("empty stream should spawn")
	}
	if s.SpawnIfNeeded(rng) {
		t.Fatal("should not spawn while the newest pipe is right of the threshold")
	}

	for tick := 0; tick < 5000; tick++ {
		before := s.Len()
		s.SpawnIfNeeded(rng)
		if s.Len() > before+1 {
			t.Fatalf("tick %d: spawned %d pipes", tick, s.Len()-before)
		}
		s.Advance()

		pipes := s.Pipes()
		for i := 1; i < len(pipes); i++ {
			if d := pipes[i].X - pipes[i-1].X; d != 182 {
				t.Fatalf("tick %d: spacing %v between pipes %d and %d, expected 182", tick, d, i-1, i)
			}
		}
	}
}

func TestStreamDetectPassed(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := NewStream(cfg.World, cfg.Obstacles)
	s.pipes = append(s.pipes,
		Pipe{X: -3, GapTop: 150},  // right edge 49, left of the bird
		Pipe{X: -2, GapTop: 150},  // right edge 50, not strictly left
		Pipe{X: 100, GapTop: 150}, // ahead
	)

	if got := s.DetectPassed(50); got != 1 {
		t.Errorf("DetectPassed() = %d, expected 1", got)
	}
	if got := s.DetectPassed(50); got != 0 {
		t.Errorf("second DetectPassed() = %d, expected 0", got)
	}

	pipes := s.Pipes()
	if !pipes[0].Passed || pipes[1].Passed || pipes[2].Passed {
		t.Errorf("passed flags = %v %v %v", pipes[0].Passed, pipes[1].Passed, pipes[2].Passed)
	}

	// Passed never reverts, even if asked about a bird further left
	s.DetectPassed(-1000)
	if !s.Pipes()[0].Passed {
		t.Error("passed flag must be monotonic")
	}
}

func TestStreamPipesIsACopy(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := NewStream(cfg.World, cfg.Obstacles)
	s.SpawnIfNeeded(rand.New(rand.NewSource(1)))

	pipes := s.Pipes()
	pipes[0].X = 0
	if s.pipes[0].X == 0 {
		t.Error("Pipes() must not alias the stream")
	}
}

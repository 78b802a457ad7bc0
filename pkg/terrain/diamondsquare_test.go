package terrain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGenerateRandom_GridSize(t *testing.T) {
	tests := []struct {
		iterations int
		side       int
	}{
		{0, 2},
		{1, 3},
		{2, 5},
		{3, 9},
		{5, 33},
	}

	for _, tt := range tests {
		rng := rand.New(rand.NewSource(1))
		field, err := GenerateRandom(rng, 1.0, 10.0, tt.iterations)
		if err != nil {
			t.Fatalf("GenerateRandom(iterations=%d) failed: %v", tt.iterations, err)
		}
		if field.Width() != tt.side || field.Height() != tt.side {
			t.Errorf("iterations=%d: expected %dx%d grid, got %dx%d",
				tt.iterations, tt.side, tt.side, field.Width(), field.Height())
		}
	}
}

func TestGenerateRandom_Deterministic(t *testing.T) {
	a, err := GenerateRandom(rand.New(rand.NewSource(42)), 1.0, 10.0, 5)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}
	b, err := GenerateRandom(rand.New(rand.NewSource(42)), 1.0, 10.0, 5)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("same seed diverged at (%d,%d): %g vs %g", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}

func TestGenerateRandom_SeedChangesOutput(t *testing.T) {
	a, err := GenerateRandom(rand.New(rand.NewSource(1)), 1.0, 10.0, 5)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}
	b, err := GenerateRandom(rand.New(rand.NewSource(2)), 1.0, 10.0, 5)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y) != b.At(x, y) {
				return
			}
		}
	}
	t.Error("different seeds produced identical fields")
}

func TestGenerateRandom_CornerSeeds(t *testing.T) {
	// Corners keep the seed values they are given; no displacement pass
	// touches them, so they stay within [0, maxSeedHeight).
	const maxSeed = 8.0

	field, err := GenerateRandom(rand.New(rand.NewSource(7)), 1.0, maxSeed, 4)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}

	side := field.Width()
	corners := [][2]int{{0, 0}, {side - 1, 0}, {0, side - 1}, {side - 1, side - 1}}
	for _, c := range corners {
		h := field.At(c[0], c[1])
		if h < 0 || h >= maxSeed {
			t.Errorf("corner (%d,%d): expected value in [0,%g), got %g", c[0], c[1], float32(maxSeed), h)
		}
	}
}

func TestGenerateRandom_ValuesFinite(t *testing.T) {
	field, err := GenerateRandom(rand.New(rand.NewSource(3)), 0.75, 20.0, 6)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}

	for y := 0; y < field.Height(); y++ {
		for x := 0; x < field.Width(); x++ {
			if !finite(field.At(x, y)) {
				t.Fatalf("non-finite elevation %g at (%d,%d)", field.At(x, y), x, y)
			}
		}
	}
}

func TestGenerateRandom_RoughnessSmooths(t *testing.T) {
	// Higher roughness decays the displacement range faster, so the surface
	// ends up with smaller local jumps on average.
	rough, err := GenerateRandom(rand.New(rand.NewSource(11)), 0.2, 10.0, 6)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}
	smooth, err := GenerateRandom(rand.New(rand.NewSource(11)), 2.5, 10.0, 6)
	if err != nil {
		t.Fatalf("GenerateRandom failed: %v", err)
	}

	if meanStep(rough) <= meanStep(smooth) {
		t.Errorf("expected rougher surface to have larger steps: rough %g, smooth %g",
			meanStep(rough), meanStep(smooth))
	}
}

// meanStep averages the absolute elevation difference between horizontal
// neighbors.
func meanStep(f *HeightField) float64 {
	var sum float64
	var n int
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width()-1; x++ {
			d := float64(f.At(x+1, y) - f.At(x, y))
			if d < 0 {
				d = -d
			}
			sum += d
			n++
		}
	}
	return sum / float64(n)
}

func TestGenerateRandom_Invalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		call func() (*HeightField, error)
	}{
		{"negative iterations", func() (*HeightField, error) {
			return GenerateRandom(rng, 1.0, 10.0, -1)
		}},
		{"excessive iterations", func() (*HeightField, error) {
			return GenerateRandom(rng, 1.0, 10.0, 31)
		}},
		{"nil rng", func() (*HeightField, error) {
			return GenerateRandom(nil, 1.0, 10.0, 2)
		}},
		{"NaN roughness", func() (*HeightField, error) {
			return GenerateRandom(rng, nan32(), 10.0, 2)
		}},
		{"NaN seed height", func() (*HeightField, error) {
			return GenerateRandom(rng, 1.0, nan32(), 2)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

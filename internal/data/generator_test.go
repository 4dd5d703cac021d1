package data

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/sortviz/internal/config"
)

func TestGenerateSizeAndBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name       string
		n, lo, hi  int
		expectSize int
	}{
		{"default range", 100, 0, 100, 100},
		{"negative range", 50, -20, -5, 50},
		{"single value range", 10, 7, 7, 10},
		{"empty", 0, 0, 10, 0},
		{"inverted range", 5, 10, 0, 0},
		{"up to max int", 20, 0, math.MaxInt, 20},
		{"full int range", 20, math.MinInt, math.MaxInt, 20},
		{"above half range", 20, math.MinInt + 1, math.MaxInt, 20},
		{"top value only", 3, math.MaxInt, math.MaxInt, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values := Generate(rng, tc.n, tc.lo, tc.hi)
			if len(values) != tc.expectSize {
				t.Fatalf("len = %d, expected %d", len(values), tc.expectSize)
			}
			for i, v := range values {
				if v < tc.lo || v > tc.hi {
					t.Errorf("values[%d] = %d outside [%d, %d]", i, v, tc.lo, tc.hi)
				}
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(99)), 30, 0, 100)
	b := Generate(rand.New(rand.NewSource(99)), 30, 0, 100)

	if !slices.Equal(a, b) {
		t.Error("same seed should produce the same data")
	}
}

func TestGenerateCoversBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	values := Generate(rng, 2000, 0, 3)

	seen := make(map[int]bool)
	for _, v := range values {
		seen[v] = true
	}
	for v := 0; v <= 3; v++ {
		if !seen[v] {
			t.Errorf("value %d never generated; bounds should be inclusive", v)
		}
	}
}

func TestFromSettings(t *testing.T) {
	s := config.Settings{Size: 25, Min: 10, Max: 20}
	values := FromSettings(rand.New(rand.NewSource(3)), s)

	if len(values) != 25 {
		t.Fatalf("len = %d, expected 25", len(values))
	}
	if slices.Min(values) < 10 || slices.Max(values) > 20 {
		t.Errorf("values out of bounds: %v", values)
	}
}

package simulate

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func TestRandomBeta(t *testing.T) {
	tests := []struct {
		name        string
		p           int
		density     float64
		scale       float64
		wantNonzero int
	}{
		{name: "sparse", p: 10, density: 0.3, scale: 2.0, wantNonzero: 3},
		{name: "empty", p: 10, density: 0.0, scale: 2.0, wantNonzero: 0},
		{name: "dense", p: 10, density: 1.0, scale: 2.0, wantNonzero: 10},
		{name: "rounded up", p: 7, density: 0.5, scale: 1.0, wantNonzero: 4}, // round(3.5) = 4
		{name: "density above one is clamped", p: 5, density: 2.0, scale: 1.0, wantNonzero: 5},
		{name: "negative density is clamped", p: 5, density: -1.0, scale: 1.0, wantNonzero: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beta := RandomBeta(rand.New(rand.NewSource(7)), tt.p, tt.density, tt.scale)

			if beta.Len() != tt.p {
				t.Fatalf("Len() = %d, want %d", beta.Len(), tt.p)
			}

			nonzero := 0
			for i := 0; i < beta.Len(); i++ {
				v := beta.AtVec(i)
				if v != 0 {
					nonzero++
				}
				if math.Abs(v) > tt.scale {
					t.Errorf("beta[%d] = %v, want |v| <= %v", i, v, tt.scale)
				}
			}
			if nonzero != tt.wantNonzero {
				t.Errorf("nonzero count = %d, want %d", nonzero, tt.wantNonzero)
			}
		})
	}
}

func TestRandomBeta_Deterministic(t *testing.T) {
	first := RandomBeta(rand.New(rand.NewSource(99)), 20, 0.4, 3.0)
	second := RandomBeta(rand.New(rand.NewSource(99)), 20, 0.4, 3.0)

	if !mat.Equal(first, second) {
		t.Error("same seed produced different coefficient vectors")
	}
}

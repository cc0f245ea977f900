package penalty

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const tolerance = 1e-12

func vecApproxEqual(t *testing.T, got *mat.VecDense, want []float64) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("gradient length = %d, want %d", got.Len(), len(want))
	}
	for i, w := range want {
		if math.Abs(got.AtVec(i)-w) > tolerance {
			t.Errorf("grad[%d] = %v, want %v", i, got.AtVec(i), w)
		}
	}
}

func TestL1(t *testing.T) {
	tests := []struct {
		name      string
		lambda    float64
		beta      []float64
		wantValue float64
		wantGrad  []float64
	}{
		{
			name:      "mixed signs",
			lambda:    0.5,
			beta:      []float64{2, -3, 0},
			wantValue: 2.5,
			wantGrad:  []float64{0.5, -0.5, 0},
		},
		{
			name:      "zero weight",
			lambda:    0,
			beta:      []float64{1, -1},
			wantValue: 0,
			wantGrad:  []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewL1(tt.lambda)
			beta := mat.NewVecDense(len(tt.beta), tt.beta)

			if got := p.Value(beta); math.Abs(got-tt.wantValue) > tolerance {
				t.Errorf("Value() = %v, want %v", got, tt.wantValue)
			}
			vecApproxEqual(t, p.Grad(beta), tt.wantGrad)
		})
	}

	if got := NewL1(1).Name(); got != "l1" {
		t.Errorf("Name() = %q, want %q", got, "l1")
	}
}

func TestL1_DeterministicAtZero(t *testing.T) {
	p := NewL1(2.0)
	beta := mat.NewVecDense(3, []float64{0, 0, 0})

	first := p.Grad(beta)
	second := p.Grad(beta)
	if !mat.Equal(first, second) {
		t.Error("subgradient at zero must be deterministic")
	}
	vecApproxEqual(t, first, []float64{0, 0, 0})
}

func TestL2(t *testing.T) {
	p := NewL2(2.0)
	beta := mat.NewVecDense(3, []float64{1, -2, 0.5})

	// (2/2) * (1 + 4 + 0.25)
	if got, want := p.Value(beta), 5.25; math.Abs(got-want) > tolerance {
		t.Errorf("Value() = %v, want %v", got, want)
	}

	vecApproxEqual(t, p.Grad(beta), []float64{2, -4, 1})

	if got := p.Name(); got != "l2_squared" {
		t.Errorf("Name() = %q, want %q", got, "l2_squared")
	}
}

func TestElasticNet(t *testing.T) {
	tests := []struct {
		name      string
		lambda    float64
		rho       float64
		beta      []float64
		wantValue float64
		wantGrad  []float64
	}{
		{
			name:      "balanced mix",
			lambda:    1.0,
			rho:       0.5,
			beta:      []float64{2, -2},
			wantValue: 0.5*4 + 0.25*8, // rho*|beta|_1 + (1-rho)/2*|beta|_2^2
			wantGrad:  []float64{0.5 + 1, -0.5 - 1},
		},
		{
			name:      "rho one reduces to l1",
			lambda:    0.5,
			rho:       1.0,
			beta:      []float64{3, -1},
			wantValue: 2,
			wantGrad:  []float64{0.5, -0.5},
		},
		{
			name:      "rho zero reduces to l2",
			lambda:    2.0,
			rho:       0.0,
			beta:      []float64{1, -2},
			wantValue: 5,
			wantGrad:  []float64{2, -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewElasticNet(tt.lambda, tt.rho)
			beta := mat.NewVecDense(len(tt.beta), tt.beta)

			if got := p.Value(beta); math.Abs(got-tt.wantValue) > tolerance {
				t.Errorf("Value() = %v, want %v", got, tt.wantValue)
			}
			vecApproxEqual(t, p.Grad(beta), tt.wantGrad)
		})
	}

	if got := NewElasticNet(1, 0.5).Name(); got != "elastic_net" {
		t.Errorf("Name() = %q, want %q", got, "elastic_net")
	}
}

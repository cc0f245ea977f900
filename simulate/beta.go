package simulate

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// RandomBeta draws a sparse coefficient vector of length p. Approximately
// density*p coordinates (rounded to the nearest integer) are set to values
// uniform in [-scale, scale]; the remaining coordinates stay zero.
func RandomBeta(rng *rand.Rand, p int, density, scale float64) *mat.VecDense {
	beta := mat.NewVecDense(p, nil)

	nonzero := int(math.Round(density * float64(p)))
	switch {
	case nonzero < 0:
		nonzero = 0
	case nonzero > p:
		nonzero = p
	}

	for _, i := range rng.Perm(p)[:nonzero] {
		beta.SetVec(i, scale*(2*rng.Float64()-1))
	}

	return beta
}

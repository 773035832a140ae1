package traffic

import (
	"math"
	"math/rand"
	"testing"
)

func TestPoissonRand_MeanMatchesRate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	lambda := 20.0
	n := 20000
	sum := 0
	for i := 0; i < n; i++ {
		sum += poissonRand(rng, lambda)
	}
	mean := float64(sum) / float64(n)
	if math.Abs(mean-lambda)/lambda > 0.03 {
		t.Errorf("poisson mean = %.2f, want ≈ %.0f (within 3%%)", mean, lambda)
	}
}

func TestPoissonRand_VarianceMatchesRate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	lambda := 10.0
	n := 20000
	samples := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		samples[i] = float64(poissonRand(rng, lambda))
		sum += samples[i]
	}
	mean := sum / float64(n)
	variance := 0.0
	for _, s := range samples {
		variance += (s - mean) * (s - mean)
	}
	variance /= float64(n)
	if math.Abs(variance-lambda)/lambda > 0.1 {
		t.Errorf("poisson variance = %.2f, want ≈ %.0f (within 10%%)", variance, lambda)
	}
}

func TestPoissonRand_LargeRateUsesSplit(t *testing.T) {
	// Rates beyond the split threshold go through the halving path;
	// exp(-lambda) would underflow to 0 and loop forever otherwise.
	rng := rand.New(rand.NewSource(42))
	lambda := 1000.0
	n := 2000
	sum := 0
	for i := 0; i < n; i++ {
		sum += poissonRand(rng, lambda)
	}
	mean := float64(sum) / float64(n)
	if math.Abs(mean-lambda)/lambda > 0.02 {
		t.Errorf("poisson mean = %.1f, want ≈ %.0f (within 2%%)", mean, lambda)
	}
}

func TestPoissonRand_NonPositiveRate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := poissonRand(rng, 0); got != 0 {
		t.Errorf("poissonRand(0) = %d, want 0", got)
	}
	if got := poissonRand(rng, -3); got != 0 {
		t.Errorf("poissonRand(-3) = %d, want 0", got)
	}
}

func TestPoissonRand_DeterministicGivenSeed(t *testing.T) {
	rng1 := rand.New(rand.NewSource(99))
	rng2 := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		v1 := poissonRand(rng1, 15)
		v2 := poissonRand(rng2, 15)
		if v1 != v2 {
			t.Fatalf("draw %d: %d vs %d, want identical for identical seeds", i, v1, v2)
		}
	}
}

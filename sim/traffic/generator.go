package traffic

import (
	"math/rand"

	"github.com/traffic-sim/traffic-sim/sim"
)

// vehicleWeights is the discrete set of per-vehicle load units.
var vehicleWeights = []int64{1, 2, 3}

// Vehicle priorities are drawn uniformly from 1..maxPriority. Priority is
// recorded but inert: neither assignment policy consults it.
const maxPriority = 5

// Generator produces the per-hour vehicle batches for a run. It implements
// sim.TrafficSource. Draws happen lazily, when the engine executes the
// hour's generation event, and the sequence is not restartable: a fresh
// Generator (or a re-seeded RNG) is required for every independent run.
type Generator struct {
	peakStart int64
	peakEnd   int64
	baseRate  int64
	rng       *rand.Rand
	nextID    int64
}

// NewGenerator creates a generator for the scenario's peak window and base
// rate, drawing all randomness from the supplied RNG stream.
func NewGenerator(scn *Scenario, rng *rand.Rand) *Generator {
	return &Generator{
		peakStart: scn.PeakStart,
		peakEnd:   scn.PeakEnd,
		baseRate:  scn.BaseRate,
		rng:       rng,
	}
}

// IsPeak reports whether the given hour falls inside the peak window
// (inclusive on both ends).
func (g *Generator) IsPeak(hour int64) bool {
	return g.peakStart <= hour && hour <= g.peakEnd
}

// HourBatch implements sim.TrafficSource. The arrival count is
// Poisson-distributed with the full base rate during peak hours and half
// of it (integer floor) off-peak.
func (g *Generator) HourBatch(hour int64) []*sim.Vehicle {
	rate := g.baseRate
	if !g.IsPeak(hour) {
		rate = g.baseRate / 2
	}

	n := poissonRand(g.rng, float64(rate))
	batch := make([]*sim.Vehicle, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, &sim.Vehicle{
			ID:          g.nextID,
			Weight:      vehicleWeights[g.rng.Intn(len(vehicleWeights))],
			Priority:    1 + g.rng.Intn(maxPriority),
			ArrivalHour: hour,
			State:       sim.VehicleStatePending,
		})
		g.nextID++
	}
	return batch
}

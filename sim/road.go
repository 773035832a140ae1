package sim

// Road is a named, capacity-bounded stretch of highway. CurrentLoad is the
// summed weight of vehicles currently occupying it; History is the
// append-only sequence of occupancy ratios recorded each time a vehicle
// finishes its hold. len(History) therefore equals the number of vehicle
// processes that fully completed (hold + release) against this road.
type Road struct {
	Name        string
	Capacity    int64
	CurrentLoad int64
	History     []float64
}

// NewRoad creates a road with zero load and empty history.
// Capacity must be positive; scenario validation rejects anything else
// before a simulator is built.
func NewRoad(name string, capacity int64) *Road {
	return &Road{
		Name:     name,
		Capacity: capacity,
		History:  make([]float64, 0),
	}
}

// Utilization returns CurrentLoad/Capacity. Values above 1.0 are legal
// (the knapsack policy admits unconditionally) and are never clamped.
func (r *Road) Utilization() float64 {
	return float64(r.CurrentLoad) / float64(r.Capacity)
}

// HasRoom reports whether a vehicle of the given weight fits without
// exceeding capacity.
func (r *Road) HasRoom(weight int64) bool {
	return r.CurrentLoad+weight <= r.Capacity
}

// Admit adds weight to the road's load. No capacity check: callers that
// want admission control must check HasRoom first.
func (r *Road) Admit(weight int64) {
	r.CurrentLoad += weight
}

// Release removes weight from the road's load, floored at zero so a
// double release can never drive the counter negative.
func (r *Road) Release(weight int64) {
	r.CurrentLoad -= weight
	if r.CurrentLoad < 0 {
		r.CurrentLoad = 0
	}
}

// RecordUtilization appends the current occupancy ratio to History.
// Called once per completed vehicle process, after its release.
func (r *Road) RecordUtilization() {
	r.History = append(r.History, r.Utilization())
}

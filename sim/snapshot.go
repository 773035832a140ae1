package sim

import "gonum.org/v1/gonum/stat"

// RoadStatus is a read-only view of one road's instantaneous state.
type RoadStatus struct {
	Name        string
	CurrentLoad int64
	Capacity    int64
	Utilization float64
}

// Snapshot is a read-only view of live simulation state, queryable per
// tick. It is recomputed on demand for display purposes and never
// persisted; the completed-run report is the durable output.
type Snapshot struct {
	Hour  int64
	Roads []RoadStatus

	// SystemCongestion is min(1, mean utilization across roads). Clamped
	// at 1 for display, unlike per-road utilization which may exceed it.
	SystemCongestion float64
}

// TakeSnapshot captures the current per-road loads and system congestion.
func (s *Simulator) TakeSnapshot() Snapshot {
	snap := Snapshot{
		Hour:  s.Clock,
		Roads: make([]RoadStatus, 0, len(s.Roads)),
	}
	ratios := make([]float64, 0, len(s.Roads))
	for _, r := range s.Roads {
		u := r.Utilization()
		ratios = append(ratios, u)
		snap.Roads = append(snap.Roads, RoadStatus{
			Name:        r.Name,
			CurrentLoad: r.CurrentLoad,
			Capacity:    r.Capacity,
			Utilization: u,
		})
	}
	if len(ratios) > 0 {
		congestion := stat.Mean(ratios, nil)
		if congestion > 1 {
			congestion = 1
		}
		snap.SystemCongestion = congestion
	}
	return snap
}

package report

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// HighCongestionThreshold is the occupancy ratio above which an hour counts
// as highly congested in road summaries.
const HighCongestionThreshold = 0.7

// RoadSummary aggregates one road's congestion history.
type RoadSummary struct {
	Name                string
	Capacity            int64
	Completed           int     // vehicle processes that ran to release
	AvgCongestion       float64 // mean of History
	PeakCongestion      float64 // max of History
	MinCongestion       float64 // min of History
	HighCongestionHours int     // entries above HighCongestionThreshold
	TotalThroughput     float64 // Σ ratio × capacity over History
}

// RunSummary aggregates statistics from a RunRecord.
type RunSummary struct {
	Policy    string
	Horizon   int64
	FinalHour int64
	Generated int
	Assigned  int
	Dropped   int
	Released  int
	Roads     []RoadSummary
}

// Summarize computes aggregate statistics from a completed-run record.
// Safe for nil records and roads with empty histories (zero-value fields).
func Summarize(rec *RunRecord) *RunSummary {
	summary := &RunSummary{}
	if rec == nil {
		return summary
	}

	summary.Policy = rec.Policy
	summary.Horizon = rec.Horizon
	summary.FinalHour = rec.FinalHour
	summary.Generated = rec.Generated
	summary.Assigned = rec.Assigned
	summary.Dropped = rec.Dropped
	summary.Released = rec.Released

	summary.Roads = make([]RoadSummary, 0, len(rec.Roads))
	for _, road := range rec.Roads {
		summary.Roads = append(summary.Roads, summarizeRoad(road))
	}
	return summary
}

func summarizeRoad(road RoadRecord) RoadSummary {
	rs := RoadSummary{
		Name:      road.Name,
		Capacity:  road.Capacity,
		Completed: len(road.History),
	}
	if len(road.History) == 0 {
		return rs
	}

	rs.AvgCongestion = stat.Mean(road.History, nil)
	rs.PeakCongestion = floats.Max(road.History)
	rs.MinCongestion = floats.Min(road.History)
	for _, ratio := range road.History {
		if ratio > HighCongestionThreshold {
			rs.HighCongestionHours++
		}
		rs.TotalThroughput += ratio * float64(road.Capacity)
	}
	return rs
}

// Print displays the run summary at the end of the simulation.
func (s *RunSummary) Print() {
	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Policy               : %s\n", s.Policy)
	fmt.Printf("Horizon              : %d hours\n", s.Horizon)
	fmt.Printf("Vehicles Generated   : %d\n", s.Generated)
	fmt.Printf("Vehicles Assigned    : %d\n", s.Assigned)
	fmt.Printf("Vehicles Dropped     : %d\n", s.Dropped)
	fmt.Printf("Vehicles Released    : %d\n", s.Released)
	for _, r := range s.Roads {
		fmt.Printf("--- %s (capacity %d) ---\n", r.Name, r.Capacity)
		fmt.Printf("Average Congestion   : %.2f%%\n", r.AvgCongestion*100)
		fmt.Printf("Peak Congestion      : %.2f%%\n", r.PeakCongestion*100)
		fmt.Printf("Minimum Congestion   : %.2f%%\n", r.MinCongestion*100)
		fmt.Printf("High Congestion (>%.0f%%): %d hours\n", HighCongestionThreshold*100, r.HighCongestionHours)
		fmt.Printf("Total Throughput     : %.0f vehicles\n", r.TotalThroughput)
	}
}

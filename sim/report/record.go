// Package report provides pure-data records and summaries for completed
// simulation runs. It has no dependency on sim/ — downstream collaborators
// (chart and document generators) consume these types without pulling in
// the engine.
package report

// RoadRecord captures one road's identity and full congestion history at
// the end of a run. History holds one occupancy ratio per completed
// vehicle process; ratios above 1.0 are legal under the knapsack policy.
type RoadRecord struct {
	Name     string
	Capacity int64
	History  []float64
}

// RunRecord captures everything a completed (or stopped) run produced.
type RunRecord struct {
	Policy    string
	Horizon   int64
	FinalHour int64 // last hour the clock reached; < Horizon when stopped early
	Generated int
	Assigned  int
	Dropped   int
	Released  int
	Roads     []RoadRecord
}

package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_RoadStatistics(t *testing.T) {
	rec := &RunRecord{
		Policy:    "knapsack",
		Horizon:   24,
		FinalHour: 24,
		Generated: 4,
		Assigned:  4,
		Released:  4,
		Roads: []RoadRecord{
			{Name: "Mandela", Capacity: 100, History: []float64{0.2, 0.8, 0.5, 0.9}},
		},
	}

	s := Summarize(rec)
	assert.Len(t, s.Roads, 1)

	road := s.Roads[0]
	assert.Equal(t, "Mandela", road.Name)
	assert.Equal(t, 4, road.Completed)
	assert.InDelta(t, 0.6, road.AvgCongestion, 1e-9)
	assert.Equal(t, 0.9, road.PeakCongestion)
	assert.Equal(t, 0.2, road.MinCongestion)
	assert.Equal(t, 2, road.HighCongestionHours) // 0.8 and 0.9 exceed 0.7
	assert.InDelta(t, 240.0, road.TotalThroughput, 1e-9)
}

func TestSummarize_RatiosAboveOneCountTowardThroughput(t *testing.T) {
	// Knapsack overload: ratios above 1.0 are legal and must flow through
	// unclamped.
	rec := &RunRecord{
		Roads: []RoadRecord{
			{Name: "A", Capacity: 10, History: []float64{1.5, 2.0}},
		},
	}

	road := Summarize(rec).Roads[0]
	assert.Equal(t, 2.0, road.PeakCongestion)
	assert.Equal(t, 2, road.HighCongestionHours)
	assert.InDelta(t, 35.0, road.TotalThroughput, 1e-9)
}

func TestSummarize_EmptyHistory(t *testing.T) {
	rec := &RunRecord{
		Roads: []RoadRecord{{Name: "A", Capacity: 10}},
	}

	road := Summarize(rec).Roads[0]
	assert.Equal(t, 0, road.Completed)
	assert.Equal(t, 0.0, road.AvgCongestion)
	assert.Equal(t, 0.0, road.PeakCongestion)
	assert.False(t, math.IsNaN(road.AvgCongestion))
}

func TestSummarize_NilRecord(t *testing.T) {
	s := Summarize(nil)
	assert.NotNil(t, s)
	assert.Empty(t, s.Roads)
}

func TestSummarize_CarriesRunCounters(t *testing.T) {
	rec := &RunRecord{
		Policy:    "balanced",
		Horizon:   24,
		FinalHour: 12,
		Generated: 10,
		Assigned:  8,
		Dropped:   2,
		Released:  7,
	}

	s := Summarize(rec)
	assert.Equal(t, "balanced", s.Policy)
	assert.Equal(t, int64(12), s.FinalHour)
	assert.Equal(t, 10, s.Generated)
	assert.Equal(t, 8, s.Assigned)
	assert.Equal(t, 2, s.Dropped)
	assert.Equal(t, 7, s.Released)
}

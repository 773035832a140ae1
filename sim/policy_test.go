package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func vehicle(id, weight int64) *Vehicle {
	return &Vehicle{ID: id, Weight: weight, Priority: 3, State: VehicleStatePending}
}

func TestNewAssignmentPolicy(t *testing.T) {
	knapsack, err := NewAssignmentPolicy(PolicyKnapsack)
	assert.NoError(t, err)
	assert.Equal(t, PolicyKnapsack, knapsack.Name())

	balanced, err := NewAssignmentPolicy(PolicyBalanced)
	assert.NoError(t, err)
	assert.Equal(t, PolicyBalanced, balanced.Name())

	_, err = NewAssignmentPolicy("shortest-path")
	assert.Error(t, err)
}

func TestKnapsack_PicksLeastLoadedRatio(t *testing.T) {
	a := NewRoad("A", 10)
	b := NewRoad("B", 10)
	b.Admit(2)
	roads := []*Road{a, b}

	p := &KnapsackPolicy{}
	got := p.Assign(vehicle(0, 1), roads)

	if got.Dropped {
		t.Fatal("knapsack must never drop")
	}
	if got.Road != a {
		t.Errorf("assigned to %s, want A (ratio 0.0 < 0.2)", got.Road.Name)
	}
	if a.CurrentLoad != 1 {
		t.Errorf("A.CurrentLoad = %d, want 1 (Assign commits the weight)", a.CurrentLoad)
	}
}

func TestKnapsack_TieBreaksToFirstRoad(t *testing.T) {
	a := NewRoad("A", 10)
	b := NewRoad("B", 10)
	roads := []*Road{a, b}

	p := &KnapsackPolicy{}
	got := p.Assign(vehicle(0, 5), roads)
	if got.Road != a {
		t.Errorf("assigned to %s, want first road A on a ratio tie", got.Road.Name)
	}
}

func TestKnapsack_NoCapacityCheck(t *testing.T) {
	// A capacity-1 road must keep accepting weight-3 vehicles: this is
	// unconditional greedy routing, not admission control.
	r := NewRoad("A", 1)
	roads := []*Road{r}

	p := &KnapsackPolicy{}
	for i := int64(0); i < 4; i++ {
		got := p.Assign(vehicle(i, 3), roads)
		if got.Dropped {
			t.Fatalf("vehicle %d dropped, knapsack must always admit", i)
		}
	}

	if r.CurrentLoad != 12 {
		t.Errorf("CurrentLoad = %d, want 12", r.CurrentLoad)
	}
	if r.CurrentLoad <= r.Capacity {
		t.Error("CurrentLoad must exceed Capacity under sustained overload")
	}
	if r.Utilization() <= 1.0 {
		t.Errorf("Utilization() = %v, want > 1.0", r.Utilization())
	}
}

func TestBalanced_FirstFitByAscendingRatio(t *testing.T) {
	a := NewRoad("A", 10)
	a.Admit(8) // ratio 0.8, no room for weight 3
	b := NewRoad("B", 10)
	b.Admit(2) // ratio 0.2, has room
	roads := []*Road{a, b}

	p := &BalancedPolicy{}
	got := p.Assign(vehicle(0, 3), roads)

	if got.Dropped {
		t.Fatal("vehicle dropped, want assignment to B")
	}
	if got.Road != b {
		t.Errorf("assigned to %s, want B (lowest ratio with room)", got.Road.Name)
	}
	if b.CurrentLoad != 5 {
		t.Errorf("B.CurrentLoad = %d, want 5", b.CurrentLoad)
	}
}

func TestBalanced_SkipsFullRoads(t *testing.T) {
	// A has the lower ratio but no room for the vehicle; the scan moves on.
	a := NewRoad("A", 4)
	a.Admit(2) // ratio 0.5, room for at most 2
	b := NewRoad("B", 10)
	b.Admit(6) // ratio 0.6, room for 4
	roads := []*Road{a, b}

	p := &BalancedPolicy{}
	got := p.Assign(vehicle(0, 3), roads)
	if got.Dropped || got.Road != b {
		t.Errorf("got %+v, want assignment to B", got)
	}
}

func TestBalanced_DropsWhenNoRoadFits(t *testing.T) {
	a := NewRoad("A", 2)
	a.Admit(2)
	b := NewRoad("B", 3)
	b.Admit(1)
	roads := []*Road{a, b}

	p := &BalancedPolicy{}
	got := p.Assign(vehicle(0, 3), roads)

	if !got.Dropped {
		t.Fatalf("got assignment to %s, want drop", got.Road.Name)
	}
	if got.Road != nil {
		t.Error("dropped assignment must carry no road")
	}
	if a.CurrentLoad != 2 || b.CurrentLoad != 1 {
		t.Error("a dropped vehicle must not change any road's load")
	}
}

func TestBalanced_NeverExceedsCapacity(t *testing.T) {
	a := NewRoad("A", 5)
	b := NewRoad("B", 3)
	roads := []*Road{a, b}

	p := &BalancedPolicy{}
	for i := int64(0); i < 20; i++ {
		p.Assign(vehicle(i, 2), roads)
		for _, r := range roads {
			if r.CurrentLoad > r.Capacity {
				t.Fatalf("road %s: load %d exceeds capacity %d", r.Name, r.CurrentLoad, r.Capacity)
			}
		}
	}
}

func TestBalanced_DoesNotReorderInput(t *testing.T) {
	a := NewRoad("A", 10)
	a.Admit(9)
	b := NewRoad("B", 10)
	roads := []*Road{a, b}

	p := &BalancedPolicy{}
	p.Assign(vehicle(0, 1), roads)

	if roads[0] != a || roads[1] != b {
		t.Error("Assign must not mutate the caller's road order")
	}
}

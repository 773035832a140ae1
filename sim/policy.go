package sim

import (
	"fmt"
	"sort"
)

// Policy names accepted by NewAssignmentPolicy and scenario configuration.
const (
	PolicyKnapsack = "knapsack"
	PolicyBalanced = "balanced"
)

// Assignment is the outcome of one policy call for one vehicle.
// Either Road is set, or Dropped is true and Road is nil.
type Assignment struct {
	Road    *Road  // chosen road (nil when Dropped)
	Dropped bool   // true when no road could take the vehicle
	Reason  string // human-readable explanation
}

// AssignmentPolicy decides which road a vehicle enters.
//
// Assign both selects a road and commits the vehicle's weight to its load in
// the same call. The conflation is deliberate: selection and reservation are
// one atomic step, so there is no window in which two decisions observe the
// same free capacity.
type AssignmentPolicy interface {
	Assign(v *Vehicle, roads []*Road) Assignment
	Name() string
}

// NewAssignmentPolicy creates an assignment policy of the specified type.
func NewAssignmentPolicy(name string) (AssignmentPolicy, error) {
	switch name {
	case PolicyKnapsack:
		return &KnapsackPolicy{}, nil
	case PolicyBalanced:
		return &BalancedPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown assignment policy %q; valid: %s, %s", name, PolicyKnapsack, PolicyBalanced)
	}
}

// GetAvailablePolicies returns the list of supported policy names.
func GetAvailablePolicies() []string {
	return []string{PolicyKnapsack, PolicyBalanced}
}

// KnapsackPolicy routes every vehicle to the road with minimum occupancy
// ratio, ties broken by first occurrence in slice order. It performs no
// capacity check: a road's load may exceed its capacity and utilization may
// pass 100%. This models unconditional greedy routing, not admission control.
type KnapsackPolicy struct{}

// Name implements AssignmentPolicy.
func (p *KnapsackPolicy) Name() string { return PolicyKnapsack }

// Assign implements AssignmentPolicy for KnapsackPolicy.
func (p *KnapsackPolicy) Assign(v *Vehicle, roads []*Road) Assignment {
	if len(roads) == 0 {
		panic("KnapsackPolicy.Assign: no roads")
	}

	best := roads[0]
	bestRatio := best.Utilization()
	for _, r := range roads[1:] {
		if ratio := r.Utilization(); ratio < bestRatio {
			best = r
			bestRatio = ratio
		}
	}

	best.Admit(v.Weight)
	return Assignment{
		Road:   best,
		Reason: fmt.Sprintf("least-loaded (ratio=%.3f)", bestRatio),
	}
}

// BalancedPolicy sorts roads ascending by occupancy ratio and assigns each
// vehicle to the first road where it fits without exceeding capacity. A
// vehicle that fits nowhere is dropped: it is never admitted anywhere and
// produces no history entry. Callers observe drops through the returned
// Assignment and the simulator's drop counter.
type BalancedPolicy struct{}

// Name implements AssignmentPolicy.
func (p *BalancedPolicy) Name() string { return PolicyBalanced }

// Assign implements AssignmentPolicy for BalancedPolicy.
func (p *BalancedPolicy) Assign(v *Vehicle, roads []*Road) Assignment {
	if len(roads) == 0 {
		panic("BalancedPolicy.Assign: no roads")
	}

	// Sort a copy: the simulator's road slice order is part of the
	// observable tie-breaking behavior and must not be disturbed.
	byRatio := make([]*Road, len(roads))
	copy(byRatio, roads)
	sort.SliceStable(byRatio, func(i, j int) bool {
		return byRatio[i].Utilization() < byRatio[j].Utilization()
	})

	for _, r := range byRatio {
		if r.HasRoom(v.Weight) {
			r.Admit(v.Weight)
			return Assignment{
				Road:   r,
				Reason: fmt.Sprintf("first-fit (load=%d/%d)", r.CurrentLoad, r.Capacity),
			}
		}
	}

	return Assignment{
		Dropped: true,
		Reason:  fmt.Sprintf("no road can take weight %d", v.Weight),
	}
}

// Package traffic provides scenario configuration and stochastic vehicle
// generation for the simulation engine.
package traffic

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/traffic-sim/traffic-sim/sim"
)

// RoadSpec defines one road's identity and capacity.
type RoadSpec struct {
	Name     string `yaml:"name"`
	Capacity int64  `yaml:"capacity"`
}

// Scenario is the top-level run configuration.
// Loaded from YAML via LoadScenario(path) or built from CLI flags.
type Scenario struct {
	Seed      int64      `yaml:"seed"`
	Horizon   int64      `yaml:"horizon"`    // simulated hours
	Policy    string     `yaml:"policy"`     // "knapsack" or "balanced"
	PeakStart int64      `yaml:"peak_start"` // inclusive
	PeakEnd   int64      `yaml:"peak_end"`   // inclusive
	BaseRate  int64      `yaml:"base_rate"`  // vehicles/hour during peak; halved off-peak
	Roads     []RoadSpec `yaml:"roads"`
}

// DefaultScenario returns the reference two-road setup: a 24-hour run over
// the Mandela and Portmore highways with a morning-commute peak.
func DefaultScenario() *Scenario {
	return &Scenario{
		Seed:      42,
		Horizon:   24,
		Policy:    sim.PolicyKnapsack,
		PeakStart: 8,
		PeakEnd:   10,
		BaseRate:  20,
		Roads: []RoadSpec{
			{Name: "Mandela", Capacity: 1000},
			{Name: "Portmore", Capacity: 800},
		},
	}
}

// PeakPreset maps a named peak period to its hour window.
// Presets: morning (6-8), midday (11-13), evening (16-19).
func PeakPreset(name string) (start, end int64, err error) {
	switch name {
	case "morning":
		return 6, 8, nil
	case "midday":
		return 11, 13, nil
	case "evening":
		return 16, 19, nil
	default:
		return 0, 0, fmt.Errorf("unknown peak preset %q; valid: morning, midday, evening", name)
	}
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var scn Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scn); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &scn, nil
}

// Validate checks that all fields in the scenario are valid. Every
// configuration error is caught here, before any simulation state exists.
func (s *Scenario) Validate() error {
	if s.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %d", s.Horizon)
	}
	if s.BaseRate <= 0 {
		return fmt.Errorf("base_rate must be positive, got %d", s.BaseRate)
	}
	if s.PeakStart < 0 {
		return fmt.Errorf("peak_start must be non-negative, got %d", s.PeakStart)
	}
	if s.PeakStart > s.PeakEnd {
		return fmt.Errorf("malformed peak window: start %d > end %d", s.PeakStart, s.PeakEnd)
	}
	if _, err := sim.NewAssignmentPolicy(s.Policy); err != nil {
		return err
	}
	if len(s.Roads) == 0 {
		return fmt.Errorf("at least one road required")
	}
	seen := make(map[string]bool)
	for i, r := range s.Roads {
		prefix := fmt.Sprintf("road[%d]", i)
		if r.Name == "" {
			return fmt.Errorf("%s: name must not be empty", prefix)
		}
		if seen[r.Name] {
			return fmt.Errorf("%s: duplicate road name %q", prefix, r.Name)
		}
		seen[r.Name] = true
		if r.Capacity <= 0 {
			return fmt.Errorf("%s: capacity must be positive, got %d", prefix, r.Capacity)
		}
	}
	return nil
}

// Build validates the scenario and assembles a ready-to-run simulator:
// roads in declaration order (the knapsack tie-break order), the selected
// assignment policy, and a generator drawing from the run's seeded RNG.
func Build(scn *Scenario) (*sim.Simulator, error) {
	if err := scn.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	roads := make([]*sim.Road, 0, len(scn.Roads))
	for _, r := range scn.Roads {
		roads = append(roads, sim.NewRoad(r.Name, r.Capacity))
	}

	policy, err := sim.NewAssignmentPolicy(scn.Policy)
	if err != nil {
		return nil, err
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(scn.Seed))
	gen := NewGenerator(scn, rng.ForSubsystem(sim.SubsystemTraffic))

	return sim.NewSimulator(scn.Horizon, roads, policy, gen), nil
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/traffic-sim/traffic-sim/sim/traffic"
)

// buildScenario assembles the run scenario: the YAML file if given
// (otherwise the built-in default), with any explicitly set flags layered
// on top. Flag values only override when the user actually set them, so a
// scenario file keeps its own seed and rates unless overridden.
func buildScenario(cmd *cobra.Command) (*traffic.Scenario, error) {
	var scn *traffic.Scenario
	if scenarioPath != "" {
		loaded, err := traffic.LoadScenario(scenarioPath)
		if err != nil {
			return nil, err
		}
		scn = loaded
	} else {
		scn = traffic.DefaultScenario()
	}

	if cmd.Flags().Changed("seed") {
		scn.Seed = seed
	}
	if cmd.Flags().Changed("horizon") {
		scn.Horizon = horizon
	}
	if cmd.Flags().Changed("policy") {
		scn.Policy = policy
	}
	if cmd.Flags().Changed("peak-start") {
		scn.PeakStart = peakStart
	}
	if cmd.Flags().Changed("peak-end") {
		scn.PeakEnd = peakEnd
	}
	if cmd.Flags().Changed("rate") {
		scn.BaseRate = baseRate
	}
	if cmd.Flags().Changed("road") {
		roads, err := parseRoadDefs(roadDefs)
		if err != nil {
			return nil, err
		}
		scn.Roads = roads
	}

	// Preset wins over numeric peak flags: it is the coarser, named intent.
	if peakPreset != "" {
		start, end, err := traffic.PeakPreset(peakPreset)
		if err != nil {
			return nil, err
		}
		scn.PeakStart, scn.PeakEnd = start, end
	}

	return scn, nil
}

// parseRoadDefs parses repeated name=capacity flags into road specs.
func parseRoadDefs(defs []string) ([]traffic.RoadSpec, error) {
	roads := make([]traffic.RoadSpec, 0, len(defs))
	for _, def := range defs {
		name, capStr, ok := strings.Cut(def, "=")
		if !ok {
			return nil, fmt.Errorf("invalid road definition %q; expected name=capacity", def)
		}
		capacity, err := strconv.ParseInt(capStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid capacity in road definition %q: %w", def, err)
		}
		roads = append(roads, traffic.RoadSpec{Name: name, Capacity: capacity})
	}
	return roads, nil
}

package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/traffic-sim/traffic-sim/sim"
	"github.com/traffic-sim/traffic-sim/sim/traffic"
)

var (
	// CLI flags for the simulation run
	seed         int64    // Seed for random vehicle generation
	horizon      int64    // Total simulation time (in hours)
	logLevel     string   // Log verbosity level
	policy       string   // Assignment policy ("knapsack" or "balanced")
	peakStart    int64    // First peak hour (inclusive)
	peakEnd      int64    // Last peak hour (inclusive)
	peakPreset   string   // Named peak window (morning, midday, evening)
	baseRate     int64    // Vehicle arrivals per hour during peak
	roadDefs     []string // Road definitions as name=capacity pairs
	scenarioPath string   // YAML scenario file (flags override its fields)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "traffic-sim",
	Short: "Discrete-event simulator for road traffic congestion",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the traffic simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		scn, err := buildScenario(cmd)
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		logrus.Infof("Starting simulation: policy=%s, horizon=%dh, peak=[%d,%d], rate=%d/h, roads=%d",
			scn.Policy, scn.Horizon, scn.PeakStart, scn.PeakEnd, scn.BaseRate, len(scn.Roads))

		s, err := traffic.Build(scn)
		if err != nil {
			logrus.Fatalf("Unable to build simulator: %v", err)
		}
		light := sim.NewTrafficLight()
		s.OnTick = func(snap sim.Snapshot) {
			light.Step()
			logrus.Debugf("hour %d: system congestion %.1f%%, signal %s", snap.Hour, snap.SystemCongestion*100, light.State())
		}

		startTime := time.Now()
		summary := s.Run()
		summary.Print()

		logrus.Infof("Simulation complete in %s.", time.Since(startTime).Round(time.Millisecond))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random vehicle generation")
	runCmd.Flags().Int64Var(&horizon, "horizon", 24, "Total simulation horizon (in hours)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Traffic management configs
	runCmd.Flags().StringVar(&policy, "policy", sim.PolicyKnapsack, "Assignment policy (knapsack, balanced)")
	runCmd.Flags().Int64Var(&peakStart, "peak-start", 8, "First peak hour, inclusive")
	runCmd.Flags().Int64Var(&peakEnd, "peak-end", 10, "Last peak hour, inclusive")
	runCmd.Flags().StringVar(&peakPreset, "peak", "", "Named peak window (morning, midday, evening); overrides peak-start/peak-end")
	runCmd.Flags().Int64Var(&baseRate, "rate", 20, "Average vehicle entry rate during peak (vehicles/hour)")
	runCmd.Flags().StringSliceVar(&roadDefs, "road", nil, "Road definition as name=capacity (repeatable)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file; explicit flags override its fields")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}

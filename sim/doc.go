// Package sim provides the core discrete-event simulation engine for the
// traffic congestion simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - vehicle.go: Vehicle lifecycle (pending → assigned → held → released) and state machine
//   - events.go: Event types that drive the simulation (TrafficGeneration, VehicleArrival, VehicleRelease)
//   - simulator.go: The event loop, clock, and per-vehicle hold/release handling
//
// # Architecture
//
// The sim package defines the engine and its extension points; collaborators
// live in sub-packages:
//   - sim/traffic/: scenario configuration and stochastic vehicle generation
//   - sim/report/: pure-data completed-run records and summaries
//
// # Key Interfaces
//
// The extension points are single-method or small interfaces:
//   - AssignmentPolicy: pick a road for a vehicle and commit its weight in one call
//   - TrafficSource: produce the batch of vehicles arriving during a given hour
//
// Roads carry the only mutable shared state (current load and congestion
// history). All mutation happens inside event handlers, which the event heap
// serializes, so no locking is needed on roads.
package sim

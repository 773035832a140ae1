package sim

// VehicleState represents the lifecycle state of a vehicle.
type VehicleState string

const (
	VehicleStatePending  VehicleState = "PENDING"
	VehicleStateAssigned VehicleState = "ASSIGNED"
	VehicleStateHeld     VehicleState = "HELD"
	VehicleStateReleased VehicleState = "RELEASED"
	VehicleStateDropped  VehicleState = "DROPPED"
)

// Vehicle is a discrete arriving unit of load. Weight and Priority are
// fixed at creation; a vehicle occupies exactly one road for exactly one
// simulated hour (or is dropped and never occupies any).
type Vehicle struct {
	// Identity
	ID int64 // sequential, assigned by the traffic generator

	// Load properties
	Weight   int64 // road capacity consumed while held, one of {1, 2, 3}
	Priority int   // 1..5, advisory only; neither assignment policy consults it

	// Timing
	ArrivalHour int64

	// State
	State        VehicleState
	AssignedRoad string // road name once assigned, empty otherwise
}

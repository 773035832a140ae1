package sim

// EventType identifies the kind of a simulation event.
type EventType string

const (
	EventTypeTrafficGeneration EventType = "TRAFFIC_GENERATION"
	EventTypeVehicleRelease    EventType = "VEHICLE_RELEASE"
	EventTypeVehicleArrival    EventType = "VEHICLE_ARRIVAL"
)

// EventTypePriority orders events that share a timestamp. The hour's
// generation runs first, then assignment of the newly generated vehicles,
// then releases of vehicles whose hold expired. This reproduces the
// reference cooperative-scheduler interleaving: same-hour arrivals are
// placed while capacity from the previous hour is still held, and each
// release's history entry includes the load of arrivals already admitted
// this hour.
var EventTypePriority = map[EventType]int{
	EventTypeTrafficGeneration: 1,
	EventTypeVehicleArrival:    2,
	EventTypeVehicleRelease:    3,
}

// Event represents a simulation event.
type Event interface {
	Timestamp() int64
	EventID() uint64
	Type() EventType
	Execute(s *Simulator)
}

// BaseEvent provides common event fields.
type BaseEvent struct {
	timestamp int64
	eventID   uint64
	eventType EventType
}

func newBaseEvent(timestamp int64, eventID uint64, eventType EventType) BaseEvent {
	return BaseEvent{
		timestamp: timestamp,
		eventID:   eventID,
		eventType: eventType,
	}
}

func (e *BaseEvent) Timestamp() int64 {
	return e.timestamp
}

func (e *BaseEvent) EventID() uint64 {
	return e.eventID
}

func (e *BaseEvent) Type() EventType {
	return e.eventType
}

// TrafficGenerationEvent draws the arrival batch for one simulated hour.
type TrafficGenerationEvent struct {
	BaseEvent
	Hour int64
}

// NewTrafficGenerationEvent creates a traffic generation event for the given hour.
func NewTrafficGenerationEvent(timestamp int64, hour int64, eventID uint64) *TrafficGenerationEvent {
	return &TrafficGenerationEvent{
		BaseEvent: newBaseEvent(timestamp, eventID, EventTypeTrafficGeneration),
		Hour:      hour,
	}
}

func (e *TrafficGenerationEvent) Execute(s *Simulator) {
	s.handleTrafficGeneration(e)
}

// VehicleArrivalEvent represents a vehicle entering the system and being
// handed to the assignment policy.
type VehicleArrivalEvent struct {
	BaseEvent
	Vehicle *Vehicle
}

// NewVehicleArrivalEvent creates a vehicle arrival event.
func NewVehicleArrivalEvent(timestamp int64, v *Vehicle, eventID uint64) *VehicleArrivalEvent {
	return &VehicleArrivalEvent{
		BaseEvent: newBaseEvent(timestamp, eventID, EventTypeVehicleArrival),
		Vehicle:   v,
	}
}

func (e *VehicleArrivalEvent) Execute(s *Simulator) {
	s.handleVehicleArrival(e)
}

// VehicleReleaseEvent represents a vehicle's one-hour hold expiring.
type VehicleReleaseEvent struct {
	BaseEvent
	Vehicle *Vehicle
	Road    *Road
}

// NewVehicleReleaseEvent creates a vehicle release event.
func NewVehicleReleaseEvent(timestamp int64, v *Vehicle, road *Road, eventID uint64) *VehicleReleaseEvent {
	return &VehicleReleaseEvent{
		BaseEvent: newBaseEvent(timestamp, eventID, EventTypeVehicleRelease),
		Vehicle:   v,
		Road:      road,
	}
}

func (e *VehicleReleaseEvent) Execute(s *Simulator) {
	s.handleVehicleRelease(e)
}

package sim

import (
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/traffic-sim/traffic-sim/sim/report"
)

// TrafficSource produces the batch of vehicles arriving during a given hour.
// Implementations draw fresh samples on every call; the engine never asks
// for the same hour twice.
type TrafficSource interface {
	HourBatch(hour int64) []*Vehicle
}

// Simulator is the discrete-event engine. It owns the clock, the event
// heap, the road set and the per-run counters. All state mutation happens
// inside event handlers, which the heap serializes, so a run is a single
// logical thread of control; only Stop may be called from outside it.
type Simulator struct {
	// Configuration
	Roads  []*Road
	Policy AssignmentPolicy
	Source TrafficSource

	// Simulation state
	EventQueue *EventHeap
	Clock      int64
	Horizon    int64

	// Vehicle tracking
	Vehicles          []*Vehicle // every vehicle ever generated, in ID order
	GeneratedVehicles int
	AssignedVehicles  int
	DroppedVehicles   int
	ReleasedVehicles  int

	// OnTick, when set, is invoked once per completed clock value with a
	// snapshot of end-of-tick state. Live display hook; never persisted.
	OnTick func(Snapshot)

	// Per-simulator event counter for deterministic event ordering.
	nextEventID uint64

	// Set by Stop; checked between events. Abrupt: held vehicles are
	// abandoned without release or history entry.
	stopped atomic.Bool
}

// NewSimulator creates a simulator and schedules the hour-0 traffic
// generation event. Generation events chain themselves through hour
// horizon-1; releases scheduled at the horizon itself still execute because
// the run continues through hour `horizon` inclusive.
func NewSimulator(horizon int64, roads []*Road, policy AssignmentPolicy, source TrafficSource) *Simulator {
	s := &Simulator{
		Roads:      roads,
		Policy:     policy,
		Source:     source,
		EventQueue: NewEventHeap(),
		Clock:      0,
		Horizon:    horizon,
		Vehicles:   make([]*Vehicle, 0),
	}
	if horizon > 0 {
		s.ScheduleEvent(NewTrafficGenerationEvent(0, 0, s.newEventID()))
	}
	return s
}

// ScheduleEvent adds an event to the event queue.
func (s *Simulator) ScheduleEvent(e Event) {
	s.EventQueue.Schedule(e)
}

// newEventID generates the next event ID for this simulator.
func (s *Simulator) newEventID() uint64 {
	s.nextEventID++
	return s.nextEventID
}

// Stop makes the run exit before the next event is processed. Safe to call
// from another goroutine (the display collaborator closing mid-run). This
// is an abrupt termination: vehicles still holding capacity keep it, and
// their history entries are never written.
func (s *Simulator) Stop() {
	s.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (s *Simulator) Stopped() bool {
	return s.stopped.Load()
}

// Run executes the simulation until the horizon is passed, the event queue
// drains, or Stop is called, then returns the completed-run summary.
func (s *Simulator) Run() *report.RunSummary {
	ran := false
	for s.EventQueue.Len() > 0 {
		if s.stopped.Load() {
			logrus.Infof("simulation stopped early at hour %d with %d events pending", s.Clock, s.EventQueue.Len())
			break
		}

		event := s.EventQueue.PopNext()

		// The run continues through the horizon hour inclusive, so
		// holds entered during the final generation hour still release.
		if event.Timestamp() > s.Horizon {
			break
		}

		if event.Timestamp() < s.Clock {
			panic(fmt.Sprintf("clock went backwards: %d < %d", event.Timestamp(), s.Clock))
		}
		if event.Timestamp() > s.Clock {
			s.notifyTick()
			// The observer may have stopped the run; the popped event
			// belongs to the next tick and is abandoned with the rest.
			if s.stopped.Load() {
				logrus.Infof("simulation stopped early at hour %d", s.Clock)
				break
			}
		}
		s.Clock = event.Timestamp()

		event.Execute(s)
		ran = true
	}
	if ran && !s.stopped.Load() {
		s.notifyTick()
	}

	return s.Report()
}

// notifyTick delivers the end-of-tick snapshot to the OnTick observer.
func (s *Simulator) notifyTick() {
	if s.OnTick != nil {
		s.OnTick(s.TakeSnapshot())
	}
}

// Event handlers

func (s *Simulator) handleTrafficGeneration(e *TrafficGenerationEvent) {
	batch := s.Source.HourBatch(e.Hour)
	logrus.Debugf("hour %d: %d vehicles arriving", e.Hour, len(batch))

	for _, v := range batch {
		s.Vehicles = append(s.Vehicles, v)
		s.GeneratedVehicles++
		s.ScheduleEvent(NewVehicleArrivalEvent(e.Timestamp(), v, s.newEventID()))
	}

	if e.Hour+1 < s.Horizon {
		s.ScheduleEvent(NewTrafficGenerationEvent(e.Timestamp()+1, e.Hour+1, s.newEventID()))
	}
}

func (s *Simulator) handleVehicleArrival(e *VehicleArrivalEvent) {
	v := e.Vehicle

	// Selection and capacity commit happen inside the one Assign call.
	assignment := s.Policy.Assign(v, s.Roads)
	if assignment.Dropped {
		v.State = VehicleStateDropped
		s.DroppedVehicles++
		logrus.Debugf("vehicle %d (weight %d) dropped at hour %d: %s", v.ID, v.Weight, e.Timestamp(), assignment.Reason)
		return
	}

	v.State = VehicleStateAssigned
	v.AssignedRoad = assignment.Road.Name
	s.AssignedVehicles++

	// Fixed one-hour hold regardless of weight.
	v.State = VehicleStateHeld
	s.ScheduleEvent(NewVehicleReleaseEvent(e.Timestamp()+1, v, assignment.Road, s.newEventID()))
}

func (s *Simulator) handleVehicleRelease(e *VehicleReleaseEvent) {
	e.Road.Release(e.Vehicle.Weight)
	e.Road.RecordUtilization()
	e.Vehicle.State = VehicleStateReleased
	s.ReleasedVehicles++
}

// Report builds the completed-run record and its summary. Queryable after
// the horizon is reached or the run was stopped; it reads but never
// mutates simulation state.
func (s *Simulator) Report() *report.RunSummary {
	rec := &report.RunRecord{
		Policy:    s.Policy.Name(),
		Horizon:   s.Horizon,
		FinalHour: s.Clock,
		Generated: s.GeneratedVehicles,
		Assigned:  s.AssignedVehicles,
		Dropped:   s.DroppedVehicles,
		Released:  s.ReleasedVehicles,
		Roads:     make([]report.RoadRecord, 0, len(s.Roads)),
	}
	for _, r := range s.Roads {
		history := make([]float64, len(r.History))
		copy(history, r.History)
		rec.Roads = append(rec.Roads, report.RoadRecord{
			Name:     r.Name,
			Capacity: r.Capacity,
			History:  history,
		})
	}
	return report.Summarize(rec)
}

package transnet

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transnet-generator/graph"
	"github.com/theoremus-urban-solutions/transnet-generator/gtfs"
)

// StepKind says what a stop_times row contributes to the graph
type StepKind int

const (
	// TripStart adds the stop as a node and nothing else
	TripStart StepKind = iota
	// AddSegment adds the stop and a segment back to the previous stop
	AddSegment
	// SkipRollover contributes nothing: one of the two times is at hour 24 or later
	SkipRollover
	// SkipNegative contributes nothing: the arrival is before the previous
	// departure, as happens when a trip without a sequence 0 row is linked to an
	// unrelated earlier row
	SkipNegative
)

func (k StepKind) String() string {
	switch k {
	case TripStart:
		return "trip-start"
	case AddSegment:
		return "segment"
	case SkipRollover:
		return "rollover"
	case SkipNegative:
		return "negative"
	}
	return "unknown"
}

// Step is the outcome of folding one row
type Step struct {
	Kind    StepKind
	StopID  string
	Segment graph.Segment // set for AddSegment
}

// TripFold carries the previous row of a source through its stop_times. The zero
// value is the state at the start of a source.
//
// Only stop_sequence 0 starts a trip. A trip whose first row has another
// sequence number is linked to the last stop of the row before it.
type TripFold struct {
	PreviousStop      string
	PreviousDeparture string
	started           bool
}

// Started reports whether a row has been folded in
func (f TripFold) Started() bool { return f.started }

// Step folds st in and returns what it contributes along with the next state.
// The next state always refers to st, whatever the step kind.
func (f TripFold) Step(st gtfs.StopTime) (Step, TripFold, error) {
	next := TripFold{PreviousStop: st.StopID, PreviousDeparture: st.Departure, started: true}

	if st.Sequence == 0 {
		return Step{Kind: TripStart, StopID: st.StopID}, next, nil
	}
	if !f.started {
		return Step{}, f, ErrOrphanContinuation
	}

	departure, err := gtfs.ParseClock(f.PreviousDeparture)
	if err != nil {
		return Step{}, f, fmt.Errorf("previous departure_time: %w", err)
	}
	arrival, err := gtfs.ParseClock(st.Arrival)
	if err != nil {
		return Step{}, f, fmt.Errorf("arrival_time: %w", err)
	}
	if departure.Hour() > 23 || arrival.Hour() > 23 {
		return Step{Kind: SkipRollover, StopID: st.StopID}, next, nil
	}

	minutes := arrival.MinutesSince(departure)
	if minutes < 0 {
		return Step{Kind: SkipNegative, StopID: st.StopID}, next, nil
	}
	seg, err := graph.NewSegment(st.StopID, f.PreviousStop, minutes)
	if err != nil {
		return Step{}, f, err
	}
	return Step{Kind: AddSegment, StopID: st.StopID, Segment: seg}, next, nil
}

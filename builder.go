package transnet

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"

	"github.com/theoremus-urban-solutions/transnet-generator/config"
	"github.com/theoremus-urban-solutions/transnet-generator/graph"
	"github.com/theoremus-urban-solutions/transnet-generator/gtfs"
	"github.com/theoremus-urban-solutions/transnet-generator/metrics"
)

// SourceStats counts what one source contributed
type SourceStats struct {
	StopTimes  int
	TripStarts int
	Segments   int
	Rollovers  int
	Negatives  int
	Attributes int
}

// Builder folds GTFS sources into a graph
type Builder struct {
	// StopPointPrefix selects the stops.txt rows whose attributes are applied.
	// Empty means config.DefaultStopPointPrefix.
	StopPointPrefix string
	// IgnoreUnservedStops drops attributes of stop-points that are not already
	// nodes instead of adding them as isolated nodes.
	IgnoreUnservedStops bool
	// Metrics is optional
	Metrics *metrics.Registry
	// RunID tags log lines
	RunID string
}

func (b *Builder) prefix() string {
	if b.StopPointPrefix == "" {
		return config.DefaultStopPointPrefix
	}
	return b.StopPointPrefix
}

// Build processes sources in order into g. A nil list is a configuration error
// raised before any file is opened; an empty list leaves g untouched.
func (b *Builder) Build(g *graph.Graph, sources []string) error {
	if sources == nil {
		return ErrNoSources
	}
	for _, src := range sources {
		if _, err := b.BuildSource(g, src); err != nil {
			return err
		}
	}
	return nil
}

// BuildSource folds one source's stop_times into g, then applies its stop
// attributes
func (b *Builder) BuildSource(g *graph.Graph, path string) (stats SourceStats, err error) {
	src, err := gtfs.OpenSource(path)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := src.Close(); err == nil {
			err = cerr
		}
	}()

	if err := b.foldStopTimes(g, src, &stats); err != nil {
		return stats, err
	}
	if stats.Attributes, err = b.AddStopAttributes(g, src); err != nil {
		return stats, err
	}

	glog.Infof("[run %s] %s: %d stop times, %d trip starts, %d segments, %d rollovers and %d negative pairs skipped, %d stop attributes",
		b.RunID, path, stats.StopTimes, stats.TripStarts, stats.Segments, stats.Rollovers, stats.Negatives, stats.Attributes)
	b.Metrics.RecordSource(path, stats.StopTimes, stats.TripStarts, stats.Rollovers, stats.Negatives, stats.Attributes)
	return stats, nil
}

func (b *Builder) foldStopTimes(g *graph.Graph, src *gtfs.Source, stats *SourceStats) error {
	r, err := src.StopTimes()
	if err != nil {
		return err
	}
	defer r.Close()

	var fold TripFold
	for {
		st, err := r.Next()
		if err == io.EOF {
			if !fold.Started() {
				glog.Warningf("%s: no stop times", r.Name())
			}
			return nil
		}
		if err != nil {
			return err
		}
		stats.StopTimes++

		prev := fold.PreviousStop
		var step Step
		step, fold, err = fold.Step(st)
		if err != nil {
			return &gtfs.ParseError{File: r.Name(), Line: st.Line, Err: err}
		}
		if err := b.apply(g, step); err != nil {
			return &gtfs.ParseError{File: r.Name(), Line: st.Line, Err: err}
		}

		switch step.Kind {
		case TripStart:
			stats.TripStarts++
		case AddSegment:
			stats.Segments++
		case SkipRollover:
			stats.Rollovers++
			glog.V(1).Infof("%s:%d: skipping %s after %s, time past 23:59:59",
				r.Name(), st.Line, st.StopID, prev)
		case SkipNegative:
			stats.Negatives++
			glog.V(1).Infof("%s:%d: skipping %s after %s, arrival before previous departure",
				r.Name(), st.Line, st.StopID, prev)
		}
		if glog.V(2) {
			glog.Infof("%s:%d: %s %s", r.Name(), st.Line, step.Kind, st.StopID)
		}
	}
}

func (b *Builder) apply(g *graph.Graph, step Step) error {
	switch step.Kind {
	case TripStart:
		s, err := graph.NewStop(step.StopID)
		if err != nil {
			return err
		}
		g.AddStop(s)
	case AddSegment:
		g.AddSegment(step.Segment)
	}
	return nil
}

// AddStopAttributes applies stop_name, lat and long from the source's stops.txt
// to every row whose stop_id carries the stop-point prefix. It returns the
// number of rows applied.
func (b *Builder) AddStopAttributes(g *graph.Graph, src *gtfs.Source) (applied int, err error) {
	r, err := src.Stops()
	if err != nil {
		return 0, err
	}
	defer r.Close()

	prefix := b.prefix()
	for {
		row, err := r.Next()
		if err == io.EOF {
			return applied, nil
		}
		if err != nil {
			return applied, err
		}
		if !strings.HasPrefix(row.ID, prefix) {
			continue
		}
		if !row.Complete() {
			return applied, &gtfs.ParseError{File: r.Name(), Line: row.Line,
				Err: fmt.Errorf("stop-point row has %d columns, want at least 5", row.Columns)}
		}

		stop, ok := g.Stop(row.ID)
		if !ok {
			if b.IgnoreUnservedStops {
				continue
			}
			stop = graph.Stop{ID: row.ID}
		}
		if ok && stop.HasAttributes() {
			glog.V(1).Infof("%s:%d: %s listed again, replacing its attributes", r.Name(), row.Line, row.ID)
		}
		withAttrs, err := stop.WithAttributes(row.Name, row.Lat, row.Long)
		if err != nil {
			glog.Warningf("%s:%d: %s: coordinates %q, %q dropped: %v", r.Name(), row.Line, row.ID, row.Lat, row.Long, err)
			if withAttrs, err = stop.WithAttributes(row.Name, "", ""); err != nil {
				return applied, &gtfs.ParseError{File: r.Name(), Line: row.Line, Err: err}
			}
		}
		g.SetStop(withAttrs)
		applied++
	}
}

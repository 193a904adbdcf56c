package transnet

import (
	"io"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/transnet-generator/config"
	"github.com/theoremus-urban-solutions/transnet-generator/formatter"
	"github.com/theoremus-urban-solutions/transnet-generator/graph"
	"github.com/theoremus-urban-solutions/transnet-generator/metrics"
	"github.com/theoremus-urban-solutions/transnet-generator/report"
)

// Options configures one generation run
type Options struct {
	GraphName  string
	Sources    []string // nil is a configuration error
	OutputPath string
	Format     string // pajek|gml, default pajek
	Encoding   string // pajek only, default UTF-8

	StopPointPrefix     string
	IgnoreUnservedStops bool

	// Stdout receives the summary table; nil means os.Stdout
	Stdout    io.Writer
	NoSummary bool
	// MetricsTextfile, when set, receives the run metrics
	MetricsTextfile string
}

// OptionsFromConfig maps the application configuration onto run options
func OptionsFromConfig(cfg config.AppConfig) Options {
	return Options{
		GraphName:           cfg.GraphName,
		Sources:             cfg.Sources,
		OutputPath:          cfg.Output.Path,
		Format:              cfg.Output.Format,
		Encoding:            cfg.Output.Encoding,
		StopPointPrefix:     cfg.Feed.StopPointPrefix,
		IgnoreUnservedStops: !cfg.Feed.AttachUnserved(),
		NoSummary:           cfg.Report.Disabled,
		MetricsTextfile:     cfg.Metrics.Textfile,
	}
}

// GenerateGraph builds the transport graph from opts.Sources, writes it to
// opts.OutputPath and prints the summary. The format, the encoding and the source
// list are checked before any file is read or written.
func GenerateGraph(opts Options) (report.Summary, error) {
	start := time.Now()
	runID := uuid.NewString()

	if opts.Format == "" {
		opts.Format = config.DefaultFormat
	}
	format, err := formatter.ParseFormat(opts.Format)
	if err != nil {
		return report.Summary{}, err
	}
	if format == formatter.Pajek {
		if _, err := formatter.ResolveEncoding(opts.Encoding); err != nil {
			return report.Summary{}, err
		}
	}
	if opts.Sources == nil {
		return report.Summary{}, ErrNoSources
	}
	if opts.OutputPath == "" {
		return report.Summary{}, config.Errorf("no output path given")
	}

	if !format.MatchesPath(opts.OutputPath) {
		glog.Warningf("[run %s] writing %s output to %s, expected a %s file", runID, format, opts.OutputPath, format.Extension())
	}

	glog.Infof("[run %s] generating %s graph from %d sources", runID, format, len(opts.Sources))

	reg := metrics.NewRegistry()
	g := graph.New(opts.GraphName)
	b := &Builder{
		StopPointPrefix:     opts.StopPointPrefix,
		IgnoreUnservedStops: opts.IgnoreUnservedStops,
		Metrics:             reg,
		RunID:               runID,
	}
	if err := b.Build(g, opts.Sources); err != nil {
		return report.Summary{}, err
	}
	if err := formatter.WriteFile(opts.OutputPath, g, format, opts.Encoding); err != nil {
		return report.Summary{}, err
	}

	summary := report.Summarize(g)
	reg.RecordGraph(summary.Nodes, summary.Edges, summary.Components, time.Since(start))
	if opts.MetricsTextfile != "" {
		if err := reg.WriteTextfile(opts.MetricsTextfile); err != nil {
			return summary, err
		}
	}
	glog.Infof("[run %s] done in %s: %d nodes, %d edges", runID, time.Since(start), summary.Nodes, summary.Edges)

	if !opts.NoSummary {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		if err := report.Print(out, summary); err != nil {
			return summary, err
		}
	}
	return summary, nil
}

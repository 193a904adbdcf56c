package main

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/golang/glog"
	"github.com/joho/godotenv"

	lib "github.com/theoremus-urban-solutions/transnet-generator"
	"github.com/theoremus-urban-solutions/transnet-generator/config"
	"github.com/theoremus-urban-solutions/transnet-generator/internal"
)

var (
	sourcesFlag stringList

	configFlag = flag.String(
		"config", "",
		"YAML config file. Defaults to config.yml or config/config.yml when present.")
	outputFlag = flag.String(
		"output", "",
		"Path of the graph file to write (overrides config).")
	formatFlag = flag.String(
		"format", "",
		"Output format: pajek|gml (overrides config).")
	encodingFlag = flag.String(
		"encoding", "",
		"Text encoding of pajek output, an IANA name such as UTF-8 or ISO-8859-1 (overrides config).")
	nameFlag = flag.String(
		"name", "",
		"Graph name (overrides config).")
	metricsFlag = flag.String(
		"metrics-textfile", "",
		"Write run metrics to this .prom file (overrides config).")
	noSummaryFlag = flag.Bool(
		"no-summary", false,
		"Do not print the summary table.")
)

func init() {
	flag.Var(&sourcesFlag, "source",
		"GTFS feed directory or zip; repeat or comma separate (overrides config).")
}

func main() {
	flag.Parse()
	internal.InitLogging()
	defer glog.Flush()

	if err := loadDotEnv(".env"); err != nil {
		glog.Exitf("Loading .env: %v", err)
	}

	cfg, err := config.LoadAppConfig(*configFlag, applyFlags)
	if err != nil {
		glog.Exitf("Loading configuration: %v", err)
	}

	if _, err := lib.GenerateGraph(lib.OptionsFromConfig(cfg)); err != nil {
		glog.Flush()
		glog.Exitf("Generating graph: %v", err)
	}
}

// loadDotEnv exports the variables of path. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// applyFlags overrides cfg with the flags given on the command line
func applyFlags(cfg *config.AppConfig) {
	if len(sourcesFlag) > 0 {
		cfg.Sources = sourcesFlag
	}
	if *outputFlag != "" {
		cfg.Output.Path = *outputFlag
	}
	if *formatFlag != "" {
		cfg.Output.Format = *formatFlag
	}
	if *encodingFlag != "" {
		cfg.Output.Encoding = *encodingFlag
	}
	if *nameFlag != "" {
		cfg.GraphName = *nameFlag
	}
	if *metricsFlag != "" {
		cfg.Metrics.Textfile = *metricsFlag
	}
	if *noSummaryFlag {
		cfg.Report.Disabled = true
	}
}

package config

// OutputConfig describes the single graph file written by a run
type OutputConfig struct {
	Path     string `yaml:"path" validate:"required"`
	Format   string `yaml:"format"`   // pajek|gml
	Encoding string `yaml:"encoding"` // IANA name, pajek only
}

// FeedConfig contains feed interpretation rules
type FeedConfig struct {
	StopPointPrefix     string `yaml:"stop_point_prefix"`
	AttachUnservedStops *bool  `yaml:"attach_unserved_stops"`
}

// ReportConfig controls the summary table printed after a successful write
type ReportConfig struct {
	Disabled bool `yaml:"disabled"`
}

// MetricsConfig contains run metrics export configuration
type MetricsConfig struct {
	Textfile string `yaml:"textfile" validate:"omitempty,endswith=.prom"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	GraphName string        `yaml:"graph_name"`
	Sources   []string      `yaml:"sources" validate:"omitempty,dive,required"`
	Output    OutputConfig  `yaml:"output"`
	Feed      FeedConfig    `yaml:"feed"`
	Report    ReportConfig  `yaml:"report"`
	Metrics   MetricsConfig `yaml:"metrics"`
}

// AttachUnserved reports whether stop-points absent from every trip become
// isolated nodes. Defaults to true.
func (f FeedConfig) AttachUnserved() bool {
	if f.AttachUnservedStops == nil {
		return true
	}
	return *f.AttachUnservedStops
}

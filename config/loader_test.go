package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
graph_name: idf
sources:
  - feeds/rer
  - feeds/metro
output:
  path: out/network.gml
  format: gml
feed:
  attach_unserved_stops: false
metrics:
  textfile: run.prom
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GraphName != "idf" {
		t.Errorf("GraphName = %q", cfg.GraphName)
	}
	if !reflect.DeepEqual(cfg.Sources, []string{"feeds/rer", "feeds/metro"}) {
		t.Errorf("Sources = %v", cfg.Sources)
	}
	if cfg.Output.Format != "gml" || cfg.Output.Encoding != DefaultEncoding {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Feed.StopPointPrefix != DefaultStopPointPrefix || cfg.Feed.AttachUnserved() {
		t.Errorf("Feed = %+v", cfg.Feed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_BlankFieldsGetDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "output:\n  path: g.net\n  format: \"\"\nfeed:\n  stop_point_prefix: \"\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != DefaultFormat || cfg.Feed.StopPointPrefix != DefaultStopPointPrefix {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if !cfg.Feed.AttachUnserved() {
		t.Error("unserved stops attach by default")
	}
	if cfg.Sources != nil {
		t.Errorf("Sources = %v, want nil", cfg.Sources)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
	_, err := Load(writeConfig(t, "sources: [unterminated\n"))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("invalid yaml: got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *AppConfig) {}},
		{name: "no output path", mutate: func(c *AppConfig) { c.Output.Path = "" }, wantErr: true},
		{name: "blank source", mutate: func(c *AppConfig) { c.Sources = []string{"feeds/a", ""} }, wantErr: true},
		{name: "metrics textfile extension", mutate: func(c *AppConfig) { c.Metrics.Textfile = "run.txt" }, wantErr: true},
		{name: "no sources", mutate: func(c *AppConfig) { c.Sources = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.Sources = []string{"feeds/a"}
			cfg.Output.Path = "g.net"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrConfig) {
				t.Errorf("error should wrap ErrConfig: %v", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"TRANSNET_SOURCES":          " feeds/a, ,feeds/b ",
		"TRANSNET_OUTPUT":           "env.gml",
		"TRANSNET_FORMAT":           "gml",
		"TRANSNET_ENCODING":         "",
		"TRANSNET_METRICS_TEXTFILE": "env.prom",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := Defaults()
	cfg.ApplyEnv(lookup)

	if !reflect.DeepEqual(cfg.Sources, []string{"feeds/a", "feeds/b"}) {
		t.Errorf("Sources = %v", cfg.Sources)
	}
	if cfg.Output.Path != "env.gml" || cfg.Output.Format != "gml" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Output.Encoding != DefaultEncoding {
		t.Errorf("empty variable should not override, Encoding = %q", cfg.Output.Encoding)
	}
	if cfg.Metrics.Textfile != "env.prom" {
		t.Errorf("Textfile = %q", cfg.Metrics.Textfile)
	}
}

func TestLoadAppConfig(t *testing.T) {
	for _, k := range []string{"TRANSNET_SOURCES", "TRANSNET_OUTPUT", "TRANSNET_FORMAT", "TRANSNET_ENCODING", "TRANSNET_METRICS_TEXTFILE"} {
		t.Setenv(k, "")
	}
	good := writeConfig(t, "sources: [feeds/a]\noutput:\n  path: g.net\n")

	cfg, err := LoadAppConfig(good, nil)
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if cfg.Output.Path != "g.net" || cfg.Output.Format != DefaultFormat {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"), nil); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("explicit missing file: got %v", err)
	}

	t.Setenv("TRANSNET_OUTPUT", "from-env.gml")
	t.Setenv("TRANSNET_FORMAT", "gml")
	cfg, err = LoadAppConfig(good, func(c *AppConfig) { c.Output.Format = "pajek" })
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Path != "from-env.gml" {
		t.Errorf("env override lost: %q", cfg.Output.Path)
	}
	if cfg.Output.Format != "pajek" {
		t.Errorf("override should win over env, Format = %q", cfg.Output.Format)
	}

	bad := writeConfig(t, "output:\n  path: g.net\nmetrics:\n  textfile: run.csv\n")
	if _, err := LoadAppConfig(bad, nil); !errors.Is(err, ErrConfig) {
		t.Errorf("invalid config: got %v", err)
	}

	// validation runs after the override
	if _, err := LoadAppConfig(good, func(c *AppConfig) { c.Output.Path = "" }); !errors.Is(err, ErrConfig) {
		t.Errorf("override clearing the output path: got %v", err)
	}
}

func TestLoadAppConfig_DefaultPaths(t *testing.T) {
	for _, k := range []string{"TRANSNET_SOURCES", "TRANSNET_OUTPUT", "TRANSNET_FORMAT", "TRANSNET_ENCODING", "TRANSNET_METRICS_TEXTFILE"} {
		t.Setenv(k, "")
	}
	saved := DefaultPaths
	t.Cleanup(func() { DefaultPaths = saved })

	dir := t.TempDir()
	missing := filepath.Join(dir, "nope.yml")
	good := writeConfig(t, "graph_name: found\noutput:\n  path: g.net\n")

	DefaultPaths = []string{missing, good}
	cfg, err := LoadAppConfig("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GraphName != "found" {
		t.Errorf("GraphName = %q, want the second default path", cfg.GraphName)
	}

	DefaultPaths = []string{missing}
	cfg, err = LoadAppConfig("", func(c *AppConfig) { c.Output.Path = "flag.net" })
	if err != nil {
		t.Fatalf("no config file is allowed: %v", err)
	}
	if cfg.Output.Path != "flag.net" || cfg.Feed.StopPointPrefix != DefaultStopPointPrefix {
		t.Errorf("cfg = %+v, want defaults plus override", cfg)
	}
}

func TestSplitList(t *testing.T) {
	if got := SplitList(""); got != nil {
		t.Errorf("SplitList(\"\") = %v", got)
	}
	if got := SplitList("a,b , c"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("SplitList = %v", got)
	}
}

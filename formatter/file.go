package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/theoremus-urban-solutions/transnet-generator/graph"
)

// Render serializes g in memory. The encoding applies to Pajek only; GML output
// is plain ASCII.
func Render(g *graph.Graph, f Format, encodingName string) ([]byte, error) {
	switch f {
	case Pajek:
		enc, err := ResolveEncoding(encodingName)
		if err != nil {
			return nil, err
		}
		data, err := encode(enc, BuildPajek(g))
		if err != nil {
			return nil, fmt.Errorf("encode pajek output as %s: %w", encodingName, err)
		}
		return data, nil
	case GML:
		return []byte(BuildGML(g)), nil
	}
	return nil, &UnsupportedFormatError{Format: string(f)}
}

// WritePajek writes g to w as Pajek text in the named encoding
func WritePajek(w io.Writer, g *graph.Graph, encodingName string) error {
	data, err := Render(g, Pajek, encodingName)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteGML writes g to w as GML
func WriteGML(w io.Writer, g *graph.Graph) error {
	_, err := io.WriteString(w, BuildGML(g))
	return err
}

// WriteFile renders g and writes it to path. Nothing is created when rendering
// fails.
func WriteFile(path string, g *graph.Graph, f Format, encodingName string) error {
	data, err := Render(g, f, encodingName)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	glog.Infof("Wrote %s graph to %s (%d bytes)", f, path, len(data))
	return nil
}
